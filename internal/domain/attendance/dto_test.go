package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"
)

func TestForceCloseRequestValidate(t *testing.T) {
	req := ForceCloseRequest{
		EmployeeID: "EMP001",
		Date:       "2024-01-15",
		CloseAt:    "2024-01-15T18:00:00+09:00",
	}
	assert.NoError(t, req.Validate())
}

func TestForceCloseRequestRequiresCloseAt(t *testing.T) {
	req := ForceCloseRequest{EmployeeID: "EMP001", Date: "2024-01-15"}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "close_at")
}

func TestForceCloseRequestRejectsBareDateCloseAt(t *testing.T) {
	req := ForceCloseRequest{EmployeeID: "EMP001", CloseAt: "2024-01-15 18:00:00"}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "close_at")
}
