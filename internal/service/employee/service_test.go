package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/attendance"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/employee"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*employee.Employee)}
}

func (r *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (*employee.Employee, error) {
	e, ok := r.employees[employeeID]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *employee.Employee) error {
	e.ID = "emp-" + e.EmployeeID
	copied := *e
	r.employees[e.EmployeeID] = &copied
	return nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *employee.Employee) error {
	copied := *e
	r.employees[e.EmployeeID] = &copied
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, employeeID string) error {
	delete(r.employees, employeeID)
	return nil
}

func (r *fakeEmployeeRepo) Departments(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, e := range r.employees {
		if e.Department != nil && !seen[*e.Department] {
			seen[*e.Department] = true
			out = append(out, *e.Department)
		}
	}
	return out, nil
}

type fakeRecordLookup struct {
	attendance.TimeRecordRepository
	records map[string][]attendance.TimeRecord
}

func (r *fakeRecordLookup) GetRecent(_ context.Context, employeeID string, limit int) ([]attendance.TimeRecord, error) {
	records := r.records[employeeID]
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func newTestService() (employee.Service, *fakeEmployeeRepo, *fakeRecordLookup) {
	repo := newFakeEmployeeRepo()
	records := &fakeRecordLookup{records: make(map[string][]attendance.TimeRecord)}
	return NewEmployeeService(repo, records), repo, records
}

func strPtr(s string) *string { return &s }

func TestCreateEmployee(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.Create(context.Background(), &employee.CreateEmployeeRequest{
		EmployeeID: "EMP001",
		Name:       "Alice",
		Department: strPtr("Engineering"),
		JoinDate:   strPtr("2023-04-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP001", resp.EmployeeID)
	assert.Equal(t, employee.StatusActive, resp.Status)
}

func TestCreateEmployeeDuplicateID(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &employee.CreateEmployeeRequest{EmployeeID: "EMP001", Name: "Alice"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &employee.CreateEmployeeRequest{EmployeeID: "EMP001", Name: "Bob"})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDTaken)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), &employee.CreateEmployeeRequest{
		EmployeeID: "EMP 001",
		Name:       "",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "employee_id")
	assert.Contains(t, m, "name")
}

func TestUpdateEmployeePartial(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &employee.CreateEmployeeRequest{
		EmployeeID: "EMP001",
		Name:       "Alice",
		Department: strPtr("Engineering"),
	})
	require.NoError(t, err)

	resp, err := svc.Update(ctx, "EMP001", &employee.UpdateEmployeeRequest{
		Position: strPtr("Tech Lead"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Name)
	require.NotNil(t, resp.Department)
	assert.Equal(t, "Engineering", *resp.Department)
	require.NotNil(t, resp.Position)
	assert.Equal(t, "Tech Lead", *resp.Position)
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &employee.CreateEmployeeRequest{EmployeeID: "EMP001", Name: "Alice"})
	require.NoError(t, err)

	resp, err := svc.UpdateProfile(ctx, "EMP001", &employee.UpdateProfileRequest{
		Email: strPtr("alice@example.com"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Email)
	assert.Equal(t, "alice@example.com", *resp.Email)

	_, err = svc.UpdateProfile(ctx, "EMP001", &employee.UpdateProfileRequest{
		Email: strPtr("not-an-email"),
	})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "email")
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Update(context.Background(), "EMP404", &employee.UpdateEmployeeRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployeeWithoutHistory(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &employee.CreateEmployeeRequest{EmployeeID: "EMP001", Name: "Alice"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "EMP001"))
	assert.NotContains(t, repo.employees, "EMP001")
}

func TestDeleteEmployeeWithHistoryDeactivates(t *testing.T) {
	svc, repo, records := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &employee.CreateEmployeeRequest{EmployeeID: "EMP001", Name: "Alice"})
	require.NoError(t, err)
	records.records["EMP001"] = []attendance.TimeRecord{
		{EmployeeID: "EMP001", Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	require.NoError(t, svc.Delete(ctx, "EMP001"))
	require.Contains(t, repo.employees, "EMP001")
	assert.Equal(t, employee.StatusInactive, repo.employees["EMP001"].Status)
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Delete(context.Background(), "EMP404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
