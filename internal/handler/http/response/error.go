package response

import (
	"errors"
	"net/http"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/attendance"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/auth"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/dailyreport"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/employee"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/notification"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/tag"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/user"
	"github.com/shiftbase-io/timecard-backend-go/internal/service/file"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountLocked):
		TooManyRequests(w, err.Error())
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid or expired refresh token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrWrongPassword):
		Unauthorized(w, "Current password is incorrect")

	// Attendance state machine errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrNotClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrNotWorking),
		errors.Is(err, attendance.ErrNotOnBreak),
		errors.Is(err, attendance.ErrRecordClosed):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own account", nil)
	case errors.Is(err, user.ErrEmployeeNotLinked):
		BadRequest(w, "No employee linked to this account", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDTaken):
		Conflict(w, "Employee ID already exists")

	// Report and tag errors
	case errors.Is(err, dailyreport.ErrReportNotFound):
		NotFound(w, "Daily report not found")
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, tag.ErrTagNotFound):
		NotFound(w, "Tag not found")
	case errors.Is(err, tag.ErrSyncUnavailable):
		BadRequest(w, "Tag sync is not configured", nil)
	case errors.Is(err, file.ErrUnsupportedFileType):
		BadRequest(w, "Unsupported file type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
