package attendance

import (
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"
)

type ClockActionResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
}

type TimeRecordResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	Date         string   `json:"date"`
	ClockIn      *string  `json:"clock_in"`
	ClockOut     *string  `json:"clock_out"`
	BreakMinutes float64  `json:"break_minutes"`
	TotalHours   *float64 `json:"total_hours"`
}

type TodayResponse struct {
	Date       string              `json:"date"`
	Status     string              `json:"status"`
	BreakStart *string             `json:"break_start"`
	Record     *TimeRecordResponse `json:"record"`
}

type MonthlyRequest struct {
	Month string `json:"month"`
}

func (r *MonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month is required"})
	} else if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ForceCloseRequest closes a record the employee left open. CloseAt is
// the clock-out time the admin decides on; the server never guesses
// one, so a record forgotten overnight is not billed until the moment
// the admin happens to click.
type ForceCloseRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	CloseAt    string `json:"close_at"`
}

func (r *ForceCloseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID is required"})
	} else if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID format is invalid"})
	}

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
		}
	}

	if validator.IsEmpty(r.CloseAt) {
		errs = append(errs, validator.ValidationError{Field: "close_at", Message: "Close time is required"})
	} else if _, ok := validator.IsValidDateTime(r.CloseAt); !ok {
		errs = append(errs, validator.ValidationError{Field: "close_at", Message: "Close time must be an ISO8601 timestamp"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewTimeRecordResponse converts a record entity to its API shape.
func NewTimeRecordResponse(record *TimeRecord) *TimeRecordResponse {
	return &TimeRecordResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Date:         record.Date.Format("2006-01-02"),
		ClockIn:      timePtrToString(record.ClockIn),
		ClockOut:     timePtrToString(record.ClockOut),
		BreakMinutes: record.BreakMinutes,
		TotalHours:   record.TotalHours,
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02 15:04:05")
	return &s
}
