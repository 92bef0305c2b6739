package report

import "github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"

type SummaryRowResponse struct {
	EmployeeID    string   `json:"employee_id"`
	Name          string   `json:"name"`
	Department    *string  `json:"department"`
	ClockIn       *string  `json:"clock_in"`
	ClockOut      *string  `json:"clock_out"`
	BreakMinutes  float64  `json:"break_minutes"`
	TotalHours    float64  `json:"total_hours"`
	CurrentStatus string   `json:"current_status"`
	IsPresent     bool     `json:"is_present"`
}

type CountersResponse struct {
	ActiveUsers      int `json:"active_users"`
	TodayAttendance  int `json:"today_attendance"`
	CurrentlyWorking int `json:"currently_working"`
}

type MyStatsResponse struct {
	Month        string  `json:"month"`
	WorkDays     int     `json:"work_days"`
	TotalHours   float64 `json:"total_hours"`
	AverageHours float64 `json:"average_hours"`
}

type ExportRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.From) {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "From date is required"})
	} else if _, ok := validator.IsValidDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "From date must be in YYYY-MM-DD format"})
	}

	if validator.IsEmpty(r.To) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "To date is required"})
	} else if _, ok := validator.IsValidDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "To date must be in YYYY-MM-DD format"})
	}

	if len(errs) == 0 {
		from, _ := validator.IsValidDate(r.From)
		to, _ := validator.IsValidDate(r.To)
		if to.Before(from) {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "To date must not be before from date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
