package attendance

import "time"

// Status is the live presence state of an employee.
type Status string

const (
	StatusOff     Status = "off"
	StatusWorking Status = "working"
	StatusBreak   Status = "break"
)

// WorkStatus tracks the current state of one employee. BreakStart is
// non-nil if and only if Status is StatusBreak.
type WorkStatus struct {
	ID         string
	EmployeeID string
	Status     Status
	BreakStart *time.Time
	LastUpdate time.Time
}

// TimeRecord is the attendance row for one employee on one calendar day.
// At most one record exists per (EmployeeID, Date).
type TimeRecord struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	ClockIn       *time.Time
	ClockOut      *time.Time
	BreakMinutes  float64
	TotalHours    *float64
	PhotoFilename *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// EmployeeName is populated by queries that join the employee table.
	EmployeeName *string
}

// IsClosed reports whether the record has been clocked out.
func (r *TimeRecord) IsClosed() bool {
	return r.ClockOut != nil
}
