package report

import "time"

// SummaryRow is one employee's line in the daily attendance summary.
// Active employees with no record for the day still get a row, with
// nil times and "off" status.
type SummaryRow struct {
	EmployeeID    string
	Name          string
	Department    *string
	ClockIn       *time.Time
	ClockOut      *time.Time
	BreakMinutes  float64
	TotalHours    float64
	CurrentStatus string
	IsPresent     bool
}

// StatusCounters feeds the admin dashboard header.
type StatusCounters struct {
	ActiveUsers      int
	TodayAttendance  int
	CurrentlyWorking int
}

// MonthlyStats aggregates one employee's month.
type MonthlyStats struct {
	WorkDays     int
	TotalHours   float64
	AverageHours float64
}

// ExportRow is one line of the CSV export.
type ExportRow struct {
	EmployeeID   string
	Name         string
	Date         time.Time
	ClockIn      *time.Time
	ClockOut     *time.Time
	BreakMinutes float64
	TotalHours   *float64
}
