package dailyreport

import "time"

// DailyReport is the end-of-day work report for one user. One report
// exists per (UserID, Date); resubmitting replaces the content.
type DailyReport struct {
	ID           string
	UserID       string
	Date         time.Time
	WorkContent  string
	Achievements *string
	Issues       *string
	TomorrowPlan *string
	Remarks      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Username *string
}
