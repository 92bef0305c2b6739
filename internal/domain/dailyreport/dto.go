package dailyreport

import "github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"

type SubmitReportRequest struct {
	Date         string  `json:"date"`
	WorkContent  string  `json:"work_content"`
	Achievements *string `json:"achievements"`
	Issues       *string `json:"issues"`
	TomorrowPlan *string `json:"tomorrow_plan"`
	Remarks      *string `json:"remarks"`
}

func (r *SubmitReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkContent) {
		errs = append(errs, validator.ValidationError{Field: "work_content", Message: "Work content is required"})
	}

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Username     *string `json:"username,omitempty"`
	Date         string  `json:"date"`
	WorkContent  string  `json:"work_content"`
	Achievements *string `json:"achievements"`
	Issues       *string `json:"issues"`
	TomorrowPlan *string `json:"tomorrow_plan"`
	Remarks      *string `json:"remarks"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewReportResponse(report *DailyReport) *ReportResponse {
	return &ReportResponse{
		ID:           report.ID,
		UserID:       report.UserID,
		Username:     report.Username,
		Date:         report.Date.Format("2006-01-02"),
		WorkContent:  report.WorkContent,
		Achievements: report.Achievements,
		Issues:       report.Issues,
		TomorrowPlan: report.TomorrowPlan,
		Remarks:      report.Remarks,
		UpdatedAt:    report.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
