package tag

import "github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"

type TagResponse struct {
	ID       string `json:"id"`
	NotionID string `json:"notion_id"`
	Name     string `json:"name"`
}

type SyncResponse struct {
	Synced int `json:"synced"`
}

type RecordWorkTimeRequest struct {
	TagID   string  `json:"tag_id"`
	Date    string  `json:"date"`
	Minutes float64 `json:"minutes"`
}

func (r *RecordWorkTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TagID) {
		errs = append(errs, validator.ValidationError{Field: "tag_id", Message: "Tag ID is required"})
	}

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
		}
	}

	if r.Minutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "minutes", Message: "Minutes must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkTimeResponse struct {
	TagID   string  `json:"tag_id"`
	TagName *string `json:"tag_name,omitempty"`
	Date    string  `json:"date"`
	Minutes float64 `json:"minutes"`
}

type SummaryRowResponse struct {
	TagID   string  `json:"tag_id"`
	TagName *string `json:"tag_name,omitempty"`
	Minutes float64 `json:"minutes"`
}

func NewWorkTimeResponse(wt *WorkTime) WorkTimeResponse {
	return WorkTimeResponse{
		TagID:   wt.TagID,
		TagName: wt.TagName,
		Date:    wt.Date.Format("2006-01-02"),
		Minutes: wt.Minutes,
	}
}
