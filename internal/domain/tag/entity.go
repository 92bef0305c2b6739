package tag

import "time"

// Tag is a work category mirrored from a Notion database. NotionID is
// the upstream page ID and is the upsert key during sync.
type Tag struct {
	ID        string
	NotionID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkTime is the minutes one user spent on one tag on one day. At
// most one row exists per (UserID, TagID, Date).
type WorkTime struct {
	ID        string
	UserID    string
	TagID     string
	Date      time.Time
	Minutes   float64
	UpdatedAt time.Time

	TagName  *string
	Username *string
}
