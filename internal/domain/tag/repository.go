package tag

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context) ([]Tag, error)
	GetByID(ctx context.Context, id string) (*Tag, error)
	// UpsertByNotionID inserts the tag or renames the existing row with
	// the same Notion page ID.
	UpsertByNotionID(ctx context.Context, notionID, name string, now time.Time) error
}

type WorkTimeRepository interface {
	// Upsert replaces the minutes for the same (user, tag, date) triple.
	Upsert(ctx context.Context, wt *WorkTime) error
	ListForUserDate(ctx context.Context, userID string, date time.Time) ([]WorkTime, error)
	// SummaryRange aggregates minutes per tag across all users.
	SummaryRange(ctx context.Context, from, to time.Time) ([]WorkTime, error)
}
