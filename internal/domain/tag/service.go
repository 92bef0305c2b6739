package tag

import (
	"context"
	"time"
)

type Service interface {
	List(ctx context.Context) ([]TagResponse, error)
	// SyncFromNotion pulls the tag database from Notion and upserts
	// every page with a non-empty title. Returns the number of tags
	// written.
	SyncFromNotion(ctx context.Context, now time.Time) (int, error)
	RecordWorkTime(ctx context.Context, userID string, req *RecordWorkTimeRequest, now time.Time) (*WorkTimeResponse, error)
	MyWorkTimes(ctx context.Context, userID string, date time.Time) ([]WorkTimeResponse, error)
	Summary(ctx context.Context, from, to time.Time) ([]SummaryRowResponse, error)
}
