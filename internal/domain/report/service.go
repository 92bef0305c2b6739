package report

import (
	"context"
	"time"
)

type Service interface {
	DailySummary(ctx context.Context, date time.Time) ([]SummaryRowResponse, error)
	Counters(ctx context.Context, now time.Time) (*CountersResponse, error)
	// ExportCSV renders the range as CSV with a UTF-8 BOM and returns
	// the payload together with a timestamped filename.
	ExportCSV(ctx context.Context, from, to time.Time, now time.Time) ([]byte, string, error)
	MyStats(ctx context.Context, employeeID string, month time.Time) (*MyStatsResponse, error)
}
