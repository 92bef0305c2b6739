package dailyreport

import (
	"context"
	"time"
)

type Repository interface {
	// GetForDate returns (nil, nil) when no report exists for the day.
	GetForDate(ctx context.Context, userID string, date time.Time) (*DailyReport, error)
	// Upsert inserts the report or replaces the content of the existing
	// row for the same user and date.
	Upsert(ctx context.Context, report *DailyReport) error
	ListByUser(ctx context.Context, userID string, limit int) ([]DailyReport, error)
	ListForDate(ctx context.Context, date time.Time) ([]DailyReport, error)
}
