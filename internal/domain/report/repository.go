package report

import (
	"context"
	"time"
)

type Repository interface {
	// DailySummary joins active employees against the day's records and
	// live statuses. Employees without a record appear with nil times.
	DailySummary(ctx context.Context, date time.Time) ([]SummaryRow, error)
	ExportRange(ctx context.Context, from, to time.Time) ([]ExportRow, error)
	MonthlyStats(ctx context.Context, employeeID string, from, to time.Time) (*MonthlyStats, error)
}
