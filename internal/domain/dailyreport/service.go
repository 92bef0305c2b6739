package dailyreport

import (
	"context"
	"time"
)

type Service interface {
	// Submit creates or replaces the report for the request's date,
	// defaulting to the current day when the date is omitted.
	Submit(ctx context.Context, userID string, req *SubmitReportRequest, now time.Time) (*ReportResponse, error)
	GetForDate(ctx context.Context, userID string, date time.Time) (*ReportResponse, error)
	ListMine(ctx context.Context, userID string, limit int) ([]ReportResponse, error)
	ListForDate(ctx context.Context, date time.Time) ([]ReportResponse, error)
}
