package attendance

import (
	"context"
	"time"
)

type WorkStatusRepository interface {
	// GetOrCreate returns the employee's work status, creating an "off"
	// row when none exists yet.
	GetOrCreate(ctx context.Context, employeeID string) (*WorkStatus, error)
	Get(ctx context.Context, employeeID string) (*WorkStatus, error)
	Set(ctx context.Context, employeeID string, status Status, breakStart *time.Time, lastUpdate time.Time) error
	// LockEmployee serializes concurrent attendance mutations for one
	// employee. Must be called inside a transaction; the lock is released
	// on commit or rollback.
	LockEmployee(ctx context.Context, employeeID string) error
	CountByStatus(ctx context.Context, statuses []Status) (int, error)
}

type TimeRecordRepository interface {
	// GetForDate returns (nil, nil) when no record exists for the day.
	GetForDate(ctx context.Context, employeeID string, date time.Time) (*TimeRecord, error)
	Create(ctx context.Context, record *TimeRecord) error
	Update(ctx context.Context, record *TimeRecord) error
	GetRecent(ctx context.Context, employeeID string, limit int) ([]TimeRecord, error)
	GetRange(ctx context.Context, employeeID string, from, to time.Time) ([]TimeRecord, error)
	ListForDate(ctx context.Context, date time.Time) ([]TimeRecord, error)
	CountForDate(ctx context.Context, date time.Time) (int, error)
	CountWorkDays(ctx context.Context, employeeID string, from, to time.Time) (int, error)
}
