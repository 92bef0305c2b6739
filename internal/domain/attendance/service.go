package attendance

import (
	"context"
	"time"
)

// Service drives the clock-in/out/break state machine. Every mutation
// takes the wall-clock time as input so callers control the timezone
// and tests control the clock.
type Service interface {
	ClockIn(ctx context.Context, employeeID string, now time.Time) (*TimeRecord, error)
	ClockOut(ctx context.Context, employeeID string, now time.Time) (*TimeRecord, error)
	StartBreak(ctx context.Context, employeeID string, now time.Time) (*WorkStatus, error)
	EndBreak(ctx context.Context, employeeID string, now time.Time) (*TimeRecord, error)
	// AttachPhoto links an uploaded photo to today's record.
	AttachPhoto(ctx context.Context, employeeID string, now time.Time, filename string) (*TimeRecord, error)
	Today(ctx context.Context, employeeID string, now time.Time) (*WorkStatus, *TimeRecord, error)
	Recent(ctx context.Context, employeeID string, limit int) ([]TimeRecord, error)
	Monthly(ctx context.Context, employeeID string, month time.Time) ([]TimeRecord, error)
	// ForceClose closes a dangling record left by a missed clock-out.
	// Admin only. closeAt is the admin-supplied clock-out time (clamped
	// to no earlier than the recorded clock-in); total hours are settled
	// against it, never against the time the admin happens to act.
	ForceClose(ctx context.Context, employeeID string, date time.Time, closeAt time.Time) (*TimeRecord, error)
}
