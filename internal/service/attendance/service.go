package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/attendance"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	tx  database.TxManager
	loc *time.Location
	attendance.WorkStatusRepository
	attendance.TimeRecordRepository
}

func NewAttendanceService(
	tx database.TxManager,
	loc *time.Location,
	workStatusRepo attendance.WorkStatusRepository,
	timeRecordRepo attendance.TimeRecordRepository,
) attendance.Service {
	return &AttendanceServiceImpl{
		tx:                   tx,
		loc:                  loc,
		WorkStatusRepository: workStatusRepo,
		TimeRecordRepository: timeRecordRepo,
	}
}

// dateOf truncates now to its calendar date in the service timezone.
func (s *AttendanceServiceImpl) dateOf(now time.Time) time.Time {
	local := now.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// totalHours settles worked hours for a closed record: elapsed time
// minus breaks, clamped at zero so long breaks never go negative.
func totalHours(clockIn, clockOut time.Time, breakMinutes float64) float64 {
	worked := clockOut.Sub(clockIn).Hours() - breakMinutes/60
	return math.Max(0, worked)
}

// ClockIn implements attendance.Service.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, employeeID string, now time.Time) (*attendance.TimeRecord, error) {
	date := s.dateOf(now)

	var record *attendance.TimeRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.LockEmployee(ctx, employeeID); err != nil {
			return err
		}

		if _, err := s.GetOrCreate(ctx, employeeID); err != nil {
			return err
		}

		existing, err := s.GetForDate(ctx, employeeID, date)
		if err != nil {
			return err
		}
		if existing != nil && existing.ClockIn != nil {
			return attendance.ErrAlreadyClockedIn
		}

		clockIn := now
		if existing != nil {
			existing.ClockIn = &clockIn
			record = existing
			if err := s.Update(ctx, existing); err != nil {
				return err
			}
		} else {
			record = &attendance.TimeRecord{
				EmployeeID: employeeID,
				Date:       date,
				ClockIn:    &clockIn,
			}
			if err := s.Create(ctx, record); err != nil {
				return err
			}
		}

		return s.Set(ctx, employeeID, attendance.StatusWorking, nil, now)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ClockOut implements attendance.Service. Closing the record works
// from any state; an unfinished break contributes no break time.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, employeeID string, now time.Time) (*attendance.TimeRecord, error) {
	date := s.dateOf(now)

	var record *attendance.TimeRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.LockEmployee(ctx, employeeID); err != nil {
			return err
		}

		existing, err := s.GetForDate(ctx, employeeID, date)
		if err != nil {
			return err
		}
		if existing == nil || existing.ClockIn == nil {
			return attendance.ErrNotClockedIn
		}
		if existing.ClockOut != nil {
			return attendance.ErrAlreadyClockedOut
		}

		clockOut := now
		existing.ClockOut = &clockOut
		total := totalHours(*existing.ClockIn, clockOut, existing.BreakMinutes)
		existing.TotalHours = &total
		record = existing

		if err := s.Update(ctx, existing); err != nil {
			return err
		}

		return s.Set(ctx, employeeID, attendance.StatusOff, nil, now)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// StartBreak implements attendance.Service.
func (s *AttendanceServiceImpl) StartBreak(ctx context.Context, employeeID string, now time.Time) (*attendance.WorkStatus, error) {
	var status *attendance.WorkStatus
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.LockEmployee(ctx, employeeID); err != nil {
			return err
		}

		ws, err := s.GetOrCreate(ctx, employeeID)
		if err != nil {
			return err
		}
		if ws.Status != attendance.StatusWorking {
			return attendance.ErrNotWorking
		}

		breakStart := now
		if err := s.Set(ctx, employeeID, attendance.StatusBreak, &breakStart, now); err != nil {
			return err
		}

		ws.Status = attendance.StatusBreak
		ws.BreakStart = &breakStart
		ws.LastUpdate = now
		status = ws
		return nil
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}

// EndBreak implements attendance.Service. Break time accrues on the
// day's record, which is created on the spot if the break spans a day
// the employee never clocked in on.
func (s *AttendanceServiceImpl) EndBreak(ctx context.Context, employeeID string, now time.Time) (*attendance.TimeRecord, error) {
	date := s.dateOf(now)

	var record *attendance.TimeRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.LockEmployee(ctx, employeeID); err != nil {
			return err
		}

		ws, err := s.GetOrCreate(ctx, employeeID)
		if err != nil {
			return err
		}
		if ws.Status != attendance.StatusBreak || ws.BreakStart == nil {
			return attendance.ErrNotOnBreak
		}

		breakMinutes := now.Sub(*ws.BreakStart).Minutes()
		if breakMinutes < 0 {
			breakMinutes = 0
		}

		existing, err := s.GetForDate(ctx, employeeID, date)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.BreakMinutes += breakMinutes
			record = existing
			if err := s.Update(ctx, existing); err != nil {
				return err
			}
		} else {
			record = &attendance.TimeRecord{
				EmployeeID:   employeeID,
				Date:         date,
				BreakMinutes: breakMinutes,
			}
			if err := s.Create(ctx, record); err != nil {
				return err
			}
		}

		return s.Set(ctx, employeeID, attendance.StatusWorking, nil, now)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// AttachPhoto implements attendance.Service.
func (s *AttendanceServiceImpl) AttachPhoto(ctx context.Context, employeeID string, now time.Time, filename string) (*attendance.TimeRecord, error) {
	date := s.dateOf(now)

	var record *attendance.TimeRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.LockEmployee(ctx, employeeID); err != nil {
			return err
		}

		existing, err := s.GetForDate(ctx, employeeID, date)
		if err != nil {
			return err
		}
		if existing == nil {
			return attendance.ErrRecordNotFound
		}

		existing.PhotoFilename = &filename
		record = existing
		return s.Update(ctx, existing)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Today implements attendance.Service. A pure read: employees who have
// never clocked anything are reported as off without a status row being
// written; the row appears on their first transition.
func (s *AttendanceServiceImpl) Today(ctx context.Context, employeeID string, now time.Time) (*attendance.WorkStatus, *attendance.TimeRecord, error) {
	ws, err := s.Get(ctx, employeeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load work status: %w", err)
	}
	if ws == nil {
		ws = &attendance.WorkStatus{
			EmployeeID: employeeID,
			Status:     attendance.StatusOff,
			LastUpdate: now,
		}
	}

	record, err := s.GetForDate(ctx, employeeID, s.dateOf(now))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load today's record: %w", err)
	}

	return ws, record, nil
}

// Recent implements attendance.Service.
func (s *AttendanceServiceImpl) Recent(ctx context.Context, employeeID string, limit int) ([]attendance.TimeRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.GetRecent(ctx, employeeID, limit)
}

// Monthly implements attendance.Service.
func (s *AttendanceServiceImpl) Monthly(ctx context.Context, employeeID string, month time.Time) ([]attendance.TimeRecord, error) {
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return s.GetRange(ctx, employeeID, from, to)
}

// ForceClose implements attendance.Service.
func (s *AttendanceServiceImpl) ForceClose(ctx context.Context, employeeID string, date time.Time, closeAt time.Time) (*attendance.TimeRecord, error) {
	var record *attendance.TimeRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.LockEmployee(ctx, employeeID); err != nil {
			return err
		}

		existing, err := s.GetForDate(ctx, employeeID, s.dateOf(date))
		if err != nil {
			return err
		}
		if existing == nil || existing.ClockIn == nil {
			return attendance.ErrRecordNotFound
		}
		if existing.ClockOut != nil {
			return attendance.ErrRecordClosed
		}

		if closeAt.Before(*existing.ClockIn) {
			closeAt = *existing.ClockIn
		}

		existing.ClockOut = &closeAt
		total := totalHours(*existing.ClockIn, closeAt, existing.BreakMinutes)
		existing.TotalHours = &total
		record = existing

		if err := s.Update(ctx, existing); err != nil {
			return err
		}

		// Only reset the live status if it still points at this day's
		// open session.
		ws, err := s.Get(ctx, employeeID)
		if err != nil {
			return err
		}
		if ws != nil && ws.Status != attendance.StatusOff {
			return s.Set(ctx, employeeID, attendance.StatusOff, nil, closeAt)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}
