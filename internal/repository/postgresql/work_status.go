package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/attendance"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/database"
)

type workStatusRepository struct {
	db *database.DB
}

func NewWorkStatusRepository(db *database.DB) attendance.WorkStatusRepository {
	return &workStatusRepository{db: db}
}

// GetOrCreate implements attendance.WorkStatusRepository.
func (r *workStatusRepository) GetOrCreate(ctx context.Context, employeeID string) (*attendance.WorkStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_statuses (id, employee_id, status, break_start, last_update)
		VALUES ($1, $2, $3, NULL, NOW())
		ON CONFLICT (employee_id) DO UPDATE SET employee_id = EXCLUDED.employee_id
		RETURNING id, employee_id, status, break_start, last_update
	`

	var ws attendance.WorkStatus
	err := q.QueryRow(ctx, query, uuid.New().String(), employeeID, attendance.StatusOff).Scan(
		&ws.ID, &ws.EmployeeID, &ws.Status, &ws.BreakStart, &ws.LastUpdate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create work status: %w", err)
	}

	return &ws, nil
}

// Get implements attendance.WorkStatusRepository.
func (r *workStatusRepository) Get(ctx context.Context, employeeID string) (*attendance.WorkStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, status, break_start, last_update
		FROM work_statuses
		WHERE employee_id = $1
	`

	var ws attendance.WorkStatus
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&ws.ID, &ws.EmployeeID, &ws.Status, &ws.BreakStart, &ws.LastUpdate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get work status: %w", err)
	}

	return &ws, nil
}

// Set implements attendance.WorkStatusRepository.
func (r *workStatusRepository) Set(ctx context.Context, employeeID string, status attendance.Status, breakStart *time.Time, lastUpdate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_statuses
		SET status = $2, break_start = $3, last_update = $4
		WHERE employee_id = $1
	`

	tag, err := q.Exec(ctx, query, employeeID, status, breakStart, lastUpdate)
	if err != nil {
		return fmt.Errorf("failed to update work status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no work status row for employee %s", employeeID)
	}

	return nil
}

// LockEmployee implements attendance.WorkStatusRepository. The advisory
// lock is transaction scoped, so this must run inside WithTransaction.
func (r *workStatusRepository) LockEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, employeeID); err != nil {
		return fmt.Errorf("failed to lock employee: %w", err)
	}
	return nil
}

// CountByStatus implements attendance.WorkStatusRepository.
func (r *workStatusRepository) CountByStatus(ctx context.Context, statuses []attendance.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	query := `SELECT COUNT(*) FROM work_statuses WHERE status = ANY($1)`

	var count int
	if err := q.QueryRow(ctx, query, values).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count work statuses: %w", err)
	}

	return count, nil
}
