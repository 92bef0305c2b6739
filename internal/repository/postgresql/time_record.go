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

type timeRecordRepository struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) attendance.TimeRecordRepository {
	return &timeRecordRepository{db: db}
}

const timeRecordColumns = `
	id, employee_id, date, clock_in, clock_out, break_minutes,
	total_hours, photo_filename, created_at, updated_at
`

func scanTimeRecord(row pgx.Row) (*attendance.TimeRecord, error) {
	var rec attendance.TimeRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&rec.BreakMinutes, &rec.TotalHours, &rec.PhotoFilename,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetForDate implements attendance.TimeRecordRepository.
func (r *timeRecordRepository) GetForDate(ctx context.Context, employeeID string, date time.Time) (*attendance.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	rec, err := scanTimeRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get time record: %w", err)
	}

	return rec, nil
}

// Create implements attendance.TimeRecordRepository.
func (r *timeRecordRepository) Create(ctx context.Context, record *attendance.TimeRecord) error {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO time_records (
			id, employee_id, date, clock_in, clock_out, break_minutes,
			total_hours, photo_filename
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.ClockIn,
		record.ClockOut,
		record.BreakMinutes,
		record.TotalHours,
		record.PhotoFilename,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create time record: %w", err)
	}

	return nil
}

// Update implements attendance.TimeRecordRepository.
func (r *timeRecordRepository) Update(ctx context.Context, record *attendance.TimeRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_records
		SET clock_in = $2, clock_out = $3, break_minutes = $4,
			total_hours = $5, photo_filename = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.ClockIn,
		record.ClockOut,
		record.BreakMinutes,
		record.TotalHours,
		record.PhotoFilename,
	).Scan(&record.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update time record: %w", err)
	}

	return nil
}

// GetRecent implements attendance.TimeRecordRepository.
func (r *timeRecordRepository) GetRecent(ctx context.Context, employeeID string, limit int) ([]attendance.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE employee_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent time records: %w", err)
	}
	defer rows.Close()

	return collectTimeRecords(rows)
}

// GetRange implements attendance.TimeRecordRepository.
func (r *timeRecordRepository) GetRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records in range: %w", err)
	}
	defer rows.Close()

	return collectTimeRecords(rows)
}

// ListForDate implements attendance.TimeRecordRepository.
func (r *timeRecordRepository) ListForDate(ctx context.Context, date time.Time) ([]attendance.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.date, t.clock_in, t.clock_out,
			   t.break_minutes, t.total_hours, t.photo_filename,
			   t.created_at, t.updated_at, e.name
		FROM time_records t
		JOIN employees e ON e.employee_id = t.employee_id
		WHERE t.date = $1
		ORDER BY e.employee_id ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records for date: %w", err)
	}
	defer rows.Close()

	var records []attendance.TimeRecord
	for rows.Next() {
		var rec attendance.TimeRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
			&rec.BreakMinutes, &rec.TotalHours, &rec.PhotoFilename,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// CountForDate implements attendance.TimeRecordRepository.
func (r *timeRecordRepository) CountForDate(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM time_records WHERE date = $1`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count time records: %w", err)
	}

	return count, nil
}

// CountWorkDays implements attendance.TimeRecordRepository.
func (r *timeRecordRepository) CountWorkDays(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM time_records
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		  AND clock_in IS NOT NULL
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count work days: %w", err)
	}

	return count, nil
}

func collectTimeRecords(rows pgx.Rows) ([]attendance.TimeRecord, error) {
	var records []attendance.TimeRecord
	for rows.Next() {
		var rec attendance.TimeRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
			&rec.BreakMinutes, &rec.TotalHours, &rec.PhotoFilename,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
