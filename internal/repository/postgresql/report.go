package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/report"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

// DailySummary implements report.Repository. Left joins keep active
// employees in the result even when they have no record for the day.
func (r *reportRepository) DailySummary(ctx context.Context, date time.Time) ([]report.SummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_id, e.name, e.department,
			   t.clock_in, t.clock_out,
			   COALESCE(t.break_minutes, 0),
			   COALESCE(t.total_hours, 0),
			   COALESCE(w.status, 'off'),
			   t.clock_in IS NOT NULL
		FROM employees e
		LEFT JOIN time_records t ON t.employee_id = e.employee_id AND t.date = $1
		LEFT JOIN work_statuses w ON w.employee_id = e.employee_id
		WHERE e.status = 'active'
		ORDER BY e.employee_id ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily summary: %w", err)
	}
	defer rows.Close()

	var summary []report.SummaryRow
	for rows.Next() {
		var row report.SummaryRow
		err := rows.Scan(
			&row.EmployeeID, &row.Name, &row.Department,
			&row.ClockIn, &row.ClockOut,
			&row.BreakMinutes, &row.TotalHours,
			&row.CurrentStatus, &row.IsPresent,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		summary = append(summary, row)
	}

	return summary, rows.Err()
}

// ExportRange implements report.Repository.
func (r *reportRepository) ExportRange(ctx context.Context, from, to time.Time) ([]report.ExportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.employee_id, e.name, t.date, t.clock_in, t.clock_out,
			   t.break_minutes, t.total_hours
		FROM time_records t
		JOIN employees e ON e.employee_id = t.employee_id
		WHERE t.date BETWEEN $1 AND $2
		ORDER BY t.date ASC, t.employee_id ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query export range: %w", err)
	}
	defer rows.Close()

	var export []report.ExportRow
	for rows.Next() {
		var row report.ExportRow
		err := rows.Scan(
			&row.EmployeeID, &row.Name, &row.Date, &row.ClockIn, &row.ClockOut,
			&row.BreakMinutes, &row.TotalHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan export row: %w", err)
		}
		export = append(export, row)
	}

	return export, rows.Err()
}

// MonthlyStats implements report.Repository.
func (r *reportRepository) MonthlyStats(ctx context.Context, employeeID string, from, to time.Time) (*report.MonthlyStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FILTER (WHERE clock_in IS NOT NULL),
			   COALESCE(SUM(total_hours), 0)
		FROM time_records
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
	`

	var stats report.MonthlyStats
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&stats.WorkDays, &stats.TotalHours); err != nil {
		return nil, fmt.Errorf("failed to query monthly stats: %w", err)
	}

	if stats.WorkDays > 0 {
		stats.AverageHours = stats.TotalHours / float64(stats.WorkDays)
	}

	return &stats, nil
}
