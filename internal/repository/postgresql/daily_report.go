package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/dailyreport"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/database"
)

type dailyReportRepository struct {
	db *database.DB
}

func NewDailyReportRepository(db *database.DB) dailyreport.Repository {
	return &dailyReportRepository{db: db}
}

// GetForDate implements dailyreport.Repository.
func (r *dailyReportRepository) GetForDate(ctx context.Context, userID string, date time.Time) (*dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, work_content, achievements, issues,
			   tomorrow_plan, remarks, created_at, updated_at
		FROM daily_reports
		WHERE user_id = $1
		  AND date = $2
		LIMIT 1
	`

	var rep dailyreport.DailyReport
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&rep.ID, &rep.UserID, &rep.Date, &rep.WorkContent, &rep.Achievements,
		&rep.Issues, &rep.TomorrowPlan, &rep.Remarks, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily report: %w", err)
	}

	return &rep, nil
}

// Upsert implements dailyreport.Repository.
func (r *dailyReportRepository) Upsert(ctx context.Context, report *dailyreport.DailyReport) error {
	q := GetQuerier(ctx, r.db)

	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	query := `
		INSERT INTO daily_reports (
			id, user_id, date, work_content, achievements, issues, tomorrow_plan, remarks
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, date) DO UPDATE SET
			work_content = EXCLUDED.work_content,
			achievements = EXCLUDED.achievements,
			issues = EXCLUDED.issues,
			tomorrow_plan = EXCLUDED.tomorrow_plan,
			remarks = EXCLUDED.remarks,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		report.ID, report.UserID, report.Date, report.WorkContent,
		report.Achievements, report.Issues, report.TomorrowPlan, report.Remarks,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert daily report: %w", err)
	}

	return nil
}

// ListByUser implements dailyreport.Repository.
func (r *dailyReportRepository) ListByUser(ctx context.Context, userID string, limit int) ([]dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, work_content, achievements, issues,
			   tomorrow_plan, remarks, created_at, updated_at
		FROM daily_reports
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily reports: %w", err)
	}
	defer rows.Close()

	var reports []dailyreport.DailyReport
	for rows.Next() {
		var rep dailyreport.DailyReport
		err := rows.Scan(
			&rep.ID, &rep.UserID, &rep.Date, &rep.WorkContent, &rep.Achievements,
			&rep.Issues, &rep.TomorrowPlan, &rep.Remarks, &rep.CreatedAt, &rep.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily report: %w", err)
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}

// ListForDate implements dailyreport.Repository.
func (r *dailyReportRepository) ListForDate(ctx context.Context, date time.Time) ([]dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.user_id, d.date, d.work_content, d.achievements, d.issues,
			   d.tomorrow_plan, d.remarks, d.created_at, d.updated_at, u.username
		FROM daily_reports d
		JOIN users u ON u.id = d.user_id
		WHERE d.date = $1
		ORDER BY u.username ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily reports for date: %w", err)
	}
	defer rows.Close()

	var reports []dailyreport.DailyReport
	for rows.Next() {
		var rep dailyreport.DailyReport
		err := rows.Scan(
			&rep.ID, &rep.UserID, &rep.Date, &rep.WorkContent, &rep.Achievements,
			&rep.Issues, &rep.TomorrowPlan, &rep.Remarks, &rep.CreatedAt, &rep.UpdatedAt,
			&rep.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily report: %w", err)
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}
