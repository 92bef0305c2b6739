package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/tag"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/database"
)

type tagRepository struct {
	db *database.DB
}

func NewTagRepository(db *database.DB) tag.Repository {
	return &tagRepository{db: db}
}

// List implements tag.Repository.
func (r *tagRepository) List(ctx context.Context) ([]tag.Tag, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, notion_id, name, created_at, updated_at
		FROM tags
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []tag.Tag
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.ID, &t.NotionID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}

// GetByID implements tag.Repository.
func (r *tagRepository) GetByID(ctx context.Context, id string) (*tag.Tag, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, notion_id, name, created_at, updated_at FROM tags WHERE id = $1 LIMIT 1`

	var t tag.Tag
	err := q.QueryRow(ctx, query, id).Scan(&t.ID, &t.NotionID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tag.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return &t, nil
}

// UpsertByNotionID implements tag.Repository.
func (r *tagRepository) UpsertByNotionID(ctx context.Context, notionID, name string, now time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tags (id, notion_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (notion_id) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := q.Exec(ctx, query, uuid.New().String(), notionID, name, now); err != nil {
		return fmt.Errorf("failed to upsert tag: %w", err)
	}

	return nil
}

type tagWorkTimeRepository struct {
	db *database.DB
}

func NewTagWorkTimeRepository(db *database.DB) tag.WorkTimeRepository {
	return &tagWorkTimeRepository{db: db}
}

// Upsert implements tag.WorkTimeRepository.
func (r *tagWorkTimeRepository) Upsert(ctx context.Context, wt *tag.WorkTime) error {
	q := GetQuerier(ctx, r.db)

	if wt.ID == "" {
		wt.ID = uuid.New().String()
	}

	query := `
		INSERT INTO tag_work_times (id, user_id, tag_id, date, minutes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, tag_id, date) DO UPDATE SET
			minutes = EXCLUDED.minutes,
			updated_at = NOW()
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query, wt.ID, wt.UserID, wt.TagID, wt.Date, wt.Minutes).
		Scan(&wt.ID, &wt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert tag work time: %w", err)
	}

	return nil
}

// ListForUserDate implements tag.WorkTimeRepository.
func (r *tagWorkTimeRepository) ListForUserDate(ctx context.Context, userID string, date time.Time) ([]tag.WorkTime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.user_id, w.tag_id, w.date, w.minutes, w.updated_at, t.name
		FROM tag_work_times w
		JOIN tags t ON t.id = w.tag_id
		WHERE w.user_id = $1
		  AND w.date = $2
		ORDER BY t.name ASC
	`

	rows, err := q.Query(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list tag work times: %w", err)
	}
	defer rows.Close()

	var workTimes []tag.WorkTime
	for rows.Next() {
		var wt tag.WorkTime
		if err := rows.Scan(&wt.ID, &wt.UserID, &wt.TagID, &wt.Date, &wt.Minutes, &wt.UpdatedAt, &wt.TagName); err != nil {
			return nil, fmt.Errorf("failed to scan tag work time: %w", err)
		}
		workTimes = append(workTimes, wt)
	}

	return workTimes, rows.Err()
}

// SummaryRange implements tag.WorkTimeRepository.
func (r *tagWorkTimeRepository) SummaryRange(ctx context.Context, from, to time.Time) ([]tag.WorkTime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.tag_id, t.name, SUM(w.minutes)
		FROM tag_work_times w
		JOIN tags t ON t.id = w.tag_id
		WHERE w.date BETWEEN $1 AND $2
		GROUP BY w.tag_id, t.name
		ORDER BY t.name ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize tag work times: %w", err)
	}
	defer rows.Close()

	var summary []tag.WorkTime
	for rows.Next() {
		var wt tag.WorkTime
		if err := rows.Scan(&wt.TagID, &wt.TagName, &wt.Minutes); err != nil {
			return nil, fmt.Errorf("failed to scan tag summary row: %w", err)
		}
		summary = append(summary, wt)
	}

	return summary, rows.Err()
}
