package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/tag"
)

// TagJobs keeps the local tag table in step with the Notion database.
type TagJobs struct {
	tagSvc   tag.Service
	interval time.Duration
}

func NewTagJobs(tagSvc tag.Service, interval time.Duration) *TagJobs {
	return &TagJobs{tagSvc: tagSvc, interval: interval}
}

func (j *TagJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("notion_tag_sync", j.interval, j.SyncTags)
}

func (j *TagJobs) SyncTags(ctx context.Context) error {
	synced, err := j.tagSvc.SyncFromNotion(ctx, time.Now())
	if err != nil {
		if errors.Is(err, tag.ErrSyncUnavailable) {
			slog.Debug("Tag sync skipped: Notion not configured")
			return nil
		}
		return err
	}

	slog.Info("Tag sync completed", "synced", synced)
	return nil
}
