package tag

import (
	"context"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/tag"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/notion"
)

// NotionClient is the slice of the Notion API the sync needs.
type NotionClient interface {
	QueryDatabase(ctx context.Context, databaseID, titleProp string) ([]notion.Page, error)
}

type TagServiceImpl struct {
	tag.Repository
	workTimeRepo  tag.WorkTimeRepository
	notionClient  NotionClient
	databaseID    string
	titleProperty string
	loc           *time.Location
}

func NewTagService(
	tagRepo tag.Repository,
	workTimeRepo tag.WorkTimeRepository,
	notionClient NotionClient,
	databaseID string,
	titleProperty string,
	loc *time.Location,
) tag.Service {
	return &TagServiceImpl{
		Repository:    tagRepo,
		workTimeRepo:  workTimeRepo,
		notionClient:  notionClient,
		databaseID:    databaseID,
		titleProperty: titleProperty,
		loc:           loc,
	}
}

// List implements tag.Service.
func (s *TagServiceImpl) List(ctx context.Context) ([]tag.TagResponse, error) {
	tags, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]tag.TagResponse, 0, len(tags))
	for _, t := range tags {
		responses = append(responses, tag.TagResponse{
			ID:       t.ID,
			NotionID: t.NotionID,
			Name:     t.Name,
		})
	}
	return responses, nil
}

// SyncFromNotion implements tag.Service.
func (s *TagServiceImpl) SyncFromNotion(ctx context.Context, now time.Time) (int, error) {
	if s.notionClient == nil || s.databaseID == "" {
		return 0, tag.ErrSyncUnavailable
	}

	pages, err := s.notionClient.QueryDatabase(ctx, s.databaseID, s.titleProperty)
	if err != nil {
		return 0, err
	}

	// Dedupe on page ID; the API should not repeat pages, but pagination
	// against a database being edited can.
	seen := make(map[string]bool, len(pages))
	synced := 0
	for _, page := range pages {
		if seen[page.ID] {
			continue
		}
		seen[page.ID] = true

		if err := s.UpsertByNotionID(ctx, page.ID, page.Title, now); err != nil {
			return synced, err
		}
		synced++
	}

	return synced, nil
}

// RecordWorkTime implements tag.Service.
func (s *TagServiceImpl) RecordWorkTime(ctx context.Context, userID string, req *tag.RecordWorkTimeRequest, now time.Time) (*tag.WorkTimeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.GetByID(ctx, req.TagID)
	if err != nil {
		return nil, err
	}

	date := s.dateOf(now)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err == nil {
			date = parsed
		}
	}

	wt := &tag.WorkTime{
		UserID:  userID,
		TagID:   t.ID,
		Date:    date,
		Minutes: req.Minutes,
		TagName: &t.Name,
	}
	if err := s.workTimeRepo.Upsert(ctx, wt); err != nil {
		return nil, err
	}

	resp := tag.NewWorkTimeResponse(wt)
	return &resp, nil
}

// MyWorkTimes implements tag.Service.
func (s *TagServiceImpl) MyWorkTimes(ctx context.Context, userID string, date time.Time) ([]tag.WorkTimeResponse, error) {
	workTimes, err := s.workTimeRepo.ListForUserDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	responses := make([]tag.WorkTimeResponse, 0, len(workTimes))
	for i := range workTimes {
		responses = append(responses, tag.NewWorkTimeResponse(&workTimes[i]))
	}
	return responses, nil
}

// Summary implements tag.Service.
func (s *TagServiceImpl) Summary(ctx context.Context, from, to time.Time) ([]tag.SummaryRowResponse, error) {
	rows, err := s.workTimeRepo.SummaryRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]tag.SummaryRowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, tag.SummaryRowResponse{
			TagID:   row.TagID,
			TagName: row.TagName,
			Minutes: row.Minutes,
		})
	}
	return responses, nil
}

func (s *TagServiceImpl) dateOf(now time.Time) time.Time {
	local := now.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
