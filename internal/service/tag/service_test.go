package tag

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/tag"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/notion"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"
)

type fakeTagRepo struct {
	tags map[string]*tag.Tag // keyed by notion ID
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]*tag.Tag)}
}

func (r *fakeTagRepo) List(_ context.Context) ([]tag.Tag, error) {
	var out []tag.Tag
	for _, t := range r.tags {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTagRepo) GetByID(_ context.Context, id string) (*tag.Tag, error) {
	for _, t := range r.tags {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, tag.ErrTagNotFound
}

func (r *fakeTagRepo) UpsertByNotionID(_ context.Context, notionID, name string, now time.Time) error {
	if existing, ok := r.tags[notionID]; ok {
		existing.Name = name
		existing.UpdatedAt = now
		return nil
	}
	r.tags[notionID] = &tag.Tag{
		ID:        "tag-" + notionID,
		NotionID:  notionID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

type fakeWorkTimeRepo struct {
	workTimes map[string]*tag.WorkTime
}

func newFakeWorkTimeRepo() *fakeWorkTimeRepo {
	return &fakeWorkTimeRepo{workTimes: make(map[string]*tag.WorkTime)}
}

func (r *fakeWorkTimeRepo) Upsert(_ context.Context, wt *tag.WorkTime) error {
	key := wt.UserID + "|" + wt.TagID + "|" + wt.Date.Format("2006-01-02")
	copied := *wt
	r.workTimes[key] = &copied
	return nil
}

func (r *fakeWorkTimeRepo) ListForUserDate(_ context.Context, userID string, date time.Time) ([]tag.WorkTime, error) {
	var out []tag.WorkTime
	for _, wt := range r.workTimes {
		if wt.UserID == userID && wt.Date.Equal(date) {
			out = append(out, *wt)
		}
	}
	return out, nil
}

func (r *fakeWorkTimeRepo) SummaryRange(_ context.Context, from, to time.Time) ([]tag.WorkTime, error) {
	totals := make(map[string]*tag.WorkTime)
	for _, wt := range r.workTimes {
		if wt.Date.Before(from) || wt.Date.After(to) {
			continue
		}
		if agg, ok := totals[wt.TagID]; ok {
			agg.Minutes += wt.Minutes
		} else {
			copied := *wt
			totals[wt.TagID] = &copied
		}
	}
	var out []tag.WorkTime
	for _, wt := range totals {
		out = append(out, *wt)
	}
	return out, nil
}

type fakeNotionClient struct {
	pages []notion.Page
	err   error
}

func (c *fakeNotionClient) QueryDatabase(_ context.Context, _, _ string) ([]notion.Page, error) {
	return c.pages, c.err
}

func newTestService(t *testing.T, client NotionClient) (tag.Service, *fakeTagRepo, *fakeWorkTimeRepo) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tagRepo := newFakeTagRepo()
	wtRepo := newFakeWorkTimeRepo()
	svc := NewTagService(tagRepo, wtRepo, client, "db-1", "Name", loc)
	return svc, tagRepo, wtRepo
}

func TestSyncFromNotion(t *testing.T) {
	client := &fakeNotionClient{pages: []notion.Page{
		{ID: "page-1", Title: "Development"},
		{ID: "page-2", Title: "Meeting"},
	}}
	svc, tagRepo, _ := newTestService(t, client)

	now := time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC)
	synced, err := svc.SyncFromNotion(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, synced)
	assert.Equal(t, "Development", tagRepo.tags["page-1"].Name)
	assert.Equal(t, "Meeting", tagRepo.tags["page-2"].Name)
}

func TestSyncFromNotionDedupesPages(t *testing.T) {
	client := &fakeNotionClient{pages: []notion.Page{
		{ID: "page-1", Title: "Development"},
		{ID: "page-1", Title: "Development"},
	}}
	svc, _, _ := newTestService(t, client)

	synced, err := svc.SyncFromNotion(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, synced)
}

func TestSyncFromNotionRenamesExisting(t *testing.T) {
	client := &fakeNotionClient{pages: []notion.Page{{ID: "page-1", Title: "Dev"}}}
	svc, tagRepo, _ := newTestService(t, client)
	ctx := context.Background()

	_, err := svc.SyncFromNotion(ctx, time.Now())
	require.NoError(t, err)

	client.pages = []notion.Page{{ID: "page-1", Title: "Development"}}
	synced, err := svc.SyncFromNotion(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, synced)
	assert.Equal(t, "Development", tagRepo.tags["page-1"].Name)
	assert.Len(t, tagRepo.tags, 1)
}

func TestSyncUnavailableWithoutClient(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, err := svc.SyncFromNotion(context.Background(), time.Now())
	assert.ErrorIs(t, err, tag.ErrSyncUnavailable)
}

func TestRecordWorkTime(t *testing.T) {
	svc, tagRepo, wtRepo := newTestService(t, nil)
	ctx := context.Background()
	require.NoError(t, tagRepo.UpsertByNotionID(ctx, "page-1", "Development", time.Now()))

	resp, err := svc.RecordWorkTime(ctx, "user-1", &tag.RecordWorkTimeRequest{
		TagID:   "tag-page-1",
		Date:    "2024-01-15",
		Minutes: 90,
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", resp.Date)
	assert.Equal(t, 90.0, resp.Minutes)
	require.NotNil(t, resp.TagName)
	assert.Equal(t, "Development", *resp.TagName)

	// Same triple again replaces the minutes.
	_, err = svc.RecordWorkTime(ctx, "user-1", &tag.RecordWorkTimeRequest{
		TagID:   "tag-page-1",
		Date:    "2024-01-15",
		Minutes: 120,
	}, time.Now())
	require.NoError(t, err)
	assert.Len(t, wtRepo.workTimes, 1)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	times, err := svc.MyWorkTimes(ctx, "user-1", date)
	require.NoError(t, err)
	require.Len(t, times, 1)
	assert.Equal(t, 120.0, times[0].Minutes)
}

func TestRecordWorkTimeUnknownTag(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, err := svc.RecordWorkTime(context.Background(), "user-1", &tag.RecordWorkTimeRequest{
		TagID:   "missing",
		Minutes: 30,
	}, time.Now())
	assert.ErrorIs(t, err, tag.ErrTagNotFound)
}

func TestRecordWorkTimeRejectsNegativeMinutes(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, err := svc.RecordWorkTime(context.Background(), "user-1", &tag.RecordWorkTimeRequest{
		TagID:   "tag-page-1",
		Minutes: -5,
	}, time.Now())

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "minutes")
}
