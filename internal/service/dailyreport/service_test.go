package dailyreport

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/dailyreport"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"
)

type fakeReportRepo struct {
	reports map[string]*dailyreport.DailyReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*dailyreport.DailyReport)}
}

func reportKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (r *fakeReportRepo) GetForDate(_ context.Context, userID string, date time.Time) (*dailyreport.DailyReport, error) {
	report, ok := r.reports[reportKey(userID, date)]
	if !ok {
		return nil, nil
	}
	copied := *report
	return &copied, nil
}

func (r *fakeReportRepo) Upsert(_ context.Context, report *dailyreport.DailyReport) error {
	key := reportKey(report.UserID, report.Date)
	if existing, ok := r.reports[key]; ok {
		report.ID = existing.ID
	} else {
		report.ID = "report-" + key
	}
	copied := *report
	r.reports[key] = &copied
	return nil
}

func (r *fakeReportRepo) ListByUser(_ context.Context, userID string, limit int) ([]dailyreport.DailyReport, error) {
	var out []dailyreport.DailyReport
	for _, report := range r.reports {
		if report.UserID == userID {
			out = append(out, *report)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeReportRepo) ListForDate(_ context.Context, date time.Time) ([]dailyreport.DailyReport, error) {
	var out []dailyreport.DailyReport
	for _, report := range r.reports {
		if report.Date.Equal(date) {
			out = append(out, *report)
		}
	}
	return out, nil
}

func newTestService(t *testing.T) (dailyreport.Service, *fakeReportRepo) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	repo := newFakeReportRepo()
	return NewDailyReportService(repo, loc), repo
}

func TestSubmitReport(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Submit(context.Background(), "user-1", &dailyreport.SubmitReportRequest{
		Date:        "2024-01-15",
		WorkContent: "Implemented the export endpoint",
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", resp.Date)
	assert.Equal(t, "Implemented the export endpoint", resp.WorkContent)
}

func TestSubmitReportDefaultsToToday(t *testing.T) {
	svc, _ := newTestService(t)

	// 20:00 UTC on the 15th is already the 16th in Tokyo.
	now := time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC)
	resp, err := svc.Submit(context.Background(), "user-1", &dailyreport.SubmitReportRequest{
		WorkContent: "Worked on reviews",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-16", resp.Date)
}

func TestSubmitReportReplacesSameDay(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, "user-1", &dailyreport.SubmitReportRequest{
		Date:        "2024-01-15",
		WorkContent: "Draft",
	}, time.Now())
	require.NoError(t, err)

	second, err := svc.Submit(ctx, "user-1", &dailyreport.SubmitReportRequest{
		Date:        "2024-01-15",
		WorkContent: "Final version",
	}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.reports, 1)

	got, err := svc.GetForDate(ctx, "user-1", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Final version", got.WorkContent)
}

func TestSubmitReportRequiresContent(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), "user-1", &dailyreport.SubmitReportRequest{}, time.Now())

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "work_content")
}

func TestGetForDateNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetForDate(context.Background(), "user-1", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, dailyreport.ErrReportNotFound)
}

func TestListMine(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, date := range []string{"2024-01-13", "2024-01-14", "2024-01-15"} {
		_, err := svc.Submit(ctx, "user-1", &dailyreport.SubmitReportRequest{
			Date:        date,
			WorkContent: "Work on " + date,
		}, time.Now())
		require.NoError(t, err)
	}
	_, err := svc.Submit(ctx, "user-2", &dailyreport.SubmitReportRequest{
		Date:        "2024-01-15",
		WorkContent: "Someone else",
	}, time.Now())
	require.NoError(t, err)

	reports, err := svc.ListMine(ctx, "user-1", 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "2024-01-15", reports[0].Date)
	assert.Equal(t, "2024-01-14", reports[1].Date)
}
