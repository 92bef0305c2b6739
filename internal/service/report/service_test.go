package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/attendance"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/report"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/user"
)

type fakeReportRepo struct {
	summaryRows []report.SummaryRow
	exportRows  []report.ExportRow
	stats       report.MonthlyStats
}

func (r *fakeReportRepo) DailySummary(_ context.Context, _ time.Time) ([]report.SummaryRow, error) {
	return r.summaryRows, nil
}

func (r *fakeReportRepo) ExportRange(_ context.Context, _, _ time.Time) ([]report.ExportRow, error) {
	return r.exportRows, nil
}

func (r *fakeReportRepo) MonthlyStats(_ context.Context, _ string, _, _ time.Time) (*report.MonthlyStats, error) {
	stats := r.stats
	return &stats, nil
}

type fakeUserCounter struct {
	user.Repository
	active int
}

func (r *fakeUserCounter) CountActiveSince(_ context.Context, _ time.Time) (int, error) {
	return r.active, nil
}

type fakeStatusCounter struct {
	attendance.WorkStatusRepository
	working int
}

func (r *fakeStatusCounter) CountByStatus(_ context.Context, _ []attendance.Status) (int, error) {
	return r.working, nil
}

type fakeRecordCounter struct {
	attendance.TimeRecordRepository
	today int
}

func (r *fakeRecordCounter) CountForDate(_ context.Context, _ time.Time) (int, error) {
	return r.today, nil
}

func newTestService(t *testing.T, repo *fakeReportRepo) report.Service {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return NewReportService(
		repo,
		&fakeUserCounter{active: 4},
		&fakeStatusCounter{working: 2},
		&fakeRecordCounter{today: 3},
		loc,
	)
}

func timePtr(t time.Time) *time.Time { return &t }

func floatPtr(f float64) *float64 { return &f }

func TestDailySummaryMapsRows(t *testing.T) {
	dept := "Engineering"
	clockIn := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{summaryRows: []report.SummaryRow{
		{
			EmployeeID:    "EMP001",
			Name:          "Alice",
			Department:    &dept,
			ClockIn:       timePtr(clockIn),
			BreakMinutes:  30,
			TotalHours:    0,
			CurrentStatus: "working",
			IsPresent:     true,
		},
		{
			EmployeeID:    "EMP002",
			Name:          "Bob",
			CurrentStatus: "off",
		},
	}}
	svc := newTestService(t, repo)

	rows, err := svc.DailySummary(context.Background(), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].ClockIn)
	assert.Equal(t, "2024-01-15 09:00:00", *rows[0].ClockIn)
	assert.Nil(t, rows[0].ClockOut)
	assert.True(t, rows[0].IsPresent)

	// An employee with no record for the day still gets a row.
	assert.Nil(t, rows[1].ClockIn)
	assert.Equal(t, "off", rows[1].CurrentStatus)
	assert.False(t, rows[1].IsPresent)
	assert.Equal(t, 0.0, rows[1].BreakMinutes)
}

func TestCounters(t *testing.T) {
	svc := newTestService(t, &fakeReportRepo{})

	counters, err := svc.Counters(context.Background(), time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 4, counters.ActiveUsers)
	assert.Equal(t, 3, counters.TodayAttendance)
	assert.Equal(t, 2, counters.CurrentlyWorking)
}

func TestExportCSV(t *testing.T) {
	repo := &fakeReportRepo{exportRows: []report.ExportRow{
		{
			EmployeeID:   "EMP001",
			Name:         "山田太郎",
			Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ClockIn:      timePtr(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
			ClockOut:     timePtr(time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)),
			BreakMinutes: 30,
			TotalHours:   floatPtr(8.5),
		},
		{
			EmployeeID:   "EMP002",
			Name:         "Bob",
			Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ClockIn:      timePtr(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)),
			BreakMinutes: 0,
		},
	}}
	svc := newTestService(t, repo)

	now := time.Date(2024, 1, 16, 1, 30, 45, 0, time.UTC) // 10:30:45 JST
	data, filename, err := svc.ExportCSV(context.Background(), time.Time{}, time.Time{}, now)
	require.NoError(t, err)

	assert.Equal(t, "timecard_20240116_103045.csv", filename)

	content := string(data)
	require.True(t, strings.HasPrefix(content, "\xEF\xBB\xBF"), "export must start with a UTF-8 BOM")

	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(content, "\xEF\xBB\xBF"), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "employee_id,name,date,clock_in,clock_out,break_minutes,total_hours", lines[0])
	assert.Equal(t, "EMP001,山田太郎,2024-01-15,2024-01-15 09:00:00,2024-01-15 18:00:00,30.0,8.50", lines[1])
	// Open records export with empty clock-out and total.
	assert.Equal(t, "EMP002,Bob,2024-01-15,2024-01-15 10:00:00,,0.0,", lines[2])
}

func TestExportCSVEmptyRange(t *testing.T) {
	svc := newTestService(t, &fakeReportRepo{})

	data, _, err := svc.ExportCSV(context.Background(), time.Time{}, time.Time{}, time.Now())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(string(data), "\xEF\xBB\xBF"), "\n"), "\n")
	require.Len(t, lines, 1)
}

func TestMyStats(t *testing.T) {
	repo := &fakeReportRepo{stats: report.MonthlyStats{WorkDays: 20, TotalHours: 160, AverageHours: 8}}
	svc := newTestService(t, repo)

	stats, err := svc.MyStats(context.Background(), "EMP001", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-01", stats.Month)
	assert.Equal(t, 20, stats.WorkDays)
	assert.Equal(t, 160.0, stats.TotalHours)
	assert.Equal(t, 8.0, stats.AverageHours)
}
