package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/attendance"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/report"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/user"
)

// activeUserWindow is how far back a login still counts as active.
const activeUserWindow = 7 * 24 * time.Hour

type ReportServiceImpl struct {
	report.Repository
	userRepo       user.Repository
	workStatusRepo attendance.WorkStatusRepository
	timeRecordRepo attendance.TimeRecordRepository
	loc            *time.Location
}

func NewReportService(
	reportRepo report.Repository,
	userRepo user.Repository,
	workStatusRepo attendance.WorkStatusRepository,
	timeRecordRepo attendance.TimeRecordRepository,
	loc *time.Location,
) report.Service {
	return &ReportServiceImpl{
		Repository:     reportRepo,
		userRepo:       userRepo,
		workStatusRepo: workStatusRepo,
		timeRecordRepo: timeRecordRepo,
		loc:            loc,
	}
}

func (s *ReportServiceImpl) dateOf(now time.Time) time.Time {
	local := now.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DailySummary implements report.Service.
func (s *ReportServiceImpl) DailySummary(ctx context.Context, date time.Time) ([]report.SummaryRowResponse, error) {
	rows, err := s.Repository.DailySummary(ctx, date)
	if err != nil {
		return nil, err
	}

	responses := make([]report.SummaryRowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, report.SummaryRowResponse{
			EmployeeID:    row.EmployeeID,
			Name:          row.Name,
			Department:    row.Department,
			ClockIn:       formatTimePtr(row.ClockIn),
			ClockOut:      formatTimePtr(row.ClockOut),
			BreakMinutes:  row.BreakMinutes,
			TotalHours:    row.TotalHours,
			CurrentStatus: row.CurrentStatus,
			IsPresent:     row.IsPresent,
		})
	}
	return responses, nil
}

// Counters implements report.Service.
func (s *ReportServiceImpl) Counters(ctx context.Context, now time.Time) (*report.CountersResponse, error) {
	activeUsers, err := s.userRepo.CountActiveSince(ctx, now.Add(-activeUserWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	todayAttendance, err := s.timeRecordRepo.CountForDate(ctx, s.dateOf(now))
	if err != nil {
		return nil, fmt.Errorf("failed to count today's attendance: %w", err)
	}

	working, err := s.workStatusRepo.CountByStatus(ctx, []attendance.Status{attendance.StatusWorking})
	if err != nil {
		return nil, fmt.Errorf("failed to count working employees: %w", err)
	}

	return &report.CountersResponse{
		ActiveUsers:      activeUsers,
		TodayAttendance:  todayAttendance,
		CurrentlyWorking: working,
	}, nil
}

// ExportCSV implements report.Service. The BOM keeps spreadsheet tools
// from mangling multibyte names.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, from, to time.Time, now time.Time) ([]byte, string, error) {
	rows, err := s.ExportRange(ctx, from, to)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(&buf)
	header := []string{"employee_id", "name", "date", "clock_in", "clock_out", "break_minutes", "total_hours"}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		totalHours := ""
		if row.TotalHours != nil {
			totalHours = strconv.FormatFloat(*row.TotalHours, 'f', 2, 64)
		}

		record := []string{
			row.EmployeeID,
			row.Name,
			row.Date.Format("2006-01-02"),
			derefOrEmpty(formatTimePtr(row.ClockIn)),
			derefOrEmpty(formatTimePtr(row.ClockOut)),
			strconv.FormatFloat(row.BreakMinutes, 'f', 1, 64),
			totalHours,
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush csv: %w", err)
	}

	filename := "timecard_" + now.In(s.loc).Format("20060102_150405") + ".csv"
	return buf.Bytes(), filename, nil
}

// MyStats implements report.Service.
func (s *ReportServiceImpl) MyStats(ctx context.Context, employeeID string, month time.Time) (*report.MyStatsResponse, error) {
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	stats, err := s.MonthlyStats(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	return &report.MyStatsResponse{
		Month:        from.Format("2006-01"),
		WorkDays:     stats.WorkDays,
		TotalHours:   stats.TotalHours,
		AverageHours: stats.AverageHours,
	}, nil
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02 15:04:05")
	return &s
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
