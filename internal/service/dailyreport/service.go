package dailyreport

import (
	"context"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/dailyreport"
)

type DailyReportServiceImpl struct {
	dailyreport.Repository
	loc *time.Location
}

func NewDailyReportService(repo dailyreport.Repository, loc *time.Location) dailyreport.Service {
	return &DailyReportServiceImpl{Repository: repo, loc: loc}
}

// Submit implements dailyreport.Service.
func (s *DailyReportServiceImpl) Submit(ctx context.Context, userID string, req *dailyreport.SubmitReportRequest, now time.Time) (*dailyreport.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date := s.dateOf(now)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err == nil {
			date = parsed
		}
	}

	report := &dailyreport.DailyReport{
		UserID:       userID,
		Date:         date,
		WorkContent:  req.WorkContent,
		Achievements: req.Achievements,
		Issues:       req.Issues,
		TomorrowPlan: req.TomorrowPlan,
		Remarks:      req.Remarks,
	}
	if err := s.Upsert(ctx, report); err != nil {
		return nil, err
	}

	return dailyreport.NewReportResponse(report), nil
}

// GetForDate implements dailyreport.Service.
func (s *DailyReportServiceImpl) GetForDate(ctx context.Context, userID string, date time.Time) (*dailyreport.ReportResponse, error) {
	report, err := s.Repository.GetForDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, dailyreport.ErrReportNotFound
	}
	return dailyreport.NewReportResponse(report), nil
}

// ListMine implements dailyreport.Service.
func (s *DailyReportServiceImpl) ListMine(ctx context.Context, userID string, limit int) ([]dailyreport.ReportResponse, error) {
	if limit <= 0 {
		limit = 30
	}

	reports, err := s.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	return toResponses(reports), nil
}

// ListForDate implements dailyreport.Service.
func (s *DailyReportServiceImpl) ListForDate(ctx context.Context, date time.Time) ([]dailyreport.ReportResponse, error) {
	reports, err := s.Repository.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return toResponses(reports), nil
}

func (s *DailyReportServiceImpl) dateOf(now time.Time) time.Time {
	local := now.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func toResponses(reports []dailyreport.DailyReport) []dailyreport.ReportResponse {
	responses := make([]dailyreport.ReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, *dailyreport.NewReportResponse(&reports[i]))
	}
	return responses
}
