package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/attendance"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/notification"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/report"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/user"
	"github.com/shiftbase-io/timecard-backend-go/internal/handler/http/response"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	DailySummary(w http.ResponseWriter, r *http.Request)
	Counters(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	MyStats(w http.ResponseWriter, r *http.Request)
	ForceClose(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService       report.Service
	attendanceService   attendance.Service
	notificationService notification.Service
	userRepo            user.Repository
	loc                 *time.Location
}

func NewReportHandler(
	reportService report.Service,
	attendanceService attendance.Service,
	notificationService notification.Service,
	userRepo user.Repository,
	loc *time.Location,
) ReportHandler {
	return &reportHandlerImpl{
		reportService:       reportService,
		attendanceService:   attendanceService,
		notificationService: notificationService,
		userRepo:            userRepo,
		loc:                 loc,
	}
}

func (h *reportHandlerImpl) today() time.Time {
	now := time.Now().In(h.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// DailySummary implements ReportHandler.
func (h *reportHandlerImpl) DailySummary(w http.ResponseWriter, r *http.Request) {
	date := h.today()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	summary, err := h.reportService.DailySummary(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"date":    date.Format("2006-01-02"),
		"summary": summary,
	})
}

// Counters implements ReportHandler.
func (h *reportHandlerImpl) Counters(w http.ResponseWriter, r *http.Request) {
	counters, err := h.reportService.Counters(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, counters)
}

// ExportCSV implements ReportHandler. Unlike the JSON endpoints this
// writes the file straight to the response.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	req := report.ExportRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)

	payload, filename, err := h.reportService.ExportCSV(r.Context(), from, to, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// MyStats implements ReportHandler.
func (h *reportHandlerImpl) MyStats(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month := time.Now().In(h.loc)
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, ok := validator.IsValidMonth(v)
		if !ok {
			response.BadRequest(w, "Month must be in YYYY-MM format", nil)
			return
		}
		month = parsed
	}

	stats, err := h.reportService.MyStats(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// ForceClose implements ReportHandler.
func (h *reportHandlerImpl) ForceClose(w http.ResponseWriter, r *http.Request) {
	var req attendance.ForceCloseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date := h.today()
	if req.Date != "" {
		date, _ = validator.IsValidDate(req.Date)
	}
	closeAt, _ := validator.IsValidDateTime(req.CloseAt)

	record, err := h.attendanceService.ForceClose(r.Context(), req.EmployeeID, date, closeAt)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.notifyForceClose(r.Context(), req.EmployeeID, date)

	response.SuccessWithMessage(w, "Attendance record closed", attendance.NewTimeRecordResponse(record))
}

// notifyForceClose tells the affected employee their record was closed
// by an admin. Best effort: the close itself already committed.
func (h *reportHandlerImpl) notifyForceClose(ctx context.Context, employeeID string, date time.Time) {
	u, err := h.userRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil || u == nil {
		return
	}

	message := fmt.Sprintf("Your attendance record for %s was closed by an administrator.", date.Format("2006-01-02"))
	if err := h.notificationService.Notify(ctx, u.ID, "Attendance record closed", message); err != nil {
		slog.Warn("Failed to create force-close notification", "employee_id", employeeID, "error", err)
	}
}
