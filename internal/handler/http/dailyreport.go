package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/dailyreport"
	"github.com/shiftbase-io/timecard-backend-go/internal/handler/http/response"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"
)

type DailyReportHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	ForDate(w http.ResponseWriter, r *http.Request)
}

type dailyReportHandlerImpl struct {
	reportService dailyreport.Service
}

func NewDailyReportHandler(reportService dailyreport.Service) DailyReportHandler {
	return &dailyReportHandlerImpl{reportService: reportService}
}

// Submit implements DailyReportHandler.
func (h *dailyReportHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req dailyreport.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.reportService.Submit(r.Context(), userID, &req, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Report saved", resp)
}

// Mine implements DailyReportHandler. With a date parameter it returns
// that day's report; without one it lists the latest reports.
func (h *dailyReportHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	if v := r.URL.Query().Get("date"); v != "" {
		date, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
			return
		}

		resp, err := h.reportService.GetForDate(r.Context(), userID, date)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, resp)
		return
	}

	limit := 30
	if v := r.URL.Query().Get("limit"); v != "" && validator.IsNumeric(v) {
		limit = atoiOrDefault(v, 30)
	}

	reports, err := h.reportService.ListMine(r.Context(), userID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}

// ForDate implements DailyReportHandler. Admin view of every report
// submitted for one day.
func (h *dailyReportHandlerImpl) ForDate(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query().Get("date")
	if v == "" {
		response.BadRequest(w, "Date is required", nil)
		return
	}

	date, ok := validator.IsValidDate(v)
	if !ok {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	reports, err := h.reportService.ListForDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}
