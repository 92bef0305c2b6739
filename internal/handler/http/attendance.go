package http

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/attendance"
	"github.com/shiftbase-io/timecard-backend-go/internal/handler/http/response"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"
	"github.com/shiftbase-io/timecard-backend-go/internal/service/file"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Recent(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
	GetPhoto(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
	fileService       file.FileService
}

func NewAttendanceHandler(attendanceService attendance.Service, fileService file.FileService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		fileService:       fileService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.ClockIn(r.Context(), employeeID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked in", attendance.NewTimeRecordResponse(record))
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.ClockOut(r.Context(), employeeID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", attendance.NewTimeRecordResponse(record))
}

// StartBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	status, err := h.attendanceService.StartBreak(r.Context(), employeeID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started", map[string]interface{}{
		"status":      string(status.Status),
		"break_start": status.BreakStart.Format("2006-01-02 15:04:05"),
	})
}

// EndBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.EndBreak(r.Context(), employeeID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", attendance.NewTimeRecordResponse(record))
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	now := time.Now()
	status, record, err := h.attendanceService.Today(r.Context(), employeeID, now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := attendance.TodayResponse{
		Date:   now.Format("2006-01-02"),
		Status: string(status.Status),
	}
	if status.BreakStart != nil {
		s := status.BreakStart.Format("2006-01-02 15:04:05")
		resp.BreakStart = &s
	}
	if record != nil {
		resp.Record = attendance.NewTimeRecordResponse(record)
	}

	response.Success(w, resp)
}

// Recent implements AttendanceHandler.
func (h *attendanceHandlerImpl) Recent(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" && validator.IsNumeric(v) {
		// strconv would accept signs; the numeric check already rejected
		// them so Atoi cannot fail here.
		limit = atoiOrDefault(v, 10)
	}

	records, err := h.attendanceService.Recent(r.Context(), employeeID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toRecordResponses(records))
}

// Monthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := attendance.MonthlyRequest{Month: r.URL.Query().Get("month")}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}
	month, _ := validator.IsValidMonth(req.Month)

	records, err := h.attendanceService.Monthly(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toRecordResponses(records))
}

// UploadPhoto implements AttendanceHandler. The photo attaches to
// today's record, so it must follow a clock action.
func (h *attendanceHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	photo, header, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "Field 'photo' is required", nil)
		return
	}
	defer photo.Close()

	// Remember the photo being replaced so its file can be removed once
	// the new one is attached.
	var previous *string
	if _, existing, err := h.attendanceService.Today(r.Context(), employeeID, time.Now()); err == nil && existing != nil {
		previous = existing.PhotoFilename
	}

	stored, err := h.fileService.SavePhoto(r.Context(), employeeID, header.Filename, photo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.AttachPhoto(r.Context(), employeeID, time.Now(), stored)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if previous != nil && *previous != stored {
		if err := h.fileService.DeletePhoto(r.Context(), *previous); err != nil {
			slog.Warn("Failed to remove replaced photo", "employee_id", employeeID, "path", *previous, "error", err)
		}
	}

	url, err := h.fileService.PhotoURL(r.Context(), stored)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Photo uploaded", map[string]interface{}{
		"record":    attendance.NewTimeRecordResponse(record),
		"photo_url": url,
	})
}

// GetPhoto implements AttendanceHandler. Streams a stored photo back;
// the storage layer rejects paths outside its base directory.
func (h *attendanceHandlerImpl) GetPhoto(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		response.BadRequest(w, "Query parameter 'path' is required", nil)
		return
	}

	reader, contentType, err := h.fileService.GetPhoto(r.Context(), path)
	if err != nil {
		response.NotFound(w, "Photo not found")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, reader)
}

func toRecordResponses(records []attendance.TimeRecord) []attendance.TimeRecordResponse {
	responses := make([]attendance.TimeRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *attendance.NewTimeRecordResponse(&records[i]))
	}
	return responses
}
