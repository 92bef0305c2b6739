package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/tag"
	"github.com/shiftbase-io/timecard-backend-go/internal/handler/http/response"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"
)

type TagHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
	RecordWorkTime(w http.ResponseWriter, r *http.Request)
	MyWorkTimes(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type tagHandlerImpl struct {
	tagService tag.Service
	loc        *time.Location
}

func NewTagHandler(tagService tag.Service, loc *time.Location) TagHandler {
	return &tagHandlerImpl{tagService: tagService, loc: loc}
}

// List implements TagHandler.
func (h *tagHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tags)
}

// Sync implements TagHandler. Admin trigger for the same sync the
// scheduler runs periodically.
func (h *tagHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	synced, err := h.tagService.SyncFromNotion(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tags synced", tag.SyncResponse{Synced: synced})
}

// RecordWorkTime implements TagHandler.
func (h *tagHandlerImpl) RecordWorkTime(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req tag.RecordWorkTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.tagService.RecordWorkTime(r.Context(), userID, &req, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work time saved", resp)
}

// MyWorkTimes implements TagHandler.
func (h *tagHandlerImpl) MyWorkTimes(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	now := time.Now().In(h.loc)
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	workTimes, err := h.tagService.MyWorkTimes(r.Context(), userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workTimes)
}

// Summary implements TagHandler.
func (h *tagHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	from, okFrom := validator.IsValidDate(r.URL.Query().Get("from"))
	to, okTo := validator.IsValidDate(r.URL.Query().Get("to"))
	if !okFrom || !okTo {
		response.BadRequest(w, "From and to dates must be in YYYY-MM-DD format", nil)
		return
	}

	summary, err := h.tagService.Summary(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
