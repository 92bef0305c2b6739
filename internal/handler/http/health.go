package http

import (
	"context"
	"net/http"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/handler/http/response"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/database"
)

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	db *database.DB
}

func NewHealthHandler(db *database.DB) HealthHandler {
	return &healthHandlerImpl{db: db}
}

// Health implements HealthHandler.
func (h *healthHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	dbStatus := "ok"

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Pool.Ping(ctx); err != nil {
		status = "degraded"
		dbStatus = "unreachable"
	}

	response.Success(w, map[string]string{
		"status":   status,
		"database": dbStatus,
	})
}
