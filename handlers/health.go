package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cbet/sentinelles/middleware"
	"github.com/cbet/sentinelles/models"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	started time.Time
	now     func() time.Time
}

func NewHealthHandler(db Pinger, started time.Time) *HealthHandler {
	return &HealthHandler{db: db, started: started, now: time.Now}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := models.HealthResponse{
		Status:   "ok",
		Database: "ok",
		Started:  humanize.RelTime(h.started, h.now(), "ago", "from now"),
		Uptime:   h.now().Sub(h.started).Round(time.Second).String(),
	}

	status := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		slog.Error("health check: database unreachable", "error", err)
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	middleware.JSONResponse(w, status, resp)
}
