package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cbet/sentinelles/forms"
	"github.com/cbet/sentinelles/middleware"
	"github.com/cbet/sentinelles/models"
)

type SentinelleStore interface {
	InsertSentinelle(ctx context.Context, req models.SentinelleRequest, dateSignature string) (int64, error)
	ListSentinelles(ctx context.Context) ([]models.Sentinelle, error)
}

type SentinelleHandler struct {
	store SentinelleStore
	now   func() time.Time
}

func NewSentinelleHandler(store SentinelleStore) *SentinelleHandler {
	return &SentinelleHandler{store: store, now: time.Now}
}

// Create handles POST /api/sentinelles
// Records a signed engagement; the signature time is set by the server
func (h *SentinelleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SentinelleRequest
	if !decodeBody(w, r, forms.Sentinelle, &req) {
		return
	}

	id, err := h.store.InsertSentinelle(r.Context(), req, stamp(h.now))
	if err != nil {
		storeFailed(w, r, "failed to insert sentinelle", err)
		return
	}

	slog.Info("sentinelle registered", "sentinelle_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.CreatedResponse{
		ID:      id,
		Message: models.MsgSentinelleCreated,
	})
}

// List handles GET /api/sentinelles (lab auth)
func (h *SentinelleHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListSentinelles(r.Context())
	if err != nil {
		storeFailed(w, r, "failed to list sentinelles", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}
