package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cbet/sentinelles/forms"
	"github.com/cbet/sentinelles/middleware"
	"github.com/cbet/sentinelles/models"
)

type RecolteStore interface {
	InsertRecolte(ctx context.Context, req models.RecolteRequest) (int64, error)
	ListRecoltes(ctx context.Context) ([]models.Recolte, error)
}

type RecolteHandler struct {
	store RecolteStore
}

func NewRecolteHandler(store RecolteStore) *RecolteHandler {
	return &RecolteHandler{store: store}
}

// Create handles POST /api/recoltes
// date_heure comes from the client (time of collection), not the server
func (h *RecolteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.RecolteRequest
	if !decodeBody(w, r, forms.Recolte, &req) {
		return
	}

	id, err := h.store.InsertRecolte(r.Context(), req)
	if err != nil {
		storeFailed(w, r, "failed to insert recolte", err)
		return
	}

	slog.Info("recolte recorded", "recolte_id", id, "sentinelle_id", req.SentinelleID, "plante", req.Plante)

	middleware.JSONResponse(w, http.StatusOK, models.CreatedResponse{
		ID:      id,
		Message: models.MsgRecolteCreated,
	})
}

// List handles GET /api/recoltes (lab auth)
func (h *RecolteHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListRecoltes(r.Context())
	if err != nil {
		storeFailed(w, r, "failed to list recoltes", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}
