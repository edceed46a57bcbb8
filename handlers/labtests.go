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

type LabTestStore interface {
	InsertLabTest(ctx context.Context, req models.LabTestRequest, dateTest string) (int64, error)
	ListLabTests(ctx context.Context) ([]models.LabTest, error)
}

type LabTestHandler struct {
	store LabTestStore
	now   func() time.Time
}

func NewLabTestHandler(store LabTestStore) *LabTestHandler {
	return &LabTestHandler{store: store, now: time.Now}
}

// Create handles POST /api/lab-tests (lab auth)
func (h *LabTestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.LabTestRequest
	if !decodeBody(w, r, forms.LabTest, &req) {
		return
	}

	id, err := h.store.InsertLabTest(r.Context(), req, stamp(h.now))
	if err != nil {
		storeFailed(w, r, "failed to insert lab test", err)
		return
	}

	slog.Info("lab test recorded", "lab_test_id", id, "lot_id", req.LotID)

	middleware.JSONResponse(w, http.StatusOK, models.CreatedResponse{
		ID:      id,
		Message: models.MsgLabTestCreated,
	})
}

// List handles GET /api/lab-tests (lab auth), oldest test first
func (h *LabTestHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListLabTests(r.Context())
	if err != nil {
		storeFailed(w, r, "failed to list lab tests", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}
