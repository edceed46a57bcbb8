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

type ContactStore interface {
	InsertContact(ctx context.Context, req models.ContactRequest, date string) (int64, error)
}

type ContactHandler struct {
	store ContactStore
	now   func() time.Time
}

func NewContactHandler(store ContactStore) *ContactHandler {
	return &ContactHandler{store: store, now: time.Now}
}

// Create handles POST /api/contact
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if !decodeBody(w, r, forms.Contact, &req) {
		return
	}

	id, err := h.store.InsertContact(r.Context(), req, stamp(h.now))
	if err != nil {
		storeFailed(w, r, "failed to insert contact", err)
		return
	}

	slog.Info("contact message received", "contact_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.CreatedResponse{
		ID:      id,
		Message: models.MsgContactCreated,
	})
}
