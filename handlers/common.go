package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/cbet/sentinelles/forms"
	"github.com/cbet/sentinelles/middleware"
	"github.com/cbet/sentinelles/models"
)

// stamp formats the server time stored in the date columns.
func stamp(now func() time.Time) string {
	return now().UTC().Format(models.TimestampLayout)
}

// decodeBody decodes and validates the request body, writing the error
// response itself. It reports whether the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, s *forms.Schema, dst any) bool {
	err := forms.Decode(r, s, dst)
	if err == nil {
		return true
	}

	var verr *forms.ValidationError
	var mbe *http.MaxBytesError
	switch {
	case errors.As(err, &verr):
		middleware.ValidationErrorResponse(w, verr.Fields)
	case errors.As(err, &mbe):
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, forms.ErrUnsupportedMediaType):
		middleware.ErrorResponse(w, http.StatusUnsupportedMediaType, "Use application/json or a form encoding")
	default:
		slog.Debug("unreadable request body", "schema", s.Name(), "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
	}
	return false
}

// storeFailed logs a database error and answers with a generic 500.
// The driver's message is never sent to the client.
func storeFailed(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg,
		"error", err,
		"request_id", middleware.RequestIDFrom(r.Context()),
	)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}
