/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs method, path, status, client IP, request id and duration_ms once the
handler returns.

# Server Chain

router.NewRouter wraps the mux with:

	RequestID → Recover → CORS → LimitBody(cfg.MaxBodyBytes)

RequestID reuses or assigns X-Request-ID (uuid). Recover turns panics into
a JSON 500. LimitBody applies http.MaxBytesReader.

# Basic Authentication

Guard lab routes with an auth.Verifier:

	lab := middleware.BasicAuth(verifier, cfg.LabRealm)
	mux.HandleFunc("GET /api/sentinelles", middleware.WithLogging(lab(h.List)))

Missing or wrong credentials get 401 with
WWW-Authenticate: Basic realm="...", charset="UTF-8", which makes browsers
show their login dialog. The wrapped handler is not called.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "message")
	middleware.ValidationErrorResponse(w, verr.Fields)

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
