package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cbet/sentinelles/auth"
)

// BasicAuth guards next with HTTP Basic authentication. Requests without
// valid credentials get a 401 challenge and never reach next.
func BasicAuth(v auth.Verifier, realm string) func(http.HandlerFunc) http.HandlerFunc {
	challenge := fmt.Sprintf(`Basic realm="%s", charset="UTF-8"`, strings.ReplaceAll(realm, `"`, `'`))

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				unauthorized(w, challenge)
				return
			}
			if err := auth.Check(r.Context(), v, username, password); err != nil {
				slog.Warn("lab authentication failed",
					"path", r.URL.Path,
					"remote", GetClientIP(r),
					"request_id", RequestIDFrom(r.Context()),
					"error", err,
				)
				unauthorized(w, challenge)
				return
			}

			next(w, r)
		}
	}
}

func unauthorized(w http.ResponseWriter, challenge string) {
	w.Header().Set("WWW-Authenticate", challenge)
	ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
}
