package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/josh-stephens/youtube-summary-agent/internal/api/respond"
)

// BearerAuth rejects requests that do not carry the configured token in an
// Authorization: Bearer header. Rejection happens before the request body is
// read, so unauthorized callers never reach a handler.
func BearerAuth(token string) func(http.Handler) http.Handler {
	expected := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
				respond.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid bearer token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
