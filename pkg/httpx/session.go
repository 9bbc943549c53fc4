package httpx

import (
	"net/http"
	"strings"

	"github.com/keystep/keystep/pkg/cryptox"
	"github.com/keystep/keystep/pkg/slogx"
)

// SessionChecker reports whether a session token is currently live. The
// handshake service implements this over its session registry.
type SessionChecker interface {
	SessionAlive(token string) bool
}

// SessionAuthMiddleware guards an endpoint with a bearer session token.
// Missing, malformed, unknown and expired tokens all produce the same 401
// so callers cannot probe which sessions exist.
func SessionAuthMiddleware(sessions SessionChecker) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeSessionError(w)
				return
			}

			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
			if raw == "" || !sessions.SessionAlive(raw) {
				log.Warn("session check failed", "session_fp", cryptox.FingerprintToken(raw))
				writeSessionError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeSessionError(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error": "invalid_or_expired_session",
	})
}
