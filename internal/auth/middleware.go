package auth

import (
	"net/http"
	"strings"

	"github.com/tasklane/tasklane/internal/platform/httpx"
	"github.com/tasklane/tasklane/internal/shared"
)

// Middleware gates protected routes behind a valid session token.
type Middleware struct {
	Service *Service
}

// RequireSession validates the bearer token from the Authorization header
// and stores the resolved identity in the request context. Requests without
// a resolvable session are rejected with 401.
func (m Middleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			httpx.RespondError(w, shared.ErrUnauthenticated)
			return
		}
		ident, err := m.Service.ResolveSession(r.Context(), token)
		if err != nil {
			httpx.RespondError(w, shared.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r.WithContext(shared.ContextWithIdentity(r.Context(), ident)))
	})
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return header[len(prefix):]
}
