package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/hireline/hireline/internal/platform/httpx"
	"github.com/hireline/hireline/internal/shared"
)

// Middleware guards endpoints with bearer-token authentication and role
// membership checks.
type Middleware struct {
	Service *Service
	Logger  *slog.Logger
}

// Authenticate verifies the Authorization header and attaches the resolved
// caller identity to the request context. Missing, malformed, expired and
// badly signed tokens all produce the same generic 401.
func (m Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			httpx.RespondError(w, httpx.ErrNotAuthorized)
			return
		}
		user, err := m.Service.Authenticate(r.Context(), token)
		if err != nil {
			if m.Logger != nil {
				m.Logger.Debug("authenticate request", slog.Any("error", err))
			}
			httpx.RespondError(w, httpx.ErrNotAuthorized)
			return
		}
		identity := &shared.Identity{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		}
		next.ServeHTTP(w, r.WithContext(shared.ContextWithIdentity(r.Context(), identity)))
	})
}

// RequireRole rejects callers whose role is not the endpoint's allowed role.
// Unauthenticated requests get 401, wrong-role requests get 403.
func (m Middleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := shared.IdentityFromContext(r.Context())
			if identity == nil {
				httpx.RespondError(w, httpx.ErrNotAuthorized)
				return
			}
			if identity.Role != role {
				httpx.RespondError(w, httpx.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
