package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-oidc-webapp/sessions"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the authenticated login session
const ContextKeySession ContextKey = "session"

// RequireSessionAuth is the authenticated-request gate. Requests whose
// session carries an identity pass through with the session injected into
// the request context; everything else is redirected to the login route.
func (s *Server) RequireSessionAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			session, err := s.sessionFromRequest(r.Context(), r)
			if err != nil {
				http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next(w, r.WithContext(ctx))
		}
	}
}

// SessionFromContext retrieves the login session injected by RequireSessionAuth.
func SessionFromContext(ctx context.Context) (sessions.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(sessions.Session)
	return session, ok
}
