package server

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"time"

	apperrors "github.com/jrsteele09/go-oidc-webapp/internal/errors"
	"github.com/jrsteele09/go-oidc-webapp/sessions"
)

// loggedInSessionID is the name of the cookie used for session authentication
const loggedInSessionID = "loggedInSessionId"

// generateRandomString creates a random base64url string
func generateRandomString(length int) string {
	b := make([]byte, length)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

// generateCodeChallenge creates a PKCE code challenge from a verifier
func generateCodeChallenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}

func (s *Server) SetLoginSessionCookie(w http.ResponseWriter, r *http.Request, sessionID string, maxAge int) {
	isSecure := getScheme(r) == "https"

	http.SetCookie(w, &http.Cookie{
		Name:     loggedInSessionID,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func (s *Server) ClearLoginSessionCookie(w http.ResponseWriter, r *http.Request) {
	s.SetLoginSessionCookie(w, r, "", -1)
}

// sessionFromRequest looks up the store session referenced by the request's
// session cookie. Errors when there is no cookie, the session is unknown,
// or its token lifetime has elapsed.
func (s *Server) sessionFromRequest(ctx context.Context, r *http.Request) (sessions.Session, error) {
	cookie, err := r.Cookie(loggedInSessionID)
	if err != nil || cookie.Value == "" {
		return sessions.Session{}, apperrors.ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, cookie.Value)
	if err != nil {
		return sessions.Session{}, apperrors.Wrapf(err, "sessionFromRequest")
	}

	if session.Expired(time.Now()) {
		_ = s.sessions.Delete(ctx, cookie.Value)
		return sessions.Session{}, apperrors.ErrSessionExpired
	}

	return session, nil
}
