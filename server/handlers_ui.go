package server

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-oidc-webapp/sessions"
)

const contentTypeHTML = "text/html; charset=utf-8"

// accessTokenPrefixLen bounds how much of the access token the profile
// view reveals.
const accessTokenPrefixLen = 12

// IndexHandler renders the home page with the current login status
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("index.html")
	if err != nil {
		panic("Failed to parse index template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]interface{}{
			"AppName":  s.config.AppName,
			"LoggedIn": false,
			"Name":     "",
		}

		if session, err := s.sessionFromRequest(r.Context(), r); err == nil {
			data["LoggedIn"] = true
			if name, _ := session.Identity.Profile["name"].(string); name != "" {
				data["Name"] = name
			}
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render index template")
		}
	}
}

// ProfileHandler renders the stored identity. It sits behind
// RequireSessionAuth, so a session is always present in the context.
func (s *Server) ProfileHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("profile.html")
	if err != nil {
		panic("Failed to parse profile template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
			return
		}

		data := map[string]interface{}{
			"AppName":           s.config.AppName,
			"AccessTokenPrefix": truncateToken(session.Identity.AccessToken),
			"TokenType":         session.Identity.TokenType,
			"ExpiresIn":         session.Identity.ExpiresIn,
			"Claims":            idTokenClaims(session.Identity),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render profile template")
			http.Error(w, "Failed to render profile page", http.StatusInternalServerError)
		}
	}
}

// idTokenClaims decodes the raw ID token for display. The token was
// already verified at callback time, so an unverified parse is fine here;
// the stored profile is the fallback when decoding fails.
func idTokenClaims(identity sessions.Identity) map[string]any {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(identity.IDToken, claims); err != nil {
		return identity.Profile
	}
	return claims
}

func truncateToken(token string) string {
	if len(token) <= accessTokenPrefixLen {
		return token
	}
	return token[:accessTokenPrefixLen] + "..."
}
