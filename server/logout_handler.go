package server

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// LogoutHandler destroys the local session and sends the browser to the
// provider's logout endpoint so the provider-side session ends too.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(loggedInSessionID); err == nil && cookie.Value != "" {
			if err := s.sessions.Delete(r.Context(), cookie.Value); err != nil {
				log.Err(err).Msg("Logout: failed to delete session")
			}
		}
		s.ClearLoginSessionCookie(w, r)

		returnTo := fmt.Sprintf("%s://%s%s", getScheme(r), r.Host, RouteHome)
		logoutURL, err := BuildLogoutURL(s.config.IssuerURL, s.config.ClientID, returnTo)
		if err != nil {
			log.Err(err).Msg("Logout: failed to build provider logout URL")
			http.Redirect(w, r, RouteHome, http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, logoutURL, http.StatusTemporaryRedirect)
	}
}

// BuildLogoutURL composes the provider's RP-initiated logout URL with
// returnTo and client_id as real query parameters.
func BuildLogoutURL(issuerURL, clientID, returnTo string) (string, error) {
	u, err := url.Parse(issuerURL)
	if err != nil {
		return "", fmt.Errorf("BuildLogoutURL: parse issuer: %w", err)
	}

	u = u.JoinPath(providerLogoutPath)

	query := u.Query()
	query.Set("returnTo", returnTo)
	query.Set("client_id", clientID)
	u.RawQuery = query.Encode()

	return u.String(), nil
}
