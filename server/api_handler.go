package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	apperrors "github.com/jrsteele09/go-oidc-webapp/internal/errors"
)

// CallAPIHandler performs one outbound request to the configured
// downstream API with the stored access token as a bearer credential and
// relays the response body and status verbatim.
func (s *Server) CallAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
			return
		}

		apiURL := strings.TrimSuffix(s.config.APIBaseURL, "/") + apiExternalPath
		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, apiURL, nil)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to build API request: %v", err), http.StatusInternalServerError)
			return
		}
		req.Header.Set("Authorization", "Bearer "+session.Identity.AccessToken)

		resp, err := s.apiClient.Do(req)
		if err != nil {
			err = fmt.Errorf("%w: %w", apperrors.ErrUpstreamRequest, err)
			log.Err(err).Str("url", apiURL).Msg("Downstream API call failed")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer resp.Body.Close()

		if contentType := resp.Header.Get("Content-Type"); contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(resp.StatusCode)
		if _, err := io.Copy(w, resp.Body); err != nil {
			log.Err(err).Str("url", apiURL).Msg("Failed to relay API response")
		}
	}
}
