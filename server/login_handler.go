package server

import (
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/jrsteele09/go-oidc-webapp/server/authflowrepo"
)

// LoginHandler starts the authorization-code flow: it mints state, nonce
// and PKCE material, records them against the state parameter, and
// redirects the browser to the provider's authorization endpoint.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := generateRandomString(32)
		nonce := generateRandomString(32)
		codeVerifier := generateRandomString(32)

		flowState := authflowrepo.AuthFlowState{
			Nonce:        nonce,
			CodeVerifier: codeVerifier,
			ReturnURL:    r.URL.Query().Get("return_to"),
			CreatedAt:    time.Now(),
		}
		if err := s.flows.Upsert(state, flowState); err != nil {
			http.Error(w, "Failed to start login: "+err.Error(), http.StatusInternalServerError)
			return
		}

		opts := []oauth2.AuthCodeOption{
			oidc.Nonce(nonce),
			oauth2.SetAuthURLParam("code_challenge", generateCodeChallenge(codeVerifier)),
			oauth2.SetAuthURLParam("code_challenge_method", "S256"),
		}
		if s.config.APIAudience != "" {
			opts = append(opts, oauth2.SetAuthURLParam("audience", s.config.APIAudience))
		}

		http.Redirect(w, r, s.oidc.OAuth2Config.AuthCodeURL(state, opts...), http.StatusTemporaryRedirect)
	}
}
