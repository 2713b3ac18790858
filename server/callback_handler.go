package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	apperrors "github.com/jrsteele09/go-oidc-webapp/internal/errors"
	"github.com/jrsteele09/go-oidc-webapp/sessions"
)

// CallbackHandler is the provider redirect target. It exchanges the
// authorization code for tokens, verifies the ID token, and attaches the
// resulting identity to a new login session.
func (s *Server) CallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Parse form to support both GET (query params) and POST (form_post response mode)
		// r.FormValue works for both query params and POST form data
		state := r.FormValue("state")
		code := r.FormValue("code")
		errorParam := r.FormValue("error")
		errorDesc := r.FormValue("error_description")

		// Provider denied or errored: no identity is created, back to the home page
		if errorParam != "" {
			log.Warn().Str("error", errorParam).Str("description", errorDesc).Msg("Authorization failed")
			http.Redirect(w, r, RouteHome, http.StatusSeeOther)
			return
		}

		if code == "" || state == "" {
			http.Error(w, "Missing code or state parameter", http.StatusBadRequest)
			return
		}

		flowState, err := s.flows.Get(state)
		if err != nil {
			http.Error(w, apperrors.ErrInvalidState.Error(), http.StatusBadRequest)
			return
		}

		// Clean up state after use
		if err := s.flows.Delete(state); err != nil {
			http.Error(w, apperrors.ErrInvalidState.Error(), http.StatusInternalServerError)
			return
		}

		// Exchange authorization code for tokens using standard oauth2 library
		oauth2Token, err := s.oidc.OAuth2Config.Exchange(
			r.Context(),
			code,
			oauth2.SetAuthURLParam("code_verifier", flowState.CodeVerifier),
		)
		if err != nil {
			http.Error(w, fmt.Sprintf("Token exchange failed: %v", err), http.StatusInternalServerError)
			return
		}

		// Extract ID token and verify it
		rawIDToken, ok := oauth2Token.Extra("id_token").(string)
		if !ok {
			http.Error(w, apperrors.ErrNoIDToken.Error(), http.StatusInternalServerError)
			return
		}

		// Verify the ID token signature and claims (including nonce)
		idToken, err := s.oidc.Verifier.Verify(r.Context(), rawIDToken)
		if err != nil {
			http.Error(w, fmt.Sprintf("ID token verification failed: %v", err), http.StatusInternalServerError)
			return
		}

		// The full claim set becomes the session profile
		var profile map[string]any
		if err := idToken.Claims(&profile); err != nil {
			http.Error(w, fmt.Sprintf("Failed to extract claims: %v", err), http.StatusInternalServerError)
			return
		}

		// Validate nonce to prevent replay attacks
		if nonce, _ := profile["nonce"].(string); nonce != flowState.Nonce {
			http.Error(w, apperrors.ErrInvalidNonce.Error(), http.StatusUnauthorized)
			return
		}

		expiresIn := 0
		if !oauth2Token.Expiry.IsZero() {
			expiresIn = int(time.Until(oauth2Token.Expiry).Seconds())
		}

		// Create login session with the provider-supplied identity
		sessionID := uuid.NewString()
		session := sessions.Session{
			ID: sessionID,
			Identity: sessions.Identity{
				Profile:     profile,
				AccessToken: oauth2Token.AccessToken,
				IDToken:     rawIDToken,
				TokenType:   oauth2Token.TokenType,
				ExpiresIn:   expiresIn,
			},
			CreatedAt: time.Now(),
		}

		if err := s.sessions.Upsert(r.Context(), sessionID, session); err != nil {
			http.Error(w, fmt.Sprintf("Failed to create session: %v", err), http.StatusInternalServerError)
			return
		}

		// Session cookie expires with the access token
		s.SetLoginSessionCookie(w, r, sessionID, expiresIn)

		// Redirect to original destination or the profile view
		returnURL := flowState.ReturnURL
		if returnURL == "" || returnURL == RouteHome {
			returnURL = RouteProfile
		}
		http.Redirect(w, r, returnURL, http.StatusSeeOther)
	}
}
