package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/jrsteele09/go-oidc-webapp/internal/config"
	"github.com/jrsteele09/go-oidc-webapp/server/authflowrepo"
	"github.com/jrsteele09/go-oidc-webapp/sessions"
)

// OidcConfig bundles the discovered provider with the OAuth2 client
// configuration and the ID token verifier derived from it.
type OidcConfig struct {
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
	Verifier     *oidc.IDTokenVerifier
}

type Server struct {
	env    string // Environment (e.g., "DEV", "production")
	mux    *http.ServeMux
	routes []string
	config config.Config

	sessions sessions.Repo
	flows    authflowrepo.Repo
	oidc     OidcConfig

	// apiClient performs the downstream call; swapped in tests
	apiClient *http.Client
}

// New discovers the identity provider from the configured issuer URL and
// builds a ready-to-serve Server.
func New(ctx context.Context, cfg config.Config, sessionRepo sessions.Repo, flowRepo authflowrepo.Repo) (*Server, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to discover OIDC provider: %w", err)
	}

	oidcConfig := OidcConfig{
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     provider.Endpoint(),
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		Verifier: provider.Verifier(&oidc.Config{
			ClientID: cfg.ClientID,
		}),
	}

	return NewWithOIDC(cfg, oidcConfig, sessionRepo, flowRepo), nil
}

// NewWithOIDC builds a Server around an already-constructed OIDC
// configuration. Useful when the provider endpoints are known up front.
func NewWithOIDC(cfg config.Config, oidcConfig OidcConfig, sessionRepo sessions.Repo, flowRepo authflowrepo.Repo) *Server {
	s := &Server{
		env:       cfg.Env,
		mux:       http.NewServeMux(),
		config:    cfg,
		sessions:  sessionRepo,
		flows:     flowRepo,
		oidc:      oidcConfig,
		apiClient: http.DefaultClient,
	}

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		log.Info().Str("route", route).Msg("registered")
	}
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
