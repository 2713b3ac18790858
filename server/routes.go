package server

func (s *Server) initRoutes() {
	// "/{$}" anchors the pattern so unmatched paths 404 instead of
	// falling through to the status page
	s.RegisterRouteFunc("GET /{$}", ChainMiddleware(s.IndexHandler(), s.HTMLMiddleware()...))

	// LOGIN / LOGOUT
	s.RegisterRouteFunc("GET "+RouteLogin, ChainMiddleware(s.LoginHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteCallback, ChainMiddleware(s.CallbackHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteCallback, ChainMiddleware(s.CallbackHandler(), s.HTMLMiddleware()...)) // For form_post response mode

	// Protected routes (require a logged-in session)
	s.RegisterRouteFunc("GET "+RouteProfile, ChainMiddleware(s.ProfileHandler(), s.HTMLMiddleware(s.RequireSessionAuth())...))
	s.RegisterRouteFunc("GET "+RouteCallAPI, ChainMiddleware(s.CallAPIHandler(), s.HTMLMiddleware(s.RequireSessionAuth())...))
}
