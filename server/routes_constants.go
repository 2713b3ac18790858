package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteHome     = "/"
	RouteLogin    = "/login"
	RouteCallback = "/callback"
	RouteLogout   = "/logout"

	// Protected routes
	RouteProfile = "/profile"
	RouteCallAPI = "/call-api"
)

// providerLogoutPath is the identity provider's RP-initiated logout
// endpoint, relative to the issuer URL.
const providerLogoutPath = "v2/logout"

// apiExternalPath is the fixed downstream path appended to API_BASE_URL.
const apiExternalPath = "/api/external"
