package sessions

import "time"

// Identity is the provider-supplied identity bound to a login session.
// Profile carries the ID token claims as returned by the provider and is
// treated as opaque beyond display purposes.
type Identity struct {
	Profile     map[string]any `json:"profile"`
	AccessToken string         `json:"access_token"`
	IDToken     string         `json:"id_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int            `json:"expires_in"` // access token lifetime in seconds
}

// Session correlates a browser client across requests. A session is only
// created on a successful provider callback, so holding a session means
// holding an identity.
type Session struct {
	ID        string    `json:"id"`
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the access token lifetime has elapsed. Sessions
// whose identity carries no expires_in hint never expire here.
func (s Session) Expired(now time.Time) bool {
	if s.Identity.ExpiresIn <= 0 {
		return false
	}
	return now.After(s.CreatedAt.Add(time.Duration(s.Identity.ExpiresIn) * time.Second))
}
