package errors

import (
	"errors"
	"fmt"
)

// Common error types for the web app
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Callback errors
	ErrInvalidState = errors.New("invalid state parameter")
	ErrInvalidNonce = errors.New("invalid nonce")
	ErrNoIDToken    = errors.New("no id_token in token response")

	// Downstream call errors
	ErrUpstreamRequest = errors.New("upstream request failed")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
