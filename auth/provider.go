// Package auth holds the vendor session and the identity providers that
// issue its bearer token.
package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials is returned when the identity provider rejects
	// the username or password.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrAuthProvider covers every other identity provider failure.
	ErrAuthProvider = errors.New("identity provider error")
	// ErrProfileUnavailable means the backend has no vendor record for the
	// authenticated identity. The session is cleared when it occurs.
	ErrProfileUnavailable = errors.New("vendor profile unavailable")
)

// IdentityProvider exchanges vendor credentials for an opaque bearer token.
type IdentityProvider interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}
