// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password digests,
// HTTP response writing, HTTP client initialization, session token generation
// and validation, and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-delivery-board/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the request's session state in the
// context.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying state.
func WithSession(ctx context.Context, state models.SessionState) context.Context {
	return context.WithValue(ctx, SessionCtxKey, state)
}

// GetSessionFromContext retrieves the session state from the context.
//
// Returns a fresh, logged-out state when none is attached, so callers can
// always pass the result to the access service.
func GetSessionFromContext(ctx context.Context) models.SessionState {
	state, ok := ctx.Value(SessionCtxKey).(models.SessionState)
	if !ok {
		return models.NewSessionState()
	}
	return state
}
