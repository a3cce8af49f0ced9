package handler

import (
	"context"

	"github.com/yndnr/todovault-go/internal/core/domain"
)

// contextKey is a type for context keys to avoid collisions.
type contextKey string

// identityKey is the context key for the authenticated identity.
const identityKey contextKey = "todovault.identity"

// WithIdentity stores the authenticated identity in the context. The
// auth middleware calls this before dispatching to a handler.
func WithIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom retrieves the authenticated identity from the context.
func IdentityFrom(ctx context.Context) *domain.Identity {
	if id, ok := ctx.Value(identityKey).(*domain.Identity); ok {
		return id
	}
	return nil
}
