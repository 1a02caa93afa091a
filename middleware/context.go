package middleware

import (
	"context"

	"github.com/upb/answer-gate/auth"
)

// Context key type to avoid collisions
type contextKey string

const (
	// ClaimsKey is the context key for validated service-token claims
	ClaimsKey contextKey = "claims"
)

// WithClaims adds validated claims to the context
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

// GetClaimsFromContext retrieves validated claims from context
func GetClaimsFromContext(ctx context.Context) *auth.Claims {
	if val := ctx.Value(ClaimsKey); val != nil {
		if claims, ok := val.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
