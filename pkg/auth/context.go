package auth

import (
	"context"

	"github.com/pkg/errors"
)

type contextKey int

const (
	contextKeyClaims contextKey = iota + 1
)

const AuthorizationHeader = "Authorization"

// SetAuthContext attaches the authenticated admin's claims to ctx.
// Every core operation reads the acting identity from here, never
// from ambient request state.
func SetAuthContext(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKeyClaims, claims)
}

func FromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(contextKeyClaims).(*Claims)
	if !ok || claims == nil {
		return nil, errors.New("no auth claims in context")
	}
	return claims, nil
}
