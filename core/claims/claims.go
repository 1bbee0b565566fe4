// Package claims carries the authenticated user identity through the
// request context.
package claims

import (
	"context"
	"errors"
)

type Claims struct {
	UserID   int
	Username string
}

type ctxKey int

const claimsKey ctxKey = 1

func Set(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// Get returns the claims set for this request. An error means the request
// is anonymous.
func Get(ctx context.Context) (Claims, error) {
	v, ok := ctx.Value(claimsKey).(Claims)
	if !ok {
		return Claims{}, errors.New("claim value missing from context")
	}
	return v, nil
}
