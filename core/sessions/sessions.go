// Package sessions maps opaque tokens handed to browsers onto user ids.
package sessions

import (
	"context"

	"github.com/cafejs/cafejs/random"
)

// CookieName is the cookie carrying the session token.
const CookieName = "cafejs_session"

// TokenLength is the number of charset characters per token. At just under
// 6 bits each this stays well above 128 bits of entropy, so collisions are
// not checked for.
const TokenLength = 32

// Store issues tokens and resolves them back to user ids. Sessions never
// expire and there is no logout; a store implementation decides whether
// tokens survive a restart.
type Store interface {
	// Create generates a fresh token bound to userID and returns it.
	Create(ctx context.Context, userID int) (string, error)

	// Resolve returns the user id a token was issued for. An unknown or
	// empty token reports ok=false, not an error.
	Resolve(ctx context.Context, token string) (userID int, ok bool, err error)
}

func newToken() (string, error) {
	return random.Token(TokenLength)
}
