// Package auth resolves session cookies to users and guards routes that
// require a logged-in user.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/cafejs/cafejs/api/web"
	"github.com/cafejs/cafejs/api/weberr"
	"github.com/cafejs/cafejs/core/claims"
	"github.com/cafejs/cafejs/core/sessions"
	"github.com/cafejs/cafejs/core/user"
	"github.com/jmoiron/sqlx"
)

// ResolveUser composes the token lookup with a user fetch. An unissued
// token, a token surviving from before a restart, or a vanished user all
// report ok=false without an error.
func ResolveUser(ctx context.Context, db *sqlx.DB, store sessions.Store, token string) (user.User, bool, error) {
	userID, ok, err := store.Resolve(ctx, token)
	if err != nil {
		return user.User{}, false, err
	}
	if !ok {
		return user.User{}, false, nil
	}

	usr, err := user.Fetch(ctx, db, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, false, nil
		}
		return user.User{}, false, err
	}

	return usr, true, nil
}

// LoadUser resolves the session cookie on every request and, when it maps
// to a user, stores the identity as claims. Anonymous requests pass
// through untouched.
func LoadUser(db *sqlx.DB, store sessions.Store) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			cookie, err := r.Cookie(sessions.CookieName)
			if err != nil {
				return handler(ctx, w, r)
			}

			usr, ok, err := ResolveUser(ctx, db, store, cookie.Value)
			if err != nil {
				return weberr.InternalError(err)
			}
			if ok {
				ctx = claims.Set(ctx, claims.Claims{UserID: usr.ID, Username: usr.Username})
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}

// Authenticate rejects requests that did not resolve to a user.
func Authenticate() web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			if _, err := claims.Get(ctx); err != nil {
				return weberr.NotAuthorized(errors.New("user not authenticated"))
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
