package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/cafejs/cafejs/api/web"
	"github.com/cafejs/cafejs/core/sessions"
	"github.com/cafejs/cafejs/core/user"
	"github.com/cafejs/cafejs/views"
	"github.com/jmoiron/sqlx"
)

type loginPage struct {
	Message string
}

func HandleLoginForm() web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return views.Render(w, "login.html", loginPage{}, http.StatusOK)
	}
}

// HandleLogin gates session issuance on an exact username+password match.
// A failed match is a normal response, not an error: the form is rendered
// again with a message and no cookie is set.
func HandleLogin(db *sqlx.DB, store sessions.Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("parsing login form: %w", err)
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		usr, err := user.FetchByUsername(ctx, db, username)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return views.Render(w, "login.html", loginPage{Message: "Invalid login details!"}, http.StatusOK)
			}
			return fmt.Errorf("looking up login user: %w", err)
		}

		if usr.Password != password {
			return views.Render(w, "login.html", loginPage{Message: "Invalid login details!"}, http.StatusOK)
		}

		token, err := store.Create(ctx, usr.ID)
		if err != nil {
			return fmt.Errorf("creating session for user[%d]: %w", usr.ID, err)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessions.CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
		})

		return web.Redirect(w, r, "/")
	}
}
