package checkout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/cafejs/cafejs/api/web"
	"github.com/cafejs/cafejs/api/weberr"
	"github.com/cafejs/cafejs/core/user"
	"github.com/jmoiron/sqlx"
)

// HandleCheckout checks out the cart of the user named in the request
// body. The user id comes from the form, not the session, matching the
// checkout contract of the original system.
func HandleCheckout(db *sqlx.DB, engine *Engine) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := r.ParseForm(); err != nil {
			return weberr.BadRequest(fmt.Errorf("parsing form: %w", err))
		}

		userID, err := web.FormInt(r, "user_id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		usr, err := user.Fetch(ctx, db, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("fetching checkout user[%d]: %w", userID, err)
		}

		if _, _, err := engine.Checkout(ctx, usr.ID); err != nil {
			if errors.Is(err, ErrEmptyCart) {
				return weberr.NewError(err, "Nothing to check out.", http.StatusUnprocessableEntity)
			}
			return err
		}

		return web.Redirect(w, r, "/cart")
	}
}
