package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cafejs/cafejs/api/web"
	"github.com/cafejs/cafejs/api/weberr"
	"github.com/cafejs/cafejs/core/claims"
	"github.com/cafejs/cafejs/core/product"
	"github.com/cafejs/cafejs/validate"
	"github.com/cafejs/cafejs/views"
	"github.com/jmoiron/sqlx"
)

// HandleAddItem inserts one cart row for the logged-in user. The quantity
// must be a positive number; anything else is a 400 before persistence is
// touched.
func HandleAddItem(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		clm, err := claims.Get(ctx)
		if err != nil {
			return weberr.NotAuthorized(errors.New("user not authenticated"))
		}

		productID, err := strconv.Atoi(web.Param(r, "id"))
		if err != nil {
			return weberr.NewError(err, "Product not found", http.StatusNotFound)
		}

		if err := r.ParseForm(); err != nil {
			return weberr.BadRequest(fmt.Errorf("parsing form: %w", err))
		}

		quantity, err := web.FormInt(r, "quantity")
		if err != nil {
			return weberr.NewError(err, "Invalid quantity. Please provide a valid number.", http.StatusBadRequest)
		}

		in := ItemNew{ProductID: productID, Quantity: quantity}
		if err := validate.Check(in); err != nil {
			return weberr.NewError(err, "Invalid quantity. Please provide a valid number.", http.StatusBadRequest)
		}

		if _, err := product.Fetch(ctx, db, in.ProductID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return weberr.NewError(err, "Product not found", http.StatusNotFound)
			}
			return fmt.Errorf("checking product[%d]: %w", in.ProductID, err)
		}

		item := Item{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UserID:    clm.UserID,
		}

		if err := CreateItem(ctx, db, item); err != nil {
			return fmt.Errorf("adding product[%d] to cart of user[%d]: %w", productID, clm.UserID, err)
		}

		return web.Redirect(w, r, "/")
	}
}

// HandleShow renders the aggregated cart page.
func HandleShow(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		clm, err := claims.Get(ctx)
		if err != nil {
			return weberr.NotAuthorized(errors.New("user not authenticated"))
		}

		items, err := ItemsByUser(ctx, db, clm.UserID)
		if err != nil {
			return fmt.Errorf("showing cart of user[%d]: %w", clm.UserID, err)
		}

		data := struct {
			Items []ViewItem
			User  claims.Claims
		}{items, clm}

		return views.Render(w, "cart.html", data, http.StatusOK)
	}
}
