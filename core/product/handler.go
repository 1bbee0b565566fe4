package product

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
	"github.com/cafejs/cafejs/views"
	"github.com/jmoiron/sqlx"
)

// HandleList renders the storefront index. It works for anonymous
// visitors; a resolved session only adds the user to the page.
func HandleList(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		products, err := FetchAll(ctx, db)
		if err != nil {
			return fmt.Errorf("listing products: %w", err)
		}

		var usr *claims.Claims
		if clm, err := claims.Get(ctx); err == nil {
			usr = &clm
		}

		data := struct {
			Products []Product
			User     *claims.Claims
		}{products, usr}

		return views.Render(w, "index.html", data, http.StatusOK)
	}
}

func HandleShow(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := strconv.Atoi(web.Param(r, "id"))
		if err != nil {
			return weberr.NewError(err, "Product not found", http.StatusNotFound)
		}

		prd, err := Fetch(ctx, db, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return weberr.NewError(err, "Product not found", http.StatusNotFound)
			}
			return fmt.Errorf("showing product[%d]: %w", id, err)
		}

		data := struct {
			Product Product
		}{prd}

		return views.Render(w, "product.html", data, http.StatusOK)
	}
}
