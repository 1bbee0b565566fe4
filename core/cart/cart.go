package cart

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Item is one pending cart row. Rows are never merged on insert; multiple
// rows per (user, product) accumulate until checkout aggregates them.
type Item struct {
	ID        int `json:"-" db:"cart_item_id"`
	ProductID int `json:"productId" db:"product_id"`
	Quantity  int `json:"quantity" db:"quantity"`
	UserID    int `json:"-" db:"user_id"`
}

// ItemNew is the add-to-cart payload. The quantity rule lives here, at the
// boundary: CreateItem itself does not re-validate.
type ItemNew struct {
	ProductID int `validate:"required,gt=0"`
	Quantity  int `validate:"required,gt=0"`
}

// ViewItem is one aggregated line of the cart page.
type ViewItem struct {
	ProductName string `json:"productName" db:"product_name"`
	Quantity    int    `json:"quantity" db:"quantity"`
}

func CreateItem(ctx context.Context, db sqlx.ExtContext, item Item) error {
	const q = `
	INSERT INTO cjs_cart_item (product_id, quantity, user_id)
	VALUES (:product_id, :quantity, :user_id)`

	if _, err := sqlx.NamedExecContext(ctx, db, q, item); err != nil {
		return fmt.Errorf("inserting cart item: %w", err)
	}

	return nil
}

// ItemsByUser sums quantities grouped by product NAME, not id: two distinct
// products sharing a name merge into one line. That matches the behavior
// this view has always had; checkout aggregates by id instead.
func ItemsByUser(ctx context.Context, db *sqlx.DB, userID int) ([]ViewItem, error) {
	const q = `
	SELECT SUM(ci.quantity) AS quantity, p.name AS product_name
	FROM cjs_cart_item AS ci
	LEFT JOIN cjs_product AS p ON ci.product_id = p.product_id
	WHERE ci.user_id = $1
	GROUP BY p.name
	ORDER BY p.name`

	items := []ViewItem{}
	if err := db.SelectContext(ctx, &items, q, userID); err != nil {
		return nil, fmt.Errorf("aggregating cart for user[%d]: %w", userID, err)
	}

	return items, nil
}

// DeleteByUser flushes every cart row of a user.
func DeleteByUser(ctx context.Context, db sqlx.ExtContext, userID int) error {
	const q = `
	DELETE FROM cjs_cart_item
	WHERE user_id = $1`

	if _, err := db.ExecContext(ctx, q, userID); err != nil {
		return fmt.Errorf("flushing cart for user[%d]: %w", userID, err)
	}

	return nil
}
