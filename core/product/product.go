package product

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Product is immutable after seeding. Price is an integer in the smallest
// currency unit.
type Product struct {
	ID          int    `json:"id" db:"product_id"`
	Name        string `json:"name" db:"name"`
	Price       int    `json:"price" db:"price"`
	Description string `json:"description" db:"description"`
}

func FetchAll(ctx context.Context, db *sqlx.DB) ([]Product, error) {
	const q = `
	SELECT product_id, name, price, description
	FROM cjs_product
	ORDER BY product_id`

	products := []Product{}
	if err := db.SelectContext(ctx, &products, q); err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}

	return products, nil
}

func Fetch(ctx context.Context, db *sqlx.DB, id int) (Product, error) {
	const q = `
	SELECT product_id, name, price, description
	FROM cjs_product
	WHERE product_id = $1`

	var prd Product
	if err := db.GetContext(ctx, &prd, q, id); err != nil {
		return Product{}, fmt.Errorf("fetching product[%d]: %w", id, err)
	}

	return prd, nil
}
