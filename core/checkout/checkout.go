// Package checkout converts a user's pending cart rows into a durable
// transaction with aggregated line items, then clears the cart.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cafejs/cafejs/core/cart"
	"github.com/cafejs/cafejs/database"
	"github.com/jmoiron/sqlx"
)

// ErrEmptyCart reports a checkout with nothing to commit. No transaction
// row is created and nothing is deleted.
var ErrEmptyCart = errors.New("nothing to checkout")

type Transaction struct {
	ID        int       `json:"id" db:"transaction_id"`
	UserID    int       `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type LineItem struct {
	ID            int `json:"-" db:"line_item_id"`
	TransactionID int `json:"transactionId" db:"transaction_id"`
	ProductID     int `json:"productId" db:"product_id"`
	Quantity      int `json:"quantity" db:"quantity"`
}

// aggregate is one (product, summed quantity) pair read from the cart.
type aggregate struct {
	ProductID int `db:"product_id"`
	Quantity  int `db:"quantity"`
}

// Engine serializes checkouts per user. Two concurrent checkouts for the
// same user would otherwise both aggregate the same cart rows before
// either clears them, producing a duplicate transaction.
//
// Locks are never released once created; the map grows to at most one
// mutex per user that ever checks out, bounded by the user table.
type Engine struct {
	db *sqlx.DB

	mu    sync.Mutex
	users map[int]*sync.Mutex
}

func NewEngine(db *sqlx.DB) *Engine {
	return &Engine{
		db:    db,
		users: make(map[int]*sync.Mutex),
	}
}

func (e *Engine) userLock(userID int) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.users[userID]
	if !ok {
		l = &sync.Mutex{}
		e.users[userID] = l
	}
	return l
}

// Checkout aggregates the user's cart grouped by product, commits one
// transaction plus one line item per distinct product, and clears the
// cart. The three phases run inside a single database transaction, so a
// failure in any phase rolls back the whole unit.
func (e *Engine) Checkout(ctx context.Context, userID int) (Transaction, []LineItem, error) {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	var trx Transaction
	var lines []LineItem

	err := database.Transaction(e.db, func(tx sqlx.ExtContext) error {
		aggr, err := aggregateCart(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("aggregating cart: %w", err)
		}

		if len(aggr) == 0 {
			return ErrEmptyCart
		}

		trx, err = create(ctx, tx, userID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}

		for _, a := range aggr {
			line := LineItem{
				TransactionID: trx.ID,
				ProductID:     a.ProductID,
				Quantity:      a.Quantity,
			}

			if err := createLineItem(ctx, tx, line); err != nil {
				return fmt.Errorf("creating line item for product[%d]: %w", a.ProductID, err)
			}

			lines = append(lines, line)
		}

		if err := cart.DeleteByUser(ctx, tx, userID); err != nil {
			return fmt.Errorf("clearing cart: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			return Transaction{}, nil, ErrEmptyCart
		}
		return Transaction{}, nil, fmt.Errorf("checking out cart of user[%d]: %w", userID, err)
	}

	return trx, lines, nil
}

func aggregateCart(ctx context.Context, tx sqlx.ExtContext, userID int) ([]aggregate, error) {
	const q = `
	SELECT product_id, SUM(quantity) AS quantity
	FROM cjs_cart_item
	WHERE user_id = $1
	GROUP BY product_id
	ORDER BY product_id`

	aggr := []aggregate{}
	rows, err := tx.QueryxContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a aggregate
		if err := rows.StructScan(&a); err != nil {
			return nil, err
		}
		aggr = append(aggr, a)
	}

	return aggr, rows.Err()
}

func create(ctx context.Context, tx sqlx.ExtContext, userID int, now time.Time) (Transaction, error) {
	const q = `
	INSERT INTO cjs_transaction (user_id, created_at)
	VALUES ($1, $2)
	RETURNING transaction_id`

	trx := Transaction{UserID: userID, CreatedAt: now}
	if err := sqlx.GetContext(ctx, tx, &trx.ID, q, userID, now); err != nil {
		return Transaction{}, err
	}

	return trx, nil
}

func createLineItem(ctx context.Context, tx sqlx.ExtContext, line LineItem) error {
	const q = `
	INSERT INTO cjs_line_item (transaction_id, product_id, quantity)
	VALUES (:transaction_id, :product_id, :quantity)`

	if _, err := sqlx.NamedExecContext(ctx, tx, q, line); err != nil {
		return err
	}

	return nil
}
