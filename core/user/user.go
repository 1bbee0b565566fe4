package user

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// User holds a storefront account. Passwords are stored and compared in
// plaintext to match the original system's behavior; production use
// requires salted hashing before anything else.
type User struct {
	ID       int    `json:"id" db:"user_id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}

func Fetch(ctx context.Context, db *sqlx.DB, id int) (User, error) {
	const q = `
	SELECT user_id, username, password
	FROM cjs_user
	WHERE user_id = $1`

	var usr User
	if err := db.GetContext(ctx, &usr, q, id); err != nil {
		return User{}, fmt.Errorf("fetching user[%d]: %w", id, err)
	}

	return usr, nil
}

func FetchByUsername(ctx context.Context, db *sqlx.DB, username string) (User, error) {
	const q = `
	SELECT user_id, username, password
	FROM cjs_user
	WHERE username = $1`

	var usr User
	if err := db.GetContext(ctx, &usr, q, username); err != nil {
		return User{}, fmt.Errorf("fetching user[%s]: %w", username, err)
	}

	return usr, nil
}
