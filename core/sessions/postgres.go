package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Postgres stores sessions in the session table, so they survive restarts.
type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, userID int) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	const q = `
	INSERT INTO cjs_session (token, user_id, created_at)
	VALUES ($1, $2, $3)`

	if _, err := s.db.ExecContext(ctx, q, token, userID, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}

	return token, nil
}

func (s *Postgres) Resolve(ctx context.Context, token string) (int, bool, error) {
	if token == "" {
		return 0, false, nil
	}

	const q = `
	SELECT user_id
	FROM cjs_session
	WHERE token = $1`

	var userID int
	if err := s.db.GetContext(ctx, &userID, q, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("looking up session: %w", err)
	}

	return userID, true, nil
}
