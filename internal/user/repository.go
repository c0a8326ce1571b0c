package user

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrUserNotFound = errors.New("user not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Sync(ctx context.Context, id string, email, fullName *string) (*User, error) {
	query := `
		INSERT INTO users (id, email, full_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET email = COALESCE(EXCLUDED.email, users.email),
		    full_name = COALESCE(EXCLUDED.full_name, users.full_name)
		RETURNING id, email, full_name, created_at
	`

	var u User
	err := r.db.GetContext(ctx, &u, query, id, email, fullName)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) EnsureExists(ctx context.Context, id string) error {
	query := `
		INSERT INTO users (id)
		VALUES ($1)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, email, full_name, created_at
		FROM users
		WHERE id = $1
	`

	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		return nil, err
	}

	return &u, nil
}
