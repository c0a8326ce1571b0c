package user

import "context"

type Repository interface {
	// Sync upserts the user keyed by subject id, refreshing email and full
	// name when non-nil. Idempotent.
	Sync(ctx context.Context, id string, email, fullName *string) (*User, error)
	// EnsureExists creates a bare user row if absent and leaves existing
	// fields untouched.
	EnsureExists(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*User, error)
}
