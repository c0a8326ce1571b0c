package user

import (
	"context"

	"pulsefit/internal/auth"
)

type Service interface {
	// Sync binds the verified external identity to a local user row. Safe
	// to call on every authenticated page load.
	Sync(ctx context.Context, ident auth.Identity) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Sync(ctx context.Context, ident auth.Identity) (*User, error) {
	var email, fullName *string
	if ident.Email != "" {
		email = &ident.Email
	}
	if ident.FullName != "" {
		fullName = &ident.FullName
	}

	return s.repo.Sync(ctx, ident.Subject, email, fullName)
}
