package user

import (
	"context"
	"testing"

	"pulsefit/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Sync(ctx context.Context, id string, email, fullName *string) (*User, error) {
	args := m.Called(ctx, id, email, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) EnsureExists(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func TestService_Sync(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	email := "jo@example.com"
	name := "Jo Smith"
	mockRepo.On("Sync", mock.Anything, "user_2abc", &email, &name).
		Return(&User{ID: "user_2abc", Email: &email, FullName: &name}, nil)

	u, err := service.Sync(context.Background(), auth.Identity{
		Subject:  "user_2abc",
		Email:    email,
		FullName: name,
	})

	assert.NoError(t, err)
	assert.Equal(t, "user_2abc", u.ID)
	mockRepo.AssertExpectations(t)
}

func TestService_Sync_EmptyProfileFields(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	// Provider shared nothing beyond the subject: nils reach the store so
	// existing values are left untouched.
	mockRepo.On("Sync", mock.Anything, "user_2abc", (*string)(nil), (*string)(nil)).
		Return(&User{ID: "user_2abc"}, nil)

	u, err := service.Sync(context.Background(), auth.Identity{Subject: "user_2abc"})

	assert.NoError(t, err)
	assert.Nil(t, u.Email)
	mockRepo.AssertExpectations(t)
}

func TestService_Sync_Idempotent(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	email := "jo@example.com"
	mockRepo.On("Sync", mock.Anything, "user_2abc", &email, (*string)(nil)).
		Return(&User{ID: "user_2abc", Email: &email}, nil).Twice()

	ident := auth.Identity{Subject: "user_2abc", Email: email}

	first, err := service.Sync(context.Background(), ident)
	assert.NoError(t, err)
	second, err := service.Sync(context.Background(), ident)
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	mockRepo.AssertExpectations(t)
}
