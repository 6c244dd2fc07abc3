package ports

import (
	"context"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
)

// CreateUserInput is the draft sent when an admin adds an account.
// Role and Status fall back to "user" / "active" when empty.
type CreateUserInput struct {
	Username string
	Password string
	Email    string
	Role     string
	Status   string
}

// UpdateUserInput carries the full updated record for an existing account.
// Password is optional: empty keeps the stored hash.
type UpdateUserInput struct {
	ID       int64
	Username string
	Password string
	Email    string
	Role     string
	Status   string
}

// UserService defines the admin user-management use cases. Every mutation
// writes through to the store and invalidates the cached user collection only
// after the store confirms success.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	// DeleteUser refuses to delete the protected admin identity
	// (ErrProtectedRecord, checked before any store call) and requires the
	// caller to have completed the two-step confirmation
	// (ErrDeleteNotConfirmed otherwise).
	DeleteUser(ctx context.Context, id int64, confirmed bool) error
}
