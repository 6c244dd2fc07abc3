package ports

import (
	"context"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// The store assigns ids on Create; ids are immutable thereafter.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update replaces every field except id. Returns ErrUserNotFound when the
	// id does not exist.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
