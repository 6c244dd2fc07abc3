package mongo

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
)

// SeedAdmin creates the protected "Admin" account when it does not exist yet.
// Idempotent: an existing account (whatever its fields) is left untouched.
func SeedAdmin(ctx context.Context, repo *UserRepository, password string) (*domain.User, error) {
	existing, err := repo.FindByUsername(ctx, domain.ProtectedUsername)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Username:     domain.ProtectedUsername,
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := repo.Create(ctx, admin)
	if err != nil {
		// Lost a race with another instance seeding the same account.
		if errors.Is(err, domain.ErrUserExists) {
			return repo.FindByUsername(ctx, domain.ProtectedUsername)
		}
		return nil, err
	}
	return created, nil
}
