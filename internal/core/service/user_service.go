package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bewerbungsportal/review-portal/internal/api/metrics"
	"github.com/bewerbungsportal/review-portal/internal/core/domain"
	"github.com/bewerbungsportal/review-portal/internal/core/ports"
)

// UserCache abstracts the cached user collection (Redis). Get returns nil on
// a miss; Invalidate marks the collection stale so the next reader refetches.
type UserCache interface {
	GetUsers(ctx context.Context) ([]domain.User, error)
	SetUsers(ctx context.Context, users []domain.User) error
	InvalidateUsers(ctx context.Context) error
}

// UserService implements admin user management. Mutations write through to
// the store; the cached collection is invalidated only after the store
// confirms success, so a subsequent list read reflects the mutation.
type UserService struct {
	repo   ports.UserRepository
	cache  UserCache
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache UserCache, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, logger: logger}
}

// ListUsers returns the user collection, served from cache when fresh. A
// cache failure degrades to a direct store read.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	cached, err := s.cache.GetUsers(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("user cache read failed, falling back to store")
	} else if cached != nil {
		metrics.CacheRequestsTotal.WithLabelValues("users", "hit").Inc()
		return cached, nil
	}
	metrics.CacheRequestsTotal.WithLabelValues("users", "miss").Inc()

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetUsers(ctx, users); err != nil {
		s.logger.Warn().Err(err).Msg("failed to populate user cache")
	}
	return users, nil
}

// CreateUser creates an account from the admin draft. Role defaults to
// "user", status to "active".
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role, status, err := parseRoleStatus(input.Role, input.Status)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	metrics.UsersCreatedTotal.WithLabelValues(created.Role).Inc()
	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user created")
	return created, nil
}

// UpdateUser replaces every field except id. An empty password keeps the
// stored hash.
func (s *UserService) UpdateUser(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	role, status, err := parseRoleStatus(input.Role, input.Status)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	hash := existing.PasswordHash
	if input.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	user := &domain.User{
		ID:           input.ID,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Int64("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// DeleteUser removes an account. The protected admin identity is refused
// before any store call is made, and the delete must carry the dashboard's
// second confirmation step.
func (s *UserService) DeleteUser(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrDeleteNotConfirmed
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Protected() {
		metrics.ProtectedDeleteAttemptsTotal.Inc()
		s.logger.Warn().Int64("user_id", id).Msg("refused delete of protected admin account")
		return domain.ErrProtectedRecord
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	metrics.UsersDeletedTotal.Inc()
	s.logger.Info().Int64("user_id", id).Str("username", user.Username).Msg("user deleted")
	return nil
}

// invalidate marks the cached user collection stale. A failed invalidation is
// logged but never fails the mutation: the cache TTL bounds the staleness.
func (s *UserService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateUsers(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate user cache")
		return
	}
	metrics.CacheInvalidationsTotal.WithLabelValues("users").Inc()
}

func parseRoleStatus(rawRole, rawStatus string) (string, domain.UserStatus, error) {
	if rawRole == "" {
		rawRole = domain.RoleUser
	}
	if rawStatus == "" {
		rawStatus = string(domain.UserActive)
	}

	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return "", "", err
	}
	status, err := domain.ParseUserStatus(rawStatus)
	if err != nil {
		return "", "", err
	}
	return role, status, nil
}
