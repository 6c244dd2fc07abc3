package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bewerbungsportal/review-portal/internal/api/metrics"
	"github.com/bewerbungsportal/review-portal/internal/core/domain"
	"github.com/bewerbungsportal/review-portal/internal/core/ports"
)

// ApplicationCache abstracts the cached application collection (Redis).
// Get returns nil on a miss.
type ApplicationCache interface {
	GetApplications(ctx context.Context) ([]domain.Application, error)
	SetApplications(ctx context.Context, apps []domain.Application) error
	InvalidateApplications(ctx context.Context) error
}

// ApplicationService implements submission and admin review. Status changes
// write through to the store and invalidate the cached collection only after
// the store confirms the write.
type ApplicationService struct {
	repo   ports.ApplicationRepository
	users  ports.UserRepository
	cache  ApplicationCache
	logger zerolog.Logger
}

func NewApplicationService(
	repo ports.ApplicationRepository,
	users ports.UserRepository,
	cache ApplicationCache,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{repo: repo, users: users, cache: cache, logger: logger}
}

// Submit stores a new application from the form. Status always starts at
// pending; submittedAt is assigned here and never changes.
func (s *ApplicationService) Submit(ctx context.Context, input ports.SubmitApplicationInput) (*domain.Application, error) {
	app := &domain.Application{
		UserID:      input.UserID,
		FullName:    input.FullName,
		Email:       input.Email,
		Title:       input.Title,
		CoverLetter: input.CoverLetter,
		BirthDate:   input.BirthDate,
		Status:      domain.StatusPending,
		SubmittedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	metrics.ApplicationsSubmittedTotal.Inc()
	s.logger.Info().Int64("application_id", created.ID).Int64("user_id", created.UserID).Msg("application submitted")
	return created, nil
}

// ListApplications returns all applications joined with the submitters'
// current usernames. The join is eventually consistent: each collection is
// cached under its own key, so a row may briefly show a stale username until
// the next refetch.
func (s *ApplicationService) ListApplications(ctx context.Context) ([]ports.ApplicationSummary, error) {
	apps, err := s.listCached(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.usernamesByID(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.ApplicationSummary, len(apps))
	for i, app := range apps {
		summaries[i] = ports.ApplicationSummary{Application: app, Username: names[app.UserID]}
	}
	return summaries, nil
}

// GetApplication returns a single application detail. A vanished submitter
// account leaves the username empty; the application itself is unaffected.
func (s *ApplicationService) GetApplication(ctx context.Context, id int64) (*ports.ApplicationSummary, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	username := ""
	if user, err := s.users.FindByID(ctx, app.UserID); err == nil {
		username = user.Username
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	return &ports.ApplicationSummary{Application: *app, Username: username}, nil
}

// UpdateStatus applies a review decision. Any status may transition to any
// other; a no-op transition succeeds and changes nothing else.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	parsed, err := domain.ParseApplicationStatus(status)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	metrics.ApplicationStatusTransitionsTotal.WithLabelValues(string(parsed)).Inc()
	s.logger.Info().Int64("application_id", id).Str("status", string(parsed)).Msg("application status updated")
	return updated, nil
}

func (s *ApplicationService) listCached(ctx context.Context) ([]domain.Application, error) {
	cached, err := s.cache.GetApplications(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("application cache read failed, falling back to store")
	} else if cached != nil {
		metrics.CacheRequestsTotal.WithLabelValues("applications", "hit").Inc()
		return cached, nil
	}
	metrics.CacheRequestsTotal.WithLabelValues("applications", "miss").Inc()

	apps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetApplications(ctx, apps); err != nil {
		s.logger.Warn().Err(err).Msg("failed to populate application cache")
	}
	return apps, nil
}

func (s *ApplicationService) usernamesByID(ctx context.Context) (map[int64]string, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	return names, nil
}

func (s *ApplicationService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateApplications(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate application cache")
		return
	}
	metrics.CacheInvalidationsTotal.WithLabelValues("applications").Inc()
}
