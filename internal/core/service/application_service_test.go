package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
	"github.com/bewerbungsportal/review-portal/internal/core/ports"
)

type stubApplicationRepo struct {
	apps   map[int64]*domain.Application
	nextID int64
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[int64]*domain.Application)}
}

func (r *stubApplicationRepo) seed(app domain.Application) *domain.Application {
	r.nextID++
	app.ID = r.nextID
	r.apps[app.ID] = &app
	return &app
}

func (r *stubApplicationRepo) List(_ context.Context) ([]domain.Application, error) {
	out := make([]domain.Application, 0, len(r.apps))
	for _, app := range r.apps {
		out = append(out, *app)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id int64) (*domain.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	clone := *app
	return &clone, nil
}

func (r *stubApplicationRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	clone := *app
	r.nextID++
	clone.ID = r.nextID
	r.apps[clone.ID] = &clone
	created := clone
	return &created, nil
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	app.Status = status
	clone := *app
	return &clone, nil
}

type stubApplicationCache struct {
	cached        []domain.Application
	sets          int
	invalidations int

	getErr        error
	invalidateErr error
}

func (c *stubApplicationCache) GetApplications(_ context.Context) ([]domain.Application, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.cached, nil
}

func (c *stubApplicationCache) SetApplications(_ context.Context, apps []domain.Application) error {
	c.sets++
	c.cached = apps
	return nil
}

func (c *stubApplicationCache) InvalidateApplications(_ context.Context) error {
	if c.invalidateErr != nil {
		return c.invalidateErr
	}
	c.invalidations++
	c.cached = nil
	return nil
}

func newApplicationService(repo *stubApplicationRepo, users *stubUserRepo, cache *stubApplicationCache) *ApplicationService {
	return NewApplicationService(repo, users, cache, zerolog.Nop())
}

func TestApplicationService_Submit_AlwaysStartsPending(t *testing.T) {
	repo := newStubApplicationRepo()
	users := newStubUserRepo()
	eva := users.seed(domain.User{Username: "Eva", Role: domain.RoleUser, Status: domain.UserActive})
	cache := &stubApplicationCache{}
	svc := newApplicationService(repo, users, cache)

	created, err := svc.Submit(context.Background(), ports.SubmitApplicationInput{
		UserID:      eva.ID,
		FullName:    "Eva Musterfrau",
		Email:       "eva@example.com",
		Title:       "Backend Engineer",
		CoverLetter: "Sehr geehrte Damen und Herren",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, domain.StatusPending, created.Status)
	require.WithinDuration(t, time.Now().UTC(), created.SubmittedAt, time.Minute)
	require.Equal(t, 1, cache.invalidations)
}

func TestApplicationService_UpdateStatus_AnyToAny(t *testing.T) {
	all := []domain.ApplicationStatus{domain.StatusPending, domain.StatusApproved, domain.StatusRejected}

	for _, from := range all {
		for _, to := range all {
			repo := newStubApplicationRepo()
			seeded := repo.seed(domain.Application{UserID: 1, FullName: "Eva", Status: from, SubmittedAt: time.Now().UTC()})
			svc := newApplicationService(repo, newStubUserRepo(), &stubApplicationCache{})

			updated, err := svc.UpdateStatus(context.Background(), seeded.ID, string(to))
			require.NoError(t, err, "%s -> %s must be permitted", from, to)
			require.Equal(t, to, updated.Status)
		}
	}
}

func TestApplicationService_UpdateStatus_NoopKeepsRecordUnchanged(t *testing.T) {
	repo := newStubApplicationRepo()
	submitted := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	seeded := repo.seed(domain.Application{
		UserID:      1,
		FullName:    "Eva Musterfrau",
		Email:       "eva@example.com",
		Title:       "Backend Engineer",
		Status:      domain.StatusApproved,
		SubmittedAt: submitted,
	})
	svc := newApplicationService(repo, newStubUserRepo(), &stubApplicationCache{})

	updated, err := svc.UpdateStatus(context.Background(), seeded.ID, "approved")
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, updated.Status)
	require.Equal(t, "Eva Musterfrau", updated.FullName)
	require.Equal(t, submitted, updated.SubmittedAt)
}

func TestApplicationService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := newStubApplicationRepo()
	seeded := repo.seed(domain.Application{UserID: 1, Status: domain.StatusPending, SubmittedAt: time.Now().UTC()})
	cache := &stubApplicationCache{}
	svc := newApplicationService(repo, newStubUserRepo(), cache)

	_, err := svc.UpdateStatus(context.Background(), seeded.ID, "archived")
	require.ErrorIs(t, err, domain.ErrInvalidApplicationStatus)
	require.Equal(t, domain.StatusPending, repo.apps[seeded.ID].Status)
	require.Zero(t, cache.invalidations)
}

func TestApplicationService_UpdateStatus_VisibleInListAfterInvalidation(t *testing.T) {
	repo := newStubApplicationRepo()
	users := newStubUserRepo()
	eva := users.seed(domain.User{Username: "Eva", Role: domain.RoleUser, Status: domain.UserActive})
	seeded := repo.seed(domain.Application{UserID: eva.ID, FullName: "Eva", Status: domain.StatusPending, SubmittedAt: time.Now().UTC()})
	cache := &stubApplicationCache{}
	svc := newApplicationService(repo, users, cache)

	// Warm the cache, then mutate through the coordinator.
	_, err := svc.ListApplications(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cache.cached)

	_, err = svc.UpdateStatus(context.Background(), seeded.ID, "approved")
	require.NoError(t, err)

	summaries, err := svc.ListApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, domain.StatusApproved, summaries[0].Status)
}

func TestApplicationService_ListApplications_CacheFailureFallsBackToStore(t *testing.T) {
	repo := newStubApplicationRepo()
	users := newStubUserRepo()
	eva := users.seed(domain.User{Username: "Eva", Role: domain.RoleUser, Status: domain.UserActive})
	repo.seed(domain.Application{UserID: eva.ID, FullName: "Eva", Status: domain.StatusPending, SubmittedAt: time.Now().UTC()})
	cache := &stubApplicationCache{getErr: errors.New("redis: connection refused")}
	svc := newApplicationService(repo, users, cache)

	summaries, err := svc.ListApplications(context.Background())
	require.NoError(t, err, "a cache read failure must degrade to a store read")
	require.Len(t, summaries, 1)
}

func TestApplicationService_UpdateStatus_SucceedsWhenInvalidationFails(t *testing.T) {
	repo := newStubApplicationRepo()
	seeded := repo.seed(domain.Application{UserID: 1, Status: domain.StatusPending, SubmittedAt: time.Now().UTC()})
	cache := &stubApplicationCache{invalidateErr: errors.New("redis: connection refused")}
	svc := newApplicationService(repo, newStubUserRepo(), cache)

	updated, err := svc.UpdateStatus(context.Background(), seeded.ID, "approved")
	require.NoError(t, err, "a failed invalidation must not fail a confirmed status change")
	require.Equal(t, domain.StatusApproved, updated.Status)
	require.Equal(t, domain.StatusApproved, repo.apps[seeded.ID].Status)
}

func TestApplicationService_ListApplications_JoinsUsernames(t *testing.T) {
	repo := newStubApplicationRepo()
	users := newStubUserRepo()
	eva := users.seed(domain.User{Username: "Eva", Role: domain.RoleUser, Status: domain.UserActive})
	repo.seed(domain.Application{UserID: eva.ID, FullName: "Eva Musterfrau", Status: domain.StatusPending, SubmittedAt: time.Now().UTC()})
	repo.seed(domain.Application{UserID: 999, FullName: "Verwaist", Status: domain.StatusPending, SubmittedAt: time.Now().UTC()})
	svc := newApplicationService(repo, users, &stubApplicationCache{})

	summaries, err := svc.ListApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.Equal(t, "Eva", summaries[0].Username)
	require.Empty(t, summaries[1].Username, "vanished submitter leaves the username empty")
}

func TestApplicationService_GetApplication(t *testing.T) {
	repo := newStubApplicationRepo()
	users := newStubUserRepo()
	eva := users.seed(domain.User{Username: "Eva", Role: domain.RoleUser, Status: domain.UserActive})
	seeded := repo.seed(domain.Application{
		UserID:      eva.ID,
		FullName:    "Eva Musterfrau",
		CoverLetter: "Sehr geehrte Damen und Herren",
		Status:      domain.StatusPending,
		SubmittedAt: time.Now().UTC(),
	})
	svc := newApplicationService(repo, users, &stubApplicationCache{})

	summary, err := svc.GetApplication(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Equal(t, "Eva", summary.Username)
	require.Equal(t, "Sehr geehrte Damen und Herren", summary.CoverLetter)

	_, err = svc.GetApplication(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrApplicationNotFound)
}
