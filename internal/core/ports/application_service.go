package ports

import (
	"context"
	"time"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
)

// SubmitApplicationInput is the applicant form payload.
type SubmitApplicationInput struct {
	UserID      int64
	FullName    string
	Email       string
	Title       string
	CoverLetter string
	BirthDate   *time.Time
}

// ApplicationSummary is an application joined with the submitter's current
// username for display. Username is empty when the account no longer exists;
// the weak reference keeps the application itself intact.
type ApplicationSummary struct {
	domain.Application
	Username string
}

// ApplicationService defines submission and review use cases.
type ApplicationService interface {
	Submit(ctx context.Context, input SubmitApplicationInput) (*domain.Application, error)
	ListApplications(ctx context.Context) ([]ApplicationSummary, error)
	GetApplication(ctx context.Context, id int64) (*ApplicationSummary, error)
	// UpdateStatus transitions an application to any of
	// {pending, approved, rejected}; transitions are unrestricted and a no-op
	// transition succeeds. The cached application collection is invalidated
	// only after the store confirms the write.
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error)
}
