package ports

import (
	"context"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
)

// ApplicationRepository defines persistence operations for applications.
// Applications are never deleted; status is the only mutable field.
type ApplicationRepository interface {
	List(ctx context.Context) ([]domain.Application, error)
	FindByID(ctx context.Context, id int64) (*domain.Application, error)
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	// UpdateStatus sets the status field and returns the updated record.
	// A no-op transition (same status) succeeds and changes nothing else.
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error)
}
