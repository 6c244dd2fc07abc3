package ports

import (
	"context"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
)

// AuthService is the session/identity provider consumed by the transport
// layer: login issues a bearer token, logout revokes it for the remainder of
// its lifetime. The current session itself travels inside the token.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Logout(ctx context.Context, session domain.Session) error
}
