package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
)

type stubRevoker struct {
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.revoked[tokenID] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.revoked[tokenID]
	return ok, nil
}

func seedCredentials(t *testing.T, repo *stubUserRepo, username, password, role string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return repo.seed(domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Status:       domain.UserActive,
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedCredentials(t, repo, "Admin", "123456", domain.RoleAdmin)
	svc := NewAuthService(repo, newStubRevoker(), "test-secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "Admin", "123456")
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if user.Username != "Admin" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Errorf("expected role claim %q, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["username"] != "Admin" {
		t.Errorf("expected username claim Admin, got %v", claims["username"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Error("expected a non-empty jti claim")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedCredentials(t, repo, "Admin", "123456", domain.RoleAdmin)
	svc := NewAuthService(repo, newStubRevoker(), "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "Admin", "wrong")
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserNotLeaked(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody", "123456")
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "test-secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_RevokesRemainingLifetime(t *testing.T) {
	revoker := newStubRevoker()
	svc := NewAuthService(newStubUserRepo(), revoker, "test-secret", time.Hour)

	session := domain.Session{TokenID: "token-1", UserID: 1, Username: "Admin", Role: domain.RoleAdmin, ExpiresAt: time.Now().Add(30 * time.Minute)}
	if err := svc.Logout(context.Background(), session); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	ttl, ok := revoker.revoked["token-1"]
	if !ok {
		t.Fatal("expected token id to be revoked")
	}
	if ttl <= 0 || ttl > 30*time.Minute {
		t.Errorf("expected ttl bounded by remaining lifetime, got %v", ttl)
	}
}

func TestAuthService_Logout_ExpiredTokenSkipsRevocation(t *testing.T) {
	revoker := newStubRevoker()
	svc := NewAuthService(newStubUserRepo(), revoker, "test-secret", time.Hour)

	session := domain.Session{TokenID: "stale", ExpiresAt: time.Now().Add(-time.Minute)}
	if err := svc.Logout(context.Background(), session); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatal("expired token must not be written to the revocation store")
	}
}
