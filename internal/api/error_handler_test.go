package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/users/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_ProtectedRecordGermanNotification(t *testing.T) {
	code, body := renderError(t, domain.ErrProtectedRecord)
	if code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
	if body.Error != "Operation nicht erlaubt" {
		t.Fatalf("expected verbatim dashboard notification, got %q", body.Error)
	}
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"delete not confirmed", domain.ErrDeleteNotConfirmed, http.StatusPreconditionRequired},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"application not found", domain.ErrApplicationNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid role", domain.ErrInvalidRole, http.StatusUnprocessableEntity},
		{"invalid user status", domain.ErrInvalidUserStatus, http.StatusUnprocessableEntity},
		{"invalid application status", domain.ErrInvalidApplicationStatus, http.StatusUnprocessableEntity},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if body.Error == "" {
				t.Fatal("expected a non-empty error message")
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("delete user 1"), domain.ErrProtectedRecord)
	code, _ := renderError(t, wrapped)
	if code != http.StatusConflict {
		t.Fatalf("expected wrapped domain error to map to 409, got %d", code)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid id"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body.Error != "invalid id" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", body.Error)
	}
}
