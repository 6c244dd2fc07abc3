package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
)

// RevocationChecker reports whether a session token has been logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Auth validates the bearer token, rejects revoked sessions, and injects the
// session identity into context. Routing is decided from these claims: no
// valid session means 401 before any handler runs.
func Auth(jwtSecret string, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			session := sessionFromClaims(claims)
			if session.TokenID != "" && revoked != nil {
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), session.TokenID)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "session check failed")
				}
				if isRevoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "session logged out")
				}
			}

			c.Set("session", session)
			c.Set("username", session.Username)
			c.Set("role", session.Role)

			return next(c)
		}
	}
}

func sessionFromClaims(claims jwt.MapClaims) domain.Session {
	session := domain.Session{}
	if jti, ok := claims["jti"].(string); ok {
		session.TokenID = jti
	}
	if username, ok := claims["username"].(string); ok {
		session.Username = username
	}
	if role, ok := claims["role"].(string); ok {
		session.Role = role
	}
	// JSON numbers decode as float64.
	if uid, ok := claims["uid"].(float64); ok {
		session.UserID = int64(uid)
	}
	if exp, ok := claims["exp"].(float64); ok {
		session.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return session
}
