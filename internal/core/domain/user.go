package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ProtectedUsername names the account the portal refuses to delete.
// Protection is defined by this literal username, not by role or id, so
// renaming the account drops the protection.
const ProtectedUsername = "Admin"

// UserStatus is the closed set of account states.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidUserStatus = errors.New("invalid user status")
var ErrProtectedRecord = errors.New("protected record must not be deleted")
var ErrDeleteNotConfirmed = errors.New("delete requires confirmation")
var ErrForbidden = errors.New("access forbidden")

// User models a portal account managed from the admin dashboard.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Protected reports whether the user is the non-deletable admin identity.
func (u *User) Protected() bool {
	return u.Username == ProtectedUsername
}

// ParseUserStatus normalises a raw status string and rejects values outside
// the closed enumeration. Applied at the store boundary so unchecked strings
// never reach the domain.
func ParseUserStatus(raw string) (UserStatus, error) {
	switch UserStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case UserActive:
		return UserActive, nil
	case UserInactive:
		return UserInactive, nil
	default:
		return "", ErrInvalidUserStatus
	}
}

// ParseRole validates a role against the closed set {admin, user}.
func ParseRole(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrInvalidRole
	}
}
