package domain

import (
	"errors"
	"strings"
	"time"
)

// ApplicationStatus represents the review state of a submitted application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

var ErrApplicationNotFound = errors.New("application not found")
var ErrInvalidApplicationStatus = errors.New("invalid application status")

// Application is a submission from the applicant form, reviewed on the admin
// dashboard. UserID is a weak reference: the application outlives changes to
// the submitting account.
type Application struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	FullName    string            `json:"full_name"`
	Email       string            `json:"email"`
	Title       string            `json:"title"`
	CoverLetter string            `json:"cover_letter"`
	BirthDate   *time.Time        `json:"birth_date,omitempty"`
	Status      ApplicationStatus `json:"status"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// ParseApplicationStatus normalises a raw status string and rejects values
// outside {pending, approved, rejected}.
func ParseApplicationStatus(raw string) (ApplicationStatus, error) {
	switch ApplicationStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPending:
		return StatusPending, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", ErrInvalidApplicationStatus
	}
}
