package handler

import "time"

// --- Request types ---

type submitApplicationRequest struct {
	FullName    string     `json:"full_name"    validate:"required"`
	Email       string     `json:"email"        validate:"required,email"`
	Title       string     `json:"title"        validate:"required"`
	CoverLetter string     `json:"cover_letter" validate:"required"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
}

type updateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// --- Response types ---

type applicationResponse struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	Username    string        `json:"username,omitempty"`
	FullName    string        `json:"full_name"`
	Email       string        `json:"email"`
	Title       string        `json:"title"`
	CoverLetter string        `json:"cover_letter"`
	BirthDate   *time.Time    `json:"birth_date,omitempty"`
	Status      string        `json:"status"`
	StatusLabel labelResponse `json:"status_label"`
	SubmittedAt time.Time     `json:"submitted_at"`
}

// applicationSummaryResponse is the lightweight row used in the dashboard
// list. It intentionally omits the cover letter to keep payloads small.
type applicationSummaryResponse struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	Username    string        `json:"username,omitempty"`
	FullName    string        `json:"full_name"`
	Title       string        `json:"title"`
	Status      string        `json:"status"`
	StatusLabel labelResponse `json:"status_label"`
	SubmittedAt time.Time     `json:"submitted_at"`
}

type listApplicationsResponse struct {
	Data []applicationSummaryResponse `json:"data"`
}
