package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=5"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"required"`
	// Empty password keeps the stored one.
	Password string `json:"password,omitempty" validate:"omitempty,min=5"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
	Status   string `json:"status" validate:"required,oneof=active inactive"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract the dashboard renders
// from is not coupled to internal domain changes.

type userResponse struct {
	ID          int64         `json:"id"`
	Username    string        `json:"username"`
	Email       string        `json:"email,omitempty"`
	Role        string        `json:"role"`
	RoleLabel   labelResponse `json:"role_label"`
	Status      string        `json:"status"`
	StatusLabel labelResponse `json:"status_label"`
	Protected   bool          `json:"protected"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type listUsersResponse struct {
	Data []userResponse `json:"data"`
}
