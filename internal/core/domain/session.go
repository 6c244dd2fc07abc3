package domain

import "time"

// Session is the identity attached to an authenticated request. It carries
// exactly what the routing decision needs: who is logged in and which surface
// (admin dashboard or applicant form) they are sent to.
type Session struct {
	TokenID   string    `json:"-"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}
