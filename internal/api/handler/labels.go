package handler

import "github.com/bewerbungsportal/review-portal/internal/core/domain"

// labelResponse carries the bilingual display label the dashboard renders as
// a badge next to the raw value.
type labelResponse struct {
	DE string `json:"de"`
	EN string `json:"en"`
}

// Fixed enumeration tables mapping raw status/role codes to display labels.
// Unknown values pass the raw string through unchanged in both languages.

var userStatusLabels = map[domain.UserStatus]labelResponse{
	domain.UserActive:   {DE: "Aktiv", EN: "Active"},
	domain.UserInactive: {DE: "Inaktiv", EN: "Inactive"},
}

var applicationStatusLabels = map[domain.ApplicationStatus]labelResponse{
	domain.StatusPending:  {DE: "In Bearbeitung", EN: "Pending"},
	domain.StatusApproved: {DE: "Angenommen", EN: "Approved"},
	domain.StatusRejected: {DE: "Abgelehnt", EN: "Rejected"},
}

var roleLabels = map[string]labelResponse{
	domain.RoleAdmin: {DE: "Administrator", EN: "Admin"},
	domain.RoleUser:  {DE: "Benutzer", EN: "User"},
}

func userStatusLabel(s domain.UserStatus) labelResponse {
	if l, ok := userStatusLabels[s]; ok {
		return l
	}
	return labelResponse{DE: string(s), EN: string(s)}
}

func applicationStatusLabel(s domain.ApplicationStatus) labelResponse {
	if l, ok := applicationStatusLabels[s]; ok {
		return l
	}
	return labelResponse{DE: string(s), EN: string(s)}
}

func roleLabel(role string) labelResponse {
	if l, ok := roleLabels[role]; ok {
		return l
	}
	return labelResponse{DE: role, EN: role}
}
