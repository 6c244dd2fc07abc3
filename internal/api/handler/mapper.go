package handler

import (
	"github.com/bewerbungsportal/review-portal/internal/core/domain"
	"github.com/bewerbungsportal/review-portal/internal/core/ports"
)

// --- Request → Service input ---

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
		Status:   req.Status,
	}
}

func toUpdateUserInput(id int64, req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		ID:       id,
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
		Status:   req.Status,
	}
}

func toSubmitInput(userID int64, req submitApplicationRequest) ports.SubmitApplicationInput {
	return ports.SubmitApplicationInput{
		UserID:      userID,
		FullName:    req.FullName,
		Email:       req.Email,
		Title:       req.Title,
		CoverLetter: req.CoverLetter,
		BirthDate:   req.BirthDate,
	}
}

// --- Domain → HTTP response ---

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		RoleLabel:   roleLabel(u.Role),
		Status:      string(u.Status),
		StatusLabel: userStatusLabel(u.Status),
		Protected:   u.Protected(),
		CreatedAt:   u.CreatedAt.UTC(),
		UpdatedAt:   u.UpdatedAt.UTC(),
	}
}

func toListUsersResponse(users []domain.User) listUsersResponse {
	items := make([]userResponse, len(users))
	for i, u := range users {
		items[i] = toUserResponse(u)
	}
	return listUsersResponse{Data: items}
}

func toApplicationResponse(s ports.ApplicationSummary) applicationResponse {
	return applicationResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Username:    s.Username,
		FullName:    s.FullName,
		Email:       s.Email,
		Title:       s.Title,
		CoverLetter: s.CoverLetter,
		BirthDate:   s.BirthDate,
		Status:      string(s.Status),
		StatusLabel: applicationStatusLabel(s.Status),
		SubmittedAt: s.SubmittedAt.UTC(),
	}
}

func toListApplicationsResponse(items []ports.ApplicationSummary) listApplicationsResponse {
	rows := make([]applicationSummaryResponse, len(items))
	for i, s := range items {
		rows[i] = applicationSummaryResponse{
			ID:          s.ID,
			UserID:      s.UserID,
			Username:    s.Username,
			FullName:    s.FullName,
			Title:       s.Title,
			Status:      string(s.Status),
			StatusLabel: applicationStatusLabel(s.Status),
			SubmittedAt: s.SubmittedAt.UTC(),
		}
	}
	return listApplicationsResponse{Data: rows}
}
