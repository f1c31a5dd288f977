package dto

import (
	"time"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// CreateTeamMemberRequest defines the data needed to create a team member.
type CreateTeamMemberRequest struct {
	Name        LocalizedInput `json:"name" binding:"required"`
	JobTitle    LocalizedInput `json:"job_title"`
	Bio         LocalizedInput `json:"bio"`
	Image       string         `json:"image"`
	Email       string         `json:"email" binding:"omitempty,email"`
	Phone       string         `json:"phone"`
	LinkedinURL string         `json:"linkedin_url" binding:"omitempty,url"`
	Status      string         `json:"status" binding:"omitempty,oneof=draft published"`
	SortOrder   int            `json:"sort_order"`
}

// UpdateTeamMemberRequest carries a partial team member update.
type UpdateTeamMemberRequest struct {
	Name        LocalizedInput `json:"name"`
	JobTitle    LocalizedInput `json:"job_title"`
	Bio         LocalizedInput `json:"bio"`
	Image       *string        `json:"image"`
	Email       *string        `json:"email" binding:"omitempty,email"`
	Phone       *string        `json:"phone"`
	LinkedinURL *string        `json:"linkedin_url" binding:"omitempty,url"`
	Status      *string        `json:"status" binding:"omitempty,oneof=draft published"`
	SortOrder   *int           `json:"sort_order"`
}

// TeamMemberResponse is the public serialization of a team member.
type TeamMemberResponse struct {
	TeamMemberID string    `json:"team_member_id"`
	Name         string    `json:"name"`
	JobTitle     string    `json:"job_title"`
	Bio          string    `json:"bio"`
	Image        string    `json:"image"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	LinkedinURL  string    `json:"linkedin_url"`
	Status       string    `json:"status"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToTeamMemberResponse renders a team member for one locale.
func ToTeamMemberResponse(m *domain.TeamMember, rc RenderContext) TeamMemberResponse {
	return TeamMemberResponse{
		TeamMemberID: m.TeamMemberID,
		Name:         m.Name.Resolve(rc.Locale, rc.DefaultLocale),
		JobTitle:     m.JobTitle.Resolve(rc.Locale, rc.DefaultLocale),
		Bio:          m.Bio.Resolve(rc.Locale, rc.DefaultLocale),
		Image:        m.Image,
		Email:        m.Email,
		Phone:        m.Phone,
		LinkedinURL:  m.LinkedinURL,
		Status:       m.Status.String(),
		SortOrder:    m.SortOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.LastUpdatedAt,
	}
}

// ToListTeamMemberResponse renders a page of team members.
func ToListTeamMemberResponse(members []domain.TeamMember, rc RenderContext) []TeamMemberResponse {
	res := make([]TeamMemberResponse, len(members))
	for i, m := range members {
		res[i] = ToTeamMemberResponse(&m, rc)
	}
	return res
}
