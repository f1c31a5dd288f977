package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	"github.com/oryxgate/realty_cms/internal/dto"
)

// TeamMemberService implements team member management. Team members carry
// no slug.
type TeamMemberService struct {
	memberRepo portsrepo.TeamMemberRepositoryFacade
	locales    []string
}

// NewTeamMemberService creates a new TeamMemberService.
func NewTeamMemberService(memberRepo portsrepo.TeamMemberRepositoryFacade, locales []string) *TeamMemberService {
	return &TeamMemberService{memberRepo: memberRepo, locales: locales}
}

// GetTeamMemberByID retrieves a team member by ID.
func (s *TeamMemberService) GetTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error) {
	member, err := s.memberRepo.FindTeamMemberByID(ctx, teamMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return member, nil
}

// ListTeamMembers retrieves team members, optionally filtered by status.
func (s *TeamMemberService) ListTeamMembers(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.TeamMember, int, error) {
	members, total, err := s.memberRepo.ListTeamMembers(ctx, status, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list team members: %w", err)
	}
	if members == nil {
		members = []domain.TeamMember{}
	}
	return members, total, nil
}

// CreateTeamMember creates a team member.
func (s *TeamMemberService) CreateTeamMember(ctx context.Context, req dto.CreateTeamMemberRequest, creatorUserID string) (*domain.TeamMember, error) {
	names := req.Name.Localized(s.locales)
	if names.IsEmpty() {
		return nil, fmt.Errorf("%w: team member name is required", apperrors.ErrValidation)
	}

	status := domain.StatusDraft
	if req.Status != "" {
		parsed, err := domain.ParseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	now := time.Now()
	member := domain.TeamMember{
		TeamMemberID: uuid.NewString(),
		Name:         names,
		JobTitle:     req.JobTitle.Localized(s.locales),
		Bio:          req.Bio.Localized(s.locales),
		Image:        req.Image,
		Email:        req.Email,
		Phone:        req.Phone,
		LinkedinURL:  req.LinkedinURL,
		Status:       status,
		SortOrder:    req.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.memberRepo.SaveTeamMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return &member, nil
}

// UpdateTeamMember applies a partial update.
func (s *TeamMemberService) UpdateTeamMember(ctx context.Context, teamMemberID string, req dto.UpdateTeamMemberRequest, updaterUserID string) (*domain.TeamMember, error) {
	existing, err := s.memberRepo.FindTeamMemberByID(ctx, teamMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team member for update: %w", err)
	}

	updated := *existing
	applyLocalized(&updated.Name, req.Name, s.locales)
	applyLocalized(&updated.JobTitle, req.JobTitle, s.locales)
	applyLocalized(&updated.Bio, req.Bio, s.locales)

	if req.Image != nil {
		updated.Image = *req.Image
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}
	if req.Phone != nil {
		updated.Phone = *req.Phone
	}
	if req.LinkedinURL != nil {
		updated.LinkedinURL = *req.LinkedinURL
	}
	if req.Status != nil {
		parsed, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		updated.Status = parsed
	}
	if req.SortOrder != nil {
		updated.SortOrder = *req.SortOrder
	}

	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.memberRepo.UpdateTeamMember(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return &updated, nil
}

// DeleteTeamMember soft-deletes a team member.
func (s *TeamMemberService) DeleteTeamMember(ctx context.Context, teamMemberID string, deleterUserID string) error {
	if err := s.memberRepo.DeleteTeamMember(ctx, teamMemberID, deleterUserID); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}
