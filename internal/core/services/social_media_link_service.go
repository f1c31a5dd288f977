package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	"github.com/oryxgate/realty_cms/internal/dto"
)

// SocialMediaLinkService implements social profile link management.
type SocialMediaLinkService struct {
	linkRepo portsrepo.SocialMediaLinkRepositoryFacade
	locales  []string
}

// NewSocialMediaLinkService creates a new SocialMediaLinkService.
func NewSocialMediaLinkService(linkRepo portsrepo.SocialMediaLinkRepositoryFacade, locales []string) *SocialMediaLinkService {
	return &SocialMediaLinkService{linkRepo: linkRepo, locales: locales}
}

// GetSocialMediaLinkByID retrieves a social link by ID.
func (s *SocialMediaLinkService) GetSocialMediaLinkByID(ctx context.Context, linkID string) (*domain.SocialMediaLink, error) {
	link, err := s.linkRepo.FindSocialMediaLinkByID(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to get social media link: %w", err)
	}
	return link, nil
}

// ListSocialMediaLinks retrieves social links, optionally only active ones.
func (s *SocialMediaLinkService) ListSocialMediaLinks(ctx context.Context, activeOnly bool) ([]domain.SocialMediaLink, error) {
	links, err := s.linkRepo.ListSocialMediaLinks(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list social media links: %w", err)
	}
	if links == nil {
		links = []domain.SocialMediaLink{}
	}
	return links, nil
}

// CreateSocialMediaLink creates a social link.
func (s *SocialMediaLinkService) CreateSocialMediaLink(ctx context.Context, req dto.CreateSocialMediaLinkRequest, creatorUserID string) (*domain.SocialMediaLink, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now()
	link := domain.SocialMediaLink{
		SocialMediaLinkID: uuid.NewString(),
		Platform:          domain.SocialPlatform(req.Platform),
		Label:             req.Label.Localized(s.locales),
		URL:               req.URL,
		Icon:              req.Icon,
		IsActive:          active,
		SortOrder:         req.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.linkRepo.SaveSocialMediaLink(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to create social media link: %w", err)
	}
	return &link, nil
}

// UpdateSocialMediaLink applies a partial update.
func (s *SocialMediaLinkService) UpdateSocialMediaLink(ctx context.Context, linkID string, req dto.UpdateSocialMediaLinkRequest, updaterUserID string) (*domain.SocialMediaLink, error) {
	existing, err := s.linkRepo.FindSocialMediaLinkByID(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to load social media link for update: %w", err)
	}

	updated := *existing
	applyLocalized(&updated.Label, req.Label, s.locales)

	if req.Platform != nil {
		updated.Platform = domain.SocialPlatform(*req.Platform)
	}
	if req.URL != nil {
		updated.URL = *req.URL
	}
	if req.Icon != nil {
		updated.Icon = *req.Icon
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		updated.SortOrder = *req.SortOrder
	}

	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.linkRepo.UpdateSocialMediaLink(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update social media link: %w", err)
	}
	return &updated, nil
}

// ReorderSocialMediaLinks applies a batch of display positions. Each link is
// moved individually; an unknown ID fails the whole request with not found.
func (s *SocialMediaLinkService) ReorderSocialMediaLinks(ctx context.Context, req dto.ReorderSocialMediaLinksRequest, updaterUserID string) error {
	for _, item := range req.Links {
		if err := s.linkRepo.UpdateSocialMediaLinkSortOrder(ctx, item.SocialMediaLinkID, item.SortOrder, updaterUserID); err != nil {
			return fmt.Errorf("failed to reorder social media link %s: %w", item.SocialMediaLinkID, err)
		}
	}
	return nil
}

// DeleteSocialMediaLink soft-deletes a social link.
func (s *SocialMediaLinkService) DeleteSocialMediaLink(ctx context.Context, linkID string, deleterUserID string) error {
	if err := s.linkRepo.DeleteSocialMediaLink(ctx, linkID, deleterUserID); err != nil {
		return fmt.Errorf("failed to delete social media link: %w", err)
	}
	return nil
}
