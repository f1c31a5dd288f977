package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	"github.com/oryxgate/realty_cms/internal/dto"
)

// AreaGuideService implements area guide management, including the
// many-to-many attachment of projects to a guide.
type AreaGuideService struct {
	guideRepo   portsrepo.AreaGuideRepositoryFacade
	projectRepo portsrepo.ProjectReader
	slugGen     *SlugGenerator
	locales     []string
	logger      *slog.Logger
}

// NewAreaGuideService creates a new AreaGuideService.
func NewAreaGuideService(guideRepo portsrepo.AreaGuideRepositoryFacade, projectRepo portsrepo.ProjectReader, slugGen *SlugGenerator, locales []string, logger *slog.Logger) *AreaGuideService {
	return &AreaGuideService{
		guideRepo:   guideRepo,
		projectRepo: projectRepo,
		slugGen:     slugGen,
		locales:     locales,
		logger:      logger,
	}
}

// GetAreaGuideByID retrieves an area guide by its ID.
func (s *AreaGuideService) GetAreaGuideByID(ctx context.Context, areaGuideID string) (*domain.AreaGuide, error) {
	guide, err := s.guideRepo.FindAreaGuideByID(ctx, areaGuideID)
	if err != nil {
		return nil, fmt.Errorf("failed to get area guide: %w", err)
	}
	return guide, nil
}

// GetAreaGuideBySlug resolves an area guide by its slug in the given locale.
func (s *AreaGuideService) GetAreaGuideBySlug(ctx context.Context, locale, slug string) (*domain.AreaGuide, error) {
	guide, err := s.guideRepo.FindAreaGuideBySlug(ctx, locale, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get area guide by slug: %w", err)
	}
	return guide, nil
}

// ListAreaGuides retrieves area guides, optionally filtered by status.
func (s *AreaGuideService) ListAreaGuides(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.AreaGuide, int, error) {
	guides, total, err := s.guideRepo.ListAreaGuides(ctx, status, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list area guides: %w", err)
	}
	if guides == nil {
		guides = []domain.AreaGuide{}
	}
	return guides, total, nil
}

// CreateAreaGuide creates an area guide with slugs derived from the name.
func (s *AreaGuideService) CreateAreaGuide(ctx context.Context, req dto.CreateAreaGuideRequest, creatorUserID string) (*domain.AreaGuide, error) {
	names := req.Name.Localized(s.locales)
	if names.IsEmpty() {
		return nil, fmt.Errorf("%w: area guide name is required", apperrors.ErrValidation)
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
	guide := domain.AreaGuide{
		AreaGuideID: uuid.NewString(),
		Name:        names,
		Description: req.Description.Localized(s.locales),
		Image:       req.Image,
		IsPopular:   req.IsPopular,
		Status:      status,
		SortOrder:   req.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	err := persistWithSlugs(ctx, s.logger, s.slugGen, s.guideRepo, names, nil, guide.AreaGuideID,
		func(slugs domain.Localized) { guide.Slug = slugs },
		func(ctx context.Context) error { return s.guideRepo.SaveAreaGuide(ctx, guide) },
	)
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

// UpdateAreaGuide applies a partial update. Slugs are recomputed only for
// the locales the incoming name carries.
func (s *AreaGuideService) UpdateAreaGuide(ctx context.Context, areaGuideID string, req dto.UpdateAreaGuideRequest, updaterUserID string) (*domain.AreaGuide, error) {
	existing, err := s.guideRepo.FindAreaGuideByID(ctx, areaGuideID)
	if err != nil {
		return nil, fmt.Errorf("failed to load area guide for update: %w", err)
	}

	updated := *existing
	applyLocalized(&updated.Name, req.Name, s.locales)
	applyLocalized(&updated.Description, req.Description, s.locales)

	if req.Image != nil {
		updated.Image = *req.Image
	}
	if req.IsPopular != nil {
		updated.IsPopular = *req.IsPopular
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

	var slugSource domain.Localized
	if req.Name.IsSet() && !req.Name.IsEmpty() {
		slugSource = req.Name.Localized(s.locales)
	}
	err = persistWithSlugs(ctx, s.logger, s.slugGen, s.guideRepo, slugSource, existing.Slug, updated.AreaGuideID,
		func(slugs domain.Localized) { updated.Slug = slugs },
		func(ctx context.Context) error { return s.guideRepo.UpdateAreaGuide(ctx, updated) },
	)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAreaGuide soft-deletes an area guide.
func (s *AreaGuideService) DeleteAreaGuide(ctx context.Context, areaGuideID string, deleterUserID string) error {
	if err := s.guideRepo.DeleteAreaGuide(ctx, areaGuideID, deleterUserID); err != nil {
		return fmt.Errorf("failed to delete area guide: %w", err)
	}
	return nil
}

// UpdateAreaGuideStatus moves a guide to the given status, rejecting
// anything outside draft/published.
func (s *AreaGuideService) UpdateAreaGuideStatus(ctx context.Context, areaGuideID string, status string, updaterUserID string) (*domain.AreaGuide, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	existing, err := s.guideRepo.FindAreaGuideByID(ctx, areaGuideID)
	if err != nil {
		return nil, fmt.Errorf("failed to load area guide for status update: %w", err)
	}

	updated := *existing
	updated.Status = parsed
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.guideRepo.UpdateAreaGuide(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update area guide status: %w", err)
	}
	return &updated, nil
}

// ToggleAreaGuidePopular flips the popular flag.
func (s *AreaGuideService) ToggleAreaGuidePopular(ctx context.Context, areaGuideID string, updaterUserID string) (*domain.AreaGuide, error) {
	existing, err := s.guideRepo.FindAreaGuideByID(ctx, areaGuideID)
	if err != nil {
		return nil, fmt.Errorf("failed to load area guide for popular toggle: %w", err)
	}

	updated := *existing
	updated.IsPopular = !updated.IsPopular
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.guideRepo.UpdateAreaGuide(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to toggle area guide popular flag: %w", err)
	}
	return &updated, nil
}

// SyncAreaGuideProjects replaces the set of projects attached to a guide.
// Every referenced project must exist.
func (s *AreaGuideService) SyncAreaGuideProjects(ctx context.Context, areaGuideID string, projectIDs []string) error {
	if _, err := s.guideRepo.FindAreaGuideByID(ctx, areaGuideID); err != nil {
		return fmt.Errorf("failed to load area guide for project sync: %w", err)
	}
	for _, projectID := range projectIDs {
		if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
			return fmt.Errorf("failed to verify project %s for sync: %w", projectID, err)
		}
	}
	if err := s.guideRepo.SyncProjects(ctx, areaGuideID, projectIDs); err != nil {
		return fmt.Errorf("failed to sync area guide projects: %w", err)
	}
	return nil
}
