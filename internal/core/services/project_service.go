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

// ProjectService implements project management: CRUD, publication workflow
// and slug lifecycle. Slugs are derived from the name on create, and on
// update recomputed for exactly the locales the payload names.
type ProjectService struct {
	projectRepo portsrepo.ProjectRepositoryFacade
	slugGen     *SlugGenerator
	locales     []string
	logger      *slog.Logger
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, slugGen *SlugGenerator, locales []string, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		slugGen:     slugGen,
		locales:     locales,
		logger:      logger,
	}
}

// GetProjectByID retrieves a project by its ID.
func (s *ProjectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// GetProjectBySlug resolves a project by its slug in the given locale.
func (s *ProjectService) GetProjectBySlug(ctx context.Context, locale, slug string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectBySlug(ctx, locale, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get project by slug: %w", err)
	}
	return project, nil
}

// ListProjects retrieves projects matching the filter along with the total
// match count.
func (s *ProjectService) ListProjects(ctx context.Context, filter domain.ProjectFilter, page portsrepo.ListParams) ([]domain.Project, int, error) {
	projects, total, err := s.projectRepo.ListProjects(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, total, nil
}

// CreateProject creates a project, deriving a unique slug per configured
// locale from the name.
func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	names := req.Name.Localized(s.locales)
	if names.IsEmpty() {
		return nil, fmt.Errorf("%w: project name is required", apperrors.ErrValidation)
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
	project := domain.Project{
		ProjectID:        uuid.NewString(),
		Name:             names,
		ShortDescription: req.ShortDescription.Localized(s.locales),
		Description:      req.Description.Localized(s.locales),
		Overview:         req.Overview.Localized(s.locales),
		Location:         req.Location.Localized(s.locales),
		DeveloperName:    req.DeveloperName.Localized(s.locales),
		DeveloperInfo:    req.DeveloperInfo.Localized(s.locales),
		Amenities:        req.Amenities.Localized(s.locales),
		PaymentPlan:      req.PaymentPlan.Localized(s.locales),
		MetaTitle:        req.MetaTitle.Localized(s.locales),
		MetaDescription:  req.MetaDescription.Localized(s.locales),
		FeaturedImage:    req.FeaturedImage,
		Gallery:          req.Gallery,
		FloorPlans:       req.FloorPlans,
		PriceAED:         req.PriceAED,
		AreaSqm:          req.AreaSqm,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		MapEmbed:         req.MapEmbed,
		ROI:              req.ROI,
		PropertyType:     domain.PropertyType(req.PropertyType),
		DeliveryDate:     req.DeliveryDate,
		IsFeatured:       req.IsFeatured,
		Status:           status,
		SortOrder:        req.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	err := persistWithSlugs(ctx, s.logger, s.slugGen, s.projectRepo, names, nil, project.ProjectID,
		func(slugs domain.Localized) { project.Slug = slugs },
		func(ctx context.Context) error { return s.projectRepo.SaveProject(ctx, project) },
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject applies a partial update. When the payload carries a name,
// slugs are recomputed for exactly the locales present in it; other locales
// keep their stored slug.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterUserID string) (*domain.Project, error) {
	existing, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project for update: %w", err)
	}

	updated := *existing
	applyLocalized(&updated.Name, req.Name, s.locales)
	applyLocalized(&updated.ShortDescription, req.ShortDescription, s.locales)
	applyLocalized(&updated.Description, req.Description, s.locales)
	applyLocalized(&updated.Overview, req.Overview, s.locales)
	applyLocalized(&updated.Location, req.Location, s.locales)
	applyLocalized(&updated.DeveloperName, req.DeveloperName, s.locales)
	applyLocalized(&updated.DeveloperInfo, req.DeveloperInfo, s.locales)
	applyLocalized(&updated.Amenities, req.Amenities, s.locales)
	applyLocalized(&updated.PaymentPlan, req.PaymentPlan, s.locales)
	applyLocalized(&updated.MetaTitle, req.MetaTitle, s.locales)
	applyLocalized(&updated.MetaDescription, req.MetaDescription, s.locales)

	if req.FeaturedImage != nil {
		updated.FeaturedImage = *req.FeaturedImage
	}
	if req.Gallery != nil {
		updated.Gallery = req.Gallery
	}
	if req.FloorPlans != nil {
		updated.FloorPlans = req.FloorPlans
	}
	if req.PriceAED != nil {
		updated.PriceAED = *req.PriceAED
	}
	if req.AreaSqm != nil {
		updated.AreaSqm = *req.AreaSqm
	}
	if req.Latitude != nil {
		updated.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		updated.Longitude = *req.Longitude
	}
	if req.MapEmbed != nil {
		updated.MapEmbed = *req.MapEmbed
	}
	if req.ROI != nil {
		updated.ROI = *req.ROI
	}
	if req.PropertyType != nil {
		updated.PropertyType = domain.PropertyType(*req.PropertyType)
	}
	if req.DeliveryDate != nil {
		updated.DeliveryDate = req.DeliveryDate
	}
	if req.IsFeatured != nil {
		updated.IsFeatured = *req.IsFeatured
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
	err = persistWithSlugs(ctx, s.logger, s.slugGen, s.projectRepo, slugSource, existing.Slug, updated.ProjectID,
		func(slugs domain.Localized) { updated.Slug = slugs },
		func(ctx context.Context) error { return s.projectRepo.UpdateProject(ctx, updated) },
	)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProject soft-deletes a project.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string, deleterUserID string) error {
	if err := s.projectRepo.DeleteProject(ctx, projectID, deleterUserID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// UpdateProjectStatus moves a project to the given status. Anything outside
// the draft/published set is rejected and the stored record stays untouched.
func (s *ProjectService) UpdateProjectStatus(ctx context.Context, projectID string, status string, updaterUserID string) (*domain.Project, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	existing, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project for status update: %w", err)
	}

	updated := *existing
	updated.Status = parsed
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.projectRepo.UpdateProject(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}
	return &updated, nil
}

// PublishProject sets the status to published.
func (s *ProjectService) PublishProject(ctx context.Context, projectID string, updaterUserID string) (*domain.Project, error) {
	return s.UpdateProjectStatus(ctx, projectID, domain.StatusPublished.String(), updaterUserID)
}

// UnpublishProject sets the status back to draft.
func (s *ProjectService) UnpublishProject(ctx context.Context, projectID string, updaterUserID string) (*domain.Project, error) {
	return s.UpdateProjectStatus(ctx, projectID, domain.StatusDraft.String(), updaterUserID)
}

// ToggleProjectFeatured flips the featured flag.
func (s *ProjectService) ToggleProjectFeatured(ctx context.Context, projectID string, updaterUserID string) (*domain.Project, error) {
	existing, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project for featured toggle: %w", err)
	}

	updated := *existing
	updated.IsFeatured = !updated.IsFeatured
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.projectRepo.UpdateProject(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to toggle project featured flag: %w", err)
	}
	return &updated, nil
}

// applyLocalized overlays a payload field onto the stored map when the
// payload carries it. Map-shaped input touches only the locales it names.
func applyLocalized(dst *domain.Localized, in dto.LocalizedInput, locales []string) {
	if !in.IsSet() {
		return
	}
	*dst = dst.Merge(in.Localized(locales))
}
