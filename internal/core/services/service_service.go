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

// OfferingService implements management of agency service offerings.
type OfferingService struct {
	serviceRepo portsrepo.ServiceRepositoryFacade
	slugGen     *SlugGenerator
	locales     []string
	logger      *slog.Logger
}

// NewOfferingService creates a new OfferingService.
func NewOfferingService(serviceRepo portsrepo.ServiceRepositoryFacade, slugGen *SlugGenerator, locales []string, logger *slog.Logger) *OfferingService {
	return &OfferingService{
		serviceRepo: serviceRepo,
		slugGen:     slugGen,
		locales:     locales,
		logger:      logger,
	}
}

// GetServiceByID retrieves a service offering by its ID.
func (s *OfferingService) GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	svc, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return svc, nil
}

// GetServiceBySlug resolves a service offering by its slug in the given
// locale.
func (s *OfferingService) GetServiceBySlug(ctx context.Context, locale, slug string) (*domain.Service, error) {
	svc, err := s.serviceRepo.FindServiceBySlug(ctx, locale, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get service by slug: %w", err)
	}
	return svc, nil
}

// ListServices retrieves service offerings, optionally filtered by status.
func (s *OfferingService) ListServices(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.Service, int, error) {
	services, total, err := s.serviceRepo.ListServices(ctx, status, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}
	if services == nil {
		services = []domain.Service{}
	}
	return services, total, nil
}

// CreateService creates a service offering with slugs derived from the
// title.
func (s *OfferingService) CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID string) (*domain.Service, error) {
	titles := req.Title.Localized(s.locales)
	if titles.IsEmpty() {
		return nil, fmt.Errorf("%w: service title is required", apperrors.ErrValidation)
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
	svc := domain.Service{
		ServiceID:        uuid.NewString(),
		Title:            titles,
		ShortDescription: req.ShortDescription.Localized(s.locales),
		Description:      req.Description.Localized(s.locales),
		Icon:             req.Icon,
		Image:            req.Image,
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

	err := persistWithSlugs(ctx, s.logger, s.slugGen, s.serviceRepo, titles, nil, svc.ServiceID,
		func(slugs domain.Localized) { svc.Slug = slugs },
		func(ctx context.Context) error { return s.serviceRepo.SaveService(ctx, svc) },
	)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// UpdateService applies a partial update. Slugs are recomputed only for the
// locales the incoming title carries.
func (s *OfferingService) UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest, updaterUserID string) (*domain.Service, error) {
	existing, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service for update: %w", err)
	}

	updated := *existing
	applyLocalized(&updated.Title, req.Title, s.locales)
	applyLocalized(&updated.ShortDescription, req.ShortDescription, s.locales)
	applyLocalized(&updated.Description, req.Description, s.locales)

	if req.Icon != nil {
		updated.Icon = *req.Icon
	}
	if req.Image != nil {
		updated.Image = *req.Image
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
	if req.Title.IsSet() && !req.Title.IsEmpty() {
		slugSource = req.Title.Localized(s.locales)
	}
	err = persistWithSlugs(ctx, s.logger, s.slugGen, s.serviceRepo, slugSource, existing.Slug, updated.ServiceID,
		func(slugs domain.Localized) { updated.Slug = slugs },
		func(ctx context.Context) error { return s.serviceRepo.UpdateService(ctx, updated) },
	)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteService soft-deletes a service offering.
func (s *OfferingService) DeleteService(ctx context.Context, serviceID string, deleterUserID string) error {
	if err := s.serviceRepo.DeleteService(ctx, serviceID, deleterUserID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}
