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

// TestimonialService implements testimonial management.
type TestimonialService struct {
	testimonialRepo portsrepo.TestimonialRepositoryFacade
	locales         []string
}

// NewTestimonialService creates a new TestimonialService.
func NewTestimonialService(testimonialRepo portsrepo.TestimonialRepositoryFacade, locales []string) *TestimonialService {
	return &TestimonialService{testimonialRepo: testimonialRepo, locales: locales}
}

// GetTestimonialByID retrieves a testimonial by ID.
func (s *TestimonialService) GetTestimonialByID(ctx context.Context, testimonialID string) (*domain.Testimonial, error) {
	testimonial, err := s.testimonialRepo.FindTestimonialByID(ctx, testimonialID)
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	return testimonial, nil
}

// ListTestimonials retrieves testimonials, optionally filtered by status.
func (s *TestimonialService) ListTestimonials(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.Testimonial, int, error) {
	testimonials, total, err := s.testimonialRepo.ListTestimonials(ctx, status, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list testimonials: %w", err)
	}
	if testimonials == nil {
		testimonials = []domain.Testimonial{}
	}
	return testimonials, total, nil
}

// CreateTestimonial creates a testimonial.
func (s *TestimonialService) CreateTestimonial(ctx context.Context, req dto.CreateTestimonialRequest, creatorUserID string) (*domain.Testimonial, error) {
	clientNames := req.ClientName.Localized(s.locales)
	if clientNames.IsEmpty() {
		return nil, fmt.Errorf("%w: testimonial client name is required", apperrors.ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", apperrors.ErrValidation)
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
	testimonial := domain.Testimonial{
		TestimonialID: uuid.NewString(),
		ClientName:    clientNames,
		ClientTitle:   req.ClientTitle.Localized(s.locales),
		Content:       req.Content.Localized(s.locales),
		Rating:        req.Rating,
		ClientImage:   req.ClientImage,
		VideoURL:      req.VideoURL,
		IsFeatured:    req.IsFeatured,
		Status:        status,
		SortOrder:     req.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.testimonialRepo.SaveTestimonial(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return &testimonial, nil
}

// UpdateTestimonial applies a partial update.
func (s *TestimonialService) UpdateTestimonial(ctx context.Context, testimonialID string, req dto.UpdateTestimonialRequest, updaterUserID string) (*domain.Testimonial, error) {
	existing, err := s.testimonialRepo.FindTestimonialByID(ctx, testimonialID)
	if err != nil {
		return nil, fmt.Errorf("failed to load testimonial for update: %w", err)
	}

	updated := *existing
	applyLocalized(&updated.ClientName, req.ClientName, s.locales)
	applyLocalized(&updated.ClientTitle, req.ClientTitle, s.locales)
	applyLocalized(&updated.Content, req.Content, s.locales)

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, fmt.Errorf("%w: rating must be between 1 and 5", apperrors.ErrValidation)
		}
		updated.Rating = *req.Rating
	}
	if req.ClientImage != nil {
		updated.ClientImage = *req.ClientImage
	}
	if req.VideoURL != nil {
		updated.VideoURL = *req.VideoURL
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

	if err := s.testimonialRepo.UpdateTestimonial(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}
	return &updated, nil
}

// DeleteTestimonial soft-deletes a testimonial.
func (s *TestimonialService) DeleteTestimonial(ctx context.Context, testimonialID string, deleterUserID string) error {
	if err := s.testimonialRepo.DeleteTestimonial(ctx, testimonialID, deleterUserID); err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return nil
}
