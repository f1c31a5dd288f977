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

// BlogService implements blog article management. PublishedAt is stamped the
// first time an article reaches published status.
type BlogService struct {
	blogRepo portsrepo.BlogRepositoryFacade
	slugGen  *SlugGenerator
	locales  []string
	logger   *slog.Logger
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogRepo portsrepo.BlogRepositoryFacade, slugGen *SlugGenerator, locales []string, logger *slog.Logger) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		slugGen:  slugGen,
		locales:  locales,
		logger:   logger,
	}
}

// GetBlogByID retrieves a blog article by its ID.
func (s *BlogService) GetBlogByID(ctx context.Context, blogID string) (*domain.Blog, error) {
	blog, err := s.blogRepo.FindBlogByID(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return blog, nil
}

// GetBlogBySlug resolves a blog article by its slug in the given locale.
func (s *BlogService) GetBlogBySlug(ctx context.Context, locale, slug string) (*domain.Blog, error) {
	blog, err := s.blogRepo.FindBlogBySlug(ctx, locale, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog by slug: %w", err)
	}
	return blog, nil
}

// ListBlogs retrieves blog articles, optionally filtered by status.
func (s *BlogService) ListBlogs(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.Blog, int, error) {
	blogs, total, err := s.blogRepo.ListBlogs(ctx, status, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list blogs: %w", err)
	}
	if blogs == nil {
		blogs = []domain.Blog{}
	}
	return blogs, total, nil
}

// CreateBlog creates a blog article with slugs derived from the title.
func (s *BlogService) CreateBlog(ctx context.Context, req dto.CreateBlogRequest, creatorUserID string) (*domain.Blog, error) {
	titles := req.Title.Localized(s.locales)
	if titles.IsEmpty() {
		return nil, fmt.Errorf("%w: blog title is required", apperrors.ErrValidation)
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
	blog := domain.Blog{
		BlogID:           uuid.NewString(),
		Title:            titles,
		ShortDescription: req.ShortDescription.Localized(s.locales),
		Content:          req.Content.Localized(s.locales),
		MetaTitle:        req.MetaTitle.Localized(s.locales),
		MetaDescription:  req.MetaDescription.Localized(s.locales),
		FeaturedImage:    req.FeaturedImage,
		Gallery:          req.Gallery,
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
	if status == domain.StatusPublished {
		blog.PublishedAt = &now
	}

	err := persistWithSlugs(ctx, s.logger, s.slugGen, s.blogRepo, titles, nil, blog.BlogID,
		func(slugs domain.Localized) { blog.Slug = slugs },
		func(ctx context.Context) error { return s.blogRepo.SaveBlog(ctx, blog) },
	)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// UpdateBlog applies a partial update. Slugs are recomputed only for the
// locales the incoming title names.
func (s *BlogService) UpdateBlog(ctx context.Context, blogID string, req dto.UpdateBlogRequest, updaterUserID string) (*domain.Blog, error) {
	existing, err := s.blogRepo.FindBlogByID(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to load blog for update: %w", err)
	}

	updated := *existing
	applyLocalized(&updated.Title, req.Title, s.locales)
	applyLocalized(&updated.ShortDescription, req.ShortDescription, s.locales)
	applyLocalized(&updated.Content, req.Content, s.locales)
	applyLocalized(&updated.MetaTitle, req.MetaTitle, s.locales)
	applyLocalized(&updated.MetaDescription, req.MetaDescription, s.locales)

	if req.FeaturedImage != nil {
		updated.FeaturedImage = *req.FeaturedImage
	}
	if req.Gallery != nil {
		updated.Gallery = req.Gallery
	}
	if req.IsFeatured != nil {
		updated.IsFeatured = *req.IsFeatured
	}
	if req.Status != nil {
		parsed, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		s.stampPublishedAt(&updated, parsed)
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
	err = persistWithSlugs(ctx, s.logger, s.slugGen, s.blogRepo, slugSource, existing.Slug, updated.BlogID,
		func(slugs domain.Localized) { updated.Slug = slugs },
		func(ctx context.Context) error { return s.blogRepo.UpdateBlog(ctx, updated) },
	)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBlog soft-deletes a blog article.
func (s *BlogService) DeleteBlog(ctx context.Context, blogID string, deleterUserID string) error {
	if err := s.blogRepo.DeleteBlog(ctx, blogID, deleterUserID); err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	return nil
}

// UpdateBlogStatus moves an article to the given status, rejecting anything
// outside the draft/published set.
func (s *BlogService) UpdateBlogStatus(ctx context.Context, blogID string, status string, updaterUserID string) (*domain.Blog, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	existing, err := s.blogRepo.FindBlogByID(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to load blog for status update: %w", err)
	}

	updated := *existing
	s.stampPublishedAt(&updated, parsed)
	updated.Status = parsed
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.blogRepo.UpdateBlog(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update blog status: %w", err)
	}
	return &updated, nil
}

// ToggleBlogFeatured flips the featured flag.
func (s *BlogService) ToggleBlogFeatured(ctx context.Context, blogID string, updaterUserID string) (*domain.Blog, error) {
	existing, err := s.blogRepo.FindBlogByID(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to load blog for featured toggle: %w", err)
	}

	updated := *existing
	updated.IsFeatured = !updated.IsFeatured
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.blogRepo.UpdateBlog(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to toggle blog featured flag: %w", err)
	}
	return &updated, nil
}

// stampPublishedAt records the first publication time. Republishing keeps
// the original timestamp.
func (s *BlogService) stampPublishedAt(blog *domain.Blog, next domain.Status) {
	if next == domain.StatusPublished && blog.PublishedAt == nil {
		now := time.Now()
		blog.PublishedAt = &now
	}
}
