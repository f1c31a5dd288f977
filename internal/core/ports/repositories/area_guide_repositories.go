package repositories

import (
	"context"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// AreaGuideReader defines read operations for area guide data.
type AreaGuideReader interface {
	FindAreaGuideByID(ctx context.Context, areaGuideID string) (*domain.AreaGuide, error)
	FindAreaGuideBySlug(ctx context.Context, locale, slug string) (*domain.AreaGuide, error)
	ListAreaGuides(ctx context.Context, status *domain.Status, page ListParams) ([]domain.AreaGuide, int, error)
}

// AreaGuideWriter defines write operations for area guide data.
type AreaGuideWriter interface {
	SaveAreaGuide(ctx context.Context, guide domain.AreaGuide) error
	UpdateAreaGuide(ctx context.Context, guide domain.AreaGuide) error
	DeleteAreaGuide(ctx context.Context, areaGuideID string, deletedBy string) error

	// SyncProjects replaces the set of projects attached to a guide.
	SyncProjects(ctx context.Context, areaGuideID string, projectIDs []string) error
}

// AreaGuideRepositoryFacade combines all area guide repository interfaces.
type AreaGuideRepositoryFacade interface {
	AreaGuideReader
	AreaGuideWriter
	SlugChecker
}
