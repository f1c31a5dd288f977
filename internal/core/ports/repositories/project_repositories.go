package repositories

import (
	"context"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// ListParams carries page-based pagination for list queries.
type ListParams struct {
	Limit  int
	Offset int
}

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	// FindProjectByID retrieves a project by its ID.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjectBySlug retrieves a project whose slug for the given locale
	// matches. Uniqueness is guaranteed per (table, locale).
	FindProjectBySlug(ctx context.Context, locale, slug string) (*domain.Project, error)

	// ListProjects retrieves projects matching the filter, newest first,
	// along with the total match count for pagination.
	ListProjects(ctx context.Context, filter domain.ProjectFilter, page ListParams) ([]domain.Project, int, error)
}

// ProjectWriter defines write operations for project data.
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProject updates an existing project by ID.
	UpdateProject(ctx context.Context, project domain.Project) error

	// DeleteProject soft-deletes a project.
	DeleteProject(ctx context.Context, projectID string, deletedBy string) error
}

// ProjectRepositoryFacade combines all project repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
	SlugChecker
}
