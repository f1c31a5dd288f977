package services

import (
	"context"

	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	"github.com/oryxgate/realty_cms/internal/dto"
)

// ProjectReaderSvc defines read operations for projects.
type ProjectReaderSvc interface {
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// GetProjectBySlug resolves a project by its slug in the given locale.
	GetProjectBySlug(ctx context.Context, locale, slug string) (*domain.Project, error)

	ListProjects(ctx context.Context, filter domain.ProjectFilter, page portsrepo.ListParams) ([]domain.Project, int, error)
}

// ProjectWriterSvc defines write operations for projects. Slug generation
// runs on every create and on every update whose payload carries a name.
type ProjectWriterSvc interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterUserID string) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID string, deleterUserID string) error

	// UpdateProjectStatus rejects statuses outside draft/published with a
	// validation error and leaves persisted state untouched.
	UpdateProjectStatus(ctx context.Context, projectID string, status string, updaterUserID string) (*domain.Project, error)
	PublishProject(ctx context.Context, projectID string, updaterUserID string) (*domain.Project, error)
	UnpublishProject(ctx context.Context, projectID string, updaterUserID string) (*domain.Project, error)
	ToggleProjectFeatured(ctx context.Context, projectID string, updaterUserID string) (*domain.Project, error)
}

// ProjectSvcFacade combines all project service interfaces.
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
