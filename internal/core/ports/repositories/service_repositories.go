package repositories

import (
	"context"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// ServiceReader defines read operations for service offering data.
type ServiceReader interface {
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	FindServiceBySlug(ctx context.Context, locale, slug string) (*domain.Service, error)
	ListServices(ctx context.Context, status *domain.Status, page ListParams) ([]domain.Service, int, error)
}

// ServiceWriter defines write operations for service offering data.
type ServiceWriter interface {
	SaveService(ctx context.Context, service domain.Service) error
	UpdateService(ctx context.Context, service domain.Service) error
	DeleteService(ctx context.Context, serviceID string, deletedBy string) error
}

// ServiceRepositoryFacade combines all service repository interfaces.
type ServiceRepositoryFacade interface {
	ServiceReader
	ServiceWriter
	SlugChecker
}
