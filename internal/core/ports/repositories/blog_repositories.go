package repositories

import (
	"context"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// BlogReader defines read operations for blog data.
type BlogReader interface {
	FindBlogByID(ctx context.Context, blogID string) (*domain.Blog, error)
	FindBlogBySlug(ctx context.Context, locale, slug string) (*domain.Blog, error)
	ListBlogs(ctx context.Context, status *domain.Status, page ListParams) ([]domain.Blog, int, error)
}

// BlogWriter defines write operations for blog data.
type BlogWriter interface {
	SaveBlog(ctx context.Context, blog domain.Blog) error
	UpdateBlog(ctx context.Context, blog domain.Blog) error
	DeleteBlog(ctx context.Context, blogID string, deletedBy string) error
}

// BlogRepositoryFacade combines all blog repository interfaces.
type BlogRepositoryFacade interface {
	BlogReader
	BlogWriter
	SlugChecker
}
