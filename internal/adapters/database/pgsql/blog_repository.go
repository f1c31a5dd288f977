package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
)

type PgxBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPgxBlogRepository creates a new repository for blog data.
func NewPgxBlogRepository(pool *pgxpool.Pool) portsrepo.BlogRepositoryFacade {
	return &PgxBlogRepository{pool: pool}
}

const blogColumns = `
	blog_id, title, slug, short_description, content, meta_title, meta_description,
	featured_image, gallery, is_featured, status, sort_order, published_at,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanBlog(row pgx.Row) (domain.Blog, error) {
	var b domain.Blog
	err := row.Scan(
		&b.BlogID,
		&b.Title,
		&b.Slug,
		&b.ShortDescription,
		&b.Content,
		&b.MetaTitle,
		&b.MetaDescription,
		&b.FeaturedImage,
		&b.Gallery,
		&b.IsFeatured,
		&b.Status,
		&b.SortOrder,
		&b.PublishedAt,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.LastUpdatedAt,
		&b.LastUpdatedBy,
	)
	return b, err
}

// FindBlogByID retrieves a blog article by its ID.
func (r *PgxBlogRepository) FindBlogByID(ctx context.Context, blogID string) (*domain.Blog, error) {
	query := `SELECT ` + blogColumns + `
		FROM blogs
		WHERE blog_id = $1 AND deleted_at IS NULL;`

	b, err := scanBlog(r.pool.QueryRow(ctx, query, blogID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find blog %s: %w", blogID, err)
	}
	return &b, nil
}

// FindBlogBySlug retrieves a blog article by its slug in the given locale.
func (r *PgxBlogRepository) FindBlogBySlug(ctx context.Context, locale, slug string) (*domain.Blog, error) {
	query := `SELECT ` + blogColumns + `
		FROM blogs
		WHERE slug->>$1 = $2 AND deleted_at IS NULL;`

	b, err := scanBlog(r.pool.QueryRow(ctx, query, locale, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find blog by slug %q (%s): %w", slug, locale, err)
	}
	return &b, nil
}

// ListBlogs retrieves blog articles, optionally filtered by status, newest
// publication first.
func (r *PgxBlogRepository) ListBlogs(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.Blog, int, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	if status != nil {
		args = append(args, *status)
		where += ` AND status = $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blogs`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blogs: %w", err)
	}

	query := `SELECT ` + blogColumns + ` FROM blogs` + where +
		` ORDER BY published_at DESC NULLS LAST, created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, page.Limit, page.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query blogs: %w", err)
	}
	defer rows.Close()

	blogs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Blog, error) {
		return scanBlog(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to collect blogs: %w", err)
	}
	return blogs, total, nil
}

// SaveBlog persists a new blog article.
func (r *PgxBlogRepository) SaveBlog(ctx context.Context, blog domain.Blog) error {
	query := `
		INSERT INTO blogs (` + blogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`

	_, err := r.pool.Exec(ctx, query,
		blog.BlogID,
		blog.Title,
		blog.Slug,
		blog.ShortDescription,
		blog.Content,
		blog.MetaTitle,
		blog.MetaDescription,
		blog.FeaturedImage,
		blog.Gallery,
		blog.IsFeatured,
		blog.Status,
		blog.SortOrder,
		blog.PublishedAt,
		blog.CreatedAt,
		blog.CreatedBy,
		blog.LastUpdatedAt,
		blog.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save blog %s: %w", blog.BlogID, mapWriteError(err))
	}
	return nil
}

// UpdateBlog updates an existing blog article by ID.
func (r *PgxBlogRepository) UpdateBlog(ctx context.Context, blog domain.Blog) error {
	query := `
		UPDATE blogs SET
			title = $2, slug = $3, short_description = $4, content = $5,
			meta_title = $6, meta_description = $7, featured_image = $8, gallery = $9,
			is_featured = $10, status = $11, sort_order = $12, published_at = $13,
			last_updated_at = $14, last_updated_by = $15
		WHERE blog_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query,
		blog.BlogID,
		blog.Title,
		blog.Slug,
		blog.ShortDescription,
		blog.Content,
		blog.MetaTitle,
		blog.MetaDescription,
		blog.FeaturedImage,
		blog.Gallery,
		blog.IsFeatured,
		blog.Status,
		blog.SortOrder,
		blog.PublishedAt,
		blog.LastUpdatedAt,
		blog.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update blog %s: %w", blog.BlogID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBlog soft-deletes a blog article.
func (r *PgxBlogRepository) DeleteBlog(ctx context.Context, blogID string, deletedBy string) error {
	query := `
		UPDATE blogs SET
			deleted_at = $2,
			last_updated_at = $2,
			last_updated_by = $3
		WHERE blog_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query, blogID, time.Now(), deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete blog %s: %w", blogID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SlugExists reports whether a live blog already holds the slug in the given
// locale.
func (r *PgxBlogRepository) SlugExists(ctx context.Context, locale, slug, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM blogs
			WHERE slug->>$1 = $2
			  AND ($3::text = '' OR blog_id <> $3::uuid)
			  AND deleted_at IS NULL
		);`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, locale, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check blog slug %q (%s): %w", slug, locale, err)
	}
	return exists, nil
}
