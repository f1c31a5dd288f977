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

type PgxTestimonialRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTestimonialRepository creates a new repository for testimonial data.
func NewPgxTestimonialRepository(pool *pgxpool.Pool) portsrepo.TestimonialRepositoryFacade {
	return &PgxTestimonialRepository{pool: pool}
}

const testimonialColumns = `
	testimonial_id, client_name, client_title, content, rating, client_image,
	video_url, is_featured, status, sort_order,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanTestimonial(row pgx.Row) (domain.Testimonial, error) {
	var t domain.Testimonial
	err := row.Scan(
		&t.TestimonialID,
		&t.ClientName,
		&t.ClientTitle,
		&t.Content,
		&t.Rating,
		&t.ClientImage,
		&t.VideoURL,
		&t.IsFeatured,
		&t.Status,
		&t.SortOrder,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

// FindTestimonialByID retrieves a testimonial by ID.
func (r *PgxTestimonialRepository) FindTestimonialByID(ctx context.Context, testimonialID string) (*domain.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + `
		FROM testimonials
		WHERE testimonial_id = $1 AND deleted_at IS NULL;`

	t, err := scanTestimonial(r.pool.QueryRow(ctx, query, testimonialID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find testimonial %s: %w", testimonialID, err)
	}
	return &t, nil
}

// ListTestimonials retrieves testimonials, optionally filtered by status.
func (r *PgxTestimonialRepository) ListTestimonials(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.Testimonial, int, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	if status != nil {
		args = append(args, *status)
		where += ` AND status = $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM testimonials`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count testimonials: %w", err)
	}

	query := `SELECT ` + testimonialColumns + ` FROM testimonials` + where +
		` ORDER BY sort_order, created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, page.Limit, page.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	testimonials, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Testimonial, error) {
		return scanTestimonial(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to collect testimonials: %w", err)
	}
	return testimonials, total, nil
}

// SaveTestimonial persists a new testimonial.
func (r *PgxTestimonialRepository) SaveTestimonial(ctx context.Context, testimonial domain.Testimonial) error {
	query := `
		INSERT INTO testimonials (` + testimonialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	_, err := r.pool.Exec(ctx, query,
		testimonial.TestimonialID,
		testimonial.ClientName,
		testimonial.ClientTitle,
		testimonial.Content,
		testimonial.Rating,
		testimonial.ClientImage,
		testimonial.VideoURL,
		testimonial.IsFeatured,
		testimonial.Status,
		testimonial.SortOrder,
		testimonial.CreatedAt,
		testimonial.CreatedBy,
		testimonial.LastUpdatedAt,
		testimonial.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save testimonial %s: %w", testimonial.TestimonialID, mapWriteError(err))
	}
	return nil
}

// UpdateTestimonial updates an existing testimonial by ID.
func (r *PgxTestimonialRepository) UpdateTestimonial(ctx context.Context, testimonial domain.Testimonial) error {
	query := `
		UPDATE testimonials SET
			client_name = $2, client_title = $3, content = $4, rating = $5,
			client_image = $6, video_url = $7, is_featured = $8, status = $9,
			sort_order = $10, last_updated_at = $11, last_updated_by = $12
		WHERE testimonial_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query,
		testimonial.TestimonialID,
		testimonial.ClientName,
		testimonial.ClientTitle,
		testimonial.Content,
		testimonial.Rating,
		testimonial.ClientImage,
		testimonial.VideoURL,
		testimonial.IsFeatured,
		testimonial.Status,
		testimonial.SortOrder,
		testimonial.LastUpdatedAt,
		testimonial.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update testimonial %s: %w", testimonial.TestimonialID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTestimonial soft-deletes a testimonial.
func (r *PgxTestimonialRepository) DeleteTestimonial(ctx context.Context, testimonialID string, deletedBy string) error {
	query := `
		UPDATE testimonials SET
			deleted_at = $2,
			last_updated_at = $2,
			last_updated_by = $3
		WHERE testimonial_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query, testimonialID, time.Now(), deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial %s: %w", testimonialID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
