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

type PgxServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgxServiceRepository creates a new repository for service offering data.
func NewPgxServiceRepository(pool *pgxpool.Pool) portsrepo.ServiceRepositoryFacade {
	return &PgxServiceRepository{pool: pool}
}

const serviceColumns = `
	service_id, title, slug, short_description, description, icon, image,
	is_featured, status, sort_order, created_at, created_by, last_updated_at, last_updated_by
`

func scanService(row pgx.Row) (domain.Service, error) {
	var s domain.Service
	err := row.Scan(
		&s.ServiceID,
		&s.Title,
		&s.Slug,
		&s.ShortDescription,
		&s.Description,
		&s.Icon,
		&s.Image,
		&s.IsFeatured,
		&s.Status,
		&s.SortOrder,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

// FindServiceByID retrieves a service offering by its ID.
func (r *PgxServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + `
		FROM services
		WHERE service_id = $1 AND deleted_at IS NULL;`

	s, err := scanService(r.pool.QueryRow(ctx, query, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service %s: %w", serviceID, err)
	}
	return &s, nil
}

// FindServiceBySlug retrieves a service offering by its slug in the given
// locale.
func (r *PgxServiceRepository) FindServiceBySlug(ctx context.Context, locale, slug string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + `
		FROM services
		WHERE slug->>$1 = $2 AND deleted_at IS NULL;`

	s, err := scanService(r.pool.QueryRow(ctx, query, locale, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service by slug %q (%s): %w", slug, locale, err)
	}
	return &s, nil
}

// ListServices retrieves service offerings, optionally filtered by status.
func (r *PgxServiceRepository) ListServices(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.Service, int, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	if status != nil {
		args = append(args, *status)
		where += ` AND status = $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	query := `SELECT ` + serviceColumns + ` FROM services` + where +
		` ORDER BY sort_order, created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, page.Limit, page.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Service, error) {
		return scanService(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to collect services: %w", err)
	}
	return services, total, nil
}

// SaveService persists a new service offering.
func (r *PgxServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	query := `
		INSERT INTO services (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	_, err := r.pool.Exec(ctx, query,
		service.ServiceID,
		service.Title,
		service.Slug,
		service.ShortDescription,
		service.Description,
		service.Icon,
		service.Image,
		service.IsFeatured,
		service.Status,
		service.SortOrder,
		service.CreatedAt,
		service.CreatedBy,
		service.LastUpdatedAt,
		service.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save service %s: %w", service.ServiceID, mapWriteError(err))
	}
	return nil
}

// UpdateService updates an existing service offering by ID.
func (r *PgxServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	query := `
		UPDATE services SET
			title = $2, slug = $3, short_description = $4, description = $5,
			icon = $6, image = $7, is_featured = $8, status = $9, sort_order = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE service_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query,
		service.ServiceID,
		service.Title,
		service.Slug,
		service.ShortDescription,
		service.Description,
		service.Icon,
		service.Image,
		service.IsFeatured,
		service.Status,
		service.SortOrder,
		service.LastUpdatedAt,
		service.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", service.ServiceID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteService soft-deletes a service offering.
func (r *PgxServiceRepository) DeleteService(ctx context.Context, serviceID string, deletedBy string) error {
	query := `
		UPDATE services SET
			deleted_at = $2,
			last_updated_at = $2,
			last_updated_by = $3
		WHERE service_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query, serviceID, time.Now(), deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SlugExists reports whether a live service already holds the slug in the
// given locale.
func (r *PgxServiceRepository) SlugExists(ctx context.Context, locale, slug, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM services
			WHERE slug->>$1 = $2
			  AND ($3::text = '' OR service_id <> $3::uuid)
			  AND deleted_at IS NULL
		);`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, locale, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check service slug %q (%s): %w", slug, locale, err)
	}
	return exists, nil
}
