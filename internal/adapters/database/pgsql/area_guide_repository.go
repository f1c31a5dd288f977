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

type PgxAreaGuideRepository struct {
	pool *pgxpool.Pool
}

// NewPgxAreaGuideRepository creates a new repository for area guide data.
func NewPgxAreaGuideRepository(pool *pgxpool.Pool) portsrepo.AreaGuideRepositoryFacade {
	return &PgxAreaGuideRepository{pool: pool}
}

const areaGuideColumns = `
	area_guide_id, name, slug, description, image, is_popular, status, sort_order,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanAreaGuide(row pgx.Row) (domain.AreaGuide, error) {
	var g domain.AreaGuide
	err := row.Scan(
		&g.AreaGuideID,
		&g.Name,
		&g.Slug,
		&g.Description,
		&g.Image,
		&g.IsPopular,
		&g.Status,
		&g.SortOrder,
		&g.CreatedAt,
		&g.CreatedBy,
		&g.LastUpdatedAt,
		&g.LastUpdatedBy,
	)
	return g, err
}

// FindAreaGuideByID retrieves an area guide by its ID.
func (r *PgxAreaGuideRepository) FindAreaGuideByID(ctx context.Context, areaGuideID string) (*domain.AreaGuide, error) {
	query := `SELECT ` + areaGuideColumns + `
		FROM area_guides
		WHERE area_guide_id = $1 AND deleted_at IS NULL;`

	g, err := scanAreaGuide(r.pool.QueryRow(ctx, query, areaGuideID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find area guide %s: %w", areaGuideID, err)
	}
	return &g, nil
}

// FindAreaGuideBySlug retrieves an area guide by its slug in the given locale.
func (r *PgxAreaGuideRepository) FindAreaGuideBySlug(ctx context.Context, locale, slug string) (*domain.AreaGuide, error) {
	query := `SELECT ` + areaGuideColumns + `
		FROM area_guides
		WHERE slug->>$1 = $2 AND deleted_at IS NULL;`

	g, err := scanAreaGuide(r.pool.QueryRow(ctx, query, locale, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find area guide by slug %q (%s): %w", slug, locale, err)
	}
	return &g, nil
}

// ListAreaGuides retrieves area guides, optionally filtered by status.
func (r *PgxAreaGuideRepository) ListAreaGuides(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.AreaGuide, int, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	if status != nil {
		args = append(args, *status)
		where += ` AND status = $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM area_guides`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count area guides: %w", err)
	}

	query := `SELECT ` + areaGuideColumns + ` FROM area_guides` + where +
		` ORDER BY sort_order, created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, page.Limit, page.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query area guides: %w", err)
	}
	defer rows.Close()

	guides, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AreaGuide, error) {
		return scanAreaGuide(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to collect area guides: %w", err)
	}
	return guides, total, nil
}

// SaveAreaGuide persists a new area guide.
func (r *PgxAreaGuideRepository) SaveAreaGuide(ctx context.Context, guide domain.AreaGuide) error {
	query := `
		INSERT INTO area_guides (` + areaGuideColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	_, err := r.pool.Exec(ctx, query,
		guide.AreaGuideID,
		guide.Name,
		guide.Slug,
		guide.Description,
		guide.Image,
		guide.IsPopular,
		guide.Status,
		guide.SortOrder,
		guide.CreatedAt,
		guide.CreatedBy,
		guide.LastUpdatedAt,
		guide.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save area guide %s: %w", guide.AreaGuideID, mapWriteError(err))
	}
	return nil
}

// UpdateAreaGuide updates an existing area guide by ID.
func (r *PgxAreaGuideRepository) UpdateAreaGuide(ctx context.Context, guide domain.AreaGuide) error {
	query := `
		UPDATE area_guides SET
			name = $2, slug = $3, description = $4, image = $5,
			is_popular = $6, status = $7, sort_order = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE area_guide_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query,
		guide.AreaGuideID,
		guide.Name,
		guide.Slug,
		guide.Description,
		guide.Image,
		guide.IsPopular,
		guide.Status,
		guide.SortOrder,
		guide.LastUpdatedAt,
		guide.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update area guide %s: %w", guide.AreaGuideID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAreaGuide soft-deletes an area guide.
func (r *PgxAreaGuideRepository) DeleteAreaGuide(ctx context.Context, areaGuideID string, deletedBy string) error {
	query := `
		UPDATE area_guides SET
			deleted_at = $2,
			last_updated_at = $2,
			last_updated_by = $3
		WHERE area_guide_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query, areaGuideID, time.Now(), deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete area guide %s: %w", areaGuideID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SyncProjects replaces the set of projects attached to a guide inside one
// transaction.
func (r *PgxAreaGuideRepository) SyncProjects(ctx context.Context, areaGuideID string, projectIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin project sync: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM area_guide_projects WHERE area_guide_id = $1;`, areaGuideID); err != nil {
		return fmt.Errorf("failed to clear area guide projects: %w", err)
	}
	for _, projectID := range projectIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO area_guide_projects (area_guide_id, project_id) VALUES ($1, $2);`,
			areaGuideID, projectID,
		)
		if err != nil {
			return fmt.Errorf("failed to attach project %s: %w", projectID, mapWriteError(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit project sync: %w", err)
	}
	return nil
}

// SlugExists reports whether a live area guide already holds the slug in the
// given locale.
func (r *PgxAreaGuideRepository) SlugExists(ctx context.Context, locale, slug, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM area_guides
			WHERE slug->>$1 = $2
			  AND ($3::text = '' OR area_guide_id <> $3::uuid)
			  AND deleted_at IS NULL
		);`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, locale, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check area guide slug %q (%s): %w", slug, locale, err)
	}
	return exists, nil
}
