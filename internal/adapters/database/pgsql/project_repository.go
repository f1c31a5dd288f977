package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
)

type PgxProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgxProjectRepository creates a new repository for project data.
func NewPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{pool: pool}
}

const projectColumns = `
	project_id, name, slug, short_description, description, overview, location,
	developer_name, developer_info, amenities, payment_plan, meta_title, meta_description,
	featured_image, gallery, floor_plans, price_aed, area_sqm,
	latitude, longitude, map_embed, roi, property_type, delivery_date,
	is_featured, status, sort_order, created_at, created_by, last_updated_at, last_updated_by
`

func scanProject(row pgx.Row) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ProjectID,
		&p.Name,
		&p.Slug,
		&p.ShortDescription,
		&p.Description,
		&p.Overview,
		&p.Location,
		&p.DeveloperName,
		&p.DeveloperInfo,
		&p.Amenities,
		&p.PaymentPlan,
		&p.MetaTitle,
		&p.MetaDescription,
		&p.FeaturedImage,
		&p.Gallery,
		&p.FloorPlans,
		&p.PriceAED,
		&p.AreaSqm,
		&p.Latitude,
		&p.Longitude,
		&p.MapEmbed,
		&p.ROI,
		&p.PropertyType,
		&p.DeliveryDate,
		&p.IsFeatured,
		&p.Status,
		&p.SortOrder,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// FindProjectByID retrieves a project by its ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE project_id = $1 AND deleted_at IS NULL;`

	p, err := scanProject(r.pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	return &p, nil
}

// FindProjectBySlug retrieves a project whose slug in the given locale
// matches. The per-locale unique index guarantees at most one row.
func (r *PgxProjectRepository) FindProjectBySlug(ctx context.Context, locale, slug string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE slug->>$1 = $2 AND deleted_at IS NULL;`

	p, err := scanProject(r.pool.QueryRow(ctx, query, locale, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by slug %q (%s): %w", slug, locale, err)
	}
	return &p, nil
}

// ListProjects retrieves projects matching the filter plus the total match
// count. Results are ordered by sort order, then newest first.
func (r *PgxProjectRepository) ListProjects(ctx context.Context, filter domain.ProjectFilter, page portsrepo.ListParams) ([]domain.Project, int, error) {
	conditions := []string{"p.deleted_at IS NULL"}
	args := []any{}

	appendCond := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, cond+"$"+strconv.Itoa(len(args)))
	}
	if filter.Status != nil {
		appendCond("p.status = ", *filter.Status)
	}
	if filter.PropertyType != nil {
		appendCond("p.property_type = ", *filter.PropertyType)
	}
	if filter.IsFeatured != nil {
		appendCond("p.is_featured = ", *filter.IsFeatured)
	}

	from := `FROM projects p`
	if filter.AreaGuideID != "" {
		from += ` JOIN area_guide_projects agp ON agp.project_id = p.project_id`
		appendCond("agp.area_guide_id = ", filter.AreaGuideID)
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) ` + from + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	listQuery := `SELECT ` + qualifyColumns("p", projectColumns) + ` ` + from + where +
		` ORDER BY p.sort_order, p.created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, page.Limit, page.Offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Project, error) {
		return scanProject(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to collect projects: %w", err)
	}
	return projects, total, nil
}

// SaveProject persists a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31);`

	_, err := r.pool.Exec(ctx, query,
		project.ProjectID,
		project.Name,
		project.Slug,
		project.ShortDescription,
		project.Description,
		project.Overview,
		project.Location,
		project.DeveloperName,
		project.DeveloperInfo,
		project.Amenities,
		project.PaymentPlan,
		project.MetaTitle,
		project.MetaDescription,
		project.FeaturedImage,
		project.Gallery,
		project.FloorPlans,
		project.PriceAED,
		project.AreaSqm,
		project.Latitude,
		project.Longitude,
		project.MapEmbed,
		project.ROI,
		project.PropertyType,
		project.DeliveryDate,
		project.IsFeatured,
		project.Status,
		project.SortOrder,
		project.CreatedAt,
		project.CreatedBy,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", project.ProjectID, mapWriteError(err))
	}
	return nil
}

// UpdateProject updates an existing project by ID.
func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
		UPDATE projects SET
			name = $2, slug = $3, short_description = $4, description = $5,
			overview = $6, location = $7, developer_name = $8, developer_info = $9,
			amenities = $10, payment_plan = $11, meta_title = $12, meta_description = $13,
			featured_image = $14, gallery = $15, floor_plans = $16,
			price_aed = $17, area_sqm = $18, latitude = $19, longitude = $20,
			map_embed = $21, roi = $22, property_type = $23, delivery_date = $24,
			is_featured = $25, status = $26, sort_order = $27,
			last_updated_at = $28, last_updated_by = $29
		WHERE project_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query,
		project.ProjectID,
		project.Name,
		project.Slug,
		project.ShortDescription,
		project.Description,
		project.Overview,
		project.Location,
		project.DeveloperName,
		project.DeveloperInfo,
		project.Amenities,
		project.PaymentPlan,
		project.MetaTitle,
		project.MetaDescription,
		project.FeaturedImage,
		project.Gallery,
		project.FloorPlans,
		project.PriceAED,
		project.AreaSqm,
		project.Latitude,
		project.Longitude,
		project.MapEmbed,
		project.ROI,
		project.PropertyType,
		project.DeliveryDate,
		project.IsFeatured,
		project.Status,
		project.SortOrder,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", project.ProjectID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProject soft-deletes a project.
func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string, deletedBy string) error {
	query := `
		UPDATE projects SET
			deleted_at = $2,
			last_updated_at = $2,
			last_updated_by = $3
		WHERE project_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query, projectID, time.Now(), deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SlugExists reports whether a live project already holds the slug in the
// given locale, optionally ignoring one record.
func (r *PgxProjectRepository) SlugExists(ctx context.Context, locale, slug, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM projects
			WHERE slug->>$1 = $2
			  AND ($3::text = '' OR project_id <> $3::uuid)
			  AND deleted_at IS NULL
		);`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, locale, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check project slug %q (%s): %w", slug, locale, err)
	}
	return exists, nil
}
