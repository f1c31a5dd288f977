package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
)

type PgxSocialMediaLinkRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSocialMediaLinkRepository creates a new repository for social link data.
func NewPgxSocialMediaLinkRepository(pool *pgxpool.Pool) portsrepo.SocialMediaLinkRepositoryFacade {
	return &PgxSocialMediaLinkRepository{pool: pool}
}

const socialMediaLinkColumns = `
	social_media_link_id, platform, label, url, icon, is_active, sort_order,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanSocialMediaLink(row pgx.Row) (domain.SocialMediaLink, error) {
	var l domain.SocialMediaLink
	err := row.Scan(
		&l.SocialMediaLinkID,
		&l.Platform,
		&l.Label,
		&l.URL,
		&l.Icon,
		&l.IsActive,
		&l.SortOrder,
		&l.CreatedAt,
		&l.CreatedBy,
		&l.LastUpdatedAt,
		&l.LastUpdatedBy,
	)
	return l, err
}

// FindSocialMediaLinkByID retrieves a social link by ID.
func (r *PgxSocialMediaLinkRepository) FindSocialMediaLinkByID(ctx context.Context, linkID string) (*domain.SocialMediaLink, error) {
	query := `SELECT ` + socialMediaLinkColumns + `
		FROM social_media_links
		WHERE social_media_link_id = $1 AND deleted_at IS NULL;`

	l, err := scanSocialMediaLink(r.pool.QueryRow(ctx, query, linkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find social media link %s: %w", linkID, err)
	}
	return &l, nil
}

// ListSocialMediaLinks retrieves social links in sort order, optionally only
// active ones.
func (r *PgxSocialMediaLinkRepository) ListSocialMediaLinks(ctx context.Context, activeOnly bool) ([]domain.SocialMediaLink, error) {
	query := `SELECT ` + socialMediaLinkColumns + `
		FROM social_media_links
		WHERE deleted_at IS NULL AND ($1 = FALSE OR is_active = TRUE)
		ORDER BY sort_order, created_at;`

	rows, err := r.pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query social media links: %w", err)
	}
	defer rows.Close()

	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SocialMediaLink, error) {
		return scanSocialMediaLink(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect social media links: %w", err)
	}
	return links, nil
}

// SaveSocialMediaLink persists a new social link.
func (r *PgxSocialMediaLinkRepository) SaveSocialMediaLink(ctx context.Context, link domain.SocialMediaLink) error {
	query := `
		INSERT INTO social_media_links (` + socialMediaLinkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	_, err := r.pool.Exec(ctx, query,
		link.SocialMediaLinkID,
		link.Platform,
		link.Label,
		link.URL,
		link.Icon,
		link.IsActive,
		link.SortOrder,
		link.CreatedAt,
		link.CreatedBy,
		link.LastUpdatedAt,
		link.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save social media link %s: %w", link.SocialMediaLinkID, mapWriteError(err))
	}
	return nil
}

// UpdateSocialMediaLink updates an existing social link by ID.
func (r *PgxSocialMediaLinkRepository) UpdateSocialMediaLink(ctx context.Context, link domain.SocialMediaLink) error {
	query := `
		UPDATE social_media_links SET
			platform = $2, label = $3, url = $4, icon = $5,
			is_active = $6, sort_order = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE social_media_link_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query,
		link.SocialMediaLinkID,
		link.Platform,
		link.Label,
		link.URL,
		link.Icon,
		link.IsActive,
		link.SortOrder,
		link.LastUpdatedAt,
		link.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update social media link %s: %w", link.SocialMediaLinkID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateSocialMediaLinkSortOrder moves one link to a new display position.
func (r *PgxSocialMediaLinkRepository) UpdateSocialMediaLinkSortOrder(ctx context.Context, linkID string, sortOrder int, updatedBy string) error {
	query := `
		UPDATE social_media_links SET
			sort_order = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE social_media_link_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query, linkID, sortOrder, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to reorder social media link %s: %w", linkID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSocialMediaLink soft-deletes a social link.
func (r *PgxSocialMediaLinkRepository) DeleteSocialMediaLink(ctx context.Context, linkID string, deletedBy string) error {
	query := `
		UPDATE social_media_links SET
			deleted_at = $2,
			last_updated_at = $2,
			last_updated_by = $3
		WHERE social_media_link_id = $1 AND deleted_at IS NULL;`

	tag, err := r.pool.Exec(ctx, query, linkID, time.Now(), deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete social media link %s: %w", linkID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
