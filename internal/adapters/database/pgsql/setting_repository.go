package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
)

type PgxSettingRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSettingRepository creates a new repository for site settings.
func NewPgxSettingRepository(pool *pgxpool.Pool) portsrepo.SettingRepositoryFacade {
	return &PgxSettingRepository{pool: pool}
}

const settingColumns = `
	setting_id, phone_numbers, emails, address, company_name, footer_text,
	map_embed_url, default_currency, default_language, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

// FindActiveSetting retrieves the single active settings row.
func (r *PgxSettingRepository) FindActiveSetting(ctx context.Context) (*domain.Setting, error) {
	query := `SELECT ` + settingColumns + `
		FROM settings
		WHERE is_active = TRUE
		ORDER BY last_updated_at DESC
		LIMIT 1;`

	var s domain.Setting
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.SettingID,
		&s.PhoneNumbers,
		&s.Emails,
		&s.Address,
		&s.CompanyName,
		&s.FooterText,
		&s.MapEmbedURL,
		&s.DefaultCurrency,
		&s.DefaultLanguage,
		&s.IsActive,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active settings: %w", err)
	}
	return &s, nil
}

// SaveSetting persists a new settings row.
func (r *PgxSettingRepository) SaveSetting(ctx context.Context, setting domain.Setting) error {
	query := `
		INSERT INTO settings (` + settingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	_, err := r.pool.Exec(ctx, query,
		setting.SettingID,
		setting.PhoneNumbers,
		setting.Emails,
		setting.Address,
		setting.CompanyName,
		setting.FooterText,
		setting.MapEmbedURL,
		setting.DefaultCurrency,
		setting.DefaultLanguage,
		setting.IsActive,
		setting.CreatedAt,
		setting.CreatedBy,
		setting.LastUpdatedAt,
		setting.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings %s: %w", setting.SettingID, mapWriteError(err))
	}
	return nil
}

// UpdateSetting updates an existing settings row by ID.
func (r *PgxSettingRepository) UpdateSetting(ctx context.Context, setting domain.Setting) error {
	query := `
		UPDATE settings SET
			phone_numbers = $2, emails = $3, address = $4, company_name = $5,
			footer_text = $6, map_embed_url = $7, default_currency = $8,
			default_language = $9, is_active = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE setting_id = $1;`

	tag, err := r.pool.Exec(ctx, query,
		setting.SettingID,
		setting.PhoneNumbers,
		setting.Emails,
		setting.Address,
		setting.CompanyName,
		setting.FooterText,
		setting.MapEmbedURL,
		setting.DefaultCurrency,
		setting.DefaultLanguage,
		setting.IsActive,
		setting.LastUpdatedAt,
		setting.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings %s: %w", setting.SettingID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
