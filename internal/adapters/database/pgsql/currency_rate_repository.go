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

type PgxCurrencyRateRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCurrencyRateRepository creates a new repository for currency rate data.
func NewPgxCurrencyRateRepository(pool *pgxpool.Pool) portsrepo.CurrencyRateRepositoryFacade {
	return &PgxCurrencyRateRepository{pool: pool}
}

const currencyRateColumns = `
	currency_rate_id, currency_code, currency_name, symbol, exchange_rate,
	is_base_currency, is_active, created_at, created_by, last_updated_at, last_updated_by
`

func scanCurrencyRate(row pgx.Row) (domain.CurrencyRate, error) {
	var rate domain.CurrencyRate
	err := row.Scan(
		&rate.CurrencyRateID,
		&rate.CurrencyCode,
		&rate.CurrencyName,
		&rate.Symbol,
		&rate.ExchangeRate,
		&rate.IsBaseCurrency,
		&rate.IsActive,
		&rate.CreatedAt,
		&rate.CreatedBy,
		&rate.LastUpdatedAt,
		&rate.LastUpdatedBy,
	)
	return rate, err
}

// FindActiveByCode retrieves an active rate by its 3-letter code.
func (r *PgxCurrencyRateRepository) FindActiveByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	query := `SELECT ` + currencyRateColumns + `
		FROM currency_rates
		WHERE currency_code = $1 AND is_active = TRUE;`

	rate, err := scanCurrencyRate(r.pool.QueryRow(ctx, query, currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency rate by code %s: %w", currencyCode, err)
	}
	return &rate, nil
}

// FindBaseCurrency retrieves the single base currency row.
func (r *PgxCurrencyRateRepository) FindBaseCurrency(ctx context.Context) (*domain.CurrencyRate, error) {
	query := `SELECT ` + currencyRateColumns + `
		FROM currency_rates
		WHERE is_base_currency = TRUE;`

	rate, err := scanCurrencyRate(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find base currency: %w", err)
	}
	return &rate, nil
}

// ListActive retrieves active rates ordered by code.
func (r *PgxCurrencyRateRepository) ListActive(ctx context.Context) ([]domain.CurrencyRate, error) {
	query := `SELECT ` + currencyRateColumns + `
		FROM currency_rates
		WHERE is_active = TRUE
		ORDER BY currency_code;`
	return r.list(ctx, query)
}

// ListAll retrieves every rate, active or not.
func (r *PgxCurrencyRateRepository) ListAll(ctx context.Context) ([]domain.CurrencyRate, error) {
	query := `SELECT ` + currencyRateColumns + `
		FROM currency_rates
		ORDER BY currency_code;`
	return r.list(ctx, query)
}

func (r *PgxCurrencyRateRepository) list(ctx context.Context, query string) ([]domain.CurrencyRate, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency rates: %w", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CurrencyRate, error) {
		return scanCurrencyRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect currency rates: %w", err)
	}
	return rates, nil
}

// SaveCurrencyRate inserts a new rate row.
func (r *PgxCurrencyRateRepository) SaveCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error {
	query := `
		INSERT INTO currency_rates (` + currencyRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	_, err := r.pool.Exec(ctx, query,
		rate.CurrencyRateID,
		rate.CurrencyCode,
		rate.CurrencyName,
		rate.Symbol,
		rate.ExchangeRate,
		rate.IsBaseCurrency,
		rate.IsActive,
		rate.CreatedAt,
		rate.CreatedBy,
		rate.LastUpdatedAt,
		rate.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save currency rate %s: %w", rate.CurrencyCode, mapWriteError(err))
	}
	return nil
}

// UpdateCurrencyRate updates an existing rate row by ID.
func (r *PgxCurrencyRateRepository) UpdateCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error {
	query := `
		UPDATE currency_rates SET
			currency_name = $2,
			symbol = $3,
			exchange_rate = $4,
			is_base_currency = $5,
			is_active = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE currency_rate_id = $1;`

	tag, err := r.pool.Exec(ctx, query,
		rate.CurrencyRateID,
		rate.CurrencyName,
		rate.Symbol,
		rate.ExchangeRate,
		rate.IsBaseCurrency,
		rate.IsActive,
		rate.LastUpdatedAt,
		rate.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update currency rate %s: %w", rate.CurrencyRateID, mapWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetActive flips the active flag for a rate.
func (r *PgxCurrencyRateRepository) SetActive(ctx context.Context, currencyRateID string, active bool, updatedBy string) error {
	query := `
		UPDATE currency_rates SET
			is_active = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE currency_rate_id = $1;`

	tag, err := r.pool.Exec(ctx, query, currencyRateID, active, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set currency rate active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
