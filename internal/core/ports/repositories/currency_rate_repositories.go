package repositories

import (
	"context"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// CurrencyRateReader defines read operations for currency rate data.
type CurrencyRateReader interface {
	// FindActiveByCode retrieves an active rate by its 3-letter code.
	// Deactivated rates are reported as not found.
	FindActiveByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error)

	// FindBaseCurrency retrieves the row flagged as the base currency.
	FindBaseCurrency(ctx context.Context) (*domain.CurrencyRate, error)

	// ListActive retrieves all active rates ordered by code.
	ListActive(ctx context.Context) ([]domain.CurrencyRate, error)

	// ListAll retrieves every rate regardless of active flag (admin view).
	ListAll(ctx context.Context) ([]domain.CurrencyRate, error)
}

// CurrencyRateWriter defines write operations for currency rate data.
type CurrencyRateWriter interface {
	// SaveCurrencyRate persists a new rate.
	SaveCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error

	// UpdateCurrencyRate updates an existing rate by ID.
	UpdateCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error

	// SetActive flips the active flag on a rate.
	SetActive(ctx context.Context, currencyRateID string, active bool, updatedBy string) error
}

// CurrencyRateRepositoryFacade combines all currency-rate repository interfaces.
type CurrencyRateRepositoryFacade interface {
	CurrencyRateReader
	CurrencyRateWriter
}
