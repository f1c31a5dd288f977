package services

import (
	"context"

	"github.com/oryxgate/realty_cms/internal/core/domain"
	"github.com/oryxgate/realty_cms/internal/dto"
)

// CurrencyRateReaderSvc defines read operations on the admin rate table.
type CurrencyRateReaderSvc interface {
	// GetCurrencyRateByCode retrieves an active rate by its code.
	GetCurrencyRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error)

	// ListCurrencyRates retrieves all rates, active or not (admin view).
	ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error)
}

// CurrencyRateWriterSvc defines admin write operations on the rate table.
type CurrencyRateWriterSvc interface {
	// CreateCurrencyRate registers a new currency. Enforces the single
	// base-currency invariant (base rate must be 1.0).
	CreateCurrencyRate(ctx context.Context, req dto.CreateCurrencyRateRequest, creatorUserID string) (*domain.CurrencyRate, error)

	// UpdateCurrencyRate applies a partial update to an existing rate.
	UpdateCurrencyRate(ctx context.Context, currencyRateID string, req dto.UpdateCurrencyRateRequest, updaterUserID string) (*domain.CurrencyRate, error)

	// SetCurrencyRateActive activates or deactivates a rate. Deactivated
	// rates disappear from conversion lookups.
	SetCurrencyRateActive(ctx context.Context, currencyRateID string, active bool, updaterUserID string) error
}

// CurrencyRateSvcFacade combines all currency-rate service interfaces.
type CurrencyRateSvcFacade interface {
	CurrencyRateReaderSvc
	CurrencyRateWriterSvc
}
