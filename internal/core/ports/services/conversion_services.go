package services

import (
	"context"

	"github.com/oryxgate/realty_cms/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyConversionSvc converts stored base-currency amounts for display.
// Missing or inactive currencies fail open: conversions return the input
// unchanged instead of erroring.
type CurrencyConversionSvc interface {
	ConvertFromBase(ctx context.Context, baseAmount decimal.Decimal, targetCurrency string) decimal.Decimal
	ConvertToBase(ctx context.Context, amount decimal.Decimal, sourceCurrency string) decimal.Decimal
	GetExchangeRate(ctx context.Context, currencyCode string) (*decimal.Decimal, error)
	GetBaseCurrencyCode(ctx context.Context) string
	FormatPrice(ctx context.Context, amount decimal.Decimal, currencyCode string) string
	ListActiveCurrencies(ctx context.Context) ([]domain.CurrencyRate, error)
}

// AreaUnitConversionSvc converts stored sqm areas for display.
type AreaUnitConversionSvc interface {
	ConvertFromBase(areaSqm decimal.Decimal, targetUnit string) decimal.Decimal
	ConvertToBase(area decimal.Decimal, sourceUnit string) decimal.Decimal
	IsValidUnit(unit string) bool
	FormatArea(areaSqm decimal.Decimal, unit string) string
	SupportedUnits() map[domain.AreaUnit]string
}
