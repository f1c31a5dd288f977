package dto

import (
	"time"

	"github.com/oryxgate/realty_cms/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRateRequest defines the data needed to register a currency.
// ExchangeRate is "base-currency units per 1 unit of this currency".
type CreateCurrencyRateRequest struct {
	CurrencyCode   string          `json:"currency_code" binding:"required,uppercase,len=3"`
	CurrencyName   string          `json:"currency_name" binding:"required"`
	Symbol         string          `json:"symbol" binding:"required"`
	ExchangeRate   decimal.Decimal `json:"exchange_rate" binding:"required"`
	IsBaseCurrency bool            `json:"is_base_currency"`
	IsActive       *bool           `json:"is_active"`
}

// UpdateCurrencyRateRequest carries a partial currency rate update.
type UpdateCurrencyRateRequest struct {
	CurrencyName   *string          `json:"currency_name"`
	Symbol         *string          `json:"symbol"`
	ExchangeRate   *decimal.Decimal `json:"exchange_rate"`
	IsBaseCurrency *bool            `json:"is_base_currency"`
	IsActive       *bool            `json:"is_active"`
}

// CurrencyRateResponse defines the data returned for a currency rate.
type CurrencyRateResponse struct {
	CurrencyRateID string          `json:"currency_rate_id"`
	CurrencyCode   string          `json:"currency_code"`
	CurrencyName   string          `json:"currency_name"`
	Symbol         string          `json:"symbol"`
	ExchangeRate   decimal.Decimal `json:"exchange_rate"`
	IsBaseCurrency bool            `json:"is_base_currency"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	LastUpdatedAt  time.Time       `json:"last_updated_at"`
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to its response DTO.
func ToCurrencyRateResponse(rate *domain.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		CurrencyRateID: rate.CurrencyRateID,
		CurrencyCode:   rate.CurrencyCode,
		CurrencyName:   rate.CurrencyName,
		Symbol:         rate.Symbol,
		ExchangeRate:   rate.ExchangeRate,
		IsBaseCurrency: rate.IsBaseCurrency,
		IsActive:       rate.IsActive,
		CreatedAt:      rate.CreatedAt,
		LastUpdatedAt:  rate.LastUpdatedAt,
	}
}

// ToListCurrencyRateResponse converts a slice of rates to response DTOs.
func ToListCurrencyRateResponse(rates []domain.CurrencyRate) []CurrencyRateResponse {
	res := make([]CurrencyRateResponse, len(rates))
	for i, rate := range rates {
		res[i] = ToCurrencyRateResponse(&rate)
	}
	return res
}
