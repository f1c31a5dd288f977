package domain

import "github.com/shopspring/decimal"

// CurrencyRate is an admin-managed exchange rate relative to the base
// currency. ExchangeRate is the number of units of this currency that equal
// 1 unit of the base currency, so a display conversion from a stored base
// amount is amount * ExchangeRate.
//
// Invariant: exactly one row has IsBaseCurrency=true, and that row's rate
// is 1.0. Deactivated rows are excluded from conversion lookups.
type CurrencyRate struct {
	CurrencyRateID string          `json:"currencyRateID"`
	CurrencyCode   string          `json:"currencyCode"` // 3-letter uppercase, unique
	CurrencyName   string          `json:"currencyName"`
	Symbol         string          `json:"symbol"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	IsBaseCurrency bool            `json:"isBaseCurrency"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
