package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	"github.com/oryxgate/realty_cms/internal/utils"
	"github.com/shopspring/decimal"
)

// CurrencyConversionService converts monetary amounts between the base
// currency and any active target currency. All stored amounts are in the
// base currency; conversion happens at read time from the current rate set,
// so a rate change by an admin is visible on the next request.
//
// Lookups that miss (unknown or deactivated codes) fail open: the unchanged
// input amount is returned rather than an error. This keeps price display
// non-blocking even with incomplete rate data; each fallback is logged so
// data-entry gaps remain observable.
type CurrencyConversionService struct {
	rateRepo portsrepo.CurrencyRateReader
	fallback string // base currency code used when no row is flagged as base
	logger   *slog.Logger
}

// NewCurrencyConversionService creates a new CurrencyConversionService.
// fallbackBaseCode is returned by GetBaseCurrencyCode when the rate table
// has no base-currency row.
func NewCurrencyConversionService(rateRepo portsrepo.CurrencyRateReader, fallbackBaseCode string, logger *slog.Logger) *CurrencyConversionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CurrencyConversionService{
		rateRepo: rateRepo,
		fallback: strings.ToUpper(fallbackBaseCode),
		logger:   logger,
	}
}

// ConvertFromBase converts an amount stored in the base currency into the
// target currency: round(baseAmount * rate, 2). Rounding is applied once,
// at the final step. If the target currency has no active rate the base
// amount is returned unchanged.
func (s *CurrencyConversionService) ConvertFromBase(ctx context.Context, baseAmount decimal.Decimal, targetCurrency string) decimal.Decimal {
	rate := s.lookupRate(ctx, targetCurrency)
	if rate == nil {
		return baseAmount
	}
	return baseAmount.Mul(*rate).Round(2)
}

// ConvertToBase converts an amount in the source currency back into the
// base currency: round(amount / rate, 2). A missing or zero rate returns
// the amount unchanged.
func (s *CurrencyConversionService) ConvertToBase(ctx context.Context, amount decimal.Decimal, sourceCurrency string) decimal.Decimal {
	rate := s.lookupRate(ctx, sourceCurrency)
	if rate == nil || rate.IsZero() {
		return amount
	}
	return amount.Div(*rate).Round(2)
}

// GetExchangeRate returns the active exchange rate for a code, or nil when
// no active rate matches. Codes match case-insensitively.
func (s *CurrencyConversionService) GetExchangeRate(ctx context.Context, currencyCode string) (*decimal.Decimal, error) {
	rate, err := s.rateRepo.FindActiveByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exchange rate for %s: %w", currencyCode, err)
	}
	r := rate.ExchangeRate
	return &r, nil
}

// GetBaseCurrencyCode returns the code of the base-currency row. It never
// fails: if the table has no base row (or the lookup errors) the configured
// fallback code is returned so price display keeps working.
func (s *CurrencyConversionService) GetBaseCurrencyCode(ctx context.Context) string {
	base, err := s.rateRepo.FindBaseCurrency(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("base currency lookup failed, using fallback",
				slog.String("fallback", s.fallback), slog.String("error", err.Error()))
		}
		return s.fallback
	}
	return base.CurrencyCode
}

// ListActiveCurrencies returns every active currency rate.
func (s *CurrencyConversionService) ListActiveCurrencies(ctx context.Context) ([]domain.CurrencyRate, error) {
	rates, err := s.rateRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active currencies: %w", err)
	}
	return rates, nil
}

// FormatPrice renders an already-converted amount with the currency symbol
// and thousands separators, e.g. "$ 272,300.00". Unknown currencies fall
// back to the plain formatted number.
func (s *CurrencyConversionService) FormatPrice(ctx context.Context, amount decimal.Decimal, currencyCode string) string {
	formatted := utils.FormatAmount(amount)

	currency, err := s.rateRepo.FindActiveByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		return formatted
	}
	return currency.Symbol + " " + formatted
}

// lookupRate fetches the active rate for a code, returning nil on any miss.
// Infrastructure errors are logged and treated as a miss: display conversion
// must not take an entity page down with it.
func (s *CurrencyConversionService) lookupRate(ctx context.Context, currencyCode string) *decimal.Decimal {
	code := strings.ToUpper(currencyCode)
	rate, err := s.rateRepo.FindActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("currency conversion fallback: no active rate",
				slog.String("currency_code", code))
		} else {
			s.logger.Error("currency conversion fallback: rate lookup failed",
				slog.String("currency_code", code), slog.String("error", err.Error()))
		}
		return nil
	}
	r := rate.ExchangeRate
	return &r
}
