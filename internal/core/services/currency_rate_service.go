package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyRateService provides the admin management surface for the rate
// table. It owns the base-currency invariant: exactly one row is flagged as
// base and that row's exchange rate is 1.0.
type CurrencyRateService struct {
	rateRepo portsrepo.CurrencyRateRepositoryFacade
}

// NewCurrencyRateService creates a new CurrencyRateService.
func NewCurrencyRateService(rateRepo portsrepo.CurrencyRateRepositoryFacade) *CurrencyRateService {
	return &CurrencyRateService{rateRepo: rateRepo}
}

// GetCurrencyRateByCode retrieves an active rate by code.
func (s *CurrencyRateService) GetCurrencyRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	rate, err := s.rateRepo.FindActiveByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency rate by code: %w", err)
	}
	return rate, nil
}

// ListCurrencyRates retrieves every rate for the admin view.
func (s *CurrencyRateService) ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	rates, err := s.rateRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency rates: %w", err)
	}
	if rates == nil {
		return []domain.CurrencyRate{}, nil
	}
	return rates, nil
}

// CreateCurrencyRate registers a new currency rate.
func (s *CurrencyRateService) CreateCurrencyRate(ctx context.Context, req dto.CreateCurrencyRateRequest, creatorUserID string) (*domain.CurrencyRate, error) {
	if req.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if err := s.checkBaseInvariant(ctx, req.IsBaseCurrency, req.ExchangeRate, ""); err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now()
	rate := domain.CurrencyRate{
		CurrencyRateID: uuid.NewString(),
		CurrencyCode:   strings.ToUpper(req.CurrencyCode),
		CurrencyName:   req.CurrencyName,
		Symbol:         req.Symbol,
		ExchangeRate:   req.ExchangeRate,
		IsBaseCurrency: req.IsBaseCurrency,
		IsActive:       active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveCurrencyRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to create currency rate: %w", err)
	}
	return &rate, nil
}

// UpdateCurrencyRate applies a partial update to an existing rate.
func (s *CurrencyRateService) UpdateCurrencyRate(ctx context.Context, currencyRateID string, req dto.UpdateCurrencyRateRequest, updaterUserID string) (*domain.CurrencyRate, error) {
	existing, err := s.findByID(ctx, currencyRateID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.CurrencyName != nil {
		updated.CurrencyName = *req.CurrencyName
	}
	if req.Symbol != nil {
		updated.Symbol = *req.Symbol
	}
	if req.ExchangeRate != nil {
		if req.ExchangeRate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
		updated.ExchangeRate = *req.ExchangeRate
	}
	if req.IsBaseCurrency != nil {
		updated.IsBaseCurrency = *req.IsBaseCurrency
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	if err := s.checkBaseInvariant(ctx, updated.IsBaseCurrency, updated.ExchangeRate, updated.CurrencyRateID); err != nil {
		return nil, err
	}

	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.rateRepo.UpdateCurrencyRate(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update currency rate: %w", err)
	}
	return &updated, nil
}

// SetCurrencyRateActive flips the active flag. Conversion lookups stop
// seeing a rate the moment it is deactivated; they fail open to base
// amounts rather than erroring.
func (s *CurrencyRateService) SetCurrencyRateActive(ctx context.Context, currencyRateID string, active bool, updaterUserID string) error {
	existing, err := s.findByID(ctx, currencyRateID)
	if err != nil {
		return err
	}
	if !active && existing.IsBaseCurrency {
		return fmt.Errorf("%w: the base currency cannot be deactivated", apperrors.ErrValidation)
	}
	if err := s.rateRepo.SetActive(ctx, currencyRateID, active, updaterUserID); err != nil {
		return fmt.Errorf("failed to set currency rate active flag: %w", err)
	}
	return nil
}

func (s *CurrencyRateService) findByID(ctx context.Context, currencyRateID string) (*domain.CurrencyRate, error) {
	rates, err := s.rateRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency rates: %w", err)
	}
	for i := range rates {
		if rates[i].CurrencyRateID == currencyRateID {
			return &rates[i], nil
		}
	}
	return nil, fmt.Errorf("currency rate %s: %w", currencyRateID, apperrors.ErrNotFound)
}

// checkBaseInvariant rejects writes that would leave zero or two base
// currencies, or a base currency with a rate other than 1.0. excludeID
// exempts the row being updated from the "another base exists" check.
func (s *CurrencyRateService) checkBaseInvariant(ctx context.Context, isBase bool, rate decimal.Decimal, excludeID string) error {
	if !isBase {
		return nil
	}
	if !rate.Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: the base currency must have an exchange rate of 1.0", apperrors.ErrValidation)
	}
	current, err := s.rateRepo.FindBaseCurrency(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check base currency: %w", err)
	}
	if current.CurrencyRateID != excludeID {
		return fmt.Errorf("%w: %s is already the base currency", apperrors.ErrValidation, current.CurrencyCode)
	}
	return nil
}
