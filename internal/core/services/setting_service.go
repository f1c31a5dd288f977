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
)

// SettingService manages the single active site settings row.
type SettingService struct {
	settingRepo portsrepo.SettingRepositoryFacade
	locales     []string
}

// NewSettingService creates a new SettingService.
func NewSettingService(settingRepo portsrepo.SettingRepositoryFacade, locales []string) *SettingService {
	return &SettingService{settingRepo: settingRepo, locales: locales}
}

// GetSetting retrieves the active settings row.
func (s *SettingService) GetSetting(ctx context.Context) (*domain.Setting, error) {
	setting, err := s.settingRepo.FindActiveSetting(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return setting, nil
}

// UpsertSetting creates the settings row if none exists, otherwise updates
// the active one in place.
func (s *SettingService) UpsertSetting(ctx context.Context, req dto.UpsertSettingRequest, updaterUserID string) (*domain.Setting, error) {
	now := time.Now()

	existing, err := s.settingRepo.FindActiveSetting(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		setting := domain.Setting{
			SettingID:       uuid.NewString(),
			PhoneNumbers:    req.PhoneNumbers,
			Emails:          req.Emails,
			Address:         req.Address.Localized(s.locales),
			CompanyName:     req.CompanyName.Localized(s.locales),
			FooterText:      req.FooterText.Localized(s.locales),
			MapEmbedURL:     req.MapEmbedURL,
			DefaultCurrency: strings.ToUpper(req.DefaultCurrency),
			DefaultLanguage: req.DefaultLanguage,
			IsActive:        true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     updaterUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: updaterUserID,
			},
		}
		if err := s.settingRepo.SaveSetting(ctx, setting); err != nil {
			return nil, fmt.Errorf("failed to create settings: %w", err)
		}
		return &setting, nil
	}

	updated := *existing
	if req.PhoneNumbers != nil {
		updated.PhoneNumbers = req.PhoneNumbers
	}
	if req.Emails != nil {
		updated.Emails = req.Emails
	}
	applyLocalized(&updated.Address, req.Address, s.locales)
	applyLocalized(&updated.CompanyName, req.CompanyName, s.locales)
	applyLocalized(&updated.FooterText, req.FooterText, s.locales)
	if req.MapEmbedURL != "" {
		updated.MapEmbedURL = req.MapEmbedURL
	}
	if req.DefaultCurrency != "" {
		updated.DefaultCurrency = strings.ToUpper(req.DefaultCurrency)
	}
	if req.DefaultLanguage != "" {
		updated.DefaultLanguage = req.DefaultLanguage
	}
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = updaterUserID

	if err := s.settingRepo.UpdateSetting(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return &updated, nil
}
