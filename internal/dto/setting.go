package dto

import (
	"time"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// UpsertSettingRequest creates or replaces the site settings row.
type UpsertSettingRequest struct {
	PhoneNumbers []string       `json:"phone_numbers"`
	Emails       []string       `json:"emails" binding:"omitempty,dive,email"`
	Address      LocalizedInput `json:"address"`
	CompanyName  LocalizedInput `json:"company_name"`
	FooterText   LocalizedInput `json:"footer_text"`

	MapEmbedURL     string `json:"map_embed_url"`
	DefaultCurrency string `json:"default_currency" binding:"omitempty,uppercase,len=3"`
	DefaultLanguage string `json:"default_language"`
}

// SettingResponse is the public serialization of site settings.
type SettingResponse struct {
	SettingID    string   `json:"setting_id"`
	PhoneNumbers []string `json:"phone_numbers"`
	Emails       []string `json:"emails"`
	Address      string   `json:"address"`
	CompanyName  string   `json:"company_name"`
	FooterText   string   `json:"footer_text"`

	MapEmbedURL     string    `json:"map_embed_url"`
	DefaultCurrency string    `json:"default_currency"`
	DefaultLanguage string    `json:"default_language"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToSettingResponse renders the settings row for one locale.
func ToSettingResponse(s *domain.Setting, rc RenderContext) SettingResponse {
	return SettingResponse{
		SettingID:       s.SettingID,
		PhoneNumbers:    s.PhoneNumbers,
		Emails:          s.Emails,
		Address:         s.Address.Resolve(rc.Locale, rc.DefaultLocale),
		CompanyName:     s.CompanyName.Resolve(rc.Locale, rc.DefaultLocale),
		FooterText:      s.FooterText.Resolve(rc.Locale, rc.DefaultLocale),
		MapEmbedURL:     s.MapEmbedURL,
		DefaultCurrency: s.DefaultCurrency,
		DefaultLanguage: s.DefaultLanguage,
		UpdatedAt:       s.LastUpdatedAt,
	}
}
