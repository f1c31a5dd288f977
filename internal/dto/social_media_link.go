package dto

import (
	"time"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// CreateSocialMediaLinkRequest defines the data needed to create a social link.
type CreateSocialMediaLinkRequest struct {
	Platform  string         `json:"platform" binding:"required,oneof=facebook instagram linkedin twitter youtube tiktok"`
	Label     LocalizedInput `json:"label"`
	URL       string         `json:"url" binding:"required,url"`
	Icon      string         `json:"icon"`
	IsActive  *bool          `json:"is_active"`
	SortOrder int            `json:"sort_order"`
}

// UpdateSocialMediaLinkRequest carries a partial social link update.
type UpdateSocialMediaLinkRequest struct {
	Platform  *string        `json:"platform" binding:"omitempty,oneof=facebook instagram linkedin twitter youtube tiktok"`
	Label     LocalizedInput `json:"label"`
	URL       *string        `json:"url" binding:"omitempty,url"`
	Icon      *string        `json:"icon"`
	IsActive  *bool          `json:"is_active"`
	SortOrder *int           `json:"sort_order"`
}

// SocialMediaLinkOrder pairs a link with its new display position.
type SocialMediaLinkOrder struct {
	SocialMediaLinkID string `json:"social_media_link_id" binding:"required"`
	SortOrder         int    `json:"sort_order" binding:"min=0"`
}

// ReorderSocialMediaLinksRequest sets the display order of several links in
// one call.
type ReorderSocialMediaLinksRequest struct {
	Links []SocialMediaLinkOrder `json:"links" binding:"required,min=1,dive"`
}

// SocialMediaLinkResponse is the public serialization of a social link.
type SocialMediaLinkResponse struct {
	SocialMediaLinkID string    `json:"social_media_link_id"`
	Platform          string    `json:"platform"`
	Label             string    `json:"label"`
	URL               string    `json:"url"`
	Icon              string    `json:"icon"`
	IsActive          bool      `json:"is_active"`
	SortOrder         int       `json:"sort_order"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToSocialMediaLinkResponse renders a social link for one locale.
func ToSocialMediaLinkResponse(l *domain.SocialMediaLink, rc RenderContext) SocialMediaLinkResponse {
	return SocialMediaLinkResponse{
		SocialMediaLinkID: l.SocialMediaLinkID,
		Platform:          string(l.Platform),
		Label:             l.Label.Resolve(rc.Locale, rc.DefaultLocale),
		URL:               l.URL,
		Icon:              l.Icon,
		IsActive:          l.IsActive,
		SortOrder:         l.SortOrder,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.LastUpdatedAt,
	}
}

// ToListSocialMediaLinkResponse renders a list of social links.
func ToListSocialMediaLinkResponse(links []domain.SocialMediaLink, rc RenderContext) []SocialMediaLinkResponse {
	res := make([]SocialMediaLinkResponse, len(links))
	for i, l := range links {
		res[i] = ToSocialMediaLinkResponse(&l, rc)
	}
	return res
}
