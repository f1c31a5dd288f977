package dto

import (
	"time"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// CreateAreaGuideRequest defines the data needed to create an area guide.
type CreateAreaGuideRequest struct {
	Name        LocalizedInput `json:"name" binding:"required"`
	Description LocalizedInput `json:"description"`
	Image       string         `json:"image"`
	IsPopular   bool           `json:"is_popular"`
	Status      string         `json:"status" binding:"omitempty,oneof=draft published"`
	SortOrder   int            `json:"sort_order"`
}

// UpdateAreaGuideRequest carries a partial area guide update.
type UpdateAreaGuideRequest struct {
	Name        LocalizedInput `json:"name"`
	Description LocalizedInput `json:"description"`
	Image       *string        `json:"image"`
	IsPopular   *bool          `json:"is_popular"`
	Status      *string        `json:"status" binding:"omitempty,oneof=draft published"`
	SortOrder   *int           `json:"sort_order"`
}

// SyncProjectsRequest replaces the projects attached to an area guide.
type SyncProjectsRequest struct {
	ProjectIDs []string `json:"project_ids" binding:"required"`
}

// AreaGuideResponse is the public serialization of an area guide.
type AreaGuideResponse struct {
	AreaGuideID string    `json:"area_guide_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	IsPopular   bool      `json:"is_popular"`
	Status      string    `json:"status"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToAreaGuideResponse renders an area guide for one locale.
func ToAreaGuideResponse(g *domain.AreaGuide, rc RenderContext) AreaGuideResponse {
	return AreaGuideResponse{
		AreaGuideID: g.AreaGuideID,
		Name:        g.Name.Resolve(rc.Locale, rc.DefaultLocale),
		Slug:        g.Slug.Resolve(rc.Locale, rc.DefaultLocale),
		Description: g.Description.Resolve(rc.Locale, rc.DefaultLocale),
		Image:       g.Image,
		IsPopular:   g.IsPopular,
		Status:      g.Status.String(),
		SortOrder:   g.SortOrder,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.LastUpdatedAt,
	}
}

// ToListAreaGuideResponse renders a page of area guides.
func ToListAreaGuideResponse(guides []domain.AreaGuide, rc RenderContext) []AreaGuideResponse {
	res := make([]AreaGuideResponse, len(guides))
	for i, g := range guides {
		res[i] = ToAreaGuideResponse(&g, rc)
	}
	return res
}
