package dto

import (
	"time"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// CreateServiceRequest defines the data needed to create a service offering.
type CreateServiceRequest struct {
	Title            LocalizedInput `json:"title" binding:"required"`
	ShortDescription LocalizedInput `json:"short_description"`
	Description      LocalizedInput `json:"description"`
	Icon             string         `json:"icon"`
	Image            string         `json:"image"`
	IsFeatured       bool           `json:"is_featured"`
	Status           string         `json:"status" binding:"omitempty,oneof=draft published"`
	SortOrder        int            `json:"sort_order"`
}

// UpdateServiceRequest carries a partial service offering update.
type UpdateServiceRequest struct {
	Title            LocalizedInput `json:"title"`
	ShortDescription LocalizedInput `json:"short_description"`
	Description      LocalizedInput `json:"description"`
	Icon             *string        `json:"icon"`
	Image            *string        `json:"image"`
	IsFeatured       *bool          `json:"is_featured"`
	Status           *string        `json:"status" binding:"omitempty,oneof=draft published"`
	SortOrder        *int           `json:"sort_order"`
}

// ServiceResponse is the public serialization of a service offering.
type ServiceResponse struct {
	ServiceID        string    `json:"service_id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
	Description      string    `json:"description"`
	Icon             string    `json:"icon"`
	Image            string    `json:"image"`
	IsFeatured       bool      `json:"is_featured"`
	Status           string    `json:"status"`
	SortOrder        int       `json:"sort_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToServiceResponse renders a service offering for one locale.
func ToServiceResponse(s *domain.Service, rc RenderContext) ServiceResponse {
	return ServiceResponse{
		ServiceID:        s.ServiceID,
		Title:            s.Title.Resolve(rc.Locale, rc.DefaultLocale),
		Slug:             s.Slug.Resolve(rc.Locale, rc.DefaultLocale),
		ShortDescription: s.ShortDescription.Resolve(rc.Locale, rc.DefaultLocale),
		Description:      s.Description.Resolve(rc.Locale, rc.DefaultLocale),
		Icon:             s.Icon,
		Image:            s.Image,
		IsFeatured:       s.IsFeatured,
		Status:           s.Status.String(),
		SortOrder:        s.SortOrder,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.LastUpdatedAt,
	}
}

// ToListServiceResponse renders a page of service offerings.
func ToListServiceResponse(services []domain.Service, rc RenderContext) []ServiceResponse {
	res := make([]ServiceResponse, len(services))
	for i, s := range services {
		res[i] = ToServiceResponse(&s, rc)
	}
	return res
}
