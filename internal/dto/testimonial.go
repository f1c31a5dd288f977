package dto

import (
	"time"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// CreateTestimonialRequest defines the data needed to create a testimonial.
type CreateTestimonialRequest struct {
	ClientName  LocalizedInput `json:"client_name" binding:"required"`
	ClientTitle LocalizedInput `json:"client_title"`
	Content     LocalizedInput `json:"content" binding:"required"`
	Rating      int            `json:"rating" binding:"required,min=1,max=5"`
	ClientImage string         `json:"client_image"`
	VideoURL    string         `json:"video_url" binding:"omitempty,url"`
	IsFeatured  bool           `json:"is_featured"`
	Status      string         `json:"status" binding:"omitempty,oneof=draft published"`
	SortOrder   int            `json:"sort_order"`
}

// UpdateTestimonialRequest carries a partial testimonial update.
type UpdateTestimonialRequest struct {
	ClientName  LocalizedInput `json:"client_name"`
	ClientTitle LocalizedInput `json:"client_title"`
	Content     LocalizedInput `json:"content"`
	Rating      *int           `json:"rating" binding:"omitempty,min=1,max=5"`
	ClientImage *string        `json:"client_image"`
	VideoURL    *string        `json:"video_url" binding:"omitempty,url"`
	IsFeatured  *bool          `json:"is_featured"`
	Status      *string        `json:"status" binding:"omitempty,oneof=draft published"`
	SortOrder   *int           `json:"sort_order"`
}

// TestimonialResponse is the public serialization of a testimonial.
type TestimonialResponse struct {
	TestimonialID string    `json:"testimonial_id"`
	ClientName    string    `json:"client_name"`
	ClientTitle   string    `json:"client_title"`
	Content       string    `json:"content"`
	Rating        int       `json:"rating"`
	ClientImage   string    `json:"client_image"`
	VideoURL      string    `json:"video_url"`
	IsFeatured    bool      `json:"is_featured"`
	Status        string    `json:"status"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToTestimonialResponse renders a testimonial for one locale.
func ToTestimonialResponse(t *domain.Testimonial, rc RenderContext) TestimonialResponse {
	return TestimonialResponse{
		TestimonialID: t.TestimonialID,
		ClientName:    t.ClientName.Resolve(rc.Locale, rc.DefaultLocale),
		ClientTitle:   t.ClientTitle.Resolve(rc.Locale, rc.DefaultLocale),
		Content:       t.Content.Resolve(rc.Locale, rc.DefaultLocale),
		Rating:        t.Rating,
		ClientImage:   t.ClientImage,
		VideoURL:      t.VideoURL,
		IsFeatured:    t.IsFeatured,
		Status:        t.Status.String(),
		SortOrder:     t.SortOrder,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.LastUpdatedAt,
	}
}

// ToListTestimonialResponse renders a page of testimonials.
func ToListTestimonialResponse(items []domain.Testimonial, rc RenderContext) []TestimonialResponse {
	res := make([]TestimonialResponse, len(items))
	for i, t := range items {
		res[i] = ToTestimonialResponse(&t, rc)
	}
	return res
}
