package dto

import (
	"time"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// CreateBlogRequest defines the data needed to create a blog article.
type CreateBlogRequest struct {
	Title            LocalizedInput `json:"title" binding:"required"`
	ShortDescription LocalizedInput `json:"short_description"`
	Content          LocalizedInput `json:"content"`
	MetaTitle        LocalizedInput `json:"meta_title"`
	MetaDescription  LocalizedInput `json:"meta_description"`

	FeaturedImage string   `json:"featured_image"`
	Gallery       []string `json:"gallery"`
	IsFeatured    bool     `json:"is_featured"`
	Status        string   `json:"status" binding:"omitempty,oneof=draft published"`
	SortOrder     int      `json:"sort_order"`
}

// UpdateBlogRequest carries a partial blog update.
type UpdateBlogRequest struct {
	Title            LocalizedInput `json:"title"`
	ShortDescription LocalizedInput `json:"short_description"`
	Content          LocalizedInput `json:"content"`
	MetaTitle        LocalizedInput `json:"meta_title"`
	MetaDescription  LocalizedInput `json:"meta_description"`

	FeaturedImage *string  `json:"featured_image"`
	Gallery       []string `json:"gallery"`
	IsFeatured    *bool    `json:"is_featured"`
	Status        *string  `json:"status" binding:"omitempty,oneof=draft published"`
	SortOrder     *int     `json:"sort_order"`
}

// BlogResponse is the public serialization of a blog article.
type BlogResponse struct {
	BlogID           string     `json:"blog_id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	ShortDescription string     `json:"short_description"`
	Content          string     `json:"content"`
	MetaTitle        string     `json:"meta_title"`
	MetaDescription  string     `json:"meta_description"`
	FeaturedImage    string     `json:"featured_image"`
	Gallery          []string   `json:"gallery"`
	IsFeatured       bool       `json:"is_featured"`
	Status           string     `json:"status"`
	SortOrder        int        `json:"sort_order"`
	PublishedAt      *time.Time `json:"published_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ToBlogResponse renders a blog article for one locale.
func ToBlogResponse(b *domain.Blog, rc RenderContext) BlogResponse {
	return BlogResponse{
		BlogID:           b.BlogID,
		Title:            b.Title.Resolve(rc.Locale, rc.DefaultLocale),
		Slug:             b.Slug.Resolve(rc.Locale, rc.DefaultLocale),
		ShortDescription: b.ShortDescription.Resolve(rc.Locale, rc.DefaultLocale),
		Content:          b.Content.Resolve(rc.Locale, rc.DefaultLocale),
		MetaTitle:        b.MetaTitle.Resolve(rc.Locale, rc.DefaultLocale),
		MetaDescription:  b.MetaDescription.Resolve(rc.Locale, rc.DefaultLocale),
		FeaturedImage:    b.FeaturedImage,
		Gallery:          b.Gallery,
		IsFeatured:       b.IsFeatured,
		Status:           b.Status.String(),
		SortOrder:        b.SortOrder,
		PublishedAt:      b.PublishedAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.LastUpdatedAt,
	}
}

// ToListBlogResponse renders a page of blog articles.
func ToListBlogResponse(blogs []domain.Blog, rc RenderContext) []BlogResponse {
	res := make([]BlogResponse, len(blogs))
	for i, b := range blogs {
		res[i] = ToBlogResponse(&b, rc)
	}
	return res
}
