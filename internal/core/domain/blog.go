package domain

import "time"

// Blog is a marketing article with translatable content.
type Blog struct {
	BlogID           string    `json:"blogID"`
	Title            Localized `json:"title"`
	Slug             Localized `json:"slug"`
	ShortDescription Localized `json:"shortDescription"`
	Content          Localized `json:"content"`
	MetaTitle        Localized `json:"metaTitle"`
	MetaDescription  Localized `json:"metaDescription"`

	FeaturedImage string   `json:"featuredImage"`
	Gallery       []string `json:"gallery"`

	IsFeatured  bool       `json:"isFeatured"`
	Status      Status     `json:"status"`
	SortOrder   int        `json:"sortOrder"`
	PublishedAt *time.Time `json:"publishedAt"`
	AuditFields
}
