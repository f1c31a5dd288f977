package domain

// Testimonial is a client review shown on the site.
type Testimonial struct {
	TestimonialID string    `json:"testimonialID"`
	ClientName    Localized `json:"clientName"`
	ClientTitle   Localized `json:"clientTitle"`
	Content       Localized `json:"content"`

	Rating      int    `json:"rating"` // 1..5
	ClientImage string `json:"clientImage"`
	VideoURL    string `json:"videoURL"`
	IsFeatured  bool   `json:"isFeatured"`
	Status      Status `json:"status"`
	SortOrder   int    `json:"sortOrder"`
	AuditFields
}
