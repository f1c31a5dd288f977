package domain

// Service is an agency service offering (e.g. property management).
type Service struct {
	ServiceID        string    `json:"serviceID"`
	Title            Localized `json:"title"`
	Slug             Localized `json:"slug"`
	ShortDescription Localized `json:"shortDescription"`
	Description      Localized `json:"description"`

	Icon       string `json:"icon"`
	Image      string `json:"image"`
	IsFeatured bool   `json:"isFeatured"`
	Status     Status `json:"status"`
	SortOrder  int    `json:"sortOrder"`
	AuditFields
}
