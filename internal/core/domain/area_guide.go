package domain

// AreaGuide describes a neighborhood or district that projects belong to.
type AreaGuide struct {
	AreaGuideID string    `json:"areaGuideID"`
	Name        Localized `json:"name"`
	Slug        Localized `json:"slug"`
	Description Localized `json:"description"`

	Image     string `json:"image"`
	IsPopular bool   `json:"isPopular"`
	Status    Status `json:"status"`
	SortOrder int    `json:"sortOrder"`
	AuditFields
}
