package domain

// TeamMember is an agency staff profile.
type TeamMember struct {
	TeamMemberID string    `json:"teamMemberID"`
	Name         Localized `json:"name"`
	JobTitle     Localized `json:"jobTitle"`
	Bio          Localized `json:"bio"`

	Image       string `json:"image"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LinkedinURL string `json:"linkedinURL"`
	Status      Status `json:"status"`
	SortOrder   int    `json:"sortOrder"`
	AuditFields
}
