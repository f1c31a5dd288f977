package domain

// Setting holds the site-wide contact and branding configuration. The site
// has a single active settings row managed by administrators.
type Setting struct {
	SettingID    string    `json:"settingID"`
	PhoneNumbers []string  `json:"phoneNumbers"`
	Emails       []string  `json:"emails"`
	Address      Localized `json:"address"`
	CompanyName  Localized `json:"companyName"`
	FooterText   Localized `json:"footerText"`

	MapEmbedURL     string `json:"mapEmbedURL"`
	DefaultCurrency string `json:"defaultCurrency"`
	DefaultLanguage string `json:"defaultLanguage"`
	IsActive        bool   `json:"isActive"`
	AuditFields
}
