package domain

// SocialPlatform is a closed set of supported social networks.
type SocialPlatform string

const (
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformInstagram SocialPlatform = "instagram"
	PlatformLinkedin  SocialPlatform = "linkedin"
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformYoutube   SocialPlatform = "youtube"
	PlatformTiktok    SocialPlatform = "tiktok"
)

// SocialMediaLink is a footer/header social profile link.
type SocialMediaLink struct {
	SocialMediaLinkID string         `json:"socialMediaLinkID"`
	Platform          SocialPlatform `json:"platform"`
	Label             Localized      `json:"label"`
	URL               string         `json:"url"`
	Icon              string         `json:"icon"`
	IsActive          bool           `json:"isActive"`
	SortOrder         int            `json:"sortOrder"`
	AuditFields
}
