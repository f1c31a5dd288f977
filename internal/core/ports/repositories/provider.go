package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	CurrencyRateRepo    CurrencyRateRepositoryFacade
	ProjectRepo         ProjectRepositoryFacade
	BlogRepo            BlogRepositoryFacade
	AreaGuideRepo       AreaGuideRepositoryFacade
	ServiceRepo         ServiceRepositoryFacade
	TeamMemberRepo      TeamMemberRepositoryFacade
	TestimonialRepo     TestimonialRepositoryFacade
	SocialMediaLinkRepo SocialMediaLinkRepositoryFacade
	SettingRepo         SettingRepositoryFacade
	ContactRepo         ContactRepositoryFacade
}
