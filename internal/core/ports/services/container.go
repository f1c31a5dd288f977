package services

// ServiceContainer bundles every service facade for injection into route
// registration.
type ServiceContainer struct {
	CurrencyRate    CurrencyRateSvcFacade
	Conversion      CurrencyConversionSvc
	AreaConversion  AreaUnitConversionSvc
	Project         ProjectSvcFacade
	Blog            BlogSvcFacade
	AreaGuide       AreaGuideSvcFacade
	Service         ServiceSvcFacade
	TeamMember      TeamMemberSvcFacade
	Testimonial     TestimonialSvcFacade
	SocialMediaLink SocialMediaLinkSvcFacade
	Setting         SettingSvcFacade
	Contact         ContactSvcFacade
}
