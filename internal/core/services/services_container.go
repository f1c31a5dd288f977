package services

import (
	"log/slog"

	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/platform/config"
)

// Interface conformance checks.
var (
	_ portssvc.CurrencyRateSvcFacade    = (*CurrencyRateService)(nil)
	_ portssvc.CurrencyConversionSvc    = (*CurrencyConversionService)(nil)
	_ portssvc.AreaUnitConversionSvc    = (*AreaUnitConversionService)(nil)
	_ portssvc.ProjectSvcFacade         = (*ProjectService)(nil)
	_ portssvc.BlogSvcFacade            = (*BlogService)(nil)
	_ portssvc.AreaGuideSvcFacade       = (*AreaGuideService)(nil)
	_ portssvc.ServiceSvcFacade         = (*OfferingService)(nil)
	_ portssvc.TeamMemberSvcFacade      = (*TeamMemberService)(nil)
	_ portssvc.TestimonialSvcFacade     = (*TestimonialService)(nil)
	_ portssvc.SocialMediaLinkSvcFacade = (*SocialMediaLinkService)(nil)
	_ portssvc.SettingSvcFacade         = (*SettingService)(nil)
	_ portssvc.ContactSvcFacade         = (*ContactService)(nil)
)

// NewServiceContainer wires every service against the repository provider
// and the runtime configuration.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config, logger *slog.Logger) *portssvc.ServiceContainer {
	slugGen := NewSlugGenerator(cfg.AvailableLocales, cfg.DefaultLocale)

	return &portssvc.ServiceContainer{
		CurrencyRate:    NewCurrencyRateService(repos.CurrencyRateRepo),
		Conversion:      NewCurrencyConversionService(repos.CurrencyRateRepo, cfg.BaseCurrencyCode, logger),
		AreaConversion:  NewAreaUnitConversionService(),
		Project:         NewProjectService(repos.ProjectRepo, slugGen, cfg.AvailableLocales, logger),
		Blog:            NewBlogService(repos.BlogRepo, slugGen, cfg.AvailableLocales, logger),
		AreaGuide:       NewAreaGuideService(repos.AreaGuideRepo, repos.ProjectRepo, slugGen, cfg.AvailableLocales, logger),
		Service:         NewOfferingService(repos.ServiceRepo, slugGen, cfg.AvailableLocales, logger),
		TeamMember:      NewTeamMemberService(repos.TeamMemberRepo, cfg.AvailableLocales),
		Testimonial:     NewTestimonialService(repos.TestimonialRepo, cfg.AvailableLocales),
		SocialMediaLink: NewSocialMediaLinkService(repos.SocialMediaLinkRepo, cfg.AvailableLocales),
		Setting:         NewSettingService(repos.SettingRepo, cfg.AvailableLocales),
		Contact:         NewContactService(repos.ContactRepo),
	}
}
