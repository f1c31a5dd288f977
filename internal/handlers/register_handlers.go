package handlers

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/oryxgate/realty_cms/cmd/docs"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/middleware"
	"github.com/oryxgate/realty_cms/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.Use(cors.New(corsConfig(cfg)))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupPublicAPIRoutes(r, cfg, services)
	setupAdminAPIRoutes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupPublicAPIRoutes configures the rate-limited read-only /api/v1 group.
// Every route resolves locale, currency and area unit from the request
// before the handler runs.
func setupPublicAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	public := r.Group("/api/v1",
		middleware.RateLimit(publicLimiter(cfg)),
		middleware.DisplayContext(cfg),
	)

	registerPublicProjectRoutes(public, services.Project, services.Conversion, services.AreaConversion)
	registerPublicBlogRoutes(public, services.Blog)
	registerPublicAreaGuideRoutes(public, services.AreaGuide)
	registerPublicServiceRoutes(public, services.Service)
	registerPublicTeamMemberRoutes(public, services.TeamMember)
	registerPublicTestimonialRoutes(public, services.Testimonial)
	registerPublicSocialMediaLinkRoutes(public, services.SocialMediaLink)
	registerPublicSettingRoutes(public, services.Setting)
	registerPublicContactRoutes(public, services.Contact)
	registerPublicCurrencyRoutes(public, services.CurrencyRate, services.Conversion)
}

// setupAdminAPIRoutes configures the /api/v1/admin group behind JWT auth.
func setupAdminAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	admin := r.Group("/api/v1/admin",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.DisplayContext(cfg),
	)

	registerAdminProjectRoutes(admin, services.Project, services.Conversion, services.AreaConversion)
	registerAdminBlogRoutes(admin, services.Blog)
	registerAdminAreaGuideRoutes(admin, services.AreaGuide)
	registerAdminServiceRoutes(admin, services.Service)
	registerAdminTeamMemberRoutes(admin, services.TeamMember)
	registerAdminTestimonialRoutes(admin, services.Testimonial)
	registerAdminSocialMediaLinkRoutes(admin, services.SocialMediaLink)
	registerAdminSettingRoutes(admin, services.Setting)
	registerAdminContactRoutes(admin, services.Contact)
	registerAdminCurrencyRateRoutes(admin, services.CurrencyRate, services.Conversion)
}

// publicLimiter builds the in-memory limiter for the public API from the
// configured rate (e.g. "300-H").
func publicLimiter(cfg *config.Config) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.PublicRateLimit)
	if err != nil {
		slog.Warn("Invalid PUBLIC_RATE_LIMIT, falling back to 300-H", slog.String("value", cfg.PublicRateLimit))
		rate, _ = limiter.NewRateFromFormatted("300-H")
	}
	return limiter.New(memory.NewStore(), rate)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders,
		"Authorization", "X-Currency", "X-Area-Unit", "X-Request-ID")
	return corsCfg
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
