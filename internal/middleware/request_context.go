package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/oryxgate/realty_cms/internal/platform/config"
	"golang.org/x/text/language"
)

// DisplayContext resolves the per-request rendering context: the content
// locale, the display currency and the display area unit. Locale comes from
// the `locale` query parameter or Accept-Language negotiation, currency from
// `currency`/X-Currency and area unit from `unit`/X-Area-Unit. Anything
// unrecognized silently falls back to the configured defaults; currency
// validity is checked downstream by the conversion service, which fails open.
func DisplayContext(cfg *config.Config) gin.HandlerFunc {
	tags := make([]language.Tag, 0, len(cfg.AvailableLocales))
	for _, locale := range cfg.AvailableLocales {
		tags = append(tags, language.Make(locale))
	}
	matcher := language.NewMatcher(tags)

	return func(c *gin.Context) {
		rc := dto.RenderContext{
			Locale:        cfg.DefaultLocale,
			DefaultLocale: cfg.DefaultLocale,
			Currency:      cfg.BaseCurrencyCode,
			AreaUnit:      cfg.DefaultAreaUnit,
		}

		if q := strings.ToLower(c.Query("locale")); q != "" {
			for _, locale := range cfg.AvailableLocales {
				if q == locale {
					rc.Locale = q
					break
				}
			}
		} else if accept := c.GetHeader("Accept-Language"); accept != "" {
			if desired, _, err := language.ParseAcceptLanguage(accept); err == nil {
				if _, idx, conf := matcher.Match(desired...); conf > language.No {
					rc.Locale = cfg.AvailableLocales[idx]
				}
			}
		}

		currency := c.Query("currency")
		if currency == "" {
			currency = c.GetHeader("X-Currency")
		}
		if currency != "" {
			rc.Currency = strings.ToUpper(currency)
		}

		unit := c.Query("unit")
		if unit == "" {
			unit = c.GetHeader("X-Area-Unit")
		}
		if normalized := domain.NormalizeAreaUnit(unit); normalized == domain.AreaUnitSqm || normalized == domain.AreaUnitSqft {
			rc.AreaUnit = string(normalized)
		}

		ctx := context.WithValue(c.Request.Context(), displayCtxKey, rc)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetDisplayContext retrieves the rendering context resolved by
// DisplayContext. Handlers outside the middleware chain get zero values, so
// routes rendering content must sit behind it.
func GetDisplayContext(c *gin.Context) dto.RenderContext {
	if rc, ok := c.Request.Context().Value(displayCtxKey).(dto.RenderContext); ok {
		return rc
	}
	return dto.RenderContext{}
}
