package services

import (
	"context"
	"fmt"
	"strconv"

	goslug "github.com/gosimple/slug"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
)

// maxSlugAttempts bounds the counter-suffix loop. Exhausting it means
// thousands of records share one base slug in one locale, which is a bug
// signal, not a user error.
const maxSlugAttempts = 10000

// SlugGenerator derives per-locale URL slugs from translatable names and
// guarantees uniqueness per (entity table, locale) via an injected existence
// check. Non-Latin source text (e.g. Arabic) is transliterated into a
// readable ASCII slug.
//
// The existence check is optimistic: concurrent writers can still collide,
// and the per-locale unique index in the database is the authoritative
// guard. Callers retry generation when an insert reports a duplicate slug.
type SlugGenerator struct {
	locales       []string // ordered, from configuration
	defaultLocale string
}

// NewSlugGenerator creates a generator for the configured locale list.
// defaultLocale is the fallback source of text for locales with no value of
// their own.
func NewSlugGenerator(locales []string, defaultLocale string) *SlugGenerator {
	return &SlugGenerator{
		locales:       locales,
		defaultLocale: defaultLocale,
	}
}

// Generate produces a locale→slug mapping for the given locale→name
// mapping. For each configured locale the source text is the locale's own
// value, falling back to the default locale's value; locales with neither
// are skipped (no slug emitted). excludeID, when non-empty, exempts one
// record from the uniqueness check so updates do not collide with their own
// stored slug.
func (g *SlugGenerator) Generate(ctx context.Context, checker portsrepo.SlugChecker, names domain.Localized, excludeID string) (domain.Localized, error) {
	slugs := make(domain.Localized, len(g.locales))

	for _, locale := range g.locales {
		text, ok := names.Get(locale)
		if !ok {
			text, ok = names.Get(g.defaultLocale)
		}
		if !ok {
			continue
		}

		baseSlug := goslug.Make(text)
		if baseSlug == "" {
			continue
		}

		unique, err := g.ensureUnique(ctx, checker, locale, baseSlug, excludeID)
		if err != nil {
			return nil, err
		}
		slugs[locale] = unique
	}

	return slugs, nil
}

// GenerateForLocales recomputes slugs for exactly the given locales, with no
// default-locale fallback. Updates use this so locales absent from the
// payload keep their stored slug.
func (g *SlugGenerator) GenerateForLocales(ctx context.Context, checker portsrepo.SlugChecker, names domain.Localized, locales []string, excludeID string) (domain.Localized, error) {
	slugs := make(domain.Localized, len(locales))

	for _, locale := range locales {
		text, ok := names.Get(locale)
		if !ok {
			continue
		}

		baseSlug := goslug.Make(text)
		if baseSlug == "" {
			continue
		}

		unique, err := g.ensureUnique(ctx, checker, locale, baseSlug, excludeID)
		if err != nil {
			return nil, err
		}
		slugs[locale] = unique
	}

	return slugs, nil
}

// ensureUnique walks baseSlug, baseSlug-1, baseSlug-2, ... until the checker
// reports the candidate free for this locale.
func (g *SlugGenerator) ensureUnique(ctx context.Context, checker portsrepo.SlugChecker, locale, baseSlug, excludeID string) (string, error) {
	candidate := baseSlug
	for counter := 1; counter <= maxSlugAttempts; counter++ {
		exists, err := checker.SlugExists(ctx, locale, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("slug existence check failed for %q (%s): %w", candidate, locale, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = baseSlug + "-" + strconv.Itoa(counter)
	}
	return "", fmt.Errorf("%w: slug namespace exhausted for %q in locale %q", apperrors.ErrInternal, baseSlug, locale)
}
