package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
)

// slugSaveRetries bounds the regenerate-and-retry loop when an insert or
// update loses the race against a concurrent writer on the per-locale slug
// index.
const slugSaveRetries = 3

// persistWithSlugs generates slugs from names, hands them to assign, then
// runs persist. The existence check in the generator is optimistic, so when
// persist reports a duplicate slug the loop regenerates and retries a few
// times before giving up.
//
// names nil means the write does not touch slugs; persist runs once as-is.
// existingSlugs non-nil marks an update: slugs are recomputed for exactly
// the locales names carries and overlaid on the stored map, so untouched
// locales keep their slug.
func persistWithSlugs(
	ctx context.Context,
	logger *slog.Logger,
	gen *SlugGenerator,
	checker portsrepo.SlugChecker,
	names domain.Localized,
	existingSlugs domain.Localized,
	excludeID string,
	assign func(domain.Localized),
	persist func(context.Context) error,
) error {
	if names == nil {
		if err := persist(ctx); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		return nil
	}

	for attempt := 1; attempt <= slugSaveRetries; attempt++ {
		var (
			slugs domain.Localized
			err   error
		)
		if existingSlugs != nil {
			slugs, err = gen.GenerateForLocales(ctx, checker, names, names.Locales(), excludeID)
			if err == nil {
				slugs = existingSlugs.Merge(slugs)
			}
		} else {
			slugs, err = gen.Generate(ctx, checker, names, excludeID)
		}
		if err != nil {
			return fmt.Errorf("failed to generate slugs: %w", err)
		}
		assign(slugs)

		err = persist(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) || attempt == slugSaveRetries {
			return fmt.Errorf("failed to save record: %w", err)
		}
		logger.WarnContext(ctx, "duplicate slug on save, regenerating",
			"recordID", excludeID, "attempt", attempt)
	}
	return fmt.Errorf("%w: could not persist record with a unique slug", apperrors.ErrInternal)
}
