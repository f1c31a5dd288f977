package repositories

import "context"

// SlugChecker is the existence-check collaborator used by slug generation.
// Implementations answer whether a slug is already taken for a locale within
// one entity table, optionally ignoring the record identified by excludeID
// (so an update does not collide with its own stored slug).
//
// The check is a best-effort pre-check only; the per-(table, locale) unique
// index in the database is the authoritative guard against races.
type SlugChecker interface {
	SlugExists(ctx context.Context, locale, slug, excludeID string) (bool, error)
}
