package domain

// Localized is a translatable text field: a mapping from locale code
// (e.g. "en", "ar") to content in that locale. It round-trips as a JSON
// object and is persisted as JSONB.
type Localized map[string]string

// Get returns the value stored for the given locale and whether it was
// present and non-empty. It performs no fallback; use Resolve for
// fallback-aware reads.
func (l Localized) Get(locale string) (string, bool) {
	if l == nil {
		return "", false
	}
	v, ok := l[locale]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Resolve applies the canonical fallback chain: requested locale, then the
// default locale, then empty string. Every read path resolves translations
// through this method so fallback behavior stays uniform across the API
// surface.
func (l Localized) Resolve(locale, defaultLocale string) string {
	if v, ok := l.Get(locale); ok {
		return v
	}
	if v, ok := l.Get(defaultLocale); ok {
		return v
	}
	return ""
}

// IsEmpty reports whether no locale holds a non-empty value.
func (l Localized) IsEmpty() bool {
	for _, v := range l {
		if v != "" {
			return false
		}
	}
	return true
}

// Locales returns the locale codes that hold a non-empty value.
func (l Localized) Locales() []string {
	codes := make([]string, 0, len(l))
	for code, v := range l {
		if v != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// Merge returns a copy of l with the non-empty values of other applied on
// top. Locales untouched by other keep their current value.
func (l Localized) Merge(other Localized) Localized {
	merged := make(Localized, len(l)+len(other))
	for code, v := range l {
		merged[code] = v
	}
	for code, v := range other {
		if v != "" {
			merged[code] = v
		}
	}
	return merged
}

// SingleLocale builds a Localized holding the same value for every given
// locale. Used when an admin payload carries a plain string instead of a
// per-locale mapping.
func SingleLocale(value string, locales []string) Localized {
	l := make(Localized, len(locales))
	for _, code := range locales {
		l[code] = value
	}
	return l
}
