package dto

import (
	"encoding/json"
	"fmt"

	"github.com/oryxgate/realty_cms/internal/core/domain"
)

// LocalizedInput accepts a translatable field from an admin payload in
// either of the two shapes the admin UI sends: a plain JSON string (applied
// to every configured locale) or an object mapping locale codes to strings.
type LocalizedInput struct {
	values domain.Localized
	single string
	isSet  bool
	isMap  bool
}

// UnmarshalJSON decodes either `"text"` or `{"en": "...", "ar": "..."}`.
func (l *LocalizedInput) UnmarshalJSON(b []byte) error {
	var asString string
	if err := json.Unmarshal(b, &asString); err == nil {
		l.single = asString
		l.isSet = true
		l.isMap = false
		return nil
	}

	var asMap domain.Localized
	if err := json.Unmarshal(b, &asMap); err == nil {
		l.values = asMap
		l.isSet = true
		l.isMap = true
		return nil
	}

	return fmt.Errorf("translatable field must be a string or a locale->string object")
}

// MarshalJSON round-trips the canonical map shape.
func (l LocalizedInput) MarshalJSON() ([]byte, error) {
	if l.isMap {
		return json.Marshal(l.values)
	}
	return json.Marshal(l.single)
}

// IsSet reports whether the field appeared in the payload at all.
func (l LocalizedInput) IsSet() bool {
	return l.isSet
}

// Localized materializes the canonical locale→value shape. A single-string
// input is fanned out to every configured locale.
func (l LocalizedInput) Localized(locales []string) domain.Localized {
	if !l.isSet {
		return nil
	}
	if l.isMap {
		return l.values
	}
	return domain.SingleLocale(l.single, locales)
}

// IsEmpty reports whether the input carries no usable text.
func (l LocalizedInput) IsEmpty() bool {
	if !l.isSet {
		return true
	}
	if l.isMap {
		return l.values.IsEmpty()
	}
	return l.single == ""
}
