package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/oryxgate/realty_cms/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalized_Resolve(t *testing.T) {
	l := domain.Localized{"en": "Luxury Villa", "ar": "فيلا فاخرة"}

	assert.Equal(t, "فيلا فاخرة", l.Resolve("ar", "en"))
	assert.Equal(t, "Luxury Villa", l.Resolve("en", "en"))
	// Missing locale falls back to the default.
	assert.Equal(t, "Luxury Villa", l.Resolve("fr", "en"))
}

func TestLocalized_ResolveEmptyValueFallsBack(t *testing.T) {
	l := domain.Localized{"en": "Luxury Villa", "ar": ""}

	assert.Equal(t, "Luxury Villa", l.Resolve("ar", "en"))
}

func TestLocalized_ResolveNothingAvailable(t *testing.T) {
	assert.Equal(t, "", domain.Localized{}.Resolve("ar", "en"))
	assert.Equal(t, "", domain.Localized(nil).Resolve("ar", "en"))
}

func TestLocalized_Get(t *testing.T) {
	l := domain.Localized{"en": "Villa", "ar": ""}

	v, ok := l.Get("en")
	assert.True(t, ok)
	assert.Equal(t, "Villa", v)

	// Empty string counts as absent.
	_, ok = l.Get("ar")
	assert.False(t, ok)

	_, ok = domain.Localized(nil).Get("en")
	assert.False(t, ok)
}

func TestLocalized_Merge(t *testing.T) {
	stored := domain.Localized{"en": "Old", "ar": "قديم"}
	incoming := domain.Localized{"en": "New", "fr": ""}

	merged := stored.Merge(incoming)

	assert.Equal(t, "New", merged["en"])
	assert.Equal(t, "قديم", merged["ar"])
	// Empty incoming values do not clobber.
	assert.NotContains(t, merged, "fr")
	// Merge does not mutate the receiver.
	assert.Equal(t, "Old", stored["en"])
}

func TestLocalized_IsEmpty(t *testing.T) {
	assert.True(t, domain.Localized{}.IsEmpty())
	assert.True(t, domain.Localized{"en": ""}.IsEmpty())
	assert.False(t, domain.Localized{"en": "x"}.IsEmpty())
}

func TestLocalized_JSONRoundTrip(t *testing.T) {
	l := domain.Localized{"en": "Luxury Villa", "ar": "فيلا فاخرة"}

	b, err := json.Marshal(l)
	require.NoError(t, err)

	var decoded domain.Localized
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, l, decoded)
}

func TestSingleLocale(t *testing.T) {
	l := domain.SingleLocale("Villa", []string{"en", "ar"})

	assert.Equal(t, domain.Localized{"en": "Villa", "ar": "Villa"}, l)
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"draft", "published"} {
		s, err := domain.ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	_, err := domain.ParseStatus("archived")
	assert.Error(t, err)

	_, err = domain.ParseStatus("Published")
	assert.Error(t, err, "status matching is case-sensitive")
}

func TestParseContactStatus(t *testing.T) {
	for _, valid := range []string{"new", "read", "closed"} {
		s, err := domain.ParseContactStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	_, err := domain.ParseContactStatus("spam")
	assert.Error(t, err)
}
