package locales

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSetDefaultsToDefaultLocale(t *testing.T) {
	t.Parallel()

	set, err := NewSet("en", nil)
	require.NoError(t, err)
	require.Equal(t, "en", set.Default())
	require.Equal(t, []string{"en"}, set.All())
	require.True(t, set.Has("en"))
}

func TestNewSetNormalizesTags(t *testing.T) {
	t.Parallel()

	set, err := NewSet("en", []string{"en", "pt_br"})
	require.NoError(t, err)
	require.Equal(t, []string{"en", "pt-BR"}, set.All())
	require.True(t, set.Has("pt-BR"))
}

func TestNewSetRejectsInvalidConfiguration(t *testing.T) {
	t.Parallel()

	_, err := NewSet("", nil)
	require.Error(t, err)

	_, err = NewSet("en", []string{"fr"})
	require.Error(t, err)

	_, err = NewSet("en", []string{"en", "en"})
	require.Error(t, err)

	_, err = NewSet("en", []string{"en", "not a locale!"})
	require.Error(t, err)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	set, err := NewSet("en", []string{"en", "de"})
	require.NoError(t, err)

	got, err := set.Match("")
	require.NoError(t, err)
	require.Equal(t, "en", got)

	got, err = set.Match("de")
	require.NoError(t, err)
	require.Equal(t, "de", got)

	got, err = set.Match("en-GB")
	require.NoError(t, err)
	require.Equal(t, "en", got)

	got, err = set.Match("ja")
	require.ErrorIs(t, err, ErrUnknownLocale)
	require.Equal(t, "en", got)
}

func TestTagFallsBackToDefault(t *testing.T) {
	t.Parallel()

	set, err := NewSet("de", []string{"de", "en"})
	require.NoError(t, err)
	require.Equal(t, "de", set.Tag("missing").String())
	require.Equal(t, "en", set.Tag("en").String())
	require.Equal(t, "de", set.Resolve(""))
}

func TestLookupNormalizesRawNames(t *testing.T) {
	t.Parallel()

	set, err := NewSet("en", []string{"en", "pt-br"})
	require.NoError(t, err)

	for _, raw := range []string{"pt-BR", "pt-br", "pt_br", "PT_BR"} {
		locale, ok := set.Lookup(raw)
		require.True(t, ok, raw)
		require.Equal(t, "pt-BR", locale)
	}

	_, ok := set.Lookup("overview")
	require.False(t, ok)
	_, ok = set.Lookup("de")
	require.False(t, ok)
}
