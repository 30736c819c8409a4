package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultBundleLoadsEnglish(t *testing.T) {
	b := Default()
	require.NotNil(t, b)

	msg := b.TR("cmdline.error.unknown_argument")
	assert.Contains(t, msg, "unknown argument")
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	b := Default()
	assert.Equal(t, "no.such.key", b.TR("no.such.key"))
}

func TestAddLanguageAndSwitch(t *testing.T) {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{
		"greeting": "hello",
	}))
	require.NoError(t, b.AddLanguage(language.German, map[string]string{
		"greeting": "hallo",
	}))

	assert.Equal(t, "hello", b.TR("greeting"))

	require.NoError(t, b.SetDefaultLanguage(language.German))
	assert.Equal(t, "hallo", b.TR("greeting"))
	assert.Equal(t, language.German, b.GetDefaultLanguage())
}

func TestLanguageMatchingPicksClosest(t *testing.T) {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{"k": "v"}))
	require.NoError(t, b.AddLanguage(language.German, map[string]string{"k": "w"}))

	// Austrian German matches the German translations, and the registered tag
	// is kept rather than the matcher's extended one
	require.NoError(t, b.SetDefaultLanguage(language.MustParse("de-AT")))
	assert.Equal(t, language.German, b.GetDefaultLanguage())
	assert.Equal(t, "w", b.TR("k"))
}

func TestNonDefaultLanguageFallsBackToEnglish(t *testing.T) {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{
		"only.english": "english text",
	}))
	require.NoError(t, b.AddLanguage(language.French, map[string]string{
		"only.french": "texte français",
	}))
	require.NoError(t, b.SetDefaultLanguage(language.French))

	assert.Equal(t, "english text", b.TR("only.english"))
}

func TestBundleProvider(t *testing.T) {
	p := NewBundleMessageProvider(Default())
	assert.Contains(t, p.GetMessage("cmdline.error.missing_required"), "required")
}

func TestDefaultProviderIsUsable(t *testing.T) {
	p := DefaultProvider()
	require.NotNil(t, p)
	assert.NotEmpty(t, p.GetMessage("cmdline.error.cancelled"))
}
