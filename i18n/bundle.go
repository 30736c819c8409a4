// Package i18n provides the string-resource layer for parser messages.
// Message text is resolved by key through a MessageProvider so hosts can swap
// or translate wording without touching the core.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrLanguageNotFound                   = errors.New("language not found")
)

// Bundle holds per-language message tables keyed by translation key.
// A Bundle is safe for concurrent readers once built.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	matcher      language.Matcher
	supported    []language.Tag
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the bundle backed by the embedded locale files
func Default() *Bundle {
	return defaultBundle
}

// NewEmptyBundle returns a bundle with no translations; callers are expected to
// populate it with AddLanguage before use.
func NewEmptyBundle() *Bundle {
	b := &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
	}
	b.rebuildMatcher()
	return b
}

// NewBundleWithFS loads every "<lang>.json" file below dirPrefix in fs
func NewBundleWithFS(fs embed.FS, dirPrefix string) (*Bundle, error) {
	b := &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
	}

	entries, err := fs.ReadDir(dirPrefix)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		langName := strings.TrimSuffix(entry.Name(), ".json")
		tag, err := language.Parse(langName)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}

		data, err := fs.ReadFile(filepath.Join(dirPrefix, entry.Name()))
		if err != nil {
			return nil, err
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, err
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyTranslations, entry.Name())
		}

		b.translations[tag] = messages
	}

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}
	b.rebuildMatcher()

	return b, nil
}

func (b *Bundle) rebuildMatcher() {
	supported := make([]language.Tag, 0, len(b.translations))
	supported = append(supported, b.defaultLang)
	for lang := range b.translations {
		if lang != b.defaultLang {
			supported = append(supported, lang)
		}
	}
	b.supported = supported
	b.matcher = language.NewMatcher(supported)
}

// AddLanguage registers or replaces the message table for lang
func (b *Bundle) AddLanguage(lang language.Tag, messages map[string]string) error {
	if len(messages) == 0 {
		return ErrEmptyTranslations
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.translations[lang] = messages
	b.rebuildMatcher()

	return nil
}

// GetDefaultLanguage returns the bundle's default language
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

// SetDefaultLanguage switches the language used for lookups. The language must
// have a registered message table.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Match's returned tag may carry the requested tag's extensions, so the
	// registered tag has to be recovered through the index.
	_, index, confidence := b.matcher.Match(lang)
	if confidence == language.No {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}
	b.defaultLang = b.supported[index]

	return nil
}

// TR returns the message stored under key in the default language, falling back
// to English, then to the key itself.
func (b *Bundle) TR(key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if messages, ok := b.translations[b.defaultLang]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if messages, ok := b.translations[language.English]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}

	return key
}

// Languages returns the registered languages
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}
	return langs
}
