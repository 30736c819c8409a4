package conversion

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Culture carries the locale used for conversion and matching. It is threaded
// explicitly through every conversion; the package keeps no ambient locale.
type Culture struct {
	tag          language.Tag
	decimalComma bool
	location     *time.Location
}

// languages whose conventional decimal separator is a comma
var decimalCommaLanguages = map[string]struct{}{
	"cs": {}, "da": {}, "de": {}, "el": {}, "es": {}, "fi": {}, "fr": {},
	"hu": {}, "id": {}, "it": {}, "nb": {}, "nl": {}, "no": {}, "pl": {},
	"pt": {}, "ru": {}, "sv": {}, "tr": {}, "uk": {}, "vi": {},
}

// NewCulture creates a Culture for the given language tag
func NewCulture(tag language.Tag) Culture {
	base, _ := tag.Base()
	_, comma := decimalCommaLanguages[base.String()]
	return Culture{tag: tag, decimalComma: comma}
}

// Invariant returns the culture-neutral Culture ("." decimal separator,
// simple case folding).
func Invariant() Culture {
	return Culture{tag: language.Und}
}

// Tag returns the culture's language tag
func (c Culture) Tag() language.Tag {
	return c.tag
}

// Location returns the time zone applied to zone-less timestamps. It defaults
// to UTC so conversion does not depend on the process environment.
func (c Culture) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// WithLocation returns a copy of the culture using loc for zone-less timestamps
func (c Culture) WithLocation(loc *time.Location) Culture {
	c.location = loc
	return c
}

// Fold returns s case-folded for caseless comparison
func (c Culture) Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under case folding
func (c Culture) EqualFold(a, b string) bool {
	return cases.Fold().String(a) == cases.Fold().String(b)
}

// NormalizeDecimal rewrites a culture-correct numeric literal into the form
// strconv accepts. For comma-decimal cultures "1,5" becomes "1.5"; group
// separators are not supported.
func (c Culture) NormalizeDecimal(s string) string {
	if !c.decimalComma {
		return s
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		return strings.Replace(s, ",", ".", 1)
	}
	return s
}

// FormatDecimal rewrites a strconv-formatted numeric literal into the
// culture-correct form. Inverse of NormalizeDecimal.
func (c Culture) FormatDecimal(s string) string {
	if !c.decimalComma {
		return s
	}
	return strings.Replace(s, ".", ",", 1)
}
