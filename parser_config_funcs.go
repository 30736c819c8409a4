package cmdline

import (
	"errors"
	"io"

	"golang.org/x/text/language"

	"github.com/verdane/cmdline/conversion"
	"github.com/verdane/cmdline/i18n"
)

// WithMode selects the parsing mode
func WithMode(mode ParsingMode) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.mode = mode
	}
}

// WithArgumentPrefixes sets the prefix runes recognized in default mode
func WithArgumentPrefixes(prefixes ...rune) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if len(prefixes) == 0 {
			if err != nil {
				*err = errors.New("argument prefix list must not be empty")
			}
			return
		}
		p.prefixes = prefixes
	}
}

// WithLongShortPrefixes sets the long and short prefixes used in long/short mode
func WithLongShortPrefixes(long, short string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if long != "" {
			p.longPrefix = long
		}
		if short != "" {
			p.shortPrefix = short
		}
	}
}

// WithValueSeparators sets the runes accepted between an argument name and an
// inline value ("-name:value", "-name=value")
func WithValueSeparators(separators ...rune) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.valueSeparators = separators
	}
}

// SetAllowWhiteSpaceSeparator controls whether a named argument's value may be
// supplied as the following token
func SetAllowWhiteSpaceSeparator(allow bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.whitespaceSeparator = allow
	}
}

// SetCaseSensitive controls argument and command name matching
func SetCaseSensitive(sensitive bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.caseSensitive = sensitive
	}
}

// SetPrefixMatching enables resolving a named token that is an unambiguous
// prefix of exactly one known long name
func SetPrefixMatching(enabled bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.prefixMatching = enabled
	}
}

// SetNumericDetection controls whether a prefixed token that parses as a
// number may fall back to being a value ("-5" as a negative number)
func SetNumericDetection(enabled bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.numericDetection = enabled
	}
}

// SetPreferNumeric makes numeric-looking tokens classify as values before
// name resolution is attempted. The default is the opposite: a name match
// wins over the numeric reading.
func SetPreferNumeric(enabled bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.preferNumeric = enabled
	}
}

// WithDuplicatePolicy decides what happens when a non-multi-value argument is
// supplied more than once
func WithDuplicatePolicy(policy DuplicatePolicy) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.duplicatePolicy = policy
	}
}

// WithCulture sets the locale used for conversion and case folding
func WithCulture(tag language.Tag) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.culture = conversion.NewCulture(tag)
	}
}

// WithNameConverter applies a conversion strategy to declared argument names
// when the schema is built
func WithNameConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.nameConverter = converter
	}
}

// WithConverterRegistry replaces the converter registry
func WithConverterRegistry(registry *conversion.Registry) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.converters = registry
	}
}

// WithMessageProvider resolves error message text through the given provider
func WithMessageProvider(provider i18n.MessageProvider) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.provider = provider
	}
}

// WithOutputWriter redirects standard output (used by command entry points)
func WithOutputWriter(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.stdout = w
	}
}

// WithErrorWriter redirects error output (used by command entry points)
func WithErrorWriter(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.stderr = w
	}
}
