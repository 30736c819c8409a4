package cmdline

import (
	"io"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/verdane/cmdline/conversion"
	"github.com/verdane/cmdline/i18n"
	"github.com/verdane/cmdline/types"
)

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(p *Parser, err *error)

// ConfigureDescriptorFunc is used when defining argument Descriptors
type ConfigureDescriptorFunc func(d *Descriptor, err *error)

// ConfigureCommandSetFunc is used when defining CommandSet options
type ConfigureCommandSetFunc func(cs *CommandSet, err *error)

// NameConversionFunc converts a declared field or parameter name to an
// argument name
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-argument-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_argument_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToScreamingSnake converts a string to screaming snake case "MY_ARGUMENT_NAME"
	ToScreamingSnake = func(s string) string {
		return strcase.ToScreamingSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "myArgumentName"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "myargumentname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}
)

// Re-exported shared enums so common use does not need the types import
type (
	ValueKind       = types.ValueKind
	ParsingMode     = types.ParsingMode
	CancelMode      = types.CancelMode
	DuplicatePolicy = types.DuplicatePolicy
)

const (
	KindString   = types.KindString
	KindInt      = types.KindInt
	KindUint     = types.KindUint
	KindFloat    = types.KindFloat
	KindBool     = types.KindBool
	KindTime     = types.KindTime
	KindDuration = types.KindDuration
	KindEnum     = types.KindEnum
	KindCustom   = types.KindCustom

	ModeDefault   = types.ModeDefault
	ModeLongShort = types.ModeLongShort

	CancelNone         = types.CancelNone
	CancelAbortFailure = types.CancelAbortFailure
	CancelAbortSuccess = types.CancelAbortSuccess

	DuplicateError   = types.DuplicateError
	DuplicateWarn    = types.DuplicateWarn
	DuplicateReplace = types.DuplicateReplace
)

const (
	defaultLongPrefix  = "--"
	defaultShortPrefix = "-"
)

// Parser holds the argument-set definition plus every parsing knob. All
// configuration is explicit; there is no ambient global state. A Parser is
// safe for concurrent Parse calls once its schema has been built, since each
// call works on its own session.
type Parser struct {
	mode                ParsingMode
	prefixes            []rune
	longPrefix          string
	shortPrefix         string
	valueSeparators     []rune
	whitespaceSeparator bool
	caseSensitive       bool
	prefixMatching      bool
	numericDetection    bool
	preferNumeric       bool
	duplicatePolicy     DuplicatePolicy
	culture             conversion.Culture
	nameConverter       NameConversionFunc
	converters          *conversion.Registry
	provider            i18n.MessageProvider

	setName    string
	parameters []*Descriptor
	members    []*Descriptor
	extraCtors [][]*Descriptor
	schema     *Schema

	stdout io.Writer
	stderr io.Writer
}
