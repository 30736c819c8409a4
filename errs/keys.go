// Package errs defines the parser's structured error taxonomy. Every failure
// surfaced by the library is a *ParseError carrying a Category, the owning
// argument's name when one applies, and a translation key resolved through an
// i18n.MessageProvider.
package errs

const (
	prefixKey = "cmdline"

	// ErrorPrefixKey prefixes all error translation keys
	ErrorPrefixKey = prefixKey + ".error"
	// WarningPrefixKey prefixes all warning translation keys
	WarningPrefixKey = prefixKey + ".warning"
)

// Top-level error keys
const (
	ErrUnknownArgumentKey        = ErrorPrefixKey + ".unknown_argument"
	ErrAmbiguousArgumentKey      = ErrorPrefixKey + ".ambiguous_argument"
	ErrUnknownCommandKey         = ErrorPrefixKey + ".unknown_command"
	ErrMissingNamedValueKey      = ErrorPrefixKey + ".missing_named_value"
	ErrDuplicateArgumentKey      = ErrorPrefixKey + ".duplicate_argument"
	ErrTooManyArgumentsKey       = ErrorPrefixKey + ".too_many_arguments"
	ErrMissingRequiredKey        = ErrorPrefixKey + ".missing_required"
	ErrConversionKey             = ErrorPrefixKey + ".conversion"
	ErrValidationFailedKey       = ErrorPrefixKey + ".validation_failed"
	ErrDependencyFailedKey       = ErrorPrefixKey + ".dependency_failed"
	ErrCancelledKey              = ErrorPrefixKey + ".cancelled"
	ErrCombinedShortNotSwitchKey = ErrorPrefixKey + ".combined_short_not_switch"
)

// Schema construction error keys
const (
	ErrSchemaEmptyNameKey             = ErrorPrefixKey + ".schema.empty_name"
	ErrSchemaDuplicateNameKey         = ErrorPrefixKey + ".schema.duplicate_name"
	ErrSchemaDuplicateShortKey        = ErrorPrefixKey + ".schema.duplicate_short"
	ErrSchemaDuplicatePositionKey     = ErrorPrefixKey + ".schema.duplicate_position"
	ErrSchemaMultiValueNotLastKey     = ErrorPrefixKey + ".schema.multivalue_not_last"
	ErrSchemaRequiredAfterOptionalKey = ErrorPrefixKey + ".schema.required_after_optional"
	ErrSchemaAmbiguousConstructorKey  = ErrorPrefixKey + ".schema.ambiguous_constructor"
	ErrSchemaSwitchNotBoolKey         = ErrorPrefixKey + ".schema.switch_not_bool"
	ErrSchemaInvalidDefaultKey        = ErrorPrefixKey + ".schema.invalid_default"
)

// Conversion error keys
const (
	ErrParseIntKey               = ErrorPrefixKey + ".parse.int"
	ErrParseUintKey              = ErrorPrefixKey + ".parse.uint"
	ErrParseFloatKey             = ErrorPrefixKey + ".parse.float"
	ErrParseBoolKey              = ErrorPrefixKey + ".parse.bool"
	ErrParseTimeKey              = ErrorPrefixKey + ".parse.time"
	ErrParseDurationKey          = ErrorPrefixKey + ".parse.duration"
	ErrParseEnumKey              = ErrorPrefixKey + ".parse.enum"
	ErrUnsupportedConversionKey  = ErrorPrefixKey + ".parse.unsupported"
)

// Validation error keys
const (
	ErrEmptyValueKey      = ErrorPrefixKey + ".validation.empty"
	ErrWhitespaceValueKey = ErrorPrefixKey + ".validation.whitespace"
	ErrPatternMismatchKey = ErrorPrefixKey + ".validation.pattern"
	ErrTooShortKey        = ErrorPrefixKey + ".validation.too_short"
	ErrTooLongKey         = ErrorPrefixKey + ".validation.too_long"
	ErrOutOfRangeKey      = ErrorPrefixKey + ".validation.out_of_range"
	ErrNotInSetKey        = ErrorPrefixKey + ".validation.not_in_set"
	ErrCountOutOfRangeKey = ErrorPrefixKey + ".validation.count"
	ErrAllChecksFailedKey = ErrorPrefixKey + ".validation.combined"
)

// Cross-argument dependency error keys
const (
	ErrRequiresKey    = ErrorPrefixKey + ".dependency.requires"
	ErrProhibitsKey   = ErrorPrefixKey + ".dependency.prohibits"
	ErrRequiresAnyKey = ErrorPrefixKey + ".dependency.requires_any"
)

// Warning keys
const (
	WarnDuplicateKey = WarningPrefixKey + ".duplicate"
)
