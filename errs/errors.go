package errs

import (
	"errors"
	"fmt"

	"github.com/verdane/cmdline/i18n"
)

// Category classifies a parse failure. It is the stable, language-independent
// part of a ParseError; message wording can change, categories cannot.
type Category int

const (
	CategoryNone Category = iota
	// CategoryUnknownArgument - a named token resolved to no descriptor or no unambiguous prefix
	CategoryUnknownArgument
	// CategoryUnknownCommand - the first positional token named no registered command
	CategoryUnknownCommand
	// CategoryMissingNamedValue - a named, non-switch argument had no value token
	CategoryMissingNamedValue
	// CategoryDuplicateArgument - a non-multi-value argument was supplied twice under DuplicateError policy
	CategoryDuplicateArgument
	// CategoryTooManyArguments - positional capacity was exceeded
	CategoryTooManyArguments
	// CategoryMissingRequired - one or more required arguments had no value at end of stream
	CategoryMissingRequired
	// CategoryConversion - a raw string could not be converted to the target type
	CategoryConversion
	// CategoryValidation - a registered validator rejected a value
	CategoryValidation
	// CategoryDependency - a cross-argument validator rejected the final state
	CategoryDependency
	// CategorySchema - the argument-set definition itself is invalid
	CategorySchema
	// CategoryCancelled - a cancel-on-match argument aborted the parse with failure
	CategoryCancelled
)

// String returns the string representation of a Category
func (c Category) String() string {
	switch c {
	case CategoryUnknownArgument:
		return "unknown argument"
	case CategoryUnknownCommand:
		return "unknown command"
	case CategoryMissingNamedValue:
		return "missing argument value"
	case CategoryDuplicateArgument:
		return "duplicate argument"
	case CategoryTooManyArguments:
		return "too many arguments"
	case CategoryMissingRequired:
		return "missing required argument"
	case CategoryConversion:
		return "value conversion"
	case CategoryValidation:
		return "validation failed"
	case CategoryDependency:
		return "dependency failed"
	case CategorySchema:
		return "invalid schema"
	case CategoryCancelled:
		return "cancelled"
	}
	return "none"
}

// ParseError is the single error shape surfaced by the parser: a category, the
// owning argument's name when one applies, and a translatable message.
// Sentinels declared in this package support errors.Is; WithArgs, ForArgument
// and Wrap return copies so sentinels stay immutable.
type ParseError struct {
	sentinel error
	category Category
	argument string
	key      string
	args     []interface{}
	wrapped  error
	provider i18n.MessageProvider
}

// New creates a sentinel ParseError for a category and translation key
func New(category Category, key string) *ParseError {
	return &ParseError{
		sentinel: errors.New(key),
		category: category,
		key:      key,
	}
}

// Error returns the resolved message, formatted with args when present
func (e *ParseError) Error() string {
	provider := e.provider
	if provider == nil {
		provider = i18n.DefaultProvider()
	}

	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// Category returns the error's category
func (e *ParseError) Category() Category {
	return e.category
}

// Argument returns the owning argument's name, or "" when none applies
func (e *ParseError) Argument() string {
	return e.argument
}

// Key returns the translation key
func (e *ParseError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *ParseError) Args() []interface{} {
	return e.args
}

// WithArgs returns a copy of the error with format arguments
func (e *ParseError) WithArgs(args ...interface{}) *ParseError {
	c := *e
	c.args = args
	return &c
}

// ForArgument returns a copy of the error bound to an argument name
func (e *ParseError) ForArgument(name string) *ParseError {
	c := *e
	c.argument = name
	return &c
}

// Wrap returns a copy of the error wrapping another error
func (e *ParseError) Wrap(err error) *ParseError {
	c := *e
	c.wrapped = err
	return &c
}

// WithProvider returns a copy of the error resolving messages through provider
func (e *ParseError) WithProvider(provider i18n.MessageProvider) *ParseError {
	c := *e
	c.provider = provider
	return &c
}

// Unwrap returns the wrapped error
func (e *ParseError) Unwrap() error {
	return e.wrapped
}

// Is matches against the sentinel the error was derived from
func (e *ParseError) Is(target error) bool {
	if t, ok := target.(*ParseError); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel
}

// CategoryOf extracts the Category from err, or CategoryNone when err is not a
// ParseError.
func CategoryOf(err error) Category {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.category
	}
	return CategoryNone
}

// ArgumentOf extracts the owning argument name from err, or "" when err is not
// a ParseError or carries no argument.
func ArgumentOf(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.argument
	}
	return ""
}

// Core parse errors
var (
	ErrUnknownArgument        = New(CategoryUnknownArgument, ErrUnknownArgumentKey)
	ErrAmbiguousArgument      = New(CategoryUnknownArgument, ErrAmbiguousArgumentKey)
	ErrUnknownCommand         = New(CategoryUnknownCommand, ErrUnknownCommandKey)
	ErrMissingNamedValue      = New(CategoryMissingNamedValue, ErrMissingNamedValueKey)
	ErrDuplicateArgument      = New(CategoryDuplicateArgument, ErrDuplicateArgumentKey)
	ErrTooManyArguments       = New(CategoryTooManyArguments, ErrTooManyArgumentsKey)
	ErrMissingRequired        = New(CategoryMissingRequired, ErrMissingRequiredKey)
	ErrConversion             = New(CategoryConversion, ErrConversionKey)
	ErrValidationFailed       = New(CategoryValidation, ErrValidationFailedKey)
	ErrDependencyFailed       = New(CategoryDependency, ErrDependencyFailedKey)
	ErrCancelled              = New(CategoryCancelled, ErrCancelledKey)
	ErrCombinedShortNotSwitch = New(CategoryUnknownArgument, ErrCombinedShortNotSwitchKey)
)

// Schema construction errors
var (
	ErrSchemaEmptyName             = New(CategorySchema, ErrSchemaEmptyNameKey)
	ErrSchemaDuplicateName         = New(CategorySchema, ErrSchemaDuplicateNameKey)
	ErrSchemaDuplicateShort        = New(CategorySchema, ErrSchemaDuplicateShortKey)
	ErrSchemaDuplicatePosition     = New(CategorySchema, ErrSchemaDuplicatePositionKey)
	ErrSchemaMultiValueNotLast     = New(CategorySchema, ErrSchemaMultiValueNotLastKey)
	ErrSchemaRequiredAfterOptional = New(CategorySchema, ErrSchemaRequiredAfterOptionalKey)
	ErrSchemaAmbiguousConstructor  = New(CategorySchema, ErrSchemaAmbiguousConstructorKey)
	ErrSchemaSwitchNotBool         = New(CategorySchema, ErrSchemaSwitchNotBoolKey)
	ErrSchemaInvalidDefault        = New(CategorySchema, ErrSchemaInvalidDefaultKey)
)

// Conversion errors
var (
	ErrParseInt              = New(CategoryConversion, ErrParseIntKey)
	ErrParseUint             = New(CategoryConversion, ErrParseUintKey)
	ErrParseFloat            = New(CategoryConversion, ErrParseFloatKey)
	ErrParseBool             = New(CategoryConversion, ErrParseBoolKey)
	ErrParseTime             = New(CategoryConversion, ErrParseTimeKey)
	ErrParseDuration         = New(CategoryConversion, ErrParseDurationKey)
	ErrParseEnum             = New(CategoryConversion, ErrParseEnumKey)
	ErrUnsupportedConversion = New(CategoryConversion, ErrUnsupportedConversionKey)
)

// Validation errors
var (
	ErrEmptyValue      = New(CategoryValidation, ErrEmptyValueKey)
	ErrWhitespaceValue = New(CategoryValidation, ErrWhitespaceValueKey)
	ErrPatternMismatch = New(CategoryValidation, ErrPatternMismatchKey)
	ErrTooShort        = New(CategoryValidation, ErrTooShortKey)
	ErrTooLong         = New(CategoryValidation, ErrTooLongKey)
	ErrOutOfRange      = New(CategoryValidation, ErrOutOfRangeKey)
	ErrNotInSet        = New(CategoryValidation, ErrNotInSetKey)
	ErrCountOutOfRange = New(CategoryValidation, ErrCountOutOfRangeKey)
	ErrAllChecksFailed = New(CategoryValidation, ErrAllChecksFailedKey)
)

// Cross-argument dependency errors
var (
	ErrRequires    = New(CategoryDependency, ErrRequiresKey)
	ErrProhibits   = New(CategoryDependency, ErrProhibitsKey)
	ErrRequiresAny = New(CategoryDependency, ErrRequiresAnyKey)
)
