package errs

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelMatching(t *testing.T) {
	err := ErrUnknownArgument.WithArgs("bogus").ForArgument("bogus")

	assert.ErrorIs(t, err, ErrUnknownArgument)
	assert.NotErrorIs(t, err, ErrUnknownCommand)
}

func TestDerivedCopiesLeaveSentinelUntouched(t *testing.T) {
	derived := ErrConversion.WithArgs("x", "Port").ForArgument("Port").Wrap(io.EOF)

	assert.Empty(t, ErrConversion.Argument())
	assert.Empty(t, ErrConversion.Args())
	assert.NoError(t, ErrConversion.Unwrap())

	assert.Equal(t, "Port", derived.Argument())
	assert.Equal(t, []interface{}{"x", "Port"}, derived.Args())
	assert.ErrorIs(t, derived, io.EOF)
}

func TestErrorMessageFormatting(t *testing.T) {
	err := ErrConversion.WithArgs("eighty", "Port")

	msg := err.Error()
	assert.Contains(t, msg, "eighty")
	assert.Contains(t, msg, "Port")
}

func TestWrappedErrorAppearsInMessage(t *testing.T) {
	inner := errors.New("strconv failed")
	err := ErrConversion.WithArgs("x", "Port").Wrap(inner)

	assert.Contains(t, err.Error(), "strconv failed")
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryConversion, CategoryOf(ErrConversion))
	assert.Equal(t, CategorySchema, CategoryOf(ErrSchemaEmptyName))
	assert.Equal(t, CategoryDependency, CategoryOf(ErrRequires))
	assert.Equal(t, CategoryNone, CategoryOf(io.EOF))
	assert.Equal(t, CategoryNone, CategoryOf(nil))
}

func TestArgumentOf(t *testing.T) {
	assert.Equal(t, "Port", ArgumentOf(ErrDuplicateArgument.ForArgument("Port")))
	assert.Empty(t, ArgumentOf(io.EOF))
}

func TestCustomProviderOverridesMessage(t *testing.T) {
	provider := providerFunc(func(key string) string {
		if key == ErrCancelledKey {
			return "abgebrochen durch %s"
		}
		return key
	})

	err := ErrCancelled.WithArgs("Help").WithProvider(provider)
	assert.Equal(t, "abgebrochen durch Help", err.Error())
}

func TestMissingMessageFallsBackToKey(t *testing.T) {
	pe := New(CategoryValidation, "cmdline.error.nonexistent_key")
	require.NotNil(t, pe)
	assert.Contains(t, pe.Error(), "nonexistent_key")
}

type providerFunc func(key string) string

func (f providerFunc) GetMessage(key string) string {
	return f(key)
}
