package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdane/cmdline/errs"
)

func newLongShortParser(t *testing.T, configs ...ConfigureParserFunc) *Parser {
	t.Helper()
	p := newTestParser(t, append([]ConfigureParserFunc{WithMode(ModeLongShort)}, configs...)...)
	p.AddArguments(
		NewArg(WithName("port"), WithKind(KindInt), WithShort('p')),
		NewArg(WithName("verbose"), AsSwitch(), WithShort('v')),
		NewArg(WithName("quiet"), AsSwitch(), WithShort('q')),
		NewArg(WithName("output"), WithKind(KindString), WithShort('o')),
	)
	return p
}

func TestLongNameWithInlineValue(t *testing.T) {
	p := newLongShortParser(t)

	result, err := p.Parse([]string{"--port=8080"})
	require.NoError(t, err)
	assert.Equal(t, int64(8080), result.GetInt("port"))
}

func TestLongNameWithSeparateValue(t *testing.T) {
	p := newLongShortParser(t)

	result, err := p.Parse([]string{"--port", "8080", "--verbose"})
	require.NoError(t, err)
	assert.Equal(t, int64(8080), result.GetInt("port"))
	assert.True(t, result.GetBool("verbose"))
}

func TestShortNameForms(t *testing.T) {
	p := newLongShortParser(t)

	// separate token
	result, err := p.Parse([]string{"-p", "8080"})
	require.NoError(t, err)
	assert.Equal(t, int64(8080), result.GetInt("port"))

	// attached value
	result, err = p.Parse([]string{"-p8080"})
	require.NoError(t, err)
	assert.Equal(t, int64(8080), result.GetInt("port"))

	// separator value
	result, err = p.Parse([]string{"-p=8080"})
	require.NoError(t, err)
	assert.Equal(t, int64(8080), result.GetInt("port"))
}

func TestCombinedShortSwitches(t *testing.T) {
	p := newLongShortParser(t)

	result, err := p.Parse([]string{"-vq"})
	require.NoError(t, err)
	assert.True(t, result.GetBool("verbose"))
	assert.True(t, result.GetBool("quiet"))
	assert.False(t, result.Supplied("port"))
}

func TestCombinedShortsWithTrailingValueArgument(t *testing.T) {
	p := newLongShortParser(t)

	result, err := p.Parse([]string{"-vp", "8080"})
	require.NoError(t, err)
	assert.True(t, result.GetBool("verbose"))
	assert.Equal(t, int64(8080), result.GetInt("port"))
}

func TestCombinedShortsRejectNonSwitchInMiddle(t *testing.T) {
	p := newLongShortParser(t)

	// o takes a value but q follows it in the same run
	_, err := p.Parse([]string{"-oq"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCombinedShortNotSwitch)
}

func TestLongPrefixAloneTerminatesNamedParsing(t *testing.T) {
	p := newLongShortParser(t)
	p.AddArgument(NewArg(WithName("file"), WithKind(KindString), WithPosition(0)))

	result, err := p.Parse([]string{"--", "--port"})
	require.NoError(t, err)
	assert.Equal(t, "--port", result.GetString("file"))
	assert.False(t, result.Supplied("port"))
}

func TestLongShortUnknownNames(t *testing.T) {
	p := newLongShortParser(t)

	_, err := p.Parse([]string{"--bogus"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnknownArgument)

	_, err = p.Parse([]string{"-x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnknownArgument)
}

func TestLongShortNegativeNumberPositional(t *testing.T) {
	p := newLongShortParser(t)
	p.AddArgument(NewArg(WithName("offset"), WithKind(KindInt), WithPosition(0)))

	result, err := p.Parse([]string{"-42"})
	require.NoError(t, err)
	assert.Equal(t, int64(-42), result.GetInt("offset"))
}

func TestLongShortPrefixMatching(t *testing.T) {
	p := newLongShortParser(t, SetPrefixMatching(true))

	result, err := p.Parse([]string{"--po", "8080"})
	require.NoError(t, err)
	assert.Equal(t, int64(8080), result.GetInt("port"))

	_, err = p.Parse([]string{"--q"})
	require.NoError(t, err)
}

func TestCustomLongShortPrefixes(t *testing.T) {
	p := newTestParser(t, WithMode(ModeLongShort), WithLongShortPrefixes("++", "+"))
	p.AddArguments(
		NewArg(WithName("port"), WithKind(KindInt), WithShort('p')),
		NewArg(WithName("verbose"), AsSwitch(), WithShort('v')),
	)

	result, err := p.Parse([]string{"++port=1", "+v"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.GetInt("port"))
	assert.True(t, result.GetBool("verbose"))

	// the default prefixes are not recognized once replaced
	_, err = p.Parse([]string{"--port=1"})
	require.Error(t, err)
}
