package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdane/cmdline/errs"
)

func TestBuildIsIdempotent(t *testing.T) {
	p := newTestParser(t)
	p.AddArgument(NewArg(WithName("Port"), WithKind(KindInt)))

	first, err := p.Build()
	require.NoError(t, err)
	second, err := p.Build()
	require.NoError(t, err)
	assert.Same(t, first, second)

	// adding a declaration invalidates the built schema
	p.AddArgument(NewArg(WithName("Host"), WithKind(KindString)))
	third, err := p.Build()
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestSchemaOrdering(t *testing.T) {
	p := newTestParser(t)
	p.AddParameter(NewArg(WithName("Input"), WithKind(KindString)))
	p.AddArguments(
		NewArg(WithName("Mode"), WithKind(KindString)),
		NewArg(WithName("Second"), WithKind(KindString), WithPosition(1)),
		NewArg(WithName("First"), WithKind(KindString), WithPosition(0)),
	)

	schema, err := p.Build()
	require.NoError(t, err)

	var names []string
	for _, d := range schema.Descriptors() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Input", "First", "Second", "Mode"}, names)

	var positional []string
	for _, d := range schema.Positional() {
		positional = append(positional, d.Name)
	}
	assert.Equal(t, []string{"Input", "First", "Second"}, positional)
}

func TestConstructorParametersAreRequired(t *testing.T) {
	p := newTestParser(t)
	p.AddParameter(NewArg(WithName("Input"), WithKind(KindString)))

	schema, err := p.Build()
	require.NoError(t, err)

	d, ok := schema.Get("Input")
	require.True(t, ok)
	assert.True(t, d.Required)
}

func TestSchemaRejectsEmptyName(t *testing.T) {
	p := newTestParser(t)
	p.AddArgument(NewArg(WithKind(KindString)))

	_, err := p.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSchemaEmptyName)
	assert.Equal(t, errs.CategorySchema, errs.CategoryOf(err))
}

func TestSchemaRejectsDuplicateNames(t *testing.T) {
	p := newTestParser(t)
	p.AddArguments(
		NewArg(WithName("Port"), WithKind(KindInt)),
		NewArg(WithName("port"), WithKind(KindInt)),
	)

	_, err := p.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSchemaDuplicateName)
}

func TestSchemaAllowsSameNameWhenCaseSensitive(t *testing.T) {
	p := newTestParser(t, SetCaseSensitive(true))
	p.AddArguments(
		NewArg(WithName("Port"), WithKind(KindInt)),
		NewArg(WithName("port"), WithKind(KindInt)),
	)

	_, err := p.Build()
	require.NoError(t, err)
}

func TestSchemaRejectsAliasCollision(t *testing.T) {
	p := newTestParser(t)
	p.AddArguments(
		NewArg(WithName("Port"), WithKind(KindInt)),
		NewArg(WithName("Endpoint"), WithKind(KindString), WithAliases("PORT")),
	)

	_, err := p.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSchemaDuplicateName)
}

func TestSchemaRejectsDuplicateShorts(t *testing.T) {
	p := newTestParser(t)
	p.AddArguments(
		NewArg(WithName("Port"), WithKind(KindInt), WithShort('p')),
		NewArg(WithName("Path"), WithKind(KindString), WithShort('p')),
	)

	_, err := p.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSchemaDuplicateShort)
}

func TestSchemaRejectsDuplicatePositions(t *testing.T) {
	p := newTestParser(t)
	p.AddArguments(
		NewArg(WithName("A"), WithKind(KindString), WithPosition(0)),
		NewArg(WithName("B"), WithKind(KindString), WithPosition(0)),
	)

	_, err := p.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSchemaDuplicatePosition)
}

func TestSchemaRejectsMultiValuePositionalNotLast(t *testing.T) {
	p := newTestParser(t)
	p.AddArguments(
		NewArg(WithName("Files"), WithKind(KindString), WithPosition(0), SetMultiValue(true)),
		NewArg(WithName("Target"), WithKind(KindString), WithPosition(1)),
	)

	_, err := p.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSchemaMultiValueNotLast)
}

func TestSchemaRejectsRequiredAfterOptionalPositional(t *testing.T) {
	p := newTestParser(t)
	p.AddArguments(
		NewArg(WithName("Optional"), WithKind(KindString), WithPosition(0)),
		NewArg(WithName("Needed"), WithKind(KindString), WithPosition(1), SetRequired(true)),
	)

	_, err := p.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSchemaRequiredAfterOptional)
}

func TestSchemaRejectsNonBoolSwitch(t *testing.T) {
	p := newTestParser(t)
	p.AddArgument(&Descriptor{Name: "Broken", Switch: true, Kind: KindInt})

	_, err := p.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSchemaSwitchNotBool)
}

func TestSchemaRejectsAmbiguousConstructors(t *testing.T) {
	src := SourceFunc(func() Description {
		return Description{
			Name:       "ambiguous",
			Parameters: []*Descriptor{NewArg(WithName("A"), WithKind(KindString))},
			ExtraConstructors: [][]*Descriptor{
				{NewArg(WithName("B"), WithKind(KindString))},
			},
		}
	})

	_, err := NewParserFromSource(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSchemaAmbiguousConstructor)
}

func TestSchemaCacheSharedAcrossParsers(t *testing.T) {
	src := SourceFunc(func() Description {
		return Description{
			Name: "cached-set",
			Members: []*Descriptor{
				NewArg(WithName("Port"), WithKind(KindInt)),
			},
		}
	})

	p1, err := NewParserFromSource(src)
	require.NoError(t, err)
	p2, err := NewParserFromSource(src)
	require.NoError(t, err)

	s1, err := p1.Schema()
	require.NoError(t, err)
	s2, err := p2.Schema()
	require.NoError(t, err)
	assert.Same(t, s1, s2)
}

func TestNameConverterAppliedAtBuild(t *testing.T) {
	p := newTestParser(t, WithNameConverter(ToKebabCase))
	p.AddArgument(NewArg(WithName("MaxRetryCount"), WithKind(KindInt)))

	schema, err := p.Build()
	require.NoError(t, err)

	_, ok := schema.Get("max-retry-count")
	assert.True(t, ok)

	result, err := p.Parse([]string{"-max-retry-count", "3"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.GetInt("max-retry-count"))
}

func TestNameConverterLeavesDeclarationIntact(t *testing.T) {
	p := newTestParser(t, WithNameConverter(ToKebabCase))
	d := NewArg(WithName("MaxRetryCount"), WithKind(KindInt))
	p.AddArgument(d)

	_, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, "MaxRetryCount", d.Name)

	// a rebuild converts from the declared name again, not from the
	// already-converted one
	p.SetName("renamed")
	schema, err := p.Build()
	require.NoError(t, err)
	_, ok := schema.Get("max-retry-count")
	assert.True(t, ok)
}

func TestSchemaCacheDistinguishesNameConverters(t *testing.T) {
	src := SourceFunc(func() Description {
		return Description{
			Name: "converter-set",
			Members: []*Descriptor{
				NewArg(WithName("MaxRetryCount"), WithKind(KindInt)),
			},
		}
	})

	p1, err := NewParserFromSource(src)
	require.NoError(t, err)
	p2, err := NewParserFromSource(src, WithNameConverter(ToKebabCase))
	require.NoError(t, err)

	s1, err := p1.Schema()
	require.NoError(t, err)
	s2, err := p2.Schema()
	require.NoError(t, err)
	assert.NotSame(t, s1, s2)

	_, ok := s1.Get("MaxRetryCount")
	assert.True(t, ok)
	_, ok = s2.Get("max-retry-count")
	assert.True(t, ok)
}

func TestDescriptorIdentityStable(t *testing.T) {
	d := NewArg(WithName("Port"), WithKind(KindInt))
	assert.NotEmpty(t, d.ID())
	assert.Equal(t, d.ID(), d.ID())

	other := NewArg(WithName("Port"), WithKind(KindInt))
	assert.NotEqual(t, d.ID(), other.ID())
}
