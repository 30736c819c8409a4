package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStartsBeforeFirstToken(t *testing.T) {
	s := NewState([]string{"a", "b"})

	assert.Equal(t, -1, s.Pos())
	assert.Equal(t, "", s.CurrentArg())
	assert.Equal(t, "a", s.Peek())

	assert.True(t, s.Advance())
	assert.Equal(t, 0, s.Pos())
	assert.Equal(t, "a", s.CurrentArg())
}

func TestStateNavigation(t *testing.T) {
	s := NewState([]string{"a", "b", "c"})

	assert.Equal(t, 3, s.Len())

	assert.True(t, s.Advance())
	assert.Equal(t, "a", s.CurrentArg())
	assert.Equal(t, "b", s.Peek())

	assert.True(t, s.Advance())
	assert.True(t, s.Advance())
	assert.False(t, s.Advance())
	assert.Equal(t, "c", s.CurrentArg())
	assert.Equal(t, "", s.Peek())
}

func TestStateAdvanceStopsAtEnd(t *testing.T) {
	s := NewState([]string{"a"})
	assert.True(t, s.Advance())
	assert.False(t, s.Advance())
	assert.Equal(t, 0, s.Pos())
	assert.Equal(t, "a", s.CurrentArg())
}

func TestStateRemaining(t *testing.T) {
	s := NewState([]string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, s.Remaining())

	s.Advance()
	assert.Equal(t, []string{"b", "c"}, s.Remaining())

	s.Advance()
	s.Advance()
	assert.Nil(t, s.Remaining())
}

func TestSplitRespectsQuoting(t *testing.T) {
	args, err := Split(`-Name "John Smith" -v`)
	require.NoError(t, err)
	assert.Equal(t, []string{"-Name", "John Smith", "-v"}, args)
}

func TestSplitUnbalancedQuote(t *testing.T) {
	_, err := Split(`-Name "John`)
	assert.Error(t, err)
}
