package cmdline

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdane/cmdline/errs"
)

func newTestCommandSet(t *testing.T, configs ...ConfigureCommandSetFunc) (*CommandSet, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	configs = append(configs, WithCommandOutput(stdout, stderr))
	cs, err := NewCommandSet(configs...)
	require.NoError(t, err)
	return cs, stdout, stderr
}

func TestCommandResolution(t *testing.T) {
	cs, _, _ := newTestCommandSet(t)
	require.NoError(t, cs.AddCommand(&Command{Name: "copy", Aliases: []string{"cp"}}))
	require.NoError(t, cs.AddCommand(&Command{Name: "move"}))

	c, err := cs.Resolve("copy")
	require.NoError(t, err)
	assert.Equal(t, "copy", c.Name)

	c, err = cs.Resolve("CP")
	require.NoError(t, err)
	assert.Equal(t, "copy", c.Name)

	_, err = cs.Resolve("delete")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnknownCommand)
}

func TestCommandCaseSensitiveResolution(t *testing.T) {
	cs, _, _ := newTestCommandSet(t, SetCommandCaseSensitive(true))
	require.NoError(t, cs.AddCommand(&Command{Name: "copy"}))

	_, err := cs.Resolve("Copy")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnknownCommand)
}

func TestCommandPrefixResolution(t *testing.T) {
	cs, _, _ := newTestCommandSet(t, SetCommandPrefixMatching(true))
	require.NoError(t, cs.AddCommand(&Command{Name: "copy"}))
	require.NoError(t, cs.AddCommand(&Command{Name: "commit"}))
	require.NoError(t, cs.AddCommand(&Command{Name: "move"}))

	c, err := cs.Resolve("mo")
	require.NoError(t, err)
	assert.Equal(t, "move", c.Name)

	// "co" matches both copy and commit
	_, err = cs.Resolve("co")
	require.Error(t, err)
}

func TestCommandNameCollisions(t *testing.T) {
	cs, _, _ := newTestCommandSet(t)
	require.NoError(t, cs.AddCommand(&Command{Name: "copy"}))

	err := cs.AddCommand(&Command{Name: "COPY"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSchemaDuplicateName)

	err = cs.AddCommand(&Command{Name: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrSchemaEmptyName)
}

func TestHiddenCommandsAreFiltered(t *testing.T) {
	cs, _, _ := newTestCommandSet(t, WithCommandFilter(func(c *Command) bool { return !c.Hidden }))
	require.NoError(t, cs.AddCommand(&Command{Name: "copy"}))
	require.NoError(t, cs.AddCommand(&Command{Name: "debug", Hidden: true}))

	assert.Len(t, cs.Commands(), 1)

	_, err := cs.Resolve("debug")
	require.Error(t, err)
}

func TestCommandRunExecutesWithParsedArguments(t *testing.T) {
	cs, _, _ := newTestCommandSet(t)

	var gotSource string
	var gotForce bool
	require.NoError(t, cs.AddCommand(&Command{
		Name:       "copy",
		Parameters: []*Descriptor{NewArg(WithName("Source"), WithKind(KindString))},
		Arguments:  []*Descriptor{NewArg(WithName("Force"), AsSwitch())},
		Execute: func(result *Result) error {
			gotSource = result.GetString("Source")
			gotForce = result.GetBool("Force")
			return nil
		},
	}))

	code := cs.Run([]string{"copy", "in.txt", "-Force"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "in.txt", gotSource)
	assert.True(t, gotForce)
}

func TestCommandRunExitCodes(t *testing.T) {
	cs, _, stderr := newTestCommandSet(t)
	require.NoError(t, cs.AddCommand(&Command{
		Name:    "fail",
		Execute: func(*Result) error { return errors.New("boom") },
	}))
	require.NoError(t, cs.AddCommand(&Command{
		Name:       "strict",
		Parameters: []*Descriptor{NewArg(WithName("Input"), WithKind(KindString))},
	}))

	assert.Equal(t, 1, cs.Run([]string{"unknown"}))
	assert.Contains(t, stderr.String(), "unknown")

	assert.Equal(t, 2, cs.Run([]string{"fail"}))
	assert.Contains(t, stderr.String(), "boom")

	// missing required parameter is a parse failure
	assert.Equal(t, 1, cs.Run([]string{"strict"}))

	assert.Equal(t, 1, cs.Run(nil))
}

func TestCommandRunString(t *testing.T) {
	cs, _, _ := newTestCommandSet(t)

	var got string
	require.NoError(t, cs.AddCommand(&Command{
		Name:       "echo",
		Parameters: []*Descriptor{NewArg(WithName("Text"), WithKind(KindString))},
		Execute: func(result *Result) error {
			got = result.GetString("Text")
			return nil
		},
	}))

	code := cs.RunString(`echo "hello world"`)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello world", got)
}

func TestCommandListing(t *testing.T) {
	cs, _, stderr := newTestCommandSet(t, WithCommandSetName("tool"))
	require.NoError(t, cs.AddCommand(&Command{Name: "copy", Description: "Copies a file."}))
	require.NoError(t, cs.AddCommand(&Command{Name: "move", Description: "Moves a file."}))

	cs.Run(nil)
	out := stderr.String()
	assert.Contains(t, out, "copy")
	assert.Contains(t, out, "move")
	assert.Contains(t, out, "tool")
}
