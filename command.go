package cmdline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/verdane/cmdline/conversion"
	"github.com/verdane/cmdline/errs"
	"github.com/verdane/cmdline/parse"
	"github.com/verdane/cmdline/types/orderedmap"
)

// Command couples a subcommand name with its own argument set and the action
// to run once that set has been parsed.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	// Hidden commands resolve normally but stay out of listings
	Hidden bool
	// Parameters and Arguments define the command's own argument set
	Parameters []*Descriptor
	Arguments  []*Descriptor
	// Execute runs after the command's arguments parsed successfully
	Execute func(result *Result) error
}

func (c *Command) names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// CommandSet resolves the first token of a command line to a registered
// command and parses the rest with that command's own parser. Resolution
// honors the same case-sensitivity and prefix-matching rules as argument
// names.
type CommandSet struct {
	name          string
	commands      *orderedmap.OrderedMap[string, *Command]
	lookup        map[string]string
	caseSensitive bool
	prefixMatch   bool
	culture       conversion.Culture
	filter        func(*Command) bool
	parserConfigs []ConfigureParserFunc
	stdout        io.Writer
	stderr        io.Writer
}

// NewCommandSet returns an empty, case-insensitive command set
func NewCommandSet(configs ...ConfigureCommandSetFunc) (*CommandSet, error) {
	cs := &CommandSet{
		commands: orderedmap.NewOrderedMap[string, *Command](),
		lookup:   map[string]string{},
		culture:  conversion.Invariant(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	var err error
	for _, config := range configs {
		config(cs, &err)
		if err != nil {
			return nil, err
		}
	}
	return cs, nil
}

// WithCommandSetName names the set for usage output
func WithCommandSetName(name string) ConfigureCommandSetFunc {
	return func(cs *CommandSet, _ *error) {
		cs.name = name
	}
}

// SetCommandCaseSensitive switches command-name matching to exact case
func SetCommandCaseSensitive(sensitive bool) ConfigureCommandSetFunc {
	return func(cs *CommandSet, _ *error) {
		cs.caseSensitive = sensitive
	}
}

// SetCommandPrefixMatching allows an unambiguous prefix to select a command
func SetCommandPrefixMatching(enabled bool) ConfigureCommandSetFunc {
	return func(cs *CommandSet, _ *error) {
		cs.prefixMatch = enabled
	}
}

// WithCommandFilter limits which registered commands are resolvable and
// listed
func WithCommandFilter(filter func(*Command) bool) ConfigureCommandSetFunc {
	return func(cs *CommandSet, _ *error) {
		cs.filter = filter
	}
}

// WithCommandParserConfig applies parser options to every command's parser
func WithCommandParserConfig(configs ...ConfigureParserFunc) ConfigureCommandSetFunc {
	return func(cs *CommandSet, _ *error) {
		cs.parserConfigs = append(cs.parserConfigs, configs...)
	}
}

// WithCommandOutput redirects the set's usage and error writers
func WithCommandOutput(stdout, stderr io.Writer) ConfigureCommandSetFunc {
	return func(cs *CommandSet, _ *error) {
		cs.stdout = stdout
		cs.stderr = stderr
	}
}

func (cs *CommandSet) fold(s string) string {
	if cs.caseSensitive {
		return s
	}
	return cs.culture.Fold(s)
}

// AddCommand registers a command. Name and alias collisions fail.
func (cs *CommandSet) AddCommand(c *Command) error {
	if strings.TrimSpace(c.Name) == "" {
		return errs.ErrSchemaEmptyName
	}
	for _, n := range c.names() {
		if _, exists := cs.lookup[cs.fold(n)]; exists {
			return errs.ErrSchemaDuplicateName.WithArgs(n)
		}
	}
	for _, n := range c.names() {
		cs.lookup[cs.fold(n)] = c.Name
	}
	cs.commands.Set(c.Name, c)
	return nil
}

// Commands returns the visible commands in registration order
func (cs *CommandSet) Commands() []*Command {
	var out []*Command
	for p := cs.commands.Front(); p != nil; p = p.Next() {
		if cs.visible(p.Value) {
			out = append(out, p.Value)
		}
	}
	return out
}

func (cs *CommandSet) visible(c *Command) bool {
	if cs.filter != nil && !cs.filter(c) {
		return false
	}
	return true
}

// Resolve maps a token to a registered command by name, alias, or, when
// enabled, unambiguous prefix.
func (cs *CommandSet) Resolve(name string) (*Command, error) {
	if canonical, ok := cs.lookup[cs.fold(name)]; ok {
		if c, ok := cs.commands.Get(canonical); ok && cs.visible(c) {
			return c, nil
		}
	}
	if cs.prefixMatch {
		folded := cs.fold(name)
		var matches []*Command
		for p := cs.commands.Front(); p != nil; p = p.Next() {
			if !cs.visible(p.Value) {
				continue
			}
			for _, n := range p.Value.names() {
				if strings.HasPrefix(cs.fold(n), folded) {
					matches = append(matches, p.Value)
					break
				}
			}
		}
		if len(matches) == 1 {
			return matches[0], nil
		}
	}
	return nil, errs.ErrUnknownCommand.WithArgs(name)
}

// parserFor builds the command's own parser from its declarations
func (cs *CommandSet) parserFor(c *Command) (*Parser, error) {
	configs := append([]ConfigureParserFunc{}, cs.parserConfigs...)
	p, err := NewParser(configs...)
	if err != nil {
		return nil, err
	}
	p.SetName(c.Name)
	for _, d := range c.Parameters {
		p.AddParameter(d)
	}
	p.AddArguments(c.Arguments...)
	return p, nil
}

// Run resolves args[0] as the command, parses the remaining tokens with that
// command's parser, and executes it. The return value is a process exit
// code: 0 on success, 1 on resolution or parse failure, 2 when the command
// itself fails.
func (cs *CommandSet) Run(args []string) int {
	if len(args) == 0 {
		cs.PrintCommands(cs.stderr)
		return 1
	}
	c, err := cs.Resolve(args[0])
	if err != nil {
		fmt.Fprintln(cs.stderr, err)
		cs.PrintCommands(cs.stderr)
		return 1
	}

	p, err := cs.parserFor(c)
	if err != nil {
		fmt.Fprintln(cs.stderr, err)
		return 1
	}
	result, err := p.Parse(args[1:])
	if err != nil {
		fmt.Fprintln(cs.stderr, err)
		p.PrintUsage(cs.stderr)
		return 1
	}
	if result.Cancelled() {
		p.PrintUsage(cs.stdout)
		return 0
	}
	if c.Execute != nil {
		if err := c.Execute(result); err != nil {
			fmt.Fprintln(cs.stderr, err)
			return 2
		}
	}
	return 0
}

// RunString splits a command line with shell quoting rules and runs it
func (cs *CommandSet) RunString(line string) int {
	args, err := parse.Split(line)
	if err != nil {
		fmt.Fprintln(cs.stderr, err)
		return 1
	}
	return cs.Run(args)
}
