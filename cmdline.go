// Package cmdline is a declarative command-line argument parser. Argument
// sets are described as ordered descriptors, compiled once into an immutable
// schema, and matched against tokens in either the default mode, where long
// and short names are interchangeable, or a POSIX-like long/short mode with
// combined switch runes. Values are converted with culture awareness and run
// through validators before, after, and across conversions. Subcommands,
// cancellation arguments, and translatable errors are built in.
package cmdline

import (
	"os"

	"github.com/verdane/cmdline/conversion"
	"github.com/verdane/cmdline/errs"
	"github.com/verdane/cmdline/i18n"
	"github.com/verdane/cmdline/parse"
)

// NewParser returns a parser with the default settings: default parsing mode
// with '-' and '/' prefixes, ':' and '=' value separators, whitespace-
// separated values allowed, case-insensitive matching, numeric detection on,
// duplicates rejected, and the invariant culture.
func NewParser(configs ...ConfigureParserFunc) (*Parser, error) {
	p := &Parser{
		mode:                ModeDefault,
		prefixes:            []rune{'-', '/'},
		longPrefix:          defaultLongPrefix,
		shortPrefix:         defaultShortPrefix,
		valueSeparators:     []rune{':', '='},
		whitespaceSeparator: true,
		numericDetection:    true,
		duplicatePolicy:     DuplicateError,
		culture:             conversion.Invariant(),
		converters:          conversion.NewRegistry(),
		stdout:              os.Stdout,
		stderr:              os.Stderr,
	}
	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewParserFromSource builds a parser from a schema-discovery collaborator.
// Schemas for the same set name and settings are built once and shared.
func NewParserFromSource(src Source, configs ...ConfigureParserFunc) (*Parser, error) {
	p, err := NewParser(configs...)
	if err != nil {
		return nil, err
	}
	desc := src.Describe()
	p.setName = desc.Name
	p.parameters = desc.Parameters
	p.members = desc.Members
	p.extraCtors = desc.ExtraConstructors

	if cached, ok := cachedSchema(p.schemaCacheKey()); ok {
		p.schema = cached
		return p, nil
	}
	if _, err := p.Build(); err != nil {
		return nil, err
	}
	storeSchema(p.schemaCacheKey(), p.schema)
	return p, nil
}

// SetName names the argument set for usage output and schema caching
func (p *Parser) SetName(name string) {
	p.setName = name
	p.schema = nil
}

// AddParameter appends a constructor-like required positional slot. Slots
// bind in the order they are added, before any member positionals.
func (p *Parser) AddParameter(d *Descriptor) *Parser {
	p.parameters = append(p.parameters, d)
	p.schema = nil
	return p
}

// AddArgument appends a member argument declaration
func (p *Parser) AddArgument(d *Descriptor) *Parser {
	p.members = append(p.members, d)
	p.schema = nil
	return p
}

// AddArguments appends several member declarations at once
func (p *Parser) AddArguments(ds ...*Descriptor) *Parser {
	p.members = append(p.members, ds...)
	p.schema = nil
	return p
}

// Build compiles the declarations into the schema, validating every
// structural rule. Building is idempotent; the schema is only rebuilt after
// the declarations change.
func (p *Parser) Build() (*Schema, error) {
	if p.schema != nil {
		return p.schema, nil
	}
	schema, err := p.buildSchema()
	if err != nil {
		return nil, p.localize(err)
	}
	p.schema = schema
	return schema, nil
}

// Parse matches args against the schema and returns the converted result.
// args must not include the program name.
func (p *Parser) Parse(args []string) (*Result, error) {
	schema, err := p.Build()
	if err != nil {
		return nil, err
	}
	result, err := newSession(p, schema, args).run()
	if err != nil {
		return nil, p.localize(err)
	}
	return result, nil
}

// ParseString splits a single command line with shell quoting rules and
// parses the pieces
func (p *Parser) ParseString(line string) (*Result, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, err
	}
	return p.Parse(args)
}

// ParseWithDefaults parses args with per-call default values that override
// the descriptors' declared defaults. Keys are canonical argument names.
func (p *Parser) ParseWithDefaults(args []string, defaults map[string]string) (*Result, error) {
	schema, err := p.Build()
	if err != nil {
		return nil, err
	}
	s := newSession(p, schema, args)
	s.defaultOverrides = defaults
	result, err := s.run()
	if err != nil {
		return nil, p.localize(err)
	}
	return result, nil
}

// Schema returns the built schema, building it first if needed
func (p *Parser) Schema() (*Schema, error) {
	return p.Build()
}

func (p *Parser) messageProvider() i18n.MessageProvider {
	if p.provider != nil {
		return p.provider
	}
	return i18n.DefaultProvider()
}

// localize reroutes error message resolution through the parser's configured
// provider so applications can swap translations per parser.
func (p *Parser) localize(err error) error {
	if p.provider == nil {
		return err
	}
	if pe, ok := err.(*errs.ParseError); ok {
		return pe.WithProvider(p.provider)
	}
	return err
}
