package cmdline

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/verdane/cmdline/errs"
	"github.com/verdane/cmdline/types/orderedmap"
)

// Description is the structural shape of one argument set, as supplied by a
// schema-discovery collaborator (reflection, code generation, or a hand-built
// definition - the parser only depends on the resulting descriptors).
type Description struct {
	// Name identifies the argument set; cached schemas are keyed on it
	Name string
	// Parameters are the constructor-like required positional slots, in
	// declared order
	Parameters []*Descriptor
	// Members are the remaining argument declarations, in declared order
	Members []*Descriptor
	// ExtraConstructors is populated when the argument-set declares more than
	// one constructor without disambiguation; building such a schema fails
	ExtraConstructors [][]*Descriptor
}

// Source yields the Description for an argument-set type
type Source interface {
	Describe() Description
}

// SourceFunc adapts a function to the Source interface
type SourceFunc func() Description

// Describe implements Source
func (f SourceFunc) Describe() Description {
	return f()
}

// Schema is the ordered, immutable descriptor registry for one argument set.
// Once built it is never mutated and is safe to share read-only across
// concurrent parses.
type Schema struct {
	name          string
	descriptors   []*Descriptor
	positional    []*Descriptor
	byName        *orderedmap.OrderedMap[string, *Descriptor]
	longLookup    map[string]string
	shortLookup   map[rune]string
	idLookup      map[string]string
	caseSensitive bool
	fold          func(string) string
}

// Name returns the argument-set name the schema was built for
func (s *Schema) Name() string {
	return s.name
}

// Descriptors returns every descriptor: constructor parameters first in
// declared order, then positionals by position, then named arguments in
// declaration order. The order is deterministic and drives usage output.
func (s *Schema) Descriptors() []*Descriptor {
	return s.descriptors
}

// Positional returns the positionally bindable descriptors in binding order
func (s *Schema) Positional() []*Descriptor {
	return s.positional
}

// Get returns the descriptor registered under the canonical name
func (s *Schema) Get(name string) (*Descriptor, bool) {
	return s.byName.Get(name)
}

// ResolveLong resolves a long name or alias to its descriptor
func (s *Schema) ResolveLong(name string) (*Descriptor, bool) {
	canonical, ok := s.longLookup[s.fold(name)]
	if !ok {
		return nil, false
	}
	return s.byName.Get(canonical)
}

// ResolveShort resolves a short name to its descriptor
func (s *Schema) ResolveShort(short rune) (*Descriptor, bool) {
	canonical, ok := s.shortLookup[foldRune(short, s.caseSensitive)]
	if !ok {
		return nil, false
	}
	return s.byName.Get(canonical)
}

// Resolve resolves a name as a long name first, then as a short name when it
// is a single rune. This is the default-mode rule where short and long names
// are interchangeable.
func (s *Schema) Resolve(name string) (*Descriptor, bool) {
	if d, ok := s.ResolveLong(name); ok {
		return d, true
	}
	runes := []rune(name)
	if len(runes) == 1 {
		return s.ResolveShort(runes[0])
	}
	return nil, false
}

// ResolvePrefix resolves a token that is an unambiguous prefix of exactly one
// known long name. The second return lists every candidate canonical name so
// ambiguity can be reported.
func (s *Schema) ResolvePrefix(prefix string) (*Descriptor, []string) {
	folded := s.fold(prefix)
	var candidates []string
	for p := s.byName.Front(); p != nil; p = p.Next() {
		for _, n := range p.Value.names() {
			if strings.HasPrefix(s.fold(n), folded) {
				candidates = append(candidates, p.Key)
				break
			}
		}
	}
	if len(candidates) == 1 {
		d, _ := s.byName.Get(candidates[0])
		return d, candidates
	}
	return nil, candidates
}

func foldRune(r rune, caseSensitive bool) rune {
	if caseSensitive {
		return r
	}
	return []rune(strings.ToLower(string(r)))[0]
}

// buildSchema validates the parser's argument-set definition and produces the
// ordered registry. Build failures carry CategorySchema.
func (p *Parser) buildSchema() (*Schema, error) {
	if len(p.extraCtors) > 0 {
		return nil, errs.ErrSchemaAmbiguousConstructor.WithArgs(p.setName)
	}

	fold := func(s string) string { return s }
	if !p.caseSensitive {
		culture := p.culture
		fold = func(s string) string { return culture.Fold(s) }
	}

	schema := &Schema{
		name:          p.setName,
		byName:        orderedmap.NewOrderedMap[string, *Descriptor](),
		longLookup:    map[string]string{},
		shortLookup:   map[rune]string{},
		idLookup:      map[string]string{},
		caseSensitive: p.caseSensitive,
		fold:          fold,
	}

	// constructor parameters are required positional slots in declared order
	parameters := make([]*Descriptor, 0, len(p.parameters))
	for _, d := range p.parameters {
		d.ensureInit()
		c := p.convertedDescriptor(d)
		c.ctor = true
		c.Required = true
		parameters = append(parameters, c)
	}

	var memberPositionals, named []*Descriptor
	for _, d := range p.members {
		d.ensureInit()
		c := p.convertedDescriptor(d)
		if c.Position != nil {
			memberPositionals = append(memberPositionals, c)
		} else {
			named = append(named, c)
		}
	}
	sort.SliceStable(memberPositionals, func(i, j int) bool {
		return *memberPositionals[i].Position < *memberPositionals[j].Position
	})

	for i := 0; i < len(memberPositionals)-1; i++ {
		a, b := memberPositionals[i], memberPositionals[i+1]
		if *a.Position == *b.Position {
			return nil, errs.ErrSchemaDuplicatePosition.WithArgs(a.Name, b.Name, *a.Position)
		}
	}

	positional := make([]*Descriptor, 0, len(parameters)+len(memberPositionals))
	positional = append(positional, parameters...)
	positional = append(positional, memberPositionals...)

	seenOptional := false
	for i, d := range positional {
		if d.MultiValue && i != len(positional)-1 {
			return nil, errs.ErrSchemaMultiValueNotLast.WithArgs(d.Name)
		}
		if d.Required && seenOptional {
			return nil, errs.ErrSchemaRequiredAfterOptional.WithArgs(d.Name)
		}
		if !d.Required {
			seenOptional = true
		}
	}

	ordered := make([]*Descriptor, 0, len(positional)+len(named))
	ordered = append(ordered, positional...)
	ordered = append(ordered, named...)

	for _, d := range ordered {
		if err := schema.register(d); err != nil {
			return nil, err
		}
	}

	schema.descriptors = ordered
	schema.positional = positional

	return schema, nil
}

// convertedDescriptor applies the parser's name converter to a shallow copy so
// the declared descriptor survives rebuilds unchanged.
func (p *Parser) convertedDescriptor(d *Descriptor) *Descriptor {
	if p.nameConverter == nil {
		return d
	}
	c := *d
	c.Name = p.nameConverter(d.Name)
	c.Aliases = make([]string, len(d.Aliases))
	for i, alias := range d.Aliases {
		c.Aliases[i] = p.nameConverter(alias)
	}
	return &c
}

func (s *Schema) register(d *Descriptor) error {
	if strings.TrimSpace(d.Name) == "" {
		return errs.ErrSchemaEmptyName
	}
	if d.Switch && d.Kind != KindBool {
		return errs.ErrSchemaSwitchNotBool.WithArgs(d.Name)
	}

	if _, exists := s.byName.Get(d.Name); exists {
		return errs.ErrSchemaDuplicateName.WithArgs(d.Name)
	}
	for _, n := range d.names() {
		folded := s.fold(n)
		if _, exists := s.longLookup[folded]; exists {
			return errs.ErrSchemaDuplicateName.WithArgs(n)
		}
		s.longLookup[folded] = d.Name
	}
	for _, r := range d.shorts() {
		folded := foldRune(r, s.caseSensitive)
		if _, exists := s.shortLookup[folded]; exists {
			return errs.ErrSchemaDuplicateShort.WithArgs(r)
		}
		s.shortLookup[folded] = d.Name
	}

	s.byName.Set(d.Name, d)
	s.idLookup[d.ID()] = d.Name

	return nil
}

// schemaCache shares built schemas across parser instances for the same
// argument-set type. Entries are immutable once stored.
var schemaCache = struct {
	mu      sync.RWMutex
	entries map[string]*Schema
}{entries: map[string]*Schema{}}

func (p *Parser) schemaCacheKey() string {
	var conv uintptr
	if p.nameConverter != nil {
		conv = reflect.ValueOf(p.nameConverter).Pointer()
	}
	return fmt.Sprintf("%s|cs=%t|mode=%d|conv=%x", p.setName, p.caseSensitive, p.mode, conv)
}

func cachedSchema(key string) (*Schema, bool) {
	schemaCache.mu.RLock()
	defer schemaCache.mu.RUnlock()
	s, ok := schemaCache.entries[key]
	return s, ok
}

func storeSchema(key string, s *Schema) {
	schemaCache.mu.Lock()
	defer schemaCache.mu.Unlock()
	schemaCache.entries[key] = s
}
