package cmdline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verdane/cmdline/conversion"
	"github.com/verdane/cmdline/errs"
	"github.com/verdane/cmdline/parse"
	"github.com/verdane/cmdline/types/orderedmap"
	"github.com/verdane/cmdline/types/queue"
	"github.com/verdane/cmdline/validation"
)

// argumentState tracks one descriptor across a parse: whether the user
// supplied it, how often, the raw tokens seen, and the converted values.
type argumentState struct {
	desc        *Descriptor
	supplied    bool
	defaulted   bool
	raws        []string
	values      []interface{}
	occurrences int
}

func (a *argumentState) value() (interface{}, bool) {
	if len(a.values) == 0 {
		return nil, false
	}
	return a.values[len(a.values)-1], true
}

// session is the state of one parse run. A session is single-use; each call
// to Parse creates a fresh one so parsers stay reusable and goroutine-safe
// for read-only schema access.
type session struct {
	p           *Parser
	schema      *Schema
	state       parse.State
	states      *orderedmap.OrderedMap[string, *argumentState]
	cursor      int
	remaining   *queue.Q[string]
	warnings    []string
	cancelledBy string
	terminated  bool

	// defaultOverrides supplies per-call defaults that win over the
	// descriptors' declared ones
	defaultOverrides map[string]string
}

func newSession(p *Parser, schema *Schema, args []string) *session {
	s := &session{
		p:         p,
		schema:    schema,
		state:     parse.NewState(args),
		states:    orderedmap.NewOrderedMap[string, *argumentState](),
		remaining: queue.New[string](),
	}
	for _, d := range schema.Descriptors() {
		s.states.Set(d.Name, &argumentState{desc: d})
	}
	return s
}

func (s *session) run() (*Result, error) {
	for s.state.Advance() {
		raw := s.state.CurrentArg()

		var tok token
		var err error
		if s.terminated {
			tok = token{kind: tokenPositional, raw: raw}
		} else {
			tok, err = s.p.classify(raw, s.schema)
			if err != nil {
				return nil, err
			}
		}

		switch tok.kind {
		case tokenTerminator:
			s.terminated = true
		case tokenPositional:
			if err := s.bindPositional(tok.raw); err != nil {
				return nil, err
			}
		case tokenNamed:
			cancelled, err := s.bindNamed(tok)
			if err != nil {
				return nil, err
			}
			if cancelled {
				for _, rest := range s.state.Remaining() {
					s.remaining.Enqueue(rest)
				}
				return s.finish(true)
			}
		}
	}
	return s.finish(false)
}

// finish runs the post-token phases: defaults always apply, while the
// required check and cross-argument validation are skipped when parsing was
// cancelled with success.
func (s *session) finish(cancelled bool) (*Result, error) {
	if err := s.applyDefaults(); err != nil {
		return nil, err
	}
	if !cancelled {
		if err := s.checkRequired(); err != nil {
			return nil, err
		}
		if err := s.validateAfterParsing(); err != nil {
			return nil, err
		}
	}
	return newResult(s), nil
}

func (s *session) bindNamed(tok token) (bool, error) {
	for _, sw := range tok.switches {
		if err := s.recordValue(sw, "true", true); err != nil {
			return false, err
		}
	}

	d := tok.desc

	var raw string
	switch {
	case tok.inline != nil:
		raw = *tok.inline
	case d.Switch:
		raw = "true"
	default:
		next, ok := s.nextValueToken()
		if !ok {
			return false, errs.ErrMissingNamedValue.WithArgs(d.Name).ForArgument(d.Name)
		}
		raw = next
	}

	if err := s.bindRaw(d, raw); err != nil {
		return false, err
	}

	// greedy multi-value arguments keep consuming value-looking tokens until
	// the next token classifies as a named one
	if d.MultiValue && d.Greedy {
		for {
			next, ok := s.nextValueToken()
			if !ok {
				break
			}
			if err := s.bindRaw(d, next); err != nil {
				return false, err
			}
		}
	}

	if d.CancelMode != CancelNone {
		s.cancelledBy = d.Name
		if d.CancelMode == CancelAbortFailure {
			return false, errs.ErrCancelled.WithArgs(d.Name).ForArgument(d.Name)
		}
		return true, nil
	}
	return false, nil
}

// bindRaw feeds one raw string into the descriptor, splitting it first when
// the descriptor declares its own value separator.
func (s *session) bindRaw(d *Descriptor, raw string) error {
	if d.MultiValue && d.ValueSeparator != 0 {
		for _, part := range strings.Split(raw, string(d.ValueSeparator)) {
			if err := s.recordValue(d, part, false); err != nil {
				return err
			}
		}
		return nil
	}
	return s.recordValue(d, raw, false)
}

// nextValueToken peeks the following token and consumes it when it can serve
// as a value, meaning it does not classify as a named argument itself.
func (s *session) nextValueToken() (string, bool) {
	if !s.p.whitespaceSeparator {
		return "", false
	}
	if s.state.Pos()+1 >= s.state.Len() {
		return "", false
	}
	next := s.state.Peek()
	if s.looksLikeNamed(next) {
		return "", false
	}
	s.state.Advance()
	return s.state.CurrentArg(), true
}

func (s *session) looksLikeNamed(raw string) bool {
	tok, err := s.p.classify(raw, s.schema)
	if err != nil {
		// unknown prefixed tokens are still argument-shaped, not values
		return !s.p.looksNumeric(raw)
	}
	return tok.kind == tokenNamed || tok.kind == tokenTerminator
}

func (s *session) recordValue(d *Descriptor, raw string, isSwitchRun bool) error {
	st, _ := s.states.Get(d.Name)

	st.occurrences++
	if st.occurrences > 1 && !d.MultiValue && !isSwitchRun {
		switch s.p.duplicatePolicy {
		case DuplicateError:
			return errs.ErrDuplicateArgument.WithArgs(d.Name).ForArgument(d.Name)
		case DuplicateWarn:
			s.warnings = append(s.warnings, fmt.Sprintf(s.p.messageProvider().GetMessage(errs.WarnDuplicateKey), d.Name))
		}
	}

	value, err := s.convert(d, raw)
	if err != nil {
		return err
	}

	st.supplied = true
	st.defaulted = false
	st.raws = append(st.raws, raw)
	if d.MultiValue {
		st.values = append(st.values, value)
	} else {
		st.values = []interface{}{value}
	}
	return nil
}

// convert runs the raw-value phase, the type conversion, and the typed-value
// phase for a single value.
func (s *session) convert(d *Descriptor, raw string) (interface{}, error) {
	ctx := validation.Context{Argument: d.Name, Raw: raw, Supplied: true, Count: 1}
	for _, v := range d.validatorsFor(validation.BeforeConversion) {
		if err := v.Validate(ctx); err != nil {
			return nil, s.validationError(d, err)
		}
	}

	value, err := s.convertRaw(d, raw)
	if err != nil {
		return nil, errs.ErrConversion.WithArgs(raw, d.Name).Wrap(err).ForArgument(d.Name)
	}

	ctx.Value = value
	for _, v := range d.validatorsFor(validation.AfterConversion) {
		if err := v.Validate(ctx); err != nil {
			return nil, s.validationError(d, err)
		}
	}
	return value, nil
}

func (s *session) convertRaw(d *Descriptor, raw string) (interface{}, error) {
	switch {
	case d.Converter != nil:
		return d.Converter.Convert(raw, s.p.culture)
	case d.Kind == KindEnum:
		return conversion.EnumConverter(d.EnumMembers...).Convert(raw, s.p.culture)
	default:
		return s.p.converters.Convert(d.Kind, raw, s.p.culture)
	}
}

func (s *session) validationError(d *Descriptor, err error) error {
	var pe *errs.ParseError
	if errors.As(err, &pe) {
		return pe.ForArgument(d.Name)
	}
	return errs.ErrValidationFailed.WithArgs(d.Name, err).Wrap(err).ForArgument(d.Name)
}

// bindPositional assigns a positional value to the next unsatisfied slot.
// Slots already filled by name are skipped; a trailing multi-value slot
// absorbs every later positional.
func (s *session) bindPositional(raw string) error {
	positional := s.schema.Positional()
	for s.cursor < len(positional) {
		st, _ := s.states.Get(positional[s.cursor].Name)
		if st.supplied && !positional[s.cursor].MultiValue {
			s.cursor++
			continue
		}
		break
	}
	if s.cursor >= len(positional) {
		return errs.ErrTooManyArguments.WithArgs(raw)
	}

	d := positional[s.cursor]
	if !d.MultiValue {
		s.cursor++
	}
	return s.bindRaw(d, raw)
}

func (s *session) applyDefaults() error {
	for pair := s.states.Front(); pair != nil; pair = pair.Next() {
		st := pair.Value
		if st.supplied {
			continue
		}
		raw, ok := s.defaultOverrides[st.desc.Name]
		if !ok {
			if st.desc.DefaultValue == nil {
				continue
			}
			raw = *st.desc.DefaultValue
		}
		value, err := s.convertRaw(st.desc, raw)
		if err != nil {
			return errs.ErrSchemaInvalidDefault.WithArgs(st.desc.Name, raw).Wrap(err).ForArgument(st.desc.Name)
		}
		st.defaulted = true
		st.values = []interface{}{value}
	}
	return nil
}

// checkRequired reports every missing required argument in one error rather
// than stopping at the first.
func (s *session) checkRequired() error {
	var missing []string
	for pair := s.states.Front(); pair != nil; pair = pair.Next() {
		if pair.Value.desc.Required && !pair.Value.supplied {
			missing = append(missing, pair.Value.desc.Name)
		}
	}
	if len(missing) > 0 {
		return errs.ErrMissingRequired.WithArgs(strings.Join(missing, ", "))
	}
	return nil
}

func (s *session) validateAfterParsing() error {
	lookup := &stateLookup{states: s.states}
	for pair := s.states.Front(); pair != nil; pair = pair.Next() {
		st := pair.Value
		ctx := validation.Context{
			Argument: st.desc.Name,
			Supplied: st.supplied,
			Count:    st.occurrences,
			Lookup:   lookup,
		}
		if v, ok := st.value(); ok {
			ctx.Value = v
		}
		if len(st.raws) > 0 {
			ctx.Raw = st.raws[len(st.raws)-1]
		}
		for _, v := range st.desc.validatorsFor(validation.AfterParsing) {
			if err := v.Validate(ctx); err != nil {
				return s.validationError(st.desc, err)
			}
		}
	}
	return nil
}

// stateLookup exposes the session's argument states to cross-argument
// validators.
type stateLookup struct {
	states *orderedmap.OrderedMap[string, *argumentState]
}

func (l *stateLookup) Supplied(name string) bool {
	st, ok := l.states.Get(name)
	return ok && st.supplied
}

func (l *stateLookup) Raw(name string) (string, bool) {
	st, ok := l.states.Get(name)
	if !ok || len(st.raws) == 0 {
		return "", false
	}
	return st.raws[len(st.raws)-1], true
}

func (l *stateLookup) Count(name string) int {
	st, ok := l.states.Get(name)
	if !ok {
		return 0
	}
	return st.occurrences
}
