package cmdline

import (
	"github.com/verdane/cmdline/types/orderedmap"
)

// Result is the immutable outcome of one successful parse. Lookups accept
// the canonical name or any alias.
type Result struct {
	schema      *Schema
	states      *orderedmap.OrderedMap[string, *argumentState]
	remaining   []string
	warnings    []string
	cancelledBy string
}

func newResult(s *session) *Result {
	return &Result{
		schema:      s.schema,
		states:      s.states,
		remaining:   s.remaining.Drain(),
		warnings:    s.warnings,
		cancelledBy: s.cancelledBy,
	}
}

func (r *Result) lookup(name string) (*argumentState, bool) {
	d, ok := r.schema.Resolve(name)
	if !ok {
		return nil, false
	}
	st, ok := r.states.Get(d.Name)
	return st, ok
}

// Get returns the converted value of the argument. For multi-value arguments
// this is the last value; use Values for all of them.
func (r *Result) Get(name string) (interface{}, bool) {
	st, ok := r.lookup(name)
	if !ok {
		return nil, false
	}
	return st.value()
}

// GetOrDefault returns the converted value, or fallback when the argument has
// no value at all
func (r *Result) GetOrDefault(name string, fallback interface{}) interface{} {
	if v, ok := r.Get(name); ok {
		return v
	}
	return fallback
}

// GetString returns the value as a string, or "" when absent or not a string
func (r *Result) GetString(name string) string {
	v, _ := r.Get(name)
	s, _ := v.(string)
	return s
}

// GetBool returns the value as a bool. Unsupplied switches read as false.
func (r *Result) GetBool(name string) bool {
	v, _ := r.Get(name)
	b, _ := v.(bool)
	return b
}

// GetInt returns the value as an int64, or 0 when absent or not an integer
func (r *Result) GetInt(name string) int64 {
	v, _ := r.Get(name)
	switch n := v.(type) {
	case int64:
		return n
	case uint64:
		return int64(n)
	}
	return 0
}

// GetFloat returns the value as a float64, widening integer values
func (r *Result) GetFloat(name string) float64 {
	v, _ := r.Get(name)
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	}
	return 0
}

// Values returns every converted value of a multi-value argument in the
// order the values were supplied
func (r *Result) Values(name string) []interface{} {
	st, ok := r.lookup(name)
	if !ok {
		return nil
	}
	out := make([]interface{}, len(st.values))
	copy(out, st.values)
	return out
}

// Strings returns the values of a multi-value argument as strings, skipping
// values of other types
func (r *Result) Strings(name string) []string {
	var out []string
	for _, v := range r.Values(name) {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Raw returns the last raw token bound to the argument, before conversion
func (r *Result) Raw(name string) (string, bool) {
	st, ok := r.lookup(name)
	if !ok || len(st.raws) == 0 {
		return "", false
	}
	return st.raws[len(st.raws)-1], true
}

// Supplied reports whether the user supplied the argument on the command
// line. Defaulted values do not count as supplied.
func (r *Result) Supplied(name string) bool {
	st, ok := r.lookup(name)
	return ok && st.supplied
}

// Defaulted reports whether the argument's value came from its declared
// default
func (r *Result) Defaulted(name string) bool {
	st, ok := r.lookup(name)
	return ok && st.defaulted
}

// Count returns how many times the argument appeared
func (r *Result) Count(name string) int {
	st, ok := r.lookup(name)
	if !ok {
		return 0
	}
	return st.occurrences
}

// Remaining returns the tokens that were left unparsed after a cancelling
// argument stopped the parse
func (r *Result) Remaining() []string {
	out := make([]string, len(r.remaining))
	copy(out, r.remaining)
	return out
}

// Cancelled reports whether a cancelling argument ended the parse early
func (r *Result) Cancelled() bool {
	return r.cancelledBy != ""
}

// CancelledBy returns the name of the argument that cancelled the parse, or
// "" when parsing ran to completion
func (r *Result) CancelledBy() string {
	return r.cancelledBy
}

// Warnings returns non-fatal notices collected during the parse, such as
// replaced duplicates under the warn policy
func (r *Result) Warnings() []string {
	out := make([]string, len(r.warnings))
	copy(out, r.warnings)
	return out
}
