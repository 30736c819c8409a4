// Package validation implements the parser's three-phase validator chain.
// Validators run before conversion (raw string), after conversion (typed
// value), or after parsing completes (whole argument set, enabling
// cross-argument rules).
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/verdane/cmdline/errs"
)

// Phase identifies the lifecycle point a validator runs at
type Phase int

const (
	// BeforeConversion runs on the raw string immediately after a value token
	// is acquired
	BeforeConversion Phase = iota
	// AfterConversion runs on the typed value immediately after conversion,
	// once per value for multi-value arguments
	AfterConversion
	// AfterParsing runs once per argument after all tokens are consumed, even
	// when the argument has no value
	AfterParsing
)

// String returns the string representation of a Phase
func (p Phase) String() string {
	switch p {
	case BeforeConversion:
		return "before-conversion"
	case AfterConversion:
		return "after-conversion"
	case AfterParsing:
		return "after-parsing"
	}
	return "unknown"
}

// Lookup exposes the state of other arguments to AfterParsing validators.
// Cross-argument validators may query by name; nothing else may.
type Lookup interface {
	// Supplied reports whether the named argument was explicitly supplied
	Supplied(name string) bool
	// Raw returns the last raw token bound to the named argument
	Raw(name string) (string, bool)
	// Count returns the number of values bound to the named argument
	Count(name string) int
}

// Context is the state a validator sees. Which fields are populated depends on
// the phase: Raw for BeforeConversion, Raw+Value for AfterConversion, and
// Supplied+Count+Lookup for AfterParsing.
type Context struct {
	Argument string
	Raw      string
	Value    interface{}
	Supplied bool
	Count    int
	Lookup   Lookup
}

// CheckFunc validates a Context and returns an error when the check fails
type CheckFunc func(ctx Context) error

// Validator is one phase-tagged check attached to an argument
type Validator struct {
	phase Phase
	name  string
	check CheckFunc
}

// New creates a Validator for a phase
func New(phase Phase, name string, check CheckFunc) Validator {
	return Validator{phase: phase, name: name, check: check}
}

// Phase returns the lifecycle point the validator runs at
func (v Validator) Phase() Phase {
	return v.phase
}

// Name returns the validator's name, used in diagnostics
func (v Validator) Name() string {
	return v.name
}

// Validate runs the check
func (v Validator) Validate(ctx Context) error {
	return v.check(ctx)
}

// AllChecks combines checks; all must pass
func AllChecks(checks ...CheckFunc) CheckFunc {
	return func(ctx Context) error {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}

// AnyCheck combines checks; at least one must pass
func AnyCheck(checks ...CheckFunc) CheckFunc {
	return func(ctx Context) error {
		var failures []string
		for _, check := range checks {
			if err := check(ctx); err == nil {
				return nil
			} else {
				failures = append(failures, err.Error())
			}
		}
		return errs.ErrAllChecksFailed.WithArgs(strings.Join(failures, "; "))
	}
}

// NotEmpty rejects empty raw values
func NotEmpty() Validator {
	return New(BeforeConversion, "not-empty", func(ctx Context) error {
		if ctx.Raw == "" {
			return errs.ErrEmptyValue
		}
		return nil
	})
}

// NotWhitespace rejects raw values that are empty or all whitespace
func NotWhitespace() Validator {
	return New(BeforeConversion, "not-whitespace", func(ctx Context) error {
		if strings.TrimSpace(ctx.Raw) == "" {
			return errs.ErrWhitespaceValue
		}
		return nil
	})
}

// Pattern rejects raw values not matching the regular expression. The pattern
// must compile; description is used in the failure message and falls back to
// the pattern text.
func Pattern(pattern, description string) Validator {
	re := regexp.MustCompile(pattern)
	if description == "" {
		description = pattern
	}
	return New(BeforeConversion, "pattern", func(ctx Context) error {
		if !re.MatchString(ctx.Raw) {
			return errs.ErrPatternMismatch.WithArgs(ctx.Raw, description)
		}
		return nil
	})
}

// MinLength rejects raw values shorter than min characters (Unicode, not bytes)
func MinLength(min int) Validator {
	return New(BeforeConversion, "min-length", func(ctx Context) error {
		if utf8.RuneCountInString(ctx.Raw) < min {
			return errs.ErrTooShort.WithArgs(ctx.Raw, min)
		}
		return nil
	})
}

// MaxLength rejects raw values longer than max characters (Unicode, not bytes)
func MaxLength(max int) Validator {
	return New(BeforeConversion, "max-length", func(ctx Context) error {
		if utf8.RuneCountInString(ctx.Raw) > max {
			return errs.ErrTooLong.WithArgs(ctx.Raw, max)
		}
		return nil
	})
}

// OneOf rejects raw values outside the given set
func OneOf(values ...string) Validator {
	return New(BeforeConversion, "one-of", func(ctx Context) error {
		for _, v := range values {
			if ctx.Raw == v {
				return nil
			}
		}
		return errs.ErrNotInSet.WithArgs(ctx.Raw, strings.Join(values, ", "))
	})
}

// Range rejects converted numeric values outside [min, max]
func Range(min, max float64) Validator {
	return New(AfterConversion, "range", func(ctx Context) error {
		f, ok := asFloat(ctx.Value)
		if !ok {
			return errs.ErrOutOfRange.WithArgs(ctx.Value, min, max)
		}
		if f < min || f > max {
			return errs.ErrOutOfRange.WithArgs(ctx.Value, min, max)
		}
		return nil
	})
}

// CountBetween rejects supplied multi-value arguments whose value count is
// outside [min, max]. Unsupplied arguments pass; absence is the concern of
// Required, not of count validation.
func CountBetween(min, max int) Validator {
	return New(AfterParsing, "count-between", func(ctx Context) error {
		if !ctx.Supplied {
			return nil
		}
		if ctx.Count < min || ctx.Count > max {
			return errs.ErrCountOutOfRange.WithArgs(min, max, ctx.Count)
		}
		return nil
	})
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
