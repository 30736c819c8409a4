package validation

import (
	"strings"

	"github.com/verdane/cmdline/errs"
)

// Cross-argument validators. All run in the AfterParsing phase and query the
// rest of the argument set through Context.Lookup. Each rule is conditional on
// the owning argument having been supplied, so declaring "Port requires Ip"
// does not make Port itself mandatory.

// Requires fails when the owning argument is supplied but any of the named
// arguments is not.
func Requires(names ...string) Validator {
	return New(AfterParsing, "requires", func(ctx Context) error {
		if !ctx.Supplied || ctx.Lookup == nil {
			return nil
		}
		for _, name := range names {
			if !ctx.Lookup.Supplied(name) {
				return errs.ErrRequires.WithArgs(ctx.Argument, name)
			}
		}
		return nil
	})
}

// Prohibits fails when the owning argument is supplied together with any of
// the named arguments.
func Prohibits(names ...string) Validator {
	return New(AfterParsing, "prohibits", func(ctx Context) error {
		if !ctx.Supplied || ctx.Lookup == nil {
			return nil
		}
		for _, name := range names {
			if ctx.Lookup.Supplied(name) {
				return errs.ErrProhibits.WithArgs(ctx.Argument, name)
			}
		}
		return nil
	})
}

// RequiresAny fails when the owning argument is supplied and none of the named
// arguments is.
func RequiresAny(names ...string) Validator {
	return New(AfterParsing, "requires-any", func(ctx Context) error {
		if !ctx.Supplied || ctx.Lookup == nil {
			return nil
		}
		for _, name := range names {
			if ctx.Lookup.Supplied(name) {
				return nil
			}
		}
		return errs.ErrRequiresAny.WithArgs(ctx.Argument, strings.Join(names, ", "))
	})
}

// RequiresValue fails when the owning argument is supplied and the named
// argument's raw value differs from one of the accepted values.
func RequiresValue(name string, accepted ...string) Validator {
	return New(AfterParsing, "requires-value", func(ctx Context) error {
		if !ctx.Supplied || ctx.Lookup == nil {
			return nil
		}
		raw, ok := ctx.Lookup.Raw(name)
		if !ok {
			return errs.ErrRequires.WithArgs(ctx.Argument, name)
		}
		for _, v := range accepted {
			if raw == v {
				return nil
			}
		}
		return errs.ErrRequires.WithArgs(ctx.Argument, name+"="+strings.Join(accepted, "|"))
	})
}
