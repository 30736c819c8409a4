package cmdline

import (
	"fmt"

	"github.com/verdane/cmdline/conversion"
	"github.com/verdane/cmdline/validation"
)

// WithName sets the canonical matching name
func WithName(name string) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.Name = name
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.Description = description
	}
}

// WithKind sets the argument's semantic value kind
func WithKind(kind ValueKind) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.Kind = kind
	}
}

// WithAliases adds additional accepted long names
func WithAliases(aliases ...string) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.Aliases = append(d.Aliases, aliases...)
	}
}

// WithShort sets the single-rune short name
func WithShort(short rune) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.Short = short
	}
}

// WithShortAliases adds additional single-rune names
func WithShortAliases(shorts ...rune) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.ShortAliases = append(d.ShortAliases, shorts...)
	}
}

// WithPosition makes the argument positionally bindable and orders it among
// positional arguments
func WithPosition(pos int) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		if pos < 0 {
			if err != nil {
				*err = fmt.Errorf("positional index must be non-negative, got: %d", pos)
			}
			return
		}
		p := pos
		d.Position = &p
	}
}

// SetRequired when true, the argument must be supplied on the command line
func SetRequired(required bool) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.Required = required
	}
}

// WithDefaultValue sets the textual default, converted through the argument's
// converter when the argument is not supplied
func WithDefaultValue(defaultValue string) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		v := defaultValue
		d.DefaultValue = &v
	}
}

// SetMultiValue when true, the argument accumulates values across repeated
// occurrences
func SetMultiValue(multi bool) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.MultiValue = multi
	}
}

// WithValueSeparator splits one raw token into several values on the rune
func WithValueSeparator(sep rune) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.ValueSeparator = sep
	}
}

// AsSwitch marks the argument as a boolean switch which does not require an
// explicit value token
func AsSwitch() ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.Switch = true
		d.Kind = KindBool
	}
}

// SetGreedy when true, a multi-value argument consumes following
// positional-looking tokens until the next named token
func SetGreedy(greedy bool) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.Greedy = greedy
	}
}

// WithCancelMode requests early parse termination once the argument is matched
func WithCancelMode(mode CancelMode) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.CancelMode = mode
	}
}

// WithValidators appends phase-tagged validators, run in registration order
// within their phase
func WithValidators(validators ...validation.Validator) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.Validators = append(d.Validators, validators...)
	}
}

// WithConverter overrides converter resolution for this argument
func WithConverter(converter conversion.Converter) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		d.Converter = converter
	}
}

// WithEnumMembers sets the accepted member set and marks the argument KindEnum
func WithEnumMembers(members ...string) ConfigureDescriptorFunc {
	return func(d *Descriptor, err *error) {
		if len(members) == 0 {
			if err != nil {
				*err = fmt.Errorf("enum argument needs at least one member")
			}
			return
		}
		d.Kind = KindEnum
		d.EnumMembers = members
	}
}
