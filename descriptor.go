package cmdline

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/verdane/cmdline/conversion"
	"github.com/verdane/cmdline/validation"
)

// Descriptor is the immutable metadata for one logical argument. Descriptors
// are constructed once when a schema is built and shared read-only across
// parses; nothing mutates them afterwards.
type Descriptor struct {
	// Name is the canonical matching name
	Name string
	// Aliases are additional accepted names
	Aliases []string
	// Short is the single-rune short name (meaningful in long/short mode; in
	// default mode it is just another alias)
	Short rune
	// ShortAliases are additional single-rune names
	ShortAliases []rune
	// Position makes the argument positionally bindable and orders it among
	// positional arguments; nil means name-only
	Position *int
	// Kind selects the built-in converter when Converter is nil
	Kind ValueKind
	// Required arguments must have a value when parsing completes
	Required bool
	// DefaultValue, when non-nil, is converted through the same converter as
	// runtime input and applied when the argument is not supplied
	DefaultValue *string
	// MultiValue arguments accumulate values across repeated occurrences
	MultiValue bool
	// ValueSeparator, when non-zero, splits one raw token into several values
	ValueSeparator rune
	// Switch arguments are boolean and do not require an explicit value token
	Switch bool
	// Greedy multi-value arguments consume following positional-looking tokens
	// until the next named token
	Greedy bool
	// CancelMode requests early parse termination once this argument is matched
	CancelMode CancelMode
	// Validators run at their respective phases
	Validators []validation.Validator
	// Converter overrides kind-based converter resolution for this argument
	Converter conversion.Converter
	// EnumMembers is the accepted member set for KindEnum arguments
	EnumMembers []string
	// Description is used by usage renderers
	Description string

	id   string
	ctor bool
}

// NewArg configures a Descriptor using option functions
func NewArg(configs ...ConfigureDescriptorFunc) *Descriptor {
	d := &Descriptor{}
	for _, config := range configs {
		config(d, nil)
	}
	d.ensureInit()

	return d
}

// Set configures the Descriptor instance with the provided
// ConfigureDescriptorFunc(s), and returns an error if a configuration results
// in an error.
func (d *Descriptor) Set(configs ...ConfigureDescriptorFunc) error {
	d.ensureInit()
	var err error
	for _, config := range configs {
		config(d, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *Descriptor) ensureInit() {
	if d.id == "" {
		d.id = uuid.New().String()
	}
}

// ID returns the descriptor's opaque identity, stable for its lifetime
func (d *Descriptor) ID() string {
	d.ensureInit()
	return d.id
}

func (d *Descriptor) isPositional() bool {
	return d.Position != nil || d.ctor
}

// names returns the canonical name plus all long aliases
func (d *Descriptor) names() []string {
	return append([]string{d.Name}, d.Aliases...)
}

// shorts returns all short names
func (d *Descriptor) shorts() []rune {
	if d.Short == 0 {
		return d.ShortAliases
	}
	return append([]rune{d.Short}, d.ShortAliases...)
}

// validatorsFor returns the validators registered for a phase, in order
func (d *Descriptor) validatorsFor(phase validation.Phase) []validation.Validator {
	var out []validation.Validator
	for _, v := range d.Validators {
		if v.Phase() == phase {
			out = append(out, v)
		}
	}
	return out
}

// String returns a short human-readable rendering used in diagnostics
func (d *Descriptor) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	if d.Short != 0 {
		fmt.Fprintf(&b, " (-%c)", d.Short)
	}
	if d.isPositional() {
		if d.ctor {
			b.WriteString(" [parameter]")
		} else {
			fmt.Fprintf(&b, " [position %d]", *d.Position)
		}
	}
	if d.Required {
		b.WriteString(" (required)")
	} else {
		b.WriteString(" (optional)")
	}
	return b.String()
}
