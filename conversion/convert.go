// Package conversion maps raw string tokens to typed values. Conversion is
// pluggable: a Registry resolves a Converter per value kind, and individual
// arguments may override the registry with their own Converter.
package conversion

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/verdane/cmdline/errs"
	"github.com/verdane/cmdline/types"
)

// Converter converts one raw string to a typed value. Conversion must be
// deterministic for the same (raw, culture) pair and must not depend on any
// state other than the explicit culture.
type Converter interface {
	Convert(raw string, culture Culture) (interface{}, error)
}

// ConverterFunc adapts a function to the Converter interface
type ConverterFunc func(raw string, culture Culture) (interface{}, error)

// Convert implements Converter
func (f ConverterFunc) Convert(raw string, culture Culture) (interface{}, error) {
	return f(raw, culture)
}

// Parsable is the duck-typed parse hook: a value type implementing Parsable on
// its pointer receiver can be used with ParsableConverter without registering
// a hand-written Converter.
type Parsable interface {
	ParseValue(raw string, culture Culture) error
}

// Registry resolves converters by value kind. A zero registry is not usable;
// create one with NewRegistry.
type Registry struct {
	byKind map[types.ValueKind]Converter
}

// NewRegistry returns a registry pre-populated with the built-in converters
func NewRegistry() *Registry {
	r := &Registry{byKind: make(map[types.ValueKind]Converter)}
	r.Register(types.KindString, StringConverter())
	r.Register(types.KindInt, IntConverter(strconv.IntSize))
	r.Register(types.KindUint, UintConverter(strconv.IntSize))
	r.Register(types.KindFloat, FloatConverter(64))
	r.Register(types.KindBool, BoolConverter())
	r.Register(types.KindTime, TimeConverter())
	r.Register(types.KindDuration, DurationConverter())
	return r
}

// Register installs (or replaces) the converter for a kind
func (r *Registry) Register(kind types.ValueKind, converter Converter) {
	r.byKind[kind] = converter
}

// For returns the converter registered for kind
func (r *Registry) For(kind types.ValueKind) (Converter, bool) {
	c, ok := r.byKind[kind]
	return c, ok
}

// Convert resolves the converter for kind and applies it
func (r *Registry) Convert(kind types.ValueKind, raw string, culture Culture) (interface{}, error) {
	c, ok := r.byKind[kind]
	if !ok {
		return nil, errs.ErrUnsupportedConversion.WithArgs(kind.String())
	}
	return c.Convert(raw, culture)
}

// StringConverter passes the raw value through unchanged
func StringConverter() Converter {
	return ConverterFunc(func(raw string, _ Culture) (interface{}, error) {
		return raw, nil
	})
}

// IntConverter converts signed integers of the given bit size
func IntConverter(bitSize int) Converter {
	return ConverterFunc(func(raw string, _ Culture) (interface{}, error) {
		v, err := strconv.ParseInt(raw, 10, bitSize)
		if err != nil {
			return nil, errs.ErrParseInt.WithArgs(raw).Wrap(err)
		}
		return v, nil
	})
}

// UintConverter converts unsigned integers of the given bit size
func UintConverter(bitSize int) Converter {
	return ConverterFunc(func(raw string, _ Culture) (interface{}, error) {
		v, err := strconv.ParseUint(raw, 10, bitSize)
		if err != nil {
			return nil, errs.ErrParseUint.WithArgs(raw).Wrap(err)
		}
		return v, nil
	})
}

// FloatConverter converts floating-point numbers, accepting the culture's
// decimal separator.
func FloatConverter(bitSize int) Converter {
	return ConverterFunc(func(raw string, culture Culture) (interface{}, error) {
		v, err := strconv.ParseFloat(culture.NormalizeDecimal(raw), bitSize)
		if err != nil {
			return nil, errs.ErrParseFloat.WithArgs(raw).Wrap(err)
		}
		return v, nil
	})
}

// BoolConverter converts the literals strconv.ParseBool accepts
func BoolConverter() Converter {
	return ConverterFunc(func(raw string, _ Culture) (interface{}, error) {
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, errs.ErrParseBool.WithArgs(raw).Wrap(err)
		}
		return v, nil
	})
}

// TimeConverter converts dates and timestamps leniently, accepting the common
// formats dateparse recognizes. Ambiguous day/month order follows the culture:
// comma-decimal European cultures read "02/03/2024" day-first.
func TimeConverter() Converter {
	return ConverterFunc(func(raw string, culture Culture) (interface{}, error) {
		var (
			v   time.Time
			err error
		)
		if culture.decimalComma {
			v, err = dateparse.ParseIn(raw, culture.Location(), dateparse.PreferMonthFirst(false))
		} else {
			v, err = dateparse.ParseIn(raw, culture.Location())
		}
		if err != nil {
			return nil, errs.ErrParseTime.WithArgs(raw).Wrap(err)
		}
		return v, nil
	})
}

// DurationConverter converts time.Duration literals such as "1h30m"
func DurationConverter() Converter {
	return ConverterFunc(func(raw string, _ Culture) (interface{}, error) {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errs.ErrParseDuration.WithArgs(raw).Wrap(err)
		}
		return v, nil
	})
}

// EnumConverter restricts values to a fixed member set, matched by name under
// case folding, and yields the canonical member spelling.
func EnumConverter(members ...string) Converter {
	return ConverterFunc(func(raw string, culture Culture) (interface{}, error) {
		for _, m := range members {
			if m == raw || culture.EqualFold(m, raw) {
				return m, nil
			}
		}
		return nil, errs.ErrParseEnum.WithArgs(raw, strings.Join(members, ", "))
	})
}

type parsablePtr[T any] interface {
	*T
	Parsable
}

// ParsableConverter builds a Converter for any type whose pointer implements
// Parsable. The converted value is the parsed T.
func ParsableConverter[T any, PT parsablePtr[T]]() Converter {
	return ConverterFunc(func(raw string, culture Culture) (interface{}, error) {
		p := new(T)
		if err := PT(p).ParseValue(raw, culture); err != nil {
			return nil, err
		}
		return *p, nil
	})
}
