package types

// ValueKind describes the semantic type of an argument's value. It selects the
// built-in converter used when no per-argument converter is registered.
type ValueKind int

const (
	// KindString denotes an argument whose value is taken verbatim
	KindString ValueKind = iota
	// KindInt denotes a signed integer argument
	KindInt
	// KindUint denotes an unsigned integer argument
	KindUint
	// KindFloat denotes a floating-point argument
	KindFloat
	// KindBool denotes a boolean argument (switches are KindBool)
	KindBool
	// KindTime denotes a date/time argument, parsed leniently and culture-aware
	KindTime
	// KindDuration denotes a time.Duration argument ("1h30m")
	KindDuration
	// KindEnum denotes an argument restricted to a fixed member set, matched by
	// member name
	KindEnum
	// KindCustom denotes an argument converted exclusively by a registered
	// per-argument or per-kind converter
	KindCustom
)

// String returns the string representation of a ValueKind
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindDuration:
		return "duration"
	case KindEnum:
		return "enum"
	case KindCustom:
		return "custom"
	}
	return "unknown"
}

// ParsingMode selects how tokens are classified.
type ParsingMode int

const (
	// ModeDefault accepts any configured prefix rune for any argument name;
	// short and long names are interchangeable
	ModeDefault ParsingMode = iota
	// ModeLongShort distinguishes a long prefix ("--") from a short prefix ("-")
	// and permits combined short switches ("-vp")
	ModeLongShort
)

// String returns the string representation of a ParsingMode
func (m ParsingMode) String() string {
	if m == ModeLongShort {
		return "long/short"
	}
	return "default"
}

// CancelMode controls early termination once an argument has been matched.
type CancelMode int

const (
	// CancelNone - parsing continues normally
	CancelNone CancelMode = iota
	// CancelAbortFailure - stop parsing and fail; the caller is expected to show usage
	CancelAbortFailure
	// CancelAbortSuccess - stop parsing and succeed with the partially populated
	// result; unconsumed tokens are handed back on the result
	CancelAbortSuccess
)

// DuplicatePolicy decides what happens when a non-multi-value argument is
// supplied more than once.
type DuplicatePolicy int

const (
	// DuplicateError rejects the parse
	DuplicateError DuplicatePolicy = iota
	// DuplicateWarn keeps the last value and records a warning
	DuplicateWarn
	// DuplicateReplace keeps the last value silently
	DuplicateReplace
)

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
