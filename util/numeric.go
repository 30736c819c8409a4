package util

import "strconv"

// Number holds the result of a lenient numeric parse
type Number struct {
	Int        int64
	Float      float64
	IsInt      bool
	IsFloat    bool
	IsNegative bool
}

// ParseNumeric attempts to interpret s as an integer (any base strconv accepts)
// or as a float. Used by the tokenizer to keep negative numbers usable as
// values when a token starts with '-'.
func ParseNumeric(s string) (n Number, ok bool) {
	if i, err := strconv.ParseInt(s, 0, strconv.IntSize); err == nil {
		n.Int = i
		n.IsInt = true
		n.IsNegative = i < 0
		return n, true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n.Float = f
		n.IsFloat = true
		n.IsNegative = f < 0
		return n, true
	}

	return n, false
}
