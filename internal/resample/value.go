package resample

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type valueKind uint8

const (
	kindAbsent valueKind = iota
	kindNumber
	kindText
)

// Value is a reading's payload: a number for entity states, raw text for attributes, or
// nothing when a state could not be parsed as a number.
type Value struct {
	kind valueKind
	num  float64
	text string
}

// Absent returns a Value that holds nothing.
func Absent() Value { return Value{} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: kindNumber, num: f} }

// Text returns a Value holding s verbatim.
func Text(s string) Value { return Value{kind: kindText, text: s} }

// ParseState converts a raw state into a numeric Value. States that are not numbers,
// such as "unavailable", yield an absent Value.
func ParseState(raw string) Value {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Absent()
	}
	return Number(f)
}

func (v Value) IsAbsent() bool { return v.kind == kindAbsent }

// String renders the Value as an output cell. Absent values render empty.
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return formatFloat(v.num)
	case kindText:
		return v.text
	default:
		return ""
	}
}

// formatFloat writes the shortest representation that round-trips, keeping a decimal
// point on integral values and switching to exponent form outside [1e-4, 1e16).
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if f != 0 {
		sci := strconv.FormatFloat(f, 'e', -1, 64)
		if exp := exponentOf(sci); exp < -4 || exp >= 16 {
			return sci
		}
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func exponentOf(sci string) int {
	_, exp, ok := strings.Cut(sci, "e")
	if !ok {
		return 0
	}
	n, _ := strconv.Atoi(exp)
	return n
}
