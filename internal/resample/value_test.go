package resample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		absent   bool
	}{
		{name: "integer", raw: "45", expected: "45.0"},
		{name: "decimal", raw: "21.5", expected: "21.5"},
		{name: "negative", raw: "-3.25", expected: "-3.25"},
		{name: "surrounding whitespace", raw: " 12 ", expected: "12.0"},
		{name: "overflow", raw: "1e400", expected: "inf"},
		{name: "nan", raw: "nan", expected: "nan"},
		{name: "unavailable", raw: "unavailable", absent: true},
		{name: "unknown", raw: "unknown", absent: true},
		{name: "on", raw: "on", absent: true},
		{name: "empty", raw: "", absent: true},
	}

	t.Parallel()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := ParseState(tt.raw)
			assert.Equal(t, tt.absent, v.IsAbsent())
			assert.Equal(t, tt.expected, v.String())
		})
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{name: "absent", value: Absent(), expected: ""},
		{name: "text", value: Text("°C"), expected: "°C"},
		{name: "text with delimiter", value: Text("a,b"), expected: "a,b"},
		{name: "zero", value: Number(0), expected: "0.0"},
		{name: "negative zero", value: Number(math.Copysign(0, -1)), expected: "-0.0"},
		{name: "integral", value: Number(20), expected: "20.0"},
		{name: "fraction", value: Number(0.1), expected: "0.1"},
		{name: "small", value: Number(0.0001), expected: "0.0001"},
		{name: "below exponent threshold", value: Number(0.00001), expected: "1e-05"},
		{name: "large", value: Number(1e15), expected: "1000000000000000.0"},
		{name: "above exponent threshold", value: Number(1e16), expected: "1e+16"},
		{name: "large with mantissa", value: Number(1.5e17), expected: "1.5e+17"},
		{name: "positive infinity", value: Number(math.Inf(1)), expected: "inf"},
		{name: "negative infinity", value: Number(math.Inf(-1)), expected: "-inf"},
	}

	t.Parallel()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}
