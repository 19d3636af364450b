package quake

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMagnitude(t *testing.T) {
	// Variables keep the sum in float64 arithmetic; a constant expression
	// would be folded to exactly 0.3.
	a, b := 0.1, 0.2

	tests := []struct {
		in   float64
		want string
	}{
		{6.5, "6.5"},
		{6.8234, "6.8234"},
		{7, "7.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{-3.25, "-3.25"},
		{a + b, "0.30000000000000004"},
		{1e-4, "0.0001"},
		{1e-5, "1e-05"},
		{1234567, "1234567.0"},
		{9999999999999998, "9999999999999998.0"},
		{1e16, "1e+16"},
		{1.5e20, "1.5e+20"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatMagnitude(tc.in), "FormatMagnitude(%v)", tc.in)
	}
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "6.8234,200", Result{Magnitude: 6.8234, Distance: 200}.String())
	assert.Equal(t, "7.0,500", Result{Magnitude: 7, Distance: 500}.String())
}
