package quake

import (
	"math"
	"strconv"
	"strings"
)

// Result is one prediction.
type Result struct {
	Magnitude float64 `json:"magnitude"`
	Distance  int     `json:"distance"`
}

// String renders the result as "<magnitude>,<distance>".
func (r Result) String() string {
	return FormatMagnitude(r.Magnitude) + "," + strconv.Itoa(r.Distance)
}

// FormatMagnitude writes f at shortest round-trip precision using Python's
// float repr conventions: fixed notation for 1e-4 <= |f| < 1e16 with at least
// one fractional digit, exponent notation otherwise.
func FormatMagnitude(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
