package tmb

import (
	"math"
	"strconv"
	"strings"
)

// FormatRate renders a rate as the shortest decimal that round-trips, always
// with a fractional part ("0.0", "1.0", "0.05263157894736842"). Very large or
// very small magnitudes use exponent notation ("1e+16", "5e-05").
func FormatRate(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}

	return s
}
