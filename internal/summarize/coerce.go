package summarize

import (
	"math"
	"strconv"
	"strings"
)

// coerceNumeric converts a raw cell to a float, best-effort. Rating
// cells are usually bare digits, but exports occasionally carry
// thousands separators or percent signs; those are stripped before
// parsing. Anything unparseable, infinite or NaN counts as missing.
func coerceNumeric(cell string) (float64, bool) {
	cleanVal := strings.TrimSpace(cell)
	if cleanVal == "" {
		return 0, false
	}

	cleanVal = strings.ReplaceAll(cleanVal, "%", "")
	cleanVal = strings.ReplaceAll(cleanVal, ",", "")
	cleanVal = strings.TrimSpace(cleanVal)

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

// round2 rounds to 2 decimal places, the precision used everywhere a
// mean is reported.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
