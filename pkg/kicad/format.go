package kicad

import (
	"strconv"
	"strings"
)

// NumberFormat renders a millimetre value.
type NumberFormat func(float64) string

// Significant formats with n significant digits, trailing zeros removed
// (printf %.<n>g).
func Significant(n int) NumberFormat {
	return func(v float64) string { return strconv.FormatFloat(v, 'g', n, 64) }
}

// Fixed formats with n digits after the decimal point (printf %.<n>f).
func Fixed(n int) NumberFormat {
	return func(v float64) string { return strconv.FormatFloat(v, 'f', n, 64) }
}

// Shortest formats with the fewest digits that parse back to v.
func Shortest(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// quote returns s as a double-quoted s-expression string.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
