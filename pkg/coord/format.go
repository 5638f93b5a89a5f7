package coord

import (
	"math"
	"strconv"
	"strings"
)

// DefaultFractionDigits is the precision used by Format without options.
const DefaultFractionDigits = 6

type formatOptions struct {
	fractionDigits int
}

// FormatOption configures Format.
type FormatOption func(*formatOptions)

// WithFractionDigits rounds each value to n decimal places. Zero or a negative
// n disables rounding.
func WithFractionDigits(n int) FormatOption {
	return func(o *formatOptions) {
		o.fractionDigits = n
	}
}

// Format renders c as "<lat>,<lng>".
//
// Non-finite values print as NaN, Infinity and -Infinity. Without rounding,
// magnitudes below 1e-6 or from 1e21 up use exponent form ("1e-7", "1.5e+21");
// otherwise the shortest decimal that reads back to the same value is used.
func Format(c Coordinate, opts ...FormatOption) string {
	o := formatOptions{fractionDigits: DefaultFractionDigits}
	for _, opt := range opts {
		opt(&o)
	}
	return formatNumber(c.Lat, o.fractionDigits) + "," + formatNumber(c.Lng, o.fractionDigits)
}

func formatNumber(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// negative zero prints without a sign
		v = 0
	}

	abs := math.Abs(v)
	if abs >= 1e21 || (digits <= 0 && abs < 1e-6 && abs != 0) {
		return exponent(v)
	}
	if digits <= 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// exponent renders v as "<mantissa>e<sign><exp>" without exponent padding.
func exponent(v float64) string {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
