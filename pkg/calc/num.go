package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseNum parses the textual form of an operand. Surrounding whitespace is
// ignored. The accepted syntax is the decimal subset of strconv.ParseFloat,
// which includes "inf" and "nan"; hexadecimal forms like "0x1p4" are
// rejected. Out-of-range values saturate to ±inf or 0.
func ParseNum(s string) (float64, error) {
	t := strings.TrimSpace(s)
	if isHex(t) {
		return 0, ParseError{What: "number", Text: s}
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, ParseError{What: "number", Text: s}
	}
	return f, nil
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// FormatNum formats an operand for use in expression labels and echoed
// expressions.
//
// Whole numbers always carry a fractional part, so 5 is formatted as "5.0".
// Scientific notation is used when the decimal exponent is below -4 or at
// least 16; otherwise the shortest decimal form that round-trips is used.
func FormatNum(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if exp := decimalExponent(f); f != 0 && (exp < -4 || exp >= 16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		return s + ".0"
	}
	return s
}

// FormatResult formats a result with exactly 4 digits after the decimal point.
func FormatResult(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', 4, 64)
}

// Returns the exponent of f in the shortest scientific notation, which is
// what log10 would give if it did not suffer from rounding.
func decimalExponent(f float64) int {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[i+1:])
	return exp
}
