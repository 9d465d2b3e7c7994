package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// nullSentinels are textual values treated as "no value".
var nullSentinels = map[string]struct{}{
	"":     {},
	"nan":  {},
	"null": {},
	"none": {},
	"n/a":  {},
	"-":    {},
}

// IsNullSentinel reports whether the trimmed, lower-cased value is one of the
// textual null markers commonly produced by spreadsheet exports.
func IsNullSentinel(s string) bool {
	_, ok := nullSentinels[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// ToFloat converts an arbitrary value to a float64. It never fails: any value
// that cannot be parsed yields 0.
//
// Handled input forms:
//   - numeric Go types (returned directly, NaN/Inf collapse to 0)
//   - thousands separators and internal spaces ("1,234.50")
//   - currency glyphs ("₹1,200", "$45")
//   - trailing percent signs ("12%")
//   - accounting-style parenthesized negatives ("(500)")
//   - null sentinels ("", "nan", "null", nil)
func ToFloat(val any) float64 {
	switch v := val.(type) {
	case nil:
		return 0
	case float64:
		return sanitize(v)
	case float32:
		return sanitize(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		return parseFloat(v)
	case []byte:
		return parseFloat(string(v))
	default:
		return parseFloat(fmt.Sprintf("%v", v))
	}
}

// ToInt converts an arbitrary value to an int64 by truncating the float
// conversion toward zero. Like ToFloat, it never fails.
func ToInt(val any) int64 {
	return int64(ToFloat(val))
}

func parseFloat(raw string) float64 {
	s := strings.TrimSpace(raw)
	if IsNullSentinel(s) {
		return 0
	}

	// Accounting notation: (500) means -500.
	negative := false
	if len(s) >= 2 && strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.NewReplacer(",", "", " ", "", "₹", "", "$", "").Replace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if negative {
		f = -f
	}
	return sanitize(f)
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
