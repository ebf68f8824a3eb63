package earnings

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches the longest decimal literal at the start of the text:
// optional sign, digits with an optional fraction (or a bare fraction), and an
// optional exponent.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseNumericInput converts free-form text into a number. Only the leading
// numeric part is read, so "20%" is 20 and "1,000" is 1. It returns nil for
// empty, whitespace-only, non-numeric or non-finite text, so "no value" stays
// distinct from zero. Negative numbers are clamped to 0.
func ParseNumericInput(text string) *float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	prefix := leadingNumber.FindString(trimmed)
	if prefix == "" {
		return nil
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	if v <= 0 {
		v = 0 // also folds -0
	}
	return &v
}
