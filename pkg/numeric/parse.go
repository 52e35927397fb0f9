// Package numeric parses free-text user input into validated numbers.
//
// Every parser returns a Parsed value tagged valid or invalid instead of an
// error; callers branch on the tag and substitute zero when invalid. Input is
// locale-tolerant: whitespace (including non-breaking spaces) is stripped and a
// decimal comma is accepted in place of a period.
package numeric

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parsed is the result of validating one text field. When Valid is false the
// Value must not be trusted downstream.
type Parsed struct {
	Value float64
	Valid bool
}

func normalize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if r == ',' {
			b.WriteByte('.')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseNumber parses locale-tolerant decimal text. Empty strings and
// non-finite results are invalid.
func ParseNumber(text string) Parsed {
	normalized := normalize(text)
	if normalized == "" {
		return Parsed{Value: math.NaN(), Valid: false}
	}
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return Parsed{Value: math.NaN(), Valid: false}
	}
	return Parsed{Value: value, Valid: true}
}

// ParsePositive parses text and requires a strictly positive value.
func ParsePositive(text string) Parsed {
	result := ParseNumber(text)
	if !result.Valid || result.Value <= 0 {
		return Parsed{Value: math.NaN(), Valid: false}
	}
	return result
}

// ParseNonNegative parses text and requires a value of at least zero.
func ParseNonNegative(text string) Parsed {
	result := ParseNumber(text)
	if !result.Valid || result.Value < 0 {
		return Parsed{Value: math.NaN(), Valid: false}
	}
	return result
}

// ParsePercentage parses text and requires a value within the inclusive
// [min, max] range. An out-of-range value keeps its parsed Value (for error
// messaging) but is tagged invalid.
func ParsePercentage(text string, min, max float64) Parsed {
	result := ParseNumber(text)
	if !result.Valid {
		return Parsed{Value: math.NaN(), Valid: false}
	}
	if result.Value < min || result.Value > max {
		return Parsed{Value: result.Value, Valid: false}
	}
	return result
}
