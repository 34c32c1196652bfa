package elevation

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// parseNumber converts the longest leading decimal literal of s to a float64.
// Anything without a leading literal ("", "abc", "N/A") is 0. Results that
// overflow to ±Inf are 0 too, keeping every Record encodable by encoding/json.
// Trailing garbage after the literal is ignored, so "12.5m" is 12.5.
func parseNumber(s string) float64 {
	end := decimalPrefix(s)
	if end == 0 {
		return 0
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f == 0 {
		return 0
	}
	return f
}

// decimalPrefix returns the length of the decimal literal at the start of s:
// an optional sign, digits with an optional fraction, and an optional exponent.
// It returns 0 when s does not start with a literal containing at least one digit.
func decimalPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits := i - start

	if i < len(s) && s[i] == '.' {
		j := i + 1
		fracStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if digits > 0 || j > fracStart {
			digits += j - fracStart
			i = j
		}
	}

	if digits == 0 {
		return 0
	}

	// Exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}

	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// trim strips Unicode whitespace and the U+FEFF byte-order mark from both ends.
func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
