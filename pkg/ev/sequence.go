package ev

import (
	"strconv"
	"strings"
)

// ParseSequence turns a comma-separated exposure sequence string into an
// ordered list of values. Each token is either "num/den" (den nonzero) or a
// plain integer; surrounding whitespace is ignored. Tokens that parse as
// neither are dropped without error — callers decide whether the remaining
// list is long enough to be useful. Order and duplicates are preserved.
func ParseSequence(s string) []Value {
	var out []Value
	for _, token := range strings.Split(s, ",") {
		if v, ok := Parse(strings.TrimSpace(token)); ok {
			out = append(out, v)
		}
	}
	return out
}

// Parse parses a single token: "num/den" with a nonzero denominator, or a
// plain integer.
func Parse(token string) (Value, bool) {
	if num, den, ok := strings.Cut(token, "/"); ok {
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return Value{}, false
		}
		d, err := strconv.ParseInt(den, 10, 64)
		if err != nil {
			return Value{}, false
		}
		return New(n, d)
	}
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return Value{}, false
	}
	return FromInt(n), true
}

// FormatSequence renders values as a sequence string that ParseSequence
// accepts. Parsing the result yields the same rationals.
func FormatSequence(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}
