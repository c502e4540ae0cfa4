package cellfmt

import (
	"strings"
)

// Special ValueRule.Match keys.
const (
	// Wildcard matches any value no other rule matched.
	Wildcard = "*"
	// NullMatch matches empty values.
	NullMatch = "null"
)

// Mapping rewrites cell values to display text. It is implemented only by
// [ValueMap] and [RangeMap]; a nil Mapping leaves values untouched.
type Mapping interface {
	mapValue(v Value) (string, bool)
}

// ValueRule maps a value equal to Match onto Text.
type ValueRule struct {
	Match string `yaml:"value"`
	Text  string `yaml:"text"`
}

// ValueMap is an ordered list of discrete rules.
type ValueMap []ValueRule

// RangeRule maps numbers in [From, To) onto Text. A nil bound is open.
type RangeRule struct {
	From *float64 `yaml:"from"`
	To   *float64 `yaml:"to"`
	Text string   `yaml:"text"`
}

// RangeMap is an ordered list of numeric range rules.
type RangeMap []RangeRule

// Bound returns a pointer to f, for use in [RangeRule] literals.
func Bound(f float64) *float64 { return &f }

// MapValue applies m to v. It reports false when m is nil or no rule
// matched, in which case the caller keeps its own rendering of v.
func MapValue(v Value, m Mapping) (string, bool) {
	if m == nil {
		return "", false
	}
	return m.mapValue(v)
}

func (m ValueMap) mapValue(v Value) (string, bool) {
	if v.Kind != KindArray {
		return m.lookup(v)
	}
	parts := make([]string, len(v.Items))
	hit := false
	for i, item := range v.Items {
		text, ok := m.lookup(item)
		if ok {
			hit = true
		} else {
			text = item.String()
		}
		parts[i] = text
	}
	if !hit {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

// lookup finds the rule for a scalar: exact (or numerically equal) matches
// first, then case-insensitive text matches, then the wildcard.
func (m ValueMap) lookup(v Value) (string, bool) {
	if v.Kind == KindEmpty {
		for _, r := range m {
			if r.Match == NullMatch {
				return r.Text, true
			}
		}
		return "", false
	}
	for _, r := range m {
		if r.Match == Wildcard || r.Match == NullMatch {
			continue
		}
		if matchExact(v, r.Match) {
			return r.Text, true
		}
	}
	for _, r := range m {
		if r.Match == Wildcard || r.Match == NullMatch {
			continue
		}
		if strings.EqualFold(v.Text, r.Match) {
			return r.Text, true
		}
	}
	for _, r := range m {
		if r.Match == Wildcard {
			return r.Text, true
		}
	}
	return "", false
}

func matchExact(v Value, key string) bool {
	if n, ok := v.Numeric(); ok {
		if k, ok := parseNumber(key); ok {
			return n == k
		}
	}
	return v.Text == key
}

func (m RangeMap) mapValue(v Value) (string, bool) {
	n, ok := v.Numeric()
	if !ok {
		return "", false
	}
	for _, r := range m {
		if r.contains(n) {
			return r.Text, true
		}
	}
	return "", false
}

func (r RangeRule) contains(n float64) bool {
	if r.From != nil && n < *r.From {
		return false
	}
	if r.To != nil && n >= *r.To {
		return false
	}
	return true
}
