package pattern

import "fmt"

// ValidWidth reports whether n is one of SupportedWidths.
func ValidWidth(n int) bool {
	for _, w := range SupportedWidths {
		if w == n {
			return true
		}
	}

	return false
}

// IsDefined reports whether s carries a value (0 or 1).
func IsDefined(s Symbol) bool {
	return s == Zero || s == One
}

// Parse validates s and returns it as a Pattern.
// Stage 1 (Validate): reject the empty string.
// Stage 2 (Execute): check every character against the alphabet.
// Complexity: O(L).
func Parse(s string) (Pattern, error) {
	if s == "" {
		return "", ErrEmptyPattern
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Zero, One, DontCare:
		default:
			return "", fmt.Errorf("%w %q at position %d", ErrBadSymbol, s[i], i)
		}
	}

	return Pattern(s), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) Pattern {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

// Compatible reports whether a and b can be merged into one pattern:
// no position holds two different defined symbols.
// Patterns of different width are never compatible.
// The relation is symmetric; it says nothing about a pattern and itself.
// Complexity: O(L).
func Compatible(a, b Pattern) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] && a[i] != DontCare && b[i] != DontCare {
			return false
		}
	}

	return true
}

// CareBits counts the defined (non-X) positions of p.
func CareBits(p Pattern) int {
	n := 0
	for i := 0; i < len(p); i++ {
		if IsDefined(p[i]) {
			n++
		}
	}

	return n
}

// DontCareDensity returns the fraction of X positions in p, or 0 for an
// empty pattern.
func DontCareDensity(p Pattern) float64 {
	if len(p) == 0 {
		return 0
	}

	return float64(len(p)-CareBits(p)) / float64(len(p))
}
