package pattern

import "errors"

// Symbol is one position of a Pattern.
type Symbol = byte

// The pattern alphabet.
const (
	Zero     Symbol = '0'
	One      Symbol = '1'
	DontCare Symbol = 'X'
)

// Sentinel errors for pattern parsing.
var (
	// ErrEmptyPattern indicates an empty input string.
	ErrEmptyPattern = errors.New("pattern: empty pattern")

	// ErrBadSymbol indicates a character outside {0,1,X}.
	ErrBadSymbol = errors.New("pattern: invalid symbol")
)

// SupportedWidths lists the pattern widths accepted by the loader, ascending.
var SupportedWidths = []int{4, 8, 16, 32, 64}

// Pattern is an immutable symbol string over {0,1,X}.
type Pattern string

// Width returns the number of symbols in p.
func (p Pattern) Width() int { return len(p) }

// At returns the symbol at position i. It panics if i is out of range,
// like indexing a string.
func (p Pattern) At(i int) Symbol { return p[i] }

// String implements fmt.Stringer.
func (p Pattern) String() string { return string(p) }
