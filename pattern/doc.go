// Package pattern defines the test stimulus Pattern: a fixed-width string
// over the symbol alphabet {0, 1, X}, where X is a don't-care bit.
//
// What
//
//   - Symbol constants Zero, One and DontCare.
//   - Parse validates a raw line into a Pattern.
//   - Compatible reports whether two patterns can be merged: at every
//     position the symbols are equal or at least one of them is X.
//   - CareBits and DontCareDensity summarize how much of a pattern is defined.
//
// Why
//
//	Scan-based test compression stores a dictionary of patterns and relies on
//	don't-care bits to map many stimuli onto one entry. Compatibility is the
//	edge relation of the graph that the clique cover runs on.
//
// Complexity
//
//   - Parse, Compatible, CareBits: O(L) for width L.
//
// Errors
//
//   - ErrEmptyPattern if the input string is empty.
//   - ErrBadSymbol    if a character is outside {0,1,X}.
package pattern
