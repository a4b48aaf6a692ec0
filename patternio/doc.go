// Package patternio reads and writes line-oriented pattern files.
//
// Format: one pattern per line, every line exactly width symbols over
// {0,1,X}. A trailing "\r" is stripped so CRLF files load unchanged. The
// width must be one of pattern.SupportedWidths.
//
// Errors carry the 1-based line number:
//
//   - ErrUnsupportedWidth  width not in {4,8,16,32,64}.
//   - ErrEmptyInput        no lines at all.
//   - ErrLengthMismatch    a line's length differs from width.
//   - pattern.ErrBadSymbol a line holds a character outside {0,1,X}.
package patternio
