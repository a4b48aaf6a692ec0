package patternio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/scandict/pattern"
)

// Sentinel errors for pattern file I/O.
var (
	// ErrUnsupportedWidth is returned for a width outside pattern.SupportedWidths.
	ErrUnsupportedWidth = errors.New("patternio: unsupported pattern width")

	// ErrEmptyInput is returned when the input holds no lines.
	ErrEmptyInput = errors.New("patternio: input is empty")

	// ErrLengthMismatch is returned when a line's length differs from the width.
	ErrLengthMismatch = errors.New("patternio: pattern length mismatch")
)

// LineError attaches a 1-based line number to a parse failure.
type LineError struct {
	Line int
	Err  error
}

// Error implements error.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error { return e.Err }

// Read parses r into patterns of the given width, in line order.
// The first bad line stops the read.
// Complexity: O(N·L).
func Read(r io.Reader, width int) ([]pattern.Pattern, error) {
	if !pattern.ValidWidth(width) {
		return nil, fmt.Errorf("%w: %d (want one of %v)", ErrUnsupportedWidth, width, pattern.SupportedWidths)
	}

	var out []pattern.Pattern
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if len(text) != width {
			return nil, &LineError{Line: line, Err: fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, width, len(text))}
		}
		p, err := pattern.Parse(text)
		if err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("patternio: read: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyInput
	}

	return out, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string, width int) ([]pattern.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("patternio: open input: %w", err)
	}
	defer f.Close()

	return Read(f, width)
}

// Write emits one pattern per line, each terminated by "\n".
func Write(w io.Writer, patterns []pattern.Pattern) error {
	bw := bufio.NewWriter(w)
	for _, p := range patterns {
		if _, err := bw.WriteString(p.String()); err != nil {
			return fmt.Errorf("patternio: write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("patternio: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("patternio: flush: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes patterns to it.
func WriteFile(path string, patterns []pattern.Pattern) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("patternio: create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("patternio: close output: %w", cerr)
		}
	}()

	return Write(f, patterns)
}
