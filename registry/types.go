package registry

import "errors"

// BaseID is the identity of the first input pattern.
const BaseID = 1

// Sentinel errors for registry construction.
var (
	// ErrEmptyInput indicates that no patterns were supplied.
	ErrEmptyInput = errors.New("registry: empty input")

	// ErrWidthMismatch indicates that the input patterns differ in width.
	ErrWidthMismatch = errors.New("registry: pattern width mismatch")
)
