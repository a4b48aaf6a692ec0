package compat

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph building.
var (
	// ErrRegistryNil is returned if a nil registry is passed.
	ErrRegistryNil = errors.New("compat: registry is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("compat: invalid option supplied")
)

// Option configures Build via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// Workers is the number of goroutines used for the pairwise scan.
	// 1 means sequential.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns sequential build options.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers sets the number of scan goroutines.
//
//	n >= 1: use n workers (1 = sequential)
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
