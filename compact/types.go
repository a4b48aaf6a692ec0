package compact

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/scandict/clique"
	"github.com/katalvlaran/scandict/pattern"
)

// Sentinel errors for the compaction pipeline.
var (
	// ErrUnusableInput is returned when the input cannot produce groups.
	ErrUnusableInput = errors.New("compact: unusable input")

	// ErrInternal is returned when an internal consistency check fails.
	ErrInternal = errors.New("compact: internal consistency failure")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("compact: invalid option supplied")
)

// Result is the outcome of one Compact run.
//   - RunID: unique id for log and trace correlation.
//   - Patterns: merged patterns, non-increasing group size.
//   - Groups: the identities behind each merged pattern, same order.
//   - Requested / Produced: the caller's count and the number of groups built.
//   - Exhausted: the graph ran out of vertices before Requested was reached.
//   - Edges: compatibility edges in the input graph.
//   - Components: connected components of that graph, a lower bound on the
//     entries a full cover needs.
type Result struct {
	RunID      string
	Patterns   []pattern.Pattern
	Groups     [][]int
	Requested  int
	Produced   int
	Exhausted  bool
	Edges      int
	Components int
}

// Shortfall returns how many requested groups could not be produced.
func (r *Result) Shortfall() int {
	if d := r.Requested - r.Produced; d > 0 {
		return d
	}

	return 0
}

// Option configures Compact via functional arguments.
type Option func(*Options)

// Options holds Compact parameters.
type Options struct {
	// Logger receives run summaries. Never nil after DefaultOptions.
	Logger *slog.Logger

	// Workers is passed to the compatibility builder.
	Workers int

	// Policy selects the cover's seed-ranking degree table.
	Policy clique.DegreePolicy

	// Verify enables the clique/coverage and merge-conflict checks.
	Verify bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns slog.Default(), one worker, OriginalDegree and
// verification on.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.Default(),
		Workers: 1,
		Policy:  clique.OriginalDegree,
		Verify:  true,
	}
}

// WithLogger sets the structured logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the compatibility scan parallelism (n >= 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithDegreePolicy selects the cover's degree policy.
func WithDegreePolicy(p clique.DegreePolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithVerify toggles the internal consistency checks.
func WithVerify(on bool) Option {
	return func(o *Options) { o.Verify = on }
}
