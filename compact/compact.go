package compact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/scandict/bfs"
	"github.com/katalvlaran/scandict/clique"
	"github.com/katalvlaran/scandict/compat"
	"github.com/katalvlaran/scandict/pattern"
	"github.com/katalvlaran/scandict/reduce"
	"github.com/katalvlaran/scandict/registry"
)

// Compact groups mergeable patterns and returns up to requested merged
// patterns, largest groups first.
//
// Implementation:
//   - Stage 1: apply options; open span.
//   - Stage 2: register identities, build the compatibility table and count
//     its components.
//   - Stage 3: run the clique cover; verify it when enabled.
//   - Stage 4: sort groups by descending size and merge each one.
//
// Inputs:
//   - patterns: non-empty, equal-width patterns in input order.
//   - requested: dictionary size; <= 0 produces zero groups.
//
// Errors:
//   - ErrUnusableInput, ErrInternal, ErrOptionViolation (see package doc).
//
// Complexity: O(N²·L) for the graph plus the cover cost.
func Compact(ctx context.Context, patterns []pattern.Pattern, requested int, opts ...Option) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	runID := uuid.NewString()
	log := o.Logger.With(slog.String("run_id", runID))
	start := time.Now()
	ctx, span := startRunSpan(ctx, runID, len(patterns), requested)
	defer span.End()

	res, err := run(log, patterns, requested, o)
	recordRunMetrics(ctx, time.Since(start), res, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("compact: run failed", slog.Any("error", err))
		return nil, err
	}
	res.RunID = runID
	setRunSpanResult(span, res)

	log.Info("compact: run complete",
		slog.Int("patterns", len(patterns)),
		slog.Int("requested", res.Requested),
		slog.Int("produced", res.Produced),
		slog.Int("edges", res.Edges),
		slog.Bool("exhausted", res.Exhausted),
		slog.Duration("duration", time.Since(start)),
	)

	return res, nil
}

// run is the untraced pipeline body.
func run(log *slog.Logger, patterns []pattern.Pattern, requested int, o Options) (*Result, error) {
	reg, err := registry.New(patterns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnusableInput, err)
	}

	adj, err := compat.Build(reg, compat.WithWorkers(o.Workers))
	if err != nil {
		return nil, fmt.Errorf("compact: build compatibility graph: %w", err)
	}
	edges := adj.EdgeCount()
	comps, err := bfs.Components(adj)
	if err != nil {
		return nil, fmt.Errorf("compact: components: %w", err)
	}
	log.Debug("compact: compatibility graph built",
		slog.Int("vertices", adj.N()),
		slog.Int("edges", edges),
		slog.Int("components", len(comps)),
	)

	cover, err := clique.Cover(adj, requested,
		clique.WithDegreePolicy(o.Policy),
		clique.WithOnGroup(func(round int, g clique.Group) {
			log.Debug("compact: group extracted",
				slog.Int("round", round),
				slog.Int("seed_id", registry.ID(g.Seed())),
				slog.Int("size", g.Len()),
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}
	if o.Verify {
		// full coverage is only guaranteed once the cover ran dry
		if err := clique.Verify(adj, cover.Groups, cover.Exhausted); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	groups := make([]clique.Group, len(cover.Groups))
	copy(groups, cover.Groups)
	SortBySizeDesc(groups)

	res := &Result{
		Patterns:   make([]pattern.Pattern, 0, len(groups)),
		Groups:     make([][]int, 0, len(groups)),
		Requested:  requested,
		Produced:   len(groups),
		Exhausted:  cover.Exhausted,
		Edges:      edges,
		Components: len(comps),
	}
	for gi, g := range groups {
		ids, members := resolve(reg, g)
		if o.Verify {
			if err := reduce.Check(members); err != nil {
				return nil, fmt.Errorf("%w: group %d: %w", ErrInternal, gi, err)
			}
		}
		merged, err := reduce.Merge(members)
		if err != nil {
			return nil, fmt.Errorf("%w: group %d: %w", ErrInternal, gi, err)
		}
		res.Groups = append(res.Groups, ids)
		res.Patterns = append(res.Patterns, merged)
	}

	return res, nil
}

// resolve maps a group's table indices to identities and patterns, keeping
// group order.
func resolve(reg *registry.Registry, g clique.Group) ([]int, []pattern.Pattern) {
	ids := make([]int, len(g))
	members := make([]pattern.Pattern, len(g))
	for k, v := range g {
		ids[k] = registry.ID(v)
		members[k], _ = reg.Pattern(ids[k])
	}

	return ids, members
}
