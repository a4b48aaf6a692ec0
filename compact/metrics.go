package compact

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName names the tracer and meter of this package.
const instrumentationName = "github.com/katalvlaran/scandict/compact"

// Metrics for compaction runs.
var (
	runLatency     metric.Float64Histogram
	runTotal       metric.Int64Counter
	groupsProduced metric.Int64Histogram
	compatEdges    metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments on the global meter. Safe to call
// multiple times; the meter is resolved on first use so providers installed
// before the first run are honored.
func initMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.Meter(instrumentationName)
		var err error

		runLatency, err = meter.Float64Histogram(
			"scandict_compact_duration_seconds",
			metric.WithDescription("Duration of compaction runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runTotal, err = meter.Int64Counter(
			"scandict_compact_runs_total",
			metric.WithDescription("Total number of compaction runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		groupsProduced, err = meter.Int64Histogram(
			"scandict_groups_produced",
			metric.WithDescription("Number of dictionary entries produced per run"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		compatEdges, err = meter.Int64Histogram(
			"scandict_compat_edges",
			metric.WithDescription("Number of compatibility edges per run"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// recordRunMetrics records metrics for one run.
func recordRunMetrics(ctx context.Context, d time.Duration, res *Result, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	runLatency.Record(ctx, d.Seconds(), attrs)
	runTotal.Add(ctx, 1, attrs)
	if success && res != nil {
		groupsProduced.Record(ctx, int64(res.Produced))
		compatEdges.Record(ctx, int64(res.Edges))
	}
}

// startRunSpan opens the span for one run.
func startRunSpan(ctx context.Context, runID string, patterns, requested int) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, "compact.Compact",
		trace.WithAttributes(
			attribute.String("scandict.run_id", runID),
			attribute.Int("scandict.patterns", patterns),
			attribute.Int("scandict.requested", requested),
		),
	)
}

// setRunSpanResult sets the result attributes on a run span.
func setRunSpanResult(span trace.Span, res *Result) {
	span.SetAttributes(
		attribute.Int("scandict.produced", res.Produced),
		attribute.Int("scandict.edges", res.Edges),
		attribute.Bool("scandict.exhausted", res.Exhausted),
	)
}
