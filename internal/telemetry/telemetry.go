// Package telemetry installs OpenTelemetry providers for the scandict CLI.
//
// Traces go to a writer (stderr in the CLI) through the stdout exporter.
// Metrics are collected through the OpenTelemetry Prometheus exporter into a
// private registry and written as a Prometheus text file on shutdown, for
// node_exporter's textfile collector or plain inspection. Nothing listens on
// the network.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

// ErrNilContext is returned when Init is called with a nil context.
var ErrNilContext = errors.New("telemetry: nil context")

// Config controls telemetry behavior. The zero value disables everything.
type Config struct {
	// ServiceName identifies this program in traces and metrics.
	ServiceName string

	// ServiceVersion is the version string for this program.
	ServiceVersion string

	// TraceWriter receives finished spans as JSON. nil disables tracing.
	TraceWriter io.Writer

	// MetricsFile receives a Prometheus text dump on shutdown. Empty
	// disables metrics.
	MetricsFile string
}

// Init installs the configured providers as the otel globals.
//
// Outputs:
//
//	shutdown - flushes spans, writes the metrics file and releases
//	providers. Always non-nil on success; must be called.
//	error - non-nil if an exporter cannot be created.
//
// Thread Safety: call once at program startup.
func Init(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	var shutdownFuncs []func(context.Context) error
	shutdown = func(ctx context.Context) error {
		var errs []error
		for _, fn := range shutdownFuncs {
			if err := fn(ctx); err != nil {
				errs = append(errs, err)
			}
		}

		return errors.Join(errs...)
	}

	name := cfg.ServiceName
	if name == "" {
		name = "scandict"
	}
	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", name),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	if cfg.TraceWriter != nil {
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(cfg.TraceWriter),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("telemetry: create trace exporter: %w", err)
		}
		tp := trace.NewTracerProvider(
			trace.WithSyncer(exporter),
			trace.WithResource(res),
			trace.WithSampler(trace.AlwaysSample()),
		)
		otel.SetTracerProvider(tp)
		shutdownFuncs = append(shutdownFuncs, tp.Shutdown)
	}

	if cfg.MetricsFile != "" {
		reg := prometheus.NewRegistry()
		exporter, err := promexporter.New(promexporter.WithRegisterer(reg))
		if err != nil {
			return nil, fmt.Errorf("telemetry: create prometheus exporter: %w", err)
		}
		mp := metric.NewMeterProvider(
			metric.WithResource(res),
			metric.WithReader(exporter),
		)
		otel.SetMeterProvider(mp)
		path := cfg.MetricsFile
		// the file is written before the provider shuts down, while the
		// exporter can still collect
		shutdownFuncs = append(shutdownFuncs,
			func(context.Context) error {
				if err := prometheus.WriteToTextfile(path, reg); err != nil {
					return fmt.Errorf("telemetry: write metrics file: %w", err)
				}
				return nil
			},
			mp.Shutdown,
		)
	}

	return shutdown, nil
}
