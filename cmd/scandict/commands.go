package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/scandict/clique"
	"github.com/katalvlaran/scandict/compact"
	"github.com/katalvlaran/scandict/config"
	"github.com/katalvlaran/scandict/internal/telemetry"
	"github.com/katalvlaran/scandict/patternio"
)

const shutdownTimeout = 5 * time.Second

// flagValues mirrors config.Config for flag binding. Only flags the user set
// are applied over the loaded file.
type flagValues struct {
	configPath   string
	input        string
	output       string
	groups       int
	width        int
	workers      int
	degreePolicy string
	verify       bool
	showGroups   bool
	logLevel     string
	logFormat    string
	trace        bool
	metricsFile  string
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "scandict",
		Short:         "Compact scan-test patterns into a merged dictionary",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newCompactCmd(), newStatsCmd(), newConfigCmd())

	return rootCmd
}

func bindFlags(fs *pflag.FlagSet, fv *flagValues) {
	def := config.Default()
	fs.StringVar(&fv.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&fv.input, "input", "", "input pattern file, one pattern per line")
	fs.IntVar(&fv.groups, "groups", 0, "number of dictionary entries requested")
	fs.IntVar(&fv.width, "width", 0, "pattern width (4, 8, 16, 32 or 64)")
	fs.IntVar(&fv.workers, "workers", def.Workers, "workers for the compatibility scan")
	fs.StringVar(&fv.degreePolicy, "degree-policy", def.DegreePolicy, "seed ordering: original or remaining")
	fs.BoolVar(&fv.verify, "verify", def.Verify, "check every group and merged entry")
	fs.StringVar(&fv.logLevel, "log-level", def.Log.Level, "log level: debug, info, warn, error")
	fs.StringVar(&fv.logFormat, "log-format", def.Log.Format, "log format: text or json")
	fs.BoolVar(&fv.trace, "trace", false, "write trace spans to stderr")
	fs.StringVar(&fv.metricsFile, "metrics-file", "", "write Prometheus metrics to this file at exit")
}

// resolveConfig loads the optional file, applies set flags and validates.
func resolveConfig(fs *pflag.FlagSet, fv *flagValues) (config.Config, error) {
	cfg := config.Default()
	if fv.configPath != "" {
		var err error
		if cfg, err = config.Load(fv.configPath); err != nil {
			return cfg, err
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = fv.input
		case "output":
			cfg.Output = fv.output
		case "groups":
			cfg.Groups = fv.groups
		case "width":
			cfg.Width = fv.width
		case "workers":
			cfg.Workers = fv.workers
		case "degree-policy":
			cfg.DegreePolicy = fv.degreePolicy
		case "verify":
			cfg.Verify = fv.verify
		case "show-groups":
			cfg.ShowGroups = fv.showGroups
		case "log-level":
			cfg.Log.Level = fv.logLevel
		case "log-format":
			cfg.Log.Format = fv.logFormat
		case "trace":
			cfg.Telemetry.Trace = fv.trace
		case "metrics-file":
			cfg.Telemetry.MetricsFile = fv.metricsFile
		}
	})

	return cfg, nil
}

// applyPositional handles the <input> <groups> <width> <output> form.
func applyPositional(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if len(args) != 4 {
		return fmt.Errorf("expected <input> <groups> <width> <output>, got %d arguments", len(args))
	}
	groups, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("groups %q: %w", args[1], err)
	}
	width, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("width %q: %w", args[2], err)
	}
	cfg.Input, cfg.Groups, cfg.Width, cfg.Output = args[0], groups, width, args[3]

	return nil
}

func startTelemetry(ctx context.Context, cfg config.Config, stderr io.Writer) (func(), error) {
	tc := telemetry.Config{ServiceVersion: version, MetricsFile: cfg.Telemetry.MetricsFile}
	if cfg.Telemetry.Trace {
		tc.TraceWriter = stderr
	}
	shutdown, err := telemetry.Init(ctx, tc)
	if err != nil {
		return nil, err
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			fmt.Fprintln(stderr, "telemetry shutdown:", err)
		}
	}, nil
}

func compactOptions(cfg config.Config, log compact.Option) ([]compact.Option, error) {
	policy, err := clique.ParseDegreePolicy(cfg.DegreePolicy)
	if err != nil {
		return nil, err
	}

	return []compact.Option{
		log,
		compact.WithWorkers(cfg.Workers),
		compact.WithDegreePolicy(policy),
		compact.WithVerify(cfg.Verify),
	}, nil
}

func newCompactCmd() *cobra.Command {
	fv := &flagValues{}
	cmd := &cobra.Command{
		Use:   "compact [<input> <groups> <width> <output>]",
		Short: "Merge compatible patterns into dictionary entries",
		Long: `Reads one pattern per line over {0,1,X}, groups mutually compatible patterns
with a greedy clique cover and writes one merged pattern per group, largest
group first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), fv)
			if err != nil {
				return err
			}
			if err := applyPositional(&cfg, args); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runCompact(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	bindFlags(cmd.Flags(), fv)
	cmd.Flags().StringVar(&fv.output, "output", "", "output dictionary file")
	cmd.Flags().BoolVar(&fv.showGroups, "show-groups", false, "print each group's identities and size")

	return cmd
}

func runCompact(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cfg.Log, stderr)

	stop, err := startTelemetry(ctx, cfg, stderr)
	if err != nil {
		return err
	}
	defer stop()

	patterns, err := patternio.ReadFile(cfg.Input, cfg.Width)
	if err != nil {
		return err
	}
	opts, err := compactOptions(cfg, compact.WithLogger(logger))
	if err != nil {
		return err
	}
	res, err := compact.Compact(ctx, patterns, cfg.Groups, opts...)
	if err != nil {
		return err
	}
	if err := patternio.WriteFile(cfg.Output, res.Patterns); err != nil {
		return err
	}

	if cfg.ShowGroups {
		for i, ids := range res.Groups {
			parts := make([]string, len(ids))
			for j, id := range ids {
				parts[j] = strconv.Itoa(id)
			}
			fmt.Fprintf(stderr, "group %d: %s\n", i+1, strings.Join(parts, " "))
			fmt.Fprintf(stderr, "group %d size: %d\n", i+1, len(ids))
		}
	}
	if res.Shortfall() > 0 {
		fmt.Fprintf(stdout, "Only %d dictionary entries are possible\n", res.Produced)
		logger.Warn("compact: requested more entries than possible",
			"run_id", res.RunID,
			"requested", res.Requested,
			"produced", res.Produced,
		)
	}

	return nil
}

func newStatsCmd() *cobra.Command {
	fv := &flagValues{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report compatibility and don't-care density for a pattern file",
		Long: `Runs a compaction without writing output and reports pattern count, width,
compatibility edge count and mean don't-care density before and after. When
--groups is unset every pattern is covered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), fv)
			if err != nil {
				return err
			}
			// stats never writes a dictionary
			cfg.Output = "-"
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runStats(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	bindFlags(cmd.Flags(), fv)

	return cmd
}

func runStats(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cfg.Log, stderr)

	stop, err := startTelemetry(ctx, cfg, stderr)
	if err != nil {
		return err
	}
	defer stop()

	patterns, err := patternio.ReadFile(cfg.Input, cfg.Width)
	if err != nil {
		return err
	}
	requested := cfg.Groups
	if requested <= 0 {
		requested = len(patterns)
	}
	opts, err := compactOptions(cfg, compact.WithLogger(logger))
	if err != nil {
		return err
	}
	res, err := compact.Compact(ctx, patterns, requested, opts...)
	if err != nil {
		return err
	}

	s := compact.Summarize(patterns, res)
	rows := []struct {
		label string
		value string
	}{
		{"patterns", strconv.Itoa(s.Inputs)},
		{"width", strconv.Itoa(s.Width)},
		{"compatible pairs", strconv.Itoa(s.Edges)},
		{"components", strconv.Itoa(s.Components)},
		{"entries", strconv.Itoa(s.Entries)},
		{"x density in", fmt.Sprintf("%.3f", s.InputDensity)},
		{"x density out", fmt.Sprintf("%.3f", s.EntryDensity)},
		{"compression", fmt.Sprintf("%.1f%%", s.CompressionPct)},
	}
	for _, r := range rows {
		fmt.Fprintf(stdout, "%-18s%s\n", r.label+":", r.value)
	}

	return nil
}

func newConfigCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if path != "" {
				var err error
				if cfg, err = config.Load(path); err != nil {
					return err
				}
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "YAML configuration file")

	return cmd
}
