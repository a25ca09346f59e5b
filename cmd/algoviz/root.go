package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/algoviz/internal/config"
	"github.com/katalvlaran/algoviz/internal/logging"
	"github.com/katalvlaran/algoviz/lab"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// app holds what every subcommand shares; it is filled in by setup.
var app struct {
	cfg     config.Config
	logger  *slog.Logger
	reg     *prometheus.Registry
	metrics *metrics.Metrics
	sink    *viz.TextSink
}

var rootCmd = &cobra.Command{
	Use:   "algoviz",
	Short: "algoviz runs classic algorithms one visible step at a time",
	Long: `algoviz animates BFS, DFS, Dijkstra, five comparison sorts and the Tower of Hanoi
in the terminal. While a run is in progress, type a key and Enter:
  p pause   r resume   t or blank line toggle   s step (hanoi)   q cancel`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error (overrides the config)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print cosmetic events and log every event at debug level")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print Prometheus metrics after the run")
}

func setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	verbose, _ := cmd.Flags().GetBool("verbose")

	app.cfg = cfg
	app.logger = logging.New(level)
	app.reg = prometheus.NewRegistry()
	app.metrics = metrics.New(app.reg)
	app.sink = viz.NewTextSink(cmd.OutOrStdout(), cfg.Color && !noColor && isTerminal(os.Stdout))
	app.sink.Verbose = verbose

	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if show, _ := cmd.Flags().GetBool("metrics"); !show || app.reg == nil {
		return nil
	}

	return dumpMetrics(cmd.OutOrStdout(), app.reg)
}

// labOptions returns the options shared by every lab.
func labOptions(cmd *cobra.Command) []lab.Option {
	verbose, _ := cmd.Flags().GetBool("verbose")
	var sink viz.Sink = app.sink
	if verbose {
		sink = viz.Multi(app.sink, viz.LogSink(app.logger))
	}

	return []lab.Option{
		lab.WithSink(sink),
		lab.WithLogger(app.logger),
		lab.WithMetrics(app.metrics),
		lab.WithRunOptions(
			run.WithQuantum(app.cfg.Run.Quantum),
			run.WithPollInterval(app.cfg.Run.Poll),
		),
	}
}

// dumpMetrics writes the text exposition of every family in g.
func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
