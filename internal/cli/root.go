// Package cli wires the percolation-stats command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/internal/report"
	"github.com/katalvlaran/percolation/montecarlo"
	"github.com/katalvlaran/percolation/percolation"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Flags are bound to the global viper
// instance, so callers that build several trees should viper.Reset between them.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "percolation-stats [n] [T]",
		Short: "Estimate the percolation threshold of an n×n grid",
		Long: "percolation-stats runs T Monte Carlo trials on an n×n grid, opening random sites until\n" +
			"the grid percolates, and prints the mean threshold, its standard deviation and a 95% confidence interval.",
		Args:              cobra.MaximumNArgs(2),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
		RunE:              runStats,
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default .percolation.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")

	f := cmd.Flags()
	f.Int64("seed", 0, "base random seed (0 = fixed default)")
	f.Int("workers", 1, "trials to run in parallel")
	f.Bool("verify", false, "cross-check every trial with a BFS recomputation")
	f.String("report", "", "write a TOML report to this path")
	f.Bool("progress", false, "show a progress bar on stderr")

	for _, key := range []string{"seed", "workers", "verify", "report", "progress"} {
		_ = viper.BindPFlag(key, f.Lookup(key))
	}
	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))

	cmd.AddCommand(newReplayCmd())
	return cmd
}

func initConfig(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".percolation")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PERCOLATION")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit one must load.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if len(args) > 0 {
		if cfg.Size, err = parsePositive(args[0], "grid size"); err != nil {
			return err
		}
	}
	if len(args) > 1 {
		if cfg.Trials, err = parsePositive(args[1], "trial count"); err != nil {
			return err
		}
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	logger.Info("starting experiment",
		slog.Int("size", cfg.Size),
		slog.String("sites", humanize.Comma(int64(cfg.Size)*int64(cfg.Size))),
		slog.Int("trials", cfg.Trials),
		slog.Int("workers", cfg.Workers),
		slog.Int64("seed", cfg.Seed),
		slog.Bool("verify", cfg.Verify))

	opts := []montecarlo.Option{
		montecarlo.WithSeed(cfg.Seed),
		montecarlo.WithWorkers(cfg.Workers),
		montecarlo.WithVerify(cfg.Verify),
	}
	if cfg.Progress {
		bar := newBar(cmd.ErrOrStderr(), cfg.Trials,
			fmt.Sprintf("%d×%d grid", cfg.Size, cfg.Size))
		defer bar.Close()
		opts = append(opts, montecarlo.WithProgress(func(_, _ int) { bar.Add(1) }))
	}

	res, err := montecarlo.Run(cmd.Context(), cfg.Size, cfg.Trials, opts...)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), res)
	logger.Debug("experiment finished", slog.Float64("mean", res.Mean()), slog.Float64("stddev", res.Stddev()))

	if cfg.Report != "" {
		if err = report.Write(cfg.Report, report.New(cfg, res)); err != nil {
			return err
		}
		logger.Info("report written", slog.String("path", cfg.Report))
	}
	return nil
}

func printSummary(w io.Writer, res *montecarlo.Result) {
	fmt.Fprintf(w, "mean = %v\n", res.Mean())
	fmt.Fprintf(w, "stddev = %v\n", res.Stddev())
	fmt.Fprintf(w, "95%% confidence interval = [%v, %v]\n", res.ConfidenceLo(), res.ConfidenceHi())
}

// parsePositive parses a strictly positive integer argument.
func parsePositive(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", percolation.ErrInvalidArgument, what, s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s %d must be positive", percolation.ErrInvalidArgument, what, v)
	}
	return v, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
