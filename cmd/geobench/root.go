package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/geobench/bench"
	"github.com/katalvlaran/geobench/report"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	seed     int64
	logLevel string
	jsonPath string
	csvPath  string

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:           "geobench",
		Short:         "Benchmark closest pair, convex hull, segment intersection and k-d tree algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), g.logLevel)
			if err != nil {
				return err
			}
			g.logger = logger

			return nil
		},
	}
	bindGlobalFlags(root.PersistentFlags(), g)
	root.AddCommand(newGeometryCmd(g), newAllCmd(g))

	return root
}

func bindGlobalFlags(fs *pflag.FlagSet, g *globalOptions) {
	fs.Int64Var(&g.seed, "seed", 0, "RNG seed for generated data (0 = fixed default)")
	fs.StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&g.jsonPath, "json", "", "write results as JSON to `path`")
	fs.StringVar(&g.csvPath, "csv", "", "write results as CSV to `path`")
}

// newLogger returns a text logger on w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// emit prints the results table and writes the files requested by the
// global flags.
func emit(cmd *cobra.Command, g *globalOptions, results []bench.Result) error {
	if err := report.Display(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if g.jsonPath != "" {
		if err := report.SaveJSON(g.jsonPath, results); err != nil {
			return err
		}
		g.logger.Info("results saved", "format", "json", "path", g.jsonPath)
	}
	if g.csvPath != "" {
		if err := report.SaveCSV(g.csvPath, results); err != nil {
			return err
		}
		g.logger.Info("results saved", "format", "csv", "path", g.csvPath)
	}

	return nil
}
