package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/geobench/bench"
	"github.com/katalvlaran/geobench/datagen"
)

var (
	smallSizes = []int{100, 500, 1000, 5000}
	fullSizes  = []int{1000, 5000, 10000, 50000, 100000}
)

type allOptions struct {
	small   bool
	runs    int
	jobs    int
	dataset string
	verify  bool
}

func newAllCmd(g *globalOptions) *cobra.Command {
	o := &allOptions{}
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Benchmark every geometry algorithm over a range of sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAll(cmd, g, o)
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&o.small, "small", false, "use the small size range")
	fs.IntVarP(&o.runs, "runs", "r", 1, "repetitions per algorithm")
	fs.IntVar(&o.jobs, "jobs", 1, "datasets prepared concurrently")
	fs.StringVar(&o.dataset, "dataset", datagen.Random.String(), "dataset shape: random, circular, grid, clustered")
	fs.BoolVar(&o.verify, "verify", false, "cross-check results against reference computations")

	return cmd
}

func runAll(cmd *cobra.Command, g *globalOptions, o *allOptions) error {
	kind, err := datagen.ParseKind(o.dataset)
	if err != nil {
		return err
	}

	suite := bench.DefaultSuite()
	suite.Kind = kind
	suite.Gen.Seed = g.seed
	suite.Sizes = fullSizes
	if o.small {
		suite.Sizes = smallSizes
	}
	suite.BruteForceLimit = bruteForceLimit

	runner, err := bench.NewRunner(bench.Options{
		Runs:   o.runs,
		Verify: o.verify,
		Jobs:   o.jobs,
		Ctx:    cmd.Context(),
	})
	if err != nil {
		return err
	}

	g.logger.Info("suite started", "sizes", suite.Sizes, "kind", kind, "jobs", o.jobs, "runs", o.runs)
	if err = bench.RunSuite(cmd.Context(), runner, suite); err != nil {
		return err
	}
	g.logger.Info("suite finished", "results", len(runner.Results()))

	return emit(cmd, g, runner.Results())
}
