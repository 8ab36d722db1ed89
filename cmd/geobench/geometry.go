package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/geobench/bench"
	"github.com/katalvlaran/geobench/datagen"
	"github.com/katalvlaran/geobench/geometry"
	"github.com/katalvlaran/geobench/report"
)

// bruteForceLimit is the largest point count the O(n²) closest pair is
// timed on.
const bruteForceLimit = 20000

type geometryOptions struct {
	points   int
	runs     int
	dataset  string
	queries  int
	segments int
	verify   bool
	geojson  string
}

func newGeometryCmd(g *globalOptions) *cobra.Command {
	o := &geometryOptions{}
	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Benchmark every geometry algorithm on one dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGeometry(cmd, g, o)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&o.points, "points", "p", 10000, "number of points")
	fs.IntVarP(&o.runs, "runs", "r", 1, "repetitions per algorithm")
	fs.StringVar(&o.dataset, "dataset", datagen.Random.String(), "dataset shape: random, circular, grid, clustered")
	fs.IntVar(&o.queries, "queries", 1000, "nearest-neighbor queries")
	fs.IntVar(&o.segments, "segments", 1000, "segments for the intersection scan (0 skips it)")
	fs.BoolVar(&o.verify, "verify", false, "cross-check results against reference computations")
	fs.StringVar(&o.geojson, "geojson", "", "write points, hull, segments and closest pair as GeoJSON to `path`")

	return cmd
}

func runGeometry(cmd *cobra.Command, g *globalOptions, o *geometryOptions) error {
	kind, err := datagen.ParseKind(o.dataset)
	if err != nil {
		return err
	}

	genOpts := datagen.DefaultOptions()
	genOpts.Seed = g.seed
	gen, err := datagen.New(genOpts)
	if err != nil {
		return err
	}

	suite := bench.Suite{
		Sizes:           []int{o.points},
		Kind:            kind,
		Queries:         o.queries,
		Segments:        o.segments,
		BruteForceLimit: bruteForceLimit,
		Gen:             genOpts,
	}

	points, err := gen.Points(kind, o.points)
	if err != nil {
		return err
	}
	queries, err := gen.QueryPoints(o.queries)
	if err != nil {
		return err
	}
	segments, err := gen.RandomSegments(o.segments, (genOpts.Max-genOpts.Min)/10)
	if err != nil {
		return err
	}

	g.logger.Info("dataset ready",
		"kind", kind, "points", len(points), "queries", len(queries), "segments", len(segments), "seed", g.seed)
	if len(points) > bruteForceLimit {
		g.logger.Info("skipping brute-force closest pair", "points", len(points), "limit", bruteForceLimit)
	}

	runner, err := bench.NewRunner(bench.Options{
		Runs:   o.runs,
		Verify: o.verify,
		Jobs:   1,
		Ctx:    cmd.Context(),
	})
	if err != nil {
		return err
	}
	if err = runner.RunDataset(points, queries, segments, suite); err != nil {
		return err
	}

	if err = emit(cmd, g, runner.Results()); err != nil {
		return err
	}

	if o.geojson != "" {
		if err = report.SaveGeoJSON(o.geojson, scene(points, segments)); err != nil {
			return err
		}
		g.logger.Info("scene saved", "format", "geojson", "path", o.geojson)
	}

	return nil
}

// scene collects the dataset and its hull and closest pair for export.
// Only intersecting segments are included.
func scene(points []geometry.Point, segments []geometry.LineSegment) report.Scene {
	s := report.Scene{
		Points: points,
		Hull:   geometry.ConvexHullGrahamScan(points),
	}
	if cp, ok := geometry.ClosestPairDivideConquer(points); ok {
		s.ClosestPair = &cp
	}

	seen := make(map[int]bool)
	for _, pair := range geometry.FindIntersectingSegments(segments) {
		for _, i := range [...]int{pair.I, pair.J} {
			if !seen[i] {
				seen[i] = true
				s.Segments = append(s.Segments, segments[i])
			}
		}
	}

	return s
}
