package bench

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geobench/datagen"
	"github.com/katalvlaran/geobench/geometry"
)

// Suite describes a multi-size geometry benchmark.
//
// Fields:
//   - Sizes:           point counts, measured in the given order.
//   - Kind:            dataset shape for every size.
//   - Queries:         nearest-neighbor queries per size (0 skips them).
//   - Segments:        segment count per size for the intersection scan;
//     0 skips it. The scan is O(n²), keep this small.
//   - BruteForceLimit: sizes above this skip the O(n²) closest pair.
//   - Gen:             generator options; per-size streams are derived
//     from it, so results do not depend on Jobs.
type Suite struct {
	Sizes           []int
	Kind            datagen.Kind
	Queries         int
	Segments        int
	BruteForceLimit int
	Gen             datagen.Options
}

// DefaultSuite returns the small comprehensive suite on random points.
func DefaultSuite() Suite {
	return Suite{
		Sizes:           []int{100, 500, 1000, 5000},
		Kind:            datagen.Random,
		Queries:         1000,
		Segments:        1000,
		BruteForceLimit: 20000,
		Gen:             datagen.DefaultOptions(),
	}
}

// dataset is the prepared input for one size.
type dataset struct {
	points   []geometry.Point
	queries  []geometry.Point
	segments []geometry.LineSegment
}

// RunSuite prepares every dataset concurrently, at most r.Options().Jobs
// at a time, then measures each size sequentially on r.
//
// Preparation for size index i uses Derive(uint64(i)) of a generator built
// from s.Gen, so the data is identical for any Jobs value.
func RunSuite(ctx context.Context, r *Runner, s Suite) error {
	if len(s.Sizes) == 0 {
		return ErrEmptySuite
	}

	root, err := datagen.New(s.Gen)
	if err != nil {
		return err
	}

	data := make([]dataset, len(s.Sizes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Jobs)
	for i, n := range s.Sizes {
		i, n := i, n
		gen := root.Derive(uint64(i))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ds, err := prepare(gen, s, n)
			if err != nil {
				return fmt.Errorf("bench: prepare size %d: %w", n, err)
			}
			data[i] = ds

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	for i, n := range s.Sizes {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = r.measureAll(data[i], n, s); err != nil {
			return err
		}
	}

	return nil
}

// prepare generates the points, queries and segments for one size.
func prepare(gen *datagen.Generator, s Suite, n int) (dataset, error) {
	var (
		ds  dataset
		err error
	)
	if ds.points, err = gen.Points(s.Kind, n); err != nil {
		return dataset{}, err
	}
	if ds.queries, err = gen.QueryPoints(s.Queries); err != nil {
		return dataset{}, err
	}
	if ds.segments, err = gen.RandomSegments(s.Segments, segmentLength(gen.Options())); err != nil {
		return dataset{}, err
	}

	return ds, nil
}

// segmentLength is a tenth of the coordinate span, short enough that the
// intersection count stays well below n².
func segmentLength(o datagen.Options) float64 {
	return (o.Max - o.Min) / 10
}

// measureAll runs every geometry measurement for one prepared dataset.
func (r *Runner) measureAll(ds dataset, n int, s Suite) error {
	if n <= s.BruteForceLimit {
		if _, err := r.ClosestPairBruteForce(ds.points); err != nil {
			return err
		}
	}
	if _, err := r.ClosestPair(ds.points); err != nil {
		return err
	}
	if _, err := r.ConvexHull(ds.points); err != nil {
		return err
	}

	tree, _, err := r.KdTreeBuild(ds.points)
	if err != nil {
		return err
	}
	if len(ds.queries) > 0 {
		if _, err = r.KdTreeQueries(tree, ds.points, ds.queries); err != nil {
			return err
		}
	}

	if len(ds.segments) > 0 {
		if _, err = r.SegmentIntersections(ds.segments); err != nil {
			return err
		}
	}

	return nil
}

// RunDataset measures one explicit dataset with the same sequence as
// RunSuite; used by the CLI for single-size runs.
func (r *Runner) RunDataset(points, queries []geometry.Point, segments []geometry.LineSegment, s Suite) error {
	return r.measureAll(dataset{points: points, queries: queries, segments: segments}, len(points), s)
}
