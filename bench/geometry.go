package bench

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/geobench/geometry"
)

// ClosestPairBruteForce times geometry.ClosestPairBruteForce.
func (r *Runner) ClosestPairBruteForce(points []geometry.Point) (Result, error) {
	if err := geometry.ValidatePoints(points); err != nil {
		return Result{}, err
	}

	var got geometry.ClosestPairResult
	res, err := r.Measure(NameClosestPairBruteForce, len(points), func() error {
		got, _ = geometry.ClosestPairBruteForce(points)

		return nil
	})
	if err != nil {
		return Result{}, err
	}
	if r.opts.Verify {
		if err = verifyPairDistance(got, len(points)); err != nil {
			return Result{}, err
		}
	}

	return res, nil
}

// ClosestPair times geometry.ClosestPairDivideConquer. With Verify it
// checks the distance against the brute-force scan.
func (r *Runner) ClosestPair(points []geometry.Point) (Result, error) {
	if err := geometry.ValidatePoints(points); err != nil {
		return Result{}, err
	}

	var (
		got geometry.ClosestPairResult
		ok  bool
	)
	res, err := r.Measure(NameClosestPair, len(points), func() error {
		got, ok = geometry.ClosestPairDivideConquer(points)

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if r.opts.Verify {
		want, wantOK := geometry.ClosestPairBruteForce(points)
		if ok != wantOK || got.Distance != want.Distance {
			return Result{}, fmt.Errorf("%w: closest pair distance %v, brute force %v", ErrVerification, got.Distance, want.Distance)
		}
		if err = verifyPairDistance(got, len(points)); err != nil {
			return Result{}, err
		}
	}

	return res, nil
}

// verifyPairDistance checks the ClosestPairResult invariant.
func verifyPairDistance(got geometry.ClosestPairResult, n int) error {
	if n < 2 {
		return nil
	}
	if d := got.Point1.DistanceTo(got.Point2); d != got.Distance {
		return fmt.Errorf("%w: pair %v-%v reports %v, actual %v", ErrVerification, got.Point1, got.Point2, got.Distance, d)
	}

	return nil
}

// ConvexHull times geometry.ConvexHullGrahamScan. With Verify it checks
// that every input point lies in the hull.
func (r *Runner) ConvexHull(points []geometry.Point) (Result, error) {
	if err := geometry.ValidatePoints(points); err != nil {
		return Result{}, err
	}

	var hull []geometry.Point
	res, err := r.Measure(NameConvexHull, len(points), func() error {
		hull = geometry.ConvexHullGrahamScan(points)

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if r.opts.Verify && len(points) >= 3 {
		outside := lo.Filter(points, func(p geometry.Point, _ int) bool {
			return !geometry.HullContains(hull, p)
		})
		if len(outside) > 0 {
			return Result{}, fmt.Errorf("%w: %d points outside hull, first %v", ErrVerification, len(outside), outside[0])
		}
	}

	return res, nil
}

// SegmentIntersections times geometry.FindIntersectingSegments. With
// Verify it re-tests every reported pair in swapped order.
func (r *Runner) SegmentIntersections(segments []geometry.LineSegment) (Result, error) {
	ends := make([]geometry.Point, 0, 2*len(segments))
	for _, s := range segments {
		ends = append(ends, s.Start, s.End)
	}
	if err := geometry.ValidatePoints(ends); err != nil {
		return Result{}, err
	}

	var pairs []geometry.IndexPair
	res, err := r.Measure(NameSegmentIntersections, len(segments), func() error {
		pairs = geometry.FindIntersectingSegments(segments)

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if r.opts.Verify {
		for _, p := range pairs {
			if p.I >= p.J || !segments[p.J].Intersects(segments[p.I]) {
				return Result{}, fmt.Errorf("%w: segment pair %+v", ErrVerification, p)
			}
		}
	}

	return res, nil
}

// KdTreeBuild times geometry.BuildKdTree and returns the last tree built
// alongside the Result.
func (r *Runner) KdTreeBuild(points []geometry.Point) (*geometry.KdTree, Result, error) {
	if err := geometry.ValidatePoints(points); err != nil {
		return nil, Result{}, err
	}

	var tree *geometry.KdTree
	res, err := r.Measure(NameKdTreeBuild, len(points), func() error {
		tree = geometry.BuildKdTree(points)

		return nil
	})
	if err != nil {
		return nil, Result{}, err
	}

	if r.opts.Verify && tree.Len() != len(points) {
		return nil, Result{}, fmt.Errorf("%w: tree holds %d of %d points", ErrVerification, tree.Len(), len(points))
	}

	return tree, res, nil
}

// KdTreeQueries times one NearestNeighbor call per query against tree.
// The Result's DataSize is the tree size. With Verify every answer is
// compared with a linear scan of points, the set the tree was built from.
func (r *Runner) KdTreeQueries(tree *geometry.KdTree, points, queries []geometry.Point) (Result, error) {
	if err := geometry.ValidatePoints(queries); err != nil {
		return Result{}, err
	}

	answers := make([]geometry.Point, len(queries))
	res, err := r.Measure(NameKdTreeQueries, tree.Len(), func() error {
		for i, q := range queries {
			answers[i], _ = tree.NearestNeighbor(q)
		}

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if r.opts.Verify && len(points) > 0 {
		for i, q := range queries {
			want := lo.MinBy(points, func(a, b geometry.Point) bool {
				return q.DistanceSquaredTo(a) < q.DistanceSquaredTo(b)
			})
			if q.DistanceSquaredTo(answers[i]) != q.DistanceSquaredTo(want) {
				return Result{}, fmt.Errorf("%w: nearest to %v is %v, tree returned %v", ErrVerification, q, want, answers[i])
			}
		}
	}

	return res, nil
}
