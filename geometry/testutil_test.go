package geometry_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/geobench/geometry"
)

const (
	// seedDet fixes every generated input in this package's tests.
	seedDet = int64(42)

	// epsTiny is used only where a value is recomputed through a different
	// float path (for example √2 against a literal).
	epsTiny = 1e-12
)

// randomPoints returns n points with coordinates uniform in [lo, hi).
func randomPoints(r *rand.Rand, n int, lo, hi float64) []geometry.Point {
	pts := make([]geometry.Point, n)
	for i := range pts {
		pts[i] = geometry.NewPoint(lo+r.Float64()*(hi-lo), lo+r.Float64()*(hi-lo))
	}

	return pts
}

// latticePoints returns n points on the integer lattice [0, side)², which
// makes exact ties, duplicates and collinear triples common.
func latticePoints(r *rand.Rand, n, side int) []geometry.Point {
	pts := make([]geometry.Point, n)
	for i := range pts {
		pts[i] = geometry.NewPoint(float64(r.Intn(side)), float64(r.Intn(side)))
	}

	return pts
}

// bruteNearest returns the point of pts closest to q by linear scan.
func bruteNearest(pts []geometry.Point, q geometry.Point) (geometry.Point, float64) {
	best := pts[0]
	bestD2 := math.Inf(1)
	for _, p := range pts {
		if d2 := q.DistanceSquaredTo(p); d2 < bestD2 {
			best, bestD2 = p, d2
		}
	}

	return best, bestD2
}

// pts is shorthand for literal point lists: pts(0,0, 1,1) == [(0,0) (1,1)].
func pts(xy ...float64) []geometry.Point {
	out := make([]geometry.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geometry.NewPoint(xy[i], xy[i+1]))
	}

	return out
}

// seg is shorthand for a segment literal.
func seg(x1, y1, x2, y2 float64) geometry.LineSegment {
	return geometry.NewLineSegment(geometry.NewPoint(x1, y1), geometry.NewPoint(x2, y2))
}
