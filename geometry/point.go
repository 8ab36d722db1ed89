package geometry

import (
	"fmt"
	"math"
	"strconv"

	"github.com/golang/geo/r2"
)

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec returns p as an r2.Point for vector arithmetic.
func (p Point) Vec() r2.Point {
	return r2.Point(p)
}

// DistanceTo returns the Euclidean distance between p and q.
//
// It is defined as the square root of DistanceSquaredTo, so the two are
// always consistent with each other.
func (p Point) DistanceTo(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredTo(q))
}

// DistanceSquaredTo returns the squared Euclidean distance between p and q.
// Use it wherever only the ordering of distances matters.
func (p Point) DistanceSquaredTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// String formats p as "(x, y)" using the shortest exact representation.
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}

// Cross returns the z component of (a−o)×(b−o):
//
//	(a.x−o.x)(b.y−o.y) − (a.y−o.y)(b.x−o.x)
//
// Positive means o→a→b turns counter-clockwise, negative clockwise,
// zero collinear.
func Cross(o, a, b Point) float64 {
	return a.Vec().Sub(o.Vec()).Cross(b.Vec().Sub(o.Vec()))
}

// Orientation classifies the turn o→a→b by the sign of Cross.
func Orientation(o, a, b Point) Turn {
	c := Cross(o, a, b)
	switch {
	case c > 0:
		return CounterClockwise
	case c < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// ValidatePoints reports the first point with a NaN or infinite coordinate.
// The returned error wraps ErrNonFinite and names the offending index.
//
// Complexity: O(n).
func ValidatePoints(points []Point) error {
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("%w: index %d %v", ErrNonFinite, i, p)
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
