package geometry

import (
	"errors"

	"github.com/golang/geo/r2"
)

// ErrNonFinite indicates a point with a NaN or infinite coordinate.
var ErrNonFinite = errors.New("geometry: point coordinates must be finite")

// Point is a 2-D point with float64 coordinates. Two points with equal
// coordinates are indistinguishable.
type Point r2.Point

// ClosestPairResult holds the two points realizing the minimum distance of
// a set, plus that distance. Distance == Point1.DistanceTo(Point2).
type ClosestPairResult struct {
	Point1   Point   `json:"point1"`
	Point2   Point   `json:"point2"`
	Distance float64 `json:"distance"`
}

// LineSegment is the closed segment between Start and End.
// Intersection tests do not depend on endpoint order.
type LineSegment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// IndexPair identifies two intersecting segments by their input indices, I < J.
type IndexPair struct {
	I, J int
}

// Turn classifies three points by the sign of their cross product.
type Turn int

const (
	// Collinear means the cross product is exactly zero.
	Collinear Turn = iota
	// CounterClockwise means a strict left turn (cross > 0).
	CounterClockwise
	// Clockwise means a strict right turn (cross < 0).
	Clockwise
)

// String returns a lower-case name for t.
func (t Turn) String() string {
	switch t {
	case CounterClockwise:
		return "counter-clockwise"
	case Clockwise:
		return "clockwise"
	default:
		return "collinear"
	}
}

// Axis selects the splitting coordinate of a k-d tree node.
type Axis int

const (
	// AxisX splits on the x coordinate.
	AxisX Axis = iota
	// AxisY splits on the y coordinate.
	AxisY
)

// coord returns the coordinate of p on axis a.
func (a Axis) coord(p Point) float64 {
	if a == AxisX {
		return p.X
	}

	return p.Y
}
