package geometry

import "github.com/golang/geo/r2"

// NewLineSegment returns the segment from start to end.
func NewLineSegment(start, end Point) LineSegment {
	return LineSegment{Start: start, End: end}
}

// Length returns the Euclidean length of s.
func (s LineSegment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

// Bounds returns the axis-aligned bounding box of s. Containment is
// inclusive on every side.
func (s LineSegment) Bounds() r2.Rect {
	return r2.RectFromPoints(s.Start.Vec(), s.End.Vec())
}

// Intersects reports whether s and other share at least one point,
// including touching endpoints and collinear overlap.
//
// A proper crossing is detected when each segment's endpoints lie strictly
// on opposite sides of the other segment's line. Otherwise an endpoint with
// a zero orientation intersects only if it falls inside the other
// segment's bounding box.
//
// The result is symmetric: s.Intersects(o) == o.Intersects(s).
//
// Complexity: O(1).
func (s LineSegment) Intersects(other LineSegment) bool {
	d1 := Cross(other.Start, other.End, s.Start)
	d2 := Cross(other.Start, other.End, s.End)
	d3 := Cross(s.Start, s.End, other.Start)
	d4 := Cross(s.Start, s.End, other.End)

	if straddles(d1, d2) && straddles(d3, d4) {
		return true
	}

	ob := other.Bounds()
	sb := s.Bounds()

	return (d1 == 0 && ob.ContainsPoint(s.Start.Vec())) ||
		(d2 == 0 && ob.ContainsPoint(s.End.Vec())) ||
		(d3 == 0 && sb.ContainsPoint(other.Start.Vec())) ||
		(d4 == 0 && sb.ContainsPoint(other.End.Vec()))
}

// straddles reports whether a and b have strictly opposite signs.
func straddles(a, b float64) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}

// FindIntersectingSegments returns every intersecting pair (i, j), i < j,
// in lexicographic order.
//
// The scan is exhaustive; no sweep line is used.
//
// Complexity: O(n²) time.
func FindIntersectingSegments(segments []LineSegment) []IndexPair {
	pairs := make([]IndexPair, 0)
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			if segments[i].Intersects(segments[j]) {
				pairs = append(pairs, IndexPair{I: i, J: j})
			}
		}
	}

	return pairs
}
