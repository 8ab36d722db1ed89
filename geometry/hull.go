package geometry

import "sort"

// ConvexHullGrahamScan returns the vertices of the convex hull of points in
// counter-clockwise order, starting from the lowest point (smallest x among
// equal y).
//
// Fewer than 3 points are returned unchanged (as a copy).
//
// Steps:
//  1. Pick the anchor: minimum y, ties broken by minimum x.
//  2. Drop every copy of the anchor and sort the rest by polar angle around
//     it. Angles are compared with the orientation predicate; points on the
//     same ray from the anchor are ordered nearer first.
//  3. Scan in angular order: while the last two stack entries and the
//     candidate do not make a strict left turn (Cross <= 0), pop; then push.
//  4. Pop trailing vertices collinear with the closing edge back to the
//     anchor.
//
// Collinear boundary points are therefore never hull vertices; collinear
// input yields only its two extreme points.
//
// Complexity: O(n log n) time, O(n) memory.
func ConvexHullGrahamScan(points []Point) []Point {
	if len(points) < 3 {
		out := make([]Point, len(points))
		copy(out, points)

		return out
	}

	// 1. Anchor.
	anchor := points[0]
	for _, p := range points[1:] {
		if p.Y < anchor.Y || (p.Y == anchor.Y && p.X < anchor.X) {
			anchor = p
		}
	}

	// 2. Angular order around the anchor. Every other point lies in the
	// half-plane above the anchor (or to its right on the same row), so
	// the orientation sign alone orders angles in [0, π).
	rest := make([]Point, 0, len(points)-1)
	for _, p := range points {
		if p != anchor {
			rest = append(rest, p)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		c := Cross(anchor, rest[i], rest[j])
		if c != 0 {
			return c > 0
		}

		return anchor.DistanceSquaredTo(rest[i]) < anchor.DistanceSquaredTo(rest[j])
	})

	// 3. Monotone stack.
	hull := make([]Point, 0, len(rest)+1)
	hull = append(hull, anchor)
	for _, p := range rest {
		for len(hull) > 1 && Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// 4. Closing edge.
	for len(hull) > 2 && Cross(hull[len(hull)-2], hull[len(hull)-1], anchor) <= 0 {
		hull = hull[:len(hull)-1]
	}

	return hull
}

// HullContains reports whether p lies inside or on the boundary of the
// convex polygon hull, given in counter-clockwise order.
//
// Degenerate hulls are handled as their point sets: a single point contains
// only itself, two points contain the segment between them.
//
// Complexity: O(len(hull)).
func HullContains(hull []Point, p Point) bool {
	switch len(hull) {
	case 0:
		return false
	case 1:
		return hull[0] == p
	case 2:
		seg := LineSegment{Start: hull[0], End: hull[1]}

		return Cross(hull[0], hull[1], p) == 0 && seg.Bounds().ContainsPoint(p.Vec())
	}

	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		if Cross(a, b, p) < 0 {
			return false
		}
	}

	return true
}
