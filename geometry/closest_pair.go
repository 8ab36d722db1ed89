package geometry

import (
	"math"
	"sort"
)

// bruteForceCutoff is the subproblem size at or below which the
// divide-and-conquer recursion switches to the brute-force scan.
const bruteForceCutoff = 3

// ClosestPairBruteForce returns the closest pair of points by examining
// every unordered pair (i, j), i < j, in index order.
//
// Ties are resolved by the strict '<' update rule: the lexicographically
// smallest (i, j) among minimal pairs wins.
//
// Returns ok == false when len(points) < 2.
//
// Complexity: O(n²) time, O(1) extra memory.
func ClosestPairBruteForce(points []Point) (ClosestPairResult, bool) {
	if len(points) < 2 {
		return ClosestPairResult{}, false
	}

	best := ClosestPairResult{
		Point1:   points[0],
		Point2:   points[1],
		Distance: math.Inf(1),
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := points[i].DistanceTo(points[j])
			if d < best.Distance {
				best = ClosestPairResult{Point1: points[i], Point2: points[j], Distance: d}
			}
		}
	}

	return best, true
}

// ClosestPairDivideConquer returns a closest pair of points in O(n log n).
//
// Steps:
//  1. Copy the input into two views, one sorted by x and one sorted by y.
//  2. Split the x-view at its middle index; partition the y-view by comparing
//     each x against the midpoint's x (equal goes left), preserving y-order.
//  3. Solve subproblems of at most 3 points with ClosestPairBruteForce.
//  4. Keep the smaller of the two halves' results (left wins ties).
//  5. Scan the strip |x − mid.x| < best in y-order, comparing each point with
//     its successors while their y-difference stays below best.
//
// The returned distance always equals the brute-force minimum; on exact
// ties the pair may differ from ClosestPairBruteForce's.
//
// Returns ok == false when len(points) < 2.
//
// Complexity: O(n log n) time, O(n log n) memory.
func ClosestPairDivideConquer(points []Point) (ClosestPairResult, bool) {
	if len(points) < 2 {
		return ClosestPairResult{}, false
	}

	byX := make([]Point, len(points))
	copy(byX, points)
	sort.Slice(byX, func(i, j int) bool { return byX[i].X < byX[j].X })

	byY := make([]Point, len(points))
	copy(byY, points)
	sort.Slice(byY, func(i, j int) bool { return byY[i].Y < byY[j].Y })

	return closestPairRec(byX, byY)
}

// closestPairRec solves one subproblem. byX is the x-sorted subset, byY the
// matching y-sorted partition. The two may disagree on points whose x equals
// an ancestor's midpoint x; every such point is still examined by that
// ancestor's strip, so the minimum is never lost.
func closestPairRec(byX, byY []Point) (ClosestPairResult, bool) {
	n := len(byX)
	if n <= bruteForceCutoff {
		return ClosestPairBruteForce(byX)
	}

	mid := n / 2
	midpoint := byX[mid]

	leftY := make([]Point, 0, mid+1)
	rightY := make([]Point, 0, n-mid)
	for _, p := range byY {
		if p.X <= midpoint.X {
			leftY = append(leftY, p)
		} else {
			rightY = append(rightY, p)
		}
	}

	left, okL := closestPairRec(byX[:mid], leftY)
	right, okR := closestPairRec(byX[mid:], rightY)

	var best ClosestPairResult
	switch {
	case okL && okR:
		best = left
		if right.Distance < left.Distance {
			best = right
		}
	case okL:
		best = left
	case okR:
		best = right
	default:
		return ClosestPairResult{}, false
	}

	strip := make([]Point, 0, len(byY))
	for _, p := range byY {
		if math.Abs(p.X-midpoint.X) < best.Distance {
			strip = append(strip, p)
		}
	}

	// The packing argument bounds the inner loop to a constant number of
	// successors per point.
	for i := 0; i < len(strip); i++ {
		for j := i + 1; j < len(strip) && strip[j].Y-strip[i].Y < best.Distance; j++ {
			d := strip[i].DistanceTo(strip[j])
			if d < best.Distance {
				best = ClosestPairResult{Point1: strip[i], Point2: strip[j], Distance: d}
			}
		}
	}

	return best, true
}
