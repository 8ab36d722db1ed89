// Package geometry implements the planar algorithms timed by geobench:
// closest pair of points, convex hull, segment intersection and a 2-d tree
// for nearest-neighbor queries.
//
// What:
//
//   - Point: immutable 2-D value built on r2.Point from github.com/golang/geo.
//   - ClosestPairBruteForce:    O(n²) baseline, also the recursion base case.
//   - ClosestPairDivideConquer: O(n log n) with x/y pre-sorted views and a strip merge.
//   - ConvexHullGrahamScan:     angular sort around the lowest point + monotone stack.
//   - LineSegment.Intersects:   four orientation tests + on-segment box checks.
//   - FindIntersectingSegments: exhaustive O(n²) pair scan.
//   - KdTree:                   median-split build, pruned nearest-neighbor search.
//
// Contracts:
//
//   - Inputs are never modified and never retained after a call returns
//     (KdTree copies its points).
//   - "No result" is reported with the comma-ok idiom: closest pair on fewer
//     than 2 points, nearest neighbor on an empty tree.
//   - Coordinates must be finite. ValidatePoints is offered for callers that
//     accept untrusted input; the algorithms themselves do not call it.
//   - Distance comparisons use strict '<' for updates, so on exact ties the
//     first pair met in scan order wins.
//
// Complexity:
//
//   - ClosestPairBruteForce:    O(n²) time, O(1) extra memory.
//   - ClosestPairDivideConquer: O(n log n) time, O(n log n) extra memory
//     (partitioned y-views per level).
//   - ConvexHullGrahamScan:     O(n log n) time, O(n) memory.
//   - FindIntersectingSegments: O(n²) time.
//   - BuildKdTree:              O(n log² n) time (the subset is re-sorted at
//     every level), O(n) memory.
//   - KdTree.NearestNeighbor:   O(log n) expected, O(n) worst case.
//
// Concurrency:
//
//	Every function is synchronous and side-effect free. A built KdTree is
//	read-only and may be queried from several goroutines at once.
//
// Recursion depth is O(log n) for both divide-and-conquer closest pair and
// the k-d tree; callers with adversarial sizes should bound input length.
package geometry
