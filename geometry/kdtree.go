package geometry

import "sort"

// KdTree is a 2-d tree over a static point set. It is built once by
// BuildKdTree and is read-only afterwards.
//
// Invariant: for a node splitting on axis d, every point in its left
// subtree has d-coordinate <= the node's and every point in its right
// subtree has d-coordinate >= the node's. Equal coordinates may sit on
// either side.
type KdTree struct {
	root *kdNode
	size int
}

// kdNode owns its children exclusively.
type kdNode struct {
	point Point
	axis  Axis
	left  *kdNode
	right *kdNode
}

// BuildKdTree builds a balanced k-d tree from a copy of points.
// An empty input yields an empty tree.
//
// At depth d the subset is sorted on axis d mod 2, the element at index
// len/2 becomes the node and the slices strictly left and right of it
// become the children.
//
// Complexity: O(n log² n) time (re-sort per level), O(n) memory.
func BuildKdTree(points []Point) *KdTree {
	t := &KdTree{size: len(points)}
	if len(points) == 0 {
		return t
	}

	buf := make([]Point, len(points))
	copy(buf, points)
	t.root = buildKdNode(buf, 0)

	return t
}

// buildKdNode sorts pts in place; children recurse on disjoint sub-slices.
func buildKdNode(pts []Point, depth int) *kdNode {
	if len(pts) == 0 {
		return nil
	}

	axis := Axis(depth % 2)
	sort.Slice(pts, func(i, j int) bool { return axis.coord(pts[i]) < axis.coord(pts[j]) })

	mid := len(pts) / 2

	return &kdNode{
		point: pts[mid],
		axis:  axis,
		left:  buildKdNode(pts[:mid], depth+1),
		right: buildKdNode(pts[mid+1:], depth+1),
	}
}

// Len returns the number of stored points.
func (t *KdTree) Len() int { return t.size }

// Empty reports whether the tree stores no points.
func (t *KdTree) Empty() bool { return t.root == nil }

// Height returns the number of nodes on the longest root-to-leaf path;
// 0 for an empty tree.
func (t *KdTree) Height() int {
	return nodeHeight(t.root)
}

func nodeHeight(n *kdNode) int {
	if n == nil {
		return 0
	}

	return 1 + max(nodeHeight(n.left), nodeHeight(n.right))
}

// NearestNeighbor returns the stored point minimizing the squared distance
// to query. Returns ok == false for an empty tree.
//
// The search descends into the child on the query's side of the splitting
// line first and visits the other child only when the squared distance to
// the splitting line is below the best squared distance found so far.
//
// Complexity: O(log n) expected, O(n) worst case.
func (t *KdTree) NearestNeighbor(query Point) (Point, bool) {
	if t.root == nil {
		return Point{}, false
	}

	s := nnSearch{
		query:  query,
		best:   t.root.point,
		bestD2: query.DistanceSquaredTo(t.root.point),
	}
	s.visit(t.root)

	return s.best, true
}

// nnSearch carries the running best of one NearestNeighbor call.
type nnSearch struct {
	query  Point
	best   Point
	bestD2 float64
}

func (s *nnSearch) visit(n *kdNode) {
	if n == nil {
		return
	}

	if d2 := s.query.DistanceSquaredTo(n.point); d2 < s.bestD2 {
		s.best = n.point
		s.bestD2 = d2
	}

	qc := n.axis.coord(s.query)
	nc := n.axis.coord(n.point)

	near, far := n.right, n.left
	if qc < nc {
		near, far = n.left, n.right
	}

	s.visit(near)

	if diff := qc - nc; diff*diff < s.bestD2 {
		s.visit(far)
	}
}
