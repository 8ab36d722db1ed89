package geometry_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geobench/geometry"
)

// TestHull_Square: all four corners, CCW from (0,0).
func TestHull_Square(t *testing.T) {
	got := geometry.ConvexHullGrahamScan(pts(0, 0, 0, 1, 1, 1, 1, 0))
	want := pts(0, 0, 1, 0, 1, 1, 0, 1)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hull mismatch (-want +got):\n%s", diff)
	}
}

// TestHull_FewerThanThree: returned unchanged, as a copy.
func TestHull_FewerThanThree(t *testing.T) {
	assert.Empty(t, geometry.ConvexHullGrahamScan(nil))

	in := pts(5, 5, 1, 2)
	got := geometry.ConvexHullGrahamScan(in)
	assert.Equal(t, in, got)

	got[0] = geometry.NewPoint(-1, -1)
	assert.Equal(t, geometry.NewPoint(5, 5), in[0], "result must not alias the input")
}

// TestHull_Collinear: only the two extreme points survive.
func TestHull_Collinear(t *testing.T) {
	got := geometry.ConvexHullGrahamScan(pts(2, 2, 0, 0, 3, 3, 1, 1, 4, 4))
	want := pts(0, 0, 4, 4)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hull mismatch (-want +got):\n%s", diff)
	}
}

// TestHull_DropsBoundaryPoints: edge midpoints and the centre are not vertices.
func TestHull_DropsBoundaryPoints(t *testing.T) {
	in := pts(1, 0, 2, 1, 0, 0, 1, 2, 2, 0, 0, 1, 2, 2, 0, 2, 1, 1)
	got := geometry.ConvexHullGrahamScan(in)
	want := pts(0, 0, 2, 0, 2, 2, 0, 2)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hull mismatch (-want +got):\n%s", diff)
	}
}

// TestHull_AnchorTieBreak: among lowest points the leftmost anchors the hull.
func TestHull_AnchorTieBreak(t *testing.T) {
	got := geometry.ConvexHullGrahamScan(pts(3, 0, 1, 0, 2, 5))
	require.NotEmpty(t, got)
	assert.Equal(t, geometry.NewPoint(1, 0), got[0])
	assert.Len(t, got, 3)
}

// TestHull_Duplicates: repeated points collapse to single vertices.
func TestHull_Duplicates(t *testing.T) {
	got := geometry.ConvexHullGrahamScan(pts(0, 0, 0, 0, 4, 0, 4, 0, 0, 4, 0, 4, 1, 1))
	want := pts(0, 0, 4, 0, 0, 4)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hull mismatch (-want +got):\n%s", diff)
	}
}

// TestHull_Properties checks containment, strict CCW turns and the anchor
// over random float and lattice inputs.
func TestHull_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(seedDet))

	for trial := 0; trial < 40; trial++ {
		var in []geometry.Point
		if trial%2 == 0 {
			in = randomPoints(r, 3+r.Intn(300), -100, 100)
		} else {
			in = latticePoints(r, 3+r.Intn(300), 20)
		}
		hull := geometry.ConvexHullGrahamScan(in)
		require.GreaterOrEqual(t, len(hull), 2)

		for _, p := range in {
			assert.True(t, geometry.HullContains(hull, p), "trial %d: %v outside hull", trial, p)
			assert.False(t, p.Y < hull[0].Y || (p.Y == hull[0].Y && p.X < hull[0].X), "trial %d: hull must start at the anchor", trial)
		}

		if len(hull) < 3 {
			continue
		}
		for i := range hull {
			a, b, c := hull[i], hull[(i+1)%len(hull)], hull[(i+2)%len(hull)]
			assert.Equal(t, geometry.CounterClockwise, geometry.Orientation(a, b, c), "trial %d: turn at %v", trial, b)
		}
	}
}

// TestHullContains covers interior, boundary, exterior and degenerate hulls.
func TestHullContains(t *testing.T) {
	square := pts(0, 0, 2, 0, 2, 2, 0, 2)

	assert.True(t, geometry.HullContains(square, geometry.NewPoint(1, 1)))
	assert.True(t, geometry.HullContains(square, geometry.NewPoint(2, 1)), "boundary counts as inside")
	assert.False(t, geometry.HullContains(square, geometry.NewPoint(3, 1)))

	assert.False(t, geometry.HullContains(nil, geometry.NewPoint(0, 0)))
	assert.True(t, geometry.HullContains(pts(1, 1), geometry.NewPoint(1, 1)))
	assert.True(t, geometry.HullContains(pts(0, 0, 4, 4), geometry.NewPoint(2, 2)))
	assert.False(t, geometry.HullContains(pts(0, 0, 4, 4), geometry.NewPoint(5, 5)))
	assert.False(t, geometry.HullContains(pts(0, 0, 4, 4), geometry.NewPoint(2, 3)))
}
