package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geobench/geometry"
)

// TestPoint_Distance checks the 3-4-5 triangle for both metrics.
func TestPoint_Distance(t *testing.T) {
	a := geometry.NewPoint(0, 0)
	b := geometry.NewPoint(3, 4)

	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, 25.0, a.DistanceSquaredTo(b))
	assert.Equal(t, a.DistanceTo(b), b.DistanceTo(a), "distance must be symmetric")
	assert.Zero(t, b.DistanceTo(b))
}

// TestPoint_String checks the shortest-representation formatting.
func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1.5, -2)", geometry.NewPoint(1.5, -2).String())
}

// TestCross_Orientation covers the three turn classes.
func TestCross_Orientation(t *testing.T) {
	o := geometry.NewPoint(0, 0)
	a := geometry.NewPoint(1, 0)

	assert.Equal(t, 1.0, geometry.Cross(o, a, geometry.NewPoint(1, 1)))
	assert.Equal(t, geometry.CounterClockwise, geometry.Orientation(o, a, geometry.NewPoint(1, 1)))
	assert.Equal(t, geometry.Clockwise, geometry.Orientation(o, a, geometry.NewPoint(1, -1)))
	assert.Equal(t, geometry.Collinear, geometry.Orientation(o, a, geometry.NewPoint(5, 0)))
	assert.Equal(t, "collinear", geometry.Collinear.String())
}

// TestValidatePoints rejects NaN and ±Inf and names the index.
func TestValidatePoints(t *testing.T) {
	require.NoError(t, geometry.ValidatePoints(nil))
	require.NoError(t, geometry.ValidatePoints(pts(0, 0, -1e300, 1e300)))

	err := geometry.ValidatePoints(pts(0, 0, 1, math.NaN()))
	require.ErrorIs(t, err, geometry.ErrNonFinite)
	assert.Contains(t, err.Error(), "index 1")

	err = geometry.ValidatePoints(pts(math.Inf(-1), 0))
	assert.ErrorIs(t, err, geometry.ErrNonFinite)
}
