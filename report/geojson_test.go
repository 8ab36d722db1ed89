package report_test

import (
	"bytes"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geobench/geometry"
	"github.com/katalvlaran/geobench/report"
)

// TestWriteGeoJSON exports a full scene and parses it back.
func TestWriteGeoJSON(t *testing.T) {
	points := []geometry.Point{
		geometry.NewPoint(0, 0), geometry.NewPoint(2, 0), geometry.NewPoint(2, 2),
		geometry.NewPoint(0, 2), geometry.NewPoint(1, 1),
	}
	cp, ok := geometry.ClosestPairDivideConquer(points)
	require.True(t, ok)

	scene := report.Scene{
		Points:      points,
		Hull:        geometry.ConvexHullGrahamScan(points),
		Segments:    []geometry.LineSegment{geometry.NewLineSegment(points[0], points[2])},
		ClosestPair: &cp,
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteGeoJSON(&buf, scene))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 4)

	roles := make([]string, 0, len(fc.Features))
	for _, f := range fc.Features {
		roles = append(roles, f.Properties.MustString("role"))
	}
	assert.Equal(t, []string{report.RolePoints, report.RoleHull, report.RoleSegment, report.RoleClosestPair}, roles)

	poly, ok := fc.Features[1].Geometry.(orb.Polygon)
	require.True(t, ok, "hull of 4 vertices is a polygon")
	require.Len(t, poly, 1)
	assert.Len(t, poly[0], 5, "ring is closed")
	assert.Equal(t, poly[0][0], poly[0][4])

	assert.Equal(t, cp.Distance, fc.Features[3].Properties.MustFloat64("distance"))
}

// TestSceneDegenerateHull: short hulls become a Point or a LineString.
func TestSceneDegenerateHull(t *testing.T) {
	one := report.Scene{Hull: []geometry.Point{geometry.NewPoint(1, 1)}}.FeatureCollection()
	require.Len(t, one.Features, 1)
	assert.IsType(t, orb.Point{}, one.Features[0].Geometry)

	two := report.Scene{Hull: []geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(3, 3)}}.FeatureCollection()
	require.Len(t, two.Features, 1)
	assert.IsType(t, orb.LineString{}, two.Features[0].Geometry)

	assert.Empty(t, report.Scene{}.FeatureCollection().Features)
}
