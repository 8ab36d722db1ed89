package report

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/geobench/geometry"
)

// Feature roles written to the "role" property.
const (
	RolePoints      = "points"
	RoleHull        = "hull"
	RoleSegment     = "segment"
	RoleClosestPair = "closest_pair"
)

// Scene is a set of geometry inputs and results to export together.
// Empty fields are omitted from the output.
type Scene struct {
	Points      []geometry.Point
	Hull        []geometry.Point
	Segments    []geometry.LineSegment
	ClosestPair *geometry.ClosestPairResult
}

// FeatureCollection converts s to GeoJSON features:
//
//   - Points:      one MultiPoint.
//   - Hull:        a closed Polygon for 3+ vertices, otherwise a LineString
//     (2) or Point (1).
//   - Segments:    one LineString each, with an "index" property.
//   - ClosestPair: a LineString with a "distance" property.
func (s Scene) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if len(s.Points) > 0 {
		mp := make(orb.MultiPoint, len(s.Points))
		for i, p := range s.Points {
			mp[i] = toOrb(p)
		}
		fc.Append(feature(mp, RolePoints))
	}

	if len(s.Hull) > 0 {
		fc.Append(feature(hullGeometry(s.Hull), RoleHull))
	}

	for i, seg := range s.Segments {
		f := feature(orb.LineString{toOrb(seg.Start), toOrb(seg.End)}, RoleSegment)
		f.Properties["index"] = i
		fc.Append(f)
	}

	if s.ClosestPair != nil {
		f := feature(orb.LineString{toOrb(s.ClosestPair.Point1), toOrb(s.ClosestPair.Point2)}, RoleClosestPair)
		f.Properties["distance"] = s.ClosestPair.Distance
		fc.Append(f)
	}

	return fc
}

func toOrb(p geometry.Point) orb.Point {
	return orb.Point{p.X, p.Y}
}

func feature(g orb.Geometry, role string) *geojson.Feature {
	f := geojson.NewFeature(g)
	f.Properties["role"] = role

	return f
}

// hullGeometry closes the ring for real polygons.
func hullGeometry(hull []geometry.Point) orb.Geometry {
	switch len(hull) {
	case 1:
		return toOrb(hull[0])
	case 2:
		return orb.LineString{toOrb(hull[0]), toOrb(hull[1])}
	}

	ring := make(orb.Ring, 0, len(hull)+1)
	for _, p := range hull {
		ring = append(ring, toOrb(p))
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}

// WriteGeoJSON writes s as a GeoJSON FeatureCollection.
func WriteGeoJSON(w io.Writer, s Scene) error {
	data, err := s.FeatureCollection().MarshalJSON()
	if err != nil {
		return fmt.Errorf("report: encode geojson: %w", err)
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("report: write geojson: %w", err)
	}

	return nil
}

// SaveGeoJSON writes s to path with WriteGeoJSON.
func SaveGeoJSON(path string, s Scene) error {
	return saveFile(path, func(w io.Writer) error { return WriteGeoJSON(w, s) })
}
