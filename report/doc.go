// Package report persists and displays benchmark results and geometry
// scenes.
//
//   - WriteJSON / SaveJSON:       indented JSON array of bench.Result.
//   - WriteCSV / SaveCSV:         one row per Result, milliseconds and MiB.
//   - Display:                    console table grouped by algorithm.
//   - WriteGeoJSON / SaveGeoJSON: a Scene as a GeoJSON FeatureCollection
//     (input points, hull polygon, segments, closest pair) for viewing in
//     any GIS tool.
//
// Writers never close the io.Writer they are given; the Save* helpers own
// their file and report close errors.
package report
