// Package geobench is a small planar computational-geometry toolkit with
// a benchmark harness around it.
//
// What is in the box?
//
//	A float64, allocation-conscious set of classic algorithms:
//		• Closest pair: O(n²) brute force and O(n log n) divide and conquer
//		• Convex hull: Graham scan, counter-clockwise, collinear points dropped
//		• Segment intersection: orientation test and an all-pairs scan
//		• K-d tree: balanced 2-D build and exact nearest-neighbor search
//
// Packages:
//
//	geometry/      Point, LineSegment, KdTree and the algorithms above
//	datagen/       seeded point and segment generators (random, circular, grid, clustered)
//	bench/         timing and memory measurements, multi-size suites
//	report/        JSON, CSV, console tables and GeoJSON scenes
//	cmd/geobench/  command-line front end
//
// The geometry package is pure computation: no logging, no panics on
// valid input, no shared state. Everything it returns is freshly allocated
// and inputs are never mutated.
//
// Quick ASCII example:
//
//	(0,1)───(1,1)
//	  │   ·   │      hull of the square plus its centre
//	(0,0)───(1,0)    is the four corners, counter-clockwise
//
//	go install github.com/katalvlaran/geobench/cmd/geobench@latest
package geobench
