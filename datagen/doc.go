// Package datagen produces deterministic point and segment sets for the
// geobench harness.
//
// Every Generator is driven by an explicit seed, so the same Options always
// yield the same data on every platform. Seed 0 maps to a fixed default
// seed rather than to wall-clock time.
//
// Shapes:
//
//   - RandomPoints:    uniform in [Min, Max]².
//   - CircularPoints:  evenly spaced on a circle (every point is on the hull).
//   - GridPoints:      integer lattice (exact ties and collinear runs).
//   - ClusteredPoints: discs around random centres (many close pairs).
//   - RandomSegments:  segments with a uniform start and bounded length.
//
// Concurrency:
//
//	A Generator wraps a math/rand source and is NOT goroutine-safe.
//	Use Derive to hand each goroutine its own independent stream.
package datagen
