// Package bench times the geometry algorithms and records peak memory
// growth around each measurement.
//
// A Runner accumulates Results. Each entry point (ClosestPair, ConvexHull,
// SegmentIntersections, KdTreeBuild, KdTreeQueries, ...) validates its
// input with geometry.ValidatePoints, runs the algorithm Options.Runs times
// and records the mean wall time. With Options.Verify set, the output is
// cross-checked against an independent computation and a mismatch is
// reported as ErrVerification.
//
// Cancellation lives here, not in the algorithms: Options.Ctx is checked
// before every run, so a long series stops between runs.
//
// Memory is sampled as the growth of the process peak resident set size
// (getrusage(2) ru_maxrss) across a measurement. Peak RSS never shrinks,
// so the figure is only non-zero when a run pushed the peak higher. On
// platforms without getrusage the Result reports MemoryKnown == false.
//
// RunSuite prepares datasets for several sizes concurrently (errgroup,
// limited to Options.Jobs) and then measures them one at a time.
package bench
