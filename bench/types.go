package bench

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInvalidRuns indicates Options.Runs < 1.
	ErrInvalidRuns = errors.New("bench: runs must be at least 1")

	// ErrInvalidJobs indicates Options.Jobs < 1.
	ErrInvalidJobs = errors.New("bench: jobs must be at least 1")

	// ErrVerification indicates an algorithm result disagreed with its
	// reference computation.
	ErrVerification = errors.New("bench: verification failed")

	// ErrEmptySuite indicates a Suite without sizes.
	ErrEmptySuite = errors.New("bench: suite has no sizes")
)

// Result is one timed measurement.
type Result struct {
	Algorithm     string        `json:"algorithm_name"`
	DataSize      int           `json:"data_size"`
	ExecutionTime time.Duration `json:"execution_time"`
	MemoryUsed    uint64        `json:"memory_used,omitempty"`
	MemoryKnown   bool          `json:"memory_known"`
	Runs          int           `json:"runs"`
}

// Options configures a Runner.
//
// Fields:
//   - Runs:   repetitions per measurement; the mean is recorded.
//   - Verify: cross-check every result against a reference computation.
//   - Jobs:   concurrent dataset preparations in RunSuite.
//   - Ctx:    cancellation; nil means context.Background().
type Options struct {
	Runs   int
	Verify bool
	Jobs   int
	Ctx    context.Context
}

// DefaultOptions returns one run, no verification, one job.
func DefaultOptions() Options {
	return Options{
		Runs:   1,
		Verify: false,
		Jobs:   1,
		Ctx:    context.Background(),
	}
}

// normalize fills a nil Ctx.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// validate checks the numeric fields.
func (o Options) validate() error {
	if o.Runs < 1 {
		return ErrInvalidRuns
	}
	if o.Jobs < 1 {
		return ErrInvalidJobs
	}

	return nil
}

// Algorithm names recorded in Results.
const (
	NameClosestPairBruteForce = "Closest Pair (Brute Force)"
	NameClosestPair           = "Closest Pair (Divide & Conquer)"
	NameConvexHull            = "Convex Hull (Graham Scan)"
	NameSegmentIntersections  = "Segment Intersections"
	NameKdTreeBuild           = "K-d Tree Build"
	NameKdTreeQueries         = "K-d Tree Nearest Neighbor"
)
