package bench

import (
	"fmt"
	"time"

	"github.com/samber/lo"
)

// Runner times measurements and accumulates their Results.
// A Runner is not goroutine-safe.
type Runner struct {
	opts    Options
	results []Result
}

// NewRunner validates opts and returns an empty Runner.
func NewRunner(opts Options) (*Runner, error) {
	opts.normalize()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Runner{opts: opts}, nil
}

// Options returns the Runner's normalized options.
func (r *Runner) Options() Options { return r.opts }

// Measure runs fn Options.Runs times, records the mean wall time and the
// peak-RSS growth under name, and returns the Result.
//
// Steps:
//  1. Before each run, stop with ctx.Err() if the context is done.
//  2. Sample peak RSS, time fn, sample again.
//  3. Keep the largest positive growth seen over all runs.
//
// An error from fn aborts the series and nothing is recorded.
func (r *Runner) Measure(name string, size int, fn func() error) (Result, error) {
	var (
		total    time.Duration
		grown    uint64
		memKnown = true
	)

	for run := 0; run < r.opts.Runs; run++ {
		if err := r.opts.Ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("bench: %s: %w", name, err)
		}

		before, okB := peakRSS()
		start := time.Now()
		if err := fn(); err != nil {
			return Result{}, fmt.Errorf("bench: %s: %w", name, err)
		}
		total += time.Since(start)
		after, okA := peakRSS()

		if !okB || !okA {
			memKnown = false
			continue
		}
		if after > before && after-before > grown {
			grown = after - before
		}
	}

	res := Result{
		Algorithm:     name,
		DataSize:      size,
		ExecutionTime: total / time.Duration(r.opts.Runs),
		MemoryUsed:    grown,
		MemoryKnown:   memKnown,
		Runs:          r.opts.Runs,
	}
	r.results = append(r.results, res)

	return res, nil
}

// Results returns a copy of every recorded Result in measurement order.
func (r *Runner) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)

	return out
}

// Fastest returns the Result with the smallest execution time; ok is false
// when nothing has been recorded.
func (r *Runner) Fastest() (Result, bool) {
	if len(r.results) == 0 {
		return Result{}, false
	}

	return lo.MinBy(r.results, func(a, b Result) bool {
		return a.ExecutionTime < b.ExecutionTime
	}), true
}

// Reset drops all recorded Results.
func (r *Runner) Reset() {
	r.results = r.results[:0]
}
