package bench_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geobench/bench"
	"github.com/katalvlaran/geobench/datagen"
)

func smallSuite(kind datagen.Kind) bench.Suite {
	s := bench.DefaultSuite()
	s.Sizes = []int{10, 60, 200}
	s.Kind = kind
	s.Queries = 20
	s.Segments = 40
	s.BruteForceLimit = 100
	s.Gen.Seed = 42

	return s
}

// TestRunSuite_AllKinds measures every size for every dataset shape.
func TestRunSuite_AllKinds(t *testing.T) {
	for _, kind := range datagen.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			r := newRunner(t, func(o *bench.Options) { o.Verify = true; o.Jobs = 3 })
			require.NoError(t, bench.RunSuite(context.Background(), r, smallSuite(kind)))

			// 6 measurements for sizes within the brute-force limit, 5 above it.
			assert.Len(t, r.Results(), 6+6+5)
		})
	}
}

// TestRunSuite_SkipsBruteForceAboveLimit records no brute-force result for 200.
func TestRunSuite_SkipsBruteForceAboveLimit(t *testing.T) {
	r := newRunner(t, nil)
	require.NoError(t, bench.RunSuite(context.Background(), r, smallSuite(datagen.Random)))

	for _, res := range r.Results() {
		if res.Algorithm == bench.NameClosestPairBruteForce {
			assert.LessOrEqual(t, res.DataSize, 100)
		}
	}
}

// TestRunSuite_Errors covers an empty suite, a bad range and cancellation.
func TestRunSuite_Errors(t *testing.T) {
	r := newRunner(t, nil)

	assert.ErrorIs(t, bench.RunSuite(context.Background(), r, bench.Suite{}), bench.ErrEmptySuite)

	bad := smallSuite(datagen.Random)
	bad.Gen.Min, bad.Gen.Max = 1, 0
	assert.ErrorIs(t, bench.RunSuite(context.Background(), r, bad), datagen.ErrInvalidRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, bench.RunSuite(ctx, r, smallSuite(datagen.Random)), context.Canceled)
	assert.Empty(t, r.Results())
}

// TestRunSuite_JobsIndependent: the prepared data does not depend on Jobs,
// so the recorded sizes and names match.
func TestRunSuite_JobsIndependent(t *testing.T) {
	shape := func(jobs int) []string {
		r := newRunner(t, func(o *bench.Options) { o.Jobs = jobs })
		require.NoError(t, bench.RunSuite(context.Background(), r, smallSuite(datagen.Clustered)))
		out := make([]string, 0)
		for _, res := range r.Results() {
			out = append(out, res.Algorithm)
		}

		return out
	}

	assert.Equal(t, shape(1), shape(4))
}
