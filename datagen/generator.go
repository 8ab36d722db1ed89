package datagen

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/geobench/geometry"
)

// Generator produces point and segment sets from one deterministic stream.
type Generator struct {
	opts Options
	seed int64
	rng  *rand.Rand
}

// New validates opts and returns a Generator seeded from opts.Seed.
func New(opts Options) (*Generator, error) {
	if math.IsNaN(opts.Min) || math.IsNaN(opts.Max) ||
		math.IsInf(opts.Min, 0) || math.IsInf(opts.Max, 0) ||
		opts.Min >= opts.Max {
		return nil, ErrInvalidRange
	}

	seed := opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	return &Generator{opts: opts, seed: seed, rng: rngFromSeed(seed)}, nil
}

// Options returns the configuration g was built with.
func (g *Generator) Options() Options { return g.opts }

// Derive returns an independent Generator for the given stream id. The
// result depends only on g's seed and stream, not on how much of g's own
// stream has been consumed, so concurrent preparation stays reproducible.
func (g *Generator) Derive(stream uint64) *Generator {
	seed := deriveSeed(g.seed, stream)
	if seed == 0 {
		seed = defaultSeed
	}
	opts := g.opts
	opts.Seed = seed

	return &Generator{opts: opts, seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// uniform returns a value in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// RandomPoints returns n points uniform in the configured square.
//
// Complexity: O(n).
func (g *Generator) RandomPoints(n int) ([]geometry.Point, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	out := make([]geometry.Point, n)
	for i := range out {
		out[i] = geometry.NewPoint(g.uniform(g.opts.Min, g.opts.Max), g.uniform(g.opts.Min, g.opts.Max))
	}

	return out, nil
}

// QueryPoints returns n uniform query points; identical in distribution to
// RandomPoints but named for its role in nearest-neighbor benchmarks.
func (g *Generator) QueryPoints(n int) ([]geometry.Point, error) {
	return g.RandomPoints(n)
}

// CircularPoints returns n points evenly spaced on a circle of the given
// radius centred at the origin, starting at angle 0.
// It consumes no randomness.
func (g *Generator) CircularPoints(n int, radius float64) ([]geometry.Point, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	out := make([]geometry.Point, n)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(n)
		out[i] = geometry.NewPoint(radius*math.Cos(angle), radius*math.Sin(angle))
	}

	return out, nil
}

// GridPoints returns the side×side integer lattice in row-major order.
// It consumes no randomness.
func (g *Generator) GridPoints(side int) ([]geometry.Point, error) {
	if side < 0 {
		return nil, ErrNegativeCount
	}

	out := make([]geometry.Point, 0, side*side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			out = append(out, geometry.NewPoint(float64(i), float64(j)))
		}
	}

	return out, nil
}

// ClusteredPoints returns clusters×perCluster points. Cluster centres are
// uniform in the middle half of the configured range; members are placed
// at a uniform angle and a uniform distance in [0, radius) from the centre.
func (g *Generator) ClusteredPoints(clusters, perCluster int, radius float64) ([]geometry.Point, error) {
	if clusters < 0 || perCluster < 0 {
		return nil, ErrNegativeCount
	}

	half := (g.opts.Max - g.opts.Min) / 4
	mid := (g.opts.Max + g.opts.Min) / 2
	out := make([]geometry.Point, 0, clusters*perCluster)
	for c := 0; c < clusters; c++ {
		cx := g.uniform(mid-half, mid+half)
		cy := g.uniform(mid-half, mid+half)
		for i := 0; i < perCluster; i++ {
			angle := g.uniform(0, 2*math.Pi)
			dist := g.uniform(0, radius)
			out = append(out, geometry.NewPoint(cx+dist*math.Cos(angle), cy+dist*math.Sin(angle)))
		}
	}

	return out, nil
}

// RandomSegments returns n segments whose start is uniform in the
// configured square and whose end lies at a uniform angle and a uniform
// length in [0, maxLen) from the start.
func (g *Generator) RandomSegments(n int, maxLen float64) ([]geometry.LineSegment, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	out := make([]geometry.LineSegment, n)
	for i := range out {
		start := geometry.NewPoint(g.uniform(g.opts.Min, g.opts.Max), g.uniform(g.opts.Min, g.opts.Max))
		angle := g.uniform(0, 2*math.Pi)
		length := g.uniform(0, maxLen)
		end := geometry.NewPoint(start.X+length*math.Cos(angle), start.Y+length*math.Sin(angle))
		out[i] = geometry.NewLineSegment(start, end)
	}

	return out, nil
}

// Points dispatches on kind and returns exactly n points:
//
//   - Random:    RandomPoints(n).
//   - Circular:  CircularPoints(n, Max).
//   - Grid:      the ⌈√n⌉² lattice truncated to n points.
//   - Clustered: ⌈n/20⌉ clusters of 20 with radius 10, truncated to n.
func (g *Generator) Points(kind Kind, n int) ([]geometry.Point, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	switch kind {
	case Random:
		return g.RandomPoints(n)
	case Circular:
		return g.CircularPoints(n, g.opts.Max)
	case Grid:
		side := int(math.Ceil(math.Sqrt(float64(n))))
		pts, err := g.GridPoints(side)
		if err != nil {
			return nil, err
		}

		return pts[:n], nil
	case Clustered:
		clusters := (n + clusterSize - 1) / clusterSize
		pts, err := g.ClusteredPoints(clusters, clusterSize, clusterRadius)
		if err != nil {
			return nil, err
		}

		return pts[:n], nil
	default:
		return nil, ErrUnknownKind
	}
}
