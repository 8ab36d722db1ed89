package datagen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRange indicates Min >= Max or a non-finite bound.
	ErrInvalidRange = errors.New("datagen: coordinate range must be finite with Min < Max")

	// ErrNegativeCount indicates a negative number of items was requested.
	ErrNegativeCount = errors.New("datagen: count must be non-negative")

	// ErrUnknownKind indicates a dataset name ParseKind does not recognise.
	ErrUnknownKind = errors.New("datagen: unknown dataset kind")
)

// Kind names a point-set shape.
type Kind int

const (
	// Random is a uniform point cloud.
	Random Kind = iota
	// Circular places points evenly on a circle.
	Circular
	// Grid places points on the integer lattice.
	Grid
	// Clustered groups points into small discs.
	Clustered
)

var kindNames = [...]string{
	Random:    "random",
	Circular:  "circular",
	Grid:      "grid",
	Clustered: "clustered",
}

// String returns the name accepted by ParseKind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a case-insensitive name to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return Random, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Kinds lists every Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Random, Circular, Grid, Clustered}
}

// Options configures a Generator.
//
// Fields:
//   - Seed: RNG seed; 0 selects the package default seed.
//   - Min:  lower coordinate bound.
//   - Max:  upper coordinate bound.
type Options struct {
	Seed int64
	Min  float64
	Max  float64
}

// DefaultOptions returns seed 0 and the range [-1000, 1000].
func DefaultOptions() Options {
	return Options{
		Seed: 0,
		Min:  -1000,
		Max:  1000,
	}
}

const (
	// clusterSize is the number of points per cluster used by Points(Clustered, n).
	clusterSize = 20

	// clusterRadius is the disc radius used by Points(Clustered, n).
	clusterRadius = 10.0
)
