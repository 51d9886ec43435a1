package bench

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/treebench/treebench/internal/bst"
)

var ErrInvalidRange = errors.New("invalid value range")

// Generator draws values uniformly from [min, max).
type Generator struct {
	min, max float64
	rng      *rand.Rand
}

// NewGenerator creates a generator over [min, max). A zero seed seeds the
// generator from the clock, any other seed makes the sequence reproducible.
func NewGenerator(min, max float64, seed uint64) (*Generator, error) {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w: bounds must be finite", ErrInvalidRange)
	}

	if min >= max {
		return nil, fmt.Errorf("%w: min(%g) must be less than max(%g)", ErrInvalidRange, min, max)
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Generator{
		min: min,
		max: max,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Next returns the next value in [min, max).
func (g *Generator) Next() float64 {
	// Interpolating between the bounds never overflows, even when
	// max-min exceeds math.MaxFloat64.
	r := g.rng.Float64()
	v := g.min*(1-r) + g.max*r
	// Rounding can push v one ulp past either bound.
	switch {
	case v < g.min:
		return g.min
	case v >= g.max:
		return math.Nextafter(g.max, g.min)
	}
	return v
}

// Populate inserts n-1 generated values into tree.
func Populate(tree bst.SearchTree, gen *Generator, n int) {
	for i := 1; i < n; i++ {
		tree.Insert(gen.Next())
	}
}
