package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/treebench/treebench/internal/bst"
)

var (
	ErrNoSizes     = errors.New("no tree sizes given")
	ErrInvalidSize = errors.New("tree size must be positive")
)

// Result is the outcome of benchmarking one tree.
type Result struct {
	Elements int
	Stats    Stats
	Timings  Timings
}

// Runner builds and measures one tree per configured size.
type Runner struct {
	gen     *Generator
	sizes   []int
	newTree func() bst.SearchTree
	logger  zerolog.Logger
}

func NewRunner(
	gen *Generator,
	sizes []int,
	newTree func() bst.SearchTree,
	logger zerolog.Logger,
) (*Runner, error) {
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}

	for _, n := range sizes {
		if n <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
		}
	}

	return &Runner{
		gen:     gen,
		sizes:   append([]int(nil), sizes...),
		newTree: newTree,
		logger:  logger,
	}, nil
}

// Run returns one result per size, in the configured order.
// Cancellation is checked before each tree is built.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(r.sizes))

	for _, n := range r.sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tree := r.newTree()
		Populate(tree, r.gen, n)

		stats := Stats{Size: tree.Size(), Depth: tree.Depth()}
		r.logger.Debug().Ctx(ctx).
			Int("elements", n).
			Int("size", stats.Size).
			Int("depth", stats.Depth).
			Msg("tree populated")

		timings := measureTree(tree)
		r.logger.Debug().Ctx(ctx).
			Int("elements", n).
			Dur("insert", timings.Insert).
			Dur("size", timings.Size).
			Dur("search", timings.Search).
			Dur("depth", timings.Depth).
			Msg("operations timed")

		results = append(results, Result{
			Elements: n,
			Stats:    stats,
			Timings:  timings,
		})
	}

	return results, nil
}

// measureTree times Size, then inserts and searches for size+1, then Depth.
// The inserted value is the one the search looks for, so the search always
// succeeds.
func measureTree(tree bst.SearchTree) Timings {
	var t Timings
	var size int

	t.Size = Measure(func() { size = tree.Size() })

	next := float64(size) + 1
	t.Insert = Measure(func() { tree.Insert(next) })
	t.Search = Measure(func() { _ = tree.Search(next) })
	t.Depth = Measure(func() { _ = tree.Depth() })

	return t
}
