package convergence

import (
	"context"
	"fmt"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/leonjayakusuma/NumIntViz/quadrature"
	"github.com/leonjayakusuma/NumIntViz/signal"
)

// Series is the outcome of sweeping one rule over a sequence of sizes.
// Sizes, Approximations and Errors have the same length and correspond by
// index.
type Series struct {
	Rule quadrature.Rule
	// Sizes are the discretization sizes in the order they were supplied.
	Sizes          []int
	Approximations []float64
	// Errors are absolute errors floored at ErrorFloor.
	Errors []float64
}

// Len is the number of sizes in the series.
func (s Series) Len() int {
	return len(s.Sizes)
}

// Sweep applies rule to f over [a, b] once per entry of sizes and records
// the absolute error against exact. Sizes are neither sorted nor
// deduplicated. An unknown rule fails with quadrature.ErrUnknownRule.
func Sweep(rule quadrature.Rule, f signal.Signal, a, b, exact float64, sizes []int) (Series, error) {
	if !rule.Valid() {
		return Series{}, fmt.Errorf("%w: %v", quadrature.ErrUnknownRule, rule)
	}
	s := Series{
		Rule:           rule,
		Sizes:          slices.Clone(sizes),
		Approximations: make([]float64, len(sizes)),
		Errors:         make([]float64, len(sizes)),
	}
	for index, n := range sizes {
		res, err := quadrature.Fixed(rule, f, a, b, n)
		if err != nil {
			return Series{}, err
		}
		s.Approximations[index] = res.Value
		s.Errors[index] = math.Max(AbsoluteError(res.Value, exact), ErrorFloor)
	}
	return s, nil
}

// SweepAll sweeps every fixed-node rule concurrently, one goroutine per
// rule. The series are returned in quadrature.Rules order. f must be safe
// for concurrent use.
func SweepAll(ctx context.Context, f signal.Signal, a, b, exact float64, sizes []int) ([]Series, error) {
	res := make([]Series, len(quadrature.Rules))
	g, ctx := errgroup.WithContext(ctx)
	for index, rule := range quadrature.Rules {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := Sweep(rule, f, a, b, exact, sizes)
			if err != nil {
				return err
			}
			res[index] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// DoublingSizes returns count sizes starting at first and doubling each
// time, a common choice for convergence plots.
func DoublingSizes(first, count int) []int {
	if first <= 0 || count <= 0 {
		return nil
	}
	sizes := make([]int, count)
	for index := range sizes {
		sizes[index] = first << index
	}
	return sizes
}
