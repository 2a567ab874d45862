package quadrature

import (
	"gonum.org/v1/gonum/floats"

	"github.com/leonjayakusuma/NumIntViz/gonumExtensions"
	"github.com/leonjayakusuma/NumIntViz/signal"
)

// breakpoints partitions [a, b] into n subintervals of equal width and
// returns the n+1 breakpoints together with the width.
func breakpoints(a, b float64, n int) (grid []float64, h float64) {
	return gonumExtensions.Linspace(n+1, a, b), (b - a) / float64(n)
}

// riemann sums f at one point per subinterval. The point is chosen by pick
// from the breakpoints bounding the subinterval.
func riemann(f signal.Signal, a, b float64, n int, pick func(left, right float64) float64) Result {
	if n <= 0 {
		return Result{}
	}
	grid, h := breakpoints(a, b, n)
	x := make([]float64, n)
	for index := range x {
		x[index] = pick(grid[index], grid[index+1])
	}
	y := f.Values(x)
	return Result{
		Value:       floats.Sum(y) * h,
		Grid:        grid,
		X:           x,
		Y:           y,
		N:           n,
		Evaluations: n,
	}
}

// RiemannLeft is the left endpoint Riemann sum of f over [a, b] with n
// subintervals.
func RiemannLeft(f signal.Signal, a, b float64, n int) Result {
	return riemann(f, a, b, n, func(left, _ float64) float64 { return left })
}

// RiemannRight is the right endpoint Riemann sum.
func RiemannRight(f signal.Signal, a, b float64, n int) Result {
	return riemann(f, a, b, n, func(_, right float64) float64 { return right })
}

// RiemannMid is the midpoint rule.
func RiemannMid(f signal.Signal, a, b float64, n int) Result {
	return riemann(f, a, b, n, func(left, right float64) float64 { return (left + right) / 2 })
}
