package quadrature

import (
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/leonjayakusuma/NumIntViz/signal"
)

// Trapezoid is the composite trapezoidal rule
//
//	h/2 * (f(x_0) + 2 * sum f(x_i) + f(x_n))
//
// The sampled points are the breakpoints themselves, so X holds a copy of
// Grid.
func Trapezoid(f signal.Signal, a, b float64, n int) Result {
	if n <= 0 {
		return Result{}
	}
	grid, h := breakpoints(a, b, n)
	y := f.Values(grid)
	interior := floats.Sum(y[1:n])
	return Result{
		Value:       h / 2 * (y[0] + 2*interior + y[n]),
		Grid:        grid,
		X:           slices.Clone(grid),
		Y:           y,
		N:           n,
		Evaluations: n + 1,
	}
}

// Simpson is the composite Simpson's rule
//
//	h/3 * (f(x_0) + 4 * sum_odd f(x_i) + 2 * sum_even f(x_i) + f(x_n))
//
// where odd and even refer to the index of an interior breakpoint. The rule
// needs an even number of subintervals; an odd n is silently replaced by
// n+1 and Result.N reports the count used.
func Simpson(f signal.Signal, a, b float64, n int) Result {
	if n <= 0 {
		return Result{}
	}
	if n%2 != 0 {
		n++
	}
	grid, h := breakpoints(a, b, n)
	y := f.Values(grid)
	var odd, even float64
	for index := 1; index < n; index++ {
		if index%2 == 1 {
			odd += y[index]
		} else {
			even += y[index]
		}
	}
	return Result{
		Value:       h / 3 * (y[0] + 4*odd + 2*even + y[n]),
		Grid:        grid,
		X:           slices.Clone(grid),
		Y:           y,
		N:           n,
		Evaluations: n + 1,
	}
}
