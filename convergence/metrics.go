// Package convergence compares quadrature approximations with exact
// integral values and sweeps a rule over growing discretization sizes to
// produce error curves for log-log plotting.
package convergence

import (
	"math"

	"github.com/leonjayakusuma/NumIntViz/ode"
	"github.com/leonjayakusuma/NumIntViz/signal"
)

// ErrorFloor is the smallest error a Series reports, so that a rule that is
// exact for the function still plots on logarithmic axes.
const ErrorFloor = 1e-18

// ExactValue is the definite integral F(b) - F(a) given an antiderivative F.
func ExactValue(antiderivative signal.Signal, a, b float64) float64 {
	y := antiderivative.Values([]float64{a, b})
	return y[1] - y[0]
}

// NumericReference replaces ExactValue for functions without a closed form
// antiderivative. It solves y' = f(x), y(a) = 0 with an adaptive
// Runge-Kutta-Fehlberg method and returns y(b).
func NumericReference(f signal.Signal, a, b float64) (float64, error) {
	return ode.Integral(f, a, b, ode.DefaultTolerance)
}

// Metrics holds the error of an approximation.
type Metrics struct {
	Absolute float64
	// Relative is in percent.
	Relative float64
}

// AbsoluteError is |approx - exact|.
func AbsoluteError(approx, exact float64) float64 {
	return math.Abs(approx - exact)
}

// RelativeError is 100*|approx - exact|/|exact|, defined as 0 when exact is 0.
func RelativeError(approx, exact float64) float64 {
	if exact == 0 {
		return 0
	}
	return 100 * AbsoluteError(approx, exact) / math.Abs(exact)
}

// Errors returns both error metrics.
func Errors(approx, exact float64) Metrics {
	return Metrics{
		Absolute: AbsoluteError(approx, exact),
		Relative: RelativeError(approx, exact),
	}
}
