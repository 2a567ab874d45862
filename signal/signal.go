// Package signal describes the real valued functions of one real variable
// that the quadrature rules sample. Evaluation is always batched: a single
// argument is a sequence of length one.
package signal

import (
	"math"
)

// Signal holds the signal interface
type Signal interface {
	// Values evaluates the function element-wise. The returned slice has the
	// same length and order as x.
	Values(x []float64) []float64
}

// Value evaluates s at a single point.
func Value(s Signal, x float64) float64 {
	return s.Values([]float64{x})[0]
}

// DiracDelta approximates the Dirac delta distribution
// https://en.wikipedia.org/wiki/Dirac_delta_function by a normalised
// Gaussian of the given width centred at 0. Its integral over any interval
// containing [-10 width, 10 width] is 1, yet a rule sampling a few points
// away from 0 sees a function that is zero everywhere.
func DiracDelta(width float64) Func {
	width = math.Abs(width)
	peak := 1. / (width * math.Sqrt(math.Pi))
	return func(x float64) float64 {
		return peak * math.Exp(-x*x/(width*width))
	}
}
