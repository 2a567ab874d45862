package numintviz

import (
	"github.com/leonjayakusuma/NumIntViz/signal"
)

// Problem struct contains all relevant parameters for an analysis
type Problem struct {
	// Integrand
	F signal.Signal
	// Antiderivative of F. When nil the exact value is replaced by a
	// numerical reference.
	Antiderivative signal.Signal
	// Interval
	A, B float64
	// Number of subintervals for the fixed-node rules
	N int
	// Number of Gauss-Legendre nodes
	Nodes int
	// Tolerance of adaptive Simpson's rule
	Tolerance float64
	// Sizes of the convergence sweep
	Sizes []int
}
