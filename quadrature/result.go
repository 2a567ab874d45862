// Package quadrature implements definite integral approximations of a real
// function over a finite interval: left, right and midpoint Riemann sums,
// the trapezoidal rule, composite Simpson's rule, adaptive Simpson's rule and
// Gauss-Legendre quadrature, see https://en.wikipedia.org/wiki/Numerical_integration.
//
// Every rule is a pure function of its inputs. Besides the approximation
// each rule returns the abscissas and ordinates it sampled so that a
// presentation layer can draw them.
//
// Non-finite function values are not recovered from. The fixed-node and
// Gauss-Legendre rules propagate them into the approximation, the adaptive
// rule fails with ErrNonFinite.
package quadrature

// Result holds an approximation together with the points it was computed
// from.
//
// When the discretization parameter is not positive the rule is not
// evaluated: Value is 0 and Grid, X and Y are nil.
type Result struct {
	// Value is the approximate integral.
	Value float64
	// Grid is the breakpoint partition of the interval, n+1 points for the
	// fixed-node rules. It is nil for adaptive and Gaussian quadrature.
	Grid []float64
	// X are the abscissas the rule sampled, ordered from a towards b. The
	// adaptive rule sorts them ascending.
	X []float64
	// Y are the function values at X.
	Y []float64
	// N is the discretization parameter actually used. Simpson's rule may
	// use one more subinterval than requested. For the adaptive rule it is
	// the deepest recursion level reached.
	N int
	// Evaluations counts the function evaluations the rule performed.
	Evaluations int
}

// Evaluated reports whether the rule sampled the function at all.
func (r Result) Evaluated() bool {
	return r.X != nil
}
