package ode

import (
	"gonum.org/v1/gonum/mat"

	"github.com/leonjayakusuma/NumIntViz/signal"
)

// DefaultTolerance is the local error tolerance of Integral when used for
// reference values.
const DefaultTolerance = 1e-12

// NumericalIntegration turns the integrand into the scalar system
// y'(x) = f(x).
type NumericalIntegration struct {
	derivative signal.Signal
}

// NewNumericalIntegration returns the system with right hand side f
func NewNumericalIntegration(f signal.Signal) NumericalIntegration {
	return NumericalIntegration{derivative: f}
}

// Derivative ignores the state, the integrand only depends on x.
func (nI NumericalIntegration) Derivative(x float64, state mat.Vector) mat.Vector {
	return mat.NewVecDense(1, []float64{signal.Value(nI.derivative, x)})
}

// Integrate returns the integral over [from, to] computed with the
// Runge-Kutta-Fehlberg 4(5) method at local error tolerance tol.
func (nI NumericalIntegration) Integrate(from, to, tol float64) (float64, error) {
	switch {
	case from == to:
		return 0, nil
	case from > to:
		res, err := nI.Integrate(to, from, tol)
		return -res, err
	}
	tmpRes := mat.NewVecDense(1, nil)
	o := NewFehlberg45()
	if err := o.AdaptiveCompute(from, to, tol, tmpRes, nI); err != nil {
		return 0, err
	}
	return tmpRes.AtVec(0), nil
}

// Integral integrates f over [a, b], see NumericalIntegration.Integrate.
func Integral(f signal.Signal, a, b, tol float64) (float64, error) {
	return NewNumericalIntegration(f).Integrate(a, b, tol)
}
