// Package ode is a ordinary differential equation library that implements the
// Runge-Kutta methods https://en.wikipedia.org/wiki/Runge–Kutta_methods.
// It is used to compute reference values of definite integrals, written as
// the initial value problem y'(x) = f(x), y(a) = 0, when no antiderivative
// is known.
package ode

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/leonjayakusuma/NumIntViz/gonumExtensions"
)

// ErrNoConvergence is returned when the adaptive computation cannot meet the
// error tolerance.
var ErrNoConvergence = errors.New("ode: adaptive Runge-Kutta doesn't converge")

// DifferentiableSystem is the right hand side of x'(t) = f(t, x(t)).
type DifferentiableSystem interface {
	Derivative(t float64, state mat.Vector) mat.Vector
}

// RungeKutta holds the butcherTableau which describes the Runge Kutta method.
type RungeKutta struct {
	Description butcherTableau
}

// Compute takes a single Runge-Kutta step from t = from to t = to. The
// state x(from) is read from value and overwritten with x(to). The returned
// vector estimates the local error when the Butcher Tableau carries an
// embedded lower order solution, otherwise it is nil.
func (rk RungeKutta) Compute(from, to float64, value *mat.VecDense, system DifferentiableSystem) *mat.VecDense {
	// State order
	M := value.Len()
	// The precomputed derivative points
	K := make([]mat.Vector, rk.Description.stages)
	// Step length
	h := to - from
	tempV := mat.NewVecDense(M, nil)
	for index := range K {
		tempV.CopyVec(value)
		// Compute the relevant vector by combining previously computed derivate points
		// according to Butcher Tableau.
		for index2, a := range rk.Description.rungeKuttaMatrix[index] {
			if a != 0 {
				tempV.AddScaledVec(tempV, h*a, K[index2])
			}
		}
		K[index] = system.Derivative(from+h*rk.Description.nodes[index], tempV)
	}

	var errorEstimate *mat.VecDense
	if len(rk.Description.weights) == 2 {
		errorEstimate = mat.NewVecDense(M, nil)
	}
	// Sum up the different contributions with relevant weights.
	for index, k := range K {
		value.AddScaledVec(value, h*rk.Description.weights[0][index], k)
		// If the Butcher Tableau allows for adaptive error computation
		if errorEstimate != nil {
			errorEstimate.AddScaledVec(errorEstimate, h*(rk.Description.weights[1][index]-rk.Description.weights[0][index]), k)
		}
	}
	return errorEstimate
}

// AdaptiveCompute implements an adaptive version which for a
// given error tolerance err. Makes steps such that the local error
// never exceeds the error tolerance. A rejected step is halved and a
// successful one doubled for the next try.
func (rk RungeKutta) AdaptiveCompute(from, to, err float64, value *mat.VecDense, system DifferentiableSystem) error {
	if len(rk.Description.weights) != 2 {
		return fmt.Errorf("ode: method has no embedded error estimate")
	}
	// Set max number of iterations
	const maxNumberOfIterations int = 100000

	var (
		count int
		tnow  = from
		h     = to - from
	)
	trial := mat.NewVecDense(value.Len(), nil)

	// Repeat until time to is reached
	for tnow < to {
		tnext := math.Min(tnow+h, to)
		trial.CopyVec(value)
		currentErrorVector := rk.Compute(tnow, tnext, trial, system)
		if gonumExtensions.NANORINF(trial) {
			return fmt.Errorf("%w: non-finite state at t = %v", ErrNoConvergence, tnow)
		}
		currentError := mat.Norm(currentErrorVector, 1)
		if currentError < err {
			// Save this state and update tnow
			value.CopyVec(trial)
			tnow = tnext
			h *= 2
			continue
		}
		// Half the next integration interval and try again
		h = (tnext - tnow) / 2
		// Increment counter and check if we are allowed more trials
		count++
		if count >= maxNumberOfIterations || tnow+h == tnow {
			return fmt.Errorf("%w: stuck at t = %v", ErrNoConvergence, tnow)
		}
	}

	// Successful integration!  Return nil error
	return nil
}

// NewRK4 function returns a forth order Runge-Kutta object
func NewRK4() *RungeKutta {
	var temp butcherTableau
	temp.stages = 4
	temp.nodes = []float64{0, 1. / 2., 1. / 2., 1}
	temp.weights = [][]float64{{1. / 6., 1. / 3., 1. / 3., 1. / 6.}}
	temp.rungeKuttaMatrix = [][]float64{
		nil,
		{1. / 2.},
		{0, 1. / 2.},
		{0, 0, 1.},
	}
	rk := RungeKutta{temp}
	return &rk
}

// NewEulerMethod returns a pointer to a Runge-Kutta that does the Euler method.
func NewEulerMethod() *RungeKutta {
	var temp butcherTableau
	temp.stages = 1
	temp.nodes = []float64{0}
	temp.weights = [][]float64{{1}}
	temp.rungeKuttaMatrix = [][]float64{nil}
	rk := RungeKutta{temp}
	return &rk
}

// butcherTableau which describes the approximate solution, see https://en.wikipedia.org/wiki/Runge–Kutta_methods.
type butcherTableau struct {
	stages           int
	weights          [][]float64
	nodes            []float64
	rungeKuttaMatrix [][]float64
}

// NewFehlberg45 implements https://en.wikipedia.org/wiki/Runge%E2%80%93Kutta%E2%80%93Fehlberg_method
func NewFehlberg45() *RungeKutta {
	var temp butcherTableau
	temp.stages = 6
	temp.nodes = []float64{0, 1. / 4., 3. / 8., 12. / 13., 1., 1. / 2.}
	temp.weights = [][]float64{
		{16. / 135., 0, 6656. / 12825., 28561. / 56430., -9. / 50., 2. / 55.},
		{25. / 216., 0, 1408. / 2565., 2197. / 4104., -1. / 5., 0},
	}
	temp.rungeKuttaMatrix = [][]float64{
		nil,
		{1. / 4.},
		{3. / 32., 9. / 32.},
		{1932. / 2197., -7200. / 2197., 7296. / 2197.},
		{439. / 216., -8., 3680. / 513., -845. / 4104.},
		{-8. / 27., 2, -3544. / 2565., 1859. / 4104., -11. / 40.},
	}
	rk := RungeKutta{temp}
	return &rk
}
