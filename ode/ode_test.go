package ode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/leonjayakusuma/NumIntViz/signal"
)

func TestRk4(t *testing.T) {
	test := NewRK4()
	if test.Description.stages != 4 {
		t.Errorf("Not four stages. Rk4 should have four stages. Instead has %v", test.Description.stages)
	}
}

func TestEuler(t *testing.T) {
	test := NewEulerMethod()
	if test.Description.stages != 1 {
		t.Error("Wrong number of stages.")
	}
}

// decay is x' = -x
type decay struct{}

func (decay) Derivative(t float64, state mat.Vector) mat.Vector {
	res := mat.NewVecDense(state.Len(), nil)
	res.ScaleVec(-1, state)
	return res
}

func TestCompute(t *testing.T) {
	state := mat.NewVecDense(2, []float64{1, 2})
	errorEstimate := NewRK4().Compute(0, 0.1, state, decay{})
	require.Nil(t, errorEstimate)
	// one RK4 step on x' = -x is the Taylor polynomial of exp(-h) of degree 4
	h := 0.1
	growth := 1 - h + h*h/2 - h*h*h/6 + h*h*h*h/24
	require.InDelta(t, growth, state.AtVec(0), 1e-14)
	require.InDelta(t, 2*growth, state.AtVec(1), 1e-14)
	require.InEpsilon(t, 2*math.Exp(-h), state.AtVec(1), 1e-6)

	state = mat.NewVecDense(1, []float64{1})
	NewEulerMethod().Compute(0, 0.1, state, decay{})
	require.InDelta(t, 0.9, state.AtVec(0), 1e-15)
}

func TestAdaptiveCompute(t *testing.T) {
	state := mat.NewVecDense(1, []float64{1})
	require.NoError(t, NewFehlberg45().AdaptiveCompute(0, 2, 1e-10, state, decay{}))
	require.InDelta(t, math.Exp(-2), state.AtVec(0), 1e-8)

	require.Error(t, NewRK4().AdaptiveCompute(0, 1, 1e-10, state, decay{}))
}

func TestIntegral(t *testing.T) {
	for name, tc := range map[string]struct {
		f     signal.Func
		a, b  float64
		exact float64
	}{
		"sin":     {math.Sin, 0, math.Pi, 2},
		"x^2":     {func(x float64) float64 { return x * x }, 0, 3, 9},
		"exp":     {math.Exp, 0, 1, math.E - 1},
		"reverse": {math.Sin, math.Pi, 0, -2},
		"empty":   {math.Sin, 1, 1, 0},
	} {
		t.Run(name, func(t *testing.T) {
			res, err := Integral(tc.f, tc.a, tc.b, DefaultTolerance)
			require.NoError(t, err)
			require.InDelta(t, tc.exact, res, 1e-8)
		})
	}
}

func TestIntegralNonFinite(t *testing.T) {
	_, err := Integral(signal.Func(func(x float64) float64 { return 1 / x }), 0, 1, DefaultTolerance)
	require.ErrorIs(t, err, ErrNoConvergence)
}
