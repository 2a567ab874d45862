package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leonjayakusuma/NumIntViz/ode"
	"github.com/leonjayakusuma/NumIntViz/signal"
)

func TestLookup(t *testing.T) {
	for _, expression := range []string{"x^2", "X^2", " x ^ 2 ", "f(x) = x^2", "x**2"} {
		e, err := Lookup(expression)
		require.NoError(t, err)
		require.Equal(t, "x^2", e.Expression)
		require.Equal(t, 4., e.F(2))
	}

	_, err := Lookup("tan(x)")
	require.ErrorIs(t, err, ErrUnknownFunction)
}

func TestExactArea(t *testing.T) {
	e, err := Lookup("x^2")
	require.NoError(t, err)
	require.True(t, e.HasAntiderivative())
	require.InDelta(t, 9., e.Antiderivative(3)-e.Antiderivative(0), 1e-15)

	e, err = Lookup("sin(x)/x")
	require.NoError(t, err)
	require.False(t, e.HasAntiderivative())
	require.Equal(t, 1., e.F(0))
}

func TestAntiderivatives(t *testing.T) {
	for _, expression := range Expressions() {
		e, err := Lookup(expression)
		require.NoError(t, err)
		if !e.HasAntiderivative() {
			continue
		}
		a, b := -1., 2.
		if e.Domain != nil {
			a, b = 0.5, 2.
		}
		require.True(t, e.Contains(a, b))
		t.Run(expression, func(t *testing.T) {
			reference, err := ode.Integral(signal.Func(e.F), a, b, ode.DefaultTolerance)
			require.NoError(t, err)
			require.InDelta(t, reference, e.Antiderivative(b)-e.Antiderivative(a), 1e-7)
		})
	}
}

func TestDomain(t *testing.T) {
	e, err := Lookup("sqrt(x)")
	require.NoError(t, err)
	require.True(t, e.Contains(0, 4))
	require.False(t, e.Contains(-1, 4))
	require.False(t, e.Contains(4, -1))

	e, err = Lookup("log(x)")
	require.NoError(t, err)
	require.False(t, e.Contains(0, 1))
	require.True(t, math.IsInf(e.F(0), -1))

	e, err = Lookup("exp(x)")
	require.NoError(t, err)
	require.True(t, e.Contains(-100, 100))
}

func TestExpressions(t *testing.T) {
	names := Expressions()
	require.IsIncreasing(t, names)
	require.Contains(t, names, "exp(-x^2)")
	require.Len(t, names, len(functions))
}
