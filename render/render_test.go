package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leonjayakusuma/NumIntViz/convergence"
	"github.com/leonjayakusuma/NumIntViz/quadrature"
	"github.com/leonjayakusuma/NumIntViz/signal"
)

func TestConvergence(t *testing.T) {
	f := signal.Func(math.Exp)
	series, err := convergence.SweepAll(t.Context(), f, 0, 1, math.E-1, convergence.DoublingSizes(2, 8))
	require.NoError(t, err)

	p, err := Convergence(series, "exp(x) on [0, 1]")
	require.NoError(t, err)
	require.Equal(t, "exp(x) on [0, 1]", p.Title.Text)

	path := filepath.Join(t.TempDir(), "convergence.png")
	require.NoError(t, Save(p, 6, 4, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestConvergenceNothingToPlot(t *testing.T) {
	_, err := Convergence(nil, "")
	require.ErrorIs(t, err, ErrNothingToPlot)

	series := []convergence.Series{{
		Rule:           quadrature.TrapezoidRule,
		Sizes:          []int{0, -4, 8},
		Approximations: []float64{0, 0, math.NaN()},
		Errors:         []float64{1, 1, math.NaN()},
	}}
	_, err = Convergence(series, "")
	require.ErrorIs(t, err, ErrNothingToPlot)
}

func TestSamples(t *testing.T) {
	f := signal.Func(math.Sin)
	res, err := quadrature.Fixed(quadrature.RiemannMidRule, f, 0, math.Pi, 12)
	require.NoError(t, err)

	p, err := Samples(f, 0, math.Pi, res, quadrature.RiemannMidRule.String())
	require.NoError(t, err)
	require.Equal(t, "Riemann Mid", p.Title.Text)

	path := filepath.Join(t.TempDir(), "samples.svg")
	require.NoError(t, Save(p, 4, 4, path))
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSamplesSkipsNonFinite(t *testing.T) {
	f := signal.Func(func(x float64) float64 { return 1 / x })
	res := quadrature.Gaussian(f, 0, 1, 4)

	p, err := Samples(f, 0, 1, res, "Gauss-Legendre")
	require.NoError(t, err)
	require.NoError(t, Save(p, 4, 4, filepath.Join(t.TempDir(), "samples.png")))
}

func TestSaveUnknownFormat(t *testing.T) {
	p, err := Samples(signal.Func(math.Cos), 0, 1, quadrature.Result{}, "cos")
	require.NoError(t, err)
	require.Error(t, Save(p, 4, 4, filepath.Join(t.TempDir(), "samples.unknown")))
}
