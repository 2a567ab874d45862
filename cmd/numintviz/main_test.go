package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leonjayakusuma/NumIntViz/catalog"
	"github.com/leonjayakusuma/NumIntViz/config"
	"github.com/leonjayakusuma/NumIntViz/quadrature"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestFunctionsCmd(t *testing.T) {
	out, err := execute(t, "functions")
	require.NoError(t, err)
	require.Contains(t, out, "FUNCTION")
	for _, name := range catalog.Expressions() {
		require.Contains(t, out, name)
	}
}

func TestIntegrateCmd(t *testing.T) {
	out, err := execute(t, "integrate", "-f", "x^2", "--a", "0", "--b", "3", "-r", "simpson", "-n", "9")
	require.NoError(t, err)
	require.Contains(t, out, "Simpson")
	require.Regexp(t, `n\s+10\n`, out)
	require.Regexp(t, `exact\s+9\n`, out)
	require.Regexp(t, `function calls\s+11\n`, out)

	out, err = execute(t, "integrate", "-f", "sin(x)", "--b", "3.141592653589793", "--adaptive", "--tol", "1e-10", "--points")
	require.NoError(t, err)
	require.Contains(t, out, "Adaptive Simpson")
	require.Contains(t, out, "X  ")

	out, err = execute(t, "integrate", "-f", "sin(x)/x", "--a", "1", "--b", "2", "--gauss", "--nodes", "5")
	require.NoError(t, err)
	require.Contains(t, out, "Gauss-Legendre")
	require.Contains(t, out, "(numeric)")
}

func TestIntegrateCmdErrors(t *testing.T) {
	_, err := execute(t, "integrate", "--adaptive", "--gauss")
	require.ErrorIs(t, err, quadrature.ErrInvalidArgument)

	_, err = execute(t, "integrate", "-f", "tan(x)")
	require.ErrorIs(t, err, catalog.ErrUnknownFunction)

	_, err = execute(t, "integrate", "-f", "log(x)", "--a=-1", "--b", "1")
	require.ErrorIs(t, err, quadrature.ErrInvalidArgument)

	_, err = execute(t, "integrate", "-r", "boole")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "integrate", "--log-level", "loud")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSweepCmd(t *testing.T) {
	out, err := execute(t, "sweep", "-f", "exp(x)", "--a", "0", "--b", "1", "-r", "trapezoid")
	require.NoError(t, err)
	require.Contains(t, out, "TRAPEZOIDAL")
	require.Contains(t, out, "1024")
	require.Contains(t, out, "observed order")
}

func TestReportCmdWithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Function = "1/(1 + x^2)"
	cfg.A, cfg.B = 0, 1
	cfg.Quadrature.N = 20
	cfg.Convergence.Sizes = []int{4, 8, 16, 32}
	path := filepath.Join(t.TempDir(), "numintviz.yaml")
	require.NoError(t, cfg.Save(path))

	out, err := execute(t, "report", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "integral of 1/(1 + x^2) over [0, 1]")
	for _, rule := range quadrature.Rules {
		require.Contains(t, out, rule.String())
	}
	require.Contains(t, out, "Adaptive Simpson")
	require.Contains(t, out, "Gauss-Legendre")
	require.Contains(t, out, "OBSERVED ORDER")
}

func TestPlotCmd(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "conv.png")
	out, err := execute(t, "plot", "-f", "cos(x)", "--b", "2", "-o", output, "--samples", "mid")
	require.NoError(t, err)
	require.Contains(t, out, output)

	for _, path := range []string{output, filepath.Join(dir, "conv-riemann-mid.png")} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}

	_, err = execute(t, "plot", "-o", filepath.Join(dir, "other.png"), "--samples", "boole")
	require.ErrorIs(t, err, quadrature.ErrInvalidArgument)
}

func TestSamplesPath(t *testing.T) {
	require.Equal(t, "out/conv-adaptive-simpson.svg", samplesPath("out/conv.svg", "Adaptive Simpson"))
	require.Equal(t, "conv-gauss-legendre.png", samplesPath("conv", "Gauss-Legendre"))
}
