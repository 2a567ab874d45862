package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leonjayakusuma/NumIntViz/convergence"
	"github.com/leonjayakusuma/NumIntViz/quadrature"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	rule, err := cfg.Rule()
	require.NoError(t, err)
	require.Equal(t, quadrature.SimpsonRule, rule)
	require.Equal(t, []int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024}, cfg.Sizes())
}

func TestSizesDoubling(t *testing.T) {
	cfg := Default()
	cfg.Convergence.First, cfg.Convergence.Count = 3, 4
	require.Equal(t, []int{3, 6, 12, 24}, cfg.Sizes())
	require.Equal(t, convergence.DoublingSizes(3, 4), cfg.Sizes())

	cfg.Convergence.Count = 0
	require.Empty(t, cfg.Sizes())
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numintviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
function: sin(x)
a: 0
b: 3.14159
quadrature:
  rule: riemann-left
  n: 100
convergence:
  sizes: [10, 20, 40]
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, "sin(x)", cfg.Function)
	require.Equal(t, 3.14159, cfg.B)
	require.Equal(t, 100, cfg.Quadrature.N)
	// untouched fields keep their defaults
	require.Equal(t, 3, cfg.Quadrature.Nodes)
	require.Equal(t, quadrature.DefaultMaxDepth, cfg.Quadrature.MaxDepth)
	require.Equal(t, []int{10, 20, 40}, cfg.Sizes())
	rule, err := cfg.Rule()
	require.NoError(t, err)
	require.Equal(t, quadrature.RiemannLeftRule, rule)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: [1, 2"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Function = "exp(x)"
	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"function":  func(c *Config) { c.Function = "" },
		"rule":      func(c *Config) { c.Quadrature.Rule = "boole" },
		"tolerance": func(c *Config) { c.Quadrature.Tolerance = 0 },
		"depth":     func(c *Config) { c.Quadrature.MaxDepth = -1 },
		"sizes":     func(c *Config) { c.Convergence.First = 0 },
		"level":     func(c *Config) { c.Logging.Level = "loud" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
