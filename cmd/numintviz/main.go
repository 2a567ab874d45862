// Command numintviz approximates definite integrals with a family of
// quadrature rules and reports their errors and convergence.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	numintviz "github.com/leonjayakusuma/NumIntViz"
	"github.com/leonjayakusuma/NumIntViz/catalog"
	"github.com/leonjayakusuma/NumIntViz/config"
	"github.com/leonjayakusuma/NumIntViz/convergence"
	"github.com/leonjayakusuma/NumIntViz/quadrature"
)

// app carries the state shared by all subcommands.
type app struct {
	// Persistent flags
	configPath string
	logLevel   string

	// Problem flags, applied on top of the configuration when set
	function string
	a, b     float64

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cli := &app{}
	root := &cobra.Command{
		Use:   "numintviz",
		Short: "Numerical integration with error and convergence analysis",
		Long: `numintviz approximates the integral of a catalog function over [a, b]
with Riemann sums, the trapezoidal rule, Simpson's rule, adaptive Simpson
and Gauss-Legendre quadrature, and compares each with the exact value.`,
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cli.logger != nil {
				_ = cli.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&cli.function, "function", "f", "", "integrand, see the functions command")
	root.PersistentFlags().Float64Var(&cli.a, "a", 0, "lower bound")
	root.PersistentFlags().Float64Var(&cli.b, "b", 0, "upper bound")

	root.AddCommand(
		newFunctionsCmd(cli),
		newIntegrateCmd(cli),
		newSweepCmd(cli),
		newReportCmd(cli),
		newPlotCmd(cli),
	)
	return root
}

// setup loads the configuration, applies the flags and builds the logger.
func (cli *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if cli.configPath != "" {
		loaded, err := config.Load(cli.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = cli.logLevel
	}
	if flags.Changed("function") {
		cfg.Function = cli.function
	}
	if flags.Changed("a") {
		cfg.A = cli.a
	}
	if flags.Changed("b") {
		cfg.B = cli.b
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cli.cfg = cfg

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	cli.logger = logger
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = level
	}
	return zc.Build()
}

func (cli *app) engine() *quadrature.Engine {
	return quadrature.NewEngine(
		quadrature.WithMaxDepth(cli.cfg.Quadrature.MaxDepth),
		quadrature.WithMaxEvaluations(cli.cfg.Quadrature.MaxEvaluations),
		quadrature.WithLogger(cli.logger),
	)
}

// problem resolves the configured function and interval.
func (cli *app) problem() (numintviz.Problem, catalog.Entry, error) {
	entry, err := catalog.Lookup(cli.cfg.Function)
	if err != nil {
		return numintviz.Problem{}, catalog.Entry{}, err
	}
	if !entry.Contains(cli.cfg.A, cli.cfg.B) {
		return numintviz.Problem{}, catalog.Entry{}, fmt.Errorf("%w: [%v, %v] is outside the domain of %s",
			quadrature.ErrInvalidArgument, cli.cfg.A, cli.cfg.B, entry.Expression)
	}
	p := numintviz.Problem{
		F:         entry.F,
		A:         cli.cfg.A,
		B:         cli.cfg.B,
		N:         cli.cfg.Quadrature.N,
		Nodes:     cli.cfg.Quadrature.Nodes,
		Tolerance: cli.cfg.Quadrature.Tolerance,
		Sizes:     cli.cfg.Sizes(),
	}
	if entry.HasAntiderivative() {
		p.Antiderivative = entry.Antiderivative
	}
	cli.logger.Debug("Problem resolved",
		zap.String("function", entry.Expression),
		zap.Float64("a", p.A),
		zap.Float64("b", p.B),
		zap.Bool("antiderivative", entry.HasAntiderivative()))
	return p, entry, nil
}

// exact returns the reference value of p and whether it is numeric.
func exact(p numintviz.Problem) (float64, bool, error) {
	if p.Antiderivative != nil {
		return convergence.ExactValue(p.Antiderivative, p.A, p.B), false, nil
	}
	value, err := convergence.NumericReference(p.F, p.A, p.B)
	return value, true, err
}
