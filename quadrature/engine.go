package quadrature

import (
	"errors"

	"go.uber.org/zap"

	"github.com/leonjayakusuma/NumIntViz/signal"
)

// Engine runs the quadrature rules with a fixed set of limits and a logger.
// It holds no state between calls and is safe for concurrent use.
type Engine struct {
	limits AdaptiveLimits
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxDepth sets the recursion bound of the adaptive rule.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) { e.limits.MaxDepth = depth }
}

// WithMaxEvaluations sets the evaluation bound of the adaptive rule.
func WithMaxEvaluations(evaluations int) Option {
	return func(e *Engine) { e.limits.MaxEvaluations = evaluations }
}

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine returns an Engine with DefaultMaxDepth, DefaultMaxEvaluations
// and a no-op logger unless overridden by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	e.limits = e.limits.withDefaults()
	return e
}

// Limits returns the adaptive rule limits in use.
func (e *Engine) Limits() AdaptiveLimits {
	return e.limits
}

// RunRule applies one of the fixed-node rules with n subintervals.
func (e *Engine) RunRule(rule Rule, f signal.Signal, a, b float64, n int) (Result, error) {
	res, err := Fixed(rule, f, a, b, n)
	if err != nil {
		return Result{}, err
	}
	if rule == SimpsonRule && n > 0 && res.N != n {
		e.logger.Debug("Odd subinterval count incremented for Simpson's rule",
			zap.Int("requested", n),
			zap.Int("used", res.N))
	}
	return res, nil
}

// RunAdaptive applies adaptive Simpson's rule with tolerance tol.
func (e *Engine) RunAdaptive(f signal.Signal, a, b, tol float64) (Result, error) {
	res, err := Adaptive(f, a, b, tol, e.limits)
	if err != nil {
		if errors.Is(err, ErrMaxDepth) || errors.Is(err, ErrEvaluationLimit) || errors.Is(err, ErrNonFinite) {
			e.logger.Warn("Adaptive Simpson failed",
				zap.Float64("a", a),
				zap.Float64("b", b),
				zap.Float64("tol", tol),
				zap.Error(err))
		}
		return Result{}, err
	}
	e.logger.Debug("Adaptive Simpson converged",
		zap.Int("depth", res.N),
		zap.Int("evaluations", res.Evaluations),
		zap.Int("points", len(res.X)))
	return res, nil
}

// RunGaussian applies n-point Gauss-Legendre quadrature.
func (e *Engine) RunGaussian(f signal.Signal, a, b float64, n int) Result {
	return Gaussian(f, a, b, n)
}
