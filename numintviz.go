// Package numintviz approximates the definite integral of a real function
// with every rule of the quadrature package, compares each approximation
// with the exact value and collects the convergence curves of the
// fixed-node rules. A presentation layer renders the resulting Report.
package numintviz

import (
	"context"
	"fmt"

	"github.com/leonjayakusuma/NumIntViz/convergence"
	"github.com/leonjayakusuma/NumIntViz/quadrature"
)

// Method names of the rules that are not part of quadrature.Rules.
const (
	AdaptiveSimpson = "Adaptive Simpson"
	GaussLegendre   = "Gauss-Legendre"
)

// Approximation is the outcome of one rule.
type Approximation struct {
	Method  string
	Result  quadrature.Result
	Metrics convergence.Metrics
	// Err is set when the rule failed, Result and Metrics are then zero.
	Err error
}

// Report is everything a presentation layer needs to show an analysis.
type Report struct {
	Exact float64
	// NumericExact is true when Exact is a numerical reference because
	// the problem had no antiderivative.
	NumericExact   bool
	Approximations []Approximation
	// Convergence holds one series per fixed-node rule in
	// quadrature.Rules order.
	Convergence []convergence.Series
}

// Approximation returns the entry for method.
func (r *Report) Approximation(method string) (Approximation, bool) {
	for _, a := range r.Approximations {
		if a.Method == method {
			return a, true
		}
	}
	return Approximation{}, false
}

// Analyze runs every rule on p. Failures of individual rules are recorded
// in the corresponding Approximation; only a failure to obtain the exact
// value or to sweep fails the analysis.
func Analyze(ctx context.Context, engine *quadrature.Engine, p Problem) (*Report, error) {
	if p.F == nil {
		return nil, fmt.Errorf("%w: no function", quadrature.ErrInvalidArgument)
	}
	report := &Report{}
	if p.Antiderivative != nil {
		report.Exact = convergence.ExactValue(p.Antiderivative, p.A, p.B)
	} else {
		exact, err := convergence.NumericReference(p.F, p.A, p.B)
		if err != nil {
			return nil, fmt.Errorf("reference value: %w", err)
		}
		report.Exact = exact
		report.NumericExact = true
	}

	record := func(method string, res quadrature.Result, err error) {
		a := Approximation{Method: method, Err: err}
		if err == nil {
			a.Result = res
			a.Metrics = convergence.Errors(res.Value, report.Exact)
		}
		report.Approximations = append(report.Approximations, a)
	}

	for _, rule := range quadrature.Rules {
		res, err := engine.RunRule(rule, p.F, p.A, p.B, p.N)
		record(rule.String(), res, err)
	}
	res, err := engine.RunAdaptive(p.F, p.A, p.B, p.Tolerance)
	record(AdaptiveSimpson, res, err)
	record(GaussLegendre, engine.RunGaussian(p.F, p.A, p.B, p.Nodes), nil)

	if len(p.Sizes) > 0 {
		series, err := convergence.SweepAll(ctx, p.F, p.A, p.B, report.Exact, p.Sizes)
		if err != nil {
			return nil, fmt.Errorf("convergence sweep: %w", err)
		}
		report.Convergence = series
	}
	return report, nil
}
