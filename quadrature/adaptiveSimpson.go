package quadrature

import (
	"fmt"
	"math"
	"slices"

	"github.com/leonjayakusuma/NumIntViz/gonumExtensions"
	"github.com/leonjayakusuma/NumIntViz/signal"
)

const (
	// DefaultMaxDepth bounds the recursion of the adaptive rule.
	DefaultMaxDepth = 50
	// DefaultMaxEvaluations bounds the function evaluations of the adaptive
	// rule.
	DefaultMaxEvaluations = 1000000
)

// AdaptiveLimits are the safety bounds of adaptive Simpson's rule. A zero
// field means the corresponding default.
type AdaptiveLimits struct {
	MaxDepth       int
	MaxEvaluations int
}

func (l AdaptiveLimits) withDefaults() AdaptiveLimits {
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultMaxDepth
	}
	if l.MaxEvaluations <= 0 {
		l.MaxEvaluations = DefaultMaxEvaluations
	}
	return l
}

// adaptiveSimpson keeps the state of one adaptive integration
type adaptiveSimpson struct {
	f      signal.Signal
	limits AdaptiveLimits
	// every abscissa evaluated, duplicates included
	points []float64
	depth  int
}

// Adaptive integrates f over [a, b] with adaptive Simpson's rule, see
// https://en.wikipedia.org/wiki/Adaptive_Simpson%27s_method.
//
// A Simpson estimate over [a, b] is compared with the sum of the estimates
// over its two halves. When they agree within 15*tol the sum, corrected by
// Richardson extrapolation, is accepted. Otherwise each half is integrated
// recursively with half the tolerance.
//
// X of the result is the sorted set of distinct abscissas evaluated and Y is
// f evaluated again at X.
func Adaptive(f signal.Signal, a, b, tol float64, limits AdaptiveLimits) (Result, error) {
	if !(tol > 0) || math.IsInf(tol, 0) {
		return Result{}, fmt.Errorf("%w: tolerance %v must be positive and finite", ErrInvalidArgument, tol)
	}
	as := &adaptiveSimpson{f: f, limits: limits.withDefaults()}

	m := (a + b) / 2
	y, err := as.evaluate(a, m, b)
	if err != nil {
		return Result{}, err
	}
	whole := simpsonPanel(a, b, y[0], y[1], y[2])
	value, err := as.recurse(a, b, y[0], y[1], y[2], whole, tol, 0)
	if err != nil {
		return Result{}, err
	}

	x := slices.Clone(as.points)
	slices.Sort(x)
	x = slices.Compact(x)
	return Result{
		Value:       value,
		X:           x,
		Y:           f.Values(x),
		N:           as.depth,
		Evaluations: len(as.points),
	}, nil
}

// simpsonPanel is the three point Simpson estimate over [a, b] with midpoint
// value fm.
func simpsonPanel(a, b, fa, fm, fb float64) float64 {
	return (b - a) / 6 * (fa + 4*fm + fb)
}

func (as *adaptiveSimpson) evaluate(x ...float64) ([]float64, error) {
	if len(as.points)+len(x) > as.limits.MaxEvaluations {
		return nil, fmt.Errorf("%w: %d", ErrEvaluationLimit, as.limits.MaxEvaluations)
	}
	as.points = append(as.points, x...)
	y := as.f.Values(x)
	for index := range y {
		if gonumExtensions.NonFinite(y[index]) {
			return nil, fmt.Errorf("%w: f(%v) = %v", ErrNonFinite, x[index], y[index])
		}
	}
	return y, nil
}

// recurse integrates over [a, b] given the function values at both ends and
// the midpoint and the Simpson estimate whole of the interval.
func (as *adaptiveSimpson) recurse(a, b, fa, fm, fb, whole, tol float64, depth int) (float64, error) {
	if depth > as.depth {
		as.depth = depth
	}
	m := (a + b) / 2
	lm, rm := (a+m)/2, (m+b)/2
	y, err := as.evaluate(lm, rm)
	if err != nil {
		return 0, err
	}
	flm, frm := y[0], y[1]
	left := simpsonPanel(a, m, fa, flm, fm)
	right := simpsonPanel(m, b, fm, frm, fb)
	delta := left + right - whole
	if math.Abs(delta) <= 15*tol {
		return left + right + delta/15, nil
	}
	if depth >= as.limits.MaxDepth {
		return 0, fmt.Errorf("%w: %d on [%v, %v]", ErrMaxDepth, as.limits.MaxDepth, a, b)
	}
	l, err := as.recurse(a, m, fa, flm, fm, left, tol/2, depth+1)
	if err != nil {
		return 0, err
	}
	r, err := as.recurse(m, b, fm, frm, fb, right, tol/2, depth+1)
	if err != nil {
		return 0, err
	}
	return l + r, nil
}
