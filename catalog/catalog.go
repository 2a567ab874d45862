// Package catalog is a small table of named integrands together with their
// antiderivatives. It stands in for a symbolic math front end: callers look
// functions up by the expression they would have typed.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/leonjayakusuma/NumIntViz/signal"
)

// ErrUnknownFunction is returned by Lookup for an expression not in the
// catalog.
var ErrUnknownFunction = errors.New("catalog: unknown function")

// Entry is a named integrand.
type Entry struct {
	// Expression is the canonical name, e.g. "x^2".
	Expression string
	F          signal.Func
	// Antiderivative is nil when no closed form is known.
	Antiderivative signal.Func
	// Domain, when set, is the interval outside of which F is not defined
	// or not real.
	Domain *[2]float64
}

// HasAntiderivative reports whether the exact integral can be computed.
func (e Entry) HasAntiderivative() bool {
	return e.Antiderivative != nil
}

// Contains reports whether [a, b] lies inside the domain of F.
func (e Entry) Contains(a, b float64) bool {
	if e.Domain == nil {
		return true
	}
	lo, hi := math.Min(a, b), math.Max(a, b)
	return lo >= e.Domain[0] && hi <= e.Domain[1]
}

var functions map[string]Entry

func init() {
	nonNegative := &[2]float64{0, math.Inf(1)}
	positive := &[2]float64{math.SmallestNonzeroFloat64, math.Inf(1)}

	entries := []Entry{
		// --- Polynomials ---
		{Expression: "x", F: func(x float64) float64 { return x }, Antiderivative: func(x float64) float64 { return x * x / 2 }},
		{Expression: "x^2", F: func(x float64) float64 { return x * x }, Antiderivative: func(x float64) float64 { return x * x * x / 3 }},
		{Expression: "x^3", F: func(x float64) float64 { return x * x * x }, Antiderivative: func(x float64) float64 { return math.Pow(x, 4) / 4 }},
		{Expression: "x^5", F: func(x float64) float64 { return math.Pow(x, 5) }, Antiderivative: func(x float64) float64 { return math.Pow(x, 6) / 6 }},
		{
			Expression:     "2*x^3 - 5*x + 1",
			F:              func(x float64) float64 { return 2*x*x*x - 5*x + 1 },
			Antiderivative: func(x float64) float64 { return math.Pow(x, 4)/2 - 5*x*x/2 + x },
		},
		{
			Expression:     "x^4 - 4*x^2",
			F:              func(x float64) float64 { return math.Pow(x, 4) - 4*x*x },
			Antiderivative: func(x float64) float64 { return math.Pow(x, 5)/5 - 4*x*x*x/3 },
		},

		// --- Trigonometric ---
		{Expression: "sin(x)", F: math.Sin, Antiderivative: func(x float64) float64 { return -math.Cos(x) }},
		{Expression: "cos(x)", F: math.Cos, Antiderivative: math.Sin},
		{
			Expression:     "x*sin(x)",
			F:              func(x float64) float64 { return x * math.Sin(x) },
			Antiderivative: func(x float64) float64 { return math.Sin(x) - x*math.Cos(x) },
		},
		{
			Expression: "sin(x)/x",
			F: func(x float64) float64 {
				if x == 0 {
					return 1
				}
				return math.Sin(x) / x
			},
		},

		// --- Exponential and logarithm ---
		{Expression: "exp(x)", F: math.Exp, Antiderivative: math.Exp},
		{
			Expression:     "exp(-x^2)",
			F:              func(x float64) float64 { return math.Exp(-x * x) },
			Antiderivative: func(x float64) float64 { return math.Sqrt(math.Pi) / 2 * math.Erf(x) },
		},
		{
			Expression:     "log(x)",
			F:              math.Log,
			Antiderivative: func(x float64) float64 { return xLogX(x) - x },
			Domain:         positive,
		},

		// --- Rational and roots ---
		{Expression: "1/(1 + x^2)", F: func(x float64) float64 { return 1 / (1 + x*x) }, Antiderivative: math.Atan},
		{
			Expression:     "1/x",
			F:              func(x float64) float64 { return 1 / x },
			Antiderivative: func(x float64) float64 { return math.Log(math.Abs(x)) },
			Domain:         positive,
		},
		{
			Expression:     "sqrt(x)",
			F:              math.Sqrt,
			Antiderivative: func(x float64) float64 { return 2. / 3. * math.Pow(x, 1.5) },
			Domain:         nonNegative,
		},
	}

	functions = make(map[string]Entry, len(entries))
	for _, e := range entries {
		functions[normalize(e.Expression)] = e
	}
}

// xLogX is x*log(x) continued with its limit 0 at x = 0
func xLogX(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(x)
}

// normalize drops an "f(x) =" prefix and all blanks.
func normalize(expression string) string {
	if _, rhs, ok := strings.Cut(expression, "="); ok {
		expression = rhs
	}
	return strings.Join(strings.Fields(strings.ToLower(expression)), "")
}

// Lookup finds the entry for expression. Blanks, letter case and a leading
// "f(x) =" are ignored, and "**" is accepted for "^".
func Lookup(expression string) (Entry, error) {
	key := strings.ReplaceAll(normalize(expression), "**", "^")
	if e, ok := functions[key]; ok {
		return e, nil
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownFunction, expression)
}

// Expressions lists the canonical names of all entries, sorted.
func Expressions() []string {
	names := make([]string, 0, len(functions))
	for _, e := range functions {
		names = append(names, e.Expression)
	}
	sort.Strings(names)
	return names
}
