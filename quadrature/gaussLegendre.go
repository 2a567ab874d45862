package quadrature

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/leonjayakusuma/NumIntViz/signal"
)

// LegendreNodes returns the n Gauss-Legendre nodes on [-1, 1] in ascending
// order together with their weights. The rule integrates polynomials of
// degree up to 2n-1 exactly.
func LegendreNodes(n int) (nodes, weights []float64) {
	if n <= 0 {
		return nil, nil
	}
	nodes = make([]float64, n)
	weights = make([]float64, n)
	quad.Legendre{}.FixedLocations(nodes, weights, -1, 1)
	// quad returns the nodes from 1 down to -1
	slices.Reverse(nodes)
	slices.Reverse(weights)
	return nodes, weights
}

// Gaussian is n-point Gauss-Legendre quadrature of f over [a, b]. Here n is
// the number of nodes, not of subintervals. The nodes are mapped from
// [-1, 1] by x' = (x+1)(b-a)/2 + a and the weights scaled by (b-a)/2, so X
// runs from a towards b.
func Gaussian(f signal.Signal, a, b float64, n int) Result {
	if n <= 0 {
		return Result{}
	}
	nodes, weights := LegendreNodes(n)
	for index := range nodes {
		nodes[index] = 0.5*(nodes[index]+1)*(b-a) + a
		weights[index] = 0.5 * weights[index] * (b - a)
	}
	y := f.Values(nodes)
	return Result{
		Value:       floats.Dot(weights, y),
		X:           nodes,
		Y:           y,
		N:           n,
		Evaluations: n,
	}
}
