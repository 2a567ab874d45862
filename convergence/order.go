package convergence

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData is returned when a series has fewer than two usable
// points to estimate an order of convergence from.
var ErrInsufficientData = errors.New("convergence: insufficient data")

// usable returns log(n) and log(error) for the entries with a positive size
// and an error above the floor. Floored errors carry no information on the
// rate.
func (s Series) usable() (logN, logE []float64) {
	for index, n := range s.Sizes {
		if n <= 0 || s.Errors[index] <= ErrorFloor {
			continue
		}
		logN = append(logN, math.Log(float64(n)))
		logE = append(logE, math.Log(s.Errors[index]))
	}
	return logN, logE
}

// ObservedOrder estimates p in error ~ C n^-p from the least squares line
// through (log n, log error).
func (s Series) ObservedOrder() (float64, error) {
	logN, logE := s.usable()
	if len(logN) < 2 {
		return 0, fmt.Errorf("%w: %d usable points", ErrInsufficientData, len(logN))
	}
	_, beta := stat.LinearRegression(logN, logE, nil, false)
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return 0, fmt.Errorf("%w: sizes are all equal", ErrInsufficientData)
	}
	return -beta, nil
}

// LocalOrders are the orders log(e_i/e_{i+1}) / log(n_{i+1}/n_i) between
// consecutive usable entries with distinct sizes.
func (s Series) LocalOrders() []float64 {
	logN, logE := s.usable()
	var orders []float64
	for index := 1; index < len(logN); index++ {
		dn := logN[index] - logN[index-1]
		if dn == 0 {
			continue
		}
		orders = append(orders, -(logE[index]-logE[index-1])/dn)
	}
	return orders
}

// MedianOrder is the median of LocalOrders, less sensitive than
// ObservedOrder to the pre-asymptotic range and to round-off at large n.
func (s Series) MedianOrder() (float64, error) {
	orders := s.LocalOrders()
	if len(orders) == 0 {
		return 0, fmt.Errorf("%w: no local orders", ErrInsufficientData)
	}
	return stats.Median(orders)
}
