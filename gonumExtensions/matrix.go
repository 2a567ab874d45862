package gonumExtensions

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Linspace returns n equally spaced points from a to b, both included.
// For n == 1 the single point a is returned and for n <= 0 the result is nil.
func Linspace(n int, a, b float64) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{a}
	}
	data := floats.Span(make([]float64, n), a, b)
	// a+step*(n-1) can round away from b
	data[n-1] = b
	return data
}

// NANORINF checks if there are any NAN or INF in matrix
func NANORINF(matrix mat.Matrix) bool {
	m, n := matrix.Dims()
	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			if math.IsNaN(matrix.At(row, col)) || math.IsInf(matrix.At(row, col), 0) {
				return true
			}
		}
	}
	return false
}

// NonFinite reports whether any value in data is NaN or +-Inf.
func NonFinite(data ...float64) bool {
	for _, value := range data {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return true
		}
	}
	return false
}
