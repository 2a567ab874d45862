package signal

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFuncValues(t *testing.T) {
	square := Func(func(x float64) float64 { return x * x })
	require.Equal(t, []float64{0, 1, 4, 9}, square.Values([]float64{0, 1, 2, 3}))
	require.Empty(t, square.Values(nil))
	require.Equal(t, 6.25, Value(square, 2.5))
}

func TestVectorized(t *testing.T) {
	double := Vectorized(func(x []float64) []float64 {
		res := make([]float64, len(x))
		for i := range x {
			res[i] = 2 * x[i]
		}
		return res
	})
	require.Equal(t, []float64{2, -4}, double.Values([]float64{1, -2}))
	require.Equal(t, 3., Value(double, 1.5))
}

func TestCounter(t *testing.T) {
	c := NewCounter(Func(math.Sin))
	c.Values([]float64{0, 1, 2})
	Value(c, 3)
	require.Equal(t, 4, c.Count())

	var wg sync.WaitGroup
	wg.Add(8)
	for i := 0; i < 8; i++ {
		go func() {
			defer wg.Done()
			c.Values(make([]float64, 10))
		}()
	}
	wg.Wait()
	require.Equal(t, 84, c.Count())

	c.Reset()
	require.Zero(t, c.Count())
}

func TestDiracDelta(t *testing.T) {
	delta := DiracDelta(1e-9)
	require.Greater(t, delta(0), 1e8)
	require.Zero(t, delta(1e-3))
	require.Equal(t, delta(2e-9), delta(-2e-9))

	// a wide spike is resolved by a fine midpoint sum
	wide := DiracDelta(-0.1)
	h := 1e-3
	var sum float64
	for x := -1 + h/2; x < 1; x += h {
		sum += wide(x) * h
	}
	require.InDelta(t, 1., sum, 1e-6)
}
