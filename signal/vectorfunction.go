package signal

import (
	"sync/atomic"
)

// Func lifts a scalar function u(x) -> Reals into a Signal by applying it
// to each argument in turn.
type Func func(float64) float64

// Values returns u(x[i]) for every i
func (u Func) Values(x []float64) []float64 {
	res := make([]float64, len(x))
	for index, arg := range x {
		res[index] = u(arg)
	}
	return res
}

// Vectorized is a function that already operates on whole sequences, for
// instance a lookup table or a wrapped numerical library.
type Vectorized func([]float64) []float64

// Values calls the underlying function directly.
func (v Vectorized) Values(x []float64) []float64 {
	return v(x)
}

// Counter wraps a Signal and counts how many arguments it has been asked
// to evaluate. It is safe for concurrent use.
type Counter struct {
	Signal Signal
	count  atomic.Int64
}

// NewCounter returns a pointer to a Counter initialised with s
func NewCounter(s Signal) *Counter {
	return &Counter{Signal: s}
}

// Values forwards to the wrapped Signal.
func (c *Counter) Values(x []float64) []float64 {
	c.count.Add(int64(len(x)))
	return c.Signal.Values(x)
}

// Count is the number of arguments evaluated so far.
func (c *Counter) Count() int {
	return int(c.count.Load())
}

// Reset sets the count back to zero.
func (c *Counter) Reset() {
	c.count.Store(0)
}
