package quadrature

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a parameter that must be positive
	// and finite is not, e.g. the tolerance of the adaptive rule.
	ErrInvalidArgument = errors.New("quadrature: invalid argument")

	// ErrUnknownRule is returned for a rule name or value outside the
	// fixed-node family. It wraps ErrInvalidArgument.
	ErrUnknownRule = fmt.Errorf("%w: unknown rule", ErrInvalidArgument)

	// ErrMaxDepth is returned when adaptive bisection reaches the configured
	// recursion depth without meeting the tolerance.
	ErrMaxDepth = errors.New("quadrature: maximum recursion depth reached")

	// ErrEvaluationLimit is returned when adaptive bisection would exceed
	// the configured number of function evaluations.
	ErrEvaluationLimit = errors.New("quadrature: maximum number of function evaluations reached")

	// ErrNonFinite is returned by the adaptive rule when the function
	// produces NaN or +-Inf at a sample point.
	ErrNonFinite = errors.New("quadrature: non-finite function value")
)
