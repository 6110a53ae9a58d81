package bayeserr

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "bayeserr: ..." so the class is visible in logs
// even after several layers of op-tag wrapping.
var (
	// ErrInvalidParameter is returned when a caller-supplied value violates a
	// documented invariant. Surfaced immediately, never retried.
	ErrInvalidParameter = errors.New("bayeserr: invalid parameter")

	// ErrLinearAlgebra is returned for singular or non-positive-definite matrices.
	// No automatic regularization is applied.
	ErrLinearAlgebra = errors.New("bayeserr: linear algebra failure")

	// ErrNumericalConvergence is returned when a root-finder misses its
	// tolerance within the iteration budget. Recoverable by the caller.
	ErrNumericalConvergence = errors.New("bayeserr: numerical convergence failure")
)

// Invalidf builds an ErrInvalidParameter with a formatted reason.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// Wrap tags err with the operation name, preserving errors.Is/As.
// Use only when err != nil.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ConvergenceError carries the state of a solver that gave up.
type ConvergenceError struct {
	Op         string  // solver name
	Iterations int     // iterations performed
	Residual   float64 // residual norm at the last iterate
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: no convergence after %d iterations (residual %.3g)", e.Op, e.Iterations, e.Residual)
}

// Unwrap lets errors.Is(err, ErrNumericalConvergence) match.
func (e *ConvergenceError) Unwrap() error { return ErrNumericalConvergence }
