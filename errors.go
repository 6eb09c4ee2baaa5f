package laplace

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/optimize"
)

var (
	// ErrConvergence is matched by every *ConvergenceError.
	ErrConvergence = errors.New("laplace: optimizer failed to converge")

	// ErrSingularMatrix is returned when a matrix (typically a negated Hessian)
	// cannot be inverted. The wrapped mat.Condition carries the estimated
	// condition number.
	ErrSingularMatrix = errors.New("laplace: matrix is singular")

	// ErrDegenerateDerivative is returned when a scalar second derivative is
	// exactly zero, so its negative reciprocal is undefined.
	ErrDegenerateDerivative = errors.New("laplace: second derivative is zero")

	// ErrShape is returned when a reshape or matrix operation receives input of
	// incompatible dimensions.
	ErrShape = errors.New("laplace: incompatible shape")

	// ErrNonFinite is returned when a derivative evaluates to NaN or ±Inf.
	ErrNonFinite = errors.New("laplace: non-finite derivative")

	// ErrMissingDerivative is returned when Config.Method needs derivatives the
	// density does not provide.
	ErrMissingDerivative = errors.New("laplace: density does not provide required derivatives")

	// ErrNotPositiveDefinite is returned when a covariance matrix cannot be
	// used to build a normal distribution.
	ErrNotPositiveDefinite = errors.New("laplace: covariance is not positive definite")
)

// ConvergenceError reports a minimizer run that ended without finding an
// optimum. It matches ErrConvergence under errors.Is.
type ConvergenceError struct {
	Method Method
	Status optimize.Status
	Stats  optimize.Stats
	cause  error
}

func (e *ConvergenceError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("laplace: %s did not converge (status %v after %d iterations): %v",
			e.Method, e.Status, e.Stats.MajorIterations, e.cause)
	}
	return fmt.Sprintf("laplace: %s did not converge (status %v after %d iterations)",
		e.Method, e.Status, e.Stats.MajorIterations)
}

func (e *ConvergenceError) Is(target error) bool { return target == ErrConvergence }

func (e *ConvergenceError) Unwrap() error { return e.cause }
