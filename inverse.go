package laplace

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FastInv returns the inverse of the square matrix m by solving m·X = I with
// an LU factorization, rather than forming the inverse explicitly.
//
// If m is singular, or its condition number exceeds mat.ConditionTolerance,
// the returned error matches ErrSingularMatrix and wraps the mat.Condition
// reported by the solver. Non-square or empty input returns ErrShape.
func FastInv(m mat.Matrix) (*mat.Dense, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %d×%d matrix is not square", ErrShape, r, c)
	}
	if r == 0 {
		return nil, fmt.Errorf("%w: matrix is empty", ErrShape)
	}

	ones := make([]float64, r)
	for i := range ones {
		ones[i] = 1
	}
	eye := mat.NewDiagDense(r, ones)

	var x mat.Dense
	if err := x.Solve(m, eye); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: %w", ErrSingularMatrix, cond)
		}
		return nil, fmt.Errorf("laplace: solve: %w", err)
	}
	return &x, nil
}
