package laplace

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FisherVar returns the covariance matrix implied by the observed Fisher
// information of logf at x: the inverse of the negated Hessian. Evaluated at
// the mode, this is the covariance of the Laplace approximation.
//
// The Hessian is computed exactly with hyperdual numbers and inverted with
// FastInv. The result is symmetrized to remove rounding asymmetry from the
// solve. A singular Hessian yields an error matching ErrSingularMatrix.
func FisherVar(logf LogDensity, x []float64) (*mat.SymDense, error) {
	return fisherVar(logf, x, 1)
}

// fisherVar is FisherVar with the Hessian split across numWorkers goroutines.
func fisherVar(logf LogDensity, x []float64, numWorkers int) (*mat.SymDense, error) {
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("%w: point is empty", ErrShape)
	}

	h := HessianParallel(nil, logf, x, numWorkers)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if v := h.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: Hessian entry (%d, %d) is %v", ErrNonFinite, i, j, v)
			}
		}
	}
	h.ScaleSym(-1, h)

	inv, err := FastInv(h)
	if err != nil {
		return nil, err
	}

	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cov.SetSym(i, j, 0.5*(inv.At(i, j)+inv.At(j, i)))
		}
	}
	return cov, nil
}

// FisherVarScalar returns -1/f''(x), the variance implied by the curvature of
// logf at x. A zero second derivative is reported as ErrDegenerateDerivative
// rather than returning an infinity.
func FisherVarScalar(logf ScalarLogDensity, x float64) (float64, error) {
	d2 := SecondDerivative(logf, x)
	switch {
	case math.IsNaN(d2) || math.IsInf(d2, 0):
		return 0, fmt.Errorf("%w: second derivative at %v is %v", ErrNonFinite, x, d2)
	case d2 == 0:
		return 0, fmt.Errorf("%w: at %v", ErrDegenerateDerivative, x)
	}
	return -1 / d2, nil
}
