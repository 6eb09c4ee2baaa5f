package laplace

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/num/hyperdual"
)

// Gradient computes the gradient of f at x by forward-mode automatic
// differentiation, one dual-number evaluation per coordinate. The result is
// stored in dst, which must have length len(x) or be nil, in which case a new
// slice is allocated.
func Gradient(dst []float64, f DualDensity, x []float64) []float64 {
	n := len(x)
	if dst == nil {
		dst = make([]float64, n)
	}
	if len(dst) != n {
		panic("laplace: slice length mismatch")
	}

	xs := make([]dual.Number, n)
	for i, v := range x {
		xs[i].Real = v
	}
	for i := range xs {
		xs[i].Emag = 1
		dst[i] = f.EvalDual(xs).Emag
		xs[i].Emag = 0
	}
	return dst
}

// Hessian computes the Hessian of f at x using hyperdual numbers. Entry (i, j)
// is the ϵ₁ϵ₂ part of f evaluated with coordinate i seeded in ϵ₁ and
// coordinate j seeded in ϵ₂, so the result is exact up to rounding and needs
// n(n+1)/2 evaluations.
//
// If dst is nil a new matrix is allocated, otherwise it must be empty or
// len(x)×len(x).
func Hessian(dst *mat.SymDense, f LogDensity, x []float64) *mat.SymDense {
	n := len(x)
	if dst == nil {
		dst = mat.NewSymDense(n, nil)
	} else if dst.IsEmpty() {
		dst.ReuseAsSym(n)
	} else if dst.SymmetricDim() != n {
		panic("laplace: matrix size mismatch")
	}

	xs := make([]hyperdual.Number, n)
	for i, v := range x {
		xs[i].Real = v
	}
	for i := 0; i < n; i++ {
		xs[i].E1mag = 1
		for j := i; j < n; j++ {
			xs[j].E2mag = 1
			dst.SetSym(i, j, f.EvalHyperdual(xs).E1E2mag)
			xs[j].E2mag = 0
		}
		xs[i].E1mag = 0
	}
	return dst
}

// SecondDerivative returns f''(x) using a single hyperdual evaluation.
func SecondDerivative(f ScalarLogDensity, x float64) float64 {
	return f.EvalScalarHyperdual(hyperdual.Number{Real: x, E1mag: 1, E2mag: 1}).E1E2mag
}

// negGradient adapts a DualDensity into the optimize.Problem gradient of the
// negated objective.
func negGradient(f DualDensity) func(grad, x []float64) {
	return func(grad, x []float64) {
		floats.Scale(-1, Gradient(grad, f, x))
	}
}

// negHessian adapts a LogDensity into the optimize.Problem Hessian of the
// negated objective.
func negHessian(f LogDensity) func(hess *mat.SymDense, x []float64) {
	return func(hess *mat.SymDense, x []float64) {
		Hessian(hess, f, x)
		hess.ScaleSym(-1, hess)
	}
}
