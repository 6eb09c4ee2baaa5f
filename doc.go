// Package laplace provides the numerical building blocks of a Laplace
// approximation: locating the mode of a density, estimating a covariance
// matrix from the Fisher information at that mode, and reshaping vectors,
// matrices and tensors between flattened and structured forms.
//
// Optimization, differentiation and linear algebra are delegated to gonum:
// modes are found with gonum/optimize, derivatives are exact forward-mode
// derivatives from dual and hyperdual numbers, and inverses come from an LU
// solve in gonum/mat.
//
// Basic usage:
//
//	logf := laplace.HyperdualFunc(func(x []hyperdual.Number) hyperdual.Number {
//		// -(x0² + 2·x1²)/2
//		a := hyperdual.Mul(x[0], x[0])
//		b := hyperdual.Scale(2, hyperdual.Mul(x[1], x[1]))
//		return hyperdual.Scale(-0.5, hyperdual.Add(a, b))
//	})
//	mode, err := laplace.FindMode(logf, []float64{1, 1}, laplace.DefaultConfig())
//	cov, err := laplace.FisherVar(logf, mode)
//	// cov ≈ [[1, 0], [0, 0.5]]
//
// Or both steps at once:
//
//	approx, err := laplace.Approximate(logf, []float64{1, 1}, laplace.DefaultConfig())
//	normal, err := approx.Normal(nil)
//
// # Density capabilities
//
// FindMode accepts any Density. What else the density implements decides
// which minimizers are available. MethodAuto uses BFGS for a LogDensity and
// Nelder-Mead otherwise:
//
//	laplace.DensityFunc    // values only: Nelder-Mead
//	laplace.DualFunc       // exact gradient: BFGS, L-BFGS, CG, gradient descent
//	laplace.HyperdualFunc  // exact gradient and Hessian: all of the above and Newton
//
// FisherVar needs a LogDensity, which HyperdualFunc provides. Scalar
// functions use the Scalar variants of each type and entry point.
//
// # Reshaping
//
// Flatten and VecToMatrix convert between matrices and row-major vectors.
// VecToMatrix rounds to 7 decimal digits, so VecToMatrix(Flatten(m)) equals m
// rounded. TensToMat stacks a (G, N, M) tensor of per-group parameter blocks
// into a (G*M)×N matrix.
package laplace
