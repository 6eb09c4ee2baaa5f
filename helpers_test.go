package laplace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/num/hyperdual"
)

// Shared fixture: a bivariate Gaussian with correlated components.
var (
	testMean  = []float64{1, -2}
	testSigma = mat.NewSymDense(2, []float64{
		2, 0.5,
		0.5, 1,
	})
)

// precisionOf inverts sigma with gonum directly, independent of FastInv.
func precisionOf(t testing.TB, sigma *mat.SymDense) *mat.SymDense {
	t.Helper()
	var inv mat.Dense
	require.NoError(t, inv.Inverse(sigma))
	n := sigma.SymmetricDim()
	p := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			p.SetSym(i, j, 0.5*(inv.At(i, j)+inv.At(j, i)))
		}
	}
	return p
}

// gaussianLogDensity returns the unnormalized log-density
// -(x-mu)ᵀ P (x-mu) / 2 over hyperdual numbers.
func gaussianLogDensity(mu []float64, prec mat.Symmetric) HyperdualFunc {
	return func(x []hyperdual.Number) hyperdual.Number {
		n := len(mu)
		d := make([]hyperdual.Number, n)
		for i := range d {
			d[i] = hyperdual.Sub(x[i], hyperdual.Number{Real: mu[i]})
		}
		var q hyperdual.Number
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				q = hyperdual.Add(q, hyperdual.Scale(prec.At(i, j), hyperdual.Mul(d[i], d[j])))
			}
		}
		return hyperdual.Scale(-0.5, q)
	}
}

// gaussianDualDensity returns the unnormalized density exp(-(x-mu)ᵀ P (x-mu) / 2)
// over dual numbers.
func gaussianDualDensity(mu []float64, prec mat.Symmetric) DualFunc {
	return func(x []dual.Number) dual.Number {
		n := len(mu)
		d := make([]dual.Number, n)
		for i := range d {
			d[i] = dual.Sub(x[i], dual.Number{Real: mu[i]})
		}
		var q dual.Number
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				q = dual.Add(q, dual.Scale(prec.At(i, j), dual.Mul(d[i], d[j])))
			}
		}
		return dual.Exp(dual.Scale(-0.5, q))
	}
}

// gaussianDensity is gaussianDualDensity on plain floats.
func gaussianDensity(mu []float64, prec mat.Symmetric) DensityFunc {
	return func(x []float64) float64 {
		var q float64
		for i := range mu {
			for j := range mu {
				q += prec.At(i, j) * (x[i] - mu[i]) * (x[j] - mu[j])
			}
		}
		return math.Exp(-0.5 * q)
	}
}

// identity returns the n×n identity as a Dense.
func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// gumbelLogDensity is the standard Gumbel log-density shifted to mode mu:
// -(x-mu) - exp(-(x-mu)). Its second derivative at the mode is -1.
func gumbelLogDensity(mu float64) ScalarHyperdualFunc {
	return func(x hyperdual.Number) hyperdual.Number {
		z := hyperdual.Sub(x, hyperdual.Number{Real: mu})
		return hyperdual.Sub(hyperdual.Scale(-1, z), hyperdual.Exp(hyperdual.Scale(-1, z)))
	}
}
