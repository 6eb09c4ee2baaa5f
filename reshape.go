package laplace

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// roundDigits is the number of decimal digits VecToMatrix keeps.
const roundDigits = 7

// Flatten returns the entries of m in row-major order: row 0 left to right,
// then row 1, and so on. The result has length r*c and does not alias m.
func Flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	if d, ok := m.(mat.RawMatrixer); ok {
		raw := d.RawMatrix()
		for i := 0; i < r; i++ {
			out = append(out, raw.Data[i*raw.Stride:i*raw.Stride+c]...)
		}
		return out
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

// VecToMatrix reshapes v into an n×n matrix in row-major order, the inverse
// of Flatten for square matrices, rounding every entry to 7 decimal digits
// (half to even) to strip floating-point noise. len(v) must be a non-zero
// perfect square; anything else returns an error matching ErrShape.
func VecToMatrix(v []float64) (*mat.Dense, error) {
	n, ok := isqrt(len(v))
	if !ok || n == 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive perfect square", ErrShape, len(v))
	}
	data := make([]float64, len(v))
	for i, x := range v {
		data[i] = scalar.RoundEven(x, roundDigits)
	}
	return mat.NewDense(n, n, data), nil
}

// isqrt returns the integer square root of n and whether n is a perfect square.
func isqrt(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	r := int(math.Sqrt(float64(n)))
	// Correct for rounding in the float conversion.
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r, r*r == n
}

// TensToMat stacks a (G, N, M) tensor into a (G*M)×N matrix. Column n is the
// concatenation over groups g of the M-vector t[g][n], so entry
// (g*M + m, n) is t[g][n][m]. Ragged or empty input returns an error matching
// ErrShape.
func TensToMat(t [][][]float64) (*mat.Dense, error) {
	g := len(t)
	if g == 0 || len(t[0]) == 0 || len(t[0][0]) == 0 {
		return nil, fmt.Errorf("%w: tensor has an empty dimension", ErrShape)
	}
	n, m := len(t[0]), len(t[0][0])

	out := mat.NewDense(g*m, n, nil)
	for gi, block := range t {
		if len(block) != n {
			return nil, fmt.Errorf("%w: group %d has %d rows, want %d", ErrShape, gi, len(block), n)
		}
		for ni, row := range block {
			if len(row) != m {
				return nil, fmt.Errorf("%w: group %d row %d has length %d, want %d", ErrShape, gi, ni, len(row), m)
			}
			for mi, v := range row {
				out.Set(gi*m+mi, ni, v)
			}
		}
	}
	return out, nil
}
