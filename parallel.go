package laplace

import (
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/hyperdual"
)

// HessianParallel computes the Hessian of f at x using multiple goroutines.
// numWorkers controls the degree of parallelism; if <= 1, it falls back to
// single-threaded Hessian. f must be safe for concurrent use.
//
// The result is bitwise identical to Hessian. dst follows the same rules.
func HessianParallel(dst *mat.SymDense, f LogDensity, x []float64, numWorkers int) *mat.SymDense {
	n := len(x)
	if numWorkers <= 1 || n <= 1 {
		return Hessian(dst, f, x)
	}
	if dst == nil {
		dst = mat.NewSymDense(n, nil)
	} else if dst.IsEmpty() {
		dst.ReuseAsSym(n)
	} else if dst.SymmetricDim() != n {
		panic("laplace: matrix size mismatch")
	}

	// Each worker owns a contiguous range of rows i and fills (i, j) for
	// j >= i. Ranges don't overlap, so writes need no synchronization.
	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, n)
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			xs := make([]hyperdual.Number, n)
			for k, v := range x {
				xs[k].Real = v
			}
			for i := start; i < end; i++ {
				xs[i].E1mag = 1
				for j := i; j < n; j++ {
					xs[j].E2mag = 1
					dst.SetSym(i, j, f.EvalHyperdual(xs).E1E2mag)
					xs[j].E2mag = 0
				}
				xs[i].E1mag = 0
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return dst
}
