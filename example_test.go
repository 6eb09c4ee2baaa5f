package laplace_test

import (
	"fmt"
	"log"

	"github.com/TrevorS/laplace"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/hyperdual"
)

func ExampleApproximate() {
	// -((x0-1)² + 2(x1+2)²)/2
	logf := laplace.HyperdualFunc(func(x []hyperdual.Number) hyperdual.Number {
		a := hyperdual.Sub(x[0], hyperdual.Number{Real: 1})
		b := hyperdual.Add(x[1], hyperdual.Number{Real: 2})
		q := hyperdual.Add(hyperdual.Mul(a, a), hyperdual.Scale(2, hyperdual.Mul(b, b)))
		return hyperdual.Scale(-0.5, q)
	})

	approx, err := laplace.Approximate(logf, []float64{0, 0}, laplace.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("mode %.3f\n", approx.Mode)
	fmt.Printf("sd   %.3f\n", approx.StdDev())
	// Output:
	// mode [1.000 -2.000]
	// sd   [1.000 0.707]
}

func ExampleFindModeScalar() {
	g := laplace.ScalarHyperdualFunc(func(x hyperdual.Number) hyperdual.Number {
		d := hyperdual.Sub(x, hyperdual.Number{Real: 3})
		return hyperdual.Scale(-0.5, hyperdual.Mul(d, d))
	})

	mode, err := laplace.FindModeScalar(g, 0, laplace.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	v, err := laplace.FisherVarScalar(g, mode)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("mode %.3f variance %.3f\n", mode, v)
	// Output:
	// mode 3.000 variance 1.000
}

func ExampleFastInv() {
	m := mat.NewDense(2, 2, []float64{
		4, 7,
		2, 6,
	})
	inv, err := laplace.FastInv(m)
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		fmt.Printf("%.1f\n", mat.Row(nil, i, inv))
	}
	// Output:
	// [0.6 -0.7]
	// [-0.2 0.4]
}

func ExampleFlatten() {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	fmt.Println(laplace.Flatten(m))
	// Output:
	// [1 2 3 4 5 6]
}

func ExampleVecToMatrix() {
	m, err := laplace.VecToMatrix([]float64{1.23456789, 2, 3, 4})
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		fmt.Printf("%.7f\n", mat.Row(nil, i, m))
	}
	// Output:
	// [1.2345679 2.0000000]
	// [3.0000000 4.0000000]
}

func ExampleTensToMat() {
	// Two groups of three variables with two parameters each.
	t := [][][]float64{
		{{1, 2}, {3, 4}, {5, 6}},
		{{7, 8}, {9, 10}, {11, 12}},
	}
	m, err := laplace.TensToMat(t)
	if err != nil {
		log.Fatal(err)
	}
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		fmt.Println(mat.Row(nil, i, m))
	}
	// Output:
	// [1 3 5]
	// [2 4 6]
	// [7 9 11]
	// [8 10 12]
}
