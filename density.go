package laplace

import (
	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/num/hyperdual"
)

// Density is a real-valued function of a real vector. FindMode only needs
// Eval; densities that also implement DualDensity or LogDensity unlock the
// derivative-based methods.
type Density interface {
	Eval(x []float64) float64
}

// DualDensity is a Density that can be evaluated on dual numbers, giving
// exact first derivatives by forward-mode differentiation.
type DualDensity interface {
	Density
	EvalDual(x []dual.Number) dual.Number
}

// LogDensity is a twice-differentiable function evaluated on hyperdual
// numbers, giving exact second derivatives. FisherVar requires it.
type LogDensity interface {
	EvalHyperdual(x []hyperdual.Number) hyperdual.Number
}

// ScalarDensity is a real-valued function of one real variable.
type ScalarDensity interface {
	EvalScalar(x float64) float64
}

// ScalarLogDensity is a twice-differentiable scalar function evaluated on
// hyperdual numbers.
type ScalarLogDensity interface {
	EvalScalarHyperdual(x hyperdual.Number) hyperdual.Number
}

// DensityFunc adapts a plain function into a Density.
type DensityFunc func(x []float64) float64

func (f DensityFunc) Eval(x []float64) float64 { return f(x) }

// DualFunc adapts a function written over dual numbers into a DualDensity.
// Eval runs it with zero derivative parts.
type DualFunc func(x []dual.Number) dual.Number

func (f DualFunc) Eval(x []float64) float64 {
	xs := make([]dual.Number, len(x))
	for i, v := range x {
		xs[i].Real = v
	}
	return f(xs).Real
}

func (f DualFunc) EvalDual(x []dual.Number) dual.Number { return f(x) }

// HyperdualFunc adapts a function written over hyperdual numbers. It
// implements LogDensity, DualDensity and Density, so a single definition
// serves FindMode with any method as well as FisherVar.
type HyperdualFunc func(x []hyperdual.Number) hyperdual.Number

func (f HyperdualFunc) Eval(x []float64) float64 {
	xs := make([]hyperdual.Number, len(x))
	for i, v := range x {
		xs[i].Real = v
	}
	return f(xs).Real
}

// EvalDual evaluates f carrying the dual part in the first infinitesimal
// direction. Restricted to ϵ₁, hyperdual arithmetic is dual arithmetic.
func (f HyperdualFunc) EvalDual(x []dual.Number) dual.Number {
	xs := make([]hyperdual.Number, len(x))
	for i, v := range x {
		xs[i] = hyperdual.Number{Real: v.Real, E1mag: v.Emag}
	}
	r := f(xs)
	return dual.Number{Real: r.Real, Emag: r.E1mag}
}

func (f HyperdualFunc) EvalHyperdual(x []hyperdual.Number) hyperdual.Number { return f(x) }

// ScalarDensityFunc adapts a plain function into a ScalarDensity.
type ScalarDensityFunc func(x float64) float64

func (f ScalarDensityFunc) EvalScalar(x float64) float64 { return f(x) }

// ScalarHyperdualFunc adapts a scalar hyperdual function. It implements both
// ScalarLogDensity and ScalarDensity.
type ScalarHyperdualFunc func(x hyperdual.Number) hyperdual.Number

func (f ScalarHyperdualFunc) EvalScalar(x float64) float64 {
	return f(hyperdual.Number{Real: x}).Real
}

func (f ScalarHyperdualFunc) EvalScalarHyperdual(x hyperdual.Number) hyperdual.Number { return f(x) }

// vectorize lifts a scalar density onto length-1 vectors. Hyperdual scalars
// keep their derivatives.
func vectorize(f ScalarDensity) Density {
	if lf, ok := f.(ScalarLogDensity); ok {
		return HyperdualFunc(func(x []hyperdual.Number) hyperdual.Number {
			return lf.EvalScalarHyperdual(x[0])
		})
	}
	return DensityFunc(func(x []float64) float64 {
		return f.EvalScalar(x[0])
	})
}

// logDensity presents a bare LogDensity as a DualDensity over its real and
// first-order parts.
type logDensity struct {
	LogDensity
}

func (l logDensity) Eval(x []float64) float64 {
	return HyperdualFunc(l.EvalHyperdual).Eval(x)
}

func (l logDensity) EvalDual(x []dual.Number) dual.Number {
	return HyperdualFunc(l.EvalHyperdual).EvalDual(x)
}
