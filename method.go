package laplace

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"
)

// Method selects the minimizer used by FindMode.
type Method string

const (
	MethodAuto            Method = "auto"
	MethodNelderMead      Method = "nelder_mead"
	MethodBFGS            Method = "bfgs"
	MethodLBFGS           Method = "lbfgs"
	MethodCG              Method = "cg"
	MethodGradientDescent Method = "gradient_descent"
	MethodNewton          Method = "newton"
)

// needsGradient reports whether m evaluates the objective gradient.
func (m Method) needsGradient() bool {
	switch m {
	case MethodBFGS, MethodLBFGS, MethodCG, MethodGradientDescent, MethodNewton:
		return true
	default:
		return false
	}
}

// needsHessian reports whether m evaluates the objective Hessian.
func (m Method) needsHessian() bool { return m == MethodNewton }

// selectMethod resolves MethodAuto into a concrete method and validates that
// a forced choice is compatible with f.
//
// Auto picks BFGS only for a LogDensity. Plain and dual densities get
// Nelder-Mead: their values, and so their gradients, can sit below the
// absolute gradient threshold everywhere, as for an unnormalized likelihood.
func selectMethod(method Method, f Density) (Method, error) {
	_, hasGrad := f.(DualDensity)
	_, hasHess := f.(LogDensity)

	if method == MethodAuto {
		if hasHess {
			return MethodBFGS, nil
		}
		return MethodNelderMead, nil
	}

	if method.needsGradient() && !(hasGrad || hasHess) {
		return "", fmt.Errorf("%w: method %q needs a gradient, %T has none", ErrMissingDerivative, method, f)
	}
	if method.needsHessian() && !hasHess {
		return "", fmt.Errorf("%w: method %q needs a Hessian, %T has none", ErrMissingDerivative, method, f)
	}
	return method, nil
}

// newOptimizer returns a fresh gonum method for m. Methods carry state, so a
// new value is built for every run.
func newOptimizer(m Method) optimize.Method {
	switch m {
	case MethodBFGS:
		return &optimize.BFGS{}
	case MethodLBFGS:
		return &optimize.LBFGS{}
	case MethodCG:
		return &optimize.CG{}
	case MethodGradientDescent:
		return &optimize.GradientDescent{}
	case MethodNewton:
		return &optimize.Newton{}
	default:
		return &optimize.NelderMead{}
	}
}

// problemFor builds the minimization problem for -f, wiring in whichever
// derivatives f can provide.
func problemFor(f Density) optimize.Problem {
	p := optimize.Problem{
		Func: func(x []float64) float64 { return -f.Eval(x) },
	}
	switch df := f.(type) {
	case DualDensity:
		p.Grad = negGradient(df)
	case LogDensity:
		p.Grad = negGradient(logDensity{df})
	}
	if hf, ok := f.(LogDensity); ok {
		p.Hess = negHessian(hf)
	}
	return p
}
