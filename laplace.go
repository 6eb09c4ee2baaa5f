package laplace

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distmv"
)

// Config controls mode finding.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Method selects the minimizer. "auto" uses BFGS for a LogDensity and
	// Nelder-Mead for any other density. Gradient methods ("bfgs",
	// "lbfgs", "cg", "gradient_descent") need a DualDensity or LogDensity;
	// "newton" needs a LogDensity. Default: "auto".
	Method Method

	// MaxIterations bounds the number of major iterations. Reaching it is a
	// convergence failure. Must be >= 0, 0 means the default. Default: 5000.
	MaxIterations int

	// MaxFuncEvaluations bounds the number of density evaluations. 0 means
	// unlimited. Must be >= 0. Default: 0.
	MaxFuncEvaluations int

	// GradientThreshold stops gradient methods once the infinity norm of the
	// gradient falls below it. The threshold is absolute, so forcing a
	// gradient method on a density with tiny values can stop at the start.
	// Must be >= 0, 0 means the default. Default: 1e-8.
	GradientThreshold float64

	// FunctionTolerance is the smallest improvement in the objective that
	// counts as progress. Must be >= 0, 0 means the default. Default: 1e-10.
	FunctionTolerance float64

	// ConvergenceWindow is the number of consecutive major iterations without
	// progress after which the run is declared converged. Must be >= 0, 0
	// means the default. Default: 100.
	ConvergenceWindow int

	// Workers is the number of concurrent density evaluations the minimizer
	// may issue. Values above 1 require the density to be safe for concurrent
	// use. 0 means 1. Default: 1.
	Workers int

	// Logger receives debug-level records about method selection, major
	// iterations and the outcome of each run. nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Method:            MethodAuto,
		MaxIterations:     5000,
		GradientThreshold: 1e-8,
		FunctionTolerance: 1e-10,
		ConvergenceWindow: 100,
		Workers:           1,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	switch cfg.Method {
	case MethodAuto, MethodNelderMead, MethodBFGS, MethodLBFGS,
		MethodCG, MethodGradientDescent, MethodNewton:
		// valid
	default:
		return fmt.Errorf("laplace: invalid Method %q", cfg.Method)
	}
	if cfg.MaxIterations < 0 {
		return fmt.Errorf("laplace: MaxIterations must be >= 0, got %d", cfg.MaxIterations)
	}
	if cfg.MaxFuncEvaluations < 0 {
		return fmt.Errorf("laplace: MaxFuncEvaluations must be >= 0, got %d", cfg.MaxFuncEvaluations)
	}
	if cfg.GradientThreshold < 0 || math.IsNaN(cfg.GradientThreshold) {
		return fmt.Errorf("laplace: GradientThreshold must be >= 0, got %g", cfg.GradientThreshold)
	}
	if cfg.FunctionTolerance < 0 || math.IsNaN(cfg.FunctionTolerance) {
		return fmt.Errorf("laplace: FunctionTolerance must be >= 0, got %g", cfg.FunctionTolerance)
	}
	if cfg.ConvergenceWindow < 0 {
		return fmt.Errorf("laplace: ConvergenceWindow must be >= 0, got %d", cfg.ConvergenceWindow)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("laplace: Workers must be >= 0, got %d", cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
// MaxFuncEvaluations keeps an explicit zero, meaning unlimited.
func applyDefaults(cfg *Config) {
	if cfg.Method == "" {
		cfg.Method = MethodAuto
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = 5000
	}
	if cfg.GradientThreshold == 0 {
		cfg.GradientThreshold = 1e-8
	}
	if cfg.FunctionTolerance == 0 {
		cfg.FunctionTolerance = 1e-10
	}
	if cfg.ConvergenceWindow == 0 {
		cfg.ConvergenceWindow = 100
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
}

// settings translates cfg into gonum minimizer settings.
func (cfg Config) settings() *optimize.Settings {
	return &optimize.Settings{
		GradientThreshold: cfg.GradientThreshold,
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.FunctionTolerance,
			Iterations: cfg.ConvergenceWindow,
		},
		MajorIterations: cfg.MaxIterations,
		FuncEvaluations: cfg.MaxFuncEvaluations,
		Concurrent:      cfg.Workers,
		Recorder:        &logRecorder{logger: cfg.Logger},
	}
}

// Approximation is a Laplace approximation of a density: a normal
// distribution centred on the mode whose covariance is the inverse Fisher
// information at the mode.
type Approximation struct {
	// Mode is the location of the density maximum.
	Mode []float64

	// LogDensity is the value of the log-density at Mode.
	LogDensity float64

	// Covariance is -H⁻¹, where H is the Hessian of the log-density at Mode.
	Covariance *mat.SymDense

	// Status and Stats describe the minimizer run that located Mode.
	Status optimize.Status
	Stats  optimize.Stats
}

// Approximate computes the Laplace approximation of the density whose
// logarithm is logf, starting the mode search at x0. Maximizing logf gives
// the same mode as maximizing the density itself. With cfg.Workers above 1
// the Hessian at the mode is also computed concurrently.
func Approximate(logf LogDensity, x0 []float64, cfg Config) (*Approximation, error) {
	mode, err := FindModeResult(logDensity{logf}, x0, cfg)
	if err != nil {
		return nil, err
	}
	cov, err := fisherVar(logf, mode.X, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("laplace: covariance at mode: %w", err)
	}
	return &Approximation{
		Mode:       mode.X,
		LogDensity: mode.F,
		Covariance: cov,
		Status:     mode.Status,
		Stats:      mode.Stats,
	}, nil
}

// StdDev returns the marginal standard deviations, the square roots of the
// covariance diagonal.
func (a *Approximation) StdDev() []float64 {
	n := a.Covariance.SymmetricDim()
	sd := make([]float64, n)
	for i := range sd {
		sd[i] = math.Sqrt(a.Covariance.At(i, i))
	}
	return sd
}

// Normal returns the approximating multivariate normal distribution. src
// seeds its sampler and may be nil.
func (a *Approximation) Normal(src rand.Source) (*distmv.Normal, error) {
	n, ok := distmv.NewNormal(a.Mode, a.Covariance, src)
	if !ok {
		return nil, fmt.Errorf("%w: %d×%d covariance", ErrNotPositiveDefinite, len(a.Mode), len(a.Mode))
	}
	return n, nil
}
