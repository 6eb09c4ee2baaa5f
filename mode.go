package laplace

import (
	"context"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/optimize"
)

// ModeResult is the outcome of a successful mode search.
type ModeResult struct {
	// X is the location of the mode.
	X []float64

	// F is the density value at X.
	F float64

	// Method is the minimizer that produced X, with "auto" resolved.
	Method Method

	// Status is the termination status reported by the minimizer.
	Status optimize.Status

	// Stats counts iterations and evaluations spent by the minimizer.
	Stats optimize.Stats
}

// FindMode returns a local maximum of f, searching from x0. It minimizes -f
// with the method chosen by cfg. x0 is not modified.

//
// If the minimizer stops early (iteration or evaluation limit, line search
// failure, non-finite values) the returned error is a *ConvergenceError and
// matches ErrConvergence. The search is not retried.
func FindMode(f Density, x0 []float64, cfg Config) ([]float64, error) {
	res, err := FindModeResult(f, x0, cfg)
	if err != nil {
		return nil, err
	}
	return res.X, nil
}

// FindModeScalar is FindMode for a function of one variable. The problem is
// run as a length-1 vector search; a ScalarLogDensity keeps its derivatives.
func FindModeScalar(f ScalarDensity, x0 float64, cfg Config) (float64, error) {
	res, err := FindModeResult(vectorize(f), []float64{x0}, cfg)
	if err != nil {
		return 0, err
	}
	return res.X[0], nil
}

// FindModeResult is FindMode returning the full minimizer report.
func FindModeResult(f Density, x0 []float64, cfg Config) (*ModeResult, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if len(x0) == 0 {
		return nil, fmt.Errorf("%w: starting point is empty", ErrShape)
	}

	method, err := selectMethod(cfg.Method, f)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	log := cfg.Logger.With("method", string(method), "dimension", len(x0))
	log.DebugContext(ctx, "mode search started", "requested", string(cfg.Method))

	init := make([]float64, len(x0))
	copy(init, x0)

	result, err := optimize.Minimize(problemFor(f), init, cfg.settings(), newOptimizer(method))
	if err == nil && result.Status.Early() {
		err = result.Status.Err()
	}
	if err != nil {
		cerr := &ConvergenceError{Method: method, cause: err}
		if result != nil {
			cerr.Status = result.Status
			cerr.Stats = result.Stats
		}
		log.DebugContext(ctx, "mode search failed",
			"status", cerr.Status.String(),
			"iterations", cerr.Stats.MajorIterations,
			"error", err,
		)
		return nil, cerr
	}

	log.DebugContext(ctx, "mode search completed",
		"status", result.Status.String(),
		"iterations", result.MajorIterations,
		"func_evaluations", result.FuncEvaluations,
		"runtime", result.Runtime,
	)

	return &ModeResult{
		X:      result.X,
		F:      -result.F,
		Method: method,
		Status: result.Status,
		Stats:  result.Stats,
	}, nil
}

// logRecorder implements optimize.Recorder, logging every major iteration.
type logRecorder struct {
	logger *slog.Logger
}

func (r *logRecorder) Init() error { return nil }

func (r *logRecorder) Record(loc *optimize.Location, op optimize.Operation, stats *optimize.Stats) error {
	if op != optimize.MajorIteration {
		return nil
	}
	r.logger.DebugContext(context.Background(), "major iteration",
		"iteration", stats.MajorIterations,
		"objective", loc.F,
		"func_evaluations", stats.FuncEvaluations,
	)
	return nil
}
