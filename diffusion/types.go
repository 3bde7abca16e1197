package diffusion

import "errors"

// ErrNilGraph indicates a nil disparity graph was passed to a constructor.
var ErrNilGraph = errors.New("diffusion: disparity graph must not be nil")

// Options configures the diffusion solver.
type Options struct {
	// Workers is the number of goroutines per red/black sweep. Pixels are
	// partitioned by index modulo Workers, so each worker owns a disjoint
	// pixel set. Values below 2 run the sweep serially.
	Workers int

	// MaxIterations bounds the outer diffusion loop. When the bound is
	// hit, Find returns the current best-effort extraction instead of
	// iterating to threshold feasibility. Zero or negative means no bound.
	MaxIterations int

	// Progress, when non-nil, is called after each completed diffusion
	// iteration with the 1-based iteration number.
	Progress func(iteration int)
}

// DefaultOptions returns the default solver configuration: serial sweeps
// and a generous iteration bound.
func DefaultOptions() Options {
	return Options{
		Workers:       1,
		MaxIterations: 10000,
	}
}
