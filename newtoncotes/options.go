package newtoncotes

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers keeps the reduction sequential and bit-reproducible.
	DefaultWorkers = 1

	// DefaultMinParallelSteps is the smallest panel count for which more
	// than one worker is actually used. Below it goroutine overhead dominates.
	DefaultMinParallelSteps = 1024
)

// ---------- Internal panic messages ----------

const (
	panicWorkersInvalid  = "newtoncotes: WithWorkers: workers must be >= 1"
	panicMinStepsInvalid = "newtoncotes: WithMinParallelSteps: steps must be >= 1"
)

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error); integrators never panic on user data.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	workers          int // >= 1; DefaultWorkers
	minParallelSteps int // >= 1; DefaultMinParallelSteps
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		workers:          DefaultWorkers,
		minParallelSteps: DefaultMinParallelSteps,
	}
}

// Workers reports the configured worker count.
func (o Options) Workers() int { return o.workers }

// MinParallelSteps reports the configured parallel threshold.
func (o Options) MinParallelSteps() int { return o.minParallelSteps }

// WithWorkers sets the number of goroutines used to reduce the panel sum.
//
// Behavior highlights:
//   - workers == 1 ⇒ sequential left-to-right sum (default, reproducible).
//   - workers > 1 ⇒ contiguous chunks summed concurrently, partial sums
//     combined in chunk order. Rounding may differ from the sequential sum.
//
// Panics when workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithMinParallelSteps sets the panel count below which the reduction stays
// sequential regardless of WithWorkers.
//
// Panics when steps < 1.
func WithMinParallelSteps(steps int) Option {
	if steps < 1 {
		panic(panicMinStepsInvalid)
	}

	return func(o *Options) { o.minParallelSteps = steps }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
