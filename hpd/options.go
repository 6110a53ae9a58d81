package hpd

import "go.uber.org/zap"

const (
	// DefaultMaxIter is the Newton iteration budget.
	DefaultMaxIter = 100
	// DefaultTolerance bounds max(|mass residual|, |log-density residual|).
	DefaultTolerance = 1e-10
	// maxHalvings caps backtracking inside one Newton step.
	maxHalvings = 60
	// tailMassResolution is the bracket width at which tail-mass bisection stops.
	tailMassResolution = 1e-17
)

// Options configures Solve.
type Options struct {
	MaxIter    int
	Tolerance  float64
	Initial    [2]float64
	HasInitial bool
	Logger     *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithMaxIter sets the iteration budget (ignored when n ≤ 0).
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIter = n
		}
	}
}

// WithTolerance sets the convergence tolerance (ignored when tol ≤ 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// WithInitial replaces the equal-tailed starting interval.
func WithInitial(lo, hi float64) Option {
	return func(o *Options) {
		o.Initial = [2]float64{lo, hi}
		o.HasInitial = true
	}
}

// WithLogger routes solver debug output to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func newOptions(opts []Option) Options {
	o := Options{MaxIter: DefaultMaxIter, Tolerance: DefaultTolerance, Logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
