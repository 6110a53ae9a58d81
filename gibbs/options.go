package gibbs

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/bayeserr"
)

const (
	// DefaultIterations is the total number of draws per chain, burn-in included.
	DefaultIterations = 22000
	// DefaultBurnIn is the number of leading draws marked as warm-up.
	DefaultBurnIn = 2000
)

// Options configures a sampler.
type Options struct {
	Iterations int
	BurnIn     int
	Logger     *zap.Logger
	CoefNames  []string
}

// Option mutates Options.
type Option func(*Options)

// WithIterations sets the chain length, burn-in included.
func WithIterations(n int) Option { return func(o *Options) { o.Iterations = n } }

// WithBurnIn sets the number of warm-up draws.
func WithBurnIn(n int) Option { return func(o *Options) { o.BurnIn = n } }

// WithLogger routes sampler progress to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCoefficientNames names the regression coefficient columns (default b0, b1, …).
func WithCoefficientNames(names ...string) Option {
	return func(o *Options) { o.CoefNames = append([]string(nil), names...) }
}

func newOptions(opts []Option) (Options, error) {
	o := Options{Iterations: DefaultIterations, BurnIn: DefaultBurnIn, Logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.Iterations < 1 {
		return o, bayeserr.Invalidf("iterations must be ≥ 1, got %d", o.Iterations)
	}
	if o.BurnIn < 0 || o.BurnIn >= o.Iterations {
		return o, bayeserr.Invalidf("burn-in %d outside [0, %d)", o.BurnIn, o.Iterations)
	}

	return o, nil
}
