package diagnostics

import (
	"go.uber.org/zap"
)

const (
	// DefaultMass is the probability of CI and HPD.
	DefaultMass = 0.95
	// DefaultBatches is the number of batches for MCSE and R-hat.
	DefaultBatches = 4
	// DefaultRHatThreshold is the R-hat above which a HighRHat warning is raised.
	DefaultRHatThreshold = 1.05
)

// Options configures Summarize.
type Options struct {
	BurnIn        int
	HasBurnIn     bool
	Mass          float64
	Batches       int
	RHatThreshold float64
	Logger        *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithBurnIn overrides the chain's own burn-in.
func WithBurnIn(n int) Option {
	return func(o *Options) {
		o.BurnIn = n
		o.HasBurnIn = true
	}
}

// WithMass sets the interval probability.
func WithMass(p float64) Option { return func(o *Options) { o.Mass = p } }

// WithBatches sets the batch count B.
func WithBatches(b int) Option { return func(o *Options) { o.Batches = b } }

// WithRHatThreshold sets the HighRHat warning threshold.
func WithRHatThreshold(r float64) Option { return func(o *Options) { o.RHatThreshold = r } }

// WithLogger routes warnings to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func newOptions(opts []Option) Options {
	o := Options{
		Mass:          DefaultMass,
		Batches:       DefaultBatches,
		RHatThreshold: DefaultRHatThreshold,
		Logger:        zap.NewNop(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
