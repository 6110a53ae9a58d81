package conjugate

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/hpd"
)

// DefaultMass is the probability of the reported credible intervals.
const DefaultMass = 0.95

// Options configures every update in this package.
type Options struct {
	Mass      float64
	Logger    *zap.Logger
	Solver    []hpd.Option
	CoefNames []string
}

// Option mutates Options.
type Option func(*Options)

// WithMass sets the interval probability.
func WithMass(p float64) Option { return func(o *Options) { o.Mass = p } }

// WithLogger routes debug output and HPD fallback warnings to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSolverOptions forwards options to hpd.Solve.
func WithSolverOptions(opts ...hpd.Option) Option {
	return func(o *Options) { o.Solver = append(o.Solver, opts...) }
}

// WithCoefficientNames names the regression coefficients in the summary table.
// Default names are b0, b1, ….
func WithCoefficientNames(names ...string) Option {
	return func(o *Options) { o.CoefNames = append([]string(nil), names...) }
}

func newOptions(opts []Option) Options {
	o := Options{Mass: DefaultMass, Logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
