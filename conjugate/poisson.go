package conjugate

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/density"
	"github.com/katalvlaran/lvbayes/summary"
)

const opPoisson = "conjugate.PoissonGamma"

// ParamRate names the Poisson rate row.
const ParamRate = "lambda"

// GammaPrior is Gamma(Shape, Rate) on the Poisson rate.
type GammaPrior struct {
	Shape, Rate float64
}

// Validate checks Shape, Rate > 0.
func (p GammaPrior) Validate() error {
	if err := checkPositive("gamma prior shape", p.Shape); err != nil {
		return err
	}

	return checkPositive("gamma prior rate", p.Rate)
}

// GammaPosterior is the Gamma posterior of the rate.
type GammaPosterior struct {
	Shape, Rate float64
	N           int
	Sum         float64
}

// Density materializes Gamma(Shape, Rate).
func (p GammaPosterior) Density() (*density.Density, error) { return density.NewGamma(p.Shape, p.Rate) }

// PoissonGamma updates a Gamma prior with counts: shape* = Σy + a, rate* = n + b.
func PoissonGamma(y []float64, prior GammaPrior, opts ...Option) (GammaPosterior, *summary.Table, error) {
	o := newOptions(opts)
	if err := validatePoisson(y, prior, o); err != nil {
		return GammaPosterior{}, nil, bayeserr.Wrap(opPoisson, err)
	}

	n := len(y)
	s := floats.Sum(y)
	post := GammaPosterior{Shape: s + prior.Shape, Rate: float64(n) + prior.Rate, N: n, Sum: s}

	d, err := post.Density()
	if err != nil {
		return GammaPosterior{}, nil, bayeserr.Wrap(opPoisson, err)
	}
	tb := summary.NewTable()
	if err = describe(tb, ParamRate, d, o); err != nil {
		return GammaPosterior{}, nil, bayeserr.Wrap(opPoisson, err)
	}
	o.Logger.Debug("conjugate update",
		zap.String("model", "poisson-gamma"), zap.Int("n", n),
		zap.Float64("shape", post.Shape), zap.Float64("rate", post.Rate))

	return post, tb, nil
}

func validatePoisson(y []float64, prior GammaPrior, o Options) error {
	if err := checkMass(o.Mass); err != nil {
		return err
	}
	if err := prior.Validate(); err != nil {
		return err
	}
	if err := checkObservations(y); err != nil {
		return err
	}
	for i, v := range y {
		if v < 0 || v != math.Trunc(v) {
			return bayeserr.Invalidf("poisson observation %d must be a non-negative integer, got %g", i, v)
		}
	}

	return nil
}
