package conjugate

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/density"
	"github.com/katalvlaran/lvbayes/summary"
)

const opBernoulli = "conjugate.BernoulliBeta"

// ParamSuccess names the success probability row.
const ParamSuccess = "q"

// BetaPrior is Beta(A, B) on the success probability.
type BetaPrior struct {
	A, B float64
}

// Validate checks A, B > 0.
func (p BetaPrior) Validate() error {
	if err := checkPositive("beta prior a", p.A); err != nil {
		return err
	}

	return checkPositive("beta prior b", p.B)
}

// BetaPosterior is the Beta posterior with the sufficient statistics that produced it.
type BetaPosterior struct {
	A, B      float64
	N         int
	Successes float64
}

// Density materializes Beta(A, B).
func (p BetaPosterior) Density() (*density.Density, error) { return density.NewBeta(p.A, p.B) }

// BernoulliBeta updates a Beta prior with 0/1 observations:
// a* = Σy + a, b* = n − Σy + b.
func BernoulliBeta(y []float64, prior BetaPrior, opts ...Option) (BetaPosterior, *summary.Table, error) {
	o := newOptions(opts)
	if err := validateBernoulli(y, prior, o); err != nil {
		return BetaPosterior{}, nil, bayeserr.Wrap(opBernoulli, err)
	}

	n := len(y)
	s := floats.Sum(y)
	post := BetaPosterior{A: s + prior.A, B: float64(n) - s + prior.B, N: n, Successes: s}

	d, err := post.Density()
	if err != nil {
		return BetaPosterior{}, nil, bayeserr.Wrap(opBernoulli, err)
	}
	tb := summary.NewTable()
	if err = describe(tb, ParamSuccess, d, o); err != nil {
		return BetaPosterior{}, nil, bayeserr.Wrap(opBernoulli, err)
	}
	o.Logger.Debug("conjugate update",
		zap.String("model", "bernoulli-beta"), zap.Int("n", n),
		zap.Float64("a", post.A), zap.Float64("b", post.B))

	return post, tb, nil
}

func validateBernoulli(y []float64, prior BetaPrior, o Options) error {
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
		if v != 0 && v != 1 {
			return bayeserr.Invalidf("bernoulli observation %d must be 0 or 1, got %g", i, v)
		}
	}

	return nil
}
