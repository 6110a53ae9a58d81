package gibbs

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/chain"
	"github.com/katalvlaran/lvbayes/conjugate"
)

const opGaussian = "gibbs.Gaussian"

// GaussianPrior is μ ~ N(Mu0, 1/Precision) independent of σ² ~ InvGamma(Nu0/2, Lambda0/2).
type GaussianPrior struct {
	Mu0       float64
	Precision float64 // τ, the prior precision of μ
	Nu0       float64
	Lambda0   float64
}

// Validate checks a finite Mu0 and positive Precision, Nu0, Lambda0.
func (p GaussianPrior) Validate() error {
	if math.IsNaN(p.Mu0) || math.IsInf(p.Mu0, 0) {
		return bayeserr.Invalidf("prior mean must be finite, got %g", p.Mu0)
	}
	for _, v := range []struct {
		name string
		val  float64
	}{{"prior precision", p.Precision}, {"prior nu0", p.Nu0}, {"prior lambda0", p.Lambda0}} {
		if !(v.val > 0) || math.IsInf(v.val, 1) {
			return bayeserr.Invalidf("%s must be finite and > 0, got %g", v.name, v.val)
		}
	}

	return nil
}

// Gaussian samples (μ, σ²) for i.i.d. Normal observations.
type Gaussian struct {
	prior GaussianPrior
	opts  Options

	n, sum, mean float64
	shape        float64 // (n + ν0)/2, fixed across sweeps
	ssdPlus      float64 // n·s² + λ0
	sigma2Init   float64
}

var _ Model = (*Gaussian)(nil)

// NewGaussian validates y and the prior and precomputes the sufficient statistics.
//
// The chain starts from σ² = population variance of y; constant data starts
// from the prior guess λ0/ν0 instead.
func NewGaussian(y []float64, prior GaussianPrior, opts ...Option) (*Gaussian, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, bayeserr.Wrap(opGaussian, err)
	}
	if err = prior.Validate(); err != nil {
		return nil, bayeserr.Wrap(opGaussian, err)
	}
	if err = checkObservations(y); err != nil {
		return nil, bayeserr.Wrap(opGaussian, err)
	}

	n := float64(len(y))
	popVar := stat.PopVariance(y, nil)
	start := popVar
	if start == 0 {
		start = prior.Lambda0 / prior.Nu0
	}

	return &Gaussian{
		prior:      prior,
		opts:       o,
		n:          n,
		sum:        floats.Sum(y),
		mean:       stat.Mean(y, nil),
		shape:      0.5 * (n + prior.Nu0),
		ssdPlus:    n*popVar + prior.Lambda0,
		sigma2Init: start,
	}, nil
}

// Names returns ["mu", "sigma2"].
func (g *Gaussian) Names() []string {
	return []string{conjugate.ParamMean, conjugate.ParamVariance}
}

// Run draws one chain:
//
//	v  = 1/(n/σ² + τ),  m = v·(Σy/σ² + τ·μ0),  μ ~ N(m, v)
//	σ² ~ InvGamma((n+ν0)/2, (n(μ−ȳ)² + n·s² + λ0)/2)
func (g *Gaussian) Run(ctx context.Context, src Sampler) (*chain.Chain, error) {
	tau, mu0 := g.prior.Precision, g.prior.Mu0
	sigma2 := g.sigma2Init
	step := func(row []float64) error {
		v := 1 / (g.n/sigma2 + tau)
		m := v * (g.sum/sigma2 + tau*mu0)
		mu := src.Normal(m, math.Sqrt(v))
		d := mu - g.mean
		sigma2 = src.InverseGamma(g.shape, 0.5*(g.n*d*d+g.ssdPlus))
		row[0], row[1] = mu, sigma2

		return nil
	}

	c, err := sample(ctx, "gaussian", g.Names(), g.opts, step)
	if err != nil {
		return c, bayeserr.Wrap(opGaussian, err)
	}

	return c, nil
}

func checkObservations(y []float64) error {
	if len(y) == 0 {
		return bayeserr.Invalidf("observation set is empty")
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return bayeserr.Invalidf("observation %d is not finite (%g)", i, v)
		}
	}

	return nil
}
