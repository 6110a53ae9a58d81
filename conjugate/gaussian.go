package conjugate

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/density"
	"github.com/katalvlaran/lvbayes/summary"
)

const opGaussian = "conjugate.NormalInverseGamma"

// Row names shared by the Gaussian and regression models.
const (
	ParamMean     = "mu"
	ParamVariance = "sigma2"
)

// NormalInverseGammaPrior is μ | σ² ~ N(Mu0, σ²/N0), σ² ~ InvGamma(Nu0/2, Lambda0/2).
type NormalInverseGammaPrior struct {
	Mu0     float64
	N0      float64 // prior precision in units of observations
	Nu0     float64
	Lambda0 float64
}

// Validate checks a finite Mu0 and positive N0, Nu0, Lambda0.
func (p NormalInverseGammaPrior) Validate() error {
	if math.IsNaN(p.Mu0) || math.IsInf(p.Mu0, 0) {
		return bayeserr.Invalidf("prior mean must be finite, got %g", p.Mu0)
	}
	if err := checkPositive("prior n0", p.N0); err != nil {
		return err
	}
	if err := checkPositive("prior nu0", p.Nu0); err != nil {
		return err
	}

	return checkPositive("prior lambda0", p.Lambda0)
}

// NormalInverseGammaPosterior holds (μ*, n*, ν*, λ*).
type NormalInverseGammaPosterior struct {
	Mu     float64
	N      float64
	Nu     float64
	Lambda float64
}

// Scale returns τ* = √(λ*/ν*/n*), the scale of the marginal t of μ.
func (p NormalInverseGammaPosterior) Scale() float64 { return math.Sqrt(p.Lambda / p.Nu / p.N) }

// MeanDensity is the marginal posterior of μ: t(ν*, μ*, τ*).
func (p NormalInverseGammaPosterior) MeanDensity() (*density.Density, error) {
	return density.NewStudentT(p.Nu, p.Mu, p.Scale())
}

// VarianceDensity is the marginal posterior of σ²: InvGamma(ν*/2, λ*/2).
func (p NormalInverseGammaPosterior) VarianceDensity() (*density.Density, error) {
	return density.NewInverseGamma(0.5*p.Nu, 0.5*p.Lambda)
}

// NormalInverseGamma updates the Gaussian mean/variance model:
//
//	n* = n + n0
//	μ* = (n·ȳ + n0·μ0)/n*
//	ν* = n + ν0
//	λ* = n·s² + n·n0/n*·(μ0 − ȳ)² + λ0      (s² is the population variance)
func NormalInverseGamma(y []float64, prior NormalInverseGammaPrior, opts ...Option) (NormalInverseGammaPosterior, *summary.Table, error) {
	o := newOptions(opts)
	var zero NormalInverseGammaPosterior
	if err := checkMass(o.Mass); err != nil {
		return zero, nil, bayeserr.Wrap(opGaussian, err)
	}
	if err := prior.Validate(); err != nil {
		return zero, nil, bayeserr.Wrap(opGaussian, err)
	}
	if err := checkObservations(y); err != nil {
		return zero, nil, bayeserr.Wrap(opGaussian, err)
	}

	n := float64(len(y))
	mean := stat.Mean(y, nil)
	ssd := n * stat.PopVariance(y, nil)
	nStar := n + prior.N0
	dev := prior.Mu0 - mean
	post := NormalInverseGammaPosterior{
		Mu:     (n*mean + prior.N0*prior.Mu0) / nStar,
		N:      nStar,
		Nu:     n + prior.Nu0,
		Lambda: ssd + n*prior.N0/nStar*dev*dev + prior.Lambda0,
	}

	tb := summary.NewTable()
	dMu, err := post.MeanDensity()
	if err != nil {
		return zero, nil, bayeserr.Wrap(opGaussian, err)
	}
	if err = describe(tb, ParamMean, dMu, o); err != nil {
		return zero, nil, bayeserr.Wrap(opGaussian, err)
	}
	dSigma, err := post.VarianceDensity()
	if err != nil {
		return zero, nil, bayeserr.Wrap(opGaussian, err)
	}
	if err = describe(tb, ParamVariance, dSigma, o); err != nil {
		return zero, nil, bayeserr.Wrap(opGaussian, err)
	}
	o.Logger.Debug("conjugate update",
		zap.String("model", "normal-inverse-gamma"), zap.Int("n", len(y)),
		zap.Float64("mu_star", post.Mu), zap.Float64("nu_star", post.Nu), zap.Float64("lambda_star", post.Lambda))

	return post, tb, nil
}
