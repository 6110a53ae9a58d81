package config

import (
	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/conjugate"
	"github.com/katalvlaran/lvbayes/gibbs"
	"github.com/katalvlaran/lvbayes/matrix"
)

// Beta returns the Bernoulli–Beta prior.
func (p PriorConfig) Beta() conjugate.BetaPrior { return conjugate.BetaPrior{A: p.A, B: p.B} }

// Gamma returns the Poisson–Gamma prior.
func (p PriorConfig) Gamma() conjugate.GammaPrior {
	return conjugate.GammaPrior{Shape: p.Shape, Rate: p.Rate}
}

// NormalInverseGamma returns the conjugate Gaussian prior.
func (p PriorConfig) NormalInverseGamma() conjugate.NormalInverseGammaPrior {
	return conjugate.NormalInverseGammaPrior{Mu0: p.Mu0, N0: p.N0, Nu0: p.Nu0, Lambda0: p.Lambda0}
}

// GaussianGibbs returns the semi-conjugate Gaussian prior. Tau0 is the standard
// deviation of the Normal prior on μ, so the precision is 1/Tau0².
func (p PriorConfig) GaussianGibbs() gibbs.GaussianPrior {
	return gibbs.GaussianPrior{Mu0: p.Mu0, Precision: 1 / (p.Tau0 * p.Tau0), Nu0: p.Nu0, Lambda0: p.Lambda0}
}

// Regression returns the regression prior for k coefficients. An empty B0 is
// zeros; an empty A0 is DefaultA0 on the diagonal.
func (p PriorConfig) Regression(k int) (conjugate.RegressionPrior, error) {
	b0 := p.B0
	if len(b0) == 0 {
		b0 = make([]float64, k)
	}
	diag := p.A0
	if len(diag) == 0 {
		diag = make([]float64, k)
		for i := range diag {
			diag[i] = DefaultA0
		}
	}
	if len(b0) != k || len(diag) != k {
		return conjugate.RegressionPrior{}, bayeserr.Invalidf("config: prior b0/a0 have %d/%d entries for %d coefficients", len(b0), len(diag), k)
	}
	a0, err := matrix.NewDiagonal(diag)
	if err != nil {
		return conjugate.RegressionPrior{}, bayeserr.Invalidf("config: prior a0: %v", err)
	}

	return conjugate.RegressionPrior{B0: append([]float64(nil), b0...), A0: a0, Nu0: p.Nu0, Lambda0: p.Lambda0}, nil
}

// RegressionGibbs is Regression for the Gibbs sampler, where b0 and A0 describe
// the coefficients independently of σ².
func (p PriorConfig) RegressionGibbs(k int) (gibbs.RegressionPrior, error) {
	r, err := p.Regression(k)

	return gibbs.RegressionPrior(r), err
}
