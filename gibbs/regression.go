package gibbs

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/chain"
	"github.com/katalvlaran/lvbayes/conjugate"
	"github.com/katalvlaran/lvbayes/matrix"
)

const opRegression = "gibbs.Regression"

// RegressionPrior is b ~ N(B0, A0⁻¹) independent of σ² ~ InvGamma(Nu0/2, Lambda0/2).
// A0 is a k×k symmetric positive-definite precision matrix.
type RegressionPrior struct {
	B0      []float64
	A0      *matrix.Dense
	Nu0     float64
	Lambda0 float64
}

// Validate checks shapes against k coefficients and the positivity of every
// hyperparameter, including positive-definiteness of A0.
func (p RegressionPrior) Validate(k int) error {
	return conjugate.RegressionPrior(p).Validate(k)
}

// Regression samples (b, σ²) for y = Xb + ε.
type Regression struct {
	prior RegressionPrior
	opts  Options
	names []string

	xx         *matrix.Dense // XᵗX
	xy         []float64     // Xᵗy
	a0b0       []float64     // A0·b0
	ols        []float64     // b̂
	rss        float64
	shape      float64 // (n + ν0)/2
	sigma2Init float64
}

var _ Model = (*Regression)(nil)

// NewRegression validates the data and prior and precomputes XᵗX, Xᵗy and the
// least-squares fit.
//
// The chain starts from σ² = RSS/(n−k), or RSS/n when n ≤ k; a perfect fit
// starts from the prior guess λ0/ν0 instead.
//
// Errors:
//   - bayeserr.ErrInvalidParameter for shape/value problems.
//   - bayeserr.ErrLinearAlgebra when XᵗX is singular or A0 is not positive definite.
func NewRegression(y []float64, x *matrix.Dense, prior RegressionPrior, opts ...Option) (*Regression, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, bayeserr.Wrap(opRegression, err)
	}
	if x == nil {
		return nil, bayeserr.Wrap(opRegression, bayeserr.Invalidf("design matrix is nil"))
	}
	if err = checkObservations(y); err != nil {
		return nil, bayeserr.Wrap(opRegression, err)
	}
	n, k := x.Shape()
	if n != len(y) {
		return nil, bayeserr.Wrap(opRegression, bayeserr.Invalidf("design has %d rows, response has %d", n, len(y)))
	}
	if err = prior.Validate(k); err != nil {
		return nil, bayeserr.Wrap(opRegression, err)
	}
	coef, err := conjugate.CoefficientNames(o.CoefNames, k)
	if err != nil {
		return nil, bayeserr.Wrap(opRegression, err)
	}

	r := &Regression{
		prior: prior,
		opts:  o,
		names: append(append([]string(nil), coef...), conjugate.ParamVariance),
		shape: 0.5 * (float64(n) + prior.Nu0),
	}
	if err = r.leastSquares(y, x); err != nil {
		return nil, bayeserr.Wrap(opRegression, err)
	}
	if r.a0b0, err = matrix.MatVec(prior.A0, prior.B0); err != nil {
		return nil, bayeserr.Wrap(opRegression, err)
	}

	dof := float64(n - k)
	if n <= k {
		dof = float64(n)
	}
	r.sigma2Init = r.rss / dof
	if r.rss == 0 {
		r.sigma2Init = prior.Lambda0 / prior.Nu0
	}

	return r, nil
}

// leastSquares fills xx, xy, ols and rss.
func (r *Regression) leastSquares(y []float64, x *matrix.Dense) error {
	var err error
	if r.xx, err = matrix.Gram(x); err != nil {
		return err
	}
	if r.xy, err = matrix.TMatVec(x, y); err != nil {
		return err
	}
	if r.ols, err = matrix.Solve(r.xx, r.xy); err != nil {
		return fmt.Errorf("XᵗX: %w", err)
	}
	fit, err := matrix.MatVec(x, r.ols)
	if err != nil {
		return err
	}
	resid := make([]float64, len(y))
	floats.SubTo(resid, y, fit)
	r.rss = floats.Dot(resid, resid)

	return nil
}

// Names returns the coefficient names followed by "sigma2".
func (r *Regression) Names() []string { return append([]string(nil), r.names...) }

// OLS returns a copy of the least-squares coefficients.
func (r *Regression) OLS() []float64 { return append([]float64(nil), r.ols...) }

// Run draws one chain:
//
//	b  ~ N(P⁻¹h, P⁻¹),  P = XᵗX/σ² + A0,  h = Xᵗy/σ² + A0·b0
//	σ² ~ InvGamma((n+ν0)/2, ((b−b̂)ᵗXᵗX(b−b̂) + RSS + λ0)/2)
func (r *Regression) Run(ctx context.Context, src Sampler) (*chain.Chain, error) {
	k := len(r.ols)
	sigma2 := r.sigma2Init
	h := make([]float64, k)
	diff := make([]float64, k)
	step := func(row []float64) error {
		scaled, err := matrix.Scale(r.xx, 1/sigma2)
		if err != nil {
			return err
		}
		prec, err := matrix.Add(scaled, r.prior.A0)
		if err != nil {
			return err
		}
		for j := range h {
			h[j] = r.xy[j]/sigma2 + r.a0b0[j]
		}
		b, err := src.MultivariateNormalPrecision(prec, h)
		if err != nil {
			return err
		}
		floats.SubTo(diff, b, r.ols)
		q, err := matrix.QuadForm(diff, r.xx, diff)
		if err != nil {
			return err
		}
		sigma2 = src.InverseGamma(r.shape, 0.5*(q+r.rss+r.prior.Lambda0))
		copy(row, b)
		row[k] = sigma2

		return nil
	}

	c, err := sample(ctx, "regression", r.names, r.opts, step)
	if err != nil {
		return c, bayeserr.Wrap(opRegression, err)
	}

	return c, nil
}
