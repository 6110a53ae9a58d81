package conjugate

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/density"
	"github.com/katalvlaran/lvbayes/matrix"
	"github.com/katalvlaran/lvbayes/summary"
)

const opRegression = "conjugate.Regression"

// RegressionPrior is b | σ² ~ N(B0, σ²·A0⁻¹), σ² ~ InvGamma(Nu0/2, Lambda0/2).
// A0 is a k×k symmetric positive-definite precision matrix.
type RegressionPrior struct {
	B0      []float64
	A0      *matrix.Dense
	Nu0     float64
	Lambda0 float64
}

// Validate checks shapes against k coefficients, positivity and positive-definiteness of A0.
func (p RegressionPrior) Validate(k int) error {
	if len(p.B0) != k {
		return bayeserr.Invalidf("prior mean has %d coefficients, design has %d", len(p.B0), k)
	}
	if p.A0 == nil {
		return bayeserr.Invalidf("prior precision is nil")
	}
	if r, c := p.A0.Shape(); r != k || c != k {
		return bayeserr.Invalidf("prior precision is %d×%d, want %d×%d", r, c, k, k)
	}
	if err := matrix.ValidateVecLen(p.B0, k); err != nil {
		return bayeserr.Invalidf("prior mean: %v", err)
	}
	if err := checkPositive("prior nu0", p.Nu0); err != nil {
		return err
	}
	if err := checkPositive("prior lambda0", p.Lambda0); err != nil {
		return err
	}
	if _, err := matrix.NewCholesky(p.A0); err != nil {
		return fmt.Errorf("prior precision: %w", err)
	}

	return nil
}

// RegressionPosterior holds the posterior hyperparameters and the OLS quantities
// they were built from.
type RegressionPosterior struct {
	B      []float64     // b*
	A      *matrix.Dense // A* = XᵗX + A0
	Nu     float64       // ν*
	Lambda float64       // λ*
	Scale  []float64     // h*_j = √(λ*/ν*·[A*⁻¹]_jj)
	OLS    []float64     // b̂
	RSS    float64       // residual sum of squares at b̂
}

// CoefficientDensity is the marginal posterior of b_j: t(ν*, b*_j, h*_j).
func (p RegressionPosterior) CoefficientDensity(j int) (*density.Density, error) {
	if j < 0 || j >= len(p.B) {
		return nil, bayeserr.Invalidf("coefficient index %d out of range [0,%d)", j, len(p.B))
	}

	return density.NewStudentT(p.Nu, p.B[j], p.Scale[j])
}

// VarianceDensity is the marginal posterior of σ²: InvGamma(ν*/2, λ*/2).
func (p RegressionPosterior) VarianceDensity() (*density.Density, error) {
	return density.NewInverseGamma(0.5*p.Nu, 0.5*p.Lambda)
}

// Regression updates the linear-regression Normal-Inverse-Gamma model.
//
// Implementation:
//   - Stage 1: XX = XᵗX, Xy = Xᵗy, b̂ = XX⁻¹Xy, RSS = |y − Xb̂|².
//   - Stage 2: A* = XX + A0, b* = A*⁻¹(Xy + A0·b0).
//   - Stage 3: C* = (XX⁻¹ + A0⁻¹)⁻¹, λ* = RSS + (b0 − b̂)ᵗC*(b0 − b̂) + λ0, ν* = n + ν0.
//   - Stage 4: per-coefficient Student-t rows, then the InvGamma row for σ².
//
// Errors:
//   - bayeserr.ErrInvalidParameter for shape/value problems.
//   - bayeserr.ErrLinearAlgebra when XX, A* or A0 is singular or A0 is not positive definite.
func Regression(y []float64, x *matrix.Dense, prior RegressionPrior, opts ...Option) (RegressionPosterior, *summary.Table, error) {
	o := newOptions(opts)
	post, err := regressionPosterior(y, x, prior, o)
	if err != nil {
		return RegressionPosterior{}, nil, bayeserr.Wrap(opRegression, err)
	}

	names, err := CoefficientNames(o.CoefNames, len(post.B))
	if err != nil {
		return RegressionPosterior{}, nil, bayeserr.Wrap(opRegression, err)
	}
	tb := summary.NewTable()
	for j, name := range names {
		d, err := post.CoefficientDensity(j)
		if err != nil {
			return RegressionPosterior{}, nil, bayeserr.Wrap(opRegression, err)
		}
		if err = describe(tb, name, d, o); err != nil {
			return RegressionPosterior{}, nil, bayeserr.Wrap(opRegression, err)
		}
	}
	dSigma, err := post.VarianceDensity()
	if err != nil {
		return RegressionPosterior{}, nil, bayeserr.Wrap(opRegression, err)
	}
	if err = describe(tb, ParamVariance, dSigma, o); err != nil {
		return RegressionPosterior{}, nil, bayeserr.Wrap(opRegression, err)
	}
	o.Logger.Debug("conjugate update",
		zap.String("model", "regression"), zap.Int("n", len(y)), zap.Int("k", len(post.B)),
		zap.Float64("nu_star", post.Nu), zap.Float64("lambda_star", post.Lambda))

	return post, tb, nil
}

func regressionPosterior(y []float64, x *matrix.Dense, prior RegressionPrior, o Options) (RegressionPosterior, error) {
	var zero RegressionPosterior
	if err := checkMass(o.Mass); err != nil {
		return zero, err
	}
	if x == nil {
		return zero, bayeserr.Invalidf("design matrix is nil")
	}
	if err := checkObservations(y); err != nil {
		return zero, err
	}
	n, k := x.Shape()
	if n != len(y) {
		return zero, bayeserr.Invalidf("design has %d rows, response has %d", n, len(y))
	}
	if err := prior.Validate(k); err != nil {
		return zero, err
	}

	// Stage 1: ordinary least squares.
	xx, err := matrix.Gram(x)
	if err != nil {
		return zero, err
	}
	xy, err := matrix.TMatVec(x, y)
	if err != nil {
		return zero, err
	}
	xxLU, err := matrix.Factorize(xx)
	if err != nil {
		return zero, fmt.Errorf("XᵗX: %w", err)
	}
	bOLS, err := xxLU.SolveVec(xy)
	if err != nil {
		return zero, err
	}
	fit, err := matrix.MatVec(x, bOLS)
	if err != nil {
		return zero, err
	}
	resid := make([]float64, n)
	floats.SubTo(resid, y, fit)
	rss := floats.Dot(resid, resid)

	// Stage 2: posterior precision and mean.
	aStar, err := matrix.Add(xx, prior.A0)
	if err != nil {
		return zero, err
	}
	a0b0, err := matrix.MatVec(prior.A0, prior.B0)
	if err != nil {
		return zero, err
	}
	rhs := make([]float64, k)
	floats.AddTo(rhs, xy, a0b0)
	aLU, err := matrix.Factorize(aStar)
	if err != nil {
		return zero, fmt.Errorf("posterior precision: %w", err)
	}
	bStar, err := aLU.SolveVec(rhs)
	if err != nil {
		return zero, err
	}
	aInv := aLU.Inverse()

	// Stage 3: prior–data disagreement and scale.
	a0Inv, err := matrix.Inverse(prior.A0)
	if err != nil {
		return zero, fmt.Errorf("prior precision: %w", err)
	}
	sumInv, err := matrix.Add(xxLU.Inverse(), a0Inv)
	if err != nil {
		return zero, err
	}
	cStar, err := matrix.Inverse(sumInv)
	if err != nil {
		return zero, err
	}
	diff := make([]float64, k)
	floats.SubTo(diff, prior.B0, bOLS)
	q, err := matrix.QuadForm(diff, cStar, diff)
	if err != nil {
		return zero, err
	}

	nu := float64(n) + prior.Nu0
	lambda := rss + q + prior.Lambda0
	scale := aInv.Diag()
	for j := range scale {
		scale[j] = math.Sqrt(lambda / nu * scale[j])
	}

	return RegressionPosterior{
		B: bStar, A: aStar, Nu: nu, Lambda: lambda, Scale: scale, OLS: bOLS, RSS: rss,
	}, nil
}

// CoefficientNames returns the row names for k regression coefficients:
// names itself when it has k distinct entries, b0…b{k-1} when it is empty.
// ParamVariance is reserved for σ².
func CoefficientNames(names []string, k int) ([]string, error) {
	if len(names) == 0 {
		out := make([]string, k)
		for j := range out {
			out[j] = fmt.Sprintf("b%d", j)
		}
		return out, nil
	}
	if len(names) != k {
		return nil, bayeserr.Invalidf("got %d coefficient names for %d coefficients", len(names), k)
	}
	seen := make(map[string]struct{}, k)
	for _, name := range names {
		if name == ParamVariance {
			return nil, bayeserr.Invalidf("coefficient name %q is reserved", name)
		}
		if _, dup := seen[name]; dup {
			return nil, bayeserr.Invalidf("duplicate coefficient name %q", name)
		}
		seen[name] = struct{}{}
	}

	return names, nil
}
