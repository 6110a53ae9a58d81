package conjugate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/conjugate"
	"github.com/katalvlaran/lvbayes/matrix"
)

func lineDesign(t *testing.T) (*matrix.Dense, []float64) {
	t.Helper()
	x, err := matrix.NewDenseRows([][]float64{{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}})
	require.NoError(t, err)

	return x, []float64{1.1, 2.9, 5.2, 6.8, 9.1}
}

func weakPrior(t *testing.T, k int, precision float64) conjugate.RegressionPrior {
	t.Helper()
	d := make([]float64, k)
	for i := range d {
		d[i] = precision
	}
	a0, err := matrix.NewDiagonal(d)
	require.NoError(t, err)

	return conjugate.RegressionPrior{B0: make([]float64, k), A0: a0, Nu0: 1, Lambda0: 1}
}

func TestRegression_Posterior(t *testing.T) {
	t.Parallel()
	x, y := lineDesign(t)
	prior := weakPrior(t, 2, 0.01)
	post, tb, err := conjugate.Regression(y, x, prior)
	require.NoError(t, err)

	// OLS by hand: slope = Sxy/Sxx = 19.9/10, intercept = ȳ − 2·slope.
	assert.InDelta(t, 1.04, post.OLS[0], 1e-12)
	assert.InDelta(t, 1.99, post.OLS[1], 1e-12)
	assert.InDelta(t, 0.107, post.RSS, 1e-12)
	assert.Equal(t, 6.0, post.Nu)

	// A weak prior barely moves the posterior mean away from OLS.
	assert.InDelta(t, post.OLS[0], post.B[0], 0.01)
	assert.InDelta(t, post.OLS[1], post.B[1], 0.01)

	// λ* = yᵗy + b0ᵗA0b0 − b*ᵗA*b* + λ0 is an equivalent form of the update.
	yty := 0.0
	for _, v := range y {
		yty += v * v
	}
	bab, err := matrix.QuadForm(post.B, post.A, post.B)
	require.NoError(t, err)
	assert.InDelta(t, yty-bab+prior.Lambda0, post.Lambda, 1e-9)

	aInv, err := matrix.Inverse(post.A)
	require.NoError(t, err)
	for j, h := range post.Scale {
		v, err := aInv.At(j, j)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(post.Lambda/post.Nu*v), h, 1e-12)
	}

	assert.Equal(t, []string{"b0", "b1", "sigma2"}, tb.Params())
	for _, name := range []string{"b0", "b1"} {
		s := requireRow(t, tb, name)
		assert.InDelta(t, s.CI.Lower, s.HPD.Lower, 1e-7, "symmetric t: HPD equals equal-tailed")
		assert.InDelta(t, s.CI.Upper, s.HPD.Upper, 1e-7)
		assert.False(t, s.HPDFallback)
	}
	s2 := requireRow(t, tb, conjugate.ParamVariance)
	assert.InDelta(t, post.Lambda/(post.Nu+2), s2.Mode, 1e-12)
	assert.Less(t, s2.HPD.Width(), s2.CI.Width())
}

func TestRegression_InformativePriorShrinks(t *testing.T) {
	t.Parallel()
	x, y := lineDesign(t)
	weak, _, err := conjugate.Regression(y, x, weakPrior(t, 2, 0.01))
	require.NoError(t, err)
	strong, _, err := conjugate.Regression(y, x, weakPrior(t, 2, 100))
	require.NoError(t, err)
	assert.Less(t, math.Abs(strong.B[1]), math.Abs(weak.B[1]), "prior centred at 0 pulls the slope down")
	assert.Greater(t, strong.Lambda, weak.Lambda, "disagreement term grows")
}

func TestRegression_Names(t *testing.T) {
	t.Parallel()
	x, y := lineDesign(t)
	_, tb, err := conjugate.Regression(y, x, weakPrior(t, 2, 0.01), conjugate.WithCoefficientNames("alpha", "beta"))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "sigma2"}, tb.Params())

	_, _, err = conjugate.Regression(y, x, weakPrior(t, 2, 0.01), conjugate.WithCoefficientNames("alpha"))
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	_, _, err = conjugate.Regression(y, x, weakPrior(t, 2, 0.01), conjugate.WithCoefficientNames("alpha", "sigma2"))
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
}

func TestRegression_LinearAlgebraErrors(t *testing.T) {
	t.Parallel()
	y := []float64{1, 2, 3, 4}
	dup, err := matrix.NewDenseRows([][]float64{{1, 2, 2}, {1, 3, 3}, {1, 5, 5}, {1, 7, 7}})
	require.NoError(t, err)
	_, _, err = conjugate.Regression(y, dup, weakPrior(t, 3, 0.01))
	assert.ErrorIs(t, err, bayeserr.ErrLinearAlgebra)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	x, y5 := lineDesign(t)
	notPD, err := matrix.NewDenseRows([][]float64{{1, 2}, {2, 1}})
	require.NoError(t, err)
	_, _, err = conjugate.Regression(y5, x, conjugate.RegressionPrior{B0: []float64{0, 0}, A0: notPD, Nu0: 1, Lambda0: 1})
	assert.ErrorIs(t, err, bayeserr.ErrLinearAlgebra)
	assert.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
}

func TestRegression_Invalid(t *testing.T) {
	t.Parallel()
	x, y := lineDesign(t)
	_, _, err := conjugate.Regression(y[:3], x, weakPrior(t, 2, 0.01))
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	_, _, err = conjugate.Regression(y, x, weakPrior(t, 3, 0.01))
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	_, _, err = conjugate.Regression(y, nil, weakPrior(t, 2, 0.01))
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
	p := weakPrior(t, 2, 0.01)
	p.Lambda0 = 0
	_, _, err = conjugate.Regression(y, x, p)
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
}
