package gibbs_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/conjugate"
	"github.com/katalvlaran/lvbayes/gibbs"
	"github.com/katalvlaran/lvbayes/matrix"
	"github.com/katalvlaran/lvbayes/rng"
)

// normalData draws n observations from N(mean, sd²) with a fixed seed.
func normalData(n int, mean, sd float64) []float64 {
	src := rng.New(1)
	y := make([]float64, n)
	for i := range y {
		y[i] = src.Normal(mean, sd)
	}

	return y
}

// weakGaussian puts precision n0/σ² = 0.2/4 on μ, which matches the conjugate
// prior with n0 = 0.2 for data of variance near 4.
var weakGaussian = gibbs.GaussianPrior{Mu0: 0, Precision: 0.05, Nu0: 5, Lambda0: 7}

func TestGaussian_MatchesConjugate(t *testing.T) {
	t.Parallel()
	y := normalData(50, 1, 2)
	g, err := gibbs.NewGaussian(y, weakGaussian)
	require.NoError(t, err)

	c, err := g.Run(context.Background(), rng.New(123))
	require.NoError(t, err)
	require.True(t, c.Frozen())
	require.Equal(t, gibbs.DefaultIterations, c.Len())
	require.Equal(t, gibbs.DefaultBurnIn, c.BurnIn())

	post, _, err := conjugate.NormalInverseGamma(y, conjugate.NormalInverseGammaPrior{Mu0: 0, N0: 0.2, Nu0: 5, Lambda0: 7})
	require.NoError(t, err)

	mu, err := c.ColumnByName("mu", true)
	require.NoError(t, err)
	sigma2, err := c.ColumnByName("sigma2", true)
	require.NoError(t, err)
	assert.InDelta(t, post.Mu, stat.Mean(mu, nil), 0.01)
	wantSigma2 := post.Lambda / (post.Nu - 2)
	assert.InEpsilon(t, wantSigma2, stat.Mean(sigma2, nil), 0.1)
	assert.InEpsilon(t, post.Scale()*math.Sqrt(post.Nu/(post.Nu-2)), stat.StdDev(mu, nil), 0.1)
}

func TestGaussian_Deterministic(t *testing.T) {
	t.Parallel()
	g, err := gibbs.NewGaussian(normalData(20, 0, 1), weakGaussian, gibbs.WithIterations(300), gibbs.WithBurnIn(50))
	require.NoError(t, err)
	a, err := g.Run(context.Background(), rng.New(9))
	require.NoError(t, err)
	b, err := g.Run(context.Background(), rng.New(9))
	require.NoError(t, err)
	assert.Equal(t, a.Column(0, false), b.Column(0, false))
	assert.Equal(t, a.Column(1, false), b.Column(1, false))

	other, err := g.Run(context.Background(), rng.New(10))
	require.NoError(t, err)
	assert.NotEqual(t, a.Column(0, false), other.Column(0, false))
}

func TestGaussian_ConstantData(t *testing.T) {
	t.Parallel()
	g, err := gibbs.NewGaussian([]float64{3, 3, 3, 3}, weakGaussian, gibbs.WithIterations(200), gibbs.WithBurnIn(0))
	require.NoError(t, err)
	c, err := g.Run(context.Background(), rng.New(1))
	require.NoError(t, err)
	for _, v := range c.Column(1, false) {
		require.Greater(t, v, 0.0)
	}
}

func TestNewGaussian_Invalid(t *testing.T) {
	t.Parallel()
	y := []float64{1, 2, 3}
	for name, tc := range map[string]struct {
		y     []float64
		prior gibbs.GaussianPrior
		opts  []gibbs.Option
	}{
		"empty data":      {nil, weakGaussian, nil},
		"nan data":        {[]float64{1, math.NaN()}, weakGaussian, nil},
		"zero precision":  {y, gibbs.GaussianPrior{Precision: 0, Nu0: 1, Lambda0: 1}, nil},
		"negative nu0":    {y, gibbs.GaussianPrior{Precision: 1, Nu0: -1, Lambda0: 1}, nil},
		"infinite mu0":    {y, gibbs.GaussianPrior{Mu0: math.Inf(1), Precision: 1, Nu0: 1, Lambda0: 1}, nil},
		"burn-in too big": {y, weakGaussian, []gibbs.Option{gibbs.WithIterations(10)}},
		"no iterations":   {y, weakGaussian, []gibbs.Option{gibbs.WithIterations(0), gibbs.WithBurnIn(0)}},
		"negative burnin": {y, weakGaussian, []gibbs.Option{gibbs.WithBurnIn(-1)}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := gibbs.NewGaussian(tc.y, tc.prior, tc.opts...)
			assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
		})
	}
}

// cancellingSampler cancels its context on the n-th Normal draw.
type cancellingSampler struct {
	*rng.Source
	cancel context.CancelFunc
	calls  int
	n      int
}

func (s *cancellingSampler) Normal(mean, sd float64) float64 {
	s.calls++
	if s.calls == s.n {
		s.cancel()
	}

	return s.Source.Normal(mean, sd)
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()
	g, err := gibbs.NewGaussian(normalData(10, 0, 1), weakGaussian, gibbs.WithIterations(100), gibbs.WithBurnIn(5))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c, err := g.Run(ctx, &cancellingSampler{Source: rng.New(3), cancel: cancel, n: 10})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, c)
	assert.True(t, c.Frozen())
	assert.Equal(t, 10, c.Len())
	assert.Equal(t, 5, c.BurnIn())

	done, stop := context.WithCancel(context.Background())
	stop()
	c, err = g.Run(done, rng.New(3))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.BurnIn())
}

func TestRunChains(t *testing.T) {
	t.Parallel()
	g, err := gibbs.NewGaussian(normalData(30, 2, 1), weakGaussian, gibbs.WithIterations(400), gibbs.WithBurnIn(100))
	require.NoError(t, err)

	chains, err := gibbs.RunChains(context.Background(), g, 3, 7)
	require.NoError(t, err)
	require.Len(t, chains, 3)
	for i, c := range chains {
		single, err := g.Run(context.Background(), rng.New(7+uint64(i)))
		require.NoError(t, err)
		assert.Equal(t, single.Column(0, false), c.Column(0, false), "chain %d", i)
		assert.Equal(t, 100, c.BurnIn())
	}

	_, err = gibbs.RunChains(context.Background(), g, 0, 7)
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
}

// failingSampler rejects every multivariate draw.
type failingSampler struct{ *rng.Source }

var errDraw = errors.New("draw failed")

func (failingSampler) MultivariateNormalPrecision(*matrix.Dense, []float64) ([]float64, error) {
	return nil, errDraw
}

func TestRegression_SamplerError(t *testing.T) {
	t.Parallel()
	y, x := lineData(t, 20)
	r, err := gibbs.NewRegression(y, x, weakRegression(t), gibbs.WithIterations(50), gibbs.WithBurnIn(10))
	require.NoError(t, err)

	c, err := r.Run(context.Background(), failingSampler{rng.New(1)})
	require.ErrorIs(t, err, errDraw)
	assert.True(t, c.Frozen())
	assert.Equal(t, 0, c.Len())
}
