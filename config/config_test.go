package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

const gibbsTOML = `
model = "regression"
method = "gibbs"

[data]
path = "obs.csv"
response = "y"
predictors = ["x1", "x2"]

[prior]
nu0 = 3.0
lambda0 = 2.5
b0 = [0.0, 1.0, 0.0]

[sampling]
iterations = 5000
burn_in = 500
chains = 4
seed = 7
`

func TestLoad_TOML(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load(writeFile(t, "run.toml", gibbsTOML))
	require.NoError(t, err)

	assert.Equal(t, config.ModelRegression, cfg.Model)
	assert.Equal(t, config.MethodGibbs, cfg.Method)
	assert.Equal(t, "obs.csv", cfg.Data.Path)
	assert.Equal(t, []string{"x1", "x2"}, cfg.Data.Predictors)
	assert.True(t, cfg.Data.Intercept, "intercept defaults to true")
	assert.Equal(t, 3.0, cfg.Prior.Nu0)
	assert.Equal(t, 2.5, cfg.Prior.Lambda0)
	assert.Equal(t, 5000, cfg.Sampling.Iterations)
	assert.Equal(t, 500, cfg.Sampling.BurnIn)
	assert.Equal(t, 4, cfg.Sampling.Chains)
	assert.Equal(t, uint64(7), cfg.Sampling.Seed)
	// untouched keys keep their defaults
	assert.Equal(t, 0.95, cfg.Sampling.Prob)
	assert.Equal(t, 4, cfg.Sampling.Batches)
	assert.Equal(t, 1.05, cfg.Sampling.RHatThreshold)

	prior, err := cfg.Prior.RegressionGibbs(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, prior.B0)
	assert.Equal(t, []float64{config.DefaultA0, config.DefaultA0, config.DefaultA0}, prior.A0.Diag())
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()
	body := `
model: poisson
data:
  path: counts.csv
  response: count
prior:
  shape: 2
  rate: 0.5
sampling:
  prob: 0.9
`
	for _, name := range []string{"run.yaml", "run.YML"} {
		cfg, err := config.Load(writeFile(t, name, body))
		require.NoError(t, err, name)
		assert.Equal(t, config.ModelPoisson, cfg.Model)
		assert.Equal(t, config.MethodConjugate, cfg.Method)
		assert.Equal(t, 0.9, cfg.Sampling.Prob)
		assert.Equal(t, 22000, cfg.Sampling.Iterations)
		assert.Equal(t, 2000, cfg.Sampling.BurnIn)
		assert.Equal(t, uint64(123), cfg.Sampling.Seed)
		assert.Equal(t, 1, cfg.Sampling.Chains)
		g := cfg.Prior.Gamma()
		assert.Equal(t, 2.0, g.Shape)
		assert.Equal(t, 0.5, g.Rate)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()
	_, err := config.Load(writeFile(t, "run.json", `{}`))
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "bad.toml", "model = "))
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)

	_, err = config.Load(writeFile(t, "typo.toml", "model = \"poisson\"\n[sampling]\niteratons = 10\n"))
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)

	_, err = config.Load(writeFile(t, "typo.yaml", "model: poisson\nsampling:\n  iteratons: 10\n"))
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)

	_, err = config.Load(writeFile(t, "empty.yaml", ""))
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter, "model is required")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	base := config.Default()
	base.Model = config.ModelGaussian
	require.NoError(t, base.Validate())

	for name, mutate := range map[string]func(*config.RunConfig){
		"unknown model":     func(c *config.RunConfig) { c.Model = "weibull" },
		"unknown method":    func(c *config.RunConfig) { c.Method = "nuts" },
		"gibbs bernoulli":   func(c *config.RunConfig) { c.Model, c.Method = config.ModelBernoulli, config.MethodGibbs },
		"prob one":          func(c *config.RunConfig) { c.Sampling.Prob = 1 },
		"no iterations":     func(c *config.RunConfig) { c.Sampling.Iterations = 0 },
		"burn-in too big":   func(c *config.RunConfig) { c.Sampling.BurnIn = c.Sampling.Iterations },
		"zero batches":      func(c *config.RunConfig) { c.Sampling.Batches = 0 },
		"zero chains":       func(c *config.RunConfig) { c.Sampling.Chains = 0 },
		"low rhat":          func(c *config.RunConfig) { c.Sampling.RHatThreshold = 0.9 },
		"zero n0":           func(c *config.RunConfig) { c.Prior.N0 = 0 },
		"zero tau0 (gibbs)": func(c *config.RunConfig) { c.Method, c.Prior.Tau0 = config.MethodGibbs, 0 },
		"empty design": func(c *config.RunConfig) {
			c.Model, c.Data.Intercept, c.Data.Predictors = config.ModelRegression, false, nil
		},
		"negative a0": func(c *config.RunConfig) {
			c.Model, c.Prior.A0 = config.ModelRegression, []float64{1, -1}
		},
	} {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Model = config.ModelGaussian
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), bayeserr.ErrInvalidParameter)
		})
	}
}

func TestPriorBuilders(t *testing.T) {
	t.Parallel()
	p := config.Default().Prior
	assert.Equal(t, 1.0, p.Beta().A)
	nig := p.NormalInverseGamma()
	assert.Equal(t, 0.2, nig.N0)
	assert.NoError(t, nig.Validate())
	gg := p.GaussianGibbs()
	assert.Equal(t, 1.0, gg.Precision)
	assert.NoError(t, gg.Validate())
	p.Tau0 = 2
	assert.Equal(t, 0.25, p.GaussianGibbs().Precision, "tau0 is a standard deviation")
	p.Tau0 = 1

	r, err := p.Regression(2)
	require.NoError(t, err)
	assert.NoError(t, r.Validate(2))

	p.B0 = []float64{1}
	_, err = p.Regression(2)
	assert.ErrorIs(t, err, bayeserr.ErrInvalidParameter)
}
