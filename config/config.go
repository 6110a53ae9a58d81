package config

import (
	"slices"

	"github.com/katalvlaran/lvbayes/bayeserr"
)

// Model families.
const (
	ModelBernoulli  = "bernoulli"
	ModelPoisson    = "poisson"
	ModelGaussian   = "gaussian"
	ModelRegression = "regression"
)

// Inference methods.
const (
	MethodConjugate = "conjugate"
	MethodGibbs     = "gibbs"
)

// RunConfig is one inference run.
type RunConfig struct {
	Model    string         `toml:"model" yaml:"model"`
	Method   string         `toml:"method" yaml:"method"`
	Data     DataConfig     `toml:"data" yaml:"data"`
	Prior    PriorConfig    `toml:"prior" yaml:"prior"`
	Sampling SamplingConfig `toml:"sampling" yaml:"sampling"`
}

// DataConfig selects the observations from a CSV file.
type DataConfig struct {
	Path       string   `toml:"path" yaml:"path"`
	Response   string   `toml:"response" yaml:"response"`
	Predictors []string `toml:"predictors" yaml:"predictors"`
	// Intercept prepends a column of ones to the regression design.
	Intercept bool `toml:"intercept" yaml:"intercept"`
}

// PriorConfig holds the hyperparameters of every family; each model reads
// only its own fields.
type PriorConfig struct {
	A       float64   `toml:"a" yaml:"a"`             // Beta
	B       float64   `toml:"b" yaml:"b"`             // Beta
	Shape   float64   `toml:"shape" yaml:"shape"`     // Gamma
	Rate    float64   `toml:"rate" yaml:"rate"`       // Gamma
	Mu0     float64   `toml:"mu0" yaml:"mu0"`         // Gaussian
	N0      float64   `toml:"n0" yaml:"n0"`           // Gaussian, conjugate
	Tau0    float64   `toml:"tau0" yaml:"tau0"`       // Gaussian, Gibbs; prior sd of μ
	Nu0     float64   `toml:"nu0" yaml:"nu0"`         // Gaussian, regression
	Lambda0 float64   `toml:"lambda0" yaml:"lambda0"` // Gaussian, regression
	B0      []float64 `toml:"b0" yaml:"b0"`           // regression; empty means zeros
	A0      []float64 `toml:"a0" yaml:"a0"`           // regression precision diagonal; empty means 0.2
}

// SamplingConfig controls intervals, the sampler and the diagnostics.
type SamplingConfig struct {
	Prob          float64 `toml:"prob" yaml:"prob"`
	Iterations    int     `toml:"iterations" yaml:"iterations"`
	BurnIn        int     `toml:"burn_in" yaml:"burn_in"`
	Batches       int     `toml:"batches" yaml:"batches"`
	Chains        int     `toml:"chains" yaml:"chains"`
	Seed          uint64  `toml:"seed" yaml:"seed"`
	RHatThreshold float64 `toml:"rhat_threshold" yaml:"rhat_threshold"`
}

// DefaultA0 is the default diagonal prior precision of regression coefficients.
const DefaultA0 = 0.2

// Default returns a RunConfig with every default filled in. Decoding a file
// on top of it overrides only the keys the file sets.
func Default() RunConfig {
	return RunConfig{
		Method: MethodConjugate,
		Data:   DataConfig{Intercept: true},
		Prior:  PriorConfig{A: 1, B: 1, Shape: 1, Rate: 1, N0: 0.2, Tau0: 1, Nu0: 5, Lambda0: 7},
		Sampling: SamplingConfig{
			Prob:          0.95,
			Iterations:    22000,
			BurnIn:        2000,
			Batches:       4,
			Chains:        1,
			Seed:          123,
			RHatThreshold: 1.05,
		},
	}
}

var (
	models  = []string{ModelBernoulli, ModelPoisson, ModelGaussian, ModelRegression}
	methods = []string{MethodConjugate, MethodGibbs}
)

// Validate checks the combination of model and method, the sampling controls
// and the hyperparameters the chosen model reads. Data.Path is not required:
// the command may supply it.
func (c RunConfig) Validate() error {
	if !slices.Contains(models, c.Model) {
		return bayeserr.Invalidf("config: unknown model %q (want one of %v)", c.Model, models)
	}
	if !slices.Contains(methods, c.Method) {
		return bayeserr.Invalidf("config: unknown method %q (want one of %v)", c.Method, methods)
	}
	if c.Method == MethodGibbs && c.Model != ModelGaussian && c.Model != ModelRegression {
		return bayeserr.Invalidf("config: gibbs sampling supports %s and %s, not %s", ModelGaussian, ModelRegression, c.Model)
	}
	if c.Model == ModelRegression && len(c.Data.Predictors) == 0 && !c.Data.Intercept {
		return bayeserr.Invalidf("config: regression needs predictors or an intercept")
	}
	if err := c.Sampling.validate(); err != nil {
		return err
	}

	return c.Prior.validate(c.Model, c.Method)
}

func (s SamplingConfig) validate() error {
	switch {
	case !(s.Prob > 0 && s.Prob < 1):
		return bayeserr.Invalidf("config: prob must be in (0,1), got %g", s.Prob)
	case s.Iterations < 1:
		return bayeserr.Invalidf("config: iterations must be ≥ 1, got %d", s.Iterations)
	case s.BurnIn < 0 || s.BurnIn >= s.Iterations:
		return bayeserr.Invalidf("config: burn_in %d outside [0, %d)", s.BurnIn, s.Iterations)
	case s.Batches < 1:
		return bayeserr.Invalidf("config: batches must be ≥ 1, got %d", s.Batches)
	case s.Chains < 1:
		return bayeserr.Invalidf("config: chains must be ≥ 1, got %d", s.Chains)
	case !(s.RHatThreshold >= 1):
		return bayeserr.Invalidf("config: rhat_threshold must be ≥ 1, got %g", s.RHatThreshold)
	}

	return nil
}

type hyper struct {
	name string
	v    float64
}

func (p PriorConfig) validate(model, method string) error {
	var need []hyper
	switch model {
	case ModelBernoulli:
		need = []hyper{{"a", p.A}, {"b", p.B}}
	case ModelPoisson:
		need = []hyper{{"shape", p.Shape}, {"rate", p.Rate}}
	case ModelGaussian:
		need = []hyper{{"nu0", p.Nu0}, {"lambda0", p.Lambda0}, {"n0", p.N0}}
		if method == MethodGibbs {
			need[2] = hyper{"tau0", p.Tau0}
		}
	case ModelRegression:
		need = []hyper{{"nu0", p.Nu0}, {"lambda0", p.Lambda0}}
		for _, a := range p.A0 {
			need = append(need, hyper{"a0", a})
		}
	}
	for _, h := range need {
		if !(h.v > 0) {
			return bayeserr.Invalidf("config: prior %s must be > 0, got %g", h.name, h.v)
		}
	}

	return nil
}
