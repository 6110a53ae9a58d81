package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/chain"
	"github.com/katalvlaran/lvbayes/config"
	"github.com/katalvlaran/lvbayes/conjugate"
	"github.com/katalvlaran/lvbayes/dataset"
	"github.com/katalvlaran/lvbayes/diagnostics"
	"github.com/katalvlaran/lvbayes/gibbs"
	"github.com/katalvlaran/lvbayes/matrix"
	"github.com/katalvlaran/lvbayes/summary"
)

// runFlags are shared by the conjugate and gibbs subcommands.
type runFlags struct {
	configPath string
	dataPath   string
}

// loadRun reads the configuration, forces the method and resolves the data path.
func loadRun(f runFlags, method string) (config.RunConfig, error) {
	if f.configPath == "" {
		return config.RunConfig{}, bayeserr.Invalidf("--config is required")
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.RunConfig{}, err
	}
	cfg.Method = method
	if f.dataPath != "" {
		cfg.Data.Path = f.dataPath
	}
	if cfg.Data.Path == "" {
		return config.RunConfig{}, bayeserr.Invalidf("no data file: set data.path or --data")
	}
	if cfg.Data.Response == "" {
		return config.RunConfig{}, bayeserr.Invalidf("no response column: set data.response")
	}

	return cfg, cfg.Validate()
}

// observations holds the response and, for regression, the design.
type observations struct {
	y     []float64
	x     *matrix.Dense
	names []string
}

func loadObservations(cfg config.RunConfig) (observations, error) {
	frame, err := dataset.Load(cfg.Data.Path)
	if err != nil {
		return observations{}, err
	}
	y, err := frame.Column(cfg.Data.Response)
	if err != nil {
		return observations{}, err
	}
	obs := observations{y: y}
	if cfg.Model != config.ModelRegression {
		return obs, nil
	}
	obs.x, err = frame.Design(cfg.Data.Predictors, cfg.Data.Intercept)
	if err != nil {
		return observations{}, err
	}
	obs.names = dataset.DesignNames(cfg.Data.Predictors, cfg.Data.Intercept)

	return obs, nil
}

func runConjugate(cfg config.RunConfig, obs observations, log *zap.Logger) (*summary.Table, error) {
	opts := []conjugate.Option{conjugate.WithMass(cfg.Sampling.Prob), conjugate.WithLogger(log)}
	var (
		tb  *summary.Table
		err error
	)
	switch cfg.Model {
	case config.ModelBernoulli:
		_, tb, err = conjugate.BernoulliBeta(obs.y, cfg.Prior.Beta(), opts...)
	case config.ModelPoisson:
		_, tb, err = conjugate.PoissonGamma(obs.y, cfg.Prior.Gamma(), opts...)
	case config.ModelGaussian:
		_, tb, err = conjugate.NormalInverseGamma(obs.y, cfg.Prior.NormalInverseGamma(), opts...)
	case config.ModelRegression:
		prior, perr := cfg.Prior.Regression(len(obs.names))
		if perr != nil {
			return nil, perr
		}
		opts = append(opts, conjugate.WithCoefficientNames(obs.names...))
		_, tb, err = conjugate.Regression(obs.y, obs.x, prior, opts...)
	default:
		err = bayeserr.Invalidf("no conjugate update for model %q", cfg.Model)
	}

	return tb, err
}

func gibbsModel(cfg config.RunConfig, obs observations, log *zap.Logger) (gibbs.Model, error) {
	opts := []gibbs.Option{
		gibbs.WithIterations(cfg.Sampling.Iterations),
		gibbs.WithBurnIn(cfg.Sampling.BurnIn),
		gibbs.WithLogger(log),
	}
	switch cfg.Model {
	case config.ModelGaussian:
		return gibbs.NewGaussian(obs.y, cfg.Prior.GaussianGibbs(), opts...)
	case config.ModelRegression:
		prior, err := cfg.Prior.RegressionGibbs(len(obs.names))
		if err != nil {
			return nil, err
		}
		opts = append(opts, gibbs.WithCoefficientNames(obs.names...))
		return gibbs.NewRegression(obs.y, obs.x, prior, opts...)
	default:
		return nil, bayeserr.Invalidf("no Gibbs sampler for model %q", cfg.Model)
	}
}

// runGibbs samples cfg.Sampling.Chains chains and summarizes their pooled
// post-burn-in draws. With several chains, a between-chain R-hat above the
// threshold adds a HighRHat warning.
func runGibbs(ctx context.Context, cfg config.RunConfig, obs observations, log *zap.Logger, chainOut string) (*summary.Table, error) {
	model, err := gibbsModel(cfg, obs, log)
	if err != nil {
		return nil, err
	}
	chains, err := gibbs.RunChains(ctx, model, cfg.Sampling.Chains, cfg.Sampling.Seed)
	if err != nil {
		return nil, err
	}
	pooled, err := pool(chains)
	if err != nil {
		return nil, err
	}
	if chainOut != "" {
		if err = writeChain(chainOut, pooled); err != nil {
			return nil, err
		}
	}

	tb, err := diagnostics.Summarize(pooled,
		diagnostics.WithBurnIn(0),
		diagnostics.WithMass(cfg.Sampling.Prob),
		diagnostics.WithBatches(cfg.Sampling.Batches),
		diagnostics.WithRHatThreshold(cfg.Sampling.RHatThreshold),
		diagnostics.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	if len(chains) > 1 {
		if err = warnAcrossChains(tb, chains, cfg.Sampling.RHatThreshold, log); err != nil {
			return nil, err
		}
	}

	return tb, nil
}

// pool concatenates the post-burn-in draws of every chain.
func pool(chains []*chain.Chain) (*chain.Chain, error) {
	names := chains[0].Names()
	cols := make([][]float64, len(names))
	for _, c := range chains {
		for j, col := range c.PostBurnIn() {
			cols[j] = append(cols[j], col...)
		}
	}

	return chain.FromColumns(names, cols)
}

func warnAcrossChains(tb *summary.Table, chains []*chain.Chain, threshold float64, log *zap.Logger) error {
	for j, name := range chains[0].Names() {
		cols := make([][]float64, len(chains))
		for i, c := range chains {
			cols[i] = c.Column(j, true)
		}
		r, err := diagnostics.RHatChains(cols)
		if err != nil {
			return err
		}
		if r > threshold {
			tb.Warn(bayeserr.Warning{
				Kind:    bayeserr.HighRHat,
				Param:   name,
				Value:   r,
				Message: fmt.Sprintf("R-hat %.4f across %d chains exceeds %.4g", r, len(chains), threshold),
			})
			log.Warn("high R-hat across chains", zap.String("param", name), zap.Float64("rhat", r))
		}
	}

	return nil
}

func writeChain(path string, c *chain.Chain) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return c.WriteCSV(f, false)
}
