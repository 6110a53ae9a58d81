package gibbs

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/chain"
	"github.com/katalvlaran/lvbayes/matrix"
	"github.com/katalvlaran/lvbayes/rng"
)

// Sampler is the randomness a Gibbs sweep consumes.
type Sampler interface {
	Normal(mean, sd float64) float64
	InverseGamma(shape, scale float64) float64
	MultivariateNormalPrecision(prec *matrix.Dense, h []float64) ([]float64, error)
}

var _ Sampler = (*rng.Source)(nil)

// Model is a configured sampler ready to run.
type Model interface {
	// Names returns the chain columns in row order.
	Names() []string
	// Run draws one chain. Implementations must be safe for concurrent calls
	// with distinct Samplers.
	Run(ctx context.Context, src Sampler) (*chain.Chain, error)
}

// stepFunc performs one full sweep and writes the new state into row.
type stepFunc func(row []float64) error

// sample drives step for o.Iterations sweeps, checking ctx between sweeps.
// The returned chain is always frozen; it is partial when err != nil.
func sample(ctx context.Context, model string, names []string, o Options, step stepFunc) (*chain.Chain, error) {
	c, err := chain.New(names, o.Iterations)
	if err != nil {
		return nil, err
	}
	log := o.Logger.With(zap.String("model", model))
	log.Debug("gibbs start", zap.Int("iterations", o.Iterations), zap.Int("burn_in", o.BurnIn))

	row := make([]float64, len(names))
	for it := 0; it < o.Iterations; it++ {
		select {
		case <-ctx.Done():
			finish(c, o.BurnIn)
			log.Debug("gibbs cancelled", zap.Int("rows", c.Len()))
			return c, ctx.Err()
		default:
		}
		if err = step(row); err != nil {
			finish(c, o.BurnIn)
			return c, err
		}
		if err = c.Append(row...); err != nil {
			finish(c, o.BurnIn)
			return c, err
		}
	}
	finish(c, o.BurnIn)
	log.Debug("gibbs finish", zap.Int("rows", c.Len()))

	return c, nil
}

// finish freezes c and marks burn-in when enough rows exist.
func finish(c *chain.Chain, burnIn int) {
	c.Freeze()
	if c.Len() > burnIn {
		_ = c.SetBurnIn(burnIn)
	}
}
