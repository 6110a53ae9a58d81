package gibbs

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/chain"
	"github.com/katalvlaran/lvbayes/rng"
)

// RunChains runs n independent chains of m in parallel. Chain i draws from
// rng.New(seed + i), so the result does not depend on scheduling.
//
// The first failing chain cancels the others. Chains are returned in seed
// order; on error, entries may be partial or nil.
func RunChains(ctx context.Context, m Model, n int, seed uint64) ([]*chain.Chain, error) {
	if n < 1 {
		return nil, bayeserr.Invalidf("gibbs.RunChains: chain count must be ≥ 1, got %d", n)
	}
	out := make([]*chain.Chain, n)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			c, err := m.Run(gctx, rng.New(seed+uint64(i)))
			out[i] = c

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	return out, nil
}
