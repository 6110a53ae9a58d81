package diagnostics

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/chain"
	"github.com/katalvlaran/lvbayes/summary"
)

const opSummarize = "diagnostics.Summarize"

// Summarize builds a summary.Table from the post-burn-in draws of c.
//
// Implementation:
//   - Stage 1: resolve burn-in (option, else c.BurnIn()) and validate mass,
//     batch count and the resulting draw count.
//   - Stage 2: per column, moments and intervals over all m draws, then MCSE
//     and R-hat over the last m − (m mod B) draws.
//   - Stage 3: attach TruncatedBatches and HighRHat warnings.
//
// Errors:
//   - bayeserr.ErrInvalidParameter for a nil or empty chain, burn-in outside
//     [0, Len), mass ∉ (0,1), B < 1 or batches shorter than 2 draws.
func Summarize(c *chain.Chain, opts ...Option) (*summary.Table, error) {
	o := newOptions(opts)
	if c == nil || c.Len() == 0 {
		return nil, bayeserr.Wrap(opSummarize, bayeserr.Invalidf("empty chain"))
	}
	burnIn := c.BurnIn()
	if o.HasBurnIn {
		burnIn = o.BurnIn
	}
	if burnIn < 0 || burnIn >= c.Len() {
		return nil, bayeserr.Wrap(opSummarize, bayeserr.Invalidf("burn-in %d outside [0, %d)", burnIn, c.Len()))
	}
	if !(o.Mass > 0 && o.Mass < 1) {
		return nil, bayeserr.Wrap(opSummarize, bayeserr.Invalidf("mass must be in (0,1), got %g", o.Mass))
	}
	m := c.Len() - burnIn
	if err := checkBatches(m, o.Batches); err != nil {
		return nil, bayeserr.Wrap(opSummarize, err)
	}

	tb := summary.NewTable()
	if drop := m % o.Batches; drop > 0 {
		msg := fmt.Sprintf("%d draws not divisible into %d batches; first %d left out of MCSE and R-hat", m, o.Batches, drop)
		tb.Warn(bayeserr.Warning{Kind: bayeserr.TruncatedBatches, Value: float64(drop), Message: msg})
		o.Logger.Warn("truncated batches", zap.Int("draws", m), zap.Int("batches", o.Batches), zap.Int("dropped", drop))
	}

	lo, hi := 0.5*(1-o.Mass), 0.5*(1+o.Mass)
	for j, name := range c.Names() {
		x := c.Column(j, false)[burnIn:]
		s, err := columnStatistics(x, o, lo, hi)
		if err != nil {
			return nil, bayeserr.Wrap(opSummarize, err)
		}
		if s.RHat > o.RHatThreshold {
			tb.Warn(bayeserr.Warning{
				Kind:    bayeserr.HighRHat,
				Param:   name,
				Value:   s.RHat,
				Message: fmt.Sprintf("R-hat %.4f exceeds %.4g", s.RHat, o.RHatThreshold),
			})
			o.Logger.Warn("high R-hat", zap.String("param", name), zap.Float64("rhat", s.RHat), zap.Float64("threshold", o.RHatThreshold))
		}
		if err = tb.Add(name, s); err != nil {
			return nil, bayeserr.Wrap(opSummarize, err)
		}
	}

	return tb, nil
}

func columnStatistics(x []float64, o Options, lo, hi float64) (summary.Statistics, error) {
	sorted := sortedCopy(x)
	mcse, err := BatchMeansMCSE(x, o.Batches)
	if err != nil {
		return summary.Statistics{}, err
	}
	rhat, err := RHat(x, o.Batches)
	if err != nil {
		return summary.Statistics{}, err
	}

	return summary.Statistics{
		Mean:   stat.Mean(x, nil),
		Median: percentileSorted(sorted, 0.5),
		Mode:   math.NaN(),
		StdDev: stat.PopStdDev(x, nil),
		CI: summary.Interval{
			Lower:  percentileSorted(sorted, lo),
			Upper:  percentileSorted(sorted, hi),
			Mass:   o.Mass,
			Method: summary.EqualTailed,
		},
		HPD:  sampleHPDSorted(sorted, o.Mass),
		MCSE: mcse,
		RHat: rhat,
	}, nil
}
