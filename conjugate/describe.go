package conjugate

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/density"
	"github.com/katalvlaran/lvbayes/hpd"
	"github.com/katalvlaran/lvbayes/summary"
)

// describe appends the closed-form row for one marginal posterior.
func describe(tb *summary.Table, name string, d *density.Density, o Options) error {
	ci, err := d.EqualTailed(o.Mass)
	if err != nil {
		return err
	}
	solverOpts := append([]hpd.Option{hpd.WithLogger(o.Logger.With(zap.String("param", name)))}, o.Solver...)
	iv, fellBack, err := hpd.SolveOrEqualTailed(d, o.Mass, solverOpts...)
	if err != nil {
		return err
	}

	s := summary.Statistics{
		Mean:        d.Mean(),
		Median:      d.Median(),
		Mode:        d.Mode(),
		StdDev:      d.StdDev(),
		CI:          ci,
		HPD:         iv,
		MCSE:        math.NaN(),
		RHat:        math.NaN(),
		HPDFallback: fellBack,
	}
	if fellBack {
		tb.Warn(bayeserr.Warning{
			Kind:    bayeserr.HPDFallback,
			Param:   name,
			Message: "HPD solver did not converge; reporting the equal-tailed interval",
		})
	}

	return tb.Add(name, s)
}

// checkMass validates the interval probability once per update.
func checkMass(p float64) error {
	if !(p > 0 && p < 1) {
		return bayeserr.Invalidf("mass must be in (0,1), got %g", p)
	}

	return nil
}

// checkObservations rejects empty or non-finite data.
func checkObservations(y []float64) error {
	if len(y) == 0 {
		return bayeserr.Invalidf("observation set is empty")
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return bayeserr.Invalidf("observation %d is not finite (%g)", i, v)
		}
	}

	return nil
}

func checkPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return bayeserr.Invalidf("%s must be finite and > 0, got %g", name, v)
	}

	return nil
}
