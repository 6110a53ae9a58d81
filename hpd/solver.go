package hpd

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/density"
	"github.com/katalvlaran/lvbayes/summary"
)

const opSolve = "hpd.Solve"

// Target is what the solver needs from a density.
// *density.Density satisfies it.
type Target interface {
	PDF(x float64) float64
	LogPDF(x float64) float64
	LogPDFDeriv(x float64) float64
	CDF(x float64) float64
	Quantile(p float64) float64
	Support() (lo, hi float64)
	Anchor() (density.Anchor, bool)
	Mode() float64
}

var _ Target = (*density.Density)(nil)

// Solve returns the HPD interval of mass p for d.
//
// Errors:
//   - bayeserr.ErrInvalidParameter: nil target, p ∉ (0,1), a non-unimodal density,
//     or an initial guess that is not ordered inside the support.
//   - *bayeserr.ConvergenceError: the Newton budget ran out.
func Solve(d Target, p float64, opts ...Option) (summary.Interval, error) {
	if d == nil {
		return summary.Interval{}, bayeserr.Wrap(opSolve, bayeserr.Invalidf("nil density"))
	}
	if !(p > 0 && p < 1) {
		return summary.Interval{}, bayeserr.Wrap(opSolve, bayeserr.Invalidf("mass must be in (0,1), got %g", p))
	}
	o := newOptions(opts)
	sLo, sHi := d.Support()

	anchor, ok := d.Anchor()
	if !ok {
		return summary.Interval{}, bayeserr.Wrap(opSolve, bayeserr.Invalidf("density is not unimodal"))
	}
	switch anchor {
	case density.AtLower:
		return summary.Interval{Lower: sLo, Upper: d.Quantile(p), Mass: p, Method: summary.HPD}, nil
	case density.AtUpper:
		return summary.Interval{Lower: d.Quantile(1 - p), Upper: sHi, Mass: p, Method: summary.HPD}, nil
	}

	lo, hi := d.Quantile(0.5*(1-p)), d.Quantile(0.5*(1+p))
	if m := d.Mode(); !o.HasInitial && (m < lo || m > hi) {
		return bisectTailMass(d, p, o)
	}
	if o.HasInitial {
		lo, hi = o.Initial[0], o.Initial[1]
		if !inside(lo, hi, sLo, sHi) {
			return summary.Interval{}, bayeserr.Wrap(opSolve,
				bayeserr.Invalidf("initial interval [%g, %g] not ordered inside the support", lo, hi))
		}
	}

	f1, f2 := residuals(d, lo, hi, p)
	merit := f1*f1 + f2*f2
	var iter int
	for iter = 0; iter < o.MaxIter; iter++ {
		if math.Max(math.Abs(f1), math.Abs(f2)) <= o.Tolerance {
			o.Logger.Debug("hpd converged",
				zap.Int("iterations", iter), zap.Float64("lower", lo), zap.Float64("upper", hi))

			return summary.Interval{Lower: lo, Upper: hi, Mass: p, Method: summary.HPD}, nil
		}

		dLo, dHi, ok := newtonStep(d, lo, hi, f1, f2)
		if !ok {
			break
		}

		// Backtrack until the iterate is admissible and the merit decreases.
		accepted := false
		t := 1.0
		for h := 0; h < maxHalvings; h++ {
			nLo, nHi := lo+t*dLo, hi+t*dHi
			if inside(nLo, nHi, sLo, sHi) {
				g1, g2 := residuals(d, nLo, nHi, p)
				if m := g1*g1 + g2*g2; m < merit {
					lo, hi, f1, f2, merit = nLo, nHi, g1, g2, m
					accepted = true
					break
				}
			}
			t *= 0.5
		}
		if !accepted {
			break
		}
	}

	// Final iterate may have converged on the last step.
	if math.Max(math.Abs(f1), math.Abs(f2)) <= o.Tolerance {
		return summary.Interval{Lower: lo, Upper: hi, Mass: p, Method: summary.HPD}, nil
	}

	return summary.Interval{}, &bayeserr.ConvergenceError{
		Op:         opSolve,
		Iterations: iter,
		Residual:   math.Sqrt(merit),
	}
}

// SolveOrEqualTailed runs Solve and, on a convergence failure only, returns the
// equal-tailed interval with fellBack=true. Invalid input is still an error.
func SolveOrEqualTailed(d Target, p float64, opts ...Option) (iv summary.Interval, fellBack bool, err error) {
	iv, err = Solve(d, p, opts...)
	if err == nil {
		return iv, false, nil
	}
	var ce *bayeserr.ConvergenceError
	if !errors.As(err, &ce) {
		return summary.Interval{}, false, err
	}
	o := newOptions(opts)
	o.Logger.Warn("hpd solver failed, using equal-tailed interval",
		zap.Int("iterations", ce.Iterations), zap.Float64("residual", ce.Residual))
	iv = summary.Interval{
		Lower:  d.Quantile(0.5 * (1 - p)),
		Upper:  d.Quantile(0.5 * (1 + p)),
		Mass:   p,
		Method: summary.EqualTailed,
	}

	return iv, true, nil
}

// bisectTailMass searches the lower tail mass u ∈ (0, 1−p) at which [Q(u), Q(u+p)]
// has equal density at both ends. Solve uses it when the mode lies outside the
// equal-tailed interval: the density is then nearly monotone and Newton steps run
// into the support bound. g(u) = log f(Q(u+p)) − log f(Q(u)) decreases through
// its single root for a unimodal density. The iteration budget is MaxIter.
func bisectTailMass(d Target, p float64, o Options) (summary.Interval, error) {
	uLo, uHi := 0.0, 1-p
	g := math.NaN()
	var iter int
	for iter = 0; iter < o.MaxIter; iter++ {
		u := 0.5 * (uLo + uHi)
		lo, hi := d.Quantile(u), d.Quantile(u+p)
		g = d.LogPDF(hi) - d.LogPDF(lo)
		if math.IsNaN(g) {
			break
		}
		// A root closer to the bound than tailMassResolution is not representable
		// through the quantile function; the bracket itself is the answer.
		if math.Abs(g) <= o.Tolerance || uHi-uLo <= tailMassResolution {
			o.Logger.Debug("hpd bisection converged",
				zap.Int("iterations", iter), zap.Float64("lower", lo), zap.Float64("upper", hi))

			return summary.Interval{Lower: lo, Upper: hi, Mass: p, Method: summary.HPD}, nil
		}
		if g > 0 {
			uLo = u
		} else {
			uHi = u
		}
	}

	return summary.Interval{}, &bayeserr.ConvergenceError{
		Op:         opSolve,
		Iterations: iter,
		Residual:   math.Abs(g),
	}
}

// residuals returns (F(hi) − F(lo) − p, log f(hi) − log f(lo)).
func residuals(d Target, lo, hi, p float64) (f1, f2 float64) {
	return d.CDF(hi) - d.CDF(lo) - p, d.LogPDF(hi) - d.LogPDF(lo)
}

// newtonStep solves J·δ = −F by Cramer's rule.
func newtonStep(d Target, lo, hi, f1, f2 float64) (dLo, dHi float64, ok bool) {
	a, b := -d.PDF(lo), d.PDF(hi)
	c, e := -d.LogPDFDeriv(lo), d.LogPDFDeriv(hi)
	det := a*e - b*c
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return 0, 0, false
	}
	r1, r2 := -f1, -f2
	dLo = (r1*e - b*r2) / det
	dHi = (a*r2 - c*r1) / det

	return dLo, dHi, !(math.IsNaN(dLo) || math.IsNaN(dHi))
}

// inside reports sLo < lo < hi < sHi.
func inside(lo, hi, sLo, sHi float64) bool {
	return lo > sLo && hi < sHi && lo < hi
}
