package density

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/summary"
)

// Density is an immutable univariate distribution tagged by Family.
// The zero value is not usable; build one with a New* constructor.
type Density struct {
	family Family
	params [3]float64
	dist   univariate
}

func checkPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return bayeserr.Invalidf("%s must be finite and > 0, got %g", name, v)
	}

	return nil
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return bayeserr.Invalidf("%s must be finite, got %g", name, v)
	}

	return nil
}

// NewBeta returns Beta(a, b).
func NewBeta(a, b float64) (*Density, error) {
	if err := checkPositive("beta: a", a); err != nil {
		return nil, err
	}
	if err := checkPositive("beta: b", b); err != nil {
		return nil, err
	}

	return &Density{family: Beta, params: [3]float64{a, b}, dist: distuv.Beta{Alpha: a, Beta: b}}, nil
}

// NewGamma returns Gamma(shape, rate), mean shape/rate.
func NewGamma(shape, rate float64) (*Density, error) {
	if err := checkPositive("gamma: shape", shape); err != nil {
		return nil, err
	}
	if err := checkPositive("gamma: rate", rate); err != nil {
		return nil, err
	}

	return &Density{family: Gamma, params: [3]float64{shape, rate}, dist: distuv.Gamma{Alpha: shape, Beta: rate}}, nil
}

// NewInverseGamma returns InverseGamma(shape, scale), mode scale/(shape+1).
func NewInverseGamma(shape, scale float64) (*Density, error) {
	if err := checkPositive("inverse-gamma: shape", shape); err != nil {
		return nil, err
	}
	if err := checkPositive("inverse-gamma: scale", scale); err != nil {
		return nil, err
	}

	return &Density{family: InverseGamma, params: [3]float64{shape, scale}, dist: distuv.InverseGamma{Alpha: shape, Beta: scale}}, nil
}

// NewStudentT returns the location-scale Student-t with nu degrees of freedom.
func NewStudentT(nu, loc, scale float64) (*Density, error) {
	if err := checkPositive("student-t: nu", nu); err != nil {
		return nil, err
	}
	if err := checkFinite("student-t: location", loc); err != nil {
		return nil, err
	}
	if err := checkPositive("student-t: scale", scale); err != nil {
		return nil, err
	}

	return &Density{family: StudentT, params: [3]float64{nu, loc, scale}, dist: distuv.StudentsT{Mu: loc, Sigma: scale, Nu: nu}}, nil
}

// NewNormal returns Normal(mean, sd).
func NewNormal(mean, sd float64) (*Density, error) {
	if err := checkFinite("normal: mean", mean); err != nil {
		return nil, err
	}
	if err := checkPositive("normal: sd", sd); err != nil {
		return nil, err
	}

	return &Density{family: Normal, params: [3]float64{mean, sd}, dist: distuv.Normal{Mu: mean, Sigma: sd}}, nil
}

// Family returns the distributional tag.
func (d *Density) Family() Family { return d.family }

// Params returns the parameters in constructor order.
func (d *Density) Params() []float64 {
	if d.family == StudentT {
		return []float64{d.params[0], d.params[1], d.params[2]}
	}

	return []float64{d.params[0], d.params[1]}
}

// PDF evaluates the density at x (0 outside the support).
func (d *Density) PDF(x float64) float64 {
	lo, hi := d.Support()
	if x < lo || x > hi {
		return 0
	}

	return d.dist.Prob(x)
}

// LogPDF evaluates log PDF(x) (-Inf outside the support).
func (d *Density) LogPDF(x float64) float64 {
	lo, hi := d.Support()
	if x < lo || x > hi {
		return math.Inf(-1)
	}

	return d.dist.LogProb(x)
}

// CDF evaluates P(X ≤ x).
func (d *Density) CDF(x float64) float64 {
	lo, hi := d.Support()
	switch {
	case x <= lo:
		return 0
	case x >= hi:
		return 1
	}

	return d.dist.CDF(x)
}

// Quantile returns the inverse CDF at p ∈ [0,1].
func (d *Density) Quantile(p float64) float64 {
	lo, hi := d.Support()
	switch {
	case p <= 0:
		return lo
	case p >= 1:
		return hi
	}

	return d.dist.Quantile(p)
}

// LogPDFDeriv returns d/dx log PDF(x) for x strictly inside the support.
func (d *Density) LogPDFDeriv(x float64) float64 {
	p := d.params
	switch d.family {
	case Beta:
		return (p[0]-1)/x - (p[1]-1)/(1-x)
	case Gamma:
		return (p[0]-1)/x - p[1]
	case InverseGamma:
		return -(p[0]+1)/x + p[1]/(x*x)
	case StudentT:
		z := x - p[1]
		return -(p[0] + 1) * z / (p[0]*p[2]*p[2] + z*z)
	case Normal:
		return -(x - p[0]) / (p[1] * p[1])
	}

	return math.NaN()
}

// Support returns the closed hull of the support.
func (d *Density) Support() (lo, hi float64) {
	switch d.family {
	case Beta:
		return 0, 1
	case Gamma, InverseGamma:
		return 0, math.Inf(1)
	}

	return math.Inf(-1), math.Inf(1)
}

// Anchor reports where the density peaks. Densities that are neither
// monotone nor unimodal (Beta with both parameters < 1) report ok=false.
func (d *Density) Anchor() (a Anchor, ok bool) {
	p := d.params
	switch d.family {
	case Beta:
		switch {
		case p[0] == 1 && p[1] == 1:
			return AtLower, true // uniform: every window of the mass is minimal
		case p[0] < 1 && p[1] < 1:
			return Interior, false
		case p[1] < 1 && p[0] == 1:
			return AtUpper, true
		case p[0] <= 1:
			return AtLower, true
		case p[1] <= 1:
			return AtUpper, true
		}
	case Gamma:
		if p[0] <= 1 {
			return AtLower, true
		}
	}

	return Interior, true
}

// Mean returns E[X]; +Inf for an InverseGamma with shape ≤ 1, NaN for a Student-t with ν ≤ 1.
func (d *Density) Mean() float64 {
	p := d.params
	switch d.family {
	case Beta:
		return p[0] / (p[0] + p[1])
	case Gamma:
		return p[0] / p[1]
	case InverseGamma:
		if p[0] <= 1 {
			return math.Inf(1)
		}
		return p[1] / (p[0] - 1)
	case StudentT:
		if p[0] <= 1 {
			return math.NaN()
		}
		return p[1]
	}

	return p[0]
}

// Variance returns Var[X] with the same undefined-moment conventions as Mean.
func (d *Density) Variance() float64 {
	p := d.params
	switch d.family {
	case Beta:
		s := p[0] + p[1]
		return p[0] * p[1] / (s * s * (s + 1))
	case Gamma:
		return p[0] / (p[1] * p[1])
	case InverseGamma:
		if p[0] <= 2 {
			return math.Inf(1)
		}
		a1 := p[0] - 1
		return p[1] * p[1] / (a1 * a1 * (p[0] - 2))
	case StudentT:
		switch {
		case p[0] > 2:
			return p[2] * p[2] * p[0] / (p[0] - 2)
		case p[0] > 1:
			return math.Inf(1)
		}
		return math.NaN()
	}

	return p[1] * p[1]
}

// StdDev returns √Variance.
func (d *Density) StdDev() float64 { return math.Sqrt(d.Variance()) }

// Median returns Quantile(0.5).
func (d *Density) Median() float64 { return d.Quantile(0.5) }

// Mode returns the maximizer of the density, or NaN where it is undefined:
// Beta with a < 1, b < 1 or a+b = 2, and Gamma with shape < 1.
func (d *Density) Mode() float64 {
	p := d.params
	switch d.family {
	case Beta:
		den := p[0] + p[1] - 2
		if p[0] < 1 || p[1] < 1 || den == 0 {
			return math.NaN()
		}
		return (p[0] - 1) / den
	case Gamma:
		if p[0] < 1 {
			return math.NaN()
		}
		return (p[0] - 1) / p[1]
	case InverseGamma:
		return p[1] / (p[0] + 1)
	case StudentT:
		return p[1]
	}

	return p[0]
}

// EqualTailed returns the central credible interval of the given mass,
// i.e. [Q((1−mass)/2), Q((1+mass)/2)].
func (d *Density) EqualTailed(mass float64) (summary.Interval, error) {
	if !(mass > 0 && mass < 1) {
		return summary.Interval{}, bayeserr.Invalidf("mass must be in (0,1), got %g", mass)
	}
	tail := 0.5 * (1 - mass)

	return summary.Interval{
		Lower:  d.Quantile(tail),
		Upper:  d.Quantile(1 - tail),
		Mass:   mass,
		Method: summary.EqualTailed,
	}, nil
}
