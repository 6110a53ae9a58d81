package density

import "fmt"

// Family tags the distributional form of a Density.
type Family int

const (
	// Beta on (0,1), parameters (α, β).
	Beta Family = iota + 1
	// Gamma on (0,∞), parameters (shape, rate).
	Gamma
	// InverseGamma on (0,∞), parameters (shape, scale).
	InverseGamma
	// StudentT on ℝ, parameters (ν, location, scale).
	StudentT
	// Normal on ℝ, parameters (mean, sd).
	Normal
)

func (f Family) String() string {
	switch f {
	case Beta:
		return "beta"
	case Gamma:
		return "gamma"
	case InverseGamma:
		return "inverse-gamma"
	case StudentT:
		return "student-t"
	case Normal:
		return "normal"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Anchor tells where a density attains its supremum.
//
//   - Interior: an interior mode; HPD endpoints satisfy pdf(lo) = pdf(hi).
//   - AtLower: non-increasing density; HPD interval starts at the lower support bound.
//   - AtUpper: non-decreasing density; HPD interval ends at the upper support bound.
type Anchor int

const (
	Interior Anchor = iota
	AtLower
	AtUpper
)

// univariate is the subset of distuv behaviour a Density delegates to.
type univariate interface {
	Prob(x float64) float64
	LogProb(x float64) float64
	CDF(x float64) float64
	Quantile(p float64) float64
}
