package summary

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbayes/bayeserr"
)

// Method tags how an Interval was constructed.
type Method int

const (
	// EqualTailed leaves (1−Mass)/2 of the probability in each tail.
	EqualTailed Method = iota
	// HPD is the narrowest interval holding Mass.
	HPD
)

func (m Method) String() string {
	switch m {
	case EqualTailed:
		return "equal-tailed"
	case HPD:
		return "hpd"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// MarshalText renders the method by name in JSON and YAML.
func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Interval is a credible interval [Lower, Upper] of probability Mass.
type Interval struct {
	Lower  float64
	Upper  float64
	Mass   float64
	Method Method
}

// NewInterval validates lower ≤ upper and mass ∈ (0,1).
func NewInterval(lower, upper, mass float64, method Method) (Interval, error) {
	if !(mass > 0 && mass < 1) {
		return Interval{}, bayeserr.Invalidf("interval mass must be in (0,1), got %g", mass)
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return Interval{}, bayeserr.Invalidf("interval bounds must satisfy lower <= upper, got [%g, %g]", lower, upper)
	}

	return Interval{Lower: lower, Upper: upper, Mass: mass, Method: method}, nil
}

// Width returns Upper − Lower.
func (iv Interval) Width() float64 { return iv.Upper - iv.Lower }

// Contains reports lower ≤ x ≤ upper.
func (iv Interval) Contains(x float64) bool { return x >= iv.Lower && x <= iv.Upper }

func (iv Interval) String() string {
	return fmt.Sprintf("%s %.0f%% [%g, %g]", iv.Method, 100*iv.Mass, iv.Lower, iv.Upper)
}
