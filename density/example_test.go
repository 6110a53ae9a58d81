package density_test

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/density"
)

// ExampleNewInverseGamma summarises the posterior of a variance.
func ExampleNewInverseGamma() {
	d, err := density.NewInverseGamma(3, 4)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s mean=%.3f mode=%.3f\n", d.Family(), d.Mean(), d.Mode())
	// Output:
	// inverse-gamma mean=2.000 mode=1.000
}

// ExampleDensity_EqualTailed prints the central 95% interval of a standard Normal.
func ExampleDensity_EqualTailed() {
	d, _ := density.NewNormal(0, 1)
	iv, _ := d.EqualTailed(0.95)
	fmt.Printf("[%.3f, %.3f]\n", iv.Lower, iv.Upper)
	// Output:
	// [-1.960, 1.960]
}
