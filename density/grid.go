package density

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvbayes/bayeserr"
)

// Grid evaluates the PDF at n evenly spaced points of [lo, hi], endpoints included.
// It feeds prior-versus-posterior plots; points outside the support evaluate to 0.
func (d *Density) Grid(lo, hi float64, n int) (xs, ys []float64, err error) {
	if n < 2 {
		return nil, nil, bayeserr.Invalidf("grid: need at least 2 points, got %d", n)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || !(lo < hi) {
		return nil, nil, bayeserr.Invalidf("grid: need finite lo < hi, got [%g, %g]", lo, hi)
	}
	xs = floats.Span(make([]float64, n), lo, hi)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = d.PDF(x)
	}

	return xs, ys, nil
}

// QuantileGrid is Grid over [Quantile(tail), Quantile(1−tail)], the usual plotting
// range for an unbounded density.
func (d *Density) QuantileGrid(tail float64, n int) (xs, ys []float64, err error) {
	if !(tail > 0 && tail < 0.5) {
		return nil, nil, bayeserr.Invalidf("grid: tail must be in (0,0.5), got %g", tail)
	}

	return d.Grid(d.Quantile(tail), d.Quantile(1-tail), n)
}
