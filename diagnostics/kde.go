package diagnostics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvbayes/bayeserr"
)

// kdePad widens the evaluation range by this fraction of |min| and |max|.
const kdePad = 0.2

// KDE estimates the marginal density of x with a Gaussian kernel and Scott's
// bandwidth h = m^(−1/5)·sd(x), evaluated at n points spanning
// [min − 0.2|min|, max + 0.2|max|].
//
// Errors:
//   - bayeserr.ErrInvalidParameter for fewer than 2 draws, n < 2 or constant x.
func KDE(x []float64, n int) (xs, ys []float64, err error) {
	if len(x) < 2 {
		return nil, nil, bayeserr.Invalidf("diagnostics: KDE needs at least 2 draws, got %d", len(x))
	}
	if n < 2 {
		return nil, nil, bayeserr.Invalidf("diagnostics: KDE needs at least 2 grid points, got %d", n)
	}
	h := math.Pow(float64(len(x)), -0.2) * stat.StdDev(x, nil)
	if !(h > 0) {
		return nil, nil, bayeserr.Invalidf("diagnostics: KDE of constant draws")
	}

	lo, hi := floats.Min(x), floats.Max(x)
	xs = floats.Span(make([]float64, n), lo-kdePad*math.Abs(lo), hi+kdePad*math.Abs(hi))
	ys = make([]float64, n)
	norm := 1 / (float64(len(x)) * h)
	for i, g := range xs {
		sum := 0.0
		for _, v := range x {
			sum += distuv.UnitNormal.Prob((g - v) / h)
		}
		ys[i] = sum * norm
	}

	return xs, ys, nil
}
