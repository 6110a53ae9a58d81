package diagnostics

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvbayes/bayeserr"
	"github.com/katalvlaran/lvbayes/summary"
)

// Percentile returns the q-th quantile (q ∈ [0,1]) of x with linear
// interpolation between order statistics at position q·(m−1).
// Returns NaN for an empty x or q outside [0,1].
func Percentile(x []float64, q float64) float64 {
	if len(x) == 0 || !(q >= 0 && q <= 1) {
		return math.NaN()
	}

	return percentileSorted(sortedCopy(x), q)
}

func sortedCopy(x []float64) []float64 {
	s := slices.Clone(x)
	slices.Sort(s)

	return s
}

func percentileSorted(s []float64, q float64) float64 {
	pos := q * float64(len(s)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return s[lo]
	}
	frac := pos - float64(lo)

	return s[lo]*(1-frac) + s[hi]*frac
}

// SampleHPD returns the narrowest interval [s_i, s_{i+w}] over the sorted draws,
// where w = ⌊mass·m⌋. Ties keep the leftmost window.
//
// Errors:
//   - bayeserr.ErrInvalidParameter for mass ∉ (0,1) or fewer than 2 draws.
func SampleHPD(x []float64, mass float64) (summary.Interval, error) {
	if !(mass > 0 && mass < 1) {
		return summary.Interval{}, bayeserr.Invalidf("diagnostics: mass must be in (0,1), got %g", mass)
	}
	if len(x) < 2 {
		return summary.Interval{}, bayeserr.Invalidf("diagnostics: need at least 2 draws, got %d", len(x))
	}

	return sampleHPDSorted(sortedCopy(x), mass), nil
}

func sampleHPDSorted(s []float64, mass float64) summary.Interval {
	m := len(s)
	w := int(math.Floor(mass * float64(m)))
	best, bestWidth := 0, math.Inf(1)
	for i := 0; i < m-w; i++ {
		if width := s[i+w] - s[i]; width < bestWidth {
			best, bestWidth = i, width
		}
	}

	return summary.Interval{Lower: s[best], Upper: s[best+w], Mass: mass, Method: summary.HPD}
}

// batchMeans drops the first len(x) mod b draws and returns the means of b
// contiguous batches, plus the batches themselves.
func batchMeans(x []float64, b int) (means []float64, batches [][]float64) {
	size := len(x) / b
	x = x[len(x)%b:]
	means = make([]float64, b)
	batches = make([][]float64, b)
	for i := range means {
		batches[i] = x[i*size : (i+1)*size]
		means[i] = stat.Mean(batches[i], nil)
	}

	return means, batches
}

func checkBatches(n, b int) error {
	if b < 1 {
		return bayeserr.Invalidf("diagnostics: batch count must be ≥ 1, got %d", b)
	}
	if n/b < 2 {
		return bayeserr.Invalidf("diagnostics: %d draws give batches shorter than 2 for %d batches", n, b)
	}

	return nil
}

// BatchMeansMCSE estimates the Monte Carlo standard error of the mean of x as
// the sample standard deviation of b batch means divided by √b.
// Returns NaN for b = 1.
//
// Errors:
//   - bayeserr.ErrInvalidParameter for b < 1 or batches shorter than 2 draws.
func BatchMeansMCSE(x []float64, b int) (float64, error) {
	if err := checkBatches(len(x), b); err != nil {
		return math.NaN(), err
	}
	if b == 1 {
		return math.NaN(), nil
	}
	means, _ := batchMeans(x, b)

	return math.Sqrt(stat.Variance(means, nil) / float64(b)), nil
}

// RHat is the Gelman–Rubin potential scale reduction of x cut into b batches.
// Returns NaN for b = 1.
//
// Errors:
//   - bayeserr.ErrInvalidParameter for b < 1 or batches shorter than 2 draws.
func RHat(x []float64, b int) (float64, error) {
	if err := checkBatches(len(x), b); err != nil {
		return math.NaN(), err
	}
	if b == 1 {
		return math.NaN(), nil
	}
	_, batches := batchMeans(x, b)

	return gelmanRubin(batches), nil
}

// RHatChains is the Gelman–Rubin statistic across independent chains of equal length.
//
// Errors:
//   - bayeserr.ErrInvalidParameter for fewer than 2 chains, chains shorter than
//     2 draws or unequal lengths.
func RHatChains(chains [][]float64) (float64, error) {
	if len(chains) < 2 {
		return math.NaN(), bayeserr.Invalidf("diagnostics: need at least 2 chains, got %d", len(chains))
	}
	l := len(chains[0])
	if l < 2 {
		return math.NaN(), bayeserr.Invalidf("diagnostics: chains need at least 2 draws, got %d", l)
	}
	for i, c := range chains {
		if len(c) != l {
			return math.NaN(), bayeserr.Invalidf("diagnostics: chain %d has %d draws, want %d", i, len(c), l)
		}
	}

	return gelmanRubin(chains), nil
}

// gelmanRubin computes √(var⁺/W) with
//
//	W    = mean within-group variance
//	var⁺ = (L−1)/L·W + var(group means)
//
// for ≥ 2 groups of equal length L ≥ 2. Constant groups give 1 when all
// means agree and +Inf otherwise.
func gelmanRubin(groups [][]float64) float64 {
	l := float64(len(groups[0]))
	means := make([]float64, len(groups))
	w := 0.0
	for i, g := range groups {
		m, v := stat.MeanVariance(g, nil)
		means[i] = m
		w += v
	}
	w /= float64(len(groups))
	between := stat.Variance(means, nil)
	if w == 0 {
		if between == 0 {
			return 1
		}
		return math.Inf(1)
	}
	varPlus := (l-1)/l*w + between

	return math.Sqrt(varPlus / w)
}
