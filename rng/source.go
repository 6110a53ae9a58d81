package rng

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvbayes/matrix"
)

// streamSalt decorrelates the second PCG word from the seed.
const streamSalt = 0x9e3779b97f4a7c15

// Source is a seeded pseudorandom source.
type Source struct {
	seed uint64
	pcg  *rand.PCG
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	return &Source{seed: seed, pcg: rand.NewPCG(seed, seed^streamSalt)}
}

// Seed returns the seed the Source was created with.
func (s *Source) Seed() uint64 { return s.seed }

// Uint64 makes Source a math/rand/v2 Source itself.
func (s *Source) Uint64() uint64 { return s.pcg.Uint64() }

var _ rand.Source = (*Source)(nil)

// Uniform draws from U[0, 1).
func (s *Source) Uniform() float64 {
	return distuv.Uniform{Min: 0, Max: 1, Src: s.pcg}.Rand()
}

// Normal draws from N(mean, sd²).
func (s *Source) Normal(mean, sd float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: sd, Src: s.pcg}.Rand()
}

// StdNormals fills a fresh slice with n independent N(0, 1) draws.
func (s *Source) StdNormals(n int) []float64 {
	z := make([]float64, n)
	for i := range z {
		z[i] = distuv.Normal{Mu: 0, Sigma: 1, Src: s.pcg}.Rand()
	}

	return z
}

// Gamma draws from Gamma(shape, rate).
func (s *Source) Gamma(shape, rate float64) float64 {
	return distuv.Gamma{Alpha: shape, Beta: rate, Src: s.pcg}.Rand()
}

// InverseGamma draws from InvGamma(shape, scale).
func (s *Source) InverseGamma(shape, scale float64) float64 {
	return distuv.InverseGamma{Alpha: shape, Beta: scale, Src: s.pcg}.Rand()
}

// Poisson draws a count with mean lambda.
func (s *Source) Poisson(lambda float64) float64 {
	return distuv.Poisson{Lambda: lambda, Src: s.pcg}.Rand()
}

// Bernoulli draws 1 with probability p, else 0.
func (s *Source) Bernoulli(p float64) float64 {
	return distuv.Bernoulli{P: p, Src: s.pcg}.Rand()
}

// MultivariateNormal draws from N(mean, cov) as mean + L·z with cov = L·Lᵗ.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(mean) != cov.Rows().
//   - matrix.ErrAsymmetry / matrix.ErrNotPositiveDefinite for an invalid covariance.
func (s *Source) MultivariateNormal(mean []float64, cov *matrix.Dense) ([]float64, error) {
	ch, err := matrix.NewCholesky(cov)
	if err != nil {
		return nil, err
	}
	lz, err := ch.LowerMulVec(s.StdNormals(len(mean)))
	if err != nil {
		return nil, err
	}
	for i := range lz {
		lz[i] += mean[i]
	}

	return lz, nil
}

// MultivariateNormalPrecision draws from N(P⁻¹h, P⁻¹) without forming P⁻¹:
// with P = L·Lᵗ the mean solves P·m = h and the deviation solves Lᵗ·d = z.
func (s *Source) MultivariateNormalPrecision(prec *matrix.Dense, h []float64) ([]float64, error) {
	ch, err := matrix.NewCholesky(prec)
	if err != nil {
		return nil, err
	}
	m, err := ch.SolveVec(h)
	if err != nil {
		return nil, err
	}
	d, err := ch.UpperSolveVec(s.StdNormals(len(h)))
	if err != nil {
		return nil, err
	}
	for i := range d {
		d[i] += m[i]
	}

	return d, nil
}
