// SPDX-License-Identifier: MIT
// Package matrix: LU and Cholesky factorizations.
//
// Purpose:
//   - LU with partial pivoting backs Solve and Inverse for general square systems
//     (normal equations, posterior precision inversion).
//   - Cholesky backs positive-definiteness validation of prior precisions and the
//     L·z transform of multivariate-Normal draws.
//
// Determinism:
//   - Pivot search scans rows top to bottom and keeps the first maximum, so ties
//     resolve identically across runs.

package matrix

import "math"

// SingularTolerance is the relative pivot threshold below which LU reports ErrSingular.
// A pivot p is rejected when |p| <= SingularTolerance * max|A[i,j]|.
const SingularTolerance = 1e-12

// SymmetryTolerance is the relative tolerance Cholesky uses for its symmetry pre-check.
const SymmetryTolerance = 1e-9

// LU holds a partially pivoted factorization P·A = L·U packed into one matrix:
// the strict lower triangle is L (unit diagonal implied), the upper triangle is U.
type LU struct {
	lu  *Dense
	piv []int // piv[i] = original row now at position i
}

// Factorize computes the LU factorization of a square matrix.
//
// Implementation:
//   - Stage 1: validate non-nil/square, clone A, record the max-abs scale.
//   - Stage 2: for each column k, swap in the row with the largest |A[i,k]| (i ≥ k),
//     reject a pivot under SingularTolerance·scale, eliminate below.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wraps bayeserr.ErrLinearAlgebra).
//
// Complexity: Time O(n³), Space O(n²).
func Factorize(m *Dense) (*LU, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := m.r
	a := m.Clone()
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}

	scale := 0.0
	for _, v := range a.data {
		scale = math.Max(scale, math.Abs(v))
	}
	threshold := SingularTolerance * scale
	if scale == 0 {
		return nil, matrixErrorf(opLU, ErrSingular)
	}

	var i, j, k, p int
	var maxAbs, f float64
	for k = 0; k < n; k++ {
		// Pivot search: first row with the largest magnitude in column k.
		p, maxAbs = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs <= threshold {
			return nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
		}
		// Eliminate below the pivot; store multipliers in place.
		for i = k + 1; i < n; i++ {
			f = a.data[i*n+k] / a.data[k*n+k]
			a.data[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= f * a.data[k*n+j]
			}
		}
	}

	return &LU{lu: a, piv: piv}, nil
}

// SolveVec solves A·x = b using the stored factors.
// Complexity: Time O(n²), Space O(n).
func (f *LU) SolveVec(b []float64) ([]float64, error) {
	n := f.lu.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = b[f.piv[i]]
	}
	f.substitute(x)

	return x, nil
}

// substitute runs forward (unit L) then backward (U) substitution on x in place.
func (f *LU) substitute(x []float64) {
	n := f.lu.r
	d := f.lu.data
	var i, k int
	var sum float64
	for i = 1; i < n; i++ {
		sum = x[i]
		for k = 0; k < i; k++ {
			sum -= d[i*n+k] * x[k]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= d[i*n+k] * x[k]
		}
		x[i] = sum / d[i*n+i]
	}
}

// Inverse returns A⁻¹ by solving against each unit vector.
// Complexity: Time O(n³), Space O(n²).
func (f *LU) Inverse() *Dense {
	n := f.lu.r
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	col := make([]float64, n)
	var i, j int
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			col[i] = 0
			if f.piv[i] == j {
				col[i] = 1
			}
		}
		f.substitute(col)
		for i = 0; i < n; i++ {
			inv.data[i*n+j] = col[i]
		}
	}

	return inv
}

// Solve is a convenience for Factorize(a).SolveVec(b).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
func Solve(a *Dense, b []float64) ([]float64, error) {
	f, err := Factorize(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.SolveVec(b)
}

// Inverse returns A⁻¹ for a non-singular square A.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Notes:
//   - Prefer Solve when only A⁻¹b is needed; forming A⁻¹ is reserved for
//     quantities that need its entries (marginal variances, covariance of a draw).
func Inverse(m *Dense) (*Dense, error) {
	f, err := Factorize(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return f.Inverse(), nil
}

// Cholesky holds the lower-triangular factor L with A = L·Lᵗ.
type Cholesky struct {
	l *Dense
}

// NewCholesky factorizes a symmetric positive-definite matrix.
//
// Implementation:
//   - Stage 1: ValidateSymmetric within SymmetryTolerance.
//   - Stage 2: column-by-column Cholesky–Banachiewicz; a pivot ≤ 0 (or NaN) fails.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNotPositiveDefinite.
//
// Complexity: Time O(n³/3), Space O(n²).
func NewCholesky(m *Dense) (*Cholesky, error) {
	if err := ValidateSymmetric(m, SymmetryTolerance); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := m.r
	l := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = m.data[i*n+j]
			for k = 0; k < j; k++ {
				sum -= l.data[i*n+k] * l.data[j*n+k]
			}
			if i == j {
				if !(sum > 0) { // catches NaN too
					return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
				}
				l.data[i*n+i] = math.Sqrt(sum)
				continue
			}
			l.data[i*n+j] = sum / l.data[j*n+j]
		}
	}

	return &Cholesky{l: l}, nil
}

// L returns a copy of the lower-triangular factor.
func (c *Cholesky) L() *Dense { return c.l.Clone() }

// LowerMulVec returns L·z. With z standard Normal, L·z has covariance A.
// Complexity: Time O(n²/2), Space O(n).
func (c *Cholesky) LowerMulVec(z []float64) ([]float64, error) {
	n := c.l.r
	if err := ValidateVecLen(z, n); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	out := make([]float64, n)
	var i, k int
	for i = 0; i < n; i++ {
		for k = 0; k <= i; k++ {
			out[i] += c.l.data[i*n+k] * z[k]
		}
	}

	return out, nil
}

// SolveVec solves A·x = b via L·Lᵗ·x = b.
func (c *Cholesky) SolveVec(b []float64) ([]float64, error) {
	n := c.l.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	d := c.l.data
	x := make([]float64, n)
	copy(x, b)
	var i, k int
	for i = 0; i < n; i++ {
		for k = 0; k < i; k++ {
			x[i] -= d[i*n+k] * x[k]
		}
		x[i] /= d[i*n+i]
	}
	for i = n - 1; i >= 0; i-- {
		for k = i + 1; k < n; k++ {
			x[i] -= d[k*n+i] * x[k]
		}
		x[i] /= d[i*n+i]
	}

	return x, nil
}

// UpperSolveVec solves Lᵗ·x = z. With z standard Normal, x has covariance A⁻¹,
// which draws from a Normal given its precision matrix.
func (c *Cholesky) UpperSolveVec(z []float64) ([]float64, error) {
	n := c.l.r
	if err := ValidateVecLen(z, n); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	d := c.l.data
	x := make([]float64, n)
	copy(x, z)
	var i, k int
	for i = n - 1; i >= 0; i-- {
		for k = i + 1; k < n; k++ {
			x[i] -= d[k*n+i] * x[k]
		}
		x[i] /= d[i*n+i]
	}

	return x, nil
}

// LogDet returns log|A| = 2·Σ log L[i,i].
func (c *Cholesky) LogDet() float64 {
	n := c.l.r
	s := 0.0
	for i := 0; i < n; i++ {
		s += math.Log(c.l.data[i*n+i])
	}

	return 2 * s
}

// IsPositiveDefinite reports whether m admits a Cholesky factorization.
func IsPositiveDefinite(m *Dense) bool {
	_, err := NewCholesky(m)

	return err == nil
}
