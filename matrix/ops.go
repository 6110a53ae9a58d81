// SPDX-License-Identifier: MIT
// Package matrix provides the element-wise and product kernels on *Dense.
//
// Purpose:
//   - Declare the canonical products used by the normal equations (Gram, TMatVec, QuadForm).
//   - Keep every kernel allocation-explicit: exactly one result buffer per call.
//
// Notes:
//   - Inputs are never mutated; results are always freshly allocated.
//   - Loop orders are fixed (i→k→j for products) so results are reproducible bit for bit.

package matrix

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range a.data {
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Scale returns alpha*m.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Mul performs C = A × B with an i→k→j loop that skips zero A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}

	var i, j, k int
	var av float64
	var rowA, rowB, rowR int
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new matrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opT, err)
	}
	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[base+j]
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Contract: len(x) == m.Cols(), x finite.
// Complexity: Time O(r*c), Space O(r).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.r)
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// TMatVec computes y = mᵀ·x without materializing mᵀ.
// For a design X and response y this is the Xᵗy term of the normal equations.
//
// Contract: len(x) == m.Rows().
// Complexity: Time O(r*c), Space O(c).
func TMatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTMatVec, err)
	}
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, matrixErrorf(opTMatVec, err)
	}
	y := make([]float64, m.c)
	var i, j, base int
	var xi float64
	for i = 0; i < m.r; i++ {
		xi = x[i]
		if xi == 0 {
			continue
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			y[j] += m.data[base+j] * xi
		}
	}

	return y, nil
}

// Gram computes XᵗX (c×c, symmetric) in one pass over the rows of X.
//
// Implementation:
//   - Stage 1: accumulate the upper triangle row by row (i→a→b with b ≥ a).
//   - Stage 2: mirror into the lower triangle so the result is exactly symmetric.
//
// Complexity: Time O(r*c²/2), Space O(c²).
func Gram(x *Dense) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	c := x.c
	res := &Dense{r: c, c: c, data: make([]float64, c*c)}
	var i, a, b, base int
	var va float64
	for i = 0; i < x.r; i++ {
		base = i * c
		for a = 0; a < c; a++ {
			va = x.data[base+a]
			if va == 0 {
				continue
			}
			for b = a; b < c; b++ {
				res.data[a*c+b] += va * x.data[base+b]
			}
		}
	}
	for a = 0; a < c; a++ {
		for b = a + 1; b < c; b++ {
			res.data[b*c+a] = res.data[a*c+b]
		}
	}

	return res, nil
}

// QuadForm computes xᵗ·A·y.
//
// Contract: A is len(x)×len(y).
// Complexity: Time O(r*c), Space O(1).
func QuadForm(x []float64, a *Dense, y []float64) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	if err := ValidateVecLen(x, a.r); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	if err := ValidateVecLen(y, a.c); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	var i, j, base int
	var row, total float64
	for i = 0; i < a.r; i++ {
		row = ZeroSum
		base = i * a.c
		for j = 0; j < a.c; j++ {
			row += a.data[base+j] * y[j]
		}
		total += x[i] * row
	}

	return total, nil
}
