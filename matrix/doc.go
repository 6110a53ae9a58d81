// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra layer behind the regression models.
//
// 🚀 What lives here?
//
//	A row-major Dense type with error-returning accessors, plus the small set of
//	kernels a Normal-Inverse-Gamma regression needs:
//	  • Gram (XᵗX) and TMatVec (Xᵗy) for the normal equations
//	  • LU with partial pivoting → Solve, Inverse
//	  • Cholesky → positive-definiteness checks and MVN draws
//	  • QuadForm (xᵗAy), Add, Scale, Mul, Transpose, MatVec
//
// ✨ Numeric policy:
//   - No panics on user input; every failure is a sentinel matched with errors.Is.
//   - ErrSingular and ErrNotPositiveDefinite wrap bayeserr.ErrLinearAlgebra, so callers
//     can branch on the taxonomy class without knowing this package.
//   - Fixed loop orders everywhere: identical inputs give bit-identical outputs.
//   - No automatic regularization. A rank-deficient design is reported, not patched.
//
// ⚙️ Usage:
//
//	X, _ := matrix.NewDenseRows([][]float64{{1, 0.5}, {1, 1.5}, {1, 2.0}})
//	XtX, _ := matrix.Gram(X)
//	Xty, _ := matrix.TMatVec(X, y)
//	bOLS, err := matrix.Solve(XtX, Xty) // errors.Is(err, bayeserr.ErrLinearAlgebra) on rank deficiency
//
// Complexity quicksheet (n×n unless noted):
//   - Gram: O(r·c²); LU/Solve/Inverse: O(n³); Cholesky: O(n³/3); QuadForm: O(n²).
package matrix
