// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// All kernels return these sentinels (optionally wrapped with an op tag via
// matrixErrorf) and tests check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbayes/bayeserr"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> numerical (singular / not PD).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, Mul where a.Cols != b.Rows, ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when LU meets a pivot below the singularity threshold.
	ErrSingular = fmt.Errorf("matrix: singular matrix: %w", bayeserr.ErrLinearAlgebra)

	// ErrAsymmetry signals that a matrix expected to be symmetric is not, within tolerance.
	ErrAsymmetry = fmt.Errorf("matrix: matrix is not symmetric: %w", bayeserr.ErrLinearAlgebra)

	// ErrNotPositiveDefinite is returned by Cholesky on a non-positive pivot.
	ErrNotPositiveDefinite = fmt.Errorf("matrix: matrix is not positive definite: %w", bayeserr.ErrLinearAlgebra)
)

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opScale    = "Scale"
	opMul      = "Mul"
	opT        = "Transpose"
	opMatVec   = "MatVec"
	opTMatVec  = "TMatVec"
	opGram     = "Gram"
	opLU       = "LU"
	opSolve    = "Solve"
	opInverse  = "Inverse"
	opCholesky = "Cholesky"
	opQuadForm = "QuadForm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil; wrapping nil would yield a non-nil error around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}
