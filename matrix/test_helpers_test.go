// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels and factorizations.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvbayes/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used for floating comparisons in kernel tests.
const tol = 1e-10

// MustDense builds rows×cols from a row-major slice or fails the test.
func MustDense(tb testing.TB, rows, cols int, data ...float64) *matrix.Dense {
	tb.Helper()
	if len(data) == 0 {
		m, err := matrix.NewDense(rows, cols)
		require.NoError(tb, err)

		return m
	}
	m, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m *matrix.Dense, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// requireDenseInDelta compares two matrices element-wise.
func requireDenseInDelta(tb testing.TB, want, got *matrix.Dense, delta float64) {
	tb.Helper()
	wr, wc := want.Shape()
	gr, gc := got.Shape()
	require.Equal(tb, wr, gr, "rows")
	require.Equal(tb, wc, gc, "cols")
	var i, j int
	for i = 0; i < wr; i++ {
		for j = 0; j < wc; j++ {
			require.InDeltaf(tb, MustAt(tb, want, i, j), MustAt(tb, got, i, j), delta, "at [%d,%d]", i, j)
		}
	}
}

// randomSPD returns BᵗB + n·I for a seeded random B, which is symmetric positive definite.
func randomSPD(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	r := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = r.Float64()*2 - 1
	}
	b := MustDense(tb, n, n, data...)
	g, err := matrix.Gram(b)
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		v := MustAt(tb, g, i, i)
		require.NoError(tb, g.Set(i, i, v+float64(n)))
	}

	return g
}

// maxAbsDiffIdentity returns max|M − I|.
func maxAbsDiffIdentity(tb testing.TB, m *matrix.Dense) float64 {
	tb.Helper()
	n := m.Rows()
	worst := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			worst = math.Max(worst, math.Abs(MustAt(tb, m, i, j)-want))
		}
	}

	return worst
}
