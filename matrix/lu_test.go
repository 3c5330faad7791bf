// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/prism"
	"github.com/katalvlaran/prism/matrix"
)

// TestInverse_MatchesGonum compares the pivoted LU inverse with gonum/mat on
// random well-conditioned blocks, including ones that need row swaps.
func TestInverse_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= 6; n++ {
		vals := make([]float64, n*n)
		for i := range vals {
			vals[i] = rng.Float64()*2 - 1
		}
		for i := 0; i < n; i++ {
			vals[i*n+i] += float64(n) // diagonal dominance keeps it invertible
		}
		if n > 1 {
			vals[0] = 0 // force a pivot swap in column 0
		}
		a, err := matrix.NewDenseFrom(n, n, vals)
		require.NoError(t, err)

		inv, err := matrix.Inverse(a)
		require.NoError(t, err)

		var ref mat.Dense
		require.NoError(t, ref.Inverse(mat.NewDense(n, n, vals)))
		assert.InDeltaSlice(t, ref.RawMatrix().Data, inv.RawRowMajor(), 1e-10, "n=%d", n)
	}
}

// TestInverse_Singular verifies that zero pivots surface as typed errors.
func TestInverse_Singular(t *testing.T) {
	a, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 2, 4})
	require.NoError(t, err)

	_, err = matrix.Inverse(a)
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrSingular)
	assert.ErrorIs(t, err, prism.ErrSingularMatrix)

	var se *matrix.SingularError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, -1, se.Point)
	assert.Equal(t, 1, se.Pivot)

	zero, _ := matrix.NewDense(1, 1)
	_, err = matrix.Inverse(zero)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverse_NonSquare rejects rectangular blocks.
func TestInverse_NonSquare(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	_, err := matrix.Inverse(a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestLU_SolveVec checks A·x = b on a known system.
func TestLU_SolveVec(t *testing.T) {
	a, _ := matrix.NewDenseFrom(3, 3, []float64{2, 3, 1, 1, 2, 3, 3, 1, 2})
	f, err := matrix.NewLU(3)
	require.NoError(t, err)
	require.NoError(t, f.Factorize(a))

	x := make([]float64, 3)
	require.NoError(t, f.SolveVec(x, []float64{9, 6, 8}))
	assert.InDeltaSlice(t, []float64{35.0 / 18.0, 29.0 / 18.0, 5.0 / 18.0}, x, 1e-12)
}
