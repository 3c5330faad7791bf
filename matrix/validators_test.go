// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prism/matrix"
)

// TestValidateSymmetric covers the tolerance policy and structural guards.
func TestValidateSymmetric(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 2.0 + 1e-10, 1})
	require.NoError(t, err)

	assert.NoError(t, matrix.ValidateSymmetric(m, 1e-9))
	assert.ErrorIs(t, matrix.ValidateSymmetric(m, 1e-12), matrix.ErrAsymmetry)
	assert.NoError(t, matrix.ValidateSymmetric(m, -1e-9), "negative tolerance is taken by magnitude")
	assert.ErrorIs(t, matrix.ValidateSymmetric(m, math.NaN()), matrix.ErrNaNInf)

	rect, _ := matrix.NewDense(2, 3)
	assert.ErrorIs(t, matrix.ValidateSymmetric(rect, 0), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
}

// TestValidateFinite flags NaN and Inf values.
func TestValidateFinite(t *testing.T) {
	a, _ := matrix.NewArray(3, 2, matrix.Real)
	assert.NoError(t, matrix.ValidateFinite(a))

	_ = a.Set(2, 1, 0, math.Inf(-1))
	assert.ErrorIs(t, matrix.ValidateFinite(a), matrix.ErrNaNInf)
}

// TestValidateVecLen checks nil and length guards.
func TestValidateVecLen(t *testing.T) {
	assert.NoError(t, matrix.ValidateVecLen(make([]float64, 3), 3))
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 3), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateVecLen(make([]float64, 2), 3), matrix.ErrDimensionMismatch)
}
