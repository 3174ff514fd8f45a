// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestZerosLike(t *testing.T) {
	z, err := matrix.ZerosLike(MustRows(t, []float64{1, 2, 3}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}}, z)

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	z, err = matrix.NewZeros(2, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0}, {0}}, z)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustRows(t, []float64{1, 2}, []float64{math.Inf(1), 4})
	b := MustRows(t, []float64{1 + 1e-10, 2}, []float64{math.Inf(1), 4 - 1e-10})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	nan := MustRows(t, []float64{math.NaN(), 2}, []float64{math.Inf(1), 4})
	ok, err = matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok, "NaN is never close")

	_, err = matrix.AllClose(a, MustDense(t, 1, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVectorsClose(t *testing.T) {
	ok, err := matrix.VectorsClose(MustVec(t, 1, 2), MustVec(t, 1.001, 2), 0, -0.01)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.VectorsClose(MustVec(t, 1), MustVec(t, 1, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
