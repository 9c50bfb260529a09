// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 3}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 7}, m.RawData(), "row-major layout")

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestNewScalar_DiagonalOnly(t *testing.T) {
	m, err := matrix.NewScalar(2, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 0, 0, 5, 0}, m.RawData())
}

func TestNewFromRowsAndCols_Agree(t *testing.T) {
	byRows := mustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	byCols, err := matrix.NewFromCols([]float64{1, 4}, []float64{2, 5}, []float64{3, 6})
	require.NoError(t, err)
	assert.True(t, byRows.Equal(byCols))

	flat, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.True(t, byRows.Equal(flat))

	_, err = matrix.NewDenseFrom(2, 2, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_RowColSwap(t *testing.T) {
	m := mustRows(t, []float64{1, 2}, []float64{3, 4})

	require.NoError(t, m.SwapRows(0, 1))
	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)

	require.NoError(t, m.SwapCols(0, 1))
	col, err := m.Col(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 2}, col)

	assert.ErrorIs(t, m.SwapRows(0, 5), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.SetRow(0, []float64{1, 2, 3}), matrix.ErrDimensionMismatch)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := mustRows(t, []float64{1, 2}, []float64{3, 4})
	c := m.Clone().(*matrix.Dense)
	require.NoError(t, c.Set(0, 0, 100))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestDense_LoadIdentityAndString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	m.LoadIdentity(2)
	assert.Equal(t, "[2, 0]\n[0, 2]\n", m.String())
	m.LoadZero()
	assert.Equal(t, []float64{0, 0, 0, 0}, m.RawData())
}
