// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures for the matrix tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/matrix"
)

const tol = 1e-9

// hide masks the concrete *Dense so kernels take their generic path.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from row literals or fails the test.
func mustRows(t *testing.T, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows...)
	require.NoError(t, err)

	return m
}

// randomDominant returns an n×n strictly diagonally dominant (hence
// invertible and well conditioned) matrix.
func randomDominant(t *testing.T, rng *rand.Rand, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			sum += abs(v)
			require.NoError(t, m.Set(i, j, v))
		}
		require.NoError(t, m.Set(i, i, sum+1+rng.Float64()))
	}

	return m
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// requireIdentity asserts m ≈ I within tol.
func requireIdentity(t *testing.T, m *matrix.Dense, eps float64) {
	t.Helper()
	id, err := matrix.NewIdentity(m.Rows())
	require.NoError(t, err)
	require.Truef(t, m.EqualApprox(id, eps), "expected identity, got\n%v", m)
}
