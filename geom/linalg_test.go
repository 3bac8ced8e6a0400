package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve3(t *testing.T) {
	a := [3][3]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	}
	b := [3]float64{8, -11, -3}
	x, err := solve3(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 2, x[0], 1e-9)
	assert.InDelta(t, 3, x[1], 1e-9)
	assert.InDelta(t, -1, x[2], 1e-9)
}

func TestSolve3Singular(t *testing.T) {
	a := [3][3]float64{
		{1, 2, 3},
		{2, 4, 6},
		{1, 1, 1},
	}
	_, err := solve3(a, [3]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestSolve2(t *testing.T) {
	x0, x1, ok := solve2(2, 1, 1, 3, 5, 10)
	require.True(t, ok)
	assert.InDelta(t, 1, x0, 1e-9)
	assert.InDelta(t, 3, x1, 1e-9)
}

func TestSolve2Singular(t *testing.T) {
	_, _, ok := solve2(1, 2, 2, 4, 1, 2)
	assert.False(t, ok)
}
