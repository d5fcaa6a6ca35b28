package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float64{0.3, -1.2, 4.5, 2}
		sim, err := CosineSimilarity(v, v)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, sim, 1e-9)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		sim, err := CosineSimilarity([]float64{1, 0, 0}, []float64{0, 1, 0})
		require.NoError(t, err)
		assert.Equal(t, 0.0, sim)
	})

	t.Run("45 degrees", func(t *testing.T) {
		sim, err := CosineSimilarity([]float64{1, 0, 0}, []float64{1, 1, 0})
		require.NoError(t, err)
		assert.InDelta(t, 1/math.Sqrt2, sim, 1e-8)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		sim, err := CosineSimilarity([]float64{1, 2}, []float64{-1, -2})
		require.NoError(t, err)
		assert.InDelta(t, -1.0, sim, 1e-9)
	})

	t.Run("zero vector yields zero", func(t *testing.T) {
		sim, err := CosineSimilarity([]float64{0, 0, 0}, []float64{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, 0.0, sim)
		assert.False(t, math.IsNaN(sim))
	})
}

func TestEuclideanDistance(t *testing.T) {
	t.Run("same vector", func(t *testing.T) {
		v := []float64{1.5, 2.5, -3}
		dist, err := EuclideanDistance(v, v)
		require.NoError(t, err)
		assert.Equal(t, 0.0, dist)
	})

	t.Run("unit axes", func(t *testing.T) {
		dist, err := EuclideanDistance([]float64{1, 0, 0}, []float64{0, 1, 0})
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt2, dist, 1e-12)
	})

	t.Run("one step", func(t *testing.T) {
		dist, err := EuclideanDistance([]float64{1, 0, 0}, []float64{1, 1, 0})
		require.NoError(t, err)
		assert.Equal(t, 1.0, dist)
	})
}

func TestInvalidArguments(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
	}{
		{"different lengths", []float64{1, 2, 3}, []float64{1, 2}},
		{"first empty", []float64{}, []float64{1}},
		{"second empty", []float64{1}, nil},
		{"both empty", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CosineSimilarity(tc.a, tc.b)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			_, err = EuclideanDistance(tc.a, tc.b)
			require.Error(t, err)
			assert.True(t, IsInvalidArgumentError(err))

			_, err = DotProduct(tc.a, tc.b)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestDotProductAndNorm(t *testing.T) {
	dot, err := DotProduct([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, dot)

	assert.Equal(t, 5.0, Norm([]float64{3, 4}))
	assert.Equal(t, 0.0, Norm(nil))
}
