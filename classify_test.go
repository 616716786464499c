package acd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskProbability(t *testing.T) {
	t.Run("fitted hardwoods", func(t *testing.T) {
		for _, spp := range []int{316, 318, 371, 833} {
			tr, err := NewTree(nil, 1, 1, spp, 25, 18, 10, 0.5, 0, 0)
			require.NoError(t, err)
			p := tr.RiskProbability()
			assert.Greater(t, p, 0.0)
			assert.Less(t, p, 1.0)
		}
	})

	t.Run("unfitted species", func(t *testing.T) {
		tr, err := NewTree(nil, 1, 1, 12, 25, 18, 10, 0.5, 0, 0)
		require.NoError(t, err)
		assert.Zero(t, tr.RiskProbability())
	})
}

func TestFormProbability(t *testing.T) {
	tr, err := NewTree(nil, 1, 1, 318, 30, 20, 10, 0.5, 0, 0)
	require.NoError(t, err)

	f := tr.FormProbability()
	assert.InDelta(t, 1.0, f.STM+f.LSW+f.MST+f.LF, 1e-9, "class probabilities are normalized")
	for _, p := range []float64{f.STM, f.LSW, f.MST, f.LF} {
		assert.Greater(t, p, 0.0)
	}

	t.Run("unfitted species", func(t *testing.T) {
		bf, err := NewTree(nil, 1, 1, 12, 30, 20, 10, 0.5, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, FormClass{}, bf.FormProbability())
	})
}
