package acd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	s := newTestStand(t)
	require.NoError(t, s.AddTree(1, 1, 12, 15, 12, 120, 0.5, 0, 0))

	s.expand(expandThreshold)

	require.Len(t, s.Trees, 3, "120 tph splits into two full records and a remainder")

	var total float64
	ids := map[int]bool{}
	for _, tr := range s.Trees {
		assert.LessOrEqual(t, tr.TPH, expandThreshold)
		assert.Greater(t, tr.TPH, 0.0)
		assert.Equal(t, 1, tr.TreeID, "expansion keeps the source tree id")
		assert.InDelta(t, 15, tr.DBH, 0.01, "jitter stays within its bounds")
		ids[tr.ExpandID] = true
		total += tr.TPH
	}
	assert.InDelta(t, 120, total, 1e-9, "expansion conserves density")
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, ids)
}

func TestExpandLeavesSmallRecordsAlone(t *testing.T) {
	s := newTestStand(t)
	require.NoError(t, s.AddTree(1, 1, 12, 15, 12, 50, 0.5, 0, 0))

	s.expand(expandThreshold)
	require.Len(t, s.Trees, 1)
	assert.Zero(t, s.Trees[0].ExpandID)
}

func TestCollapseRoundTrip(t *testing.T) {
	s := newTestStand(t)
	require.NoError(t, s.AddTree(1, 1, 12, 15, 12, 180, 0.5, 0, 0))
	require.NoError(t, s.AddTree(1, 2, 97, 20, 16, 30, 0.6, 0, 0))

	s.expand(expandThreshold)
	require.Greater(t, len(s.Trees), 2)
	s.collapse()

	require.Len(t, s.Trees, 2)
	merged := s.Trees[0]
	assert.Equal(t, 0, merged.ExpandID)
	assert.InDelta(t, 180, merged.TPH, 1e-9)
	assert.InDelta(t, 15, merged.DBH, 0.01)
	assert.InDelta(t, 12, merged.Ht, 0.01)
	assert.InDelta(t, 0.5, merged.CR, 0.01)

	untouched := s.Trees[1]
	assert.Equal(t, 2, untouched.TreeID)
	assert.InDelta(t, 30, untouched.TPH, 1e-9)
	assert.InDelta(t, 20, untouched.DBH, 1e-9)
}
