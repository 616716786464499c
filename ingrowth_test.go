package acd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIngrowthStand(t *testing.T) *Stand {
	t.Helper()
	s, err := NewStand(nil, "ME", 0, 16, 100, -1, false, false, false, true, 0, 3)
	require.NoError(t, err)
	require.NoError(t, s.AddTree(1, 1, 12, 18, 14, 30, 0.6, 0, 0))
	require.NoError(t, s.AddTree(1, 2, 316, 14, 11, 25, 0.5, 0, 0))
	require.NoError(t, s.AddTree(2, 3, 97, 22, 17, 20, 0.6, 0, 0))
	require.NoError(t, s.Initialize())
	return s
}

func TestIngrowthRate(t *testing.T) {
	s := newIngrowthStand(t)

	t.Run("zero cut point scales by occurrence probability", func(t *testing.T) {
		iph := s.ingrowth(GNLS)
		assert.Greater(t, iph, 0.0)
	})

	t.Run("unreachable cut point suppresses ingrowth", func(t *testing.T) {
		s.CutPoint = 1.0
		assert.Zero(t, s.ingrowth(GNLS))
		s.CutPoint = 0
	})

	t.Run("model fits differ", func(t *testing.T) {
		assert.NotEqual(t, s.ingrowth(GNLS), s.ingrowth(NLME))
	})
}

func TestBASppTally(t *testing.T) {
	s := newIngrowthStand(t)
	tally := s.buildBASppMap()

	bf := s.Trees[0].BA
	rm := s.Trees[1].BA
	rs := s.Trees[2].BA

	assert.InDelta(t, bf, tally.spp[12], 1e-9)
	assert.InDelta(t, rm, tally.spp[316], 1e-9)
	assert.InDelta(t, rs, tally.grp[97], 1e-9)
	assert.InDelta(t, bf, tally.plotSpp[1][12], 1e-9)
	assert.InDelta(t, rs, tally.plotSpp[2][97], 1e-9)

	t.Run("unenumerated species pool into the generic groups", func(t *testing.T) {
		require.NoError(t, s.AddTree(1, 4, 541, 12, 10, 10, 0.5, 0, 0)) // white ash
		require.NoError(t, s.AddTree(2, 5, 261, 16, 12, 10, 0.6, 0, 0)) // eastern hemlock
		require.NoError(t, s.Initialize())

		tally := s.buildBASppMap()
		assert.Greater(t, tally.grp[9990], 0.0)
		assert.Greater(t, tally.grp[9991], 0.0)
	})
}

func TestIngrowthComposition(t *testing.T) {
	s := newIngrowthStand(t)
	before := len(s.Trees)
	maxID := s.findMaxTreeID()

	const iph = 25.0
	require.NoError(t, s.ingrowthComposition(s.buildBASppMap(), iph))

	recruits := s.Trees[before:]
	require.NotEmpty(t, recruits)

	var total float64
	for _, tr := range recruits {
		assert.Equal(t, s.MinDBH, tr.DBH, "recruits enter at the minimum diameter")
		assert.Zero(t, tr.Ht)
		assert.Zero(t, tr.CR)
		assert.Greater(t, tr.TPH, 0.0)
		assert.Greater(t, tr.TreeID, maxID, "recruits get fresh tree ids")
		total += tr.TPH
	}
	assert.InDelta(t, iph, total, 1e-9, "allocation conserves the ingrowth rate")

	t.Run("recruits only land on plots holding their species", func(t *testing.T) {
		for _, tr := range recruits {
			switch tr.Spp {
			case 12, 316:
				assert.Equal(t, 1, tr.PlotID)
			case 97:
				assert.Equal(t, 2, tr.PlotID)
			}
		}
	})
}

func TestGrowWithIngrowth(t *testing.T) {
	s := newIngrowthStand(t)
	n := len(s.Trees)
	require.NoError(t, s.Grow(2))
	assert.Greater(t, len(s.Trees), n, "ingrowth must add records")
}
