package acd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStand(t *testing.T) *Stand {
	t.Helper()
	s, err := NewStand(nil, "ME", 0, 16, 100, -1, false, false, false, false, 0, 3)
	require.NoError(t, err)
	return s
}

func TestNewStand(t *testing.T) {
	t.Run("unknown region", func(t *testing.T) {
		_, err := NewStand(nil, "XX", 0, 16, 0, -1, false, false, false, false, 0, 3)
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("non-positive site index", func(t *testing.T) {
		_, err := NewStand(nil, "ME", 0, 0, 0, -1, false, false, false, false, 0, 3)
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("valid", func(t *testing.T) {
		s, err := NewStand(nil, "NB", 10, 18, 250, 30, true, true, true, true, 0.5, 3)
		require.NoError(t, err)
		assert.Equal(t, -1, s.Thin.Year)
		assert.NotNil(t, s.Rng)
	})

	t.Run("unresolvable species", func(t *testing.T) {
		s := newTestStand(t)
		err := s.AddTree(1, 1, 9999, 10, 8, 20, 0.5, 0, 0)
		require.ErrorIs(t, err, ErrSpeciesResolution)
	})
}

func TestCompetitionRanks(t *testing.T) {
	s := newTestStand(t)
	// descending dbh: 30 sw, 20 hw, 20 sw (tied), 10 sw
	require.NoError(t, s.AddTree(1, 1, 12, 30, 20, 10, 0.6, 0, 0))
	require.NoError(t, s.AddTree(1, 2, 316, 20, 15, 10, 0.5, 0, 0))
	require.NoError(t, s.AddTree(1, 3, 97, 20, 16, 10, 0.5, 0, 0))
	require.NoError(t, s.AddTree(1, 4, 12, 10, 8, 10, 0.6, 0, 0))
	require.NoError(t, s.Initialize())

	ba30 := 30 * 30 * bacf * 10.0
	ba20 := 20 * 20 * bacf * 10.0

	t1, t2, t3, t4 := s.Trees[0], s.Trees[1], s.Trees[2], s.Trees[3]

	t.Run("largest tree has no competition above", func(t *testing.T) {
		assert.Zero(t, t1.BAL)
		assert.Zero(t, t1.BALsw)
	})

	t.Run("tied diameters share the group baseline", func(t *testing.T) {
		assert.InDelta(t, ba30, t2.BAL, 1e-9)
		assert.InDelta(t, ba30, t3.BAL, 1e-9)
		// the tied softwood still sees the whole softwood total above it
		assert.InDelta(t, ba30, t3.BALsw, 1e-9)
	})

	t.Run("smaller trees see the whole tied group", func(t *testing.T) {
		assert.InDelta(t, ba30+2*ba20, t4.BAL, 1e-9)
		assert.InDelta(t, ba30+ba20, t4.BALsw, 1e-9)
	})

	t.Run("softwood and hardwood components sum to the total", func(t *testing.T) {
		for _, tr := range s.Trees {
			assert.InDelta(t, tr.BAL, tr.BALsw+tr.BALhw, 1e-9)
			assert.InDelta(t, tr.CCFL, tr.CCFLsw+tr.CCFLhw, 1e-9)
		}
	})

	t.Run("stand aggregates", func(t *testing.T) {
		assert.InDelta(t, ba30+2*ba20+10*10*bacf*10, s.BA, 1e-9)
		assert.InDelta(t, 40.0, s.TPH, 1e-9)
		assert.Equal(t, 3, s.NSpecies)
	})
}

func TestTopHeight(t *testing.T) {
	s := newTestStand(t)
	// records at 50 trees/ha stay below the expansion threshold, so no
	// height jitter disturbs the exact weighted mean
	require.NoError(t, s.AddTree(1, 1, 12, 30, 20, 50, 0.6, 0, 0))
	require.NoError(t, s.AddTree(1, 2, 12, 25, 15, 40, 0.6, 0, 0))
	require.NoError(t, s.AddTree(1, 3, 12, 20, 10, 50, 0.6, 0, 0))
	require.NoError(t, s.Initialize())

	// 50 trees at 20 m, 40 at 15 m, and 10 of the 10 m record fill the
	// 100 tph cohort
	want := (50*20.0 + 40*15.0 + 10*10.0) / 100
	assert.InDelta(t, want, s.TopHt, 1e-9)
}

func TestGrowSingleBalsamFir(t *testing.T) {
	s := newTestStand(t)
	require.NoError(t, s.AddTree(1, 1, 12, 10, 8, 40, 0.6, 0, 0))
	require.NoError(t, s.Grow(1))

	require.Len(t, s.Trees, 1)
	tr := s.Trees[0]

	assert.Greater(t, tr.DBH, 10.0, "diameter must increase")
	assert.Greater(t, tr.Ht, 8.0, "height must increase")
	assert.LessOrEqual(t, tr.TPH, 40.0, "density can only decline")
	assert.Greater(t, tr.TPH, 39.0, "an open-grown tree suffers little mortality")
	assert.LessOrEqual(t, tr.HCB, tr.Ht, "crown base cannot exceed total height")
	assert.Equal(t, 1, s.Year)
}

func TestDenserStandsGrowSlower(t *testing.T) {
	open := newTestStand(t)
	require.NoError(t, open.AddTree(1, 1, 12, 10, 8, 40, 0.6, 0, 0))
	require.NoError(t, open.Grow(3))

	dense := newTestStand(t)
	require.NoError(t, dense.AddTree(1, 1, 12, 10, 8, 40, 0.6, 0, 0))
	require.NoError(t, dense.AddTree(1, 2, 97, 30, 22, 300, 0.6, 0, 0))
	require.NoError(t, dense.Grow(3))

	var subject *Tree
	for _, tr := range dense.Trees {
		if tr.TreeID == 1 {
			subject = tr
		}
	}
	require.NotNil(t, subject)

	assert.Less(t, subject.DBH, open.Trees[0].DBH, "competition must slow diameter growth")
	assert.Less(t, subject.TPH, open.Trees[0].TPH, "competition must raise mortality")
}

func TestMissingHeightsAreImputed(t *testing.T) {
	s := newTestStand(t)
	require.NoError(t, s.AddTree(1, 1, 12, 18, 14, 20, 0.6, 0, 0))
	require.NoError(t, s.AddTree(1, 2, 12, 15, 0, 20, 0, 0, 0))
	require.NoError(t, s.Initialize())

	tr := s.Trees[1]
	assert.Greater(t, tr.Ht, 1.37, "imputed height must exceed breast height")
	assert.Greater(t, tr.HCB, 0.0, "crown base must be predicted when no crown ratio was recorded")
	assert.Less(t, tr.HCB, tr.Ht)
	assert.InDelta(t, (tr.Ht-tr.HCB)/tr.Ht, tr.CR, 1e-9)
}

func TestThinningModifierBounds(t *testing.T) {
	tr, err := NewTree(nil, 1, 1, 12, 15, 12, 20, 0.6, 0, 0)
	require.NoError(t, err)

	th := Thinning{Year: 0, PctRemoved: 0.3, BAPreThin: 30, QMDRatio: 1.1}
	for year := 1; year <= 10; year++ {
		m := tr.dDBHThin(th, year)
		assert.GreaterOrEqual(t, m, 0.75)
		assert.LessOrEqual(t, m, 1.25)
	}

	t.Run("inactive before the thinning year", func(t *testing.T) {
		assert.Equal(t, 1.0, tr.dDBHThin(Thinning{Year: 5, PctRemoved: 0.3, BAPreThin: 30, QMDRatio: 1.1}, 2))
		assert.Equal(t, 1.0, tr.dDBHThin(Thinning{Year: -1}, 2))
	})
}
