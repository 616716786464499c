package fiadb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fia.db")

	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer raw.Close()

	for _, stmt := range []string{
		`CREATE TABLE FVS_STANDINIT_PLOT (
			STAND_CN TEXT, BASAL_AREA_FACTOR REAL, BRK_DBH REAL,
			AGE INTEGER, ELEVFT REAL, SITE_INDEX REAL)`,
		`CREATE TABLE FVS_TREEINIT_PLOT (
			STAND_CN TEXT, PLOT_ID INTEGER, TREE_ID INTEGER, TREE_COUNT REAL,
			SPECIES TEXT, DIAMETER REAL, HT REAL, CRRATIO REAL)`,
		`INSERT INTO FVS_STANDINIT_PLOT VALUES ('S1', 0, 5.0, 35, 400, 55)`,
		`INSERT INTO FVS_STANDINIT_PLOT VALUES ('S2', 20, 999, 40, 650, 60)`,
		`INSERT INTO FVS_TREEINIT_PLOT VALUES ('S1', 1, 1, 2, '12', 3.0, 20, 45)`,
		`INSERT INTO FVS_TREEINIT_PLOT VALUES ('S1', 1, 2, 1, '97', 8.0, NULL, NULL)`,
		`INSERT INTO FVS_TREEINIT_PLOT VALUES ('S2', 1, 1, 1, '316', 9.5, 55, 60)`,
		`INSERT INTO FVS_TREEINIT_PLOT VALUES ('S1', 2, 3, 1, 'XX', 6.0, 30, 50)`,
	} {
		_, err := raw.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func TestStand(t *testing.T) {
	db, err := Open(seedTestDB(t))
	require.NoError(t, err)
	defer db.Close()

	s, err := db.Stand(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, 35, s.Age)
	assert.InDelta(t, 400.0, s.ElevFt, 1e-9)
	assert.InDelta(t, 55.0, s.SiteIndex, 1e-9)
	assert.InDelta(t, 5.0, s.BrkDBH, 1e-9)

	_, err = db.Stand(context.Background(), "NOPE")
	require.Error(t, err)
}

func TestTrees(t *testing.T) {
	db, err := Open(seedTestDB(t))
	require.NoError(t, err)
	defer db.Close()

	t.Run("non-numeric species code", func(t *testing.T) {
		s, err := db.Stand(context.Background(), "S1")
		require.NoError(t, err)
		_, err = db.Trees(context.Background(), s)
		require.Error(t, err)
	})

	t.Run("variable-radius design", func(t *testing.T) {
		s, err := db.Stand(context.Background(), "S2")
		require.NoError(t, err)
		trees, err := db.Trees(context.Background(), s)
		require.NoError(t, err)
		require.Len(t, trees, 1)

		// brk_dbh 999 means every record carries the prism expansion
		assert.InDelta(t, variableBAF, trees[0].TPA, 1e-9)
		assert.Equal(t, 316, trees[0].Species)
		assert.InDelta(t, 55.0, trees[0].Ht, 1e-9)
		assert.InDelta(t, 60.0, trees[0].CR, 1e-9)
	})
}

func TestTreeExpansion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fia.db")
	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	for _, stmt := range []string{
		`CREATE TABLE FVS_STANDINIT_PLOT (
			STAND_CN TEXT, BASAL_AREA_FACTOR REAL, BRK_DBH REAL,
			AGE INTEGER, ELEVFT REAL, SITE_INDEX REAL)`,
		`CREATE TABLE FVS_TREEINIT_PLOT (
			STAND_CN TEXT, PLOT_ID INTEGER, TREE_ID INTEGER, TREE_COUNT REAL,
			SPECIES TEXT, DIAMETER REAL, HT REAL, CRRATIO REAL)`,
		`INSERT INTO FVS_STANDINIT_PLOT VALUES ('S1', 0, 5.0, 35, 400, 55)`,
		`INSERT INTO FVS_TREEINIT_PLOT VALUES ('S1', 1, 1, 2, '12', 3.0, 20, 45)`,
		`INSERT INTO FVS_TREEINIT_PLOT VALUES ('S1', 1, 2, 1, '97', 8.0, NULL, NULL)`,
	} {
		_, err := raw.Exec(stmt)
		require.NoError(t, err)
	}
	require.NoError(t, raw.Close())

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	s, err := db.Stand(context.Background(), "S1")
	require.NoError(t, err)
	trees, err := db.Trees(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, trees, 2)

	t.Run("below the breakpoint", func(t *testing.T) {
		assert.InDelta(t, 2*fixedPlotExpf, trees[0].TPA, 1e-9)
	})

	t.Run("above the breakpoint on fixed plots", func(t *testing.T) {
		// zero basal area factor means a fixed-area design: counts stand
		assert.InDelta(t, 1.0, trees[1].TPA, 1e-9)
		assert.Zero(t, trees[1].Ht, "null height reads as zero")
		assert.Zero(t, trees[1].CR, "null crown ratio reads as zero")
	})
}
