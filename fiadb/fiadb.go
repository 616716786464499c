// Package fiadb reads stand and tree initialization data from an FIA
// (Forest Inventory and Analysis) SQLite database in FVS-ready form, i.e.
// the FVS_STANDINIT_PLOT and FVS_TREEINIT_PLOT tables.
package fiadb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// fixed-radius plot expansion factor (trees/ac) applied below the
// breakpoint diameter, and the variable-radius basal area factor
const (
	fixedPlotExpf = 299.8611
	variableBAF   = 24.07219
)

// DB wraps an open FIA SQLite database.
type DB struct {
	db *sql.DB
}

// Open opens the FIA database at path read-only.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("fiadb: open %s: %w", path, err)
	}
	return &DB{db: db}, nil
}

// Close releases the underlying database handle.
func (d *DB) Close() error { return d.db.Close() }

// StandInit is one FVS_STANDINIT_PLOT row. Units are as stored by FVS:
// feet, inches and acres.
type StandInit struct {
	StandCN   string
	BAF       float64 // basal area factor; 0 in the table means fixed-area plots
	BrkDBH    float64 // breakpoint diameter (in); 999 = no variable-radius sampling
	Age       int
	ElevFt    float64
	SiteIndex float64
}

// TreeInit is one FVS_TREEINIT_PLOT row with the plot design already
// expanded into a per-acre density.
type TreeInit struct {
	PlotID  int
	TreeID  int
	Species int     // FIA species code
	DBH     float64 // in
	Ht      float64 // ft; 0 when not measured
	TPA     float64 // trees per acre
	CR      float64 // crown ratio percent; 0 when not measured
}

// Stand reads the stand initialization row for standCN.
func (d *DB) Stand(ctx context.Context, standCN string) (StandInit, error) {
	s := StandInit{StandCN: standCN}
	err := d.db.QueryRowContext(ctx,
		`SELECT BASAL_AREA_FACTOR, BRK_DBH, AGE, ELEVFT, SITE_INDEX
		   FROM FVS_STANDINIT_PLOT WHERE STAND_CN = ?`, standCN).
		Scan(&s.BAF, &s.BrkDBH, &s.Age, &s.ElevFt, &s.SiteIndex)
	if err == sql.ErrNoRows {
		return s, fmt.Errorf("fiadb: stand %s not found", standCN)
	}
	if err != nil {
		return s, fmt.Errorf("fiadb: stand %s: %w", standCN, err)
	}
	return s, nil
}

// Trees reads the tree list for standCN. Tree counts are expanded to
// per-acre densities using the stand's plot design: trees below the
// breakpoint diameter came from the fixed-area subplot, the rest from
// variable-radius prism sampling.
func (d *DB) Trees(ctx context.Context, s StandInit) ([]TreeInit, error) {
	baf := variableBAF
	if s.BAF == 0 {
		baf = 1.0
	}

	rows, err := d.db.QueryContext(ctx,
		`SELECT PLOT_ID, TREE_ID, TREE_COUNT, SPECIES, DIAMETER, HT, CRRATIO
		   FROM FVS_TREEINIT_PLOT WHERE STAND_CN = ?`, s.StandCN)
	if err != nil {
		return nil, fmt.Errorf("fiadb: trees for stand %s: %w", s.StandCN, err)
	}
	defer rows.Close()

	var trees []TreeInit
	for rows.Next() {
		var (
			t     TreeInit
			count float64
			spp   string
			ht    sql.NullFloat64
			cr    sql.NullFloat64
		)
		if err := rows.Scan(&t.PlotID, &t.TreeID, &count, &spp, &t.DBH, &ht, &cr); err != nil {
			return nil, fmt.Errorf("fiadb: trees for stand %s: %w", s.StandCN, err)
		}

		t.Species, err = strconv.Atoi(spp)
		if err != nil {
			return nil, fmt.Errorf("fiadb: stand %s tree %d: species %q is not an FIA code", s.StandCN, t.TreeID, spp)
		}
		t.Ht = ht.Float64
		t.CR = cr.Float64

		if t.DBH < s.BrkDBH && s.BrkDBH != 999 {
			t.TPA = count * fixedPlotExpf
		} else {
			t.TPA = count * baf
		}
		trees = append(trees, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fiadb: trees for stand %s: %w", s.StandCN, err)
	}
	return trees, nil
}
