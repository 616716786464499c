package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/maseology/mmio"
	"github.com/spf13/cobra"

	acd "github.com/gregjohnsonbiometrics/acd7"
	"github.com/gregjohnsonbiometrics/acd7/fiadb"
)

func fiaCmd() *cobra.Command {
	var (
		dbPath string
		region string
	)
	cmd := &cobra.Command{
		Use:   "fia <stand-info.csv>",
		Short: "project stands from an FIA SQLite database",
		Long: `Reads stand and tree initialization data from an FVS-ready FIA SQLite
database. The stand information file holds one record per stand:

  stand_id,csi,cdef,use_sbw,use_hw,use_thin,use_ingrowth,cut_point,min_dbh

where stand_id is the FIA STAND_CN value. A zero csi falls back to the
database site index. FIA data is imperial; the grown tree lists are
reported back in imperial.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tt := mmio.NewTimer()
			defer tt.Lap("\nprojection complete")

			jobs, err := loadFIAStands(cmd.Context(), dbPath, region, args[0])
			if err != nil {
				return err
			}
			if err := projectAll(jobs, nYears); err != nil {
				return err
			}
			return writeTreeLists(outFile, jobs)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "FIADB.db", "FIA SQLite database path")
	cmd.Flags().StringVar(&region, "region", "ME", "region code for all stands (ME or NB)")
	return cmd
}

// loadFIAStands builds one stand per stand info record from the FIA
// database.
func loadFIAStands(ctx context.Context, dbPath, region, fp string) ([]*standJob, error) {
	db, err := fiadb.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var jobs []*standJob
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		if len(rec) < 9 {
			return nil, fmt.Errorf("%s: stand record needs 9 fields, found %d", fp, len(rec))
		}

		p := recParser{rec: rec}
		id := p.Field()
		csi := p.Float()
		cdef := p.Float()
		useSbw := p.Bool()
		useHw := p.Bool()
		useThin := p.Bool()
		useIngrowth := p.Bool()
		cutPoint := p.Float()
		minDBH := p.Float()
		if p.err != nil {
			return nil, fmt.Errorf("%s: stand %s: %w", fp, id, p.err)
		}

		si, err := db.Stand(ctx, id)
		if err != nil {
			return nil, err
		}

		// use the database site index only when no csi was supplied
		if si.SiteIndex > 1 && csi == 0 {
			csi = si.SiteIndex * ftM
		}

		s, err := acd.NewStand(nil, region, si.Age, csi, si.ElevFt*ftM, cdef,
			useSbw, useHw, useThin, useIngrowth, cutPoint, minDBH)
		if err != nil {
			return nil, fmt.Errorf("stand %s: %w", id, err)
		}

		trees, err := db.Trees(ctx, si)
		if err != nil {
			return nil, err
		}
		for _, t := range trees {
			if err := s.AddTree(t.PlotID, t.TreeID, t.Species,
				t.DBH*inCm, t.Ht*ftM, t.TPA*acHa, t.CR/100, 0, 0); err != nil {
				return nil, fmt.Errorf("stand %s tree %d: %w", id, t.TreeID, err)
			}
		}
		jobs = append(jobs, &standJob{id: id, units: 1, s: s})
	}
	return jobs, nil
}
