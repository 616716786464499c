package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/maseology/mmio"
	"github.com/spf13/cobra"

	acd "github.com/gregjohnsonbiometrics/acd7"
)

func csvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "csv <stand-info.csv>",
		Short: "project stands from csv tree lists",
		Long: `Reads a stand information file with one record per stand:

  region,stand_id,units,year,csi,elev,cdef,use_sbw,use_hw,use_thin,use_ingrowth,cut_point,min_dbh

and, for each stand, a tree list named <stand_id>.csv in the same
directory with records:

  stand_id,plot_id,tree_id,species,dbh,ht,expf,cr,form,risk

Units code 0 is metric, 1 imperial; imperial inputs are converted on
read and the grown tree list is reported back in imperial.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tt := mmio.NewTimer()
			defer tt.Lap("\nprojection complete")

			jobs, err := loadCSVStands(args[0])
			if err != nil {
				return err
			}
			if err := projectAll(jobs, nYears); err != nil {
				return err
			}
			return writeTreeLists(outFile, jobs)
		},
	}
}

// loadCSVStands parses the stand information file and each stand's tree
// list file.
func loadCSVStands(fp string) ([]*standJob, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var jobs []*standJob
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		if len(rec) < 13 {
			return nil, fmt.Errorf("%s: stand record needs 13 fields, found %d", fp, len(rec))
		}

		p := recParser{rec: rec}
		region := p.Field()
		id := p.Field()
		units := p.Int()
		year := p.Int()
		csi := p.Float()
		elev := p.Float()
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

		fl, _, _ := unitFactors(units)
		s, err := acd.NewStand(nil, region, year, csi*fl, elev*fl, cdef,
			useSbw, useHw, useThin, useIngrowth, cutPoint, minDBH)
		if err != nil {
			return nil, fmt.Errorf("stand %s: %w", id, err)
		}

		if err := loadTreeList(filepath.Join(filepath.Dir(fp), id+".csv"), id, units, s); err != nil {
			return nil, err
		}
		jobs = append(jobs, &standJob{id: id, units: units, s: s})
	}
	return jobs, nil
}

// loadTreeList reads a stand's tree list file into s, converting imperial
// measurements to metric.
func loadTreeList(fp, standID string, units int, s *acd.Stand) error {
	f, err := os.Open(fp)
	if err != nil {
		return err
	}
	defer f.Close()

	fl, fd, fx := unitFactors(units)
	line := 1
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		line++
		if len(rec) < 10 {
			return fmt.Errorf("%s line %d: tree record needs 10 fields, found %d", fp, line, len(rec))
		}

		p := recParser{rec: rec}
		if sid := p.Field(); sid != standID {
			return fmt.Errorf("%s line %d: stand id %q does not match %q", fp, line, sid, standID)
		}
		plot := p.Int()
		tree := p.Int()
		spp := p.Int()
		dbh := p.Float()
		ht := p.Float()
		expf := p.Float()
		cr := p.Float()
		form := p.Int()
		risk := p.Int()
		if p.err != nil {
			return fmt.Errorf("%s line %d: %w", fp, line, p.err)
		}

		if err := s.AddTree(plot, tree, spp, dbh*fd, ht*fl, expf*fx, cr, form, risk); err != nil {
			return fmt.Errorf("%s line %d: %w", fp, line, err)
		}
	}
	return nil
}
