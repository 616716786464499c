package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"

	acd "github.com/gregjohnsonbiometrics/acd7"
)

// unit conversion factors; stand info files declare their units per stand
const (
	ftM  = 0.3048
	inCm = 2.54
	acHa = 2.47105
)

// unitFactors returns the length, diameter and density conversions to
// metric for a units code (0 = metric, 1 = imperial).
func unitFactors(units int) (fl, fd, fx float64) {
	if units == 0 {
		return 1, 1, 1
	}
	return ftM, inCm, acHa
}

// standJob pairs a built stand with the identity and units needed to
// report its grown tree list.
type standJob struct {
	id    string
	units int
	s     *acd.Stand
}

// projectAll grows every stand concurrently.
func projectAll(jobs []*standJob, nYears int) error {
	uiprogress.Start()
	bar := uiprogress.AddBar(len(jobs)).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return fmt.Sprintf("projecting %d stands", len(jobs))
	})

	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j *standJob) {
			defer wg.Done()
			errs[i] = j.s.Grow(nYears)
			bar.Incr()
		}(i, j)
	}
	wg.Wait()
	uiprogress.Stop()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("stand %s: %w", jobs[i].id, err)
		}
	}
	return nil
}

// writeTreeLists writes the grown tree lists to fp in each stand's
// original units.
func writeTreeLists(fp string, jobs []*standJob) error {
	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	if err := csvw.WriteHead("stand_id,plot_id,tree_id,species,dbh,ht,tpa,cr,form,risk"); err != nil {
		return fmt.Errorf("write %s: %w", fp, err)
	}
	for _, j := range jobs {
		fl, fd, fx := unitFactors(j.units)
		for _, t := range j.s.Trees {
			csvw.WriteLine(j.id, t.PlotID, t.TreeID, t.Spp,
				t.DBH/fd, t.Ht/fl, t.TPH/fx, t.CR, t.Form, t.Risk)
		}
	}
	return nil
}

// recParser walks a comma-separated record left to right, retaining the
// first parse error encountered.
type recParser struct {
	rec []string
	i   int
	err error
}

func (p *recParser) next() string {
	s := strings.TrimSpace(p.rec[p.i])
	p.i++
	return s
}

func (p *recParser) Field() string {
	if p.err != nil {
		return ""
	}
	return p.next()
}

func (p *recParser) Int() int {
	if p.err != nil {
		return 0
	}
	i, s := p.i, p.next()
	v, err := strconv.Atoi(s)
	if err != nil {
		p.err = fmt.Errorf("field %d %q: %w", i+1, s, err)
	}
	return v
}

func (p *recParser) Float() float64 {
	if p.err != nil {
		return 0
	}
	i, s := p.i, p.next()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.err = fmt.Errorf("field %d %q: %w", i+1, s, err)
	}
	return v
}

func (p *recParser) Bool() bool {
	return p.Int() > 0
}
