package acd

import (
	"fmt"
	"math"
)

// mortSbw is the stand-level spruce budworm mortality multiplier, a ratio
// of defoliated to undefoliated mortality driven by stand volume and balsam
// fir basal area. Always >= 1; 1 when no defoliation was supplied.
func (s *Stand) mortSbw() float64 {
	b1, b2, b3, b4 := -2.6380, 0.0114, -0.0076, 0.0074
	if s.Region == "NB" {
		b1, b2, b3, b4 = -3.0893, 0.0071, -0.0037, 0.0
	}

	vol := (s.TopHt / 2) * s.BA
	aa := (1 / (1 + math.Exp(-b1))) * (1 / (1 + math.Exp(-b3*vol)))
	bb := (1 / (1 + math.Exp(-b1))) * (1 / (1 + math.Exp(-(b2*s.CDEF*s.BFBA + b3*vol + b4*s.CDEF))))
	if s.CDEF < 0 || aa <= 0 {
		return 1
	}
	return bb / aa
}

// mortThin is the stand-level post-thinning mortality multiplier (Kuehne
// et al. 2016), decaying with time since thinning.
func (s *Stand) mortThin() float64 {
	if !s.Thin.active(s.Year) {
		return 1
	}
	y30, y31, y32, y33 := 8.3385, -601.3096, 0.5507, 1.5798
	tst := float64(s.Year - s.Thin.Year)
	return 1 + math.Exp(y30+y31/((100*s.Thin.PctRemoved+s.Thin.BAPreThin)+0.01))*
		math.Pow(y32, tst)*math.Pow(tst, y33)
}

// survival computes each record's annual density loss from its survival
// probability and the enabled stand-level mortality multipliers.
func (s *Stand) survival() {
	sbwMod, thinMod := 1.0, 1.0
	if s.UseSBWMod {
		sbwMod = s.mortSbw()
	}
	if s.UseThinMod {
		thinMod = s.mortThin()
	}

	for _, t := range s.Trees {
		t.survivalProb(s.Region, s.BA, s.Thin, s.Year, s.AvgHtHw, s.AvgHtSw,
			s.CDEF, s.UseSBWMod, s.UseHWMod, s.UseThinMod)
		t.dtph = t.TPH * (1 - t.psurv) * sbwMod * thinMod
	}
}

// recomputeStatistics refreshes every derived stand and tree aggregate.
func (s *Stand) recomputeStatistics() error {
	s.computeCCF()
	if err := s.computeBAtphBAL(); err != nil {
		return err
	}
	if err := s.computeCCFL(); err != nil {
		return err
	}
	s.computeTopHt()
	s.computeTreeStatistics()
	s.computeSDIRD()
	return nil
}

// Initialize expands the tree list, imputes missing heights and crown
// bases, and computes all derived statistics. Grow calls it implicitly;
// call it directly to inspect initial-state statistics.
func (s *Stand) Initialize() error {
	if len(s.Trees) == 0 {
		return fmt.Errorf("empty tree list: %w", ErrConfiguration)
	}

	s.expand(expandThreshold)
	s.maxTreeID = s.findMaxTreeID()

	s.computeNSpecies()
	s.computeCCF()
	if err := s.computeBAtphBAL(); err != nil {
		return err
	}
	if err := s.computeCCFL(); err != nil {
		return err
	}

	r := s.regionIndicator()
	for _, t := range s.Trees {
		t.htPred(s.CCF, r, false)
	}

	s.computeTopHt()
	s.predictHCB()

	s.computeTreeStatistics()
	s.computeSDIRD()

	s.initialized = true
	return nil
}

// Grow projects the stand forward nYears annual cycles. Each cycle adds
// ingrowth when enabled, estimates diameter, height and crown recession
// increments and survival for every record, applies them, and refreshes the
// stand statistics. The tree list is collapsed back to its original records
// on return.
func (s *Stand) Grow(nYears int) error {
	if !s.initialized {
		if err := s.Initialize(); err != nil {
			return err
		}
	}

	for i := 0; i < nYears; i++ {
		if s.UseIngrowth {
			if iph := s.ingrowth(GNLS); iph > 0 {
				if err := s.ingrowthComposition(s.buildBASppMap(), iph); err != nil {
					return err
				}
				if err := s.Initialize(); err != nil {
					return err
				}
			}
		}

		for _, t := range s.Trees {
			t.dDBH(s.Region, s.CSI, s.Thin, s.Year, s.AvgDBH10sw, s.TopHt, s.CDEF)
			t.dHT(s.CSI, s.Thin, s.Year, s.AvgDBH10sw, s.TopHt, s.CDEF)
			t.dHCB(s.CCF, s.Thin, s.Year)
		}
		s.survival()

		for _, t := range s.Trees {
			t.applyGrowthMortality()
		}

		if err := s.recomputeStatistics(); err != nil {
			return err
		}

		s.Year++
	}

	s.collapse()
	return nil
}
