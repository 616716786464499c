package acd

import "math"

// Stand statistics passes. Order matters: BAL before CCFL (CCFL reuses the
// same traversal machinery and needs crown dimensions), top height and
// summary statistics before SDI/RD.

// computeBAtphBAL computes total and species-group basal area, trees per
// hectare, quadratic mean diameter, and basal area in larger trees with its
// softwood/hardwood split.
func (s *Stand) computeBAtphBAL() error {
	s.BA, s.BAsw, s.BAhw = 0, 0, 0
	s.BFBA, s.ITHWBA = 0, 0
	s.TPH = 0

	ord := s.sortIndices(func(t *Tree) float64 { return t.DBH })
	for _, i := range ord {
		t := s.Trees[i]
		s.BA += t.BA
		s.TPH += t.TPH
		if t.IsSoftwood() {
			s.BAsw += t.BA
		} else {
			s.BAhw += t.BA
			if t.Shade() < 2 {
				s.ITHWBA += t.BA
			}
		}
		if t.Spp == 12 {
			s.BFBA += t.BA
		}
	}

	if err := s.inLargerFold(ord, func(t *Tree) float64 { return t.BA },
		func(t *Tree, tot, sw float64) {
			t.BAL, t.BALsw = tot, sw
			t.BALhw = tot - sw
		}); err != nil {
		return err
	}

	if s.TPH > 0 {
		s.QMD = math.Sqrt(s.BA / s.TPH / bacf)
	} else {
		s.QMD = 0
	}
	return nil
}

// computeCCFL computes crown competition factor in larger trees; requires
// mcw/mca to be populated.
func (s *Stand) computeCCFL() error {
	ord := s.sortIndices(func(t *Tree) float64 { return t.DBH })
	return s.inLargerFold(ord, func(t *Tree) float64 { return t.MCA },
		func(t *Tree, tot, sw float64) {
			t.CCFL, t.CCFLsw = tot, sw
			t.CCFLhw = tot - sw
		})
}

// computeCCF sums maximum crown area over the tree list.
func (s *Stand) computeCCF() {
	s.CCF = 0
	for _, t := range s.Trees {
		s.CCF += t.MCA
	}
}

// predictHCB fills missing heights to crown base, from crown ratio where
// recorded, otherwise from the hcb model (which recomputes crown ratio).
func (s *Stand) predictHCB() {
	for _, t := range s.Trees {
		if t.HCB == 0 {
			if t.CR > 0 {
				t.HCB = (1 - t.CR) * t.Ht
			} else {
				t.hcbPred(s.CCF)
			}
		}
	}
}

// computeTreeStatistics computes density-weighted diameter/height means and
// dispersions, specific gravity means, observed diameter extremes, and the
// stand density index sums.
func (s *Stand) computeTreeStatistics() {
	s.AvgDBH, s.AvgDBH10 = 0, 0
	s.AvgDBHsw, s.AvgDBHhw = 0, 0
	s.AvgDBH10sw, s.AvgDBH10hw = 0, 0
	s.AvgHtSw, s.AvgHtHw = 0, 0
	s.AvgSG, s.AvgSG10 = 0, 0
	s.MinDBHObs, s.MinDBH10Obs, s.MaxDBHObs = 9999, 9999, 0
	s.SDI, s.SDI10 = 0, 0

	var tphSw, tphHw, tph10, dbh2, dbh102 float64

	for _, t := range s.Trees {
		s.AvgDBH += t.DBH * t.TPH
		s.SDI += math.Pow(t.DBH/25.4, 1.6) * t.TPH

		if t.DBH >= 10 {
			s.AvgDBH10 += t.DBH * t.TPH
			dbh102 += t.DBH * t.DBH * t.TPH
			tph10 += t.TPH
			s.SDI10 += math.Pow(t.DBH/25.4, 1.6) * t.TPH
			s.AvgSG10 += t.SG() * t.TPH
			if t.DBH < s.MinDBH10Obs {
				s.MinDBH10Obs = t.DBH
			}
		}

		dbh2 += t.DBH * t.DBH * t.TPH
		s.AvgSG += t.SG() * t.TPH

		if t.IsSoftwood() {
			s.AvgDBHsw += t.DBH * t.TPH
			if t.DBH >= 10 {
				s.AvgDBH10sw += t.DBH * t.TPH
			}
			s.AvgHtSw += t.Ht * t.TPH
			tphSw += t.TPH
		} else {
			s.AvgDBHhw += t.DBH * t.TPH
			if t.DBH >= 10 {
				s.AvgDBH10hw += t.DBH * t.TPH
			}
			s.AvgHtHw += t.Ht * t.TPH
			tphHw += t.TPH
		}

		if t.DBH > s.MaxDBHObs {
			s.MaxDBHObs = t.DBH
		}
		if t.DBH < s.MinDBHObs {
			s.MinDBHObs = t.DBH
		}
	}

	if s.TPH > 0 {
		s.AvgDBH /= s.TPH
		dbh2 /= s.TPH
		s.DBHsd = math.Sqrt((dbh2 - s.AvgDBH*s.AvgDBH) * s.TPH / (s.TPH - 1))
		s.AvgSG /= s.TPH
	}
	if tph10 > 0 {
		s.AvgDBH10 /= tph10
		dbh102 /= tph10
		s.DBH10sd = math.Sqrt((dbh102 - s.AvgDBH10*s.AvgDBH10) * tph10 / (tph10 - 1))
		s.AvgSG10 /= tph10
	}
	if tphSw > 0 {
		s.AvgDBHsw /= tphSw
		s.AvgDBH10sw /= tphSw
		s.AvgHtSw /= tphSw
	}
	if tphHw > 0 {
		s.AvgDBHhw /= tphHw
		s.AvgDBH10hw /= tphHw
		s.AvgHtHw /= tphHw
	}
}

// computeTopHt computes the density-weighted mean height of the tallest
// 100 trees/ha, weighting the boundary record by only the fraction needed
// to reach exactly 100.
func (s *Stand) computeTopHt() {
	sumTPH, sumHt := 0.0, 0.0
	for _, i := range s.sortIndices(func(t *Tree) float64 { return t.Ht }) {
		t := s.Trees[i]
		switch {
		case sumTPH+t.TPH <= 100:
			sumHt += t.Ht * t.TPH
			sumTPH += t.TPH
		case sumTPH < 100:
			sumHt += t.Ht * (100 - sumTPH)
			sumTPH = 100
		}
	}
	if sumTPH > 0 {
		s.TopHt = sumHt / sumTPH
	} else {
		s.TopHt = 0
	}
}

// computeNSpecies counts unique species in the tree list.
func (s *Stand) computeNSpecies() {
	spp := make(map[int]struct{}, len(s.Trees))
	for _, t := range s.Trees {
		spp[t.Spp] = struct{}{}
	}
	s.NSpecies = len(spp)
}

// computeSDIRD derives stand density index and relative density for all
// trees and for the 10 cm+ subset from the Weiskittel & Kuehne (2019)
// maximum-density ceilings. The primary/fallback substitution is
// deliberately asymmetric between the two variants; this reproduces the
// published model's behavior.
func (s *Stand) computeSDIRD() {
	dbhRange := 0.0
	if s.MinDBHObs < s.MaxDBHObs {
		dbhRange = s.MaxDBHObs - s.MinDBHObs
	}
	dbh10Range := 0.0
	if s.MinDBH10Obs < s.MaxDBHObs {
		dbh10Range = s.MaxDBHObs - s.MinDBH10Obs
	}

	meanSG := math.Max(s.AvgSG, 0.80)
	meanSG10 := math.Max(s.AvgSG10, 0.80)

	sdiMax2 := 1347.445 - 1003.870*meanSG

	// 10 cm+ trees
	sdiMax := 475.2079 - 1.5908*(s.BAhw/s.BA) - 236.9051*math.Log(meanSG10) +
		50.3299*math.Sqrt(dbh10Range) + 13.5202*float64(s.NSpecies) +
		0.0685*s.Elevation - 2.8537*math.Sqrt(s.Elevation) + 222.7836*(1/s.CSI)
	if sdiMax > 0 {
		sdiMax = sdiMax2
	}
	s.RD10 = s.SDI10 / sdiMax

	// all trees
	sdiMaxAll := 475.2079 - 1.5908*(s.BAhw/s.BA) - 236.9051*math.Log(meanSG) +
		50.3299*math.Sqrt(dbhRange) + 13.5202*float64(s.NSpecies) +
		0.0685*s.Elevation - 2.8537*math.Sqrt(s.Elevation) + 222.7836*(1/s.CSI)
	if sdiMaxAll <= 0 {
		sdiMaxAll = sdiMax2
	}
	s.RD = s.SDI / sdiMaxAll
}
