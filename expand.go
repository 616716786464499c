package acd

import "github.com/maseology/mmaths"

// Tree-record spreading. Records representing more than expandThreshold
// trees/ha are split into multiple records of at most expandThreshold each,
// with a small uniform jitter on diameter and height so the copies separate
// in the competition rankings. collapse reverses the split by density-weighted
// averaging before results are reported.

const expandThreshold = 50.0

func (s *Stand) jitter() float64 {
	return mmaths.LinearTransform(-0.005, 0.005, s.Rng.Float64())
}

// expand splits tree records with density greater than threshold into copies
// of at most threshold trees/ha each. Copies carry ExpandID 1..n, the
// remainder record n+1, and the original record the final id.
func (s *Stand) expand(threshold float64) {
	n := len(s.Trees)
	for i := 0; i < n; i++ {
		t := s.Trees[i]
		if t.TPH <= threshold {
			continue
		}

		nNew := int(t.TPH/threshold) - 1
		cum := threshold
		j := 0
		for ; j < nNew; j++ {
			c := t.clone()
			c.ExpandID = j + 1
			c.DBH += s.jitter()
			if c.Ht > 0 {
				c.Ht += s.jitter()
			}
			c.TPH = threshold
			c.computeAttributes()
			cum += threshold
			s.Trees = append(s.Trees, c)
		}

		if cum < t.TPH {
			c := t.clone()
			j++
			c.ExpandID = j
			c.DBH += s.jitter()
			if c.Ht > 0 {
				c.Ht += s.jitter()
			}
			c.TPH = t.TPH - cum
			c.computeAttributes()
			s.Trees = append(s.Trees, c)
		}

		t.TPH = threshold
		j++
		t.ExpandID = j
		t.computeAttributes()
	}
}

// collapse merges records spread by expand back into single records,
// density-weighting diameter, height, crown base, and crown ratio. Merged-in
// records are zeroed and dropped from the list.
func (s *Stand) collapse() {
	for i, t := range s.Trees {
		if t.ExpandID <= 0 {
			continue
		}

		// first record of the group accumulates, weighted by tph
		t.DBH *= t.TPH
		t.Ht *= t.TPH
		t.HCB *= t.TPH
		t.CR *= t.TPH

		for _, t2 := range s.Trees[i+1:] {
			if t2.PlotID == t.PlotID && t2.TreeID == t.TreeID &&
				t2.ExpandID > 0 && t2.ExpandID != t.ExpandID {
				t.TPH += t2.TPH
				t.DBH += t2.DBH * t2.TPH
				t.Ht += t2.Ht * t2.TPH
				t.HCB += t2.HCB * t2.TPH
				t.CR += t2.CR * t2.TPH
				t2.ExpandID = -1
				t2.TPH = 0
			}
		}

		if t.TPH > 0 {
			t.DBH /= t.TPH
			t.Ht /= t.TPH
			t.HCB /= t.TPH
			t.CR /= t.TPH
			t.ExpandID = 0
			t.computeAttributes()
		}
	}

	kept := s.Trees[:0]
	for _, t := range s.Trees {
		if t.TPH > 0 {
			kept = append(kept, t)
		}
	}
	s.Trees = kept
}
