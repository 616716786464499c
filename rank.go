package acd

import (
	"fmt"
	"sort"
)

// Ranked in-larger-trees traversal shared by the BAL and CCFL passes.

// sortIndices returns tree list indices in stable descending order of key,
// so tied records keep their relative input order.
func (s *Stand) sortIndices(key func(*Tree) float64) []int {
	idx := make([]int, len(s.Trees))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return key(s.Trees[idx[a]]) > key(s.Trees[idx[b]])
	})
	return idx
}

// inLargerFold walks ord (descending dbh), accumulating each tree's weight
// into a running total and assigning every tree the total accumulated from
// strictly larger trees. All members of a tied diameter group receive the
// group's pre-accumulation baseline while the running total still takes on
// each member's own contribution, so smaller trees see the whole group.
// The softwood sub-series applies the same tie rule over softwood members
// only; hardwood members read the running softwood total directly. assign
// receives each tree with its total and softwood in-larger values.
func (s *Stand) inLargerFold(ord []int, weight func(*Tree) float64, assign func(t *Tree, tot, sw float64)) error {
	const sentinel = 9999.0

	run, pend, last := 0.0, 0.0, sentinel
	runSW, pendSW, lastSW := 0.0, 0.0, sentinel

	for _, i := range ord {
		t := s.Trees[i]
		w := weight(t)

		var tot float64
		switch {
		case t.DBH < last:
			tot, pend = run, run
			run += w
			last = t.DBH
		case t.DBH == last:
			tot = pend
			run += w
		default:
			return fmt.Errorf("in-larger traversal: dbh %f out of descending order: %w", t.DBH, ErrComputation)
		}

		var sw float64
		if t.IsSoftwood() {
			switch {
			case t.DBH < lastSW:
				sw, pendSW = runSW, runSW
				runSW += w
				lastSW = t.DBH
			case t.DBH == lastSW:
				sw = pendSW
				runSW += w
			default:
				return fmt.Errorf("in-larger traversal: softwood dbh %f out of descending order: %w", t.DBH, ErrComputation)
			}
		} else {
			sw = runSW
		}

		assign(t, tot, sw)
	}
	return nil
}
