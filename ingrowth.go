package acd

import (
	"math"
	"sort"
)

// Annual ingrowth after Li et al. (2011; CJFR 41, 2077-2089): a two-part
// model predicting the probability of ingrowth occurring and, conditionally,
// the number of recruits per hectare. Recruits are allocated to species
// groups by a logistic composition model and spread across plots in
// proportion to existing species basal area.

// IngrowthModel selects the coefficient set of the Li et al. two-part model.
type IngrowthModel int

const (
	GNLS IngrowthModel = iota // generalized nonlinear least squares fit
	NLME                      // nonlinear mixed-effects fit
)

// ingrowth species-group crosswalk; birches and spruces are pooled.
var ingrowthCrosswalk = map[int]int{
	531:  531, // american beech
	746:  746, // quaking aspen
	318:  318, // sugar maple
	241:  241, // northern white-cedar
	379:  379, // gray birch
	375:  379, // paper birch
	371:  379, // yellow birch
	12:   12,  // balsam fir
	316:  316, // red maple
	97:   97,  // red spruce
	95:   97,  // black spruce
	94:   97,  // white spruce
	129:  129, // eastern white pine
	9990: 9990,
	9991: 9991,
}

// ingrowth returns recruits per hectare for one annual cycle. With a zero
// cut point the conditional count is scaled by the occurrence probability;
// otherwise ingrowth occurs only when the probability reaches the cut point.
func (s *Stand) ingrowth(model IngrowthModel) float64 {
	var a, b [7]float64
	if model == GNLS {
		a = [7]float64{-0.2116, -0.0255, -0.1396, -0.0054, 0.0433, 0.0409, 0.0}
		b = [7]float64{3.8982, -0.0257, -0.3668, 0.0002, 0.0216, -0.0514, 0.0}
	} else {
		a = [7]float64{-0.08217, 0.1113, -1.2405, -0.2319, 0.03673, -0.7745, -0.1301}
		b = [7]float64{2.8466, -0.03114, -0.2891, 0.003350, 0.2248, -0.08223, -0.03548}
	}

	link := a[0] + a[1]*s.BA + a[2]*(s.BAhw/s.BA) + a[3]*(s.TPH/1000) + a[4]*s.CSI + a[5]*s.MinDBH + a[6]*s.QMD
	pi := 1 / (1 + math.Exp(-link))

	eta := b[0] + b[1]*s.BA + b[2]*(s.BAhw/s.BA) + b[3]*(s.TPH/1000) + b[4]*s.CSI + b[5]*s.MinDBH + b[6]*s.QMD
	iph := math.Exp(eta)

	if s.CutPoint == 0 {
		return iph * pi
	}
	if pi >= s.CutPoint {
		return iph
	}
	return 0
}

// basal area tallies used to allocate ingrowth
type sppBATally struct {
	spp     map[int]float64         // by species
	grp     map[int]float64         // by pooled species group
	plotSpp map[int]map[int]float64 // by plot and species
}

// buildBASppMap tallies basal area by species, pooled species group, and
// plot-species combination. Species outside the ingrowth crosswalk pool
// into the other-softwoods/other-hardwoods groups.
func (s *Stand) buildBASppMap() sppBATally {
	t := sppBATally{
		spp:     map[int]float64{},
		grp:     map[int]float64{},
		plotSpp: map[int]map[int]float64{},
	}
	for _, tr := range s.Trees {
		spp := tr.Spp
		grp, ok := ingrowthCrosswalk[spp]
		if !ok {
			if tr.IsSoftwood() {
				spp, grp = 9991, 9991
			} else {
				spp, grp = 9990, 9990
			}
		}
		t.spp[spp] += tr.BA
		t.grp[grp] += tr.BA
		if t.plotSpp[tr.PlotID] == nil {
			t.plotSpp[tr.PlotID] = map[int]float64{}
		}
		t.plotSpp[tr.PlotID][spp] += tr.BA
	}
	return t
}

func sortedKeys(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// ingrowthComposition allocates iph recruits per hectare across species
// groups, species, and plots, appending one new record at the stand's
// minimum diameter for each plot-species combination present.
func (s *Stand) ingrowthComposition(tally sppBATally, iph float64) error {
	b := [35]float64{
		-2.5645, 0.0020, 2.6624, -0.0010, -0.0127, // birches
		-3.0291, 0.0027, 2.7779, 0.0211, 0.0221, // balsam fir
		-0.6566, 0.0123, 1.7669, -0.0421, -0.0283, // red maple
		-1.2500, -0.0132, 2.0470, -0.0514, 0.0351, // spruces
		-5.1074, -0.0117, 3.8817, 0.0501, 0.0726, // white pine
		-2.9832, -0.0020, 2.4837, 0.0673, -0.0167, // other hardwoods
		-4.7182, 0.0070, 3.2269, 0.1000, 0.0188, // other softwoods
	}

	grpShare := map[int]float64{}
	total := 0.0
	for _, grp := range sortedKeys(tally.grp) {
		pba := tally.grp[grp] / s.BA
		var pct float64
		switch {
		case grp == 379:
			pct = b[0] + b[1]*s.BA + b[2]*pba + b[3]*s.CSI + b[4]*s.MinDBH
		case grp == 12:
			pct = b[5] + b[6]*s.BA + b[7]*pba + b[8]*s.CSI + b[9]*s.MinDBH
		case grp == 316:
			pct = b[10] + b[11]*s.BA + b[12]*pba + b[13]*s.CSI + b[14]*s.MinDBH
		case grp == 97:
			pct = b[15] + b[16]*s.BA + b[17]*pba + b[18]*s.CSI + b[19]*s.MinDBH
		case grp == 129:
			pct = b[20] + b[21]*s.BA + b[22]*pba + b[23]*s.CSI + b[24]*s.MinDBH
		case grp == 9990 || grp == 746 || grp == 531 || grp == 318:
			pct = b[25] + b[26]*s.BA + b[27]*pba + b[28]*s.CSI + b[29]*s.MinDBH
		case grp == 9991:
			pct = b[30] + b[31]*s.BA + b[32]*pba + b[33]*s.CSI + b[34]*s.MinDBH
		}
		pct = 1 / (1 + math.Exp(-pct))
		grpShare[grp] += pct
		total += pct
	}

	for grp := range grpShare {
		grpShare[grp] = grpShare[grp] / total * iph
	}

	plots := make([]int, 0, len(tally.plotSpp))
	for p := range tally.plotSpp {
		plots = append(plots, p)
	}
	sort.Ints(plots)

	for _, spp := range sortedKeys(tally.spp) {
		sba := tally.spp[spp]
		grp := ingrowthCrosswalk[spp]
		sppIngrowth := grpShare[grp] * sba / tally.grp[grp]

		for _, plot := range plots {
			share := tally.plotSpp[plot][spp] / sba
			if share <= 0 {
				continue
			}
			s.maxTreeID++
			t, err := NewTree(s.prm, plot, s.maxTreeID, spp, s.MinDBH, 0, sppIngrowth*share, 0, 0, 0)
			if err != nil {
				return err
			}
			s.Trees = append(s.Trees, t)
		}
	}
	return nil
}
