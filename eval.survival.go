package acd

import "math"

// Tree-level annual survival and its modifiers. Each modifier is a
// before/after mortality ratio; modifiers cannot raise the survival
// probability above 1.

// survivalProb computes the annual survival probability from a
// complementary log-log model over diameter and BAL, adjusted by the
// enabled spruce budworm, hardwood form/risk and thinning modifiers.
func (t *Tree) survivalProb(region string, ba float64, th Thinning, year int,
	avgHtHw, avgHtSw, cdef float64, useSbw, useHw, useThin bool) {

	m := t.p.Mort
	t.psurv = 1 - math.Exp(-math.Exp(-m[0]+m[1]*(math.Pow(t.DBH, m[2])/(t.BAL+1))))

	sbwMod, hwMod, thinMod := 1.0, 1.0, 1.0
	if useSbw {
		sbwMod = t.survSbw(region, avgHtSw, cdef)
	}
	if useHw {
		hwMod = t.survHw(ba)
	}
	if useThin {
		thinMod = t.survThin(th, year)
	}

	t.psurv *= sbwMod * (1 / thinMod) * hwMod
	if t.psurv > 1 {
		t.psurv = 1
	}
}

// survSbw is the spruce budworm survival modifier (Chen et al. 2017),
// operative for spruce-fir when cumulative defoliation is supplied.
func (t *Tree) survSbw(region string, avgHtSw, cdef float64) float64 {
	if !(t.Spp == 12 || t.Spp == 94 || t.Spp == 95 || t.Spp == 97) || cdef < 0 {
		return 1
	}

	var b1, b2, b3, b4, b5, b6, b7, b8 float64
	if region == "NB" {
		b1, b2, b4, b6, b7 = -6.8310, 0.0000, 0.2025, 0.0000, 0.0000
		switch t.Spp {
		case 12:
			b3, b5, b8 = -0.2285, 2.1703, 0.0029
		case 97, 95:
			b3, b5, b8 = -0.2285, 2.0809, 0.0101
		case 94:
			b3, b5, b8 = -0.2285, 1.5802, 0.0021
		}
	} else {
		b1, b2, b4, b6, b7 = -6.5208, -0.4866, 0.0316, -0.0175, 0.0274
		switch t.Spp {
		case 12:
			b3, b5, b8 = -0.0355, 1.5087, 0.0040
		case 97, 95:
			b3, b5, b8 = -0.1231, 1.5087, 0.0056
		case 94:
			b3, b5, b8 = -0.1755, 1.5087, 0.0207
		}
	}

	x := b1 + b2*t.CR + b3*t.DBH + b4*avgHtSw + b5*(t.Ht/avgHtSw) + b6*t.BALsw + b7*t.BALhw
	mortA := 1 - math.Exp(-math.Exp(x))
	mortB := 1 - math.Exp(-math.Exp(x+b8*cdef))

	mod := 1.0
	if mortA > 0 {
		mod = (1 - mortB) / (1 - mortA)
	}
	return math.Min(mod, 1)
}

// survHw is the hardwood form and risk survival modifier
// (Castle et al. 2017), operative for RO, YB, RM, PB and QA.
func (t *Tree) survHw(ba float64) float64 {
	if t.Form < 1 || t.Form > 8 {
		return 1
	}
	if !(t.Spp == 833 || t.Spp == 371 || t.Spp == 316 || t.Spp == 375 || t.Spp == 746) {
		return 1
	}

	const b0, b1, b2, b3 = 15.1991, -0.1509, -0.1232, -1.4053
	b4, b6 := 3.3082, 0.0000
	var b5 float64

	// NHRI form classes
	switch t.Form {
	case 1:
		b5 = 3.3082 // STM
	case 2:
		b5 = 2.2518 // SWP
	case 5:
		b5 = 0.0000 // MST
	case 8:
		b5 = 0.0000 // other
	}

	// species random effects
	switch t.Spp {
	case 746:
		b4, b6 = -2.7907, 0.0791
	case 316:
		b4, b6 = -3.9809, 0.8343
	case 833:
		b4, b6 = -0.7937, 0.8944
	case 371:
		b4, b6 = 5.2531, 0.1528
	}

	x := b0 + b1*t.DBH + b2*t.BAL + b3*math.Sqrt(ba) + b4 + b6*t.DBH
	mortA := math.Exp(x) / (1 + math.Exp(x))
	mortB := math.Exp(x+b5) / (1 + math.Exp(x+b5))

	mod := 1.0
	if mortA != 0 {
		mod = mortB / mortA
	}
	return math.Min(mod, 1)
}

// survThin is the thinning survival modifier, operative for balsam fir and
// red spruce after a recorded thinning.
func (t *Tree) survThin(th Thinning, year int) float64 {
	mod := 1.0
	if !th.active(year) {
		return mod
	}
	tst := float64(year - th.Year)

	switch t.Spp {
	case 12: // balsam fir
		const y0, y1, y2, y3 = 1.7414, 7.0805, 0.6677, 0.8474
		mod = 1 + math.Exp(y0+y1/(((100*th.PctRemoved+th.BAPreThin)*th.QMDRatio)+0.01))*
			math.Pow(y2, tst)*math.Pow(tst, y3)
	case 97: // red spruce
		const y0, y1, y2, y3 = 10.5057, -650.8260, 0.6948, 0.6429
		mod = 1 + math.Exp(y0+y1/((100*th.PctRemoved+th.BAPreThin)+0.01))*
			math.Pow(y2, tst)*math.Pow(tst, y3)
	}

	return math.Min(1/mod, 1)
}
