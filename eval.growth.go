package acd

import "math"

// Annual increment equations and their thinning / spruce budworm /
// hardwood form-and-risk modifiers. Each modifier is the ratio of a
// with-effect to a without-effect evaluation of a published sub-model and
// defaults to 1 where inapplicable.

// dDBH estimates the annual diameter increment.
// avgDBHsw is the softwood average dbh of 10 cm+ trees.
func (t *Tree) dDBH(region string, csi float64, th Thinning, year int, avgDBHsw, topht, cdef float64) {
	d := math.Max(t.DBH, 1)
	p := t.p.DDBH
	t.ddbh = math.Exp(p[0] +
		p[1]*math.Log(d+1) +
		p[2]*d +
		p[3]*math.Log(t.CR) +
		p[4]*t.BAL/math.Log(d+1) +
		p[5]*math.Log(csi))

	t.ddbh *= t.dDBHThin(th, year) * t.dDBHSbw(region, avgDBHsw, topht, cdef) * t.dDBHHwFormRisk()
}

// dDBHThin is the diameter thinning modifier (Kuehne et al.), fit for
// balsam fir and red spruce.
func (t *Tree) dDBHThin(th Thinning, year int) float64 {
	mod := 1.0
	if !th.active(year) {
		return mod
	}
	tst := float64(year - th.Year)

	switch t.Spp {
	case 12: // balsam fir
		const y0, y1, y2, y3 = -0.2566, -22.7609, 0.7745, 1.0511
		mod = 1 + math.Exp(y0+y1/((100*th.PctRemoved*th.QMDRatio)+0.01))*
			math.Pow(y2, tst)*math.Pow(tst, y3)
	case 97: // red spruce
		const y0, y1, y2, y3 = -0.5010, -20.1147, 0.8067, 1.1905
		mod = 1 + math.Exp(y0+y1/((100*th.PctRemoved*th.QMDRatio)+0.01))*
			math.Pow(y2, tst)*math.Pow(tst, y3)
	}

	// constrain to 0.75 <= modifier <= 1.25
	return math.Max(0.75, math.Min(mod, 1.25))
}

// dDBHSbw is the spruce budworm diameter modifier (Chen et al. 2017).
// Operative for spruce-fir only; cdef < 0 means defoliation not supplied.
func (t *Tree) dDBHSbw(region string, avgDBHsw, topht, cdef float64) float64 {
	if !(t.Spp == 12 || t.Spp == 94 || t.Spp == 95 || t.Spp == 97) || cdef < 0 {
		return 1
	}

	var b1, b2, b3, b4, b5, b6, b7 float64
	if region == "NB" {
		b2, b3, b4, b5 = -0.0190, -0.0277, -0.0027, 0.0000
		switch t.Spp {
		case 12:
			b1, b6, b7 = 0.0701, -0.8200, -0.0018
		case 97, 95:
			b1, b6, b7 = 0.0320, -0.6861, -0.0012
		case 94:
			b1, b6, b7 = 0.0487, -0.7839, -0.0006
		}
	} else {
		b2, b3, b4, b5 = 0.0019, -0.0327, -0.0412, 0.3950
		switch t.Spp {
		case 12:
			b1, b6, b7 = 0.1187, -1.2813, -0.0016
		case 97, 95:
			b1, b6, b7 = 0.0675, -0.9477, -0.0006
		case 94:
			b1, b6, b7 = 0.0321, -0.3715, -0.0183
		}
	}

	a := b1 * t.DBH * math.Exp(b2*t.BALhw+b3*t.BALsw+b4*topht+b5*t.CR+b6*(t.DBH/avgDBHsw))
	b := b1 * t.DBH * math.Exp(b2*t.BALhw+b3*t.BALsw+b4*topht+b5*t.CR+b6*(t.DBH/avgDBHsw)+b7*cdef)
	return b / a
}

// dDBHHwFormRisk is the hardwood form and risk diameter modifier
// (Castle et al. 2017), operative for RO, YB, RM, PB and QA with valid
// form and risk codes.
func (t *Tree) dDBHHwFormRisk() float64 {
	if t.Form < 1 || t.Form > 8 || t.Risk < 1 || t.Risk > 4 {
		return 1
	}
	if !(t.Spp == 833 || t.Spp == 371 || t.Spp == 316 || t.Spp == 375 || t.Spp == 746) {
		return 1
	}

	const b0, b1, b2, b3 = -2.9487, -0.1090, 1.2111, -0.0430
	var b4, b5 float64
	switch t.Spp {
	case 746:
		b4, b5 = -0.1059, 0.0476
	case 316:
		b4, b5 = -0.6377, 0.0477
	case 833:
		b4, b5 = -0.3453, 0.0511
	case 371:
		b4, b5 = -0.2494, 0.0251
	case 375:
		b4, b5 = 0.0000, 0.0000
	}

	const b6a = 0.2176
	b6b := 0.0
	if t.formB {
		b6b += -0.0250
	}
	if t.lowRisk {
		b6b += 0.2176
	}

	a := b0 + b1*t.DBH + b2*math.Log(t.DBH) + b3*t.BAL + b4 + b5*t.DBH
	return math.Exp(a+b6b) / math.Exp(a+b6a)
}

// dHT estimates the annual height increment.
func (t *Tree) dHT(csi float64, th Thinning, year int, avgDBHsw, topht, cdef float64) {
	p := t.p.DHT
	t.dht = p[0] * p[1] * p[2] * math.Pow(t.CR, p[5]) * math.Pow(csi/30, p[5]) *
		math.Exp(-p[1]*t.Ht-p[4]*(t.CCFL/100)) *
		math.Pow(1-math.Exp(-p[1]*t.Ht), p[2]-1)

	t.dht *= t.dHTThin(th, year) * t.dHTSbw(topht, avgDBHsw, cdef)
}

// dHTThin is the height growth thinning modifier (Kuehne et al. 2016),
// operative for balsam fir and red spruce within 5 years of thinning.
func (t *Tree) dHTThin(th Thinning, year int) float64 {
	mod := 1.0
	if th.Year < 0 || th.Year > year || year-th.Year >= 5 {
		return mod
	}
	tst := float64(year - th.Year)

	switch t.Spp {
	case 12: // balsam fir
		const y0, y1, y2, y3 = -1.8443, 5.2969, 1.0532, 0.0000
		mod = 1 - math.Exp(y0+y1/((100*th.PctRemoved)+0.01))*
			math.Pow(y2, tst)*math.Pow(tst, y3)
	case 97: // red spruce
		const y0, y1, y2, y3 = -1.8426, 6.2781, 1.1596, 0.0000
		mod = 1 - math.Exp(y0+y1/((100*th.PctRemoved)+0.01))*
			math.Pow(y2, tst)*math.Pow(tst, y3)
	}

	return math.Max(0.75, math.Min(mod, 1.25))
}

// dHTSbw is the spruce budworm height modifier (Chen et al. 2017).
func (t *Tree) dHTSbw(topht, avgDBHsw, cdef float64) float64 {
	if !(t.Spp == 12 || t.Spp == 94 || t.Spp == 95 || t.Spp == 97) || cdef < 0 {
		return 1
	}

	const b2, b3, b4 = -0.0011, 0.0316, 2.4512
	var b1, b5, b6 float64
	switch t.Spp {
	case 12:
		b1, b5, b6 = 0.0013, 0.3676, -0.0017
	case 97, 95:
		b1, b5, b6 = 0.0009, 0.2881, -0.0014
	case 94:
		b1, b5, b6 = 0.0005, 0.6800, 0.0001
	}

	a := b1 * t.DBH * math.Exp(b2*t.DBH*t.DBH+b3*topht+b4*t.CR+b5*(t.DBH/avgDBHsw))
	b := b1 * t.DBH * math.Exp(b2*t.DBH*t.DBH+b3*topht+b4*t.CR+b5*(t.DBH/avgDBHsw)+b6*cdef)
	return b / a
}

// dHCB estimates annual crown recession from ccf and the height increment
// computed this period.
func (t *Tree) dHCB(ccf float64, th Thinning, year int) {
	q := t.p.DHCB
	t.dhcb = q[0] * math.Pow(t.HCB/q[5], q[2]) *
		((t.Ht - t.HCB) + math.Pow(t.dht, q[1])) *
		math.Pow(1-math.Exp(-q[3]*(ccf+1)), q[4])

	t.dhcb *= t.dHCBThin(th, year)
}

// dHCBThin is the crown recession thinning modifier, operative for balsam
// fir and red spruce; its magnitude is constrained to <= 1.
func (t *Tree) dHCBThin(th Thinning, year int) float64 {
	if th.Year < 0 || th.Year > year || !(t.Spp == 12 || t.Spp == 97) {
		return 1
	}
	tst := float64(year - th.Year)

	mod := 1.0
	switch t.Spp {
	case 12: // balsam fir
		const y0, y1, y2, y3 = -0.4208, -17.0998, 0.7986, 0.0521
		mod = 1 - math.Exp(y0+y1/((100*th.PctRemoved*th.QMDRatio)+0.01))*
			math.Pow(y2, tst)*math.Pow(tst, y3)
	case 97: // red spruce
		const y0, y1, y2, y3 = -1.0778, -14.7694, 0.7758, 1.1164
		mod = 1 - math.Exp(y0+y1/((100*th.PctRemoved*th.QMDRatio)+0.01))*
			math.Pow(y2, tst)*math.Pow(tst, y3)
	}

	return math.Min(math.Abs(mod), 1)
}
