package acd

import (
	"fmt"
	"math"

	"github.com/gregjohnsonbiometrics/acd7/params"
)

const bacf = 0.00007854 // basal area conversion, cm² dbh to m²

// Tree is one tree record and the per-hectare density it represents.
// Derived attributes (BA, crown dimensions, competition ranks) are only
// valid immediately after a stand statistics pass.
type Tree struct {
	PlotID   int
	TreeID   int
	ExpandID int // 0 = original record, >0 = synthetic expansion record, -1 = consumed by collapse

	Spp  int     // FIA species code
	DBH  float64 // diameter at breast height (cm)
	Ht   float64 // total height (m)
	TPH  float64 // trees per hectare represented by this record
	CR   float64 // crown ratio
	Form int     // form code (Castle et al. 2017), 1-8
	Risk int     // risk code (Castle et al. 2017), 1-4

	BA     float64 // basal area per hectare (m²/ha)
	BAL    float64 // basal area in larger trees
	BALsw  float64
	BALhw  float64
	CCFL   float64 // crown competition factor in larger trees
	CCFLsw float64
	CCFLhw float64

	MCW float64 // maximum crown width (m)
	LCW float64 // largest crown width (m)
	MCA float64 // maximum crown area (% of hectare)
	HCB float64 // height to crown base (m)

	p *params.Params // resolved species coefficients, read-only

	formB   bool
	lowRisk bool

	// transient per-period deltas, reset after every apply
	ddbh  float64
	dht   float64
	dhcb  float64
	dtph  float64
	psurv float64
}

// NewTree builds a tree record, resolving its species coefficients through
// r. A nil resolver uses the bundled default parameterization.
func NewTree(r *params.Resolver, plotID, treeID, spp int, dbh, ht, tph, cr float64, form, risk int) (*Tree, error) {
	if r == nil {
		r = params.NewResolver(nil)
	}
	p, err := r.Resolve(spp)
	if err != nil {
		return nil, fmt.Errorf("tree %d/%d: %v: %w", plotID, treeID, err, ErrSpeciesResolution)
	}

	t := &Tree{
		PlotID: plotID,
		TreeID: treeID,
		Spp:    spp,
		DBH:    dbh,
		Ht:     ht,
		TPH:    tph,
		CR:     cr,
		Form:   form,
		Risk:   risk,
		p:      p,
		psurv:  1,
	}
	if cr > 0 && ht > 0 {
		t.HCB = (1 - cr) * ht
	}
	t.computeAttributes()
	t.decodeFormRisk()
	return t, nil
}

// IsSoftwood reports the resolved softwood/hardwood flag.
func (t *Tree) IsSoftwood() bool { return t.p.Softwood }

// CommonName returns the resolved species common name.
func (t *Tree) CommonName() string { return t.p.CommonName }

// Static species attributes.
func (t *Tree) SG() float64       { return t.p.Attrib.SG }
func (t *Tree) WD() float64       { return t.p.Attrib.WD }
func (t *Tree) Shade() float64    { return t.p.Attrib.Shade }
func (t *Tree) Drought() float64  { return t.p.Attrib.Drought }
func (t *Tree) Waterlog() float64 { return t.p.Attrib.Waterlog }

// Survival returns the last computed annual survival probability.
func (t *Tree) Survival() float64 { return t.psurv }

// clone returns a copy of the record sharing the resolved coefficients.
func (t *Tree) clone() *Tree {
	c := *t
	return &c
}

// reset clears all transient growth deltas.
func (t *Tree) reset() {
	t.ddbh = 0
	t.dht = 0
	t.dhcb = 0
	t.dtph = 0
	t.psurv = 1
}

// decodeFormRisk converts Castle et al. (2017) form and risk codes to the
// NHRI binary classes; invalid combinations degrade to form A, low risk.
func (t *Tree) decodeFormRisk() {
	if t.Form >= 1 && t.Form <= 8 && t.Risk >= 1 && t.Risk <= 4 {
		t.formB = !(t.Form == 1 || t.Form == 3 || t.Form == 4 || t.Form == 7)
		t.lowRisk = t.Risk == 1 || t.Risk == 2
	} else {
		t.formB = false
		t.lowRisk = true
	}
}

// computeAttributes refreshes basal area and crown dimensions.
func (t *Tree) computeAttributes() {
	t.BA = t.DBH * t.DBH * bacf * t.TPH
	t.computeMCW()
	t.computeLCW()
	t.computeMCA()
}

// maximum crown width
func (t *Tree) computeMCW() {
	t.MCW = t.p.MCW.A1 * math.Pow(t.DBH, t.p.MCW.A2)
}

// largest crown width, requires mcw
func (t *Tree) computeLCW() {
	t.LCW = t.MCW / (t.p.LCW.A1 * math.Pow(t.DBH, t.p.LCW.A2))
}

// maximum crown area, requires mcw
func (t *Tree) computeMCA() {
	t.MCA = 100 * ((math.Pi * t.MCW * t.MCW / 4) / 10000) * t.TPH
}

// htPred imputes total height from ccf and dbh when no height was recorded.
// region is an indicator: 0 = ME, 1 = NB. With overrideHt all heights are
// replaced with imputed values.
func (t *Tree) htPred(ccf float64, region int, overrideHt bool) {
	if t.Ht > 0 && !overrideHt {
		return
	}
	c := t.p.HtPred
	t.Ht = 1.37 + (c[0]+c[1]*float64(region))*
		math.Pow(1-math.Exp(-c[2]*t.DBH-c[4]*(t.BAL+1)), c[3])*
		math.Pow(math.Log(ccf), c[5])
}

// hcbPred predicts height to crown base from ccf and recomputes crown
// ratio. Requires ccf and bal to be current.
func (t *Tree) hcbPred(ccf float64) {
	a := t.p.HCBFixed
	dhr := t.DBH / t.Ht
	t.HCB = t.Ht / (1 + math.Exp((a[0]+t.p.HCB)+a[1]*t.DBH+a[2]*t.Ht+a[3]*dhr+a[4]*math.Log(ccf+1)+a[5]*(t.BAL+1)))
	t.CR = (t.Ht - t.HCB) / t.Ht
}

// applyGrowthMortality increments the tree's dimensions by its transient
// deltas, reduces density by the computed loss, refreshes derived
// attributes, and resets the deltas.
func (t *Tree) applyGrowthMortality() {
	t.DBH += t.ddbh
	t.Ht += t.dht
	t.HCB += t.dhcb
	if t.HCB > t.Ht {
		t.HCB = t.Ht
	}
	t.CR = (t.Ht - t.HCB) / t.Ht
	if t.dtph <= t.TPH {
		t.TPH -= t.dtph
	} else {
		t.TPH = 0
	}

	t.BA = t.DBH * t.DBH * bacf * t.TPH
	t.computeMCW()
	t.computeLCW()
	t.computeMCA()

	t.reset()
}
