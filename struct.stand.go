package acd

import (
	"fmt"
	"math/rand"

	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"

	"github.com/gregjohnsonbiometrics/acd7/params"
)

// Thinning records a stand's single thinning event. A negative Year means
// no thinning has occurred.
type Thinning struct {
	Year       int     // year the thinning occurred
	PctRemoved float64 // fraction of basal area removed
	BAPreThin  float64 // pre-thin basal area (m²/ha)
	QMDRatio   float64 // post/pre quadratic mean diameter ratio
}

// active reports whether a fully specified thinning occurred at or before year.
func (th Thinning) active(year int) bool {
	return th.Year >= 0 && th.Year <= year && th.PctRemoved > 0 && th.QMDRatio > 0 && th.BAPreThin > 0
}

// Stand owns a tree list and its stand-level covariates, and orchestrates
// the annual growth pipeline. Derived aggregates are only valid immediately
// after a statistics recomputation pass; any tree-list mutation invalidates
// them until recomputed. A Stand must not be shared across goroutines.
type Stand struct {
	Region    string  // region code: ME (Maine), NB (New Brunswick)
	Year      int     // current year of the stand
	CSI       float64 // climate site index (m)
	Elevation float64 // elevation (m)
	CDEF      float64 // cumulative defoliation fraction; negative = not supplied

	UseSBWMod   bool
	UseHWMod    bool
	UseThinMod  bool
	UseIngrowth bool
	CutPoint    float64 // ingrowth probability-of-occurrence cut point; 0 = scale directly
	MinDBH      float64 // minimum recruit dbh (cm)

	Thin Thinning

	Trees []*Tree

	// derived aggregates, recomputed every period
	CCF         float64 // crown competition factor
	TopHt       float64 // mean height of the tallest 100 trees/ha
	BA          float64 // basal area per hectare
	BAsw        float64
	BAhw        float64
	BFBA        float64 // balsam fir basal area
	ITHWBA      float64 // intolerant hardwood basal area
	TPH         float64 // trees per hectare
	QMD         float64 // quadratic mean diameter
	NSpecies    int
	AvgDBH      float64
	AvgDBH10    float64 // trees with dbh >= 10 cm
	AvgDBHsw    float64
	AvgDBHhw    float64
	AvgDBH10sw  float64
	AvgDBH10hw  float64
	DBHsd       float64
	DBH10sd     float64
	AvgHtSw     float64
	AvgHtHw     float64
	AvgSG       float64
	AvgSG10     float64
	MinDBHObs   float64
	MinDBH10Obs float64
	MaxDBHObs   float64
	SDI         float64
	SDI10       float64
	RD          float64
	RD10        float64

	// Rng drives the expansion jitter; replace before Grow for
	// reproducible projections.
	Rng *rand.Rand

	prm         *params.Resolver
	initialized bool
	maxTreeID   int
}

// NewStand validates the stand-level covariates and returns an empty stand.
// A nil resolver uses the bundled default parameterization.
func NewStand(r *params.Resolver, region string, year int, csi, elev, cdef float64,
	useSbw, useHw, useThin, useIngrowth bool, cutPoint, minDBH float64) (*Stand, error) {

	if region != "ME" && region != "NB" {
		return nil, fmt.Errorf("region %q: %w", region, ErrConfiguration)
	}
	if csi <= 0 {
		return nil, fmt.Errorf("csi %f: %w", csi, ErrConfiguration)
	}
	if r == nil {
		r = params.NewResolver(nil)
	}

	return &Stand{
		Region:      region,
		Year:        year,
		CSI:         csi,
		Elevation:   elev,
		CDEF:        cdef,
		UseSBWMod:   useSbw,
		UseHWMod:    useHw,
		UseThinMod:  useThin,
		UseIngrowth: useIngrowth,
		CutPoint:    cutPoint,
		MinDBH:      minDBH,
		Thin:        Thinning{Year: -1},
		Rng:         rand.New(mrg63k3a.New()),
		prm:         r,
	}, nil
}

// AddTree constructs a tree record against the stand's resolver and appends
// it to the tree list.
func (s *Stand) AddTree(plotID, treeID, spp int, dbh, ht, tph, cr float64, form, risk int) error {
	t, err := NewTree(s.prm, plotID, treeID, spp, dbh, ht, tph, cr, form, risk)
	if err != nil {
		return err
	}
	s.Trees = append(s.Trees, t)
	s.initialized = false
	return nil
}

// regionIndicator is 0 for ME, 1 for NB.
func (s *Stand) regionIndicator() int {
	if s.Region == "NB" {
		return 1
	}
	return 0
}

// findMaxTreeID scans the tree list for the largest tree id in use.
func (s *Stand) findMaxTreeID() int {
	mx := 0
	for _, t := range s.Trees {
		if t.TreeID > mx {
			mx = t.TreeID
		}
	}
	return mx
}
