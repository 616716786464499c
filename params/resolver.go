// Species parameter resolution for the Acadian Variant.
//
// The resolver is a pure lookup over an immutable Tables value. A species
// code resolves through the species table first; a sentinel index (-1)
// or a missing entry routes through the crosswalk to a donor species.
// Each equation's coefficient set independently falls back to the generic
// other-softwood/other-hardwood fit when no species-specific fit exists.
package params

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a species code unresolvable via the species table or
// the crosswalk. Fatal for tree construction.
var ErrNotFound = errors.New("species not found")

// Tables is the complete, immutable parameterization of the variant.
// Slices are indexed by SppID.Index; maps are keyed by FIA species code.
type Tables struct {
	Species   map[int]SppID
	Crosswalk map[int]Crosswalk
	Attrib    []Attributes
	MCW       []Crown
	LCW       []Crown
	HCB       []float64  // per-species hcb intercepts
	HCBFixed  [6]float64 // fixed effects of the hcb model
	HtPred    map[int][6]float64
	DDBH      map[int][6]float64
	DHT       map[int][6]float64
	DHCB      map[int][6]float64
	Mort      map[int][5]float64
}

// Params is one species' fully resolved coefficient bundle. Values are
// copies; callers never alias the resolver's tables.
type Params struct {
	Index      int
	Softwood   bool
	CommonName string
	Attrib     Attributes
	MCW, LCW   Crown
	HCB        float64
	HCBFixed   [6]float64
	HtPred     [6]float64
	DDBH       [6]float64
	DHT        [6]float64
	DHCB       [6]float64
	Mort       [5]float64
}

// Resolver performs species parameter lookups against a fixed Tables value.
type Resolver struct {
	t *Tables
}

// NewResolver wraps t. A nil t uses the bundled default parameterization.
func NewResolver(t *Tables) *Resolver {
	if t == nil {
		t = DefaultTables()
	}
	return &Resolver{t: t}
}

// DefaultTables returns the bundled Acadian parameterization.
func DefaultTables() *Tables {
	return &Tables{
		Species:   defaultSpecies(),
		Crosswalk: defaultCrosswalk(),
		Attrib:    defaultAttrib(),
		MCW:       defaultMCW(),
		LCW:       defaultLCW(),
		HCB:       defaultHCB(),
		HCBFixed:  defaultHCBFixed(),
		HtPred:    defaultHtPred(),
		DDBH:      defaultDDBH(),
		DHT:       defaultDHT(),
		DHCB:      defaultDHCB(),
		Mort:      defaultMort(),
	}
}

// Resolve returns the coefficient bundle for an FIA species code.
func (r *Resolver) Resolve(spp int) (*Params, error) {
	id, idx, eq, err := r.identify(spp)
	if err != nil {
		return nil, err
	}

	p := &Params{
		Index:      idx,
		Softwood:   id.Softwood,
		CommonName: id.CommonName,
		Attrib:     r.t.Attrib[idx],
		HCBFixed:   r.t.HCBFixed,
	}

	other := OtherHardwood
	if id.Softwood {
		other = OtherSoftwood
	}
	otherIdx := r.t.Species[other].Index

	// per-equation fallback to the generic softwood/hardwood fit,
	// keyed by the donor code when the species came in via the crosswalk
	if c, ok := r.t.DDBH[eq]; ok {
		p.DDBH = c
	} else {
		p.DDBH = r.t.DDBH[other]
	}
	if c, ok := r.t.DHT[eq]; ok {
		p.DHT = c
	} else {
		p.DHT = r.t.DHT[other]
	}
	if c, ok := r.t.DHCB[eq]; ok {
		p.DHCB = c
	} else {
		p.DHCB = r.t.DHCB[other]
	}
	if c, ok := r.t.HtPred[eq]; ok {
		p.HtPred = c
	} else {
		p.HtPred = r.t.HtPred[other]
	}
	if c, ok := r.t.Mort[eq]; ok {
		p.Mort = c
	} else {
		p.Mort = r.t.Mort[other]
	}

	if r.t.HCB[idx] != 0 {
		p.HCB = r.t.HCB[idx]
	} else {
		p.HCB = r.t.HCB[otherIdx]
	}
	if r.t.MCW[idx].A1 != 0 {
		p.MCW = r.t.MCW[idx]
	} else {
		p.MCW = r.t.MCW[otherIdx]
	}
	if r.t.LCW[idx].A1 != 0 {
		p.LCW = r.t.LCW[idx]
	} else {
		p.LCW = r.t.LCW[otherIdx]
	}

	return p, nil
}

// identify resolves a species code to its table row, parameter index, and
// the code that keys the equation tables, following the crosswalk where
// required. Crosswalked species carry the donor's code so the donor's
// fitted equations resolve instead of the generic fallback.
func (r *Resolver) identify(spp int) (SppID, int, int, error) {
	if id, ok := r.t.Species[spp]; ok {
		if id.Index >= 0 {
			return id, id.Index, spp, nil
		}
		// sentinel index: the species borrows a crosswalk donor's fit
		cw, ok := r.t.Crosswalk[spp]
		if !ok {
			return SppID{}, 0, 0, fmt.Errorf("species %d: no crosswalk donor: %w", spp, ErrNotFound)
		}
		donor, ok := r.t.Species[cw.MappedCode]
		if !ok || donor.Index < 0 {
			return SppID{}, 0, 0, fmt.Errorf("species %d: crosswalk donor %d unresolvable: %w", spp, cw.MappedCode, ErrNotFound)
		}
		return id, donor.Index, cw.MappedCode, nil
	}

	// not in the species table at all: substitute the crosswalk species
	cw, ok := r.t.Crosswalk[spp]
	if !ok {
		return SppID{}, 0, 0, fmt.Errorf("species %d: %w", spp, ErrNotFound)
	}
	donor, ok := r.t.Species[cw.MappedCode]
	if !ok || donor.Index < 0 {
		return SppID{}, 0, 0, fmt.Errorf("species %d: crosswalk donor %d unresolvable: %w", spp, cw.MappedCode, ErrNotFound)
	}
	return donor, donor.Index, cw.MappedCode, nil
}
