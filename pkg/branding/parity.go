package branding

import (
	"maps"
	"slices"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/errors"
	"github.com/vnalla55/farebrand/pkg/parity"
)

// Parity is the outcome of a parity calculation.
type Parity struct {
	// Brands holds the brands with parity in precedence order.
	Brands []brand.Code
	// ByMarket maps a fare market ID to the parity brands it carries.
	ByMarket map[string][]brand.Code
	// Result keeps the full brand to fare market provenance.
	Result parity.Result
}

// Empty reports whether no brand has parity.
func (p *Parity) Empty() bool { return p == nil || len(p.Brands) == 0 }

// Has reports whether b has parity.
func (p *Parity) Has(b brand.Code) bool {
	return p != nil && slices.Contains(p.Brands, b)
}

// Parity returns the result of the last parity call, or nil.
func (it *Itinerary) Parity() *Parity { return it.parity }

// CalculateBrandParity computes the brands offered consistently across
// the whole itinerary.
func (it *Itinerary) CalculateBrandParity() (*Parity, error) {
	r, err := possibleBrands(it.geo, 0, it.geo.SegmentCount())
	if err != nil {
		return nil, err
	}
	return it.store(r), nil
}

// CalculateBrandParityForNonFixedLegs computes parity over the segments
// from the first to the last leg not yet fixed. Without fixed legs it is
// CalculateBrandParity.
func (it *Itinerary) CalculateBrandParityForNonFixedLegs() (*Parity, error) {
	if !hasFixedLeg(it.geo) {
		return it.CalculateBrandParity()
	}
	shopped := shoppedLegs(it.geo)
	if len(shopped) == 0 {
		return it.fixedLegParity(0, it.geo.SegmentCount(), nil)
	}
	start, _, ok := legRange(it.geo, shopped[0])
	_, end, ok2 := legRange(it.geo, shopped[len(shopped)-1])
	if !ok || !ok2 {
		return nil, errors.Precondition("shopped legs %v have no segments", shopped)
	}
	return it.fixedLegParity(start, end, shopped)
}

// CalculateBrandsForShoppedLegAndRestOfTravel computes parity from the
// first leg not yet fixed to the end of the itinerary.
func (it *Itinerary) CalculateBrandsForShoppedLegAndRestOfTravel() (*Parity, error) {
	if !hasFixedLeg(it.geo) {
		return it.CalculateBrandParity()
	}
	shopped := shoppedLegs(it.geo)
	if len(shopped) == 0 {
		return it.fixedLegParity(0, it.geo.SegmentCount(), nil)
	}
	start, _, ok := legRange(it.geo, shopped[0])
	if !ok {
		return nil, errors.Precondition("shopped leg %d has no segments", shopped[0])
	}
	return it.fixedLegParity(start, it.geo.SegmentCount(), shopped)
}

// CollectAllBrands skips parity and returns every brand any fare market
// may offer.
func (it *Itinerary) CollectAllBrands() (*Parity, error) {
	r := parity.Result{}
	for _, fm := range it.geo.FareMarkets() {
		if fm == nil {
			return nil, errors.Precondition("nil fare market in itinerary %s", it.id)
		}
		for _, b := range it.geo.Brands(fm) {
			ms, ok := r[b]
			if !ok {
				ms = parity.MarketSet{}
				r[b] = ms
			}
			ms[fm.ID] = fm
		}
	}
	return it.store(r), nil
}

// fixedLegParity runs parity over [start, end) with fixed-leg fare
// markets narrowed to their fixed brand. A fixed-leg fare market joins the
// result for its brand when every shopped leg offers that brand on its own.
func (it *Itinerary) fixedLegParity(start, end int, shopped []int) (*Parity, error) {
	geo := narrowed{it.geo}
	base, err := possibleBrands(geo, start, end)
	if err != nil {
		return nil, err
	}
	out := cloneResult(base)
	if len(shopped) == 0 {
		return it.store(out), nil
	}

	perLeg := make([]parity.Result, 0, len(shopped))
	for _, leg := range shopped {
		ls, le, ok := legRange(it.geo, leg)
		if !ok {
			return nil, errors.Precondition("shopped leg %d has no segments", leg)
		}
		r, err := possibleBrands(geo, ls, le)
		if err != nil {
			return nil, err
		}
		perLeg = append(perLeg, r)
	}

	for _, fm := range it.geo.FareMarkets() {
		b, ok := it.geo.FixedLegBrand(fm)
		if !ok || !b.IsReal() {
			continue
		}
		if !offeredOnEveryLeg(perLeg, b) {
			continue
		}
		ms, ok := out[b]
		if !ok {
			ms = parity.MarketSet{}
			for _, r := range perLeg {
				maps.Copy(ms, r[b])
			}
			out[b] = ms
		}
		ms[fm.ID] = fm
		it.logger.Debug("carried fixed-leg brand forward", "brand", b, "market", fm.ID)
	}
	return it.store(out), nil
}

func offeredOnEveryLeg(perLeg []parity.Result, b brand.Code) bool {
	for _, r := range perLeg {
		if _, ok := r[b]; !ok {
			return false
		}
	}
	return true
}

func possibleBrands(geo Geometry, start, end int) (parity.Result, error) {
	calc := parity.NewCalculator(geo)
	if err := calc.AddAll(geo.FareMarkets()); err != nil {
		return nil, err
	}
	return calc.PossibleBrands(start, end)
}

func cloneResult(r parity.Result) parity.Result {
	out := make(parity.Result, len(r))
	for b, ms := range r {
		out[b] = maps.Clone(ms)
	}
	return out
}

// store folds r into a Parity and keeps it as the itinerary's current one.
func (it *Itinerary) store(r parity.Result) *Parity {
	p := &Parity{
		Brands:   r.Brands(),
		ByMarket: make(map[string][]brand.Code),
		Result:   r,
	}
	slices.SortStableFunc(p.Brands, it.order().Compare)
	for _, b := range p.Brands {
		for _, id := range r[b].IDs() {
			p.ByMarket[id] = append(p.ByMarket[id], b)
		}
	}
	it.parity = p
	it.logger.Debug("calculated parity", "brands", len(p.Brands))
	return p
}

// UpdateProgramsForCalculatedBrands records every (program, brand) pair of
// the itinerary's fare markets whose brand has parity. It requires a
// previous parity call.
func (it *Itinerary) UpdateProgramsForCalculatedBrands() ([]brand.ProgramBrand, error) {
	if it.parity == nil {
		return nil, errors.Precondition("no parity calculated for itinerary %s", it.id)
	}
	var out []brand.ProgramBrand
	for _, fm := range it.geo.FareMarkets() {
		allowed := it.geo.Brands(fm)
		for _, e := range fm.Brands {
			if !it.parity.Has(e.Code) || !slices.Contains(allowed, e.Code) {
				continue
			}
			pb := brand.ProgramBrand{Program: e.Program, Brand: e.Code}
			if !slices.Contains(out, pb) {
				out = append(out, pb)
			}
		}
	}
	it.programs = out
	return slices.Clone(out), nil
}

// Programs returns the pairs recorded by UpdateProgramsForCalculatedBrands.
func (it *Itinerary) Programs() []brand.ProgramBrand { return slices.Clone(it.programs) }
