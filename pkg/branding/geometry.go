package branding

import (
	"slices"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/parity"
)

// Geometry describes the itinerary being branded.
type Geometry interface {
	parity.Geometry

	// LegOf returns the leg index of segment.
	LegOf(segment int) int
	// LegCount returns the number of legs.
	LegCount() int
	// FareMarkets returns every fare market of the itinerary.
	FareMarkets() []*brand.FareMarket
	// FixedLegs reports per leg whether it is already fixed.
	FixedLegs() []bool
	// FixedLegBrand returns the brand chosen on the fixed leg fm belongs to.
	FixedLegBrand(fm *brand.FareMarket) (brand.Code, bool)
}

// legRange returns the half-open segment range of leg, or ok=false when
// the leg has no segments.
func legRange(geo Geometry, leg int) (start, end int, ok bool) {
	start = -1
	for s := range geo.SegmentCount() {
		if geo.LegOf(s) != leg {
			continue
		}
		if start < 0 {
			start = s
		}
		end = s + 1
	}
	return start, end, start >= 0
}

// hasFixedLeg reports whether any leg is fixed.
func hasFixedLeg(geo Geometry) bool {
	return slices.Contains(geo.FixedLegs(), true)
}

// shoppedLegs returns the indices of legs that are not fixed.
func shoppedLegs(geo Geometry) []int {
	fixed := geo.FixedLegs()
	var out []int
	for leg := range geo.LegCount() {
		if leg < len(fixed) && fixed[leg] {
			continue
		}
		out = append(out, leg)
	}
	return out
}

// narrowed restricts fare markets on fixed legs to the brand fixed there.
// Brand sets are only ever reduced.
type narrowed struct {
	Geometry
}

func (n narrowed) Brands(fm *brand.FareMarket) []brand.Code {
	all := n.Geometry.Brands(fm)
	fixed, ok := n.Geometry.FixedLegBrand(fm)
	if !ok {
		return all
	}
	if slices.Contains(all, fixed) {
		return []brand.Code{fixed}
	}
	return nil
}
