package scenario

import (
	"slices"

	"github.com/vnalla55/farebrand/pkg/brand"
)

// Segment is one itinerary segment.
type Segment struct {
	Leg   int
	Arunk bool
	From  string
	To    string
}

type span struct {
	start, end int
	fixed      brand.Code
}

// Itinerary is an in-memory itinerary read from a scenario file.
type Itinerary struct {
	ID        string
	segments  []Segment
	markets   []*brand.FareMarket
	spans     map[*brand.FareMarket]span
	filter    []brand.Code
	qualified map[brand.Code]bool
	fixed     []bool
}

// Segments returns the itinerary segments.
func (it *Itinerary) Segments() []Segment { return slices.Clone(it.segments) }

func (it *Itinerary) SegmentCount() int { return len(it.segments) }

func (it *Itinerary) IsArunk(segment int) bool {
	return segment >= 0 && segment < len(it.segments) && it.segments[segment].Arunk
}

func (it *Itinerary) StartSegment(fm *brand.FareMarket) int { return it.spans[fm].start }

func (it *Itinerary) EndSegment(fm *brand.FareMarket) int { return it.spans[fm].end }

func (it *Itinerary) LegOf(segment int) int {
	if segment < 0 || segment >= len(it.segments) {
		return -1
	}
	return it.segments[segment].Leg
}

func (it *Itinerary) LegCount() int {
	if len(it.segments) == 0 {
		return 0
	}
	return it.segments[len(it.segments)-1].Leg + 1
}

func (it *Itinerary) FareMarkets() []*brand.FareMarket { return it.markets }

// FixedLegs returns one flag per leg. Legs beyond the configured list are
// not fixed.
func (it *Itinerary) FixedLegs() []bool {
	out := make([]bool, it.LegCount())
	copy(out, it.fixed)
	return out
}

// FixedLegBrand returns the configured fixed brand of fm when fm starts on
// a fixed leg.
func (it *Itinerary) FixedLegBrand(fm *brand.FareMarket) (brand.Code, bool) {
	sp, ok := it.spans[fm]
	if !ok || sp.fixed == "" {
		return "", false
	}
	leg := it.LegOf(sp.start)
	if leg < 0 || leg >= len(it.fixed) || !it.fixed[leg] {
		return "", false
	}
	return sp.fixed, true
}

// Brands returns the itinerary-specific brands of fm: those qualified for
// the transaction and, when the itinerary has a brand filter, listed in it.
func (it *Itinerary) Brands(fm *brand.FareMarket) []brand.Code {
	var out []brand.Code
	for _, c := range fm.Codes() {
		if len(it.qualified) > 0 && !it.qualified[c] {
			continue
		}
		if len(it.filter) > 0 && !slices.Contains(it.filter, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}
