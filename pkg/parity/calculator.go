package parity

import (
	"maps"
	"slices"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/errors"
)

// Geometry is the itinerary information the calculator needs.
type Geometry interface {
	SegmentCount() int
	IsArunk(segment int) bool
	StartSegment(fm *brand.FareMarket) int
	EndSegment(fm *brand.FareMarket) int
	// Brands returns the brands fm may offer on this itinerary.
	Brands(fm *brand.FareMarket) []brand.Code
}

// MarketSet is a set of fare markets keyed by ID.
type MarketSet map[string]*brand.FareMarket

// IDs returns the market IDs in sorted order.
func (s MarketSet) IDs() []string { return slices.Sorted(maps.Keys(s)) }

func (s MarketSet) add(fm *brand.FareMarket) { s[fm.ID] = fm }

// Result maps every brand with parity to the fare markets that carry it.
type Result map[brand.Code]MarketSet

// Brands returns the brands in the result in lexical order.
func (r Result) Brands() []brand.Code { return slices.Sorted(maps.Keys(r)) }

// Markets returns the union of all contributing fare markets.
func (r Result) Markets() MarketSet {
	out := MarketSet{}
	for _, ms := range r {
		maps.Copy(out, ms)
	}
	return out
}

func (r Result) tag(b brand.Code, fm *brand.FareMarket) MarketSet {
	ms, ok := r[b]
	if !ok {
		ms = MarketSet{}
		r[b] = ms
	}
	ms.add(fm)
	return ms
}

// Calculator computes parity for one itinerary. It is not safe for
// concurrent use.
//
// Results are memoized by start segment, so one calculator serves a single
// end segment; use a new calculator for a different range end.
type Calculator struct {
	geo     Geometry
	byStart map[int][]*brand.FareMarket
	memo    map[int]Result
	count   int
	end     int
}

// NewCalculator creates an empty calculator over geo.
func NewCalculator(geo Geometry) *Calculator {
	return &Calculator{
		geo:     geo,
		byStart: make(map[int][]*brand.FareMarket),
		memo:    make(map[int]Result),
		count:   geo.SegmentCount(),
		end:     -1,
	}
}

// Add registers a fare market under its start segment.
func (c *Calculator) Add(fm *brand.FareMarket) error {
	if fm == nil {
		return errors.Precondition("nil fare market")
	}
	start := c.geo.StartSegment(fm)
	if start < 0 || start >= c.count {
		return errors.Precondition("fare market %s starts at segment %d outside [0,%d)", fm.ID, start, c.count)
	}
	c.byStart[start] = append(c.byStart[start], fm)
	return nil
}

// AddAll registers every market in fms.
func (c *Calculator) AddAll(fms []*brand.FareMarket) error {
	for _, fm := range fms {
		if err := c.Add(fm); err != nil {
			return err
		}
	}
	return nil
}

// PossibleBrands returns the brands with parity over [start, end).
// The returned result is shared with the memo and must not be modified.
func (c *Calculator) PossibleBrands(start, end int) (Result, error) {
	if end > c.count {
		return nil, errors.Precondition("end segment %d beyond segment count %d", end, c.count)
	}
	if c.end >= 0 && c.end != end {
		return nil, errors.Precondition("calculator already serves end segment %d, got %d", c.end, end)
	}
	c.end = end
	return c.possibleBrands(start, end), nil
}

// PossibleBrandsToEnd is PossibleBrands up to the end of the itinerary.
func (c *Calculator) PossibleBrandsToEnd(start int) (Result, error) {
	return c.PossibleBrands(start, c.count)
}

func (c *Calculator) possibleBrands(start, end int) Result {
	if r, ok := c.memo[start]; ok {
		return r
	}

	result := Result{}
	for _, fm := range c.byStart[start] {
		next := c.geo.EndSegment(fm) + 1
		if next < c.count && c.geo.IsArunk(next) {
			next++
		}
		own := c.geo.Brands(fm)

		if next >= end {
			for _, b := range own {
				result.tag(b, fm)
			}
			continue
		}

		rest := c.possibleBrands(next, end)
		for _, b := range own {
			tail, ok := rest[b]
			if !ok {
				continue
			}
			maps.Copy(result.tag(b, fm), tail)
		}
	}

	c.memo[start] = result
	return result
}
