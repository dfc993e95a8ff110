package branding

import (
	"slices"

	"github.com/vnalla55/farebrand/pkg/brand"
)

// Table returns the ranked carrier/brand table, filtered to cabin when it
// is not CabinUnknown.
func (it *Itinerary) Table(cabin brand.Cabin) brand.ItinBrands {
	if cabin == brand.CabinUnknown {
		return it.buildTable(nil)
	}
	return it.buildTable(bucketFilter(cabin.Bucket()))
}

// buildTable collects, per segment, the candidate brands of every carrier
// and direction from the fare markets covering that segment. Only
// itinerary-specific brands passing keep are used. Lists are deduplicated
// and sorted by precedence; a carrier with nothing left gets [NoBrand].
func (it *Itinerary) buildTable(keep func(brand.Cabin) bool) brand.ItinBrands {
	count := it.geo.SegmentCount()
	table := make(brand.ItinBrands, count)
	carriers := make([][]brand.Carrier, count)
	for s := range table {
		table[s] = brand.SegmentBrands{}
	}

	for _, fm := range it.geo.FareMarkets() {
		if fm == nil {
			continue
		}
		allowed := it.geo.Brands(fm)
		start, end := it.geo.StartSegment(fm), it.geo.EndSegment(fm)
		for s := max(start, 0); s <= end && s < count; s++ {
			if it.geo.IsArunk(s) {
				continue
			}
			if !slices.Contains(carriers[s], fm.Carrier) {
				carriers[s] = append(carriers[s], fm.Carrier)
			}
			for _, e := range fm.Brands {
				if !e.Code.IsReal() || !slices.Contains(allowed, e.Code) {
					continue
				}
				if keep != nil && !keep(e.Cabin) {
					continue
				}
				dir := e.Direction
				if !it.opts.UseDirectionality {
					dir = brand.Bothways
				}
				key := brand.CarrierDirection{Carrier: fm.Carrier, Direction: dir}
				if !slices.Contains(table[s][key], e.Code) {
					table[s][key] = append(table[s][key], e.Code)
				}
			}
		}
	}

	for s, seg := range table {
		for _, c := range carriers[s] {
			it.fillNoBrand(seg, c)
		}
		for _, list := range seg {
			slices.SortStableFunc(list, it.order().Compare)
		}
	}
	return table
}

// fillNoBrand gives carrier c a NoBrand entry where it has no brands: on
// Bothways when it has none at all, on the missing direction when it has
// brands in one direction only.
func (it *Itinerary) fillNoBrand(seg brand.SegmentBrands, c brand.Carrier) {
	key := func(d brand.Direction) brand.CarrierDirection {
		return brand.CarrierDirection{Carrier: c, Direction: d}
	}
	_, orig := seg[key(brand.Original)]
	_, rev := seg[key(brand.Reversed)]
	_, both := seg[key(brand.Bothways)]

	switch {
	case !orig && !rev && !both:
		seg[key(brand.Bothways)] = []brand.Code{brand.NoBrand}
	case both:
	case orig && !rev:
		seg[key(brand.Reversed)] = []brand.Code{brand.NoBrand}
	case rev && !orig:
		seg[key(brand.Original)] = []brand.Code{brand.NoBrand}
	}
}
