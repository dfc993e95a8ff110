package branding

import (
	"slices"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/errors"
	"github.com/vnalla55/farebrand/pkg/space"
)

// OptionSpaceCount returns the number of stored option spaces.
func (it *Itinerary) OptionSpaceCount() int { return len(it.spaces) }

// OptionSpaces returns the stored option spaces in index order.
func (it *Itinerary) OptionSpaces() []space.CabinSpace { return slices.Clone(it.spaces) }

// OptionSpace returns the option space at index i.
func (it *Itinerary) OptionSpace(i int) (space.CabinSpace, error) {
	if err := it.checkSpace(i); err != nil {
		return space.CabinSpace{}, err
	}
	return it.spaces[i], nil
}

func (it *Itinerary) checkSpace(i int) error {
	if i < 0 || i >= len(it.spaces) {
		return errors.Precondition("space index %d out of range [0,%d)", i, len(it.spaces))
	}
	return nil
}

func (it *Itinerary) block(spaceIdx, seg int) (brand.SpaceBlock, error) {
	if err := it.checkSpace(spaceIdx); err != nil {
		return nil, err
	}
	s := it.spaces[spaceIdx].Space
	if seg < 0 || seg >= len(s) {
		return nil, errors.Precondition("segment index %d out of range [0,%d)", seg, len(s))
	}
	return s[seg], nil
}

// CarrierBrandPairs returns the assignments of space spaceIdx on segment seg.
func (it *Itinerary) CarrierBrandPairs(spaceIdx, seg int) ([]brand.CarrierBrandPair, error) {
	b, err := it.block(spaceIdx, seg)
	if err != nil {
		return nil, err
	}
	return b.Pairs(), nil
}

// BrandFor returns the brand space spaceIdx assigns to carrier in
// direction d on segment seg. A directional lookup that misses falls back
// to the Bothways entry. A lookup with no assignment fails with NOT_FOUND.
func (it *Itinerary) BrandFor(spaceIdx, seg int, carrier brand.Carrier, d brand.Direction) (brand.Code, error) {
	b, err := it.block(spaceIdx, seg)
	if err != nil {
		return "", err
	}
	if c, ok := b[brand.CarrierDirection{Carrier: carrier, Direction: d}]; ok {
		return c, nil
	}
	if d != brand.Bothways {
		if c, ok := b[brand.CarrierDirection{Carrier: carrier, Direction: brand.Bothways}]; ok {
			return c, nil
		}
	}
	return "", errors.New(errors.ErrCodeNotFound, "no brand for %s/%s in space %d segment %d", carrier, d, spaceIdx, seg)
}

// LegCarrierBrandPairs returns the distinct assignments of space spaceIdx
// across all segments of leg.
func (it *Itinerary) LegCarrierBrandPairs(spaceIdx, leg int) ([]brand.CarrierBrandPair, error) {
	if err := it.checkSpace(spaceIdx); err != nil {
		return nil, err
	}
	if leg < 0 || leg >= it.geo.LegCount() {
		return nil, errors.Precondition("leg index %d out of range [0,%d)", leg, it.geo.LegCount())
	}
	var out []brand.CarrierBrandPair
	for seg, b := range it.spaces[spaceIdx].Space {
		if it.geo.LegOf(seg) != leg {
			continue
		}
		for _, p := range b.Pairs() {
			if !slices.Contains(out, p) {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

// SetSpaceResult attaches the pricing engine's result to space i.
func (it *Itinerary) SetSpaceResult(i int, result any) error {
	if err := it.checkSpace(i); err != nil {
		return err
	}
	it.results[i] = result
	return nil
}

// SpaceResult returns what was attached to space i, or nil.
func (it *Itinerary) SpaceResult(i int) (any, error) {
	if err := it.checkSpace(i); err != nil {
		return nil, err
	}
	return it.results[i], nil
}
