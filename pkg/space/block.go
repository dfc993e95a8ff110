package space

import (
	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/distribute"
	"github.com/vnalla55/farebrand/pkg/errors"
)

// BlockRequest describes one segment's share of one space.
type BlockRequest struct {
	// Brands holds the ranked candidates per carrier/direction.
	Brands brand.SegmentBrands
	// TotalSpaces is the number of spaces the full run would produce.
	TotalSpaces int
	// SpaceIndex is the space being built, in [0, TotalSpaces).
	SpaceIndex int
	// MaxLen is the longest candidate list on this segment.
	MaxLen int
	// FirstCabin marks the cheapest requested cabin.
	FirstCabin bool
}

// BlockGenerator builds the block for one segment of one space.
type BlockGenerator interface {
	Block(req BlockRequest) (brand.SpaceBlock, error)
}

// DistributedBlocks is the production BlockGenerator. It spreads every
// carrier's candidate list proportionally over the spaces.
type DistributedBlocks struct{}

// Block implements BlockGenerator.
//
// A carrier whose list is only NoBrand contributes NoBrand to the earliest
// spaces (those the segment's longest list maps to its first entry). Above
// the first cabin it is omitted entirely when any other entry on the
// segment has a real brand.
func (DistributedBlocks) Block(req BlockRequest) (brand.SpaceBlock, error) {
	block := make(brand.SpaceBlock, len(req.Brands))
	for _, key := range req.Brands.Keys() {
		list := req.Brands[key]
		if len(list) == 0 {
			return nil, errors.Precondition("empty brand list for %s", key)
		}

		if brand.IsNoBrandOnly(list) {
			if !req.FirstCabin && othersBranded(req.Brands, key) {
				continue
			}
			idx, err := distribute.Proportional(req.SpaceIndex, req.MaxLen, req.TotalSpaces)
			if err != nil {
				return nil, err
			}
			if idx == 0 {
				block.InsertNoBrand(key.Carrier, key.Direction)
			}
			continue
		}

		idx, err := distribute.Proportional(req.SpaceIndex, len(list), req.TotalSpaces)
		if err != nil {
			return nil, err
		}
		block[key] = list[idx]
	}
	return block, nil
}

func othersBranded(seg brand.SegmentBrands, self brand.CarrierDirection) bool {
	for key, list := range seg {
		if key == self {
			continue
		}
		for _, c := range list {
			if c.IsReal() {
				return true
			}
		}
	}
	return false
}
