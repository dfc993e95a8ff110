package brand

import (
	"maps"
	"slices"
	"strings"
)

// SpaceBlock maps each carrier/direction on one segment to its brand.
// NoBrand stands for "no brand assigned".
type SpaceBlock map[CarrierDirection]Code

// Keys returns the block keys in carrier/direction order.
func (b SpaceBlock) Keys() []CarrierDirection {
	return slices.SortedFunc(maps.Keys(b), CarrierDirection.Compare)
}

// Clone returns a shallow copy of b. A nil block clones to an empty one.
func (b SpaceBlock) Clone() SpaceBlock {
	out := make(SpaceBlock, len(b))
	maps.Copy(out, b)
	return out
}

// Equal reports whether both blocks hold the same assignments.
func (b SpaceBlock) Equal(o SpaceBlock) bool { return maps.Equal(b, o) }

// HasRealBrand reports whether any entry is an actual brand.
func (b SpaceBlock) HasRealBrand() bool {
	for _, c := range b {
		if c.IsReal() {
			return true
		}
	}
	return false
}

// Pairs returns the block content as sorted carrier/brand pairs.
func (b SpaceBlock) Pairs() []CarrierBrandPair {
	keys := b.Keys()
	out := make([]CarrierBrandPair, len(keys))
	for i, k := range keys {
		out[i] = CarrierBrandPair{Carrier: k.Carrier, Direction: k.Direction, Brand: b[k]}
	}
	return out
}

// InsertNoBrand records NoBrand for carrier in direction d without ever
// duplicating a direction: if the opposite direction already holds NoBrand
// the two collapse into one Bothways entry, and an existing Bothways NoBrand
// already covers either direction.
func (b SpaceBlock) InsertNoBrand(carrier Carrier, d Direction) {
	both := CarrierDirection{carrier, Bothways}
	if d == Bothways {
		for _, dir := range []Direction{Original, Reversed} {
			k := CarrierDirection{carrier, dir}
			if c, ok := b[k]; ok && c == NoBrand {
				delete(b, k)
			}
		}
		b[both] = NoBrand
		return
	}
	if c, ok := b[both]; ok && c == NoBrand {
		return
	}
	opp := CarrierDirection{carrier, d.Opposite()}
	if c, ok := b[opp]; ok && c == NoBrand {
		delete(b, opp)
		b[both] = NoBrand
		return
	}
	b[CarrierDirection{carrier, d}] = NoBrand
}

// MergeNoBrands collapses every carrier's Original+Reversed NoBrand pair
// into one Bothways entry. It is idempotent.
func (b SpaceBlock) MergeNoBrands() {
	for _, k := range b.Keys() {
		if c, ok := b[k]; ok && c == NoBrand {
			delete(b, k)
			b.InsertNoBrand(k.Carrier, k.Direction)
		}
	}
}

// NoBrandBlock derives the baseline block for b: every brand is replaced
// by NoBrand and directional pairs are merged into Bothways.
func NoBrandBlock(b SpaceBlock) SpaceBlock {
	out := make(SpaceBlock, len(b))
	for _, k := range b.Keys() {
		out.InsertNoBrand(k.Carrier, k.Direction)
	}
	return out
}

func (b SpaceBlock) String() string {
	pairs := b.Pairs()
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Space is one complete pricing option: exactly one block per segment.
type Space []SpaceBlock

// Equal reports whether both spaces hold equal blocks segment by segment.
func (s Space) Equal(o Space) bool {
	return slices.EqualFunc(s, o, SpaceBlock.Equal)
}

// HasRealBrand reports whether any segment carries an actual brand.
func (s Space) HasRealBrand() bool {
	return slices.ContainsFunc(s, SpaceBlock.HasRealBrand)
}

// NoBrandSpace derives the baseline space for s.
func NoBrandSpace(s Space) Space {
	out := make(Space, len(s))
	for i, b := range s {
		out[i] = NoBrandBlock(b)
	}
	return out
}

func (s Space) String() string {
	parts := make([]string, len(s))
	for i, b := range s {
		parts[i] = b.String()
	}
	return strings.Join(parts, " | ")
}

// SegmentBrands holds the ranked candidate brands for every carrier and
// direction on one segment. A list consisting solely of NoBrand means the
// carrier has no applicable brand there.
type SegmentBrands map[CarrierDirection][]Code

// Keys returns the keys in carrier/direction order.
func (s SegmentBrands) Keys() []CarrierDirection {
	return slices.SortedFunc(maps.Keys(s), CarrierDirection.Compare)
}

// MaxLen returns the longest candidate list length on the segment.
func (s SegmentBrands) MaxLen() int {
	n := 0
	for _, l := range s {
		n = max(n, len(l))
	}
	return n
}

// IsNoBrandOnly reports whether l is exactly the single NoBrand sentinel.
func IsNoBrandOnly(l []Code) bool {
	return len(l) == 1 && l[0] == NoBrand
}

// ItinBrands holds one SegmentBrands per itinerary segment.
type ItinBrands []SegmentBrands

// MaxLen returns the longest candidate list across all segments.
func (it ItinBrands) MaxLen() int {
	n := 0
	for _, s := range it {
		n = max(n, s.MaxLen())
	}
	return n
}

// HasRealBrand reports whether any segment offers at least one real brand.
func (it ItinBrands) HasRealBrand() bool {
	for _, s := range it {
		for _, l := range s {
			if slices.ContainsFunc(l, Code.IsReal) {
				return true
			}
		}
	}
	return false
}
