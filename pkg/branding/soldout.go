package branding

import (
	"fmt"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/errors"
)

// SoldOutStatus is the pricing outcome of one option space on one leg.
// Higher values are better.
type SoldOutStatus int

const (
	NotOffered SoldOutStatus = iota
	SoldOut
	Available
)

func (s SoldOutStatus) String() string {
	switch s {
	case NotOffered:
		return "not-offered"
	case SoldOut:
		return "sold-out"
	case Available:
		return "available"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseSoldOutStatus parses a status name.
func ParseSoldOutStatus(s string) (SoldOutStatus, error) {
	switch s {
	case "not-offered", "":
		return NotOffered, nil
	case "sold-out":
		return SoldOut, nil
	case "available":
		return Available, nil
	}
	return NotOffered, errors.New(errors.ErrCodeInvalidArgument, "unknown sold-out status %q", s)
}

type spaceLeg struct {
	space, leg int
}

// LegBrand keys the sold-out rollup.
type LegBrand struct {
	Leg   int
	Brand brand.Code
}

// SetSoldOutStatus records the pricing outcome of space spaceIdx on leg.
func (it *Itinerary) SetSoldOutStatus(spaceIdx, leg int, status SoldOutStatus) error {
	if err := it.checkSpace(spaceIdx); err != nil {
		return err
	}
	if leg < 0 || leg >= it.geo.LegCount() {
		return errors.Precondition("leg index %d out of range [0,%d)", leg, it.geo.LegCount())
	}
	it.soldOut[spaceLeg{spaceIdx, leg}] = status
	return nil
}

// SoldOutRollup returns, per leg and brand, the best status reported by
// any space offering that brand on that leg (Available over SoldOut over
// NotOffered). Spaces without a reported status are ignored.
func (it *Itinerary) SoldOutRollup() map[LegBrand]SoldOutStatus {
	out := make(map[LegBrand]SoldOutStatus)
	for k, status := range it.soldOut {
		pairs, err := it.LegCarrierBrandPairs(k.space, k.leg)
		if err != nil {
			continue
		}
		for _, p := range pairs {
			if !p.Brand.IsReal() {
				continue
			}
			lb := LegBrand{Leg: k.leg, Brand: p.Brand}
			if prev, ok := out[lb]; !ok || status > prev {
				out[lb] = status
			}
		}
	}
	return out
}
