package brand

import (
	"cmp"
	"fmt"
	"strings"
)

// Code identifies a fare brand (e.g. "economy-basic"). Codes are opaque;
// their order comes from the precedence orderer, not from lexical comparison.
type Code string

// NoBrand is the sentinel meaning "no brand assigned".
const NoBrand Code = "NO_BRAND"

// IsReal reports whether c is an actual brand rather than the sentinel.
func (c Code) IsReal() bool { return c != "" && c != NoBrand }

// Carrier identifies an airline.
type Carrier string

// Direction describes which travel direction of a fare a brand applies to.
type Direction int

const (
	Original Direction = iota
	Reversed
	Bothways
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Original:
		return "original"
	case Reversed:
		return "reversed"
	case Bothways:
		return "bothways"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Opposite returns Reversed for Original and vice versa. Bothways is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Original:
		return Reversed
	case Reversed:
		return Original
	default:
		return d
	}
}

// ParseDirection parses a direction name. The empty string means Bothways.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "original", "o":
		return Original, nil
	case "reversed", "r":
		return Reversed, nil
	case "", "bothways", "both", "b":
		return Bothways, nil
	}
	return Bothways, fmt.Errorf("unknown direction %q", s)
}

// CarrierDirection is the composite key used wherever brand sets are
// partitioned by direction.
type CarrierDirection struct {
	Carrier   Carrier
	Direction Direction
}

// Compare orders keys by carrier, then direction.
func (cd CarrierDirection) Compare(o CarrierDirection) int {
	if c := cmp.Compare(cd.Carrier, o.Carrier); c != 0 {
		return c
	}
	return cmp.Compare(cd.Direction, o.Direction)
}

func (cd CarrierDirection) String() string {
	return fmt.Sprintf("%s/%s", cd.Carrier, cd.Direction)
}

// Cabin is a travel-class tier. Better cabins have lower numeric values.
type Cabin int

const (
	CabinUnknown Cabin = iota
	CabinFirst
	CabinBusiness
	CabinPremiumEconomy
	CabinEconomy
)

// LayeringOrder is the fixed cheapest-to-priciest order used when option
// spaces are generated per cabin.
var LayeringOrder = []Cabin{CabinEconomy, CabinBusiness, CabinFirst}

// String returns the cabin name.
func (c Cabin) String() string {
	switch c {
	case CabinFirst:
		return "first"
	case CabinBusiness:
		return "business"
	case CabinPremiumEconomy:
		return "premium-economy"
	case CabinEconomy:
		return "economy"
	default:
		return "unknown"
	}
}

// ParseCabin parses a cabin name or its single-letter booking code.
func ParseCabin(s string) (Cabin, error) {
	switch strings.ToLower(s) {
	case "":
		return CabinUnknown, nil
	case "first", "f":
		return CabinFirst, nil
	case "business", "c", "j":
		return CabinBusiness, nil
	case "premium-economy", "premium", "w", "s":
		return CabinPremiumEconomy, nil
	case "economy", "y":
		return CabinEconomy, nil
	}
	return CabinUnknown, fmt.Errorf("unknown cabin %q", s)
}

// Bucket maps a cabin onto one of the LayeringOrder tiers.
func (c Cabin) Bucket() Cabin {
	if c == CabinPremiumEconomy {
		return CabinEconomy
	}
	return c
}

// AtLeast reports whether c is the same tier as o or better.
func (c Cabin) AtLeast(o Cabin) bool {
	return c != CabinUnknown && c <= o
}

// ProgramBrand is one (program, brand) pair in the order it was submitted
// for the transaction.
type ProgramBrand struct {
	Program string
	Brand   Code
}

// Entry associates a brand with the program that offers it on a fare
// market, plus the direction and cabin it applies to.
type Entry struct {
	Code      Code
	Program   string
	Direction Direction
	Cabin     Cabin
}

// FareMarket is a contiguous run of segments governed by one carrier. The
// segment range itself is owned by the itinerary geometry.
type FareMarket struct {
	ID      string
	Carrier Carrier
	Brands  []Entry
}

// Codes returns the distinct brand codes offered on the market in entry order.
func (fm *FareMarket) Codes() []Code {
	seen := make(map[Code]bool, len(fm.Brands))
	var out []Code
	for _, e := range fm.Brands {
		if !seen[e.Code] {
			seen[e.Code] = true
			out = append(out, e.Code)
		}
	}
	return out
}

// CarrierBrandPair is one assignment inside a space block.
type CarrierBrandPair struct {
	Carrier   Carrier
	Direction Direction
	Brand     Code
}

func (p CarrierBrandPair) String() string {
	return fmt.Sprintf("%s/%s=%s", p.Carrier, p.Direction, p.Brand)
}
