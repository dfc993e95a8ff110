// Package brand defines the data model shared by the branding engine.
//
// # Overview
//
// A fare brand ([Code]) is a marketed fare tier offered by a [Carrier] on a
// [FareMarket]. Brands are partitioned by [CarrierDirection] because a brand
// may apply to fares in the [Original] direction, the [Reversed] direction,
// or [Bothways].
//
// The engine turns per-segment candidate lists ([SegmentBrands]) into
// pricing option spaces. A [Space] holds exactly one [SpaceBlock] per
// itinerary segment; a block maps each carrier/direction to one brand or to
// the [NoBrand] sentinel.
//
// # No-brand merging
//
// A block never keeps separate Original and Reversed NoBrand entries for the
// same carrier. [SpaceBlock.InsertNoBrand] merges them into a single Bothways
// entry as they are inserted, and [SpaceBlock.MergeNoBrands] normalizes an
// existing block. Both operations are idempotent. [NoBrandSpace] derives the
// reserved baseline space from any generated space.
//
// # Cabins
//
// [Cabin] values order travel classes with better cabins numerically lower,
// so CabinFirst < CabinBusiness < CabinPremiumEconomy < CabinEconomy.
// [LayeringOrder] lists the tiers used for per-cabin generation, cheapest
// first.
package brand
