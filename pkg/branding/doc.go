// Package branding runs the per-itinerary branding computation.
//
// An [Itinerary] owns everything computed for one itinerary: the ranked
// carrier/brand table, the generated option spaces, the brand parity of
// the last parity call, and whatever the pricing engine attaches to each
// space. It reads the itinerary through the [Geometry] interface and never
// modifies it.
//
// # Option spaces
//
// [Itinerary.CalculateOptionSpaces] builds, for every segment, the
// candidate brands of each carrier/direction, sorts them with the brand
// precedence order and hands the table to the space generator. With
// [Options.PerCabin] one table per cabin is generated instead, cheapest
// cabin first.
//
// # Parity
//
// Four operations compute parity, each with a fresh parity calculator:
//
//   - [Itinerary.CalculateBrandParity] over the whole itinerary
//   - [Itinerary.CalculateBrandParityForNonFixedLegs] over the legs still
//     being shopped
//   - [Itinerary.CalculateBrandsForShoppedLegAndRestOfTravel] from the
//     first shopped leg to the end
//   - [Itinerary.CollectAllBrands], which skips parity altogether
//
// The fixed-leg variants narrow fare markets on fixed legs to the brand
// already chosen there and carry that brand forward when every shopped leg
// offers it too.
//
// An Itinerary is not safe for concurrent use. Independent itineraries can
// be processed in parallel.
package branding
