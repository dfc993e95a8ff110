// Package parity finds the brands that can be offered across a whole
// segment range of an itinerary.
//
// A brand has parity over [start, end) when some chain of fare markets
// covers every air segment in the range and each market in the chain
// offers that brand. [Calculator.PossibleBrands] answers this for every
// brand at once and tags each brand with the fare markets that can carry
// it.
//
// The search is dynamic programming over segment start indices: the answer
// for a start index is the union, over the fare markets beginning there,
// of each market's brands intersected with the answer for the segment
// after it. Every start index is solved once and memoized.
package parity
