// Package space generates pricing option spaces from ranked brand tables.
//
// An option space is one complete (carrier, brand) choice per itinerary
// segment. Given, for every segment, each carrier/direction's candidate
// brands in precedence order, the [Generator] emits as many spaces as the
// longest candidate list (optionally capped) and picks, for space i, the
// candidate at [distribute.Proportional](i, len, total) from every list.
// Short lists are stretched over the spaces; long lists decide how many
// spaces there are.
//
// # The baseline
//
// The cheapest cabin also contributes a reserved baseline space: the first
// generated space with every brand replaced by [brand.NoBrand]. It always
// comes first. When nothing in the first space was actually branded, the
// baseline and that space are the same and only the baseline is kept.
//
// # Cabin layering
//
// [Generator.GenerateLayered] feeds one table per cabin, cheapest first,
// through the same generator under a shared space budget.
//
// [distribute.Proportional]: github.com/vnalla55/farebrand/pkg/distribute.Proportional
package space
