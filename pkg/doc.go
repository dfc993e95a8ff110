// Package pkg provides the core libraries for farebrand, the branded fare
// option-space engine.
//
// # Overview
//
// Airlines sell the same flight under several brands (basic, main, flex
// and so on). For every itinerary in a shopping transaction farebrand
// decides which combinations of brands a pricing engine should price, and
// which brands the itinerary offers consistently from end to end. The pkg
// directory is organized into four main areas:
//
//  1. Domain model ([brand]) and ordering ([precedence], [dag])
//  2. Option spaces ([distribute], [space]) and parity ([parity])
//  3. The per-itinerary engine ([branding]) with its input format ([scenario])
//  4. Orchestration ([pipeline]) with caching ([cache]) and diagnostics
//     ([observability], [render])
//
// # Architecture
//
// The typical data flow for one transaction:
//
//	(program, brand) pairs          itinerary geometry
//	         ↓                              ↓
//	  precedence.Orderer  ──────→  branding.Itinerary
//	                                        ↓
//	                          brand table per segment
//	                                        ↓
//	                        space.Generator (distribute)
//	                                        ↓
//	                 option spaces  +  parity.Calculator
//	                                        ↓
//	                               pipeline.Report
//
// # Quick Start
//
// Branding the itineraries of a scenario file:
//
//	import (
//	    "github.com/vnalla55/farebrand/pkg/pipeline"
//	    "github.com/vnalla55/farebrand/pkg/scenario"
//	)
//
//	sc, _ := scenario.Load("transatlantic.toml")
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Run(ctx, pipeline.JobsFromScenario(sc), sc.Pairs,
//	    pipeline.FromScenario(sc.Options))
//
// # Main Packages
//
// [brand] - Brand codes, carriers, directions, cabins, fare markets and the
// option-space types (blocks, spaces, per-segment brand tables).
//
// [precedence] - Infers a total brand order from the submission order of
// (program, brand) pairs, on top of the ordered graph in [dag].
//
// [distribute] - Index mapping functions that spread a short list of
// brands over a larger number of option spaces.
//
// [space] - Generates option spaces from a brand table, with the optional
// baseline and per-cabin layering.
//
// [parity] - Memoized brand-parity calculator over fare-market chains.
//
// [branding] - The per-itinerary engine: tables, cabin filtering, spaces,
// parity modes, sold-out roll-up and per-space results.
//
// [scenario] - TOML scenario files describing programs and itineraries.
//
// [pipeline] - Concurrent, cached batch execution used by the CLI.
//
// [cache] - Report cache backends and key derivation.
//
// [observability] - Hooks for diagnostics such as precedence cycles.
//
// [render] - Graphviz rendering of precedence graphs.
//
// [errors] - Coded errors shared by every package.
//
// [brand]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/brand
// [precedence]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/precedence
// [dag]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/dag
// [distribute]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/distribute
// [space]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/space
// [parity]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/parity
// [branding]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/branding
// [scenario]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/scenario
// [pipeline]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/cache
// [observability]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/observability
// [render]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/render
// [errors]: https://pkg.go.dev/github.com/vnalla55/farebrand/pkg/errors
package pkg
