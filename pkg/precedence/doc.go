// Package precedence derives a total brand order from the sequence in which
// (program, brand) pairs were submitted for a transaction.
//
// # How the order is inferred
//
// Programs list their brands cheapest first, and the submitted pair sequence
// keeps that listing. Whenever two consecutive pairs belong to the same
// program, the earlier brand is taken to precede the later one. Those
// adjacencies become edges of a [dag.DAG] over the unique brand codes, and a
// topological sort of that graph yields the order.
//
// Two programs can disagree (A before B in one, B before A in the other).
// The graph then has a cycle and the orderer falls back to the order in
// which brands were first seen. The fallback is reported through
// [observability.BrandingHooks.OnPrecedenceCycle]; it is never an error.
//
// # Comparing brands
//
// [Orderer.Compare] is suitable for [slices.SortFunc]. Brands missing from
// the resolved order compare lexically, which is reported as an anomaly.
//
// [dag.DAG]: github.com/vnalla55/farebrand/pkg/dag.DAG
// [observability.BrandingHooks.OnPrecedenceCycle]: github.com/vnalla55/farebrand/pkg/observability.BrandingHooks
package precedence
