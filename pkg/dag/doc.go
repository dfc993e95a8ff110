// Package dag provides a small directed graph with deterministic ordering,
// used to infer brand precedence.
//
// # Overview
//
// Brand precedence is never given explicitly. It is implied by the order in
// which (program, brand) pairs were submitted: adjacent pairs of the same
// program say "this brand comes before that one". Those statements form a
// directed graph whose topological order is the brand order.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges with
// [DAG.AddEdge]:
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "basic"})
//	g.AddNode(dag.Node{ID: "flex"})
//	g.AddEdge(dag.Edge{From: "basic", To: "flex"})
//	order, err := g.TopologicalSort()
//
// Query the graph structure with [DAG.Children], [DAG.Parents] and related
// methods. Use [DAG.Validate] to check for cycles without sorting.
//
// # Determinism
//
// Nodes keep their insertion order. [DAG.Nodes], [DAG.Sources] and
// [DAG.TopologicalSort] all honour it, so equal inputs always produce equal
// outputs regardless of map iteration order.
//
// # Cycles
//
// [DAG.TopologicalSort] does not panic or partially sort a cyclic graph. It
// returns [ErrGraphHasCycle] and leaves the fallback policy to the caller.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Callers must synchronize access
// if multiple goroutines read or modify the same graph.
package dag
