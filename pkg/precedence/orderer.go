package precedence

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/dag"
	"github.com/vnalla55/farebrand/pkg/observability"
)

// MetaProgram is the edge metadata key holding the program that implied the edge.
const MetaProgram = "program"

// Orderer resolves brand precedence once and then answers comparisons.
// It is immutable after construction and safe for concurrent reads.
type Orderer struct {
	graph     *dag.DAG
	firstSeen []brand.Code
	order     []brand.Code
	rank      map[brand.Code]int
	cyclic    bool
	conflicts []dag.Edge
	logger    *log.Logger
}

// New builds the precedence graph from pairs and resolves the order.
// A nil logger means log.Default().
func New(pairs []brand.ProgramBrand, logger *log.Logger) *Orderer {
	if logger == nil {
		logger = log.Default()
	}
	o := &Orderer{graph: dag.New(nil), logger: logger}

	for _, p := range pairs {
		if _, ok := o.graph.Node(string(p.Brand)); ok {
			continue
		}
		_ = o.graph.AddNode(dag.Node{ID: string(p.Brand)})
		o.firstSeen = append(o.firstSeen, p.Brand)
	}

	for i := 1; i < len(pairs); i++ {
		prev, curr := pairs[i-1], pairs[i]
		if prev.Program != curr.Program || prev.Brand == curr.Brand {
			continue
		}
		from, to := string(prev.Brand), string(curr.Brand)
		if o.graph.HasEdge(from, to) {
			continue
		}
		_ = o.graph.AddEdge(dag.Edge{From: from, To: to, Meta: dag.Metadata{MetaProgram: prev.Program}})
	}

	ids, err := o.graph.TopologicalSort()
	switch {
	case errors.Is(err, dag.ErrGraphHasCycle):
		o.cyclic = true
		o.order = slices.Clone(o.firstSeen)
		o.conflicts = o.graph.BackEdges()
		logger.Warn("brand precedence has a cycle, using first-seen order",
			"brands", len(o.order),
			"conflicts", describeEdges(o.conflicts))
		observability.Branding().OnPrecedenceCycle(slices.Clone(o.order))
	default:
		o.order = make([]brand.Code, len(ids))
		for i, id := range ids {
			o.order[i] = brand.Code(id)
		}
	}

	o.rank = make(map[brand.Code]int, len(o.order))
	for i, c := range o.order {
		o.rank[c] = i
	}
	return o
}

// Order returns a copy of the resolved total order.
func (o *Orderer) Order() []brand.Code { return slices.Clone(o.order) }

// FirstSeen returns a copy of the brands in first-seen order.
func (o *Orderer) FirstSeen() []brand.Code { return slices.Clone(o.firstSeen) }

// Cyclic reports whether the first-seen fallback was used.
func (o *Orderer) Cyclic() bool { return o.cyclic }

// Conflicts returns the edges that close a cycle, or nil when the order
// resolved. Each edge's metadata names the program that implied it.
func (o *Orderer) Conflicts() []dag.Edge { return slices.Clone(o.conflicts) }

// Graph returns the precedence graph. Callers must not modify it.
func (o *Orderer) Graph() *dag.DAG { return o.graph }

// Compare returns a negative number when a precedes b, zero when they are
// the same brand and a positive number otherwise.
func (o *Orderer) Compare(a, b brand.Code) int {
	if a == b {
		return 0
	}
	ra, okA := o.rank[a]
	rb, okB := o.rank[b]
	if !okA || !okB {
		o.logger.Warn("brand missing from precedence order, comparing lexically", "a", a, "b", b)
		observability.Branding().OnUnorderedBrands(a, b)
		return cmp.Compare(a, b)
	}
	return cmp.Compare(ra, rb)
}

// Less reports whether a strictly precedes b.
func (o *Orderer) Less(a, b brand.Code) bool { return o.Compare(a, b) < 0 }

// Sort orders codes in place by precedence.
func (o *Orderer) Sort(codes []brand.Code) { slices.SortStableFunc(codes, o.Compare) }

func describeEdges(edges []dag.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = fmt.Sprintf("%s>%s (%v)", e.From, e.To, e.Meta[MetaProgram])
	}
	return out
}
