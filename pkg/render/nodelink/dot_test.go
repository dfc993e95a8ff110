package nodelink

import (
	"strings"
	"testing"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/dag"
)

func precedenceGraph(t *testing.T) *dag.DAG {
	t.Helper()
	g := dag.New(nil)
	for _, id := range []string{"MAIN", "BASIC", "FLEX", "PROMO"} {
		if err := g.AddNode(dag.Node{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	edges := []dag.Edge{
		{From: "BASIC", To: "MAIN", Meta: dag.Metadata{MetaProgram: "US"}},
		{From: "MAIN", To: "FLEX", Meta: dag.Metadata{MetaProgram: "US"}},
		{From: "MAIN", To: "PROMO"},
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestToDOT(t *testing.T) {
	g := precedenceGraph(t)
	dot := ToDOT(g, Options{Order: []brand.Code{"BASIC", "MAIN", "FLEX"}})

	for _, want := range []string{
		"digraph G {",
		`"BASIC" -> "MAIN" [label="US"];`,
		`"MAIN" -> "FLEX" [label="US"];`,
		`"MAIN" -> "PROMO";`,
		`"PROMO" [label="PROMO", style="rounded,filled,dashed"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	basic := strings.Index(dot, `"BASIC" [`)
	mid := strings.Index(dot, `"MAIN" [`)
	promo := strings.Index(dot, `"PROMO" [`)
	if basic > mid || mid > promo {
		t.Errorf("nodes should follow the resolved order, unranked last:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	g := precedenceGraph(t)
	dot := ToDOT(g, Options{Detailed: true, Order: []brand.Code{"BASIC", "MAIN"}})

	if !strings.Contains(dot, `label="MAIN\nrank: 1"`) {
		t.Errorf("detailed label missing rank:\n%s", dot)
	}
	if !strings.Contains(dot, `"FLEX" [label="FLEX", style=`) {
		t.Errorf("unranked node should keep the plain label:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.40 200.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.40 200.00" width="100" height="200"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("SVG without viewBox should be unchanged")
	}
}

func TestToDOTConflicts(t *testing.T) {
	g := precedenceGraph(t)
	if err := g.AddEdge(dag.Edge{From: "FLEX", To: "BASIC", Meta: dag.Metadata{MetaProgram: "EU"}}); err != nil {
		t.Fatal(err)
	}
	dot := ToDOT(g, Options{Conflicts: []dag.Edge{{From: "FLEX", To: "BASIC"}}})

	if !strings.Contains(dot, `"FLEX" -> "BASIC" [label="EU", color=red, fontcolor=red, penwidth=2];`) {
		t.Errorf("conflicting edge not highlighted:\n%s", dot)
	}
	if strings.Count(dot, "penwidth=2") != 1 {
		t.Errorf("only the conflicting edge should be red:\n%s", dot)
	}
}
