package dag

import (
	"testing"
)

func buildGraph(t *testing.T, nodes []string, edges [][2]string) *DAG {
	t.Helper()
	g := New(nil)
	for _, id := range nodes {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestBackEdges(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		edges [][2]string
		want  [][2]string
	}{
		{
			name:  "no cycles",
			nodes: []string{"a", "b", "c"},
			edges: [][2]string{{"a", "b"}, {"b", "c"}},
		},
		{
			name:  "two-node cycle",
			nodes: []string{"a", "b"},
			edges: [][2]string{{"a", "b"}, {"b", "a"}},
			want:  [][2]string{{"b", "a"}},
		},
		{
			name:  "triangle",
			nodes: []string{"a", "b", "c"},
			edges: [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}},
			want:  [][2]string{{"c", "a"}},
		},
		{
			name:  "two separate cycles",
			nodes: []string{"a", "b", "c", "d"},
			edges: [][2]string{{"a", "b"}, {"b", "a"}, {"c", "d"}, {"d", "c"}},
			want:  [][2]string{{"b", "a"}, {"d", "c"}},
		},
		{
			name:  "cycle below a source",
			nodes: []string{"b", "c", "root"},
			edges: [][2]string{{"root", "b"}, {"b", "c"}, {"c", "b"}},
			want:  [][2]string{{"c", "b"}},
		},
		{
			name:  "self loop",
			nodes: []string{"a"},
			edges: [][2]string{{"a", "a"}},
			want:  [][2]string{{"a", "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, tt.nodes, tt.edges)
			before := g.EdgeCount()

			got := g.BackEdges()
			if len(got) != len(tt.want) {
				t.Fatalf("BackEdges() = %v, want %v", got, tt.want)
			}
			for i, e := range got {
				if e.From != tt.want[i][0] || e.To != tt.want[i][1] {
					t.Errorf("BackEdges()[%d] = %s->%s, want %s->%s", i, e.From, e.To, tt.want[i][0], tt.want[i][1])
				}
			}
			if g.EdgeCount() != before {
				t.Error("BackEdges must not modify the graph")
			}

			for _, e := range got {
				g.RemoveEdge(e.From, e.To)
			}
			if err := g.Validate(); err != nil {
				t.Errorf("graph still cyclic after removing back edges: %v", err)
			}
		})
	}
}
