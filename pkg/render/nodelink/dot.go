package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/dag"
	"github.com/vnalla55/farebrand/pkg/render"
)

// MetaProgram is the edge metadata key used as the edge label.
const MetaProgram = "program"

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the rank and metadata in node labels.
	// When false, only the brand code is shown.
	Detailed bool

	// Order is the resolved precedence order. Nodes are emitted in this
	// order; nodes missing from it are drawn dashed.
	Order []brand.Code

	// Conflicts are edges that close a cycle. They are drawn in red.
	Conflicts []dag.Edge
}

// ToDOT converts a precedence graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(g *dag.DAG, opts Options) string {
	rank := make(map[string]int, len(opts.Order))
	for i, c := range opts.Order {
		rank[string(c)] = i
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=16];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range orderedNodes(g, rank) {
		r, ranked := rank[n.ID]
		label := fmtLabel(*n, r, ranked, opts.Detailed)
		attrs := fmtAttrs(label, ranked)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		var attrs []string
		if p, ok := e.Meta[MetaProgram]; ok {
			attrs = append(attrs, fmt.Sprintf("label=%q", fmt.Sprint(p)))
		}
		if isConflict(opts.Conflicts, e) {
			attrs = append(attrs, "color=red", "fontcolor=red", "penwidth=2")
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func isConflict(conflicts []dag.Edge, e dag.Edge) bool {
	return slices.ContainsFunc(conflicts, func(c dag.Edge) bool { return c.From == e.From && c.To == e.To })
}

// orderedNodes returns ranked nodes by rank, then the rest in insertion order.
func orderedNodes(g *dag.DAG, rank map[string]int) []*dag.Node {
	nodes := g.Nodes()
	slices.SortStableFunc(nodes, func(a, b *dag.Node) int {
		ra, oka := rank[a.ID]
		rb, okb := rank[b.ID]
		switch {
		case oka && okb:
			return ra - rb
		case oka:
			return -1
		case okb:
			return 1
		}
		return 0
	})
	return nodes
}

func fmtLabel(n dag.Node, rank int, ranked, detailed bool) string {
	if !detailed {
		return n.ID
	}

	var parts []string
	if ranked {
		parts = append(parts, fmt.Sprintf("rank: %d", rank))
	}
	for _, k := range slices.Sorted(maps.Keys(n.Meta)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, n.Meta[k]))
	}
	if len(parts) == 0 {
		return n.ID
	}
	return n.ID + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(label string, ranked bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if !ranked {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
