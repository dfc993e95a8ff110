// Package nodelink renders brand precedence graphs as node-link diagrams.
//
// # Overview
//
// Each brand is a box and each precedence edge an arrow labeled with the
// program whose brand list implied it. Diagrams help explain why a
// transaction's brands sort the way they do, or where a cycle came from.
//
// # Usage
//
// Convert a precedence graph to DOT format, then render to SVG:
//
//	o := precedence.New(pairs, logger)
//	dot := nodelink.ToDOT(o.Graph(), nodelink.Options{Order: o.Order()})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the resolved rank and metadata
//   - Order: The resolved precedence order used for ranks and node order
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
