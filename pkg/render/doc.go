// Package render provides visualization rendering for brand precedence
// graphs.
//
// # Overview
//
// This package contains the output side of the precedence diagnostics:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/vnalla55/farebrand/pkg/render/nodelink
package render
