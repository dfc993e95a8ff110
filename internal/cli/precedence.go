package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vnalla55/farebrand/pkg/precedence"
	"github.com/vnalla55/farebrand/pkg/render/nodelink"
	"github.com/vnalla55/farebrand/pkg/scenario"
)

// Precedence output formats.
const (
	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPDF  = "pdf"
	formatPNG  = "png"
)

// precedenceCommand creates the precedence command, which prints the brand
// order inferred from a scenario's programs or renders its graph.
func (c *CLI) precedenceCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "precedence <scenario.toml>",
		Short: "Show the brand precedence of a scenario",
		Long: `Precedence resolves the brand order implied by the scenario's programs.

Each program lists its brands cheapest first; consecutive brands of one
program become edges of the precedence graph. Use --format dot, svg, pdf or
png to draw the graph, with each edge labeled by its program.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			o := precedence.New(sc.Pairs, c.Logger)

			if format == formatText {
				printKeyValue(c.Out, "order", fmtBrands(o.Order()))
				printKeyValue(c.Out, "first seen", fmtBrands(o.FirstSeen()))
				if o.Cyclic() {
					printWarning(c.Out, "programs disagree on brand order, using first-seen order")
					for _, e := range o.Conflicts() {
						printDetail(c.Out, "%s before %s (%v)", e.From, e.To, e.Meta[precedence.MetaProgram])
					}
				}
				return nil
			}

			prog := newProgress(c.Logger)
			data, err := renderPrecedence(o, format, detailed)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered precedence graph as %s", format))
			if output == "" {
				_, err = c.Out.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(c.Out, "Wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, dot, svg, pdf, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include ranks in node labels")
	return cmd
}

func renderPrecedence(o *precedence.Orderer, format string, detailed bool) ([]byte, error) {
	dot := nodelink.ToDOT(o.Graph(), nodelink.Options{
		Detailed:  detailed,
		Order:     o.Order(),
		Conflicts: o.Conflicts(),
	})
	switch format {
	case formatDOT:
		return []byte(dot), nil
	case formatSVG:
		return nodelink.RenderSVG(dot)
	case formatPDF:
		return nodelink.RenderPDF(dot)
	case formatPNG:
		return nodelink.RenderPNG(dot, 2.0)
	}
	return nil, fmt.Errorf("unknown format %q (want %s, %s, %s, %s or %s)", format, formatText, formatDOT, formatSVG, formatPDF, formatPNG)
}
