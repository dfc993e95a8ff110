package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/branding"
	"github.com/vnalla55/farebrand/pkg/pipeline"
	"github.com/vnalla55/farebrand/pkg/scenario"
)

// spacesCommand creates the spaces command, which prints the brand table
// and the generated option spaces of each itinerary.
func (c *CLI) spacesCommand() *cobra.Command {
	var (
		flags  optionFlags
		itinID string
		table  bool
	)

	cmd := &cobra.Command{
		Use:   "spaces <scenario.toml>",
		Short: "Show the option spaces of each itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, opts, err := c.loadScenario(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			jobs, err := selectJobs(sc, itinID)
			if err != nil {
				return err
			}
			for _, job := range jobs {
				it, err := branding.New(job.ID, job.Geometry, sc.Pairs, opts.BrandingOptions())
				if err != nil {
					return err
				}
				if err := it.CalculateOptionSpaces(); err != nil {
					return err
				}
				c.printSpaces(it, segmentsOf(sc, job.ID), table, opts.RequestedCabin())
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&itinID, "itinerary", "", "only show the itinerary with this ID")
	cmd.Flags().BoolVar(&table, "table", false, "also print the per-segment brand table")
	return cmd
}

func segmentsOf(sc *scenario.Scenario, id string) []scenario.Segment {
	if it, ok := sc.Itinerary(id); ok {
		return it.Segments()
	}
	return nil
}

func (c *CLI) printSpaces(it *branding.Itinerary, segments []scenario.Segment, withTable bool, cabin brand.Cabin) {
	w := c.Out
	printTitle(w, it.ID())
	if withTable {
		for seg, brands := range it.Table(cabin) {
			for _, k := range brands.Keys() {
				printDetail(w, "%s %s: %s", segmentLabel(segments, seg), k, fmtBrands(brands[k]))
			}
		}
	}
	for i, cs := range it.OptionSpaces() {
		label := fmt.Sprintf("#%d", i)
		if cs.Cabin != brand.CabinUnknown {
			label += " " + cs.Cabin.String()
		}
		parts := make([]string, len(cs.Space))
		for seg, block := range cs.Space {
			pairs := block.Pairs()
			cells := make([]string, len(pairs))
			for k, p := range pairs {
				cells[k] = fmt.Sprintf("%s %s", StyleDim.Render(fmt.Sprintf("%s/%s", p.Carrier, p.Direction)), fmtBrand(p.Brand))
			}
			parts[seg] = strings.Join(cells, ", ")
		}
		printKeyValue(w, label, strings.Join(parts, StyleDim.Render(" | ")))
	}
}

func segmentLabel(segments []scenario.Segment, seg int) string {
	if seg < len(segments) && segments[seg].From != "" {
		return fmt.Sprintf("%s-%s", segments[seg].From, segments[seg].To)
	}
	return fmt.Sprintf("seg %d", seg)
}

// parityCommand creates the parity command, which prints the brands offered
// consistently by each itinerary and the fare markets carrying them.
func (c *CLI) parityCommand() *cobra.Command {
	var (
		flags  optionFlags
		itinID string
	)

	cmd := &cobra.Command{
		Use:   "parity <scenario.toml>",
		Short: "Show brand parity for each itinerary",
		Long: `Parity lists the brands every itinerary offers consistently.

The parity mode follows the scenario options: --catch-all skips parity,
--parity-override checks the whole itinerary, --interactive checks from the
shopped leg onwards, and otherwise only the legs not yet fixed are checked.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, opts, err := c.loadScenario(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			jobs, err := selectJobs(sc, itinID)
			if err != nil {
				return err
			}
			for _, job := range jobs {
				rep, _, err := pipeline.Process(job, sc.Pairs, opts)
				if err != nil {
					return err
				}
				c.printParity(rep)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&itinID, "itinerary", "", "only show the itinerary with this ID")
	return cmd
}

func (c *CLI) printParity(rep *pipeline.Report) {
	w := c.Out
	printTitle(w, rep.Itinerary)
	printKeyValue(w, "mode", string(rep.Mode))
	printKeyValue(w, "brands", fmtBrands(rep.Parity))
	for _, id := range sortedKeys(rep.ParityByMarket) {
		printDetail(w, "%s: %s", id, fmtBrands(rep.ParityByMarket[id]))
	}
	if len(rep.Parity) == 0 {
		printWarning(w, "no brand with parity")
	}
}
