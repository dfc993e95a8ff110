package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vnalla55/farebrand/pkg/errors"
	"github.com/vnalla55/farebrand/pkg/pipeline"
)

// runOutput is the JSON document written by "run --json".
type runOutput struct {
	TransactionID string             `json:"transaction_id"`
	Reports       []*pipeline.Report `json:"reports"`
	Dropped       []string           `json:"dropped,omitempty"`
	Failures      []runFailure       `json:"failures,omitempty"`
}

type runFailure struct {
	Itinerary string `json:"itinerary"`
	Code      string `json:"code"`
	Error     string `json:"error"`
}

// runCommand creates the run command, which brands every itinerary of a
// scenario through the cached pipeline.
func (c *CLI) runCommand() *cobra.Command {
	var (
		flags   optionFlags
		asJSON  bool
		output  string
		noCache bool
		refresh bool
		itinID  string
		noSpin  bool
	)

	cmd := &cobra.Command{
		Use:   "run <scenario.toml>",
		Short: "Brand every itinerary of a scenario",
		Long: `Run generates option spaces and brand parity for every itinerary of a scenario.

Itineraries are branded concurrently and the reports are cached by content,
so repeated runs over the same scenario are instant. Itineraries left without
any brand are dropped; the command fails when none remain unless
--allow-empty is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sc, opts, err := c.loadScenario(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			opts.Refresh = refresh
			jobs, err := selectJobs(sc, itinID)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			var spin *Spinner
			if !noSpin && !asJSON && c.Logger.GetLevel() > LogDebug {
				spin = newSpinner(ctx, c.Err, fmt.Sprintf("Branding %d itineraries...", len(jobs)))
				spin.Start()
			}
			result, runErr := runner.Run(ctx, jobs, sc.Pairs, opts)
			if spin != nil {
				spin.Stop()
			}
			if result == nil {
				return runErr
			}

			if asJSON {
				if err := c.writeRunJSON(result, output); err != nil {
					return err
				}
				return runErr
			}
			c.printRun(result)
			return runErr
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the reports as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "JSON output file (default stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute reports even when cached")
	cmd.Flags().StringVar(&itinID, "itinerary", "", "only brand the itinerary with this ID")
	cmd.Flags().BoolVar(&noSpin, "no-spinner", false, "disable the progress spinner")

	return cmd
}

func (c *CLI) writeRunJSON(result *pipeline.Result, path string) error {
	out := runOutput{
		TransactionID: result.TransactionID,
		Reports:       result.Reports,
		Dropped:       result.Dropped,
	}
	if out.Reports == nil {
		out.Reports = []*pipeline.Report{}
	}
	for _, f := range result.Failures {
		out.Failures = append(out.Failures, runFailure{
			Itinerary: f.Itinerary,
			Code:      string(errors.GetCode(f.Err)),
			Error:     f.Err.Error(),
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = c.Out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSuccess(c.Out, "Wrote %s", path)
	return nil
}

func (c *CLI) printRun(result *pipeline.Result) {
	w := c.Out
	printTitle(w, "Transaction "+result.TransactionID)
	for _, rep := range result.Reports {
		printSuccess(w, "%s %s", StyleValue.Render(rep.Itinerary), StyleDim.Render(string(rep.Mode)))
		printKeyValue(w, "  parity", fmtBrands(rep.Parity))
		printKeyValue(w, "  spaces", fmt.Sprint(len(rep.Spaces)))
		if len(rep.Programs) > 0 {
			programs := make([]string, len(rep.Programs))
			for i, p := range rep.Programs {
				programs[i] = p.Program + "/" + string(p.Brand)
			}
			printKeyValue(w, "  programs", strings.Join(programs, " "))
		}
	}
	for _, id := range result.Dropped {
		printWarning(w, "%s has no brand with parity", id)
	}
	for _, f := range result.Failures {
		printError(w, "%s: %s", f.Itinerary, errors.UserMessage(f.Err))
	}
	printStats(w, result.Stats.Itineraries, result.Stats.Spaces, result.CacheInfo.Hits)
}
