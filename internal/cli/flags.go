package cli

import (
	"github.com/spf13/cobra"

	"github.com/vnalla55/farebrand/pkg/pipeline"
)

// optionFlags holds command-line overrides for scenario options. Only flags
// that were set explicitly override the file.
type optionFlags struct {
	limit          int
	cabin          string
	directionality bool
	stayInCabin    bool
	perCabin       bool
	catchAll       bool
	parityOverride bool
	interactive    bool
	allowEmpty     bool
	concurrency    int
}

func (f *optionFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.limit, "limit", 0, "maximum number of option spaces including the baseline (0 = unlimited)")
	fs.StringVar(&f.cabin, "cabin", "", "requested cabin: first, business, premium-economy, economy")
	fs.BoolVar(&f.directionality, "directionality", false, "keep brands per fare direction")
	fs.BoolVar(&f.stayInCabin, "stay-in-cabin", false, "only offer brands of the requested cabin")
	fs.BoolVar(&f.perCabin, "per-cabin", false, "layer option spaces by cabin")
	fs.BoolVar(&f.catchAll, "catch-all", false, "skip parity and offer every brand")
	fs.BoolVar(&f.parityOverride, "parity-override", false, "require parity across the whole itinerary")
	fs.BoolVar(&f.interactive, "interactive", false, "interactive shopping: parity from the shopped leg onwards")
	fs.BoolVar(&f.allowEmpty, "allow-empty", false, "succeed even when no itinerary has a valid brand")
	fs.IntVar(&f.concurrency, "concurrency", 0, "itineraries branded in parallel")
}

func (f *optionFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	changed := cmd.Flags().Changed
	if changed("limit") {
		opts.SpaceLimit = f.limit
	}
	if changed("cabin") {
		opts.Cabin = f.cabin
	}
	if changed("directionality") {
		opts.UseDirectionality = f.directionality
	}
	if changed("stay-in-cabin") {
		opts.StayInCabin = f.stayInCabin
	}
	if changed("per-cabin") {
		opts.PerCabin = f.perCabin
	}
	if changed("catch-all") {
		opts.CatchAllBucket = f.catchAll
	}
	if changed("parity-override") {
		opts.ParityOverride = f.parityOverride
	}
	if changed("interactive") {
		opts.InteractiveShopping = f.interactive
	}
	if changed("allow-empty") {
		opts.AllowEmptyResult = f.allowEmpty
	}
	if changed("concurrency") {
		opts.Concurrency = f.concurrency
	}
}
