// Package pipeline runs the branding computation over a batch of
// itineraries.
//
// The CLI and any embedding service share this package so that option
// defaults, parity-mode dispatch, caching and the "no valid brand"
// decision behave the same everywhere.
//
// # Stages
//
// For every itinerary the runner:
//
//  1. Generates the pricing option spaces
//  2. Computes brand parity in the mode selected by [Options.ModeFor]
//  3. Records the (program, brand) pairs that survived parity
//
// Itineraries are independent and are processed concurrently. Itineraries
// whose parity comes out empty are dropped from the result; when none are
// left the run fails with NO_VALID_BRAND unless [Options.AllowEmptyResult]
// is set.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Run(ctx, pipeline.JobsFromScenario(sc), sc.Pairs, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, rep := range result.Reports {
//	    fmt.Println(rep.Itinerary, rep.Parity)
//	}
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/branding"
	"github.com/vnalla55/farebrand/pkg/cache"
	"github.com/vnalla55/farebrand/pkg/errors"
	"github.com/vnalla55/farebrand/pkg/scenario"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultConcurrency is the number of itineraries branded at once.
const DefaultConcurrency = 4

// Mode names the parity operation used for an itinerary.
type Mode string

const (
	// ModeAllBrands offers every brand without checking parity.
	ModeAllBrands Mode = "all-brands"
	// ModeWholeItinerary requires parity across the whole itinerary.
	ModeWholeItinerary Mode = "whole-itinerary"
	// ModeNonFixedLegs requires parity across the legs not yet fixed.
	ModeNonFixedLegs Mode = "non-fixed-legs"
	// ModeShoppedLegAndRest requires parity from the shopped leg onwards.
	ModeShoppedLegAndRest Mode = "shopped-leg-and-rest"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a branding run.
// This struct supports JSON serialization.
type Options struct {
	// Space generation
	SpaceLimit        int    `json:"space_limit,omitempty"`
	UseDirectionality bool   `json:"directionality,omitempty"`
	Cabin             string `json:"cabin,omitempty"`
	StayInCabin       bool   `json:"stay_in_cabin,omitempty"`
	PerCabin          bool   `json:"per_cabin,omitempty"`

	// Parity mode selection
	CatchAllBucket      bool `json:"catch_all_bucket,omitempty"`
	ParityOverride      bool `json:"parity_override,omitempty"`
	InteractiveShopping bool `json:"interactive_shopping,omitempty"`
	AllowEmptyResult    bool `json:"allow_empty_result,omitempty"`

	// Execution
	Concurrency int  `json:"concurrency,omitempty"`
	Refresh     bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	cabin     brand.Cabin
	validated bool
}

// FromScenario converts the [options] table of a scenario file.
func FromScenario(so scenario.Options) Options {
	return Options{
		SpaceLimit:          so.SpaceLimit,
		UseDirectionality:   so.UseDirectionality,
		Cabin:               so.Cabin,
		StayInCabin:         so.StayInCabin,
		PerCabin:            so.PerCabin,
		CatchAllBucket:      so.CatchAllBucket,
		ParityOverride:      so.ParityOverride,
		InteractiveShopping: so.InteractiveShopping,
		AllowEmptyResult:    so.AllowEmptyResult,
		Concurrency:         so.Concurrency,
	}
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.SpaceLimit < 0 || o.SpaceLimit == 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "space limit must be 0 or at least 2, got %d", o.SpaceLimit)
	}
	cabin, err := brand.ParseCabin(o.Cabin)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid cabin")
	}
	o.cabin = cabin
	if o.Concurrency < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "concurrency must not be negative, got %d", o.Concurrency)
	}
	if o.Concurrency == 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// RequestedCabin returns the parsed cabin. It is CabinUnknown before
// ValidateAndSetDefaults or when no cabin was requested.
func (o *Options) RequestedCabin() brand.Cabin { return o.cabin }

// ModeFor selects the parity operation for an itinerary.
func (o *Options) ModeFor(geo branding.Geometry) Mode {
	switch {
	case o.CatchAllBucket:
		return ModeAllBrands
	case o.ParityOverride || !hasFixedLeg(geo):
		return ModeWholeItinerary
	case o.InteractiveShopping:
		return ModeShoppedLegAndRest
	default:
		return ModeNonFixedLegs
	}
}

func hasFixedLeg(geo branding.Geometry) bool {
	for _, f := range geo.FixedLegs() {
		if f {
			return true
		}
	}
	return false
}

// BrandingOptions returns the per-itinerary options.
func (o *Options) BrandingOptions() branding.Options {
	return branding.Options{
		SpaceLimit:        o.SpaceLimit,
		UseDirectionality: o.UseDirectionality,
		RequestedCabin:    o.cabin,
		StayInCabin:       o.StayInCabin,
		PerCabin:          o.PerCabin,
		Logger:            o.Logger,
	}
}

// ReportKeyOpts returns cache key options for a report computed in mode.
func (o *Options) ReportKeyOpts(mode Mode) cache.ReportKeyOpts {
	return cache.ReportKeyOpts{
		Mode:              string(mode),
		SpaceLimit:        o.SpaceLimit,
		UseDirectionality: o.UseDirectionality,
		RequestedCabin:    o.cabin.String(),
		StayInCabin:       o.StayInCabin,
		PerCabin:          o.PerCabin,
	}
}

// =============================================================================
// Results
// =============================================================================

// Job is one itinerary to brand.
type Job struct {
	ID       string
	Geometry branding.Geometry
}

// JobsFromScenario returns one job per scenario itinerary.
func JobsFromScenario(sc *scenario.Scenario) []Job {
	jobs := make([]Job, len(sc.Itineraries))
	for i, it := range sc.Itineraries {
		jobs[i] = Job{ID: it.ID, Geometry: it}
	}
	return jobs
}

// Result contains the outputs of a branding run.
type Result struct {
	// TransactionID identifies the run in logs and reports.
	TransactionID string

	// Reports holds one report per itinerary with a usable brand, in job order.
	Reports []*Report

	// Dropped lists itineraries left without any brand after parity.
	Dropped []string

	// Failures lists itineraries whose computation was aborted.
	Failures []Failure

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo counts report cache hits and misses.
	CacheInfo CacheInfo
}

// Failure records an aborted itinerary.
type Failure struct {
	Itinerary string
	Err       error
}

// Stats contains run statistics.
type Stats struct {
	Itineraries int
	Spaces      int
	Duration    time.Duration
}

// CacheInfo counts report cache lookups.
type CacheInfo struct {
	Hits   int
	Misses int
}
