package branding

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/errors"
	"github.com/vnalla55/farebrand/pkg/observability"
	"github.com/vnalla55/farebrand/pkg/precedence"
	"github.com/vnalla55/farebrand/pkg/space"
)

// Orderer compares brands by precedence.
type Orderer interface {
	Compare(a, b brand.Code) int
}

// OrdererFactory resolves the precedence order for a transaction's
// (program, brand) sequence.
type OrdererFactory func(pairs []brand.ProgramBrand, logger *log.Logger) Orderer

// SpaceGenerator turns ranked brand tables into option spaces.
type SpaceGenerator interface {
	Generate(table brand.ItinBrands, opts space.Options) ([]brand.Space, error)
	GenerateLayered(tables []space.CabinTable, limit int) ([]space.CabinSpace, error)
}

// Options configures an Itinerary.
type Options struct {
	// SpaceLimit caps the option spaces (0 = unlimited, 1 is invalid).
	SpaceLimit int
	// UseDirectionality keeps Original/Reversed brands apart instead of
	// collapsing them to Bothways.
	UseDirectionality bool
	// RequestedCabin filters brands by cabin. CabinUnknown disables the filter.
	RequestedCabin brand.Cabin
	// StayInCabin keeps only brands of the requested cabin; otherwise
	// better cabins are allowed too.
	StayInCabin bool
	// PerCabin layers the option spaces by cabin.
	PerCabin bool

	// Orderer overrides the precedence orderer. Nil uses pkg/precedence.
	Orderer OrdererFactory
	// Generator overrides the space generator. Nil uses pkg/space.
	Generator SpaceGenerator
	// Logger receives debug output. Nil means log.Default().
	Logger *log.Logger
}

// Itinerary holds the branding state of one itinerary.
type Itinerary struct {
	id     string
	geo    Geometry
	pairs  []brand.ProgramBrand
	opts   Options
	logger *log.Logger

	orderer  Orderer
	spaces   []space.CabinSpace
	results  map[int]any
	soldOut  map[spaceLeg]SoldOutStatus
	parity   *Parity
	programs []brand.ProgramBrand
}

// New creates the branding state for the itinerary id. pairs is the
// transaction's (program, brand) sequence as submitted.
func New(id string, geo Geometry, pairs []brand.ProgramBrand, opts Options) (*Itinerary, error) {
	if geo == nil {
		return nil, errors.Precondition("itinerary %s has no geometry", id)
	}
	if opts.SpaceLimit < 0 || opts.SpaceLimit == 1 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "space limit must be 0 or at least 2, got %d", opts.SpaceLimit)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Orderer == nil {
		opts.Orderer = func(pairs []brand.ProgramBrand, logger *log.Logger) Orderer {
			return precedence.New(pairs, logger)
		}
	}
	if opts.Generator == nil {
		opts.Generator = space.NewGenerator(nil, opts.Logger)
	}
	return &Itinerary{
		id:     id,
		geo:    geo,
		pairs:  pairs,
		opts:   opts,
		logger: opts.Logger.With("itin", id),
	}, nil
}

// ID returns the itinerary identifier.
func (it *Itinerary) ID() string { return it.id }

// Geometry returns the geometry the itinerary was created with.
func (it *Itinerary) Geometry() Geometry { return it.geo }

// order returns the brand order, resolving it on first use.
func (it *Itinerary) order() Orderer {
	if it.orderer == nil {
		it.orderer = it.opts.Orderer(it.pairs, it.logger)
	}
	return it.orderer
}

// CalculateOptionSpaces builds the option spaces and stores them indexed
// from 0. It replaces spaces, results and sold-out statuses of a previous
// call.
func (it *Itinerary) CalculateOptionSpaces() error {
	hooks := observability.Branding()

	unfiltered := it.buildTable(nil)
	hooks.OnBrandTable(it.id, observability.StageUnfiltered, brand.CabinUnknown, unfiltered)
	if !unfiltered.HasRealBrand() {
		it.logger.Debug("no applicable brands")
		hooks.OnNoApplicableBrands(it.id)
	}

	var spaces []space.CabinSpace
	if it.opts.PerCabin {
		var tables []space.CabinTable
		for _, cabin := range it.layeringCabins() {
			table := it.buildTable(bucketFilter(cabin))
			hooks.OnBrandTable(it.id, observability.StageFiltered, cabin, table)
			hooks.OnCabinFiltered(it.id, cabin, table.HasRealBrand())
			tables = append(tables, space.CabinTable{Cabin: cabin, Table: table})
		}
		layered, err := it.opts.Generator.GenerateLayered(tables, it.opts.SpaceLimit)
		if err != nil {
			return fmt.Errorf("itinerary %s: %w", it.id, err)
		}
		spaces = layered
	} else {
		table := unfiltered
		if filter := it.requestedFilter(); filter != nil {
			table = it.buildTable(filter)
			hooks.OnBrandTable(it.id, observability.StageFiltered, it.opts.RequestedCabin, table)
			hooks.OnCabinFiltered(it.id, it.opts.RequestedCabin, table.HasRealBrand())
		}
		generated, err := it.opts.Generator.Generate(table, space.Options{
			Limit:      it.opts.SpaceLimit,
			Baseline:   true,
			FirstCabin: true,
		})
		if err != nil {
			return fmt.Errorf("itinerary %s: %w", it.id, err)
		}
		for _, s := range generated {
			spaces = append(spaces, space.CabinSpace{Cabin: it.opts.RequestedCabin, Space: s})
		}
	}

	cabins, groups := groupByCabin(spaces)
	for _, cabin := range cabins {
		hooks.OnSpacesGenerated(it.id, cabin, groups[cabin])
	}

	it.spaces = spaces
	it.results = make(map[int]any)
	it.soldOut = make(map[spaceLeg]SoldOutStatus)
	it.logger.Debug("calculated option spaces", "count", len(spaces))
	return nil
}

// layeringCabins returns the cabins to layer, cheapest first, skipping
// those cheaper than the requested cabin.
func (it *Itinerary) layeringCabins() []brand.Cabin {
	var out []brand.Cabin
	for _, c := range brand.LayeringOrder {
		if it.opts.RequestedCabin != brand.CabinUnknown && !c.AtLeast(it.opts.RequestedCabin.Bucket()) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// requestedFilter returns the cabin filter for non-layered generation.
func (it *Itinerary) requestedFilter() func(brand.Cabin) bool {
	requested := it.opts.RequestedCabin
	if requested == brand.CabinUnknown {
		return nil
	}
	if it.opts.StayInCabin {
		return bucketFilter(requested.Bucket())
	}
	return func(c brand.Cabin) bool { return entryCabin(c).AtLeast(requested) }
}

func bucketFilter(cabin brand.Cabin) func(brand.Cabin) bool {
	return func(c brand.Cabin) bool { return entryCabin(c).Bucket() == cabin }
}

// entryCabin treats brands without a cabin as economy.
func entryCabin(c brand.Cabin) brand.Cabin {
	if c == brand.CabinUnknown {
		return brand.CabinEconomy
	}
	return c
}

// groupByCabin groups spaces by cabin and returns the cabins in the order
// they first appear.
func groupByCabin(spaces []space.CabinSpace) ([]brand.Cabin, map[brand.Cabin][]brand.Space) {
	var cabins []brand.Cabin
	groups := make(map[brand.Cabin][]brand.Space)
	for _, cs := range spaces {
		if _, ok := groups[cs.Cabin]; !ok {
			cabins = append(cabins, cs.Cabin)
		}
		groups[cs.Cabin] = append(groups[cs.Cabin], cs.Space)
	}
	return cabins, groups
}
