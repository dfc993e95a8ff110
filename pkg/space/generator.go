package space

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/errors"
)

// Options controls one Generate call.
type Options struct {
	// Limit caps the number of returned spaces, baseline included.
	// 0 means unlimited; 1 is rejected because a baseline needs at least
	// one real space beside it.
	Limit int

	// Baseline requests the reserved no-brand space. Only the cheapest
	// cabin contributes it.
	Baseline bool

	// FirstCabin marks the cheapest requested cabin. Above it, carriers
	// without brands are dropped from blocks where others are branded and
	// a lone unbranded space is discarded.
	FirstCabin bool
}

// Validate checks the limit.
func (o Options) Validate() error {
	if o.Limit < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "space limit must not be negative, got %d", o.Limit)
	}
	if o.Limit == 1 {
		return errors.Precondition("space limit 1 leaves no room for a real space next to the baseline")
	}
	return nil
}

// Generator builds option spaces from a ranked brand table.
type Generator struct {
	Blocks BlockGenerator
	Logger *log.Logger
}

// NewGenerator creates a generator. A nil blocks generator means
// DistributedBlocks; a nil logger means log.Default().
func NewGenerator(blocks BlockGenerator, logger *log.Logger) *Generator {
	if blocks == nil {
		blocks = DistributedBlocks{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{Blocks: blocks, Logger: logger}
}

// TotalSpaces returns the number of spaces table produces without a cap:
// the longest candidate list anywhere in the itinerary.
func TotalSpaces(table brand.ItinBrands) int { return table.MaxLen() }

// Generate builds the spaces for table. Every returned space has exactly
// one block per segment. With opts.Baseline the reserved space comes first.
func (g *Generator) Generate(table brand.ItinBrands, opts Options) ([]brand.Space, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	total := TotalSpaces(table)
	count := total
	if opts.Limit > 0 {
		capacity := opts.Limit
		if opts.Baseline {
			capacity--
		}
		count = min(count, capacity)
	}

	segMax := make([]int, len(table))
	for i, seg := range table {
		segMax[i] = seg.MaxLen()
	}

	spaces := make([]brand.Space, 0, count)
	for idx := range count {
		s := make(brand.Space, len(table))
		for segIdx, seg := range table {
			block, err := g.Blocks.Block(BlockRequest{
				Brands:      seg,
				TotalSpaces: total,
				SpaceIndex:  idx,
				MaxLen:      segMax[segIdx],
				FirstCabin:  opts.FirstCabin,
			})
			if err != nil {
				return nil, fmt.Errorf("space %d segment %d: %w", idx, segIdx, err)
			}
			s[segIdx] = block
		}
		spaces = append(spaces, s)
	}

	if !opts.FirstCabin && len(spaces) == 1 && !spaces[0].HasRealBrand() {
		g.Logger.Debug("discarding unbranded space above the first cabin")
		spaces = spaces[:0]
	}

	if !opts.Baseline {
		return spaces, nil
	}

	var baseline brand.Space
	if len(spaces) > 0 {
		baseline = brand.NoBrandSpace(spaces[0])
		if baseline.Equal(spaces[0]) {
			spaces = spaces[1:]
		}
	} else {
		baseline = make(brand.Space, len(table))
		for i := range baseline {
			baseline[i] = brand.SpaceBlock{}
		}
	}

	out := make([]brand.Space, 0, len(spaces)+1)
	out = append(out, baseline)
	return append(out, spaces...), nil
}
