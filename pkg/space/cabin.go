package space

import (
	"fmt"

	"github.com/vnalla55/farebrand/pkg/brand"
)

// CabinTable is the filtered brand table for one cabin.
type CabinTable struct {
	Cabin brand.Cabin
	Table brand.ItinBrands
}

// CabinSpace is a generated space tagged with the cabin it was built for.
// Cabin is CabinUnknown when spaces are not layered.
type CabinSpace struct {
	Cabin brand.Cabin
	Space brand.Space
}

// GenerateLayered generates spaces per cabin. tables must be ordered
// cheapest cabin first; only the first one contributes the baseline.
// limit is shared by all cabins (0 = unlimited) and generation stops once
// it is used up.
func (g *Generator) GenerateLayered(tables []CabinTable, limit int) ([]CabinSpace, error) {
	if err := (Options{Limit: limit}).Validate(); err != nil {
		return nil, err
	}

	var out []CabinSpace
	remaining := limit
	for i, ct := range tables {
		first := i == 0
		if limit > 0 && remaining <= 0 {
			g.Logger.Debug("space budget exhausted", "cabin", ct.Cabin)
			break
		}

		opts := Options{Baseline: first, FirstCabin: first}
		if limit > 0 {
			opts.Limit = remaining
		}
		if limit > 0 && remaining == 1 {
			// A single slot is not a valid limit on its own; generate two
			// and keep one.
			opts.Limit = 2
		}
		spaces, err := g.Generate(ct.Table, opts)
		if err != nil {
			return nil, fmt.Errorf("cabin %s: %w", ct.Cabin, err)
		}
		if limit > 0 && len(spaces) > remaining {
			spaces = spaces[:remaining]
		}

		g.Logger.Debug("generated cabin spaces", "cabin", ct.Cabin, "count", len(spaces))
		for _, s := range spaces {
			out = append(out, CabinSpace{Cabin: ct.Cabin, Space: s})
		}
		if limit > 0 {
			remaining -= len(spaces)
		}
	}
	return out, nil
}
