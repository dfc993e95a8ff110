package pipeline

import (
	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/branding"
	"github.com/vnalla55/farebrand/pkg/cache"
	"github.com/vnalla55/farebrand/pkg/errors"
)

// Report is the serializable outcome for one itinerary.
type Report struct {
	Itinerary      string                  `json:"itinerary"`
	Mode           Mode                    `json:"mode"`
	Spaces         []SpaceReport           `json:"spaces"`
	Parity         []brand.Code            `json:"parity"`
	ParityByMarket map[string][]brand.Code `json:"parity_by_market,omitempty"`
	Programs       []brand.ProgramBrand    `json:"programs,omitempty"`
}

// SpaceReport is one option space. Segments holds the carrier/brand pairs
// of every segment, formatted as "AA/bothways=MAIN".
type SpaceReport struct {
	Index    int        `json:"index"`
	Cabin    string     `json:"cabin,omitempty"`
	Segments [][]string `json:"segments"`
}

// Process brands one itinerary: it generates the option spaces, computes
// parity in the mode selected by opts and records the surviving programs.
func Process(job Job, pairs []brand.ProgramBrand, opts Options) (*Report, *branding.Itinerary, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}
	it, err := branding.New(job.ID, job.Geometry, pairs, opts.BrandingOptions())
	if err != nil {
		return nil, nil, err
	}
	if err := it.CalculateOptionSpaces(); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "option spaces for %s", job.ID)
	}

	mode := opts.ModeFor(job.Geometry)
	var p *branding.Parity
	switch mode {
	case ModeAllBrands:
		p, err = it.CollectAllBrands()
	case ModeWholeItinerary:
		p, err = it.CalculateBrandParity()
	case ModeShoppedLegAndRest:
		p, err = it.CalculateBrandsForShoppedLegAndRestOfTravel()
	default:
		p, err = it.CalculateBrandParityForNonFixedLegs()
	}
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "%s parity for %s", mode, job.ID)
	}

	rep := &Report{
		Itinerary:      job.ID,
		Mode:           mode,
		Parity:         p.Brands,
		ParityByMarket: p.ByMarket,
	}
	if !p.Empty() {
		programs, err := it.UpdateProgramsForCalculatedBrands()
		if err != nil {
			return nil, nil, err
		}
		rep.Programs = programs
	}
	for i, cs := range it.OptionSpaces() {
		sr := SpaceReport{Index: i, Segments: make([][]string, len(cs.Space))}
		if cs.Cabin != brand.CabinUnknown {
			sr.Cabin = cs.Cabin.String()
		}
		for seg, block := range cs.Space {
			cells := block.Pairs()
			sr.Segments[seg] = make([]string, len(cells))
			for k, pr := range cells {
				sr.Segments[seg][k] = pr.String()
			}
		}
		rep.Spaces = append(rep.Spaces, sr)
	}
	return rep, it, nil
}

// fingerprint captures everything about an itinerary that changes its
// report, in a form that hashes deterministically.
type fingerprint struct {
	Pairs    []brand.ProgramBrand `json:"pairs"`
	Segments []fpSegment          `json:"segments"`
	Fixed    []bool               `json:"fixed"`
	Markets  []fpMarket           `json:"markets"`
}

type fpSegment struct {
	Leg   int  `json:"leg"`
	Arunk bool `json:"arunk"`
}

type fpMarket struct {
	ID         string        `json:"id"`
	Carrier    brand.Carrier `json:"carrier"`
	Start      int           `json:"start"`
	End        int           `json:"end"`
	Allowed    []brand.Code  `json:"allowed"`
	Entries    []brand.Entry `json:"entries"`
	FixedBrand brand.Code    `json:"fixed_brand,omitempty"`
}

// Fingerprint hashes an itinerary's geometry together with the
// transaction's program/brand pairs. A nil fare market is a precondition
// error.
func Fingerprint(geo branding.Geometry, pairs []brand.ProgramBrand) (string, error) {
	fp := fingerprint{Pairs: pairs, Fixed: geo.FixedLegs()}
	for seg := range geo.SegmentCount() {
		fp.Segments = append(fp.Segments, fpSegment{Leg: geo.LegOf(seg), Arunk: geo.IsArunk(seg)})
	}
	for i, fm := range geo.FareMarkets() {
		if fm == nil {
			return "", errors.Precondition("fare market %d is nil", i)
		}
		m := fpMarket{
			ID:      fm.ID,
			Carrier: fm.Carrier,
			Start:   geo.StartSegment(fm),
			End:     geo.EndSegment(fm),
			Allowed: geo.Brands(fm),
			Entries: fm.Brands,
		}
		if b, ok := geo.FixedLegBrand(fm); ok {
			m.FixedBrand = b
		}
		fp.Markets = append(fp.Markets, m)
	}
	hash, err := cache.HashJSON(fp)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash itinerary")
	}
	return hash, nil
}

func spaceCount(rep *Report) int {
	if rep == nil {
		return 0
	}
	return len(rep.Spaces)
}
