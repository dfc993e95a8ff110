package scenario

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/errors"
)

// Options mirrors the [options] table. Unset fields keep their zero value.
type Options struct {
	SpaceLimit          int    `toml:"space_limit"`
	UseDirectionality   bool   `toml:"directionality"`
	Cabin               string `toml:"cabin"`
	StayInCabin         bool   `toml:"stay_in_cabin"`
	PerCabin            bool   `toml:"per_cabin"`
	CatchAllBucket      bool   `toml:"catch_all_bucket"`
	ParityOverride      bool   `toml:"parity_override"`
	InteractiveShopping bool   `toml:"interactive_shopping"`
	AllowEmptyResult    bool   `toml:"allow_empty_result"`
	Concurrency         int    `toml:"concurrency"`
}

// Scenario is a loaded scenario file.
type Scenario struct {
	Options     Options
	Pairs       []brand.ProgramBrand
	Itineraries []*Itinerary
	// Undecoded lists keys in the file that were not understood.
	Undecoded []string
}

type fileProgram struct {
	Program string   `toml:"program"`
	Brands  []string `toml:"brands"`
}

type fileBrand struct {
	Code      string `toml:"code"`
	Program   string `toml:"program"`
	Direction string `toml:"direction"`
	Cabin     string `toml:"cabin"`
}

type fileMarket struct {
	ID         string      `toml:"id"`
	Carrier    string      `toml:"carrier"`
	Start      int         `toml:"start"`
	End        int         `toml:"end"`
	FixedBrand string      `toml:"fixed_brand"`
	Brands     []fileBrand `toml:"brands"`
}

type fileSegment struct {
	Leg   int    `toml:"leg"`
	Arunk bool   `toml:"arunk"`
	From  string `toml:"from"`
	To    string `toml:"to"`
}

type fileItinerary struct {
	ID          string        `toml:"id"`
	Brands      []string      `toml:"brands"`
	FixedLegs   []bool        `toml:"fixed_legs"`
	Segments    []fileSegment `toml:"segments"`
	FareMarkets []fileMarket  `toml:"fare_markets"`
}

type file struct {
	Options     Options         `toml:"options"`
	Programs    []fileProgram   `toml:"programs"`
	Itineraries []fileItinerary `toml:"itineraries"`
}

// Load reads a scenario from path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read scenario %s", path)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario.
func Parse(r io.Reader) (*Scenario, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode scenario")
	}

	s := &Scenario{Options: f.Options}
	for _, k := range md.Undecoded() {
		s.Undecoded = append(s.Undecoded, k.String())
	}

	if f.Options.SpaceLimit < 0 || f.Options.SpaceLimit == 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "space_limit must be 0 or at least 2, got %d", f.Options.SpaceLimit)
	}
	if _, err := brand.ParseCabin(f.Options.Cabin); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "options")
	}

	for _, p := range f.Programs {
		if err := errors.ValidateProgramID(p.Program); err != nil {
			return nil, err
		}
		for _, b := range p.Brands {
			if err := errors.ValidateBrandCode(b, string(brand.NoBrand)); err != nil {
				return nil, fmt.Errorf("program %s: %w", p.Program, err)
			}
			s.Pairs = append(s.Pairs, brand.ProgramBrand{Program: p.Program, Brand: brand.Code(b)})
		}
	}

	qualified := make(map[brand.Code]bool, len(s.Pairs))
	for _, p := range s.Pairs {
		qualified[p.Brand] = true
	}

	seen := make(map[string]bool, len(f.Itineraries))
	for i, fi := range f.Itineraries {
		if fi.ID == "" {
			fi.ID = fmt.Sprintf("itin-%d", i+1)
		}
		if seen[fi.ID] {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "duplicate itinerary id %q", fi.ID)
		}
		seen[fi.ID] = true

		it, err := buildItinerary(fi, qualified)
		if err != nil {
			return nil, fmt.Errorf("itinerary %s: %w", fi.ID, err)
		}
		s.Itineraries = append(s.Itineraries, it)
	}
	return s, nil
}

// Itinerary returns the itinerary with the given ID.
func (s *Scenario) Itinerary(id string) (*Itinerary, bool) {
	i := slices.IndexFunc(s.Itineraries, func(it *Itinerary) bool { return it.ID == id })
	if i < 0 {
		return nil, false
	}
	return s.Itineraries[i], true
}

func buildItinerary(fi fileItinerary, qualified map[brand.Code]bool) (*Itinerary, error) {
	if len(fi.Segments) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "no segments")
	}
	it := &Itinerary{
		ID:        fi.ID,
		spans:     make(map[*brand.FareMarket]span),
		qualified: qualified,
		fixed:     fi.FixedLegs,
	}

	prevLeg := 0
	for i, seg := range fi.Segments {
		if seg.Leg < prevLeg || seg.Leg > prevLeg+1 || (i == 0 && seg.Leg != 0) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "segment %d: leg %d out of sequence", i, seg.Leg)
		}
		prevLeg = seg.Leg
		it.segments = append(it.segments, Segment{Leg: seg.Leg, Arunk: seg.Arunk, From: seg.From, To: seg.To})
	}
	if len(fi.FixedLegs) > it.LegCount() {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%d fixed_legs for %d legs", len(fi.FixedLegs), it.LegCount())
	}

	for _, b := range fi.Brands {
		it.filter = append(it.filter, brand.Code(b))
	}

	ids := make(map[string]bool, len(fi.FareMarkets))
	for _, m := range fi.FareMarkets {
		fm, sp, err := buildMarket(m, len(it.segments))
		if err != nil {
			return nil, fmt.Errorf("fare market %s: %w", m.ID, err)
		}
		if ids[fm.ID] {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "duplicate fare market id %q", fm.ID)
		}
		ids[fm.ID] = true
		it.markets = append(it.markets, fm)
		it.spans[fm] = sp
	}
	return it, nil
}

func buildMarket(m fileMarket, segments int) (*brand.FareMarket, span, error) {
	if m.ID == "" {
		return nil, span{}, errors.New(errors.ErrCodeInvalidConfig, "missing id")
	}
	if err := errors.ValidateCarrierCode(m.Carrier); err != nil {
		return nil, span{}, err
	}
	if m.Start < 0 || m.End < m.Start || m.End >= segments {
		return nil, span{}, errors.New(errors.ErrCodeInvalidConfig, "segments [%d,%d] outside itinerary of %d", m.Start, m.End, segments)
	}

	fm := &brand.FareMarket{ID: m.ID, Carrier: brand.Carrier(m.Carrier)}
	for _, b := range m.Brands {
		if err := errors.ValidateBrandCode(b.Code, string(brand.NoBrand)); err != nil {
			return nil, span{}, err
		}
		dir, err := brand.ParseDirection(b.Direction)
		if err != nil {
			return nil, span{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "brand %s", b.Code)
		}
		cabin, err := brand.ParseCabin(b.Cabin)
		if err != nil {
			return nil, span{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "brand %s", b.Code)
		}
		fm.Brands = append(fm.Brands, brand.Entry{
			Code:      brand.Code(b.Code),
			Program:   b.Program,
			Direction: dir,
			Cabin:     cabin,
		})
	}
	return fm, span{start: m.Start, end: m.End, fixed: brand.Code(m.FixedBrand)}, nil
}
