package branding

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/observability"
)

// testItin is an in-memory Geometry.
type testItin struct {
	legs       []int
	arunk      map[int]bool
	fms        []*brand.FareMarket
	spans      map[string][2]int
	allowed    map[string][]brand.Code
	fixed      []bool
	fixedBrand map[string]brand.Code
}

func newTestItin(legs ...int) *testItin {
	return &testItin{
		legs:       legs,
		arunk:      map[int]bool{},
		spans:      map[string][2]int{},
		allowed:    map[string][]brand.Code{},
		fixedBrand: map[string]brand.Code{},
	}
}

func (t *testItin) market(id, carrier string, start, end int, entries ...brand.Entry) *testItin {
	t.fms = append(t.fms, &brand.FareMarket{ID: id, Carrier: brand.Carrier(carrier), Brands: entries})
	t.spans[id] = [2]int{start, end}
	return t
}

func (t *testItin) SegmentCount() int                     { return len(t.legs) }
func (t *testItin) IsArunk(s int) bool                    { return t.arunk[s] }
func (t *testItin) StartSegment(fm *brand.FareMarket) int { return t.spans[fm.ID][0] }
func (t *testItin) EndSegment(fm *brand.FareMarket) int   { return t.spans[fm.ID][1] }
func (t *testItin) LegOf(s int) int                       { return t.legs[s] }
func (t *testItin) FareMarkets() []*brand.FareMarket      { return t.fms }
func (t *testItin) FixedLegs() []bool                     { return t.fixed }
func (t *testItin) FixedLegBrand(fm *brand.FareMarket) (brand.Code, bool) {
	b, ok := t.fixedBrand[fm.ID]
	return b, ok
}

func (t *testItin) LegCount() int {
	n := 0
	for _, l := range t.legs {
		n = max(n, l+1)
	}
	return n
}

func (t *testItin) Brands(fm *brand.FareMarket) []brand.Code {
	if a, ok := t.allowed[fm.ID]; ok {
		return a
	}
	return fm.Codes()
}

func entry(code, program string) brand.Entry {
	return brand.Entry{Code: brand.Code(code), Program: program, Direction: brand.Bothways}
}

func dirEntry(code string, d brand.Direction) brand.Entry {
	return brand.Entry{Code: brand.Code(code), Program: "P", Direction: d}
}

func cabinEntry(code string, c brand.Cabin) brand.Entry {
	return brand.Entry{Code: brand.Code(code), Program: "P", Direction: brand.Bothways, Cabin: c}
}

func key(c string, d brand.Direction) brand.CarrierDirection {
	return brand.CarrierDirection{Carrier: brand.Carrier(c), Direction: d}
}

func quiet() *log.Logger { return log.New(io.Discard) }

type recordingHooks struct {
	observability.NoopBrandingHooks
	tables    []string
	generated []brand.Cabin
	filtered  map[brand.Cabin]bool
	noBrands  []string
}

func (r *recordingHooks) OnBrandTable(itin, stage string, cabin brand.Cabin, _ brand.ItinBrands) {
	r.tables = append(r.tables, stage+":"+cabin.String())
}

func (r *recordingHooks) OnSpacesGenerated(_ string, cabin brand.Cabin, _ []brand.Space) {
	r.generated = append(r.generated, cabin)
}

func (r *recordingHooks) OnCabinFiltered(_ string, cabin brand.Cabin, branded bool) {
	if r.filtered == nil {
		r.filtered = map[brand.Cabin]bool{}
	}
	r.filtered[cabin] = branded
}

func (r *recordingHooks) OnNoApplicableBrands(itin string) {
	r.noBrands = append(r.noBrands, itin)
}
