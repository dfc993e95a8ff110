package scenario

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/branding"
	"github.com/vnalla55/farebrand/pkg/errors"
)

var _ branding.Geometry = (*Itinerary)(nil)

func TestLoadSample(t *testing.T) {
	s, err := Load("testdata/sample.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantOpts := Options{SpaceLimit: 6, UseDirectionality: true, Cabin: "economy"}
	if diff := cmp.Diff(wantOpts, s.Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}

	wantPairs := []brand.ProgramBrand{
		{Program: "AA-US", Brand: "BASIC"},
		{Program: "AA-US", Brand: "MAIN"},
		{Program: "AA-US", Brand: "FLEX"},
		{Program: "BA-EU", Brand: "MAIN"},
		{Program: "BA-EU", Brand: "PLUS"},
	}
	if diff := cmp.Diff(wantPairs, s.Pairs); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
	if len(s.Itineraries) != 2 {
		t.Fatalf("got %d itineraries, want 2", len(s.Itineraries))
	}
	if len(s.Undecoded) != 0 {
		t.Errorf("undecoded keys: %v", s.Undecoded)
	}

	it, ok := s.Itinerary("DFW-LHR-DFW")
	if !ok {
		t.Fatal("itinerary DFW-LHR-DFW missing")
	}
	if it.SegmentCount() != 3 || it.LegCount() != 2 {
		t.Errorf("segments=%d legs=%d, want 3 and 2", it.SegmentCount(), it.LegCount())
	}
	if diff := cmp.Diff([]bool{true, false}, it.FixedLegs()); diff != "" {
		t.Errorf("fixed legs mismatch (-want +got):\n%s", diff)
	}

	aa, ba := it.FareMarkets()[0], it.FareMarkets()[1]
	if it.StartSegment(ba) != 2 || it.EndSegment(ba) != 2 {
		t.Errorf("BA span = [%d,%d], want [2,2]", it.StartSegment(ba), it.EndSegment(ba))
	}
	if got, ok := it.FixedLegBrand(aa); !ok || got != "MAIN" {
		t.Errorf("FixedLegBrand(AA) = %s, %v", got, ok)
	}
	if _, ok := it.FixedLegBrand(ba); ok {
		t.Error("BA is not on a fixed leg")
	}
	if aa.Brands[2].Direction != brand.Original {
		t.Errorf("FLEX direction = %s, want original", aa.Brands[2].Direction)
	}
	if ba.Brands[1].Cabin != brand.CabinBusiness {
		t.Errorf("PLUS cabin = %s, want business", ba.Brands[1].Cabin)
	}

	// PROMO is not qualified by any program.
	if diff := cmp.Diff([]brand.Code{"MAIN", "PLUS"}, it.Brands(ba)); diff != "" {
		t.Errorf("BA brands mismatch (-want +got):\n%s", diff)
	}

	short, _ := s.Itinerary("ORD-MIA")
	if diff := cmp.Diff([]brand.Code{"MAIN"}, short.Brands(short.FareMarkets()[0])); diff != "" {
		t.Errorf("filtered brands mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{false}, short.FixedLegs()); diff != "" {
		t.Errorf("fixed legs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"bad toml", `[options`},
		{"limit one", "[options]\nspace_limit = 1"},
		{"bad cabin", "[options]\ncabin = \"steerage\""},
		{"bad brand", "[[programs]]\nprogram = \"P\"\nbrands = [\"NO_BRAND\"]"},
		{"no segments", "[[itineraries]]\nid = \"X\""},
		{
			"leg skips",
			"[[itineraries]]\nid = \"X\"\n[[itineraries.segments]]\nleg = 0\n[[itineraries.segments]]\nleg = 2",
		},
		{
			"market outside itinerary",
			"[[itineraries]]\nid = \"X\"\n[[itineraries.segments]]\nleg = 0\n" +
				"[[itineraries.fare_markets]]\nid = \"FM\"\ncarrier = \"AA\"\nstart = 0\nend = 3",
		},
		{
			"bad carrier",
			"[[itineraries]]\nid = \"X\"\n[[itineraries.segments]]\nleg = 0\n" +
				"[[itineraries.fare_markets]]\nid = \"FM\"\ncarrier = \"american\"",
		},
		{
			"bad direction",
			"[[itineraries]]\nid = \"X\"\n[[itineraries.segments]]\nleg = 0\n" +
				"[[itineraries.fare_markets]]\nid = \"FM\"\ncarrier = \"AA\"\n" +
				"brands = [{ code = \"MAIN\", direction = \"sideways\" }]",
		},
		{
			"duplicate itinerary",
			"[[itineraries]]\nid = \"X\"\n[[itineraries.segments]]\nleg = 0\n" +
				"[[itineraries]]\nid = \"X\"\n[[itineraries.segments]]\nleg = 0",
		},
		{
			"too many fixed legs",
			"[[itineraries]]\nid = \"X\"\nfixed_legs = [true, false]\n[[itineraries.segments]]\nleg = 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.toml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := errors.GetCode(err); code != errors.ErrCodeInvalidConfig && code != errors.ErrCodeInvalidArgument && code != errors.ErrCodeInvalidCode {
				t.Errorf("error code = %s (%v)", code, err)
			}
		})
	}
}

func TestParseUndecoded(t *testing.T) {
	s, err := Parse(strings.NewReader("[options]\nspace_limit = 0\nspeed = \"fast\""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff([]string{"options.speed"}, s.Undecoded); diff != "" {
		t.Errorf("undecoded mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultItineraryID(t *testing.T) {
	s, err := Parse(strings.NewReader("[[itineraries]]\n[[itineraries.segments]]\nleg = 0"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Itineraries[0].ID != "itin-1" {
		t.Errorf("ID = %q, want itin-1", s.Itineraries[0].ID)
	}
}
