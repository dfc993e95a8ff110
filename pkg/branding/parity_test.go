package branding

import (
	"testing"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/vnalla55/farebrand/pkg/brand"
	"github.com/vnalla55/farebrand/pkg/errors"
)

// threeLegs has one segment per leg with the first leg fixed on BASIC.
func threeLegs() *testItin {
	g := newTestItin(0, 1, 2).
		market("FM0", "AA", 0, 0, entry("BASIC", "P1"), entry("FLEX", "P1")).
		market("FM1", "AA", 1, 1, entry("BASIC", "P1"), entry("FLEX", "P1")).
		market("FM2", "AA", 2, 2, entry("BASIC", "P2"))
	g.fixed = []bool{true, false, false}
	g.fixedBrand["FM0"] = "BASIC"
	return g
}

type parityWant struct {
	brands   []brand.Code
	byMarket map[string][]brand.Code
}

func checkParity(t *testing.T, p *Parity, want parityWant) {
	t.Helper()
	if diff := gocmp.Diff(want.brands, p.Brands); diff != "" {
		t.Errorf("brands mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff(want.byMarket, p.ByMarket); diff != "" {
		t.Errorf("by market mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateBrandParity(t *testing.T) {
	geo := newTestItin(0, 1).
		market("FM1", "AA", 0, 0, entry("BASIC", "P1"), entry("MAIN", "P1")).
		market("FM2", "BA", 1, 1, entry("MAIN", "P1"), entry("FLEX", "P1"))
	it := mustNew(t, geo, Options{})

	p, err := it.CalculateBrandParity()
	if err != nil {
		t.Fatalf("CalculateBrandParity: %v", err)
	}
	checkParity(t, p, parityWant{
		brands:   []brand.Code{"MAIN"},
		byMarket: map[string][]brand.Code{"FM1": {"MAIN"}, "FM2": {"MAIN"}},
	})
	if it.Parity() != p {
		t.Error("Parity() does not return the last result")
	}
}

func TestParityPrecedenceOrder(t *testing.T) {
	geo := newTestItin(0).market("FM1", "AA", 0, 0, entry("FLEX", "P1"), entry("MAIN", "P1"), entry("BASIC", "P1"))
	it := mustNew(t, geo, Options{})
	p, err := it.CalculateBrandParity()
	if err != nil {
		t.Fatalf("CalculateBrandParity: %v", err)
	}
	if diff := gocmp.Diff([]brand.Code{"BASIC", "MAIN", "FLEX"}, p.Brands); diff != "" {
		t.Errorf("brands mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateBrandParityForNonFixedLegs(t *testing.T) {
	it := mustNew(t, threeLegs(), Options{})
	p, err := it.CalculateBrandParityForNonFixedLegs()
	if err != nil {
		t.Fatalf("CalculateBrandParityForNonFixedLegs: %v", err)
	}
	checkParity(t, p, parityWant{
		brands: []brand.Code{"BASIC"},
		byMarket: map[string][]brand.Code{
			"FM0": {"BASIC"},
			"FM1": {"BASIC"},
			"FM2": {"BASIC"},
		},
	})
}

func TestFixedBrandNotCarriedWhenLegLacksIt(t *testing.T) {
	g := threeLegs()
	g.fixedBrand["FM0"] = "FLEX"
	it := mustNew(t, g, Options{})
	p, err := it.CalculateBrandParityForNonFixedLegs()
	if err != nil {
		t.Fatalf("CalculateBrandParityForNonFixedLegs: %v", err)
	}
	checkParity(t, p, parityWant{
		brands:   []brand.Code{"BASIC"},
		byMarket: map[string][]brand.Code{"FM1": {"BASIC"}, "FM2": {"BASIC"}},
	})
}

func TestShoppedLegAndRestNarrowsFixedLegs(t *testing.T) {
	g := newTestItin(0, 1).
		market("FM0", "AA", 0, 0, entry("BASIC", "P1"), entry("FLEX", "P1")).
		market("FM1", "AA", 1, 1, entry("BASIC", "P1"), entry("FLEX", "P1"))
	g.fixed = []bool{false, true}
	g.fixedBrand["FM1"] = "FLEX"
	it := mustNew(t, g, Options{})

	whole, err := it.CalculateBrandParity()
	if err != nil {
		t.Fatalf("CalculateBrandParity: %v", err)
	}
	if diff := gocmp.Diff([]brand.Code{"BASIC", "FLEX"}, whole.Brands); diff != "" {
		t.Errorf("whole itinerary mismatch (-want +got):\n%s", diff)
	}

	p, err := it.CalculateBrandsForShoppedLegAndRestOfTravel()
	if err != nil {
		t.Fatalf("CalculateBrandsForShoppedLegAndRestOfTravel: %v", err)
	}
	checkParity(t, p, parityWant{
		brands:   []brand.Code{"FLEX"},
		byMarket: map[string][]brand.Code{"FM0": {"FLEX"}, "FM1": {"FLEX"}},
	})
}

func TestFixedLegVariantsWithoutFixedLegs(t *testing.T) {
	geo := newTestItin(0, 1).
		market("FM1", "AA", 0, 1, entry("MAIN", "P1"))
	it := mustNew(t, geo, Options{})
	for name, calc := range map[string]func() (*Parity, error){
		"non-fixed": it.CalculateBrandParityForNonFixedLegs,
		"shopped":   it.CalculateBrandsForShoppedLegAndRestOfTravel,
		"whole":     it.CalculateBrandParity,
	} {
		p, err := calc()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if diff := gocmp.Diff([]brand.Code{"MAIN"}, p.Brands); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestCollectAllBrands(t *testing.T) {
	geo := newTestItin(0, 1).
		market("FM1", "AA", 0, 0, entry("BASIC", "P1")).
		market("FM2", "BA", 1, 1, entry("FLEX", "P1"))
	it := mustNew(t, geo, Options{})

	p, err := it.CollectAllBrands()
	if err != nil {
		t.Fatalf("CollectAllBrands: %v", err)
	}
	checkParity(t, p, parityWant{
		brands:   []brand.Code{"BASIC", "FLEX"},
		byMarket: map[string][]brand.Code{"FM1": {"BASIC"}, "FM2": {"FLEX"}},
	})

	strict, err := it.CalculateBrandParity()
	if err != nil {
		t.Fatalf("CalculateBrandParity: %v", err)
	}
	if !strict.Empty() {
		t.Errorf("parity = %v, want empty", strict.Brands)
	}
}

func TestUpdateProgramsForCalculatedBrands(t *testing.T) {
	geo := newTestItin(0, 1).
		market("FM1", "AA", 0, 0, entry("MAIN", "US"), entry("FLEX", "US"), entry("MAIN", "INTL")).
		market("FM2", "AA", 1, 1, entry("MAIN", "US"), entry("BASIC", "US"))
	it := mustNew(t, geo, Options{})

	if _, err := it.UpdateProgramsForCalculatedBrands(); !errors.Is(err, errors.ErrCodePrecondition) {
		t.Errorf("error before parity = %v, want precondition", err)
	}

	if _, err := it.CalculateBrandParity(); err != nil {
		t.Fatalf("CalculateBrandParity: %v", err)
	}
	got, err := it.UpdateProgramsForCalculatedBrands()
	if err != nil {
		t.Fatalf("UpdateProgramsForCalculatedBrands: %v", err)
	}
	want := []brand.ProgramBrand{
		{Program: "US", Brand: "MAIN"},
		{Program: "INTL", Brand: "MAIN"},
	}
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Errorf("programs mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff(want, it.Programs()); diff != "" {
		t.Errorf("Programs() mismatch (-want +got):\n%s", diff)
	}
}
