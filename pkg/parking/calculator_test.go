package parking

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ChicagoDave/parkplan/pkg/zoning"
)

func TestCalculateMultiFamily(t *testing.T) {
	table := zoning.DefaultTable()
	r := Calculate(table, Request{UseType: "multi_family", Units: 50})

	// 1.5 per DU × 50 = 75
	if r.RequiredSpaces != 75 {
		t.Errorf("RequiredSpaces = %d, want 75", r.RequiredSpaces)
	}
	if r.ADASpaces != 3 {
		t.Errorf("ADASpaces = %d, want 3 (75 falls in the 51-75 band)", r.ADASpaces)
	}
	if r.VanAccessible != 1 {
		t.Errorf("VanAccessible = %d, want 1", r.VanAccessible)
	}
	if r.TotalSpaces != 75 {
		t.Errorf("TotalSpaces = %d, want 75", r.TotalSpaces)
	}
	if r.BaseRatio != "1.5 per dwelling unit" {
		t.Errorf("BaseRatio = %q, want %q", r.BaseRatio, "1.5 per dwelling unit")
	}

	// Schedule note, arithmetic, accessible summary, in that order.
	want := []string{
		"1.5 spaces per DU + guest parking",
		"Calculation: 1.5 × 50 units = 75 spaces",
		"ADA: 3 accessible spaces (1 van accessible)",
	}
	if !reflect.DeepEqual(r.Notes, want) {
		t.Errorf("Notes = %v, want %v", r.Notes, want)
	}
}

func TestCalculateRetail(t *testing.T) {
	table := zoning.DefaultTable()
	r := Calculate(table, Request{UseType: "retail", GrossSF: 10000})

	// 4 per 1,000 SF × 10 = 40
	if r.RequiredSpaces != 40 {
		t.Errorf("RequiredSpaces = %d, want 40", r.RequiredSpaces)
	}
	if r.ADASpaces != 2 {
		t.Errorf("ADASpaces = %d, want 2", r.ADASpaces)
	}
	if r.GrossSF != 10000 {
		t.Errorf("GrossSF = %v, want 10000", r.GrossSF)
	}
	found := false
	for _, n := range r.Notes {
		if n == "Calculation: 4 × 10.00 (1,000 SF) = 40 spaces" {
			found = true
		}
	}
	if !found {
		t.Errorf("Notes = %v, missing floor-area arithmetic note", r.Notes)
	}
}

func TestCalculatePerBasis(t *testing.T) {
	table := zoning.DefaultTable()
	tests := []struct {
		name string
		req  Request
		want int
	}{
		// 2 per DU × 10 = 20
		{"single_family", Request{UseType: "single_family", Units: 10}, 20},
		// 0.5 per DU × 100 = 50
		{"senior_housing", Request{UseType: "senior_housing", Units: 100}, 50},
		// 1 per 3 seats: 0.33 × 100 = 33
		{"church", Request{UseType: "church", Seats: 100}, 33},
		// 1 per room × 120 = 120
		{"hotel", Request{UseType: "hotel", Units: 120}, 120},
		// 8 per classroom × 10 = 80
		{"school_high", Request{UseType: "school_high", Units: 10}, 80},
		// 2 per classroom × 20 = 40
		{"school_elementary", Request{UseType: "school_elementary", Units: 20}, 40},
		// Daycare is floor-area based: 1 × 10 = 10
		{"daycare", Request{UseType: "daycare", GrossSF: 10000}, 10},
		// 10 per 1,000 SF × 3 = 30
		{"restaurant", Request{UseType: "restaurant", GrossSF: 3000}, 30},
		// 1 per 1,000 SF × 50 = 50
		{"warehouse", Request{UseType: "warehouse", GrossSF: 50000}, 50},
	}
	for _, tt := range tests {
		if got := Calculate(table, tt.req).RequiredSpaces; got != tt.want {
			t.Errorf("%s RequiredSpaces = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCalculateCeilingRoundsUp(t *testing.T) {
	table := zoning.DefaultTable()
	tests := []struct {
		useType string
		grossSF float64
		want    int
	}{
		// 4 × 1.1 = 4.4 → 5
		{"retail", 1100, 5},
		// 3 × 0.5 = 1.5 → 2
		{"office_general", 500, 2},
		// 4.5 × 0.1 = 0.45 → 1
		{"office_dental", 100, 1},
		{"retail", 0, 0},
	}
	for _, tt := range tests {
		r := Calculate(table, Request{UseType: tt.useType, GrossSF: tt.grossSF})
		if r.RequiredSpaces != tt.want {
			t.Errorf("%s at %v SF = %d spaces, want %d", tt.useType, tt.grossSF, r.RequiredSpaces, tt.want)
		}
	}
}

func TestCalculateUnknownUseSubstitutes(t *testing.T) {
	table := zoning.DefaultTable()
	r := Calculate(table, Request{UseType: "nonexistent_use", GrossSF: 5000})

	// General office: 3 per 1,000 SF × 5 = 15
	if r.RequiredSpaces != 15 {
		t.Errorf("RequiredSpaces = %d, want 15", r.RequiredSpaces)
	}
	if r.UseType != "office_general" {
		t.Errorf("UseType = %q, want %q", r.UseType, "office_general")
	}
	if len(r.Notes) == 0 || !strings.HasPrefix(r.Notes[0], "unknown use type") {
		t.Errorf("Notes[0] should flag the substitution, got %v", r.Notes)
	}
	if !strings.Contains(r.Notes[0], `"nonexistent_use"`) {
		t.Errorf("Notes[0] = %q, should name the requested use", r.Notes[0])
	}
	// Substitution flag, schedule note, arithmetic, accessible summary.
	if len(r.Notes) != 4 {
		t.Errorf("len(Notes) = %d, want 4: %v", len(r.Notes), r.Notes)
	}
}

func TestCalculateCustomRatio(t *testing.T) {
	table := zoning.DefaultTable()

	r := Calculate(table, Request{UseType: "retail", GrossSF: 10000, CustomRatio: 5})
	if r.RequiredSpaces != 50 {
		t.Errorf("RequiredSpaces = %d, want 50 (override 5 per 1,000 SF)", r.RequiredSpaces)
	}
	if r.BaseRatio != "5 per 1,000 SF" {
		t.Errorf("BaseRatio = %q, want %q", r.BaseRatio, "5 per 1,000 SF")
	}

	// Zero means no override.
	r = Calculate(table, Request{UseType: "retail", GrossSF: 10000, CustomRatio: 0})
	if r.RequiredSpaces != 40 {
		t.Errorf("RequiredSpaces = %d, want 40 with no override", r.RequiredSpaces)
	}
}

func TestCalculateNegativeQuantities(t *testing.T) {
	table := zoning.DefaultTable()
	tests := []struct {
		name string
		req  Request
	}{
		{"negative area", Request{UseType: "retail", GrossSF: -500}},
		{"negative units", Request{UseType: "multi_family", Units: -5}},
		{"negative seats", Request{UseType: "church", Seats: -20}},
	}
	for _, tt := range tests {
		r := Calculate(table, tt.req)
		if r.RequiredSpaces != 0 {
			t.Errorf("%s: RequiredSpaces = %d, want 0", tt.name, r.RequiredSpaces)
		}
		if r.ADASpaces != 0 {
			t.Errorf("%s: ADASpaces = %d, want 0", tt.name, r.ADASpaces)
		}
		if r.TotalSpaces != 0 {
			t.Errorf("%s: TotalSpaces = %d, want 0", tt.name, r.TotalSpaces)
		}
	}
}

func TestCalculateBuiltinFallback(t *testing.T) {
	// A hand-built table with no office_general entry: substitution for an
	// unknown use still works, on the built-in general-office ratio.
	table := zoning.Table{
		"retail": {Ratio: 4.0, Basis: zoning.BasisThousandSF},
	}
	r := Calculate(table, Request{UseType: "bakery", GrossSF: 5000})

	// Built-in fallback: 3 per 1,000 SF × 5 = 15
	if r.RequiredSpaces != 15 {
		t.Errorf("RequiredSpaces = %d, want 15", r.RequiredSpaces)
	}
	if r.UseType != "office_general" {
		t.Errorf("UseType = %q, want %q", r.UseType, "office_general")
	}
	if len(r.Notes) == 0 || !strings.HasPrefix(r.Notes[0], "unknown use type") {
		t.Errorf("Notes[0] should flag the substitution, got %v", r.Notes)
	}
}

func TestCalculateUnknownBasisFallsBack(t *testing.T) {
	table := zoning.Table{
		"orchard": {Ratio: 2, Basis: "acre"},
	}
	r := Calculate(table, Request{UseType: "orchard", GrossSF: 2000})

	// Unrecognized basis falls back to floor area: 2 × 2 = 4.
	if r.RequiredSpaces != 4 {
		t.Errorf("RequiredSpaces = %d, want 4", r.RequiredSpaces)
	}
	found := false
	for _, n := range r.Notes {
		if n == "Default calculation based on gross floor area" {
			found = true
		}
	}
	if !found {
		t.Errorf("Notes = %v, missing fallback note", r.Notes)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	table := zoning.DefaultTable()
	req := Request{UseType: "shopping_center", GrossSF: 42000}

	first := Calculate(table, req)
	second := Calculate(table, req)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calculation differs: %+v vs %+v", first, second)
	}
}

func TestCalculateAreaMonotonic(t *testing.T) {
	table := zoning.DefaultTable()
	areas := []float64{0, 500, 1000, 2500, 10000, 100000}

	prev := -1
	for _, sf := range areas {
		r := Calculate(table, Request{UseType: "retail", GrossSF: sf})
		if r.RequiredSpaces < prev {
			t.Errorf("RequiredSpaces at %v SF = %d, less than %d at smaller area", sf, r.RequiredSpaces, prev)
		}
		prev = r.RequiredSpaces
	}
}
