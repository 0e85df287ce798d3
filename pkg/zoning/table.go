package zoning

import "maps"

// FallbackUseType is substituted when a requested use type has no schedule
// entry. General office is the customary default for unclassified uses.
const FallbackUseType = "office_general"

// defaultEntries is the built-in parking schedule. Ratios follow the ITE
// Parking Generation Manual (5th Edition) with Palm Bay / Brevard County
// local amendments.
//
// Daycare is computed on floor area: its code text reads "1 per employee
// + 1 per 10 children", but the adopted schedule applies the floor-area
// formula, so the entry carries the thousand_sq_ft basis.
var defaultEntries = Table{
	// Residential
	"single_family":  {Ratio: 2.0, Basis: BasisDwellingUnit, Note: "2 spaces per DU"},
	"multi_family":   {Ratio: 1.5, Basis: BasisDwellingUnit, Note: "1.5 spaces per DU + guest parking"},
	"townhouse":      {Ratio: 2.0, Basis: BasisDwellingUnit, Note: "2 spaces per DU"},
	"senior_housing": {Ratio: 0.5, Basis: BasisDwellingUnit, Note: "0.5 spaces per DU"},

	// Commercial
	"retail":          {Ratio: 4.0, Basis: BasisThousandSF, Note: "4 spaces per 1,000 SF"},
	"shopping_center": {Ratio: 4.5, Basis: BasisThousandSF, Note: "4.5 spaces per 1,000 SF GLA"},
	"restaurant":      {Ratio: 10.0, Basis: BasisThousandSF, Note: "10 spaces per 1,000 SF or 1 per 3 seats"},
	"fast_food":       {Ratio: 12.0, Basis: BasisThousandSF, Note: "12 spaces per 1,000 SF"},
	"bank":            {Ratio: 4.0, Basis: BasisThousandSF, Note: "4 spaces per 1,000 SF + queue for drive-thru"},

	// Office
	"office_general": {Ratio: 3.0, Basis: BasisThousandSF, Note: "3 spaces per 1,000 SF"},
	"office_medical": {Ratio: 5.0, Basis: BasisThousandSF, Note: "5 spaces per 1,000 SF"},
	"office_dental":  {Ratio: 4.5, Basis: BasisThousandSF, Note: "4.5 spaces per 1,000 SF"},

	// Industrial
	"warehouse":     {Ratio: 1.0, Basis: BasisThousandSF, Note: "1 space per 1,000 SF"},
	"manufacturing": {Ratio: 1.5, Basis: BasisThousandSF, Note: "1.5 spaces per 1,000 SF"},
	"flex_space":    {Ratio: 2.0, Basis: BasisThousandSF, Note: "2 spaces per 1,000 SF"},

	// Institutional
	"church":            {Ratio: 0.33, Basis: BasisSeat, Note: "1 space per 3 seats"},
	"school_elementary": {Ratio: 2.0, Basis: BasisClassroom, Note: "2 spaces per classroom"},
	"school_high":       {Ratio: 8.0, Basis: BasisClassroom, Note: "8 spaces per classroom"},
	"daycare":           {Ratio: 1.0, Basis: BasisThousandSF, Note: "Drop-off lane required"},

	// Recreation
	"gym_fitness": {Ratio: 5.0, Basis: BasisThousandSF, Note: "5 spaces per 1,000 SF"},
	"hotel":       {Ratio: 1.0, Basis: BasisRoom, Note: "1 space per room + employee parking"},
}

// DefaultTable returns a fresh copy of the built-in schedule. Each call
// returns an independent table, so callers can merge amendments without
// affecting each other.
func DefaultTable() Table {
	return maps.Clone(defaultEntries)
}
