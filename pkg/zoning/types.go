// Package zoning holds the municipal parking schedule: the ratio of required
// parking spaces per unit of development, by land-use category.
package zoning

import (
	"maps"
	"sort"
)

// UnitBasis identifies which input quantity a parking ratio multiplies.
// Each schedule entry carries exactly one basis tag, fixed at data-definition
// time, so the calculator's dispatch is exhaustive rather than matching on
// unit description strings.
type UnitBasis string

const (
	BasisDwellingUnit UnitBasis = "dwelling_unit"
	BasisThousandSF   UnitBasis = "thousand_sq_ft"
	BasisSeat         UnitBasis = "seat"
	BasisRoom         UnitBasis = "room"
	BasisClassroom    UnitBasis = "classroom"
)

// Valid reports whether b is one of the defined basis tags.
func (b UnitBasis) Valid() bool {
	switch b {
	case BasisDwellingUnit, BasisThousandSF, BasisSeat, BasisRoom, BasisClassroom:
		return true
	}
	return false
}

// Label returns the human-readable unit description used in ratio text,
// e.g. "1.5 per dwelling unit".
func (b UnitBasis) Label() string {
	switch b {
	case BasisDwellingUnit:
		return "dwelling unit"
	case BasisThousandSF:
		return "1,000 SF"
	case BasisSeat:
		return "seat"
	case BasisRoom:
		return "room"
	case BasisClassroom:
		return "classroom"
	default:
		return string(b)
	}
}

// UseRatio is one parking schedule entry: spaces required per unit of the
// given basis, plus the code's descriptive text for the rule.
type UseRatio struct {
	Ratio float64   `yaml:"ratio" json:"ratio"`
	Basis UnitBasis `yaml:"basis" json:"basis"`
	Note  string    `yaml:"note" json:"note"`
}

// Table maps use-type identifiers to their schedule entries. Tables are
// treated as read-only after construction; amendments go through Merge,
// which returns a new table.
type Table map[string]UseRatio

// Lookup returns the schedule entry for useType.
func (t Table) Lookup(useType string) (UseRatio, bool) {
	r, ok := t[useType]
	return r, ok
}

// Merge returns a copy of t with entries from overrides applied on top.
// Existing entries are replaced, new ones added; nothing is removed.
func (t Table) Merge(overrides map[string]UseRatio) Table {
	merged := maps.Clone(t)
	for use, r := range overrides {
		merged[use] = r
	}
	return merged
}

// UseTypes returns the table's use-type identifiers in sorted order.
func (t Table) UseTypes() []string {
	types := make([]string, 0, len(t))
	for use := range t {
		types = append(types, use)
	}
	sort.Strings(types)
	return types
}
