package parking

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/parkplan/pkg/zoning"
)

// builtinFallback stands in when a custom table lost its general-office
// entry; Calculate is total and never fails on a lookup miss.
var builtinFallback = zoning.UseRatio{
	Ratio: 3.0,
	Basis: zoning.BasisThousandSF,
	Note:  "3 spaces per 1,000 SF",
}

// Calculate computes the minimum parking requirement for a single use.
//
// An unknown use type is substituted with the general-office entry and
// flagged in the notes; it is never an error. Negative quantities are
// treated as zero for the arithmetic, though callers that want them
// rejected outright can run validation first. Notes record, in order,
// the substitution (if any), the schedule rule, the arithmetic performed,
// and the accessible-space summary.
func Calculate(table zoning.Table, req Request) Requirement {
	var notes []string

	useType := req.UseType
	entry, ok := table.Lookup(useType)
	if !ok {
		notes = append(notes, fmt.Sprintf("unknown use type %q, using general office ratio", useType))
		useType = zoning.FallbackUseType
		if entry, ok = table.Lookup(useType); !ok {
			entry = builtinFallback
		}
	}

	ratio := entry.Ratio
	if req.CustomRatio != 0 {
		ratio = req.CustomRatio
	}
	if entry.Note != "" {
		notes = append(notes, entry.Note)
	}

	grossSF := max(req.GrossSF, 0)
	units := max(req.Units, 0)
	seats := max(req.Seats, 0)

	var required int
	switch entry.Basis {
	case zoning.BasisDwellingUnit:
		required = ceilSpaces(ratio * float64(units))
		notes = append(notes, fmt.Sprintf("Calculation: %g × %d units = %d spaces", ratio, units, required))
	case zoning.BasisThousandSF:
		sfUnits := grossSF / 1000
		required = ceilSpaces(ratio * sfUnits)
		notes = append(notes, fmt.Sprintf("Calculation: %g × %.2f (1,000 SF) = %d spaces", ratio, sfUnits, required))
	case zoning.BasisSeat:
		required = ceilSpaces(ratio * float64(seats))
		notes = append(notes, fmt.Sprintf("Calculation: %g × %d seats = %d spaces", ratio, seats, required))
	case zoning.BasisRoom:
		required = ceilSpaces(ratio * float64(units))
		notes = append(notes, fmt.Sprintf("Calculation: %g × %d rooms = %d spaces", ratio, units, required))
	case zoning.BasisClassroom:
		required = ceilSpaces(ratio * float64(units))
		notes = append(notes, fmt.Sprintf("Calculation: %g × %d classrooms = %d spaces", ratio, units, required))
	default:
		// Hand-edited table files can carry a basis the schedule does not
		// define; fall back to the floor-area formula.
		required = ceilSpaces(ratio * (grossSF / 1000))
		notes = append(notes, "Default calculation based on gross floor area")
	}

	ada := ADASpaces(required)
	van := VanAccessible(ada)
	notes = append(notes, fmt.Sprintf("ADA: %d accessible spaces (%d van accessible)", ada, van))

	return Requirement{
		UseType:        useType,
		GrossSF:        req.GrossSF,
		Units:          req.Units,
		BaseRatio:      fmt.Sprintf("%g per %s", ratio, entry.Basis.Label()),
		RequiredSpaces: required,
		ADASpaces:      ada,
		VanAccessible:  van,
		TotalSpaces:    required,
		Notes:          notes,
	}
}

// ceilSpaces rounds a fractional space count up and floors the result at
// zero: a fraction of a space never satisfies a minimum, and no input may
// produce a negative count.
func ceilSpaces(product float64) int {
	n := int(math.Ceil(product))
	if n < 0 {
		return 0
	}
	return n
}
