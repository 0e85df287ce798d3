package validation

import (
	"fmt"

	"github.com/ChicagoDave/parkplan/pkg/parking"
	"github.com/ChicagoDave/parkplan/pkg/project"
	"github.com/ChicagoDave/parkplan/pkg/zoning"
)

// ValidateTable checks a ratio schedule for entries that could never
// produce a sensible requirement.
func ValidateTable(table zoning.Table) *Report {
	r := NewReport()

	for _, useType := range table.UseTypes() {
		entry, _ := table.Lookup(useType)

		if entry.Ratio <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s: ratio must be greater than 0", useType),
				Path:        fmt.Sprintf("ratios.%s.ratio", useType),
				ActualValue: entry.Ratio,
				Expected:    "> 0",
			})
		}
		if !entry.Basis.Valid() {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s: unknown unit basis %q", useType, entry.Basis),
				Path:        fmt.Sprintf("ratios.%s.basis", useType),
				ActualValue: string(entry.Basis),
				Expected:    "dwelling_unit, thousand_sq_ft, seat, room, or classroom",
			})
		}
	}

	if _, ok := table.Lookup(zoning.FallbackUseType); !ok {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("schedule has no %s entry; unknown uses cannot fall back", zoning.FallbackUseType),
			Path:     "ratios",
			Expected: fmt.Sprintf("a %s entry", zoning.FallbackUseType),
		})
	}

	return r
}

// ValidateRequest checks the quantities of a single calculation request.
func ValidateRequest(table zoning.Table, req parking.Request) *Report {
	r := NewReport()
	checkUse(table, req.UseType, req.GrossSF, req.Units, req.Seats, "", r)

	if req.CustomRatio < 0 {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "custom_ratio must not be negative",
			Path:        "custom_ratio",
			ActualValue: req.CustomRatio,
			Expected:    ">= 0",
		})
	}

	return r
}

// ValidateUses checks every use of a mixed-use request.
func ValidateUses(table zoning.Table, uses []parking.Use) *Report {
	r := NewReport()

	if len(uses) == 0 {
		r.AddInfo(Result{
			Level:   LevelInput,
			Message: "no uses to analyze",
			Path:    "uses",
		})
		return r
	}

	for i, u := range uses {
		checkUse(table, u.UseType, u.GrossSF, u.Units, u.Seats, fmt.Sprintf("uses[%d].", i), r)
	}

	return r
}

// ValidateProject runs the schedule and input checks for a loaded project
// against its resolved ratio table.
func ValidateProject(p *project.Project, table zoning.Table) *Report {
	r := ValidateTable(table)
	r.Merge(ValidateUses(table, p.Uses))
	return r
}

// checkUse validates one use's type and quantities. prefix scopes result
// paths when the use sits inside a list.
func checkUse(table zoning.Table, useType string, grossSF float64, units, seats int, prefix string, r *Report) {
	if grossSF < 0 {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "gross_sf must not be negative",
			Path:        prefix + "gross_sf",
			ActualValue: grossSF,
			Expected:    ">= 0",
		})
	}
	if units < 0 {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "units must not be negative",
			Path:        prefix + "units",
			ActualValue: units,
			Expected:    ">= 0",
		})
	}
	if seats < 0 {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "seats must not be negative",
			Path:        prefix + "seats",
			ActualValue: seats,
			Expected:    ">= 0",
		})
	}

	if useType == "" {
		r.AddWarning(Result{
			Level:   LevelInput,
			Message: fmt.Sprintf("use_type is empty; the %s ratio applies", zoning.FallbackUseType),
			Path:    prefix + "use_type",
		})
		return
	}

	entry, ok := table.Lookup(useType)
	if !ok {
		r.AddWarning(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("use type %q is not in the ratio schedule", useType),
			Path:        prefix + "use_type",
			ActualValue: useType,
			Suggestions: []string{
				"run 'parkplan ratios' to list scheduled use types",
				fmt.Sprintf("unknown uses are calculated with the %s ratio", zoning.FallbackUseType),
			},
		})
		return
	}

	// A zero driving quantity is legal but almost always a mistake: the
	// requirement comes out as zero spaces.
	switch entry.Basis {
	case zoning.BasisThousandSF:
		if grossSF == 0 {
			r.AddWarning(Result{
				Level:    LevelInput,
				Message:  fmt.Sprintf("%s is floor-area based but gross_sf is 0", useType),
				Path:     prefix + "gross_sf",
				Expected: "> 0",
			})
		}
	case zoning.BasisDwellingUnit, zoning.BasisRoom, zoning.BasisClassroom:
		if units == 0 {
			r.AddWarning(Result{
				Level:    LevelInput,
				Message:  fmt.Sprintf("%s is counted per %s but units is 0", useType, entry.Basis.Label()),
				Path:     prefix + "units",
				Expected: "> 0",
			})
		}
	case zoning.BasisSeat:
		if seats == 0 {
			r.AddWarning(Result{
				Level:    LevelInput,
				Message:  fmt.Sprintf("%s is counted per seat but seats is 0", useType),
				Path:     prefix + "seats",
				Expected: "> 0",
			})
		}
	}
}
