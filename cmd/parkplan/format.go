package main

import (
	"fmt"
	"strings"

	"github.com/ChicagoDave/parkplan/pkg/parking"
	"github.com/ChicagoDave/parkplan/pkg/validation"
	"github.com/ChicagoDave/parkplan/pkg/zoning"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printRequirement(r parking.Requirement) {
	fmt.Println("Parking Requirement")
	fmt.Println("===================")
	fmt.Println()

	fmt.Printf("  %-18s %s\n", "Use type:", r.UseType)
	fmt.Printf("  %-18s %s\n", "Base ratio:", r.BaseRatio)
	if r.GrossSF > 0 {
		fmt.Printf("  %-18s %.0f SF\n", "Gross floor area:", r.GrossSF)
	}
	if r.Units > 0 {
		fmt.Printf("  %-18s %d\n", "Units:", r.Units)
	}
	fmt.Printf("  %-18s %d\n", "Required spaces:", r.RequiredSpaces)
	fmt.Printf("  %-18s %d (%d van)\n", "ADA accessible:", r.ADASpaces, r.VanAccessible)

	fmt.Println()
	fmt.Println("Notes:")
	for _, n := range r.Notes {
		fmt.Printf("  - %s\n", n)
	}
}

func printMixedResult(name string, result parking.MixedUseResult) {
	title := "Mixed-Use Parking Analysis"
	if name != "" {
		title = fmt.Sprintf("Mixed-Use Parking Analysis: %s", name)
	}
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", len(title)))
	fmt.Println()

	fmt.Printf("%-20s %10s %6s %6s\n", "Use", "Spaces", "ADA", "Van")
	fmt.Printf("%-20s %10s %6s %6s\n", "--------------------", "----------", "------", "------")
	for _, c := range result.Calculations {
		fmt.Printf("%-20s %10d %6d %6d\n", c.UseType, c.RequiredSpaces, c.ADASpaces, c.VanAccessible)
	}

	fmt.Println()
	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  Total without sharing:  %d spaces\n", result.TotalWithoutSharing)
	fmt.Printf("  Shared parking:         %d spaces\n", result.SharedParkingPotential)
	fmt.Printf("  Potential reduction:    %d spaces\n", result.PotentialReduction)
	fmt.Printf("  ADA on shared total:    %d spaces\n", result.ADATotal)

	fmt.Println()
	fmt.Println("Notes:")
	for _, n := range result.Notes {
		fmt.Printf("  - %s\n", n)
	}
}

func printRatioTable(table zoning.Table) {
	fmt.Println("Parking Ratio Schedule")
	fmt.Println("======================")
	fmt.Println()

	fmt.Printf("%-18s %7s  %-14s %s\n", "Use type", "Ratio", "Basis", "Note")
	fmt.Printf("%-18s %7s  %-14s %s\n", "------------------", "-------", "--------------", "----")
	for _, useType := range table.UseTypes() {
		entry, _ := table.Lookup(useType)
		fmt.Printf("%-18s %7s  %-14s %s\n",
			useType, fmt.Sprintf("%g", entry.Ratio), entry.Basis.Label(), entry.Note)
	}
}
