package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/ChicagoDave/parkplan/internal/history"
	"github.com/ChicagoDave/parkplan/internal/server"
	"github.com/ChicagoDave/parkplan/pkg/logging"
	"github.com/ChicagoDave/parkplan/pkg/parking"
	"github.com/ChicagoDave/parkplan/pkg/project"
	"github.com/ChicagoDave/parkplan/pkg/validation"
	"github.com/ChicagoDave/parkplan/pkg/zoning"
)

// loadTable resolves the ratio schedule for table-flag commands: the
// built-in schedule, overlaid with the named YAML file when given.
func loadTable(tablePath string) (zoning.Table, error) {
	if tablePath == "" {
		return zoning.DefaultTable(), nil
	}
	return zoning.LoadTable(tablePath)
}

// loadProjectAndValidate loads a project, resolves its schedule, and runs
// the full validation pass.
func loadProjectAndValidate(projectPath string) (*project.Project, zoning.Table, *validation.Report, error) {
	p, err := project.LoadProject(projectPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading project: %w", err)
	}
	table, err := p.ResolveTable()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolving ratio table: %w", err)
	}
	report := validation.ValidateProject(p, table)
	return p, table, report, nil
}

func runCalc(req parking.Request, tablePath string, jsonOut bool) error {
	table, err := loadTable(tablePath)
	if err != nil {
		return err
	}

	report := validation.ValidateTable(table)
	report.Merge(validation.ValidateRequest(table, req))
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("input has validation errors")
	}

	requirement := parking.Calculate(table, req)

	if jsonOut {
		return printJSON(map[string]any{
			"requirement": requirement,
			"validation":  report,
		})
	}

	printRequirement(requirement)
	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runMixed(projectPath string, jsonOut bool) error {
	p, table, report, err := loadProjectAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("project has validation errors")
	}

	result := parking.CalculateMixed(table, p.Uses)

	if jsonOut {
		return printJSON(map[string]any{
			"project":    p.Name,
			"result":     result,
			"validation": report,
		})
	}

	printMixedResult(p.Name, result)
	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runValidate(projectPath string) error {
	_, _, report, err := loadProjectAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runRatios(tablePath string, jsonOut bool) error {
	table, err := loadTable(tablePath)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"ratios": table})
	}

	printRatioTable(table)
	return nil
}

func runServe(port int, tablePath, dbPath string) error {
	logging.Setup()

	table, err := loadTable(tablePath)
	if err != nil {
		return err
	}

	var store *history.Store
	if dbPath != "" {
		store, err = history.New(dbPath)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		slog.Info("history enabled", "database", dbPath)
	}

	srv := server.New(table, store, port)
	return srv.Start()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
