// Package project loads parking study definitions from YAML. A project
// directory holds a project.yaml describing the development's uses and,
// optionally, a local ratio schedule overlaying the built-in one.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ChicagoDave/parkplan/pkg/parking"
	"github.com/ChicagoDave/parkplan/pkg/zoning"
)

// Project is a parking study: a named development with one or more uses.
type Project struct {
	Name       string        `yaml:"name"`
	RatioTable string        `yaml:"ratio_table,omitempty"`
	Uses       []parking.Use `yaml:"uses"`

	// dir is where the project file was loaded from, used to resolve
	// relative ratio_table paths.
	dir string
}

// Load reads a project from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}
	p.dir = filepath.Dir(path)

	return &p, nil
}

// LoadProject loads a parking study from a project directory.
// It looks for project.yaml in the given directory.
func LoadProject(projectDir string) (*Project, error) {
	projectPath := filepath.Join(projectDir, "project.yaml")
	return Load(projectPath)
}

// ResolveTable returns the ratio schedule in effect for the project: the
// built-in schedule, merged with the project's ratio_table file when one
// is named. Relative paths are resolved against the project directory.
func (p *Project) ResolveTable() (zoning.Table, error) {
	if p.RatioTable == "" {
		return zoning.DefaultTable(), nil
	}

	path := p.RatioTable
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.dir, path)
	}
	return zoning.LoadTable(path)
}
