package zoning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk form of a ratio table amendment.
type tableFile struct {
	Ratios map[string]UseRatio `yaml:"ratios"`
}

// LoadTable reads a YAML ratio file and merges its entries over the default
// schedule. Amendment files replace or add entries; they never remove the
// built-in ones, so the general-office fallback stays available.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ratio table: %w", err)
	}

	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing ratio table YAML: %w", err)
	}

	return DefaultTable().Merge(f.Ratios), nil
}
