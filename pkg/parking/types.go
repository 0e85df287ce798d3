// Package parking computes minimum off-street parking requirements:
// per-use space counts from the zoning schedule, ADA accessible set-asides,
// and the shared-parking credit for mixed-use developments.
package parking

// Request holds the inputs for a single-use calculation. Which quantity
// matters depends on the use type's unit basis; the others are ignored.
// A non-zero CustomRatio overrides the schedule ratio, letting a
// jurisdiction apply a local amendment without editing the table.
type Request struct {
	UseType     string  `yaml:"use_type" json:"use_type"`
	GrossSF     float64 `yaml:"gross_sf" json:"gross_sf"`
	Units       int     `yaml:"units" json:"units"`
	Seats       int     `yaml:"seats" json:"seats"`
	CustomRatio float64 `yaml:"custom_ratio,omitempty" json:"custom_ratio,omitempty"`
}

// Requirement is the result of a single-use calculation. TotalSpaces always
// equals RequiredSpaces: accessible spaces are a subset of the requirement,
// never an addition to it. Results are plain values with no identity; a
// repeated calculation produces an equal Requirement.
type Requirement struct {
	UseType        string   `json:"use_type"`
	GrossSF        float64  `json:"gross_sf"`
	Units          int      `json:"units"`
	BaseRatio      string   `json:"base_ratio"`
	RequiredSpaces int      `json:"required_spaces"`
	ADASpaces      int      `json:"ada_spaces"`
	VanAccessible  int      `json:"van_accessible"`
	TotalSpaces    int      `json:"total_spaces"`
	Notes          []string `json:"notes"`
}

// Use is one entry in a mixed-use development.
type Use struct {
	UseType string  `yaml:"use_type" json:"use_type"`
	GrossSF float64 `yaml:"gross_sf" json:"gross_sf"`
	Units   int     `yaml:"units" json:"units"`
	Seats   int     `yaml:"seats" json:"seats"`
}

// MixedUseResult is the shared-parking analysis for a mixed-use development.
// Calculations preserves the input order of the uses.
type MixedUseResult struct {
	Calculations           []Requirement `json:"individual_calculations"`
	TotalWithoutSharing    int           `json:"total_without_sharing"`
	SharedParkingPotential int           `json:"shared_parking_potential"`
	PotentialReduction     int           `json:"potential_reduction"`
	ADATotal               int           `json:"ada_total"`
	Notes                  []string      `json:"notes"`
}
