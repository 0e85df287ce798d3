package parking

import (
	"math"

	"github.com/ChicagoDave/parkplan/pkg/zoning"
)

// sharedParkingFactor is the fraction of the unshared total that a
// mixed-use development must still provide under the simplified ULI
// shared-parking credit: a flat 15% reduction regardless of use mix,
// not a time-of-day peak model.
const sharedParkingFactor = 0.85

// mixedUseNotes are the fixed advisory notes attached to every mixed-use
// analysis, in this order.
var mixedUseNotes = []string{
	"Shared parking analysis based on ULI Shared Parking methodology",
	"Actual reduction requires detailed time-of-day analysis",
	"Local jurisdiction approval required for shared parking credits",
}

// CalculateMixed computes parking for a mixed-use development: each use is
// calculated on its own, the base requirements are summed, and the flat
// shared-parking credit is applied to the sum. The accessible total is
// derived from the post-reduction count, since that is the lot size
// actually built. An empty use list yields zero totals, not an error.
func CalculateMixed(table zoning.Table, uses []Use) MixedUseResult {
	calcs := make([]Requirement, 0, len(uses))
	total := 0

	for _, u := range uses {
		useType := u.UseType
		if useType == "" {
			useType = zoning.FallbackUseType
		}
		r := Calculate(table, Request{
			UseType: useType,
			GrossSF: u.GrossSF,
			Units:   u.Units,
			Seats:   u.Seats,
		})
		calcs = append(calcs, r)
		total += r.RequiredSpaces
	}

	shared := int(math.Ceil(float64(total) * sharedParkingFactor))

	return MixedUseResult{
		Calculations:           calcs,
		TotalWithoutSharing:    total,
		SharedParkingPotential: shared,
		PotentialReduction:     total - shared,
		ADATotal:               ADASpaces(shared),
		Notes:                  append([]string(nil), mixedUseNotes...),
	}
}
