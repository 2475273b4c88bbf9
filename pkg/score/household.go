package score

import (
	"github.com/openrolls/ownermatch/pkg/records"
	"github.com/openrolls/ownermatch/pkg/similarity"
)

// Weights for household comparison in the member modes.
const (
	householdIDWeight   = 0.7
	householdHeadWeight = 0.3
)

// Household scores two household-membership blocks. The scoring mode is
// selected by the left operand's state only: a non-member compares
// membership flags, a member with an identifier compares identifiers, and a
// member without one compares household names. Head-of-household flags
// contribute in both member modes.
func (s *scorer) Household(a, b *records.HouseholdMembership) float64 {
	if a == nil && b == nil {
		return 1.0
	}
	if a == nil || b == nil {
		return 0.0
	}

	if !a.InHousehold {
		if a.InHousehold == b.InHousehold {
			return 1.0
		}
		return 0.0
	}

	headSim := 0.0
	if a.Head == b.Head {
		headSim = 1.0
	}

	if a.HouseholdID != nil {
		idSim := a.HouseholdID.Similarity(b.HouseholdID)
		return similarity.Round(householdIDWeight*idSim + householdHeadWeight*headSim)
	}

	nameSim := a.HouseholdName.Similarity(b.HouseholdName)
	return similarity.Round(householdIDWeight*nameSim + householdHeadWeight*headSim)
}
