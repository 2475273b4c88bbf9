package score

import (
	"strings"

	"github.com/openrolls/ownermatch/pkg/records"
	"github.com/openrolls/ownermatch/pkg/similarity"
)

// Postal-code gates for the PO-box mode. Below the gate the addresses are
// treated as unrelated regardless of the box number.
const (
	poBoxZipGate = 0.74
	poBoxNumGate = 0.8
)

// Address scores two addresses. Exactly one mode applies, checked in order:
// PO-box when either side is recognized as a box, island-local when either
// side matches the configured locality, general otherwise. A missing
// component contributes 0 and its weight is not redistributed.
func (s *scorer) Address(a, b *records.Address) float64 {
	if a == nil && b == nil {
		return 1.0
	}
	if a == nil || b == nil {
		return 0.0
	}

	boxA, okA := a.Box()
	boxB, okB := b.Box()
	if okA || okB {
		return similarity.Round(s.poBox(a, b, boxA, boxB))
	}

	if s.isLocal(a) || s.isLocal(b) {
		return similarity.Round(s.islandLocal(a, b))
	}

	return similarity.Round(s.general(a, b))
}

// poBox scores box addresses. With postal codes on both sides the code acts
// as a gate and, when exact, the box number decides alone; without codes the
// box number itself gates.
func (s *scorer) poBox(a, b *records.Address, boxA, boxB string) float64 {
	boxSim := similarity.Score(boxA, boxB)
	citySim := termPair(a.City, b.City)
	stateSim := statePair(a.State, b.State)

	if a.Zip != nil && b.Zip != nil {
		zipSim := a.Zip.Similarity(b.Zip)
		if zipSim < poBoxZipGate {
			return 0.0
		}
		if zipSim == 1.0 {
			return boxSim
		}
		return 0.3*zipSim + 0.3*boxSim + 0.2*citySim + 0.2*stateSim
	}

	if boxSim < poBoxNumGate {
		return 0.0
	}
	if boxSim == 1.0 {
		return 0.5*citySim + 0.5*stateSim
	}
	return 0.6*boxSim + 0.2*citySim + 0.2*stateSim
}

// islandLocal scores addresses inside the configured municipality, where the
// street number carries nearly all of the signal.
func (s *scorer) islandLocal(a, b *records.Address) float64 {
	numSim := termPair(a.StreetNumber, b.StreetNumber)

	if s.hasLocalCode(a) || s.hasLocalCode(b) {
		return 0.85*numSim + 0.15*termPair(a.StreetName, b.StreetName)
	}
	return numSim
}

// general scores ordinary street addresses. A postal code on either side
// shifts weight from city onto the code.
func (s *scorer) general(a, b *records.Address) float64 {
	numSim := termPair(a.StreetNumber, b.StreetNumber)
	streetSim := termPair(a.StreetName, b.StreetName)
	stateSim := statePair(a.State, b.State)

	if a.Zip != nil || b.Zip != nil {
		zipSim := termPair(a.Zip, b.Zip)
		return 0.3*numSim + 0.2*streetSim + 0.4*zipSim + 0.1*stateSim
	}

	citySim := termPair(a.City, b.City)
	return 0.3*numSim + 0.2*streetSim + 0.25*citySim + 0.25*stateSim
}

// isLocal reports whether the address belongs to the configured locality:
// carrying the local postal code, or a known local street together with a
// local city spelling.
func (s *scorer) isLocal(a *records.Address) bool {
	if s.hasLocalCode(a) {
		return true
	}
	return s.streets[lowerTerm(a.StreetName)] && s.cities[lowerTerm(a.City)]
}

// hasLocalCode reports whether the address carries the locality's postal code.
func (s *scorer) hasLocalCode(a *records.Address) bool {
	if s.locality.PostalCode == "" || a == nil || a.Zip == nil {
		return false
	}
	return strings.TrimSpace(a.Zip.String()) == s.locality.PostalCode
}

// termPair scores two optional Terms; either side missing contributes 0.
func termPair(x, y *records.Term) float64 {
	if x == nil || y == nil {
		return 0.0
	}
	return x.Similarity(y)
}

// statePair scores state Terms. Two-letter codes are exact-match-only;
// anything longer falls back to the similarity primitive.
func statePair(x, y *records.Term) float64 {
	if x == nil || y == nil {
		return 0.0
	}
	xs := strings.TrimSpace(x.String())
	ys := strings.TrimSpace(y.String())
	if len(xs) == 2 && len(ys) == 2 {
		if strings.EqualFold(xs, ys) {
			return 1.0
		}
		return 0.0
	}
	return x.Similarity(y)
}

func lowerTerm(t *records.Term) string {
	if t == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(t.String()))
}
