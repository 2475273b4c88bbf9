package score

import (
	"strings"

	"github.com/openrolls/ownermatch/pkg/records"
	"github.com/openrolls/ownermatch/pkg/similarity"
)

// Base weights for the contact comparator, renormalized over whichever
// components are present on both sides.
const (
	contactPrimaryWeight   = 0.6
	contactSecondaryWeight = 0.2
	contactEmailWeight     = 0.2
)

// Contact scores two contact bundles. The primary component pairs either
// side's primary address against the union of the other side's addresses and
// takes the best score; the winning pair is excluded before the secondary
// component takes the best remaining pairwise score. Phone numbers are
// carried in the model but do not contribute.
func (s *scorer) Contact(a, b *records.ContactInfo) float64 {
	if a == nil && b == nil {
		return 1.0
	}
	if a == nil || b == nil {
		return 0.0
	}

	addrsA := a.Addresses()
	addrsB := b.Addresses()

	primarySim, primaryOK, usedA, usedB := s.bestPrimaryPair(a, b, addrsA, addrsB)
	secondarySim, secondaryOK := s.bestRemainingPair(addrsA, addrsB, usedA, usedB)

	emailOK := a.Email != nil && b.Email != nil
	var emailSim float64
	if emailOK {
		emailSim = similarity.Score(
			strings.ToLower(a.Email.String()),
			strings.ToLower(b.Email.String()),
		)
	}

	var weighted, total float64
	if primaryOK {
		weighted += contactPrimaryWeight * primarySim
		total += contactPrimaryWeight
	}
	if secondaryOK {
		weighted += contactSecondaryWeight * secondarySim
		total += contactSecondaryWeight
	}
	if emailOK {
		weighted += contactEmailWeight * emailSim
		total += contactEmailWeight
	}

	if total == 0 {
		return 0.0
	}
	return similarity.Round(weighted / total)
}

// bestPrimaryPair finds the best score pairing either primary address
// against the other side's address union. It returns the winning pair's
// indexes so the pair is excluded from secondary pairing.
func (s *scorer) bestPrimaryPair(a, b *records.ContactInfo, addrsA, addrsB []*records.Address) (float64, bool, int, int) {
	best := -1.0
	usedA, usedB := -1, -1

	if a.Primary != nil {
		for j, addr := range addrsB {
			if sim := s.Address(a.Primary, addr); sim > best {
				best = sim
				usedA, usedB = 0, j
			}
		}
	}
	if b.Primary != nil {
		for i, addr := range addrsA {
			if sim := s.Address(addr, b.Primary); sim > best {
				best = sim
				usedA, usedB = i, 0
			}
		}
	}

	if best < 0 {
		return 0, false, -1, -1
	}
	return best, true, usedA, usedB
}

// bestRemainingPair finds the best pairwise score among the addresses left
// after the primary pairing.
func (s *scorer) bestRemainingPair(addrsA, addrsB []*records.Address, usedA, usedB int) (float64, bool) {
	best := -1.0
	for i, x := range addrsA {
		if i == usedA {
			continue
		}
		for j, y := range addrsB {
			if j == usedB {
				continue
			}
			if sim := s.Address(x, y); sim > best {
				best = sim
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
