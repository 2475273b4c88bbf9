package score

import (
	"github.com/openrolls/ownermatch/pkg/records"
	"github.com/openrolls/ownermatch/pkg/similarity"
)

// Base weights for the entity comparator, renormalized over the components
// present on both sides.
const (
	entityNameWeight    = 0.5
	entityContactWeight = 0.3
	entityOtherWeight   = 0.15
	entityLegacyWeight  = 0.05
)

// Weight shifted onto the name component when it matches exactly or
// near-exactly. An identical name is strong evidence on its own; the boost
// keeps weak contact data from dragging the score under the merge threshold.
const (
	entityExactNameBoost = 0.12
	entityNearNameBoost  = 0.06
	entityNearNameFloor  = 0.95
)

// entityComponent is one weighted contributor to an entity score.
type entityComponent struct {
	weight float64
	sim    float64
	isName bool
}

// Entity scores two owner records: name and contact first, then the optional
// auxiliary blocks, which contribute only when both sides expose a bound
// calculator. An exact name match shifts 12 points of weight onto the name
// from the other present components proportionally; a near-exact match
// (above 0.95) shifts 6. The shift is capped at the weight those components
// hold between them.
func (s *scorer) Entity(a, b *records.Entity) float64 {
	if a == nil && b == nil {
		return 1.0
	}
	if a == nil || b == nil {
		return 0.0
	}

	var components []entityComponent

	if a.Name != nil && b.Name != nil {
		components = append(components, entityComponent{
			weight: entityNameWeight,
			sim:    s.Name(a.Name, b.Name),
			isName: true,
		})
	}
	if a.Contact != nil && b.Contact != nil {
		components = append(components, entityComponent{
			weight: entityContactWeight,
			sim:    s.Contact(a.Contact, b.Contact),
		})
	}
	if sim, ok := s.auxiliary(a.Other, b.Other); ok {
		components = append(components, entityComponent{weight: entityOtherWeight, sim: sim})
	}
	if sim, ok := s.auxiliary(a.Legacy, b.Legacy); ok {
		components = append(components, entityComponent{weight: entityLegacyWeight, sim: sim})
	}

	if len(components) == 0 {
		return 0.0
	}

	boostName(components)

	var weighted, total float64
	for _, c := range components {
		weighted += c.weight * c.sim
		total += c.weight
	}
	return similarity.Round(weighted / total)
}

// auxiliary scores an optional metadata block pair. The pair contributes
// only when both sides are present and both expose a bound calculator.
func (s *scorer) auxiliary(x, y records.Composite) (float64, bool) {
	if x == nil || y == nil {
		return 0, false
	}
	if x.Calculator() == "" || y.Calculator() == "" {
		return 0, false
	}
	if x.Kind() != y.Kind() {
		return 0, false
	}
	return s.Compare(x, y), true
}

// boostName shifts weight onto an exactly or near-exactly matching name
// component, drawn from the other components proportionally to their
// current weights. The shift is capped at the donors' combined weight, so a
// donated weight bottoms out at zero and never goes negative.
func boostName(components []entityComponent) {
	nameIdx := -1
	for i, c := range components {
		if c.isName {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return
	}

	var shift float64
	switch sim := components[nameIdx].sim; {
	case sim == 1.0:
		shift = entityExactNameBoost
	case sim > entityNearNameFloor && sim < 1.0:
		shift = entityNearNameBoost
	default:
		return
	}

	var rest float64
	for i, c := range components {
		if i != nameIdx {
			rest += c.weight
		}
	}
	if rest == 0 {
		return
	}
	if shift > rest {
		shift = rest
	}

	for i := range components {
		if i == nameIdx {
			components[i].weight += shift
		} else {
			components[i].weight -= shift * components[i].weight / rest
		}
	}
}
