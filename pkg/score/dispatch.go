package score

import (
	"github.com/openrolls/ownermatch/pkg/errors"
	"github.com/openrolls/ownermatch/pkg/records"
	"github.com/openrolls/ownermatch/pkg/similarity"
)

// calculator is the closed set of comparator kinds. Composites bind one by
// stable name (records.CalculatorXxx); the name survives serialization and
// re-binds here.
type calculator int

const (
	calcGeneric calculator = iota
	calcAddress
	calcContact
	calcName
	calcEntity
	calcHousehold
)

// calculatorNames maps stable binding names to comparator kinds.
var calculatorNames = map[string]calculator{
	records.CalculatorAddress:   calcAddress,
	records.CalculatorContact:   calcContact,
	records.CalculatorName:      calcName,
	records.CalculatorEntity:    calcEntity,
	records.CalculatorHousehold: calcHousehold,
}

// Compare scores two composites of the same kind. A bound calculator's
// result is the final score; without one the comparison walks a's declared
// fields. Comparing two different kinds panics with a KindMismatchError.
func (s *scorer) Compare(a, b records.Composite) float64 {
	if a.Kind() != b.Kind() {
		panic(errors.NewKindMismatchError(string(a.Kind()), string(b.Kind())))
	}

	name := a.Calculator()
	if name == "" {
		return similarity.Round(s.structural(a, b))
	}

	if c, ok := calculatorNames[name]; ok {
		if score, ok := s.dispatch(c, a, b); ok {
			return score
		}
	}

	s.log.Warn().
		Err(errors.NewCalculatorError(name, string(a.Kind()))).
		Msg("unknown calculator, falling back to generic comparison")
	return similarity.Round(s.structural(a, b))
}

// dispatch invokes the named calculator when the operands carry the concrete
// type it expects. A false return means the binding does not fit the record,
// which callers treat like an unknown name.
func (s *scorer) dispatch(c calculator, a, b records.Composite) (float64, bool) {
	switch c {
	case calcAddress:
		if x, ok := a.(*records.Address); ok {
			if y, ok := b.(*records.Address); ok {
				return s.Address(x, y), true
			}
		}
	case calcContact:
		if x, ok := a.(*records.ContactInfo); ok {
			if y, ok := b.(*records.ContactInfo); ok {
				return s.Contact(x, y), true
			}
		}
	case calcName:
		if x, ok := a.(*records.Name); ok {
			if y, ok := b.(*records.Name); ok {
				return s.Name(x, y), true
			}
		}
	case calcEntity:
		if x, ok := a.(*records.Entity); ok {
			if y, ok := b.(*records.Entity); ok {
				return s.Entity(x, y), true
			}
		}
	case calcHousehold:
		if x, ok := a.(*records.HouseholdMembership); ok {
			if y, ok := b.(*records.HouseholdMembership); ok {
				return s.Household(x, y), true
			}
		}
	}
	return 0, false
}

// structural is the generic field-by-field comparison: a field present on
// one side only is a mismatch, nested composites recurse, and the first
// unequal leaf short-circuits with its own similarity.
func (s *scorer) structural(a, b records.Composite) float64 {
	byName := make(map[string]records.Field)
	for _, f := range b.Fields() {
		byName[f.Name] = f
	}

	for _, fa := range a.Fields() {
		fb := byName[fa.Name]
		if fa.Present() != fb.Present() {
			return 0.0
		}
		if !fa.Present() {
			continue
		}

		switch {
		case fa.Term != nil && fb.Term != nil:
			if sim := fa.Term.Similarity(fb.Term); sim != 1.0 {
				return sim
			}
		case fa.Composite != nil && fb.Composite != nil:
			if sim := s.Compare(fa.Composite, fb.Composite); sim != 1.0 {
				return sim
			}
		default:
			// A leaf on one side and a nested record on the other.
			return 0.0
		}
	}

	return 1.0
}
