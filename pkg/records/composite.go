package records

// Kind identifies a composite record kind. Comparisons are only defined
// between composites of the same kind.
type Kind string

// Composite kinds.
const (
	KindAddress   Kind = "address"
	KindContact   Kind = "contact"
	KindName      Kind = "name"
	KindHousehold Kind = "household"
	KindEntity    Kind = "entity"
	KindDetails   Kind = "details"
)

// Calculator names. Composites reference their comparator by stable name
// rather than a direct function value so that persisted records re-bind
// correctly after deserialization. An empty name selects the generic
// field-by-field comparison.
const (
	CalculatorAddress   = "address"
	CalculatorContact   = "contact"
	CalculatorName      = "name"
	CalculatorHousehold = "household"
	CalculatorEntity    = "entity"
)

// Composite is a record built from Terms and/or nested composites.
type Composite interface {
	// Kind returns the composite's kind.
	Kind() Kind

	// Calculator returns the stable name of the comparator bound to this
	// composite, or "" for generic field-by-field comparison.
	Calculator() string

	// Fields returns the composite's declared comparable fields in a fixed
	// order. Fields outside the comparison contract (identifiers, absorbed
	// snapshots) are never included.
	Fields() []Field
}

// Field is one declared comparable member of a composite: either a leaf Term
// or a nested composite. At most one of Term and Composite is set; both nil
// means the field is absent on this record.
type Field struct {
	Name      string
	Term      *Term
	Composite Composite
}

// Present reports whether the field carries a value on this record.
func (f Field) Present() bool {
	return f.Term != nil || !isNilComposite(f.Composite)
}

// isNilComposite reports whether c is nil, including a typed nil inside the
// interface value.
func isNilComposite(c Composite) bool {
	if c == nil {
		return true
	}
	switch v := c.(type) {
	case *Address:
		return v == nil
	case *ContactInfo:
		return v == nil
	case *Name:
		return v == nil
	case *HouseholdMembership:
		return v == nil
	case *Entity:
		return v == nil
	case *Details:
		return v == nil
	}
	return false
}
