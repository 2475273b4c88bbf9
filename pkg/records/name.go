package records

import "strings"

// NameWeights are the per-component weights a Name carries for structured
// comparison. They are renormalized over the parts present on both sides.
type NameWeights struct {
	First float64
	Last  float64
	Other float64
}

// DefaultNameWeights favors the surname, which the registries keep cleanest.
func DefaultNameWeights() NameWeights {
	return NameWeights{First: 0.35, Last: 0.5, Other: 0.15}
}

// Name holds structured name Terms plus a derived full-text form. The
// structured parts come from the external name-classification stage; records
// it could not decompose carry only the full form.
type Name struct {
	First   *Term
	Last    *Term
	Other   *Term
	Full    *Term
	Weights NameWeights
}

// NewName builds a structured Name and derives its full-text form.
func NewName(first, last, other string, sources ...Source) *Name {
	n := &Name{Weights: DefaultNameWeights()}
	if first != "" {
		n.First = Text("first_name", first, sources...)
	}
	if last != "" {
		n.Last = Text("last_name", last, sources...)
	}
	if other != "" {
		n.Other = Text("other_name", other, sources...)
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{first, other, last} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		n.Full = Text("full_name", strings.Join(parts, " "), sources...)
	}
	return n
}

// NewFullName builds a Name carrying only an undecomposed full-text form.
func NewFullName(full string, sources ...Source) *Name {
	return &Name{
		Full:    Text("full_name", full, sources...),
		Weights: DefaultNameWeights(),
	}
}

// Kind implements Composite.
func (n *Name) Kind() Kind { return KindName }

// Calculator implements Composite.
func (n *Name) Calculator() string { return CalculatorName }

// Fields implements Composite. The derived full form is excluded: it is a
// fallback representation, not an independent comparable field.
func (n *Name) Fields() []Field {
	return []Field{
		{Name: "first_name", Term: n.First},
		{Name: "last_name", Term: n.Last},
		{Name: "other_name", Term: n.Other},
	}
}

// Structured reports whether the name has any decomposed parts.
func (n *Name) Structured() bool {
	return n != nil && (n.First != nil || n.Last != nil || n.Other != nil)
}
