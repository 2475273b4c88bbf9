package records

import (
	"regexp"
	"strings"
)

// Address is a composite of optional address Terms. Any subset may be
// populated; comparators treat absent Terms per their own fixed rules.
type Address struct {
	StreetNumber *Term
	StreetName   *Term
	City         *Term
	State        *Term
	Zip          *Term
	UnitType     *Term
	UnitNumber   *Term
}

// poBoxPattern recognizes the street-name spellings the registries use for
// post-office boxes, with or without the box number folded into the name.
var poBoxPattern = regexp.MustCompile(`(?i)^\s*(?:p\.?\s*o\.?\s*)?box\b\.?\s*#?\s*(\d*)\s*$`)

// Kind implements Composite.
func (a *Address) Kind() Kind { return KindAddress }

// Calculator implements Composite.
func (a *Address) Calculator() string { return CalculatorAddress }

// Fields implements Composite.
func (a *Address) Fields() []Field {
	return []Field{
		{Name: "street_number", Term: a.StreetNumber},
		{Name: "street_name", Term: a.StreetName},
		{Name: "city", Term: a.City},
		{Name: "state", Term: a.State},
		{Name: "zip", Term: a.Zip},
		{Name: "unit_type", Term: a.UnitType},
		{Name: "unit_number", Term: a.UnitNumber},
	}
}

// Box reports whether the address is a post-office box and returns the box
// number. The number comes from the street name when it was folded in there
// ("PO Box 214"), otherwise from the street-number Term.
func (a *Address) Box() (string, bool) {
	if a == nil || a.StreetName == nil {
		return "", false
	}
	m := poBoxPattern.FindStringSubmatch(a.StreetName.String())
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return strings.TrimSpace(a.StreetNumber.String()), true
}

// Sources returns the union of the sources attributed to the address's Terms.
func (a *Address) Sources() []Source {
	seen := make(map[Source]bool)
	var out []Source
	for _, f := range a.Fields() {
		if f.Term == nil {
			continue
		}
		for _, s := range f.Term.Sources() {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// FromSource reports whether any Term of the address is attributed to src.
func (a *Address) FromSource(src Source) bool {
	if a == nil {
		return false
	}
	for _, f := range a.Fields() {
		if f.Term != nil && f.Term.HasSource(src) {
			return true
		}
	}
	return false
}
