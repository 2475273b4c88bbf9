// Package records defines the data model shared by the scoring framework and
// the collision resolver: provenance-tagged Terms, the composite records built
// from them (Address, ContactInfo, Name, HouseholdMembership, Entity), and
// location identifiers.
//
// Records arrive already structured from external ingestion. Terms are
// immutable; attribution grows only through external reconciliation, never as
// a side effect of comparison.
package records

import (
	"fmt"

	"github.com/openrolls/ownermatch/pkg/similarity"
)

// Source tags which registry a value came from.
type Source string

// Known source registries.
const (
	SourceDonor     Source = "donor"
	SourceAppraisal Source = "appraisal"
)

// Term is an atomic, provenance-tagged comparable value. String Terms compare
// through the similarity primitive; everything else compares by exact
// equality. A Term is immutable once created.
type Term struct {
	value   any
	sources []Source
	field   string
}

// NewTerm creates a Term for the named field attributed to the given sources.
func NewTerm(field string, value any, sources ...Source) *Term {
	return &Term{
		value:   value,
		sources: append([]Source(nil), sources...),
		field:   field,
	}
}

// Text is shorthand for a string-valued Term.
func Text(field, value string, sources ...Source) *Term {
	return NewTerm(field, value, sources...)
}

// Value returns the underlying value.
func (t *Term) Value() any {
	return t.value
}

// Field returns the field name the Term was attributed to.
func (t *Term) Field() string {
	return t.field
}

// Sources returns the registries that attributed this value.
func (t *Term) Sources() []Source {
	return append([]Source(nil), t.sources...)
}

// HasSource reports whether src is among the Term's attributions.
func (t *Term) HasSource(src Source) bool {
	for _, s := range t.sources {
		if s == src {
			return true
		}
	}
	return false
}

// Attribute returns a copy of the Term with src added to its attributions.
// The receiver is left untouched.
func (t *Term) Attribute(src Source) *Term {
	if t.HasSource(src) {
		return t
	}
	return &Term{
		value:   t.value,
		sources: append(t.Sources(), src),
		field:   t.field,
	}
}

// String returns the Term's value rendered as text.
func (t *Term) String() string {
	if t == nil || t.value == nil {
		return ""
	}
	if s, ok := t.value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", t.value)
}

// IsText reports whether the Term holds a string value.
func (t *Term) IsText() bool {
	if t == nil {
		return false
	}
	_, ok := t.value.(string)
	return ok
}

// Similarity scores this Term against another. String values go through the
// similarity primitive; other values score 1 on exact equality and 0
// otherwise. A nil Term on either side scores 0 against a present one and 1
// against another nil.
func (t *Term) Similarity(other *Term) float64 {
	if t == nil && other == nil {
		return 1.0
	}
	if t == nil || other == nil {
		return 0.0
	}
	if t.IsText() && other.IsText() {
		return similarity.Score(t.String(), other.String())
	}
	if t.value == other.value {
		return 1.0
	}
	return 0.0
}

// Equal reports whether two Terms compare as identical.
func (t *Term) Equal(other *Term) bool {
	return t.Similarity(other) == 1.0
}
