package records

import "sort"

// Details is a generic bag of auxiliary Terms used for the opaque
// other-info and legacy-info blocks on an Entity. A Details value may bind a
// named calculator; without one it only takes part in generic field-by-field
// comparison, and the entity comparator excludes it.
type Details struct {
	Label string
	Terms map[string]*Term

	// Bound is the stable calculator name, or "" for none.
	Bound string
}

// NewDetails creates an empty Details bag.
func NewDetails(label string) *Details {
	return &Details{Label: label, Terms: make(map[string]*Term)}
}

// Set stores a Term under the given key and returns the bag for chaining.
func (d *Details) Set(key string, t *Term) *Details {
	if d.Terms == nil {
		d.Terms = make(map[string]*Term)
	}
	d.Terms[key] = t
	return d
}

// Kind implements Composite.
func (d *Details) Kind() Kind { return KindDetails }

// Calculator implements Composite.
func (d *Details) Calculator() string { return d.Bound }

// Fields implements Composite. Keys are sorted so the comparison order is
// deterministic.
func (d *Details) Fields() []Field {
	keys := make([]string, 0, len(d.Terms))
	for k := range d.Terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Name: k, Term: d.Terms[k]})
	}
	return fields
}
