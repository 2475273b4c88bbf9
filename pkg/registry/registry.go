// Package registry implements the collision registry and resolver: the
// bookkeeping for physical-location identifiers shared by more than one
// property record, and the merge-or-fork decision for each new record
// arriving at an occupied base.
//
// A Registry is an explicit value local to one resolution run; there is no
// ambient global state. Resolve reads then writes without internal locking,
// so callers must serialize calls into one Registry. Scoring itself is pure
// and may run concurrently elsewhere.
package registry

import (
	"sort"

	"github.com/openrolls/ownermatch/pkg/records"
)

// Row is one occupant of a base identifier: the surviving entity and the
// suffix it was registered under (0 for the unsuffixed row).
type Row struct {
	Entity *records.Entity
	Suffix byte
}

// Identifier returns the full location identifier the row occupies.
func (r *Row) Identifier(base int) *records.LocationIdentifier {
	return records.NewLocation(base, r.Suffix)
}

// Registry maps base identifiers to their occupying records. Invariants: at
// most one row per base has no suffix; suffixes run gaplessly from 'A' in
// distinct-owner registration order and are never reused, since rows are
// never removed (absorbed records live on inside their survivor).
type Registry struct {
	bases map[int][]*Row
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{bases: make(map[int][]*Row)}
}

// Clear removes every registration.
func (r *Registry) Clear() {
	r.bases = make(map[int][]*Row)
}

// Rows returns the occupants of base in registration order.
func (r *Registry) Rows(base int) []*Row {
	return r.bases[base]
}

// Bases returns all registered bases in ascending order.
func (r *Registry) Bases() []int {
	out := make([]int, 0, len(r.bases))
	for b := range r.bases {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}

// Registered reports whether any record occupies base.
func (r *Registry) Registered(base int) bool {
	return len(r.bases[base]) > 0
}

// Collides reports whether base is a collision base: it holds more than one
// distinct owner, or an owner that has absorbed another record (a merge is a
// collision that was resolved to one owner).
func (r *Registry) Collides(base int) bool {
	rows := r.bases[base]
	if len(rows) >= 2 {
		return true
	}
	for _, row := range rows {
		if len(row.Entity.Subdivisions) > 0 {
			return true
		}
	}
	return false
}

// add registers e at base under the given suffix and stamps the entity's
// location accordingly.
func (r *Registry) add(base int, suffix byte, e *records.Entity) *Row {
	row := &Row{Entity: e, Suffix: suffix}
	r.bases[base] = append(r.bases[base], row)
	e.Location = records.NewLocation(base, suffix)
	return row
}

// nextSuffix returns the lowest letter not yet consumed at base. Rows are
// never removed, so counting suffixed rows is sufficient. The second return
// is false once the base has consumed 'Z'.
func (r *Registry) nextSuffix(base int) (byte, bool) {
	n := 0
	for _, row := range r.bases[base] {
		if row.Suffix != 0 {
			n++
		}
	}
	if n >= 26 {
		return 0, false
	}
	return byte('A' + n), true
}
