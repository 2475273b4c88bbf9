package registry

import "github.com/openrolls/ownermatch/pkg/records"

// Case classifies a cross-dataset address pair by collision relevance. The
// broader matching pipeline uses it to decide whether a shared identifier
// should affect an address comparison.
type Case string

// Collision cases.
const (
	// CaseNoCollision: neither address sits at a registered collision base.
	CaseNoCollision Case = "a"

	// CaseOneCollides: exactly one address sits at a collision base.
	CaseOneCollides Case = "b"

	// CaseDifferentBases: both sit at collision bases, but different ones.
	CaseDifferentBases Case = "c"

	// CaseExcluded: both sit at the same base, both are appraisal-sourced,
	// and each is its entity's primary address. The pair is excluded from
	// comparison: the shared identifier, not a shared owner, explains it.
	CaseExcluded Case = "d"

	// CaseIgnoreIdentifier: both collide at the same base without meeting
	// the exclusion conditions; compare while ignoring the identifier
	// component.
	CaseIgnoreIdentifier Case = "e"
)

// Classify determines the collision case for an address pair. The entities
// are optional context: an address sits at a collision base only through its
// entity's location identifier.
func (r *Registry) Classify(addr1, addr2 *records.Address, e1, e2 *records.Entity) Case {
	base1, ok1 := r.collisionBase(e1)
	base2, ok2 := r.collisionBase(e2)

	switch {
	case !ok1 && !ok2:
		return CaseNoCollision
	case ok1 != ok2:
		return CaseOneCollides
	case base1 != base2:
		return CaseDifferentBases
	}

	if addr1.FromSource(records.SourceAppraisal) &&
		addr2.FromSource(records.SourceAppraisal) &&
		e1.Contact.IsPrimary(addr1) &&
		e2.Contact.IsPrimary(addr2) {
		return CaseExcluded
	}
	return CaseIgnoreIdentifier
}

// collisionBase returns the entity's base when it is a registered collision
// base.
func (r *Registry) collisionBase(e *records.Entity) (int, bool) {
	if e == nil || e.Location == nil {
		return 0, false
	}
	base := e.Location.Base()
	if !r.Collides(base) {
		return 0, false
	}
	return base, true
}
