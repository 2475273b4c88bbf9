package records

// Entity is a reconciled owner record: a name, contact information, optional
// auxiliary blocks, and the physical-location identifier the record occupies.
// Entities are created by external parsing and mutated only by the collision
// resolver, which absorbs merged records into the survivor's subdivision
// list. Entities are absorbed, never deleted.
type Entity struct {
	// ExternalID is the record id assigned by the source registry.
	ExternalID string

	Name      *Name
	Contact   *ContactInfo
	Other     Composite
	Legacy    Composite
	Household *HouseholdMembership
	Location  *LocationIdentifier

	// Subdivisions holds snapshots of records absorbed into this entity,
	// keyed by the absorbed record's external id.
	Subdivisions map[string]*Entity
}

// Kind implements Composite.
func (e *Entity) Kind() Kind { return KindEntity }

// Calculator implements Composite.
func (e *Entity) Calculator() string { return CalculatorEntity }

// Fields implements Composite. The external id, location identifier, and
// absorbed subdivisions are bookkeeping, not comparison material, and stay
// off the field list.
func (e *Entity) Fields() []Field {
	return []Field{
		{Name: "name", Composite: e.Name},
		{Name: "contact", Composite: e.Contact},
		{Name: "other_info", Composite: e.Other},
		{Name: "legacy_info", Composite: e.Legacy},
	}
}

// Absorb folds a snapshot of other into this entity's subdivision list,
// keyed by other's external id. Subdivisions the absorbed record had already
// collected move across too, so no record is ever lost to a chain of merges.
func (e *Entity) Absorb(other *Entity) {
	if other == nil {
		return
	}
	if e.Subdivisions == nil {
		e.Subdivisions = make(map[string]*Entity)
	}

	snap := other.Snapshot()
	for id, sub := range snap.Subdivisions {
		e.Subdivisions[id] = sub
	}
	snap.Subdivisions = nil
	e.Subdivisions[other.ExternalID] = snap
}

// Snapshot returns a copy of the entity safe to retain across later
// mutation. Terms are immutable, so nested Terms are shared; container
// structure is copied.
func (e *Entity) Snapshot() *Entity {
	if e == nil {
		return nil
	}
	snap := *e
	if e.Contact != nil {
		contact := *e.Contact
		contact.Secondary = append([]*Address(nil), e.Contact.Secondary...)
		snap.Contact = &contact
	}
	if e.Subdivisions != nil {
		subs := make(map[string]*Entity, len(e.Subdivisions))
		for id, sub := range e.Subdivisions {
			subs[id] = sub
		}
		snap.Subdivisions = subs
	}
	return &snap
}
