package records

// ContactInfo bundles an entity's reachable addresses and electronic
// contact points. The primary address is the canonical mailing address;
// secondary addresses keep their registry order.
type ContactInfo struct {
	Primary   *Address
	Secondary []*Address
	Email     *Term
	Phone     *Term
}

// Kind implements Composite.
func (c *ContactInfo) Kind() Kind { return KindContact }

// Calculator implements Composite.
func (c *ContactInfo) Calculator() string { return CalculatorContact }

// Fields implements Composite. Secondary addresses are not part of the
// generic field contract; the contact calculator pairs them explicitly.
func (c *ContactInfo) Fields() []Field {
	return []Field{
		{Name: "primary_address", Composite: c.Primary},
		{Name: "email", Term: c.Email},
		{Name: "phone", Term: c.Phone},
	}
}

// Addresses returns the primary address (when present) followed by all
// secondary addresses.
func (c *ContactInfo) Addresses() []*Address {
	if c == nil {
		return nil
	}
	var out []*Address
	if c.Primary != nil {
		out = append(out, c.Primary)
	}
	out = append(out, c.Secondary...)
	return out
}

// IsPrimary reports whether addr is this contact's primary address.
// Identity comparison is deliberate: the classifier asks about a specific
// record, not an equivalent one.
func (c *ContactInfo) IsPrimary(addr *Address) bool {
	return c != nil && c.Primary != nil && c.Primary == addr
}
