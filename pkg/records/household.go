package records

// HouseholdMembership records whether an entity belongs to a household and,
// if so, which one and in what role.
type HouseholdMembership struct {
	InHousehold   bool
	HouseholdID   *Term
	HouseholdName *Term
	Head          bool
}

// Kind implements Composite.
func (h *HouseholdMembership) Kind() Kind { return KindHousehold }

// Calculator implements Composite.
func (h *HouseholdMembership) Calculator() string { return CalculatorHousehold }

// Fields implements Composite.
func (h *HouseholdMembership) Fields() []Field {
	return []Field{
		{Name: "household_id", Term: h.HouseholdID},
		{Name: "household_name", Term: h.HouseholdName},
	}
}
