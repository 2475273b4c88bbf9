package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrolls/ownermatch/pkg/errors"
	"github.com/openrolls/ownermatch/pkg/logging"
	"github.com/openrolls/ownermatch/pkg/records"
	"github.com/openrolls/ownermatch/pkg/similarity"
)

func newTestScorer(t *testing.T, opts ...Option) Scorer {
	t.Helper()
	s, err := New(opts...)
	require.NoError(t, err)
	return s
}

func addr(number, street, city, state, zip string) *records.Address {
	set := func(field, v string) *records.Term {
		if v == "" {
			return nil
		}
		return records.Text(field, v)
	}
	return &records.Address{
		StreetNumber: set("street_number", number),
		StreetName:   set("street_name", street),
		City:         set("city", city),
		State:        set("state", state),
		Zip:          set("zip", zip),
	}
}

func TestCompareKindMismatchPanics(t *testing.T) {
	s := newTestScorer(t)

	name := records.NewName("John", "Smith", "")
	address := addr("12", "Main St", "", "", "")

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, errors.ErrKindMismatch)
	}()
	s.Compare(name, address)
}

func TestCompareUnknownCalculatorFallsBack(t *testing.T) {
	log := logging.NewTestLogger(t)
	s := newTestScorer(t, WithLogger(log.Logger))

	a := records.NewDetails("aux").Set("k", records.Text("k", "v"))
	a.Bound = "no-such-calculator"
	b := records.NewDetails("aux").Set("k", records.Text("k", "v"))
	b.Bound = "no-such-calculator"

	assert.Equal(t, 1.0, s.Compare(a, b))
	assert.True(t, log.Contains("unknown calculator"))
	assert.True(t, log.Contains(`no calculator named \"no-such-calculator\" bound for kind`))
}

func TestCompareStructural(t *testing.T) {
	s := newTestScorer(t)

	tests := []struct {
		name string
		a, b *records.Details
		want float64
	}{
		{
			name: "identical bags",
			a:    records.NewDetails("x").Set("zone", records.Text("zone", "R1")),
			b:    records.NewDetails("x").Set("zone", records.Text("zone", "R1")),
			want: 1.0,
		},
		{
			name: "field on one side only",
			a:    records.NewDetails("x").Set("zone", records.Text("zone", "R1")),
			b:    records.NewDetails("x"),
			want: 0.0,
		},
		{
			name: "unequal leaf short-circuits with its similarity",
			a:    records.NewDetails("x").Set("zone", records.Text("zone", "R1")),
			b:    records.NewDetails("x").Set("zone", records.Text("zone", "R2")),
			want: similarity.Score("R1", "R2"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Compare(tt.a, tt.b))
		})
	}
}

func TestAddressPOBoxExactZip(t *testing.T) {
	s := newTestScorer(t)

	// Identical postal codes: the final score must equal the box-number
	// similarity exactly, whatever the city and state say.
	a := addr("214", "PO Box", "Springfield", "IL", "62704")
	b := addr("219", "PO Box", "Completely Elsewhere", "ZZ", "62704")

	boxSim := similarity.Score("214", "219")
	assert.Equal(t, boxSim, s.Address(a, b))
}

func TestAddressPOBoxZipGate(t *testing.T) {
	s := newTestScorer(t)

	a := addr("214", "PO Box", "Springfield", "IL", "62704")
	b := addr("214", "PO Box", "Springfield", "IL", "99999")

	assert.Equal(t, 0.0, s.Address(a, b), "dissimilar postal codes gate to zero")
}

func TestAddressPOBoxWithoutCodes(t *testing.T) {
	s := newTestScorer(t)

	tests := []struct {
		name string
		a, b *records.Address
		want float64
	}{
		{
			name: "identical box numbers score city and state",
			a:    addr("214", "PO Box", "Springfield", "IL", ""),
			b:    addr("214", "PO Box", "Springfield", "IL", ""),
			want: 1.0,
		},
		{
			name: "distant box numbers gate to zero",
			a:    addr("214", "PO Box", "Springfield", "IL", ""),
			b:    addr("98", "PO Box", "Springfield", "IL", ""),
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Address(tt.a, tt.b))
		})
	}
}

func TestAddressOneSidedZipUsesNoCodeBranch(t *testing.T) {
	s := newTestScorer(t)

	a := addr("214", "PO Box", "Springfield", "IL", "62704")
	b := addr("214", "PO Box", "Springfield", "IL", "")

	// Box numbers identical, so the score is 0.5·city + 0.5·state.
	assert.Equal(t, 1.0, s.Address(a, b))
}

func TestAddressIslandLocal(t *testing.T) {
	loc := Locality{
		PostalCode:  "02557",
		Streets:     []string{"Circuit Ave"},
		CityAliases: []string{"Oak Bluffs", "O.B."},
	}
	s := newTestScorer(t, WithLocality(loc))

	t.Run("local code present weighs street number heavily", func(t *testing.T) {
		a := addr("12", "Circuit Ave", "Oak Bluffs", "MA", "02557")
		b := addr("12", "Circuit Avenue", "Oak Bluffs", "MA", "")

		streetSim := similarity.Score("circuit ave", "circuit avenue")
		want := similarity.Round(0.85*1.0 + 0.15*streetSim)
		assert.Equal(t, want, s.Address(a, b))
	})

	t.Run("street and city alias without code uses number alone", func(t *testing.T) {
		a := addr("12", "Circuit Ave", "O.B.", "", "")
		b := addr("12", "Circuit Ave", "Oak Bluffs", "", "")

		assert.Equal(t, 1.0, s.Address(a, b))
	})
}

func TestAddressGeneral(t *testing.T) {
	s := newTestScorer(t)

	t.Run("with zip", func(t *testing.T) {
		a := addr("12", "Main St", "Springfield", "IL", "62704")
		b := addr("12", "Main St", "Shelbyville", "IL", "62704")

		// 0.3·num + 0.2·street + 0.4·zip + 0.1·state; city plays no part.
		assert.Equal(t, 1.0, s.Address(a, b))
	})

	t.Run("missing component weight is not redistributed", func(t *testing.T) {
		a := addr("12", "Main St", "", "", "")
		b := addr("12", "Main St", "", "", "")

		// Only number and street present: 0.3 + 0.2 of the no-zip weights.
		assert.Equal(t, 0.5, s.Address(a, b))
	})

	t.Run("two letter states are exact only", func(t *testing.T) {
		a := addr("", "", "", "IL", "")
		b := addr("", "", "", "IN", "")

		assert.Equal(t, 0.0, s.Address(a, b))
	})
}

func TestContactSoleIdenticalAddress(t *testing.T) {
	s := newTestScorer(t)

	a := &records.ContactInfo{Primary: addr("12", "Main St", "Springfield", "IL", "62704")}
	b := &records.ContactInfo{Primary: addr("12", "Main St", "Springfield", "IL", "62704")}

	// Identical sole addresses score 1.0 regardless of absent email and
	// secondary data.
	assert.Equal(t, 1.0, s.Contact(a, b))
}

func TestContactRenormalization(t *testing.T) {
	s := newTestScorer(t)

	shared := addr("12", "Main St", "Springfield", "IL", "62704")
	a := &records.ContactInfo{
		Primary: shared,
		Email:   records.Text("email", "JOHN@EXAMPLE.COM"),
	}
	b := &records.ContactInfo{
		Primary: addr("12", "Main St", "Springfield", "IL", "62704"),
		Email:   records.Text("email", "john@example.com"),
	}

	// Primary 1.0 and case-insensitive email 1.0, renormalized over the
	// present pair.
	assert.Equal(t, 1.0, s.Contact(a, b))
}

func TestContactSecondaryPairing(t *testing.T) {
	s := newTestScorer(t)

	home := addr("12", "Main St", "Springfield", "IL", "62704")
	cabin := addr("7", "Lake Rd", "Mackinaw", "IL", "61755")

	a := &records.ContactInfo{Primary: home, Secondary: []*records.Address{cabin}}
	b := &records.ContactInfo{
		Primary:   addr("12", "Main St", "Springfield", "IL", "62704"),
		Secondary: []*records.Address{addr("7", "Lake Rd", "Mackinaw", "IL", "61755")},
	}

	// Primary pairs 1.0, the cabins pair 1.0 among the remainder.
	assert.Equal(t, 1.0, s.Contact(a, b))
}

func TestContactNoSharedComponents(t *testing.T) {
	s := newTestScorer(t)

	a := &records.ContactInfo{Email: records.Text("email", "john@example.com")}
	b := &records.ContactInfo{Phone: records.Text("phone", "555-0100")}

	assert.Equal(t, 0.0, s.Contact(a, b))
}

func TestNameStructured(t *testing.T) {
	s := newTestScorer(t)

	tests := []struct {
		name string
		a, b *records.Name
		want float64
	}{
		{
			name: "identical structured names",
			a:    records.NewName("John", "Smith", ""),
			b:    records.NewName("John", "Smith", ""),
			want: 1.0,
		},
		{
			name: "full text fallback",
			a:    records.NewFullName("Smith Family Trust"),
			b:    records.NewFullName("Smith Family Trust"),
			want: 1.0,
		},
		{
			name: "structured against unstructured uses full forms",
			a:    records.NewName("John", "Smith", ""),
			b:    records.NewFullName("John Smith"),
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Name(tt.a, tt.b))
		})
	}
}

func TestNamePartRenormalization(t *testing.T) {
	s := newTestScorer(t)

	// Only the surname is present on both sides; its weight renormalizes
	// to 1 and the first name on one side is excluded.
	a := records.NewName("John", "Smith", "")
	b := records.NewName("", "Smith", "")

	assert.Equal(t, 1.0, s.Name(a, b))
}

func TestEntityIdenticalNameOnly(t *testing.T) {
	s := newTestScorer(t)

	a := &records.Entity{Name: records.NewName("John", "Smith", "")}
	b := &records.Entity{Name: records.NewName("John", "Smith", "")}

	assert.Equal(t, 1.0, s.Entity(a, b))
}

func TestEntityExactNameBoost(t *testing.T) {
	s := newTestScorer(t)

	contactA := &records.ContactInfo{Primary: addr("12", "Main St", "Springfield", "IL", "62704")}
	contactB := &records.ContactInfo{Primary: addr("98", "Elm St", "Shelbyville", "IL", "62565")}

	sameName := &records.Entity{Name: records.NewName("John", "Smith", ""), Contact: contactA}
	sameNameOther := &records.Entity{Name: records.NewName("John", "Smith", ""), Contact: contactB}
	diffName := &records.Entity{Name: records.NewName("Jane", "Doe", ""), Contact: contactB}

	withBoost := s.Entity(sameName, sameNameOther)
	contactSim := s.Contact(contactA, contactB)

	// Exact name: 12 points shift from contact onto name, so the weights
	// become 0.62/0.18.
	want := similarity.Round((0.62*1.0 + 0.18*contactSim) / 0.8)
	assert.Equal(t, want, withBoost)

	assert.Greater(t, withBoost, s.Entity(sameName, diffName))
}

func TestEntityAuxiliaryNeedsCalculatorsBothSides(t *testing.T) {
	s := newTestScorer(t)

	bound := records.NewDetails("aux").Set("zone", records.Text("zone", "R1"))
	bound.Bound = records.CalculatorHousehold

	unbound := records.NewDetails("aux").Set("zone", records.Text("zone", "R1"))

	a := &records.Entity{Name: records.NewName("John", "Smith", ""), Other: bound}
	b := &records.Entity{Name: records.NewName("John", "Smith", ""), Other: unbound}

	// One side unbound: the auxiliary block is excluded and the identical
	// name carries the whole score.
	assert.Equal(t, 1.0, s.Entity(a, b))
}

func TestEntityNameBoostCappedAtAuxiliaryWeight(t *testing.T) {
	s := newTestScorer(t)

	// Near-exact surnames: one vowel substitution over 14 letters keeps the
	// similarity inside the 6-point boost band.
	left := records.NewName("", "Christopherson", "")
	right := records.NewName("", "Christophersen", "")
	nameSim := s.Name(left, right)
	require.Greater(t, nameSim, entityNearNameFloor)
	require.Less(t, nameSim, 1.0)

	member := &records.HouseholdMembership{
		InHousehold: true,
		Head:        true,
		HouseholdID: records.Text("household_id", "H-100"),
	}
	nonMember := &records.HouseholdMembership{}
	require.Equal(t, 0.0, s.Household(member, nonMember))

	b := &records.Entity{Name: right, Legacy: nonMember}
	disjointLegacy := &records.Entity{Name: left, Legacy: member}
	identicalLegacy := &records.Entity{Name: left, Legacy: &records.HouseholdMembership{}}

	// The legacy block's 5 points cannot cover the 6-point shift; the boost
	// drains the block to zero weight instead of driving it negative, so
	// both scores collapse to the name similarity.
	gotDisjoint := s.Entity(disjointLegacy, b)
	gotIdentical := s.Entity(identicalLegacy, b)
	assert.Equal(t, nameSim, gotDisjoint)
	assert.Equal(t, nameSim, gotIdentical)

	// A worse legacy block never outscores a better one.
	assert.LessOrEqual(t, gotDisjoint, gotIdentical)
}

func TestHouseholdModes(t *testing.T) {
	s := newTestScorer(t)

	tests := []struct {
		name string
		a, b *records.HouseholdMembership
		want float64
	}{
		{
			name: "both non members",
			a:    &records.HouseholdMembership{},
			b:    &records.HouseholdMembership{},
			want: 1.0,
		},
		{
			name: "non member vs member",
			a:    &records.HouseholdMembership{},
			b:    &records.HouseholdMembership{InHousehold: true},
			want: 0.0,
		},
		{
			name: "members with identical ids and roles",
			a: &records.HouseholdMembership{
				InHousehold: true,
				HouseholdID: records.Text("household_id", "H-100"),
				Head:        true,
			},
			b: &records.HouseholdMembership{
				InHousehold: true,
				HouseholdID: records.Text("household_id", "H-100"),
				Head:        true,
			},
			want: 1.0,
		},
		{
			name: "members with identical ids, different roles",
			a: &records.HouseholdMembership{
				InHousehold: true,
				HouseholdID: records.Text("household_id", "H-100"),
				Head:        true,
			},
			b: &records.HouseholdMembership{
				InHousehold: true,
				HouseholdID: records.Text("household_id", "H-100"),
			},
			want: 0.7,
		},
		{
			name: "members without ids use household names",
			a: &records.HouseholdMembership{
				InHousehold:   true,
				HouseholdName: records.Text("household_name", "Smith Household"),
			},
			b: &records.HouseholdMembership{
				InHousehold:   true,
				HouseholdName: records.Text("household_name", "Smith Household"),
			},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Household(tt.a, tt.b))
		})
	}
}

func TestHouseholdModeByLeftOperand(t *testing.T) {
	s := newTestScorer(t)

	withID := &records.HouseholdMembership{
		InHousehold: true,
		HouseholdID: records.Text("household_id", "H-100"),
		Head:        true,
	}
	nameOnly := &records.HouseholdMembership{
		InHousehold:   true,
		HouseholdName: records.Text("household_name", "Smith Household"),
		Head:          true,
	}

	// Left has an id, right does not: id mode compares against a missing
	// id, leaving only the head flags.
	assert.Equal(t, similarity.Round(0.3), s.Household(withID, nameOnly))
	// Swapped, the name mode applies instead.
	assert.Equal(t, similarity.Round(0.3), s.Household(nameOnly, withID))
}
