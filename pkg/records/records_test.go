package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b *Term
		want float64
	}{
		{name: "both nil", a: nil, b: nil, want: 1.0},
		{name: "one nil", a: Text("f", "x"), b: nil, want: 0.0},
		{name: "equal strings", a: Text("f", "smith"), b: Text("f", "smith"), want: 1.0},
		{name: "equal ints", a: NewTerm("f", 42), b: NewTerm("f", 42), want: 1.0},
		{name: "unequal ints", a: NewTerm("f", 42), b: NewTerm("f", 43), want: 0.0},
		{name: "int vs string", a: NewTerm("f", 42), b: Text("f", "42"), want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Similarity(tt.b))
		})
	}
}

func TestTermAttribute(t *testing.T) {
	orig := Text("last_name", "smith", SourceDonor)

	updated := orig.Attribute(SourceAppraisal)

	assert.Equal(t, []Source{SourceDonor}, orig.Sources(), "original must not change")
	assert.Equal(t, []Source{SourceDonor, SourceAppraisal}, updated.Sources())
	assert.Same(t, orig, orig.Attribute(SourceDonor), "existing source returns receiver")
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantBase   int
		wantSuffix byte
		wantNil    bool
		wantErr    bool
	}{
		{name: "plain base", raw: "4120", wantBase: 4120},
		{name: "suffixed", raw: "4120A", wantBase: 4120, wantSuffix: 'A'},
		{name: "lowercase suffix", raw: "4120c", wantBase: 4120, wantSuffix: 'C'},
		{name: "empty is absent", raw: "", wantNil: true},
		{name: "whitespace is absent", raw: "   ", wantNil: true},
		{name: "letters only", raw: "ABC", wantErr: true},
		{name: "two suffix letters", raw: "4120AB", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ParseLocation(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, loc)
				return
			}
			require.NotNil(t, loc)
			assert.Equal(t, tt.wantBase, loc.Base())
			assert.Equal(t, tt.wantSuffix, loc.Suffix())
		})
	}
}

func TestLocationCollidesWith(t *testing.T) {
	a := NewLocation(100, 0)
	b := NewLocation(100, 'A')
	c := NewLocation(101, 0)

	assert.True(t, a.CollidesWith(b))
	assert.False(t, a.CollidesWith(c))
	assert.False(t, a.CollidesWith(nil))
	assert.Equal(t, "100A", b.String())
}

func TestAddressBox(t *testing.T) {
	tests := []struct {
		name    string
		addr    *Address
		wantNum string
		wantOK  bool
	}{
		{
			name: "po box with separate number",
			addr: &Address{
				StreetNumber: Text("street_number", "214"),
				StreetName:   Text("street_name", "PO Box"),
			},
			wantNum: "214",
			wantOK:  true,
		},
		{
			name:    "number folded into name",
			addr:    &Address{StreetName: Text("street_name", "P.O. Box 214")},
			wantNum: "214",
			wantOK:  true,
		},
		{
			name:    "bare box",
			addr:    &Address{StreetName: Text("street_name", "Box 9")},
			wantNum: "9",
			wantOK:  true,
		},
		{
			name:   "street is not a box",
			addr:   &Address{StreetName: Text("street_name", "Boxwood Lane")},
			wantOK: false,
		},
		{
			name:   "no street name",
			addr:   &Address{City: Text("city", "Springfield")},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, ok := tt.addr.Box()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantNum, num)
			}
		})
	}
}

func TestAddressSources(t *testing.T) {
	addr := &Address{
		StreetNumber: Text("street_number", "12", SourceDonor),
		City:         Text("city", "Springfield", SourceAppraisal),
	}

	assert.ElementsMatch(t, []Source{SourceDonor, SourceAppraisal}, addr.Sources())
	assert.True(t, addr.FromSource(SourceAppraisal))
	assert.False(t, (&Address{}).FromSource(SourceAppraisal))
}

func TestNameDerivedFull(t *testing.T) {
	n := NewName("John", "Smith", "R", SourceDonor)

	require.NotNil(t, n.Full)
	assert.Equal(t, "John R Smith", n.Full.String())
	assert.True(t, n.Structured())
	assert.False(t, NewFullName("Smith Family Trust").Structured())
}

func TestEntityAbsorb(t *testing.T) {
	a := &Entity{ExternalID: "D-1", Name: NewName("John", "Smith", "")}
	b := &Entity{ExternalID: "P-7", Name: NewName("J", "Smith", "")}
	c := &Entity{ExternalID: "P-9", Name: NewName("John", "Smith", "")}

	a.Absorb(b)
	a.Absorb(c)

	require.Len(t, a.Subdivisions, 2)
	assert.Equal(t, "P-7", a.Subdivisions["P-7"].ExternalID)
	assert.Equal(t, "P-9", a.Subdivisions["P-9"].ExternalID)
}

func TestEntityAbsorbChain(t *testing.T) {
	// Subdivisions collected by an absorbed record move to the survivor.
	mid := &Entity{ExternalID: "M-1"}
	mid.Absorb(&Entity{ExternalID: "X-1"})

	survivor := &Entity{ExternalID: "S-1"}
	survivor.Absorb(mid)

	require.Len(t, survivor.Subdivisions, 2)
	assert.Contains(t, survivor.Subdivisions, "M-1")
	assert.Contains(t, survivor.Subdivisions, "X-1")
	assert.Empty(t, survivor.Subdivisions["M-1"].Subdivisions, "snapshot keeps no nested bag")
}

func TestEntitySnapshotIsolation(t *testing.T) {
	e := &Entity{
		ExternalID: "D-1",
		Contact: &ContactInfo{
			Primary:   &Address{City: Text("city", "Springfield")},
			Secondary: []*Address{{City: Text("city", "Shelbyville")}},
		},
	}

	snap := e.Snapshot()
	e.Contact.Secondary = append(e.Contact.Secondary, &Address{})

	assert.Len(t, snap.Contact.Secondary, 1, "snapshot unaffected by later mutation")
}

func TestCompositeFields(t *testing.T) {
	e := &Entity{Name: NewName("John", "Smith", "")}

	var names []string
	for _, f := range e.Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"name", "contact", "other_info", "legacy_info"}, names)

	// Typed nil composites must read as absent.
	var nilContact *ContactInfo
	f := Field{Name: "contact", Composite: nilContact}
	assert.False(t, f.Present())
}

func TestDetailsFieldsDeterministic(t *testing.T) {
	d := NewDetails("assessment").
		Set("zone", Text("zone", "R1")).
		Set("acreage", Text("acreage", "0.5"))

	fields := d.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "acreage", fields[0].Name)
	assert.Equal(t, "zone", fields[1].Name)
}
