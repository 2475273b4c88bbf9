// Package convert translates between the external YAML record schema and the
// in-memory data model. Ingestion proper (source file formats, the raw-name
// rule cascade) lives outside this repo; what arrives here is already
// structured and only needs mapping onto Terms and composites.
package convert

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/openrolls/ownermatch/pkg/errors"
	"github.com/openrolls/ownermatch/pkg/records"
)

// File is the top-level YAML input document.
type File struct {
	Records []Record `yaml:"records"`
}

// Record is one externally-parsed entity record.
type Record struct {
	ExternalID string    `yaml:"external_id"`
	Source     string    `yaml:"source"`
	Location   string    `yaml:"location,omitempty"`
	Name       *NameRec  `yaml:"name,omitempty"`
	Address    *AddrRec  `yaml:"address,omitempty"`
	Secondary  []AddrRec `yaml:"secondary_addresses,omitempty"`
	Email      string    `yaml:"email,omitempty"`
	Phone      string    `yaml:"phone,omitempty"`
}

// NameRec is the structured-name block. Full is used alone when the external
// classifier could not decompose the raw string.
type NameRec struct {
	First string `yaml:"first,omitempty"`
	Last  string `yaml:"last,omitempty"`
	Other string `yaml:"other,omitempty"`
	Full  string `yaml:"full,omitempty"`
}

// AddrRec is one address block.
type AddrRec struct {
	StreetNumber string `yaml:"street_number,omitempty"`
	StreetName   string `yaml:"street_name,omitempty"`
	City         string `yaml:"city,omitempty"`
	State        string `yaml:"state,omitempty"`
	Zip          string `yaml:"zip,omitempty"`
	UnitType     string `yaml:"unit_type,omitempty"`
	UnitNumber   string `yaml:"unit_number,omitempty"`
}

// LoadFile reads and parses a YAML record file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("records", "reading record file", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.NewParseError(path, err.Error())
	}
	return &f, nil
}

// Entity maps a Record onto the in-memory model.
func (r *Record) Entity() *records.Entity {
	src := records.Source(r.Source)

	e := &records.Entity{ExternalID: r.ExternalID}

	if r.Name != nil {
		if r.Name.First != "" || r.Name.Last != "" || r.Name.Other != "" {
			e.Name = records.NewName(r.Name.First, r.Name.Last, r.Name.Other, src)
		} else if r.Name.Full != "" {
			e.Name = records.NewFullName(r.Name.Full, src)
		}
	}

	contact := &records.ContactInfo{}
	if r.Address != nil {
		contact.Primary = r.Address.Address(src)
	}
	for i := range r.Secondary {
		contact.Secondary = append(contact.Secondary, r.Secondary[i].Address(src))
	}
	if r.Email != "" {
		contact.Email = records.Text("email", r.Email, src)
	}
	if r.Phone != "" {
		contact.Phone = records.Text("phone", r.Phone, src)
	}
	if contact.Primary != nil || len(contact.Secondary) > 0 || contact.Email != nil || contact.Phone != nil {
		e.Contact = contact
	}

	return e
}

// Address maps an AddrRec onto an Address composite, attributing every Term
// to the record's source.
func (a *AddrRec) Address(src records.Source) *records.Address {
	addr := &records.Address{}
	set := func(field, value string) *records.Term {
		if value == "" {
			return nil
		}
		return records.Text(field, value, src)
	}
	addr.StreetNumber = set("street_number", a.StreetNumber)
	addr.StreetName = set("street_name", a.StreetName)
	addr.City = set("city", a.City)
	addr.State = set("state", a.State)
	addr.Zip = set("zip", a.Zip)
	addr.UnitType = set("unit_type", a.UnitType)
	addr.UnitNumber = set("unit_number", a.UnitNumber)
	return addr
}
