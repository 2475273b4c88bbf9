// Package score implements the weighted similarity-scoring framework: a
// generic dispatcher over composite records plus the category-specific
// comparators for addresses, contact bundles, names, entities, and household
// metadata. Every comparator returns a similarity in [0,1] where 1.0 means
// identical, clamped and rounded to fixed precision for determinism.
//
// All comparators are pure functions over immutable inputs and safe to call
// concurrently from batch sweeps.
package score

import (
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/openrolls/ownermatch/pkg/errors"
	"github.com/openrolls/ownermatch/pkg/logging"
	"github.com/openrolls/ownermatch/pkg/records"
)

// Scorer scores pairs of records. Use New to construct one; the zero value is
// not usable.
type Scorer interface {
	// Compare scores two composites of the same kind through their bound
	// calculator, or generically field-by-field when none is bound.
	// Comparing different kinds is a programmer error and panics.
	Compare(a, b records.Composite) float64

	// Address scores two addresses (PO-box, island-local, or general mode).
	Address(a, b *records.Address) float64

	// Contact scores two contact bundles by best-match address pairing.
	Contact(a, b *records.ContactInfo) float64

	// Name scores two names over their structured parts, falling back to
	// the full-text forms.
	Name(a, b *records.Name) float64

	// Entity scores two owner records, boosting the name component when it
	// matches near-exactly.
	Entity(a, b *records.Entity) float64

	// Household scores two household-membership blocks; the mode is chosen
	// by the left operand alone.
	Household(a, b *records.HouseholdMembership) float64
}

// Locality configures the island-local address mode: the municipality's own
// postal code plus the street names and city spellings that identify a local
// address when the code is absent.
type Locality struct {
	PostalCode  string   `yaml:"postal_code"`
	Streets     []string `yaml:"streets"`
	CityAliases []string `yaml:"city_aliases"`
}

// LoadLocality reads a Locality from a YAML file.
func LoadLocality(path string) (*Locality, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("locality", "reading locality file", err)
	}
	var loc Locality
	if err := yaml.Unmarshal(data, &loc); err != nil {
		return nil, errors.NewConfigError("locality", "parsing locality file", err)
	}
	return &loc, nil
}

// scorer is the default Scorer implementation.
type scorer struct {
	locality Locality
	streets  map[string]bool
	cities   map[string]bool
	log      *zerolog.Logger
}

// Option configures a Scorer.
type Option func(*scorer) error

// New creates a Scorer with options.
func New(opts ...Option) (Scorer, error) {
	s := &scorer{
		streets: make(map[string]bool),
		cities:  make(map[string]bool),
		log:     logging.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// WithLocality sets the island-local address configuration.
func WithLocality(loc Locality) Option {
	return func(s *scorer) error {
		s.locality = loc
		s.streets = make(map[string]bool, len(loc.Streets))
		for _, st := range loc.Streets {
			s.streets[strings.ToLower(strings.TrimSpace(st))] = true
		}
		s.cities = make(map[string]bool, len(loc.CityAliases))
		for _, c := range loc.CityAliases {
			s.cities[strings.ToLower(strings.TrimSpace(c))] = true
		}
		return nil
	}
}

// WithLogger sets the logger used for calculator-binding warnings.
func WithLogger(log *zerolog.Logger) Option {
	return func(s *scorer) error {
		if log == nil {
			return errors.NewConfigError("scorer", "logger cannot be nil", nil)
		}
		s.log = log
		return nil
	}
}
