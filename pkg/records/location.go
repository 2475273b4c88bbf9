package records

import (
	"strconv"
	"strings"

	"github.com/openrolls/ownermatch/pkg/errors"
)

// LocationIdentifier is a physical-location key: a numeric base plus an
// optional single-letter suffix A-Z. Two identifiers sharing a base collide
// regardless of suffix.
type LocationIdentifier struct {
	base   int
	suffix byte // 0 when unsuffixed
}

// ParseLocation parses a raw identifier such as "4120" or "4120A".
// The empty string parses to nil with no error: a missing identifier is a
// normal condition, reported by the resolver as an outcome.
func ParseLocation(raw string) (*LocationIdentifier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	digits := raw
	var suffix byte
	last := raw[len(raw)-1]
	if last >= 'A' && last <= 'Z' {
		suffix = last
		digits = raw[:len(raw)-1]
	} else if last >= 'a' && last <= 'z' {
		suffix = last - 'a' + 'A'
		digits = raw[:len(raw)-1]
	}

	base, err := strconv.Atoi(digits)
	if err != nil || base < 0 {
		return nil, errors.NewParseError(raw, "location identifier must be digits with at most one trailing letter")
	}

	return &LocationIdentifier{base: base, suffix: suffix}, nil
}

// NewLocation builds an identifier from a base and optional suffix.
// A zero suffix means unsuffixed.
func NewLocation(base int, suffix byte) *LocationIdentifier {
	return &LocationIdentifier{base: base, suffix: suffix}
}

// Base returns the numeric base with any suffix stripped.
func (l *LocationIdentifier) Base() int {
	return l.base
}

// Suffix returns the suffix letter, or 0 when unsuffixed.
func (l *LocationIdentifier) Suffix() byte {
	return l.suffix
}

// HasSuffix reports whether the identifier carries a suffix letter.
func (l *LocationIdentifier) HasSuffix() bool {
	return l.suffix != 0
}

// CollidesWith reports whether two identifiers share a base.
func (l *LocationIdentifier) CollidesWith(other *LocationIdentifier) bool {
	if l == nil || other == nil {
		return false
	}
	return l.base == other.base
}

// WithSuffix returns a copy of the identifier carrying the given suffix.
func (l *LocationIdentifier) WithSuffix(suffix byte) *LocationIdentifier {
	return &LocationIdentifier{base: l.base, suffix: suffix}
}

// String renders the identifier, e.g. "4120" or "4120A".
func (l *LocationIdentifier) String() string {
	if l == nil {
		return ""
	}
	s := strconv.Itoa(l.base)
	if l.suffix != 0 {
		s += string(l.suffix)
	}
	return s
}
