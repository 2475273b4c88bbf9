package registry

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openrolls/ownermatch/pkg/errors"
	"github.com/openrolls/ownermatch/pkg/logging"
	"github.com/openrolls/ownermatch/pkg/records"
	"github.com/openrolls/ownermatch/pkg/score"
)

// DefaultSameOwnerThreshold is the score at or above which two records
// colliding on one base are judged to be the same owner. Calibrated so
// identical-name/address pairs clear it and wholly disjoint ones do not;
// tune per dataset through WithThreshold.
const DefaultSameOwnerThreshold = 0.75

// Outcome reports what Resolve did with a record.
type Outcome string

// Resolution outcomes.
const (
	// OutcomeNoIdentifier means the record carried no location identifier;
	// nothing was registered. This is a normal result, not an error.
	OutcomeNoIdentifier Outcome = "no_identifier"

	// OutcomeRegistered means the base was unoccupied and the record now
	// holds its unsuffixed row.
	OutcomeRegistered Outcome = "registered"

	// OutcomeMerged means the record was judged to be an owner already at
	// the base and was absorbed into that owner's subdivision list.
	OutcomeMerged Outcome = "merged"

	// OutcomeCreatedWithSuffix means the record is a distinct owner at an
	// occupied base and was registered under a fresh suffix letter.
	OutcomeCreatedWithSuffix Outcome = "created_with_suffix"
)

// Resolution describes the result of resolving one record.
type Resolution struct {
	Outcome  Outcome
	Location *records.LocationIdentifier // identifier registered under, nil for OutcomeNoIdentifier
	MergedID string                      // surviving entity's external id for OutcomeMerged
	Score    float64                     // best score against the base's occupants, when one was computed
}

// Resolver decides merge-vs-fork for records arriving at a shared base.
// Calls to Resolve must be serialized by the caller.
type Resolver struct {
	registry  *Registry
	scorer    score.Scorer
	threshold float64
	log       *zerolog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver) error

// NewResolver creates a Resolver over the given registry and scorer.
func NewResolver(reg *Registry, scorer score.Scorer, opts ...ResolverOption) (*Resolver, error) {
	if reg == nil {
		return nil, errors.NewConfigError("resolver", "registry cannot be nil", nil)
	}
	if scorer == nil {
		return nil, errors.NewConfigError("resolver", "scorer cannot be nil", nil)
	}

	r := &Resolver{
		registry:  reg,
		scorer:    scorer,
		threshold: DefaultSameOwnerThreshold,
		log:       logging.Default(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// WithThreshold overrides the same-owner threshold.
func WithThreshold(threshold float64) ResolverOption {
	return func(r *Resolver) error {
		if threshold <= 0 || threshold > 1 {
			return errors.NewConfigError("resolver", "threshold must be in (0,1]", nil)
		}
		r.threshold = threshold
		return nil
	}
}

// WithResolverLogger sets the resolver's logger.
func WithResolverLogger(log *zerolog.Logger) ResolverOption {
	return func(r *Resolver) error {
		if log == nil {
			return errors.NewConfigError("resolver", "logger cannot be nil", nil)
		}
		r.log = log
		return nil
	}
}

// Resolve registers e at the base of rawID, merging it into an existing
// occupant when the entity score clears the same-owner threshold and forking
// a fresh suffix otherwise. A suffix in rawID is ignored for placement; the
// registry alone owns suffix assignment.
func (r *Resolver) Resolve(e *records.Entity, rawID string) (*Resolution, error) {
	if e == nil {
		return nil, errors.NewValidationError("entity", nil, "entity cannot be nil")
	}

	loc, err := records.ParseLocation(rawID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return &Resolution{Outcome: OutcomeNoIdentifier}, nil
	}

	base := loc.Base()
	rows := r.registry.Rows(base)

	if len(rows) == 0 {
		row := r.registry.add(base, 0, e)
		r.log.Debug().
			Str("identifier", row.Identifier(base).String()).
			Str("external_id", e.ExternalID).
			Msg("registered")
		return &Resolution{Outcome: OutcomeRegistered, Location: e.Location}, nil
	}

	best, bestRow := -1.0, (*Row)(nil)
	for _, row := range rows {
		if sim := r.scorer.Entity(e, row.Entity); sim > best {
			best = sim
			bestRow = row
		}
	}

	if best >= r.threshold {
		bestRow.Entity.Absorb(e)
		r.log.Info().
			Str("identifier", bestRow.Identifier(base).String()).
			Str("external_id", e.ExternalID).
			Str("merged_into", bestRow.Entity.ExternalID).
			Float64("score", best).
			Msg("merged colliding record")
		return &Resolution{
			Outcome:  OutcomeMerged,
			Location: bestRow.Identifier(base),
			MergedID: bestRow.Entity.ExternalID,
			Score:    best,
		}, nil
	}

	suffix, ok := r.registry.nextSuffix(base)
	if !ok {
		return nil, fmt.Errorf("base %d: %w", base, errors.ErrSuffixesExhausted)
	}
	row := r.registry.add(base, suffix, e)
	r.log.Info().
		Str("identifier", row.Identifier(base).String()).
		Str("external_id", e.ExternalID).
		Float64("score", best).
		Msg("distinct owner at occupied base, created suffixed identifier")
	return &Resolution{
		Outcome:  OutcomeCreatedWithSuffix,
		Location: e.Location,
		Score:    best,
	}, nil
}
