package score

import (
	"github.com/openrolls/ownermatch/pkg/records"
	"github.com/openrolls/ownermatch/pkg/similarity"
)

// Name scores two names over their structured parts, weighted by the left
// name's per-component weights and renormalized over the parts present on
// both sides. When either side lacks structure, the derived full-text forms
// are compared instead.
func (s *scorer) Name(a, b *records.Name) float64 {
	if a == nil && b == nil {
		return 1.0
	}
	if a == nil || b == nil {
		return 0.0
	}

	if !a.Structured() || !b.Structured() {
		return termPair(a.Full, b.Full)
	}

	w := a.Weights
	parts := []struct {
		weight float64
		x, y   *records.Term
	}{
		{w.Last, a.Last, b.Last},
		{w.First, a.First, b.First},
		{w.Other, a.Other, b.Other},
	}

	var weighted, total float64
	for _, p := range parts {
		if p.x == nil || p.y == nil {
			continue
		}
		weighted += p.weight * p.x.Similarity(p.y)
		total += p.weight
	}

	if total == 0 {
		return termPair(a.Full, b.Full)
	}
	return similarity.Round(weighted / total)
}
