// Package similarity provides the vowel-tolerant string similarity primitive
// used by every comparator in ownermatch. It computes a weighted edit distance
// where vowel-for-vowel substitutions are cheap, consonant-for-consonant
// substitutions cost full price, and mixed substitutions sit in between, then
// normalizes the distance into a [0,1] similarity score.
//
// Example usage:
//
//	similarity.Score("smith", "smyth")  // high: vowel substitution
//	similarity.Score("smith", "smkth")  // lower: consonant substitution
//
// For tight loops (batch sweeps compare hundreds of thousands of pairs per
// second), allocate a Meter once per goroutine and reuse it; Score uses a
// shared pool internally.
package similarity

import (
	"math"
	"sync"

	"golang.org/x/text/cases"
)

// Substitution costs for the weighted edit distance. A vowel swapped for
// another vowel barely counts; consonants carry full weight.
const (
	costVowelVowel         = 0.158
	costConsonantConsonant = 1.0
	costVowelConsonant     = 0.632
	costInsertDelete       = 1.0
)

// precisionDigits is the fixed rounding applied to every score so results are
// deterministic across runs and platforms.
const precisionDigits = 10

var folder = cases.Fold()

var meterPool = sync.Pool{
	New: func() any { return NewMeter() },
}

// Score returns the similarity of a and b in [0,1], where 1.0 means
// identical (after case folding) and 0.0 means nothing in common.
// Two empty strings are identical; one empty string scores 0 against
// any non-empty string.
func Score(a, b string) float64 {
	m := meterPool.Get().(*Meter)
	s := m.Score(a, b)
	meterPool.Put(m)
	return s
}

// Meter computes similarity scores while reusing its internal row buffers
// between calls. A Meter is not safe for concurrent use; give each goroutine
// its own.
type Meter struct {
	prev []float64
	curr []float64
}

// NewMeter returns a Meter with preallocated row buffers sized for typical
// name and street strings.
func NewMeter() *Meter {
	return &Meter{
		prev: make([]float64, 0, 64),
		curr: make([]float64, 0, 64),
	}
}

// Score returns the similarity of a and b in [0,1]. See the package-level
// Score for the boundary conventions.
func (m *Meter) Score(a, b string) float64 {
	a = folder.String(a)
	b = folder.String(b)

	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	dist := m.distance(a, b)
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}

	return Round(1.0 - dist/float64(longest))
}

// distance computes the weighted Levenshtein distance over raw bytes.
// Inputs are already case-folded; the vowel classification is ASCII-only,
// which matches the registries this was built for.
func (m *Meter) distance(a, b string) float64 {
	m.prev = grow(m.prev, len(b)+1)
	m.curr = grow(m.curr, len(b)+1)

	for j := 0; j <= len(b); j++ {
		m.prev[j] = float64(j) * costInsertDelete
	}

	for i := 1; i <= len(a); i++ {
		m.curr[0] = float64(i) * costInsertDelete
		for j := 1; j <= len(b); j++ {
			sub := m.prev[j-1] + substitutionCost(a[i-1], b[j-1])
			ins := m.curr[j-1] + costInsertDelete
			del := m.prev[j] + costInsertDelete

			best := sub
			if ins < best {
				best = ins
			}
			if del < best {
				best = del
			}
			m.curr[j] = best
		}
		m.prev, m.curr = m.curr, m.prev
	}

	return m.prev[len(b)]
}

// substitutionCost returns the cost of replacing x with y.
func substitutionCost(x, y byte) float64 {
	if x == y {
		return 0
	}
	xv, yv := isVowel(x), isVowel(y)
	switch {
	case xv && yv:
		return costVowelVowel
	case !xv && !yv:
		return costConsonantConsonant
	default:
		return costVowelConsonant
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// grow returns buf resized to n, reallocating only when capacity is short.
func grow(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}

// Round clamps s into [0,1] and rounds it to the fixed precision shared by
// all ownermatch scores.
func Round(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	shift := math.Pow10(precisionDigits)
	return math.Round(s*shift) / shift
}
