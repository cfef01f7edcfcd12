// Package sampler turns embedding counts into a discrete probability
// distribution over catalog patterns and draws patterns from it.
//
// Every pattern with positive probability owns a half-open interval
// [lower, upper) of the unit interval. Intervals are laid out from 1.0
// downward in pattern order; the last lower bound is clamped to 0 so rounding
// can never leave a gap. Draw locates u with a binary search.
package sampler

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/sirg/catalog"
)

// Sentinel errors.
var (
	// ErrZeroMass indicates counts or probabilities that sum to zero: no pattern can be drawn.
	ErrZeroMass = errors.New("sampler: distribution has zero total mass")

	// ErrBadUniform indicates a draw value outside [0,1).
	ErrBadUniform = errors.New("sampler: uniform value outside [0,1)")

	// ErrLengthMismatch indicates patterns and weights of different lengths.
	ErrLengthMismatch = errors.New("sampler: patterns and weights differ in length")

	// ErrBadWeight indicates a negative, NaN or infinite count or probability.
	ErrBadWeight = errors.New("sampler: invalid weight")
)

// massTolerance bounds how far probabilities passed to New may sum from 1.
const massTolerance = 1e-9

// Normalize converts counts to probabilities summing to 1.
func Normalize(counts []int64) ([]float64, error) {
	var total float64
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("Normalize: count[%d]=%d: %w", i, c, ErrBadWeight)
		}
		total += float64(c)
	}
	if total == 0 {
		return nil, fmt.Errorf("Normalize: %w", ErrZeroMass)
	}
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c) / total
	}

	return out, nil
}

// Interval is one pattern's slice of the unit interval.
type Interval struct {
	Index   int // position in the pattern slice given to New
	Pattern catalog.Pattern
	Lower   float64
	Upper   float64
}

// Width returns Upper - Lower.
func (iv Interval) Width() float64 { return iv.Upper - iv.Lower }

// Distribution is an immutable cumulative distribution over patterns.
type Distribution struct {
	entries []Interval // Upper strictly decreasing
	probs   []float64  // aligned with the input pattern slice
}

// New builds a distribution from per-pattern probabilities summing to 1.
func New(patterns []catalog.Pattern, probs []float64) (*Distribution, error) {
	if len(patterns) != len(probs) {
		return nil, fmt.Errorf("New: %d patterns, %d probabilities: %w", len(patterns), len(probs), ErrLengthMismatch)
	}
	var total float64
	for i, p := range probs {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("New: probability[%d]=%v: %w", i, p, ErrBadWeight)
		}
		total += p
	}
	if total == 0 {
		return nil, fmt.Errorf("New: %w", ErrZeroMass)
	}
	if math.Abs(total-1) > massTolerance {
		return nil, fmt.Errorf("New: probabilities sum to %v: %w", total, ErrBadWeight)
	}

	d := &Distribution{probs: append([]float64(nil), probs...)}
	upper := 1.0
	for i, p := range probs {
		if p <= 0 {
			continue
		}
		lower := upper - p
		if lower < 0 {
			lower = 0
		}
		d.entries = append(d.entries, Interval{Index: i, Pattern: patterns[i], Lower: lower, Upper: upper})
		upper = lower
	}
	d.entries[len(d.entries)-1].Lower = 0

	return d, nil
}

// Build normalizes counts and builds the distribution in one step.
func Build(patterns []catalog.Pattern, counts []int64) (*Distribution, error) {
	if len(patterns) != len(counts) {
		return nil, fmt.Errorf("Build: %d patterns, %d counts: %w", len(patterns), len(counts), ErrLengthMismatch)
	}
	probs, err := Normalize(counts)
	if err != nil {
		return nil, err
	}

	return New(patterns, probs)
}

// DrawIndex returns the index (into the pattern slice given to New) of the
// pattern whose interval contains u.
func (d *Distribution) DrawIndex(u float64) (int, error) {
	if !(u >= 0 && u < 1) {
		return 0, fmt.Errorf("Draw(%v): %w", u, ErrBadUniform)
	}
	i := sort.Search(len(d.entries), func(i int) bool { return d.entries[i].Lower <= u })

	return d.entries[i].Index, nil
}

// Draw returns the pattern whose interval contains u.
func (d *Distribution) Draw(u float64) (catalog.Pattern, error) {
	i, err := d.DrawIndex(u)
	if err != nil {
		return catalog.Pattern{}, err
	}

	return d.entries[d.position(i)].Pattern, nil
}

// position maps a pattern index back to its entry; i is known to have one.
func (d *Distribution) position(index int) int {
	return sort.Search(len(d.entries), func(k int) bool { return d.entries[k].Index >= index })
}

// Intervals returns a copy of the positive-probability intervals, top first.
func (d *Distribution) Intervals() []Interval {
	return append([]Interval(nil), d.entries...)
}

// Probability returns the probability of pattern index i (0 when out of range).
func (d *Distribution) Probability(i int) float64 {
	if i < 0 || i >= len(d.probs) {
		return 0
	}

	return d.probs[i]
}

// Len returns the number of patterns with positive probability.
func (d *Distribution) Len() int { return len(d.entries) }
