package beefdesk

import (
	"fmt"
	"math"
)

// ParameterSet bundles the financing and landing-cost assumptions applied to
// a container. Rates and factors stay float64; money amounts derived from
// them are built as decimals at calculation time.
type ParameterSet struct {
	ID   int
	Name string

	AnnualRate       float64 // annual interest rate, e.g. 0.065
	OccupancyRatio   float64 // share of capital actually financed
	StoragePerTonDay float64 // CNY per ton per day
	CustomsFactor    float64 // multiplier, e.g. 1.12
	VATFactor        float64 // multiplier, e.g. 1.09
	MiscPerKg        float64 // CNY per kg of landing incidentals
}

// DailyRate converts the annual rate to its compound daily equivalent, so
// that 365 daily compoundings reproduce one year of interest.
func (p ParameterSet) DailyRate() float64 {
	return math.Pow(1+p.AnnualRate, 1.0/365) - 1
}

// ParameterSets is an ordered collection of parameter sets. Order matters:
// the first set is the fallback when a lot references an unknown one.
type ParameterSets struct {
	sets  []ParameterSet
	index map[int]int
}

// NewParameterSets builds a collection, keeping the given order. A duplicate
// id replaces the earlier set in place.
func NewParameterSets(sets ...ParameterSet) *ParameterSets {
	ps := &ParameterSets{index: make(map[int]int, len(sets))}
	for _, s := range sets {
		ps.Put(s)
	}
	return ps
}

// Put inserts a set, replacing any existing set with the same id in place.
func (ps *ParameterSets) Put(s ParameterSet) {
	if i, ok := ps.index[s.ID]; ok {
		ps.sets[i] = s
		return
	}
	ps.index[s.ID] = len(ps.sets)
	ps.sets = append(ps.sets, s)
}

// Replace swaps an existing set for a new one with the same id. Unlike Put
// it refuses unknown ids, so a typo cannot silently create a set.
func (ps *ParameterSets) Replace(s ParameterSet) error {
	if _, ok := ps.index[s.ID]; !ok {
		return fmt.Errorf("parameter set %d: %w", s.ID, ErrUnknownParameterSet)
	}
	ps.Put(s)
	return nil
}

// Get returns the set with the given id.
func (ps *ParameterSets) Get(id int) (ParameterSet, bool) {
	i, ok := ps.index[id]
	if !ok {
		return ParameterSet{}, false
	}
	return ps.sets[i], true
}

// Resolve returns the set a lot should be costed with. An unknown id falls
// back to the first set so a stale reference still yields a valuation.
func (ps *ParameterSets) Resolve(id int) ParameterSet {
	if s, ok := ps.Get(id); ok {
		return s
	}
	if len(ps.sets) > 0 {
		return ps.sets[0]
	}
	return ParameterSet{}
}

// All returns the sets in insertion order. The slice is a copy.
func (ps *ParameterSets) All() []ParameterSet {
	out := make([]ParameterSet, len(ps.sets))
	copy(out, ps.sets)
	return out
}

// Len returns the number of sets.
func (ps *ParameterSets) Len() int { return len(ps.sets) }

// Clone returns an independent copy of the collection.
func (ps *ParameterSets) Clone() *ParameterSets {
	return NewParameterSets(ps.sets...)
}
