package beefdesk

import (
	"math"
	"testing"
)

// TestDailyRateCompounds checks that 365 daily compoundings reproduce the
// annual rate, across the whole plausible range.
func TestDailyRateCompounds(t *testing.T) {
	for _, annual := range []float64{0, 0.001, 0.055, 0.065, 0.12, 0.5, 1.0} {
		p := ParameterSet{AnnualRate: annual}
		daily := p.DailyRate()
		if daily < 0 {
			t.Errorf("DailyRate(%v) = %v, want non-negative", annual, daily)
		}
		compounded := math.Pow(1+daily, 365) - 1
		if math.Abs(compounded-annual) > 1e-9 {
			t.Errorf("compounding DailyRate(%v) yields %v", annual, compounded)
		}
	}
}

func TestParameterSetsResolve(t *testing.T) {
	ps := NewParameterSets(
		ParameterSet{ID: 1, Name: "standard", AnnualRate: 0.065},
		ParameterSet{ID: 2, Name: "discount", AnnualRate: 0.055},
	)

	t.Run("known id", func(t *testing.T) {
		if got := ps.Resolve(2); got.Name != "discount" {
			t.Errorf("Resolve(2) = %q, want discount", got.Name)
		}
	})
	t.Run("unknown id falls back to first", func(t *testing.T) {
		if got := ps.Resolve(99); got.Name != "standard" {
			t.Errorf("Resolve(99) = %q, want the first set", got.Name)
		}
	})
	t.Run("empty collection resolves to zero set", func(t *testing.T) {
		empty := NewParameterSets()
		if got := empty.Resolve(1); got != (ParameterSet{}) {
			t.Errorf("Resolve on empty = %+v, want zero", got)
		}
	})
}

func TestParameterSetsReplace(t *testing.T) {
	ps := NewParameterSets(
		ParameterSet{ID: 1, Name: "standard", AnnualRate: 0.065},
		ParameterSet{ID: 2, Name: "discount", AnnualRate: 0.055},
	)

	if err := ps.Replace(ParameterSet{ID: 1, Name: "standard", AnnualRate: 0.07}); err != nil {
		t.Fatal(err)
	}
	if got := ps.Resolve(1).AnnualRate; got != 0.07 {
		t.Errorf("after Replace, rate = %v, want 0.07", got)
	}
	// replacing keeps the original order
	if all := ps.All(); all[0].ID != 1 || all[1].ID != 2 {
		t.Errorf("order changed after Replace: %v, %v", all[0].ID, all[1].ID)
	}

	if err := ps.Replace(ParameterSet{ID: 99}); err == nil {
		t.Error("Replace of an unknown set did not fail")
	}
}

func TestParameterSetsCloneIsIndependent(t *testing.T) {
	ps := NewParameterSets(ParameterSet{ID: 1, AnnualRate: 0.065})
	clone := ps.Clone()
	clone.Put(ParameterSet{ID: 1, AnnualRate: 0.01})
	if got := ps.Resolve(1).AnnualRate; got != 0.065 {
		t.Errorf("mutating the clone changed the original: rate = %v", got)
	}
}
