package beefdesk

import (
	"math"
	"math/rand"
	"testing"
)

func TestProjectDeterministic(t *testing.T) {
	catalog := DemoScenarios()
	a := Project(49.0, catalog, nil)
	b := Project(49.0, catalog, nil)

	if len(a) != 91 {
		t.Fatalf("points = %d, want 91 (day 0 through 90)", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("day %d differs between two noise-free runs", i)
		}
	}
}

func TestProjectDayZero(t *testing.T) {
	p := Project(49.0, DemoScenarios(), nil)[0]
	if p.Baseline != 49.0 {
		t.Errorf("Baseline = %v, want the current price", p.Baseline)
	}
	if p.Scenario != 49.0 {
		t.Errorf("Scenario = %v, want the current price, ramp starts at zero", p.Scenario)
	}
}

func TestProjectRamp(t *testing.T) {
	// only EVT-04 is active by default, a +4 percent shock
	catalog := DemoScenarios()
	points := Project(100.0, catalog, nil)

	half := points[7]
	if ratio := half.Scenario / half.Baseline; math.Abs(ratio-(1+0.04*7.0/15)) > 1e-12 {
		t.Errorf("day 7 shock ratio = %v", ratio)
	}
	for _, p := range points[15:] {
		if ratio := p.Scenario / p.Baseline; math.Abs(ratio-1.04) > 1e-12 {
			t.Fatalf("day %d shock ratio = %v, want the full 1.04", p.Day, ratio)
		}
	}
}

func TestProjectBand(t *testing.T) {
	for _, p := range Project(49.0, DemoScenarios(), nil) {
		if math.Abs(p.Upper-p.Scenario*1.1) > 1e-12 || math.Abs(p.Lower-p.Scenario*0.9) > 1e-12 {
			t.Fatalf("day %d band [%v, %v] around %v", p.Day, p.Lower, p.Upper, p.Scenario)
		}
	}
}

func TestProjectSeededNoise(t *testing.T) {
	catalog := DemoScenarios()
	a := Project(49.0, catalog, rand.New(rand.NewSource(7)))
	b := Project(49.0, catalog, rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("day %d differs between identically seeded runs", i)
		}
	}
	// noise perturbs the scenario only, the band stays on the clean path
	c := Project(49.0, catalog, nil)
	for i := range a {
		if a[i].Baseline != c[i].Baseline || a[i].Upper != c[i].Upper {
			t.Fatalf("day %d baseline or band moved with the noise", i)
		}
	}
}

func TestCatalogToggle(t *testing.T) {
	catalog := DemoScenarios()
	if got := catalog.PriceImpact(); got != 4.0 {
		t.Fatalf("default PriceImpact = %v, want 4.0", got)
	}
	if !catalog.Toggle("EVT-01") {
		t.Fatal("Toggle(EVT-01) = false")
	}
	if got := catalog.PriceImpact(); got != 16.5 {
		t.Errorf("PriceImpact = %v, want 16.5 with the safeguard on", got)
	}
	if catalog.Toggle("EVT-99") {
		t.Error("Toggle on an unknown id reports true")
	}
	if len(catalog.Active()) != 2 {
		t.Errorf("Active = %d events, want 2", len(catalog.Active()))
	}
}

func TestStressPL(t *testing.T) {
	positions := DemoPositions()
	catalog := DemoScenarios()
	catalog.Toggle("EVT-02") // -15, net impact -11

	want := positions.MarketValue().InexactFloat64() * -0.11
	got := StressPL(positions, catalog).InexactFloat64()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("StressPL = %v, want %v", got, want)
	}
	if got >= 0 {
		t.Errorf("StressPL = %v, want a loss under a net negative shock", got)
	}
}
