package beefdesk

import (
	"math"
	"testing"
)

func TestDemoIndexParses(t *testing.T) {
	s := DemoIndex()
	if s.Len() != 71 {
		t.Fatalf("Len = %d, want 71 published days", s.Len())
	}

	points := s.Points()
	for i := 1; i < len(points); i++ {
		if !points[i-1].On.Before(points[i].On) {
			t.Fatalf("series out of order at %s -> %s", points[i-1].On, points[i].On)
		}
	}
	if first := points[0]; first.On != MustParseDate("2026-07-17") || first.Price != 50.925 {
		t.Errorf("first point = %s %v", first.On, first.Price)
	}
	last, ok := s.Latest()
	if !ok {
		t.Fatal("no latest point")
	}
	if last.On != MustParseDate("2026-10-29") || last.Price != 49.075 {
		t.Errorf("latest = %s %v, want 2026-10-29 49.075", last.On, last.Price)
	}
}

func TestIndexMovingAverages(t *testing.T) {
	s, err := ParseIndexSeries("2026/1/1\t10\n2026/1/2\t20\n2026/1/3\t30\n2026/1/4\t40\n2026/1/5\t50\n2026/1/6\t60\n")
	if err != nil {
		t.Fatal(err)
	}
	points := s.Points()

	// short history averages over what exists
	if points[0].MA5 != 10 || points[0].MA20 != 10 {
		t.Errorf("day 1 MAs = %v, %v", points[0].MA5, points[0].MA20)
	}
	if points[2].MA5 != 20 {
		t.Errorf("day 3 MA5 = %v, want 20", points[2].MA5)
	}
	// full five-day window from day 5 on
	if points[4].MA5 != 30 {
		t.Errorf("day 5 MA5 = %v, want 30", points[4].MA5)
	}
	if points[5].MA5 != 40 {
		t.Errorf("day 6 MA5 = %v, want 40", points[5].MA5)
	}
	// MA20 still covers everything seen so far
	if points[5].MA20 != 35 {
		t.Errorf("day 6 MA20 = %v, want 35", points[5].MA20)
	}
}

func TestIndexImportCost(t *testing.T) {
	s, err := ParseIndexSeries("2026/1/2\t50\n2026/1/1\t40\n")
	if err != nil {
		t.Fatal(err)
	}
	points := s.Points()
	// sorted chronologically before the wobble applies, so the index i is
	// the chronological position
	if want := 40*0.92 + math.Sin(0)*0.2; math.Abs(points[0].ImportCost-want) > 1e-12 {
		t.Errorf("ImportCost[0] = %v, want %v", points[0].ImportCost, want)
	}
	if want := 50*0.92 + math.Sin(1)*0.2; math.Abs(points[1].ImportCost-want) > 1e-12 {
		t.Errorf("ImportCost[1] = %v, want %v", points[1].ImportCost, want)
	}
}

func TestIndexDelta(t *testing.T) {
	s := DemoIndex()
	abs, pct := s.Delta()
	if math.Abs(abs-(49.075-49.15)) > 1e-12 {
		t.Errorf("Delta abs = %v, want -0.075", abs)
	}
	if math.Abs(pct-(49.075-49.15)/49.15*100) > 1e-12 {
		t.Errorf("Delta pct = %v", pct)
	}

	t.Run("single day", func(t *testing.T) {
		one, err := ParseIndexSeries("2026/1/1\t10\n")
		if err != nil {
			t.Fatal(err)
		}
		if abs, pct := one.Delta(); abs != 0 || pct != 0 {
			t.Errorf("Delta = %v, %v, want zeros", abs, pct)
		}
	})
}

func TestIndexSpread(t *testing.T) {
	s := DemoIndex()
	if got := s.Spread(66.6); math.Abs(got-(66.6-49.075)) > 1e-12 {
		t.Errorf("Spread = %v, want 17.525", got)
	}
}

func TestParseIndexSeriesErrors(t *testing.T) {
	for _, raw := range []string{
		"2026/1/1 10",         // no tab
		"notadate\t10",        // bad date
		"2026/1/1\ttwelve",    // bad price
		"2026/1/1\t10\textra", // too many fields
	} {
		if _, err := ParseIndexSeries(raw); err == nil {
			t.Errorf("ParseIndexSeries(%q) accepted", raw)
		}
	}
}
