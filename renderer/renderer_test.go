package renderer

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mooket/beefdesk"
)

// cell matches a table cell holding exactly v, whatever padding the table
// writer applies.
func cell(v string) *regexp.Regexp {
	return regexp.MustCompile(`\|\s*` + regexp.QuoteMeta(v) + `\s*\|`)
}

func TestInventoryMarkdown(t *testing.T) {
	out := InventoryMarkdown(beefdesk.DemoDesk().Valuation())

	if !strings.Contains(out, "# Inventory Valuation on 2025-12-09") {
		t.Error("missing title")
	}
	if !strings.Contains(out, "## Container AMCU9399445 (spot)") {
		t.Error("missing financed container section")
	}
	if !strings.Contains(out, "## Container CNTR-SPOT-888 (pending-entry)") {
		t.Error("missing spot container section")
	}
	if !strings.Contains(out, "payment floor") {
		t.Error("floor not announced on the financed container")
	}
	if !strings.Contains(out, "countdown 120 days") {
		t.Error("countdown not announced")
	}

	t.Run("unpriced lines show the marker", func(t *testing.T) {
		// the per-cut lines carry no price of their own
		for _, line := range strings.Split(out, "\n") {
			if !strings.Contains(line, "INV-1001") {
				continue
			}
			if !cell("-").MatchString(line) {
				t.Errorf("line %q shows figures for an unpriced cut", line)
			}
			return
		}
		t.Fatal("INV-1001 not rendered")
	})

	t.Run("summary line carries the money", func(t *testing.T) {
		for _, line := range strings.Split(out, "\n") {
			if !strings.Contains(line, "INV-1008-WHOLE") {
				continue
			}
			if !strings.Contains(line, "49.41") {
				t.Errorf("line %q misses the landed cost", line)
			}
			if !strings.Contains(line, "49.00") {
				t.Errorf("line %q misses the quote", line)
			}
			return
		}
		t.Fatal("whole-container record not rendered")
	})
}

func TestSummaryMarkdown(t *testing.T) {
	v := beefdesk.DemoDesk().Valuation()
	out := SummaryMarkdown(v, beefdesk.DemoIndex(), beefdesk.DemoPositions(), beefdesk.DemoFactors())

	for _, want := range []string{
		"# Desk Summary on 2025-12-09",
		"## Import Price Index",
		"49.075",
		"## Positions",
		"POS-001",
		"## Key Factors",
		"## Inventory Bottom Line",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary misses %q", want)
		}
	}
}

func TestSummaryMarkdownEmptySections(t *testing.T) {
	v := beefdesk.DemoDesk().Valuation()
	empty, _ := beefdesk.ParseIndexSeries("")
	out := SummaryMarkdown(v, empty, nil, nil)

	for _, absent := range []string{"## Import Price Index", "## Positions", "## Key Factors"} {
		if strings.Contains(out, absent) {
			t.Errorf("summary renders %q with no data behind it", absent)
		}
	}
	if !strings.Contains(out, "## Inventory Bottom Line") {
		t.Error("bottom line must always render")
	}
}

func TestSimulationMarkdown(t *testing.T) {
	catalog := beefdesk.DemoScenarios()
	points := beefdesk.Project(49.0, catalog, nil)
	stress := beefdesk.StressPL(beefdesk.DemoPositions(), catalog)

	out := SimulationMarkdown(catalog, points, stress)

	if !strings.Contains(out, "# Scenario Simulation") {
		t.Error("missing title")
	}
	if !strings.Contains(out, "EVT-04") || !cell("ON").MatchString(out) {
		t.Error("active event not shown")
	}
	if !strings.Contains(out, "aggregate shock +4.0%") {
		t.Error("aggregate shock not announced")
	}
	// weekly checkpoints plus the final day
	for _, day := range []string{"0", "7", "84", "90"} {
		if !cell(day).MatchString(out) {
			t.Errorf("projection misses checkpoint day %s", day)
		}
	}
	if !strings.Contains(out, "## Stress Test") {
		t.Error("missing stress section")
	}
}
