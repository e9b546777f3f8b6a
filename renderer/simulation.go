package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/mooket/beefdesk"
)

// SimulationMarkdown renders a scenario run: the event switchboard, the
// projected price path at weekly checkpoints, and the stress hit on the
// position book.
func SimulationMarkdown(catalog beefdesk.ScenarioCatalog, points []beefdesk.ProjectionPoint, stress beefdesk.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Scenario Simulation")

	rows := make([][]string, 0, len(catalog))
	for _, e := range catalog {
		state := "off"
		if e.Active {
			state = "ON"
		}
		rows = append(rows, []string{
			e.ID, e.Name, e.Category,
			fmt.Sprintf("%.0f%%", e.Probability*100),
			fmt.Sprintf("%+.1f%%", e.PriceImpact),
			fmt.Sprintf("%+.1f%%", e.DemandImpact),
			state,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Event", "Category", "Probability", "Price Impact", "Demand Impact", "Active"},
		Rows:   rows,
	})

	doc.H2(fmt.Sprintf("Projected Path (%d days, aggregate shock %+.1f%%)",
		len(points)-1, catalog.PriceImpact()))
	var path [][]string
	for _, p := range points {
		if p.Day%7 != 0 && p.Day != len(points)-1 {
			continue
		}
		path = append(path, []string{
			fmt.Sprintf("%d", p.Day),
			fmt.Sprintf("%.2f", p.Baseline),
			fmt.Sprintf("%.2f", p.Scenario),
			fmt.Sprintf("%.2f", p.Lower),
			fmt.Sprintf("%.2f", p.Upper),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Day", "Baseline", "Scenario", "Lower", "Upper"},
		Rows:   path,
	})

	doc.H2("Stress Test")
	doc.PlainText(fmt.Sprintf("Estimated mark-to-market impact on the position book: %s", stress.SignedString()))

	return doc.String()
}
