package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/mooket/beefdesk"
)

// SummaryMarkdown renders the morning sheet: index level, position book,
// factor watchlist and the inventory bottom line.
func SummaryMarkdown(v *beefdesk.Valuation, index *beefdesk.IndexSeries, positions beefdesk.Positions, factors []beefdesk.Factor) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Desk Summary on %s", v.On))

	if latest, ok := index.Latest(); ok {
		abs, pct := index.Delta()
		doc.H2("Import Price Index")
		doc.Table(md.TableSet{
			Header: []string{"Date", "Index (CNY/kg)", "Change", "MA5", "MA20", "CIF Cost"},
			Rows: [][]string{{
				latest.On.String(),
				fmt.Sprintf("%.3f", latest.Price),
				fmt.Sprintf("%+.3f (%+.2f%%)", abs, pct),
				fmt.Sprintf("%.3f", latest.MA5),
				fmt.Sprintf("%.3f", latest.MA20),
				fmt.Sprintf("%.2f", latest.ImportCost),
			}},
		})
	}

	if len(positions) > 0 {
		doc.H2("Positions")
		rows := make([][]string, 0, len(positions))
		for _, p := range positions {
			rows = append(rows, []string{
				p.ID, p.CutName,
				fmt.Sprintf("%.0f", p.QuantityTons),
				fmt.Sprintf("%.2f", p.AvgCost),
				fmt.Sprintf("%.2f", p.CurrentPrice),
				signed(p.UnrealizedPL),
				cny(p.VaR95),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"ID", "Cut", "Tons", "Avg Cost", "Price", "Unrealized P/L", "VaR 95%"},
			Rows:   rows,
		})
		doc.PlainText(fmt.Sprintf("Book: market value %s, open P/L %s, VaR 95%% %s",
			cny(positions.MarketValue()), signed(positions.UnrealizedPL()), cny(positions.VaR95())))
	}

	if len(factors) > 0 {
		doc.H2("Key Factors")
		rows := make([][]string, 0, len(factors))
		for _, f := range factors {
			rows = append(rows, []string{f.Name, f.Category, f.Impact, f.Value, f.Change})
		}
		doc.Table(md.TableSet{
			Header: []string{"Factor", "Class", "Impact", "Value", "Change"},
			Rows:   rows,
		})
	}

	t := v.Totals
	doc.H2("Inventory Bottom Line")
	doc.Table(md.TableSet{
		Header: []string{"Containers", "Weight (kg)", "Receivable", "Payable", "Net Cash", "Profit", "Daily Burn"},
		Rows: [][]string{{
			fmt.Sprintf("%d", t.Containers), kg(t.Weight),
			cny(t.Receivable), cny(t.EffectivePayable),
			signed(t.NetCash), signed(t.Profit), cny(t.DailyBurn),
		}},
	})

	return doc.String()
}
