package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/mooket/beefdesk"
)

// InventoryMarkdown renders the full inventory valuation, container by
// container. Detail lines without their own pricing show the no-data marker
// in the financial columns: their money lives on the whole-container record.
func InventoryMarkdown(v *beefdesk.Valuation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Inventory Valuation on %s", v.On))

	t := v.Totals
	doc.PlainText(fmt.Sprintf("%d containers, %d detail lines, %s kg",
		t.Containers, t.Lines, kg(t.Weight)))

	doc.Table(md.TableSet{
		Header: []string{"Receivable", "Payable (after floor)", "Net Cash", "Profit", "Daily Burn"},
		Rows: [][]string{{
			cny(t.Receivable), cny(t.EffectivePayable),
			signed(t.NetCash), signed(t.Profit), cny(t.DailyBurn),
		}},
	})

	for _, g := range v.Groups {
		renderContainer(doc, g)
	}

	return doc.String()
}

func renderContainer(doc *md.Markdown, g *beefdesk.ContainerGroup) {
	doc.H2(fmt.Sprintf("Container %s (%s)", g.ContainerID, g.Status))

	meta := fmt.Sprintf("Contract %s · funder %s · %s %s · port %s",
		g.ContractID, g.FunderID, g.Country, g.Factory, g.Port)
	if !g.Floor.IsZero() {
		meta += fmt.Sprintf(" · payment floor %s", cny(g.Floor))
	}
	if g.CountdownDays != nil {
		meta += fmt.Sprintf(" · countdown %s days", days(g.CountdownDays))
	}
	doc.PlainText(meta)

	rows := make([][]string, 0, len(g.Lines)+1)
	for _, line := range g.Lines {
		rows = append(rows, lineRow(line))
	}
	if g.Summary != nil {
		rows = append(rows, summaryRow(*g.Summary, g.Floor))
	}
	doc.Table(md.TableSet{
		Header: []string{"Invoice", "SKU", "Product", "Pieces", "Weight (kg)", "Days", "Cost/kg", "Sell/kg", "Daily Burn", "Profit"},
		Rows:   rows,
	})

	totals := g.Totals()
	source := "derived from lines"
	if g.Authoritative() {
		source = "whole-container record"
	}
	doc.PlainText(fmt.Sprintf("Totals (%s): weight %s kg, receivable %s, payable %s, net cash %s, profit %s",
		source, kg(totals.Weight), cny(totals.Receivable),
		cny(totals.EffectivePayable), signed(totals.NetCash), signed(totals.Profit)))
}

func lineRow(c beefdesk.CostedLot) []string {
	row := []string{
		c.ID, c.SKU, c.Product,
		fmt.Sprintf("%d", c.Pieces), kg(c.Weight),
		fmt.Sprintf("%d", c.StorageDays),
	}
	if !c.HasPricing() {
		return append(row, noData, noData, noData, noData)
	}
	return append(row,
		perKg(c.CostPerKg), sellCell(c),
		cny(c.DailyBurn()), signed(c.Profit))
}

func summaryRow(c beefdesk.CostedLot, floor beefdesk.Money) []string {
	label := c.Product
	if !floor.IsZero() {
		label += fmt.Sprintf(" (floor %s)", cny(floor))
	}
	return []string{
		c.ID, c.SKU, label,
		fmt.Sprintf("%d", c.Pieces), kg(c.Weight),
		fmt.Sprintf("%d", c.StorageDays),
		perKg(c.CostPerKg), sellCell(c),
		cny(c.DailyBurn()), signed(c.Profit),
	}
}

func sellCell(c beefdesk.CostedLot) string {
	if c.MarketPrice.IsZero() {
		return noData
	}
	return perKg(c.MarketPrice)
}
