// Package renderer turns desk valuations, market data and simulations into
// markdown reports.
package renderer

import (
	"fmt"

	"github.com/mooket/beefdesk"
)

// noData is the marker shown where no meaningful figure exists: unpriced
// lines, weightless containers, absent quotes.
const noData = "-"

// cny renders a money cell.
func cny(m beefdesk.Money) string { return m.String() }

// signed renders a money cell with its sign, zero as the no-data marker.
func signed(m beefdesk.Money) string { return m.SignedString() }

// perKg renders a per-kilogram price with plain decimals, which reads better
// in dense tables than the currency formatter.
func perKg(m beefdesk.Money) string {
	return fmt.Sprintf("%.2f", m.InexactFloat64())
}

// kg renders a weight cell.
func kg(q beefdesk.Quantity) string {
	return fmt.Sprintf("%.2f", q.InexactFloat64())
}

// days renders a countdown cell, nil as the no-data marker.
func days(d *int) string {
	if d == nil {
		return noData
	}
	return fmt.Sprintf("%d", *d)
}
