package beefdesk

import (
	"errors"
	"fmt"
)

// Sentinel errors for editor operations. They are all recoverable: a failed
// edit leaves the desk untouched.
var (
	ErrUnknownContainer    = errors.New("unknown container")
	ErrUnknownParameterSet = errors.New("unknown parameter set")
	// ErrNoSummaryLot is returned when a container-level edit needs the
	// whole-container record and the container only has detail lines.
	ErrNoSummaryLot = errors.New("container has no summary record")
)

// Desk holds the trading book: the inventory lots, the parameter sets they
// are costed with, and the market price book. Editor methods copy before
// they write, so a Valuation taken earlier keeps reading consistent data.
type Desk struct {
	on     Date
	lots   []Lot
	params *ParameterSets
	prices *PriceBook
}

// NewDesk assembles a desk valued as of the given day.
func NewDesk(on Date, lots []Lot, params *ParameterSets, prices *PriceBook) *Desk {
	return &Desk{on: on, lots: lots, params: params, prices: prices}
}

// On returns the reference day.
func (d *Desk) On() Date { return d.on }

// SetReferenceDate moves the valuation day.
func (d *Desk) SetReferenceDate(on Date) { d.on = on }

// Lots returns a copy of the book's lots.
func (d *Desk) Lots() []Lot {
	out := make([]Lot, len(d.lots))
	copy(out, d.lots)
	return out
}

// Params returns the parameter sets in order.
func (d *Desk) Params() []ParameterSet { return d.params.All() }

// Prices returns the price book quotes in order.
func (d *Desk) Prices() []PriceEntry { return d.prices.All() }

// Valuation is the desk costed and aggregated on one day.
type Valuation struct {
	On     Date
	Lines  []CostedLot // every lot, input order, summary records included
	Groups []*ContainerGroup
	Totals PortfolioTotals
}

// Valuation runs the whole pipeline: cost every lot, group by container,
// fold into desk totals. Calling it twice on an unchanged desk yields the
// same figures.
func (d *Desk) Valuation() *Valuation {
	lines := make([]CostedLot, 0, len(d.lots))
	for _, lot := range d.lots {
		params := d.params.Resolve(lot.ParamSetID)
		price := d.prices.Price(lot.SKU)
		lines = append(lines, Cost(lot, params, price, d.on))
	}
	groups := Aggregate(lines)
	return &Valuation{
		On:     d.on,
		Lines:  lines,
		Groups: groups,
		Totals: Totals(groups),
	}
}

// Group finds one container's group in the valuation.
func (v *Valuation) Group(containerID string) (*ContainerGroup, bool) {
	for _, g := range v.Groups {
		if g.ContainerID == containerID {
			return g, true
		}
	}
	return nil, false
}

// ReplaceParameterSet swaps an existing parameter set for a new version with
// the same id. The next Valuation recomputes every lot costed with it.
func (d *Desk) ReplaceParameterSet(s ParameterSet) error {
	params := d.params.Clone()
	if err := params.Replace(s); err != nil {
		return err
	}
	d.params = params
	return nil
}

// AssignParameterSet points every lot of a container at another set.
func (d *Desk) AssignParameterSet(containerID string, setID int) error {
	if _, ok := d.params.Get(setID); !ok {
		return fmt.Errorf("assign to %s: parameter set %d: %w", containerID, setID, ErrUnknownParameterSet)
	}
	return d.editContainer(containerID, func(l *Lot) { l.ParamSetID = setID })
}

// SetPaymentFloor records the amount already retained by the funder on a
// container. The floor lives on the whole-container record; a container
// without one cannot hold a floor and the edit reports ErrNoSummaryLot.
func (d *Desk) SetPaymentFloor(containerID string, floor Money) error {
	if floor.IsNegative() {
		return fmt.Errorf("floor for %s: negative amount %s", containerID, floor)
	}
	return d.editSummary(containerID, func(l *Lot) { l.PaymentFloor = floor })
}

// SetCountdown sets the contractual countdown, in days, on a container's
// whole-container record.
func (d *Desk) SetCountdown(containerID string, days int) error {
	return d.editSummary(containerID, func(l *Lot) {
		v := days
		l.CountdownDays = &v
	})
}

// SetPrice records a market quote, the latest observation day winning.
func (d *Desk) SetPrice(e PriceEntry) {
	prices := d.prices.Clone()
	prices.Set(e)
	d.prices = prices
}

// editContainer applies edit to every lot of the container, copy-on-write.
func (d *Desk) editContainer(containerID string, edit func(*Lot)) error {
	lots := make([]Lot, len(d.lots))
	copy(lots, d.lots)
	found := false
	for i := range lots {
		if lots[i].ContainerID == containerID {
			edit(&lots[i])
			found = true
		}
	}
	if !found {
		return fmt.Errorf("container %s: %w", containerID, ErrUnknownContainer)
	}
	d.lots = lots
	return nil
}

// editSummary applies edit to the container's whole-container record only.
func (d *Desk) editSummary(containerID string, edit func(*Lot)) error {
	lots := make([]Lot, len(d.lots))
	copy(lots, d.lots)
	found, summarized := false, false
	for i := range lots {
		if lots[i].ContainerID != containerID {
			continue
		}
		found = true
		if lots[i].IsContainerSummary() {
			edit(&lots[i])
			summarized = true
		}
	}
	if !found {
		return fmt.Errorf("container %s: %w", containerID, ErrUnknownContainer)
	}
	if !summarized {
		return fmt.Errorf("container %s: %w", containerID, ErrNoSummaryLot)
	}
	d.lots = lots
	return nil
}
