package beefdesk

// ContainerTotals are the aggregate figures for one container.
//
// EffectivePayable is the gross payable less the container's payment floor,
// clamped at zero: the floor is money already retained by the funder, it can
// reduce what is owed but never turn it into a claim.
type ContainerTotals struct {
	Weight           Quantity
	Pieces           int
	Receivable       Money
	GrossPayable     Money
	EffectivePayable Money
	NetCash          Money // receivable minus effective payable
	Profit           Money
	DailyBurn        Money
}

// containerSource is where a container's totals come from: the dedicated
// whole-container record when one exists, or the sum of its detail lines.
type containerSource interface {
	resolve(floor Money) ContainerTotals
}

type summaryAuthoritative struct {
	line CostedLot
}

func (s summaryAuthoritative) resolve(floor Money) ContainerTotals {
	return buildTotals(s.line.Weight, s.line.Pieces, s.line.Receivable,
		s.line.GrossPayable, s.line.Profit, s.line.DailyBurn(), floor)
}

type derivedFromLines struct {
	weight     Quantity
	pieces     int
	receivable Money
	gross      Money
	profit     Money
	burn       Money
}

func (d derivedFromLines) resolve(floor Money) ContainerTotals {
	return buildTotals(d.weight, d.pieces, d.receivable, d.gross, d.profit, d.burn, floor)
}

func buildTotals(weight Quantity, pieces int, receivable, gross, profit, burn, floor Money) ContainerTotals {
	effective := gross.Sub(floor)
	if effective.IsNegative() {
		effective = M(0, CNY)
	}
	return ContainerTotals{
		Weight:           weight,
		Pieces:           pieces,
		Receivable:       receivable,
		GrossPayable:     gross,
		EffectivePayable: effective,
		NetCash:          receivable.Sub(effective),
		Profit:           profit,
		DailyBurn:        burn,
	}
}

// ContainerGroup is one container's worth of costed lots.
type ContainerGroup struct {
	ContainerID string
	ContractID  string
	FunderID    string
	Country     string
	Factory     string
	Port        string
	ColdStorage string

	Status        GoodsStatus
	ParamSetID    int
	Floor         Money
	CountdownDays *int

	Lines   []CostedLot // detail lines, in input order
	Summary *CostedLot  // whole-container record, nil when absent

	source containerSource
}

// Authoritative reports whether the totals come from a whole-container
// record rather than from summing the detail lines.
func (g *ContainerGroup) Authoritative() bool {
	_, ok := g.source.(summaryAuthoritative)
	return ok
}

// Totals resolves the container's aggregate figures, floor applied.
func (g *ContainerGroup) Totals() ContainerTotals {
	return g.source.resolve(g.Floor)
}

// AvgCostPerKg is the weight-averaged landed cost. The second return is
// false for an empty container, where no average exists.
func (g *ContainerGroup) AvgCostPerKg() (Money, bool) {
	t := g.Totals()
	if t.Weight.IsZero() {
		return Money{}, false
	}
	return t.GrossPayable.Div(t.Weight), true
}

// AvgSellPerKg is the weight-averaged selling price, false when weightless.
func (g *ContainerGroup) AvgSellPerKg() (Money, bool) {
	t := g.Totals()
	if t.Weight.IsZero() {
		return Money{}, false
	}
	return t.Receivable.Div(t.Weight), true
}

// Aggregate groups costed lots by container, first-seen order preserved.
// The whole-container record, when present, becomes the group's Summary and
// the single source of its totals; the floor and countdown ride on it too.
func Aggregate(lots []CostedLot) []*ContainerGroup {
	var groups []*ContainerGroup
	byID := make(map[string]*ContainerGroup)

	for _, c := range lots {
		g, ok := byID[c.ContainerID]
		if !ok {
			g = &ContainerGroup{
				ContainerID: c.ContainerID,
				ContractID:  c.ContractID,
				FunderID:    c.FunderID,
				Country:     c.Country,
				Factory:     c.Factory,
				Port:        c.Port,
				ColdStorage: c.ColdStorage,
				Status:      c.Status,
				ParamSetID:  c.ParamSetID,
			}
			byID[c.ContainerID] = g
			groups = append(groups, g)
		}
		if c.IsContainerSummary() {
			line := c
			g.Summary = &line
			g.Status = c.Status
			g.Floor = c.PaymentFloor
			g.CountdownDays = c.CountdownDays
		} else {
			g.Lines = append(g.Lines, c)
		}
	}

	for _, g := range groups {
		if g.Summary != nil {
			g.source = summaryAuthoritative{line: *g.Summary}
			continue
		}
		var d derivedFromLines
		d.weight = Q(0)
		d.receivable, d.gross, d.profit, d.burn = M(0, CNY), M(0, CNY), M(0, CNY), M(0, CNY)
		for _, c := range g.Lines {
			d.weight = d.weight.Add(c.Weight)
			d.pieces += c.Pieces
			d.receivable = d.receivable.Add(c.Receivable)
			d.gross = d.gross.Add(c.GrossPayable)
			d.profit = d.profit.Add(c.Profit)
			d.burn = d.burn.Add(c.DailyBurn())
		}
		g.source = d
	}
	return groups
}

// PortfolioTotals sums container totals across the whole book.
type PortfolioTotals struct {
	Containers int
	Lines      int

	Weight           Quantity
	Receivable       Money
	EffectivePayable Money
	NetCash          Money
	Profit           Money
	DailyBurn        Money
}

// Totals folds the groups into desk-level figures. Floors apply container by
// container before summation, so one over-floored container cannot offset
// another's payable.
func Totals(groups []*ContainerGroup) PortfolioTotals {
	p := PortfolioTotals{
		Weight:     Q(0),
		Receivable: M(0, CNY), EffectivePayable: M(0, CNY),
		NetCash: M(0, CNY), Profit: M(0, CNY), DailyBurn: M(0, CNY),
	}
	for _, g := range groups {
		t := g.Totals()
		p.Containers++
		p.Lines += len(g.Lines)
		p.Weight = p.Weight.Add(t.Weight)
		p.Receivable = p.Receivable.Add(t.Receivable)
		p.EffectivePayable = p.EffectivePayable.Add(t.EffectivePayable)
		p.NetCash = p.NetCash.Add(t.NetCash)
		p.Profit = p.Profit.Add(t.Profit)
		p.DailyBurn = p.DailyBurn.Add(t.DailyBurn)
	}
	return p
}
