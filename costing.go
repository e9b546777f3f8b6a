package beefdesk

// CostedLot is a lot valued on a reference day: its timeline status plus the
// landed cost, carrying costs and sale-side figures, all in CNY.
type CostedLot struct {
	Lot

	On          Date
	Status      GoodsStatus
	StorageDays int

	CostPerKg   Money // landed cost per kilogram
	MarketPrice Money // selling quote per kilogram, zero when no quote exists

	DailyStorage  Money // warehouse fee for one day
	DailyInterest Money // financing cost for one day

	Receivable   Money // market price x weight
	GrossPayable Money // landed cost x weight, before any floor deduction
	NetCash      Money // receivable minus gross payable
	Profit       Money // (market price - landed cost) x weight
}

// Cost values one lot against a parameter set and a market quote on the
// given day. It never fails: degenerate inputs produce degraded but finite
// figures.
func Cost(lot Lot, params ParameterSet, sellPerKg Money, on Date) CostedLot {
	c := CostedLot{
		Lot:         lot,
		On:          on,
		Status:      lot.Classify(on),
		StorageDays: lot.StorageDays(on),
		MarketPrice: sellPerKg,
	}

	// Landed cost and the capital the financier actually fronted.
	var capitalBasis Money
	switch m := lot.Mode.(type) {
	case SpotPurchase:
		// Customs and VAT are already inside a domestic warehouse price.
		base := M(m.CNYPerKg, CNY)
		c.CostPerKg = base.Add(M(params.MiscPerKg, CNY))
		capitalBasis = base.Mul(lot.Weight)
	case FuturesImport:
		// Built currency-weak: the FX multiplication is what turns the
		// USD contract figure into CNY.
		perKg := M(m.USDPerTon, "").Div(Q(1000)).
			Mul(Q(m.FX)).Mul(Q(params.CustomsFactor)).Mul(Q(params.VATFactor))
		c.CostPerKg = perKg.Add(M(params.MiscPerKg, CNY))
		capitalBasis = c.CostPerKg.Mul(lot.Weight)
	default:
		c.CostPerKg = M(params.MiscPerKg, CNY)
		capitalBasis = c.CostPerKg.Mul(lot.Weight)
	}

	tons := lot.Weight.Div(Q(1000))
	c.DailyStorage = M(params.StoragePerTonDay, CNY).Mul(tons)
	c.DailyInterest = capitalBasis.Mul(Q(params.OccupancyRatio)).Mul(Q(params.DailyRate()))

	c.Receivable = sellPerKg.Mul(lot.Weight)
	c.GrossPayable = c.CostPerKg.Mul(lot.Weight)
	c.NetCash = c.Receivable.Sub(c.GrossPayable)
	c.Profit = sellPerKg.Sub(c.CostPerKg).Mul(lot.Weight)

	return c
}

// DailyBurn is the cash the lot consumes per day while it sits.
func (c CostedLot) DailyBurn() Money {
	return c.DailyStorage.Add(c.DailyInterest)
}

// HasPricing reports whether the lot carries a usable purchase price. Detail
// lines often price at zero because the money lives on the container summary
// record; their landed cost is then just incidentals and not worth showing.
func (c CostedLot) HasPricing() bool {
	switch m := c.Mode.(type) {
	case SpotPurchase:
		return m.CNYPerKg > 0
	case FuturesImport:
		return m.USDPerTon > 0
	default:
		return false
	}
}
