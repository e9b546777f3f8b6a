package beefdesk

// Position is a directional holding on one cut, marked to market.
type Position struct {
	ID          string
	CutName     string
	EnglishName string

	QuantityTons float64
	AvgCost      float64 // CNY/kg
	CurrentPrice float64 // CNY/kg

	MarketValue  Money
	UnrealizedPL Money
	PLPercent    float64
	VaR95        Money // one-day 95% value at risk

	StopLoss    float64 // CNY/kg
	WarehouseID string
	EntryDate   Date
	DaysHeld    int
}

// Positions is a position book.
type Positions []Position

// MarketValue sums the marked value of the book.
func (ps Positions) MarketValue() Money {
	total := M(0, CNY)
	for _, p := range ps {
		total = total.Add(p.MarketValue)
	}
	return total
}

// UnrealizedPL sums the open profit and loss of the book.
func (ps Positions) UnrealizedPL() Money {
	total := M(0, CNY)
	for _, p := range ps {
		total = total.Add(p.UnrealizedPL)
	}
	return total
}

// VaR95 sums the one-day value at risk, position by position. No
// diversification credit is taken.
func (ps Positions) VaR95() Money {
	total := M(0, CNY)
	for _, p := range ps {
		total = total.Add(p.VaR95)
	}
	return total
}

// DemoPositions returns the position book of the demo desk.
func DemoPositions() Positions {
	return Positions{
		{
			ID:           "POS-001",
			CutName:      "眼肉 (Ribeye) - 巴西",
			EnglishName:  "Ribeye S/G",
			QuantityTons: 25,
			AvgCost:      68.5,
			CurrentPrice: 72.0,
			MarketValue:  M(1800000, CNY),
			UnrealizedPL: M(87500, CNY),
			PLPercent:    5.1,
			VaR95:        M(45000, CNY),
			StopLoss:     65.0,
			WarehouseID:  "WH-SH",
			EntryDate:    MustParseDate("2026-09-15"),
			DaysHeld:     42,
		},
		{
			ID:           "POS-002",
			CutName:      "前四分体 (FQ) - 乌拉圭",
			EnglishName:  "FQ 80VL",
			QuantityTons: 120,
			AvgCost:      41.0,
			CurrentPrice: 39.5,
			MarketValue:  M(4740000, CNY),
			UnrealizedPL: M(-180000, CNY),
			PLPercent:    -3.65,
			VaR95:        M(120000, CNY),
			StopLoss:     38.9,
			WarehouseID:  "WH-TJ",
			EntryDate:    MustParseDate("2026-08-20"),
			DaysHeld:     68,
		},
		{
			ID:           "POS-003",
			CutName:      "国产-育肥公牛",
			EnglishName:  "Domestic Bull",
			QuantityTons: 60,
			AvgCost:      28.0,
			CurrentPrice: 27.5,
			MarketValue:  M(1650000, CNY),
			UnrealizedPL: M(-30000, CNY),
			PLPercent:    -1.7,
			VaR95:        M(55000, CNY),
			StopLoss:     26.0,
			WarehouseID:  "WH-GZ",
			EntryDate:    MustParseDate("2026-10-10"),
			DaysHeld:     17,
		},
	}
}

// Warehouse is a cold store the desk rents space in.
type Warehouse struct {
	ID              string
	Name            string
	Location        string
	CapacityUsed    float64 // percent
	DailyCostPerTon float64 // CNY
}

// DemoWarehouses returns the cold stores of the demo desk.
func DemoWarehouses() []Warehouse {
	return []Warehouse{
		{ID: "WH-SH", Name: "上海洋山保税库", Location: "Shanghai", CapacityUsed: 85, DailyCostPerTon: 3.5},
		{ID: "WH-TJ", Name: "天津港冷链中心", Location: "Tianjin", CapacityUsed: 60, DailyCostPerTon: 2.8},
		{ID: "WH-GZ", Name: "广州南沙冷库", Location: "Guangzhou", CapacityUsed: 92, DailyCostPerTon: 3.8},
	}
}
