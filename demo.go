package beefdesk

// Demo book: one financed Brazilian container landed in Shanghai, split in
// seven boneless cuts plus its whole-container record, and one domestic spot
// purchase. Figures come from a real-world costing worksheet and are also
// what the tests check against.

// DemoDate is the fixed valuation day the demo book is built around.
var DemoDate = NewDate(2025, 12, 9)

// DemoParameterSets returns the two financing configurations of the demo
// book: a standard 6.5 percent line and a discounted 5.5 percent one.
func DemoParameterSets() *ParameterSets {
	return NewParameterSets(
		ParameterSet{
			ID:               1,
			Name:             "测试配置1-标准6.5% (Standard)",
			AnnualRate:       0.065,
			OccupancyRatio:   0.90,
			StoragePerTonDay: 2.2,
			CustomsFactor:    1.12,
			VATFactor:        1.09,
			MiscPerKg:        2.5,
		},
		ParameterSet{
			ID:               2,
			Name:             "测试配置2-优惠5.5% (Discount)",
			AnnualRate:       0.055,
			OccupancyRatio:   0.90,
			StoragePerTonDay: 2.2,
			CustomsFactor:    1.12,
			VATFactor:        1.09,
			MiscPerKg:        2.5,
		},
	)
}

// DemoPriceBook returns the demo quotes. Per-cut quotes are deliberately
// zero: the sale is negotiated per container, so only the whole-container
// SKUs carry a price.
func DemoPriceBook() *PriceBook {
	quoted := MustParseDate("2025-12-09")
	entries := []PriceEntry{
		{SKU: "N_001", Product: "冷冻去骨牛保乐肩肉", Price: M(0, CNY), On: quoted},
		{SKU: "N_002", Product: "冷冻去骨牛上脑芯", Price: M(0, CNY), On: quoted},
		{SKU: "N_003", Product: "冷冻去骨牛胸部肋条", Price: M(0, CNY), On: quoted},
		{SKU: "N_004", Product: "冷冻去骨牛脖肉", Price: M(0, CNY), On: quoted},
		{SKU: "N_005", Product: "冷冻去骨牛嫩肩肉", Price: M(0, CNY), On: quoted},
		{SKU: "N_006", Product: "冷冻去骨牛前腱肉", Price: M(0, CNY), On: quoted},
		{SKU: "N_007", Product: "冷冻去骨牛板腱", Price: M(0, CNY), On: quoted},
		{SKU: "AMCU9399445", Product: "AMCU9399445", Price: M(49.00, CNY), On: MustParseDate("2025-12-08")},
		{SKU: "CNTR-SPOT-888", Product: "CNTR-SPOT-888", Price: M(45.00, CNY), On: MustParseDate("2025-12-10")},
	}
	return NewPriceBook(entries...)
}

// DemoLots returns the demo inventory lines.
func DemoLots() []Lot {
	const (
		contract  = "58658643-3"
		container = "AMCU9399445"
		fx        = 7.25
	)
	shipped := MustParseDate("2024-12-22")
	eta := MustParseDate("2025-01-30")
	entered := MustParseDate("2025-02-05")

	// detail lines of the financed container price at zero USD on purpose:
	// the contract prices the container as a whole.
	cut := func(id, sku, product string, pieces int, kg float64) Lot {
		return Lot{
			ID:           id,
			ContractID:   contract,
			ContainerID:  container,
			SKU:          sku,
			Product:      product,
			Pieces:       pieces,
			Weight:       Q(kg),
			Mode:         FuturesImport{USDPerTon: 0, FX: fx},
			ParamSetID:   1,
			FunderID:     "东方",
			ShippingDate: shipped,
			ETADate:      eta,
			EntryDate:    entered,
			Country:      "巴西",
			Factory:      "SIF504",
			Port:         "上海",
			ColdStorage:  "东方",
		}
	}

	countdown := func(days int) *int { return &days }

	lots := []Lot{
		cut("INV-1001", "N_001", "冷冻去骨牛保乐肩肉", 130, 3291.554),
		cut("INV-1002", "N_002", "冷冻去骨牛上脑芯", 285, 6371.134),
		cut("INV-1003", "N_003", "冷冻去骨牛胸部肋条", 52, 1305.973),
		cut("INV-1004", "N_004", "冷冻去骨牛脖肉", 440, 10088.108),
		cut("INV-1005", "N_005", "冷冻去骨牛嫩肩肉", 41, 1170.160),
		cut("INV-1006", "N_006", "冷冻去骨牛前腱肉", 150, 3775.799),
		cut("INV-1007", "N_007", "冷冻去骨牛板腱", 68, 2004.668),
		{
			ID:            "INV-1008-WHOLE",
			ContractID:    contract,
			ContainerID:   container,
			SKU:           container, // summary record convention
			Product:       "AMCU9399445 (整柜汇总)",
			Pieces:        1166,
			Weight:        Q(28007.20),
			Mode:          FuturesImport{USDPerTon: 5300, FX: fx},
			ParamSetID:    1,
			FunderID:      "东方",
			ShippingDate:  shipped,
			ETADate:       eta,
			EntryDate:     entered,
			Country:       "巴西",
			Factory:       "SIF504",
			Port:          "上海",
			ColdStorage:   "东方",
			PaymentFloor:  M(150000, CNY),
			CountdownDays: countdown(120),
		},
		{
			ID:          "INV-2001-SPOT",
			ContractID:  "SPOT-BUY-001",
			ContainerID: "CNTR-SPOT-888",
			SKU:         "SIF385_BRISKET",
			Product:     "冷冻牛腩 (SIF385)",
			Pieces:      1200,
			Weight:      Q(26000),
			// spot price withheld on the line, it lives on the summary
			Mode:        NewSourcing(0, 0, 0),
			ParamSetID:  1,
			FunderID:    "东方",
			EntryDate:   MustParseDate("2025-12-10"),
			Country:     "巴西",
			Factory:     "SIF385",
			Port:        "上海",
			ColdStorage: "东方",
		},
		{
			ID:            "INV-2001-SPOT-WHOLE",
			ContractID:    "SPOT-BUY-001",
			ContainerID:   "CNTR-SPOT-888",
			SKU:           "CNTR-SPOT-888",
			Product:       "CNTR-SPOT-888 (现货采购)",
			Pieces:        1200,
			Weight:        Q(26000),
			Mode:          SpotPurchase{CNYPerKg: 42.00},
			ParamSetID:    1,
			FunderID:      "东方",
			EntryDate:     MustParseDate("2025-12-10"),
			Country:       "巴西",
			Factory:       "SIF385",
			Port:          "上海",
			ColdStorage:   "东方",
			CountdownDays: countdown(100),
		},
	}
	return lots
}

// DemoDesk assembles the whole demo book valued on DemoDate.
func DemoDesk() *Desk {
	return NewDesk(DemoDate, DemoLots(), DemoParameterSets(), DemoPriceBook())
}
