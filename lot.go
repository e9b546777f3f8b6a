package beefdesk

// SourcingMode tells how a lot's landed cost is built. It is fixed when the
// lot is constructed and never changes afterwards.
//
// A FuturesImport prices in USD per ton at origin and pays customs and VAT on
// the way in. A SpotPurchase prices in CNY per kilogram at a domestic cold
// store, already cleared, so no customs or VAT applies.
type SourcingMode interface {
	sourcing() string
}

// FuturesImport is the overseas contract pricing mode.
type FuturesImport struct {
	USDPerTon float64 // contract price at origin
	FX        float64 // USD to CNY conversion rate
}

func (FuturesImport) sourcing() string { return "futures" }

// SpotPurchase is the domestic cash market pricing mode.
type SpotPurchase struct {
	CNYPerKg float64 // warehouse price, customs cleared
}

func (SpotPurchase) sourcing() string { return "spot" }

// NewSourcing picks the pricing mode for a lot. A strictly positive spot
// price wins; a spot price of exactly zero means "not provided" and the lot
// falls back to the futures contract figures, even degenerate ones.
func NewSourcing(spotCNYPerKg, usdPerTon, fx float64) SourcingMode {
	if spotCNYPerKg > 0 {
		return SpotPurchase{CNYPerKg: spotCNYPerKg}
	}
	return FuturesImport{USDPerTon: usdPerTon, FX: fx}
}

// Lot is a single inventory record: one SKU inside one container, or the
// whole-container summary record (see IsContainerSummary).
type Lot struct {
	ID          string // invoice number, unique
	ContractID  string
	ContainerID string
	SKU         string
	Product     string

	Pieces int
	Weight Quantity // kilograms

	Mode       SourcingMode
	ParamSetID int
	FunderID   string

	ShippingDate Date // zero when not shipped or spot-sourced
	ETADate      Date // zero when unknown
	EntryDate    Date // warehouse entry, zero while at sea

	Country     string
	Factory     string // plant registration, e.g. SIF504
	Port        string
	ColdStorage string

	// Summary-only fields. Zero / nil on detail lines.
	PaymentFloor  Money // minimum payable retained at container level
	CountdownDays *int  // contractual clock, nil when not set
}

// IsContainerSummary reports whether the lot is the whole-container record.
// By convention such a record carries the container id in its SKU field.
func (l Lot) IsContainerSummary() bool {
	return l.SKU != "" && l.SKU == l.ContainerID
}
