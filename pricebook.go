package beefdesk

// PriceEntry is one observed market quote for a SKU, CNY per kilogram.
type PriceEntry struct {
	SKU     string
	Product string
	Price   Money
	On      Date // observation day
}

// PriceBook holds the latest market quote per SKU. When the same SKU is
// quoted twice, the later observation day wins; on the same day the quote
// set last wins.
type PriceBook struct {
	entries []PriceEntry
	index   map[string]int
}

// NewPriceBook builds a book from quotes, applying the latest-wins rule.
func NewPriceBook(entries ...PriceEntry) *PriceBook {
	pb := &PriceBook{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		pb.Set(e)
	}
	return pb
}

// Set records a quote. An older observation for an already known SKU is
// ignored.
func (pb *PriceBook) Set(e PriceEntry) {
	if i, ok := pb.index[e.SKU]; ok {
		if e.On.Before(pb.entries[i].On) {
			return
		}
		pb.entries[i] = e
		return
	}
	pb.index[e.SKU] = len(pb.entries)
	pb.entries = append(pb.entries, e)
}

// Get returns the quote for a SKU.
func (pb *PriceBook) Get(sku string) (PriceEntry, bool) {
	i, ok := pb.index[sku]
	if !ok {
		return PriceEntry{}, false
	}
	return pb.entries[i], true
}

// Price returns the market price for a SKU. A SKU with no quote prices at
// zero CNY, so a missing entry degrades the valuation instead of failing it.
func (pb *PriceBook) Price(sku string) Money {
	if e, ok := pb.Get(sku); ok {
		return e.Price
	}
	return M(0, CNY)
}

// All returns the quotes in insertion order. The slice is a copy.
func (pb *PriceBook) All() []PriceEntry {
	out := make([]PriceEntry, len(pb.entries))
	copy(out, pb.entries)
	return out
}

// Len returns the number of quoted SKUs.
func (pb *PriceBook) Len() int { return len(pb.entries) }

// Clone returns an independent copy of the book.
func (pb *PriceBook) Clone() *PriceBook {
	return NewPriceBook(pb.entries...)
}
