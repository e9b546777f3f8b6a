package beefdesk

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The desk file is JSONL, one record per line, human-readable and
// git-friendly. Each line carries a "record" discriminator: "asof" for the
// reference day, "param" for a parameter set, "price" for a market quote,
// "lot" for an inventory line.

const (
	recAsOf  = "asof"
	recParam = "param"
	recPrice = "price"
	recLot   = "lot"
)

// jparam mirrors a parameter set line.
type jparam struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	AnnualRate       float64 `json:"annualRate"`
	OccupancyRatio   float64 `json:"occupancyRatio"`
	StoragePerTonDay float64 `json:"storagePerTonDay"`
	CustomsFactor    float64 `json:"customsFactor"`
	VATFactor        float64 `json:"vatFactor"`
	MiscPerKg        float64 `json:"miscPerKg"`
}

// jprice mirrors a market quote line.
type jprice struct {
	SKU     string          `json:"sku"`
	Product string          `json:"product,omitempty"`
	Price   decimal.Decimal `json:"price"`
	On      Date            `json:"on"`
}

// jlot mirrors an inventory line. Sourcing is persisted raw: a positive
// spotPrice means spot mode, otherwise the futures figures apply, zeros
// included.
type jlot struct {
	ID          string   `json:"id"`
	ContractID  string   `json:"contract,omitempty"`
	ContainerID string   `json:"container"`
	SKU         string   `json:"sku"`
	Product     string   `json:"product,omitempty"`
	Pieces      int      `json:"pieces,omitempty"`
	Weight      Quantity `json:"weight"`
	SpotPrice   float64  `json:"spotPrice,omitempty"`
	USDPerTon   float64  `json:"usdPerTon,omitempty"`
	FX          float64  `json:"fx,omitempty"`
	ParamSetID  int      `json:"paramSet,omitempty"`
	FunderID    string   `json:"funder,omitempty"`
	Shipping    Date     `json:"shipping,omitempty"`
	ETA         Date     `json:"eta,omitempty"`
	Entry       Date     `json:"entry,omitempty"`
	Country     string   `json:"country,omitempty"`
	Factory     string   `json:"factory,omitempty"`
	Port        string   `json:"port,omitempty"`
	ColdStorage string   `json:"coldStorage,omitempty"`
	Floor       float64  `json:"floor,omitempty"`
	Countdown   *int     `json:"countdown,omitempty"`
}

func (j jlot) lot() Lot {
	l := Lot{
		ID:            j.ID,
		ContractID:    j.ContractID,
		ContainerID:   j.ContainerID,
		SKU:           j.SKU,
		Product:       j.Product,
		Pieces:        j.Pieces,
		Weight:        j.Weight,
		Mode:          NewSourcing(j.SpotPrice, j.USDPerTon, j.FX),
		ParamSetID:    j.ParamSetID,
		FunderID:      j.FunderID,
		ShippingDate:  j.Shipping,
		ETADate:       j.ETA,
		EntryDate:     j.Entry,
		Country:       j.Country,
		Factory:       j.Factory,
		Port:          j.Port,
		ColdStorage:   j.ColdStorage,
		CountdownDays: j.Countdown,
	}
	if j.Floor != 0 {
		l.PaymentFloor = M(j.Floor, CNY)
	}
	return l
}

func jlotOf(l Lot) jlot {
	j := jlot{
		ID:          l.ID,
		ContractID:  l.ContractID,
		ContainerID: l.ContainerID,
		SKU:         l.SKU,
		Product:     l.Product,
		Pieces:      l.Pieces,
		Weight:      l.Weight,
		ParamSetID:  l.ParamSetID,
		FunderID:    l.FunderID,
		Shipping:    l.ShippingDate,
		ETA:         l.ETADate,
		Entry:       l.EntryDate,
		Country:     l.Country,
		Factory:     l.Factory,
		Port:        l.Port,
		ColdStorage: l.ColdStorage,
		Floor:       l.PaymentFloor.InexactFloat64(),
		Countdown:   l.CountdownDays,
	}
	switch m := l.Mode.(type) {
	case SpotPurchase:
		j.SpotPrice = m.CNYPerKg
	case FuturesImport:
		j.USDPerTon = m.USDPerTon
		j.FX = m.FX
	}
	return j
}

// DecodeDesk reads a desk file. An empty stream yields an empty desk valued
// today.
func DecodeDesk(r io.Reader) (*Desk, error) {
	on := Today()
	params := NewParameterSets()
	prices := NewPriceBook()
	var lots []Lot

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: cannot identify record: %w", lineno, err)
		}

		switch identifier.Record {
		case recAsOf:
			var j struct {
				On Date `json:"on"`
			}
			if err := json.Unmarshal(line, &j); err != nil {
				return nil, fmt.Errorf("line %d: invalid asof record: %w", lineno, err)
			}
			if !j.On.IsZero() {
				on = j.On
			}
		case recParam:
			var j jparam
			if err := json.Unmarshal(line, &j); err != nil {
				return nil, fmt.Errorf("line %d: invalid param record: %w", lineno, err)
			}
			params.Put(ParameterSet{
				ID: j.ID, Name: j.Name,
				AnnualRate: j.AnnualRate, OccupancyRatio: j.OccupancyRatio,
				StoragePerTonDay: j.StoragePerTonDay,
				CustomsFactor:    j.CustomsFactor, VATFactor: j.VATFactor,
				MiscPerKg: j.MiscPerKg,
			})
		case recPrice:
			var j jprice
			if err := json.Unmarshal(line, &j); err != nil {
				return nil, fmt.Errorf("line %d: invalid price record: %w", lineno, err)
			}
			prices.Set(PriceEntry{SKU: j.SKU, Product: j.Product, Price: M(j.Price, CNY), On: j.On})
		case recLot:
			var j jlot
			if err := json.Unmarshal(line, &j); err != nil {
				return nil, fmt.Errorf("line %d: invalid lot record: %w", lineno, err)
			}
			lots = append(lots, j.lot())
		default:
			return nil, fmt.Errorf("line %d: unknown record type %q", lineno, identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading desk file: %w", err)
	}
	return NewDesk(on, lots, params, prices), nil
}

// EncodeDesk writes the desk as JSONL in canonical order: the reference day,
// then parameter sets, quotes, and lots. Encoding then decoding yields an
// equivalent desk, so the file can be round-tripped by tooling.
func EncodeDesk(w io.Writer, d *Desk) error {
	write := func(v *jsonObjectWriter) error {
		b, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return err
		}
		return nil
	}

	var asof jsonObjectWriter
	asof.Append("record", recAsOf).Append("on", d.On())
	if err := write(&asof); err != nil {
		return err
	}

	for _, p := range d.Params() {
		var o jsonObjectWriter
		o.Append("record", recParam)
		o.EmbedFrom(jparam{
			ID: p.ID, Name: p.Name,
			AnnualRate: p.AnnualRate, OccupancyRatio: p.OccupancyRatio,
			StoragePerTonDay: p.StoragePerTonDay,
			CustomsFactor:    p.CustomsFactor, VATFactor: p.VATFactor,
			MiscPerKg: p.MiscPerKg,
		})
		if err := write(&o); err != nil {
			return err
		}
	}
	for _, e := range d.Prices() {
		var o jsonObjectWriter
		o.Append("record", recPrice)
		o.Append("sku", e.SKU).Optional("product", e.Product)
		o.Append("price", e.Price.InexactFloat64()).Append("on", e.On)
		if err := write(&o); err != nil {
			return err
		}
	}
	for _, l := range d.Lots() {
		var o jsonObjectWriter
		o.Append("record", recLot)
		o.EmbedFrom(jlotOf(l))
		if err := write(&o); err != nil {
			return err
		}
	}
	return nil
}
