package beefdesk

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := DemoDesk()

	var buf bytes.Buffer
	if err := EncodeDesk(&buf, d); err != nil {
		t.Fatal(err)
	}
	back, err := DecodeDesk(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if back.On() != d.On() {
		t.Errorf("On = %s, want %s", back.On(), d.On())
	}
	if got, want := len(back.Lots()), len(d.Lots()); got != want {
		t.Fatalf("lots = %d, want %d", got, want)
	}
	if got, want := len(back.Params()), len(d.Params()); got != want {
		t.Fatalf("params = %d, want %d", got, want)
	}
	if got, want := len(back.Prices()), len(d.Prices()); got != want {
		t.Fatalf("prices = %d, want %d", got, want)
	}

	t.Run("sourcing modes survive", func(t *testing.T) {
		byID := make(map[string]Lot)
		for _, l := range back.Lots() {
			byID[l.ID] = l
		}
		if m, ok := byID["INV-1008-WHOLE"].Mode.(FuturesImport); !ok || m.USDPerTon != 5300 || m.FX != 7.25 {
			t.Errorf("INV-1008-WHOLE mode = %#v", byID["INV-1008-WHOLE"].Mode)
		}
		if m, ok := byID["INV-2001-SPOT-WHOLE"].Mode.(SpotPurchase); !ok || m.CNYPerKg != 42.00 {
			t.Errorf("INV-2001-SPOT-WHOLE mode = %#v", byID["INV-2001-SPOT-WHOLE"].Mode)
		}
		if m, ok := byID["INV-1001"].Mode.(FuturesImport); !ok || m.USDPerTon != 0 || m.FX != 7.25 {
			t.Errorf("INV-1001 mode = %#v", byID["INV-1001"].Mode)
		}
	})

	t.Run("same valuation", func(t *testing.T) {
		a, b := d.Valuation(), back.Valuation()
		if !a.Totals.NetCash.Equal(b.Totals.NetCash) {
			t.Errorf("NetCash = %v, want %v", b.Totals.NetCash, a.Totals.NetCash)
		}
		if !a.Totals.Profit.Equal(b.Totals.Profit) {
			t.Errorf("Profit = %v, want %v", b.Totals.Profit, a.Totals.Profit)
		}
		ga, _ := a.Group("AMCU9399445")
		gb, _ := b.Group("AMCU9399445")
		if got, want := gb.Floor.InexactFloat64(), ga.Floor.InexactFloat64(); got != want {
			t.Errorf("Floor = %v, want %v", got, want)
		}
		if gb.CountdownDays == nil || *gb.CountdownDays != 120 {
			t.Errorf("CountdownDays = %v, want 120", gb.CountdownDays)
		}
	})
}

func TestDecodeDeskEmpty(t *testing.T) {
	d, err := DecodeDesk(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Lots()) != 0 || len(d.Params()) != 0 || len(d.Prices()) != 0 {
		t.Error("empty stream yields a non-empty desk")
	}
	if d.On().IsZero() {
		t.Error("empty desk has no reference day")
	}
}

func TestDecodeDeskErrors(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"unknown record", `{"record":"bogus"}`, `unknown record type "bogus"`},
		{"not json", `nope`, "line 1"},
		{"bad lot", `{"record":"lot","weight":"heavy"}`, "invalid lot record"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDesk(strings.NewReader(tt.in))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestDecodeDeskSkipsBlankLines(t *testing.T) {
	in := "{\"record\":\"asof\",\"on\":\"2025-12-09\"}\n\n{\"record\":\"param\",\"id\":1,\"name\":\"x\",\"annualRate\":0.05}\n"
	d, err := DecodeDesk(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if d.On() != MustParseDate("2025-12-09") {
		t.Errorf("On = %s", d.On())
	}
	if len(d.Params()) != 1 {
		t.Errorf("params = %d, want 1", len(d.Params()))
	}
}
