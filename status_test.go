package beefdesk

import "testing"

func TestClassify(t *testing.T) {
	on := MustParseDate("2025-12-09")
	d := MustParseDate

	tests := []struct {
		name     string
		shipping string
		eta      string
		entry    string
		want     GoodsStatus
	}{
		{"entered long ago", "2024-12-22", "2025-01-30", "2025-02-05", StatusSpot},
		{"not shipped yet", "2026-01-15", "2026-02-20", "", StatusFuture},
		{"on the water", "2025-12-01", "2025-12-20", "", StatusSemi},
		{"ships today", "2025-12-09", "2025-12-20", "", StatusSemi},
		{"enters today", "2025-12-01", "2025-12-05", "2025-12-09", StatusSpot},
		{"entry booked tomorrow", "", "", "2025-12-10", StatusPending},
		{"spot no dates at all", "", "", "", StatusSpot},
		{"spot entered", "", "", "2025-12-01", StatusSpot},
		{"eta passed without entry", "2025-10-01", "2025-11-01", "", StatusSemi},
		{"eta before shipping", "2025-12-01", "2025-11-01", "", StatusSemi},
		{"entry overrides transit", "2025-12-01", "2025-12-20", "2025-12-08", StatusSpot},
		{"pending entry during transit", "2025-12-01", "2025-12-20", "2025-12-15", StatusSemi},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lot := Lot{
				ShippingDate: d(tc.shipping),
				ETADate:      d(tc.eta),
				EntryDate:    d(tc.entry),
			}
			if got := lot.Classify(on); got != tc.want {
				t.Errorf("Classify() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStorageDays(t *testing.T) {
	on := MustParseDate("2025-12-09")
	tests := []struct {
		name  string
		entry string
		want  int
	}{
		{"no entry", "", 0},
		{"entry in the future", "2025-12-10", 0},
		{"entered today", "2025-12-09", 0},
		{"entered yesterday", "2025-12-08", 1},
		{"entered in february", "2025-02-05", 307},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lot := Lot{EntryDate: MustParseDate(tc.entry)}
			if got := lot.StorageDays(on); got != tc.want {
				t.Errorf("StorageDays() = %d, want %d", got, tc.want)
			}
		})
	}
}
