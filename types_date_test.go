package beefdesk

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-12-09", NewDate(2025, time.December, 9), false},
		{"2025-1-7", NewDate(2025, time.January, 7), false},
		{"", Date{}, false},
		{"not-a-date", Date{}, true},
		{"2025-13-40", Date{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		from Date
		to   Date
		want int
	}{
		{"same day", NewDate(2025, 2, 5), NewDate(2025, 2, 5), 0},
		{"next day", NewDate(2025, 2, 5), NewDate(2025, 2, 6), 1},
		{"across months", NewDate(2025, 2, 5), NewDate(2025, 12, 9), 307},
		{"backwards", NewDate(2025, 12, 9), NewDate(2025, 2, 5), -307},
		{"across a leap year", NewDate(2024, 2, 28), NewDate(2024, 3, 1), 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.DaysUntil(tc.to); got != tc.want {
				t.Errorf("%v.DaysUntil(%v) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(2025, time.December, 9).String(); got != "2025-12-09" {
		t.Errorf("String() = %q, want 2025-12-09", got)
	}
	if got := (Date{}).String(); got != "" {
		t.Errorf("zero date String() = %q, want empty", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	for _, d := range []Date{NewDate(2025, 12, 9), {}} {
		b, err := d.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}
		var back Date
		if err := back.UnmarshalJSON(b); err != nil {
			t.Fatal(err)
		}
		if back != d {
			t.Errorf("round trip of %v yields %v", d, back)
		}
	}
}

func TestDateNormalizes(t *testing.T) {
	if got, want := NewDate(2025, time.January, 32), NewDate(2025, time.February, 1); got != want {
		t.Errorf("NewDate normalizes to %v, want %v", got, want)
	}
}
