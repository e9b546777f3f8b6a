package beefdesk

import (
	"fmt"
	"time"
)

// Date identifies a single calendar day. The zero value means "no date",
// which is how open shipping, arrival and entry dates are represented.
type Date struct {
	y int
	m time.Month
	d int
}

const (
	// DateFormat is the canonical format used when writing dates.
	DateFormat = "2006-01-02"
	// readDateFormat accepts hand-written dates like "2025-1-7".
	readDateFormat = "2006-1-2"
)

// NewDate returns the date for the given year, month and day, normalizing
// out-of-range values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{y: t.Year(), m: t.Month(), d: t.Day()}
}

// Today returns the current day in local time.
func Today() Date {
	t := time.Now()
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate reads a date in canonical or lenient form. The empty string
// parses to the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(readDateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// MustParseDate is ParseDate panicking on error, for literals in demo data
// and tests.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool { return d == Date{} }

func (d Date) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// Add returns the date n days later (or earlier for negative n).
func (d Date) Add(days int) Date {
	t := d.time().AddDate(0, 0, days)
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Before(o Date) bool { return d.time().Before(o.time()) }
func (d Date) After(o Date) bool  { return d.time().After(o.time()) }

// DaysUntil returns the number of whole days from d to o, negative when o
// is before d.
func (d Date) DaysUntil(o Date) int {
	return int(o.time().Sub(d.time()) / (24 * time.Hour))
}

// String renders the canonical form, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DateFormat)
}

// MarshalJSON writes the date as a string, the zero date as "".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON reads a date string, accepting "" as the zero date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", s)
	}
	v, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = v
	return nil
}
