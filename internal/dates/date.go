package dates

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date in YYYY-MM-DD form with no time or timezone
// component. Completion is a per-calendar-day concept, so Date compares
// as a string and never as a timestamp.
type Date string

const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	// time.Parse accepts some non-canonical spellings; require an exact
	// round trip so "2025-1-2" and friends are rejected.
	if t.Format(Layout) != s {
		return "", ErrInvalidDate
	}
	return Date(s), nil
}

func FromTime(t time.Time) Date {
	return Date(t.Format(Layout))
}

func Today() Date {
	return FromTime(time.Now())
}

func (d Date) String() string {
	return string(d)
}

func (d Date) Time() time.Time {
	t, _ := time.Parse(Layout, string(d))
	return t
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Date) Next() Date {
	return d.AddDays(1)
}

func (d Date) Prev() Date {
	return d.AddDays(-1)
}

// Before and After rely on the lexicographic ordering of the layout.
func (d Date) Before(other Date) bool {
	return string(d) < string(other)
}

func (d Date) After(other Date) bool {
	return string(d) > string(other)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// DaysBetween returns the number of calendar days from d to other.
// Positive when other is later than d.
func (d Date) DaysBetween(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// Range returns every date in [start, end] inclusive, in order. An
// inverted range yields nil.
func Range(start, end Date) []Date {
	if start.After(end) {
		return nil
	}
	days := make([]Date, 0, start.DaysBetween(end)+1)
	for d := start; !d.After(end); d = d.Next() {
		days = append(days, d)
	}
	return days
}

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d *Date) Scan(value interface{}) error {
	if value == nil {
		*d = ""
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = FromTime(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan type %T into Date", value)
	}
}

func (d *Date) scanString(s string) error {
	// Postgres date columns may come back with a time suffix depending
	// on the driver; keep the date part only.
	if i := strings.IndexAny(s, "T "); i > 0 {
		s = s[:i]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// GormDataType tells gorm to store Date in a native date column.
func (Date) GormDataType() string {
	return "date"
}
