package trip

import (
	"fmt"
	"time"
)

// Date represents a calendar date in ISO 8601 format (YYYY-MM-DD). Expenses
// carry no time-of-day component; two expenses on the same day compare equal
// regardless of when during the day they were entered.
type Date struct {
	time.Time
}

// NewDate creates a Date from its calendar components, normalized to UTC midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

// Equal reports whether two dates fall on the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// Prev returns the previous calendar day. The exchange-rate provider steps
// backwards through dates with this when the source has no data for a day.
func (d Date) Prev() Date {
	return Date{Time: d.AddDate(0, 0, -1)}
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}
