// Package trip contains the core data types for tracking travel expenses
// against a daily budget. A Trip is the aggregate root: it owns its ordered
// expense list and gates mutation through an open/closed lifecycle. All
// monetary values use decimal arithmetic to avoid floating point drift.
package trip

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind distinguishes trips that need currency conversion from those that
// settle in the home currency directly.
type Kind string

const (
	Domestic      Kind = "DOMESTIC"
	International Kind = "INTERNATIONAL"
)

// Destination is the place a trip goes to, including the local currency
// expenses are paid in. Immutable once constructed.
type Destination struct {
	City     string
	Region   string
	Country  string
	currency string
}

// NewDestination constructs a destination. The currency code is normalized
// to lower case, matching the keying of the exchange-rate source.
func NewDestination(city, region, country, currency string) Destination {
	return Destination{
		City:     city,
		Region:   region,
		Country:  country,
		currency: strings.ToLower(currency),
	}
}

// Currency returns the lower-cased local currency code, e.g. "usd".
func (d Destination) Currency() string { return d.currency }

// Traveler identifies the person the trip belongs to. It is record-keeping
// only; no budget computation reads it. The zero value means "not recorded".
type Traveler struct {
	FullName string
	IDNumber string
	Phone    string
	Email    string
}

// IsZero reports whether no traveler details were recorded.
func (t Traveler) IsZero() bool {
	return t == Traveler{}
}

// Trip aggregates the expenses of one journey together with its date range,
// daily budget and destination. Expenses may only be appended while the
// trip is open; closing is one-way from the registration flow's perspective.
//
// Negative daily budgets and inverted date ranges are accepted as given.
// The interactive console validates its own input instead; constructing a
// trip programmatically with such values simply yields a deficit from day one.
type Trip struct {
	StartDate   Date
	EndDate     Date
	DailyBudget decimal.Decimal
	Destination Destination
	Traveler    Traveler
	Kind        Kind

	open     bool
	expenses []*Expense
}

// New creates an open trip with no expenses.
func New(start, end Date, dailyBudget decimal.Decimal, dest Destination, kind Kind) *Trip {
	return &Trip{
		StartDate:   start,
		EndDate:     end,
		DailyBudget: dailyBudget,
		Destination: dest,
		Kind:        kind,
		open:        true,
	}
}

// IsOpen reports whether expenses can still be registered.
func (t *Trip) IsOpen() bool { return t.open }

// Append adds an expense to the trip. It fails with ErrClosed once the trip
// has been closed; the expense is then not appended. Duplicate expenses are
// legal and each counts separately in reports.
func (t *Trip) Append(e *Expense) error {
	if !t.open {
		return ErrClosed
	}
	t.expenses = append(t.expenses, e)
	return nil
}

// Close marks the trip as finished. Closing an already-closed trip is a
// no-op, not an error.
func (t *Trip) Close() {
	t.open = false
}

// Reopen reverses Close. The console flow never calls it; it exists as an
// explicit escape hatch for callers that manage the lifecycle themselves.
func (t *Trip) Reopen() {
	t.open = true
}

// Expenses returns the expenses in insertion order. The returned slice is a
// copy of the list header; entries are shared and must not be mutated.
func (t *Trip) Expenses() []*Expense {
	out := make([]*Expense, len(t.expenses))
	copy(out, t.expenses)
	return out
}

// DailyTotal sums the home-currency amounts of all expenses on the given
// date. It recomputes from the current expense list on every call; the list
// is append-only, so recomputation is cheap and always consistent.
func (t *Trip) DailyTotal(date Date) decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.expenses {
		if e.date.Equal(date) {
			total = total.Add(e.homeAmount)
		}
	}
	return total
}
