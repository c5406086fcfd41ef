// Package report aggregates a trip's expenses into per-day and per-category
// summaries. All functions are pure reads over the trip's current expense
// list; nothing here mutates the trip or caches results.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/jdcardona/tripledger/trip"
)

// Breakdown splits spend by payment-instrument class. Debit and credit
// cards are not distinguished; both accumulate under Cards. The invariant
// Total = Cash + Cards holds for every breakdown this package produces.
type Breakdown struct {
	Cash  decimal.Decimal
	Cards decimal.Decimal
	Total decimal.Decimal
}

func zeroBreakdown() Breakdown {
	return Breakdown{Cash: decimal.Zero, Cards: decimal.Zero, Total: decimal.Zero}
}

func (b Breakdown) add(e *trip.Expense) Breakdown {
	amount := e.HomeAmount()
	if e.Method().IsCard() {
		b.Cards = b.Cards.Add(amount)
	} else {
		b.Cash = b.Cash.Add(amount)
	}
	b.Total = b.Total.Add(amount)
	return b
}

// DaySummary is one row of the per-day report.
type DaySummary struct {
	Date trip.Date
	Breakdown
}

// CategorySummary is one row of the per-category report.
type CategorySummary struct {
	Category trip.Category
	Breakdown
}

// ByDay summarizes spend per calendar day, in the order dates first appear
// in the expense list. Days with no expenses produce no row; a trip without
// expenses yields an empty slice.
func ByDay(t *trip.Trip) []DaySummary {
	var days []DaySummary
	index := make(map[trip.Date]int)

	for _, e := range t.Expenses() {
		i, seen := index[e.Date()]
		if !seen {
			i = len(days)
			index[e.Date()] = i
			days = append(days, DaySummary{Date: e.Date(), Breakdown: zeroBreakdown()})
		}
		days[i].Breakdown = days[i].Breakdown.add(e)
	}
	return days
}

// ByCategory summarizes spend per expense category. Unlike ByDay it always
// returns one row per category in enumeration order, zero-valued when
// nothing was spent there.
func ByCategory(t *trip.Trip) []CategorySummary {
	categories := trip.Categories()
	rows := make([]CategorySummary, len(categories))
	index := make(map[trip.Category]int, len(categories))
	for i, c := range categories {
		rows[i] = CategorySummary{Category: c, Breakdown: zeroBreakdown()}
		index[c] = i
	}

	for _, e := range t.Expenses() {
		i := index[e.Category()]
		rows[i].Breakdown = rows[i].Breakdown.add(e)
	}
	return rows
}

// Overall totals the whole trip into a single breakdown. The console uses
// it for report footers.
func Overall(t *trip.Trip) Breakdown {
	b := zeroBreakdown()
	for _, e := range t.Expenses() {
		b = b.add(e)
	}
	return b
}
