// Package registrar orchestrates turning raw expense input into a recorded
// ledger entry: it decides whether currency conversion is needed, obtains
// the rate, constructs the expense, appends it to the trip and reports the
// remaining budget for that day.
package registrar

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jdcardona/tripledger/trip"
)

// Converter obtains the home-currency equivalent of a foreign amount on a
// given date. *rates.Client satisfies it; tests substitute their own.
type Converter interface {
	Convert(ctx context.Context, currency string, amount decimal.Decimal, date trip.Date) (decimal.Decimal, error)
}

// Registrar registers expenses against a trip.
type Registrar struct {
	rates Converter
}

// New constructs a Registrar backed by the given converter.
func New(rates Converter) *Registrar {
	return &Registrar{rates: rates}
}

// Result is the informational outcome of a successful registration.
type Result struct {
	// Expense is the recorded entry, already appended to the trip.
	Expense *trip.Expense

	// Variance is the daily budget minus the day's total spend including
	// this expense. Positive means budget remaining, zero exactly
	// exhausted, negative over budget by its absolute value.
	Variance decimal.Decimal
}

// Register records one expense on the trip.
//
// Closed trips are rejected up front with trip.ErrClosed before any
// conversion is attempted, so a failed registration never leaves partial
// state behind. For international trips the amount is converted via the
// destination's currency; a conversion failure propagates unmodified and
// the expense is not recorded. Domestic trips take the amount verbatim.
func (r *Registrar) Register(ctx context.Context, t *trip.Trip, date trip.Date, amount decimal.Decimal, method trip.PaymentMethod, category trip.Category) (*Result, error) {
	if !t.IsOpen() {
		return nil, trip.ErrClosed
	}

	homeAmount := amount
	if t.Kind == trip.International {
		converted, err := r.rates.Convert(ctx, t.Destination.Currency(), amount, date)
		if err != nil {
			return nil, err
		}
		homeAmount = converted
	}

	expense, err := trip.NewExpense(date, amount, method, category, homeAmount)
	if err != nil {
		return nil, err
	}
	if err := t.Append(expense); err != nil {
		return nil, err
	}

	return &Result{
		Expense:  expense,
		Variance: t.DailyBudget.Sub(t.DailyTotal(date)),
	}, nil
}
