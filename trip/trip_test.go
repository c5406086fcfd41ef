package trip

import (
	"errors"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func testTrip() *Trip {
	return New(
		NewDate(2025, time.June, 1),
		NewDate(2025, time.June, 10),
		decimal.NewFromInt(100000),
		NewDestination("Bogotá", "Cundinamarca", "Colombia", "cop"),
		Domestic,
	)
}

func mustExpense(t *testing.T, date Date, amount int64, method PaymentMethod, category Category) *Expense {
	t.Helper()
	e, err := NewExpense(date, decimal.NewFromInt(amount), method, category, decimal.NewFromInt(amount))
	assert.NoError(t, err)
	return e
}

func TestNewDestination_NormalizesCurrency(t *testing.T) {
	d := NewDestination("Miami", "Florida", "Estados Unidos", "USD")
	assert.Equal(t, d.Currency(), "usd")
}

func TestTrip_StartsOpenAndEmpty(t *testing.T) {
	tr := testTrip()
	assert.True(t, tr.IsOpen())
	assert.Equal(t, len(tr.Expenses()), 0)
}

func TestTrip_AppendPreservesInsertionOrder(t *testing.T) {
	tr := testTrip()
	day := NewDate(2025, time.June, 1)

	first := mustExpense(t, day, 20000, Cash, Food)
	second := mustExpense(t, day, 30000, DebitCard, Transport)
	assert.NoError(t, tr.Append(first))
	assert.NoError(t, tr.Append(second))

	expenses := tr.Expenses()
	assert.Equal(t, len(expenses), 2)
	assert.True(t, expenses[0] == first)
	assert.True(t, expenses[1] == second)
}

// Duplicate expenses are legal; each occurrence counts separately.
func TestTrip_AppendAllowsDuplicates(t *testing.T) {
	tr := testTrip()
	day := NewDate(2025, time.June, 6)

	for i := 0; i < 2; i++ {
		assert.NoError(t, tr.Append(mustExpense(t, day, 10000, Cash, Food)))
	}
	assert.Equal(t, len(tr.Expenses()), 2)
	assert.True(t, tr.DailyTotal(day).Equal(decimal.NewFromInt(20000)))
}

func TestTrip_AppendAfterClose(t *testing.T) {
	tr := testTrip()
	day := NewDate(2025, time.June, 1)
	assert.NoError(t, tr.Append(mustExpense(t, day, 20000, Cash, Food)))

	tr.Close()

	err := tr.Append(mustExpense(t, day, 30000, Cash, Food))
	assert.True(t, errors.Is(err, ErrClosed))
	assert.Equal(t, len(tr.Expenses()), 1, "rejected expense must not be appended")
}

func TestTrip_CloseIsIdempotent(t *testing.T) {
	tr := testTrip()
	tr.Close()
	assert.False(t, tr.IsOpen())
	tr.Close()
	assert.False(t, tr.IsOpen())
}

func TestTrip_Reopen(t *testing.T) {
	tr := testTrip()
	tr.Close()
	tr.Reopen()
	assert.True(t, tr.IsOpen())
	assert.NoError(t, tr.Append(mustExpense(t, NewDate(2025, time.June, 2), 5000, Cash, Other)))
}

func TestTrip_DailyTotal(t *testing.T) {
	tr := testTrip()
	day1 := NewDate(2025, time.June, 1)
	day2 := NewDate(2025, time.June, 2)

	assert.True(t, tr.DailyTotal(day1).IsZero(), "empty trip must total zero")

	assert.NoError(t, tr.Append(mustExpense(t, day1, 20000, Cash, Food)))
	assert.True(t, tr.DailyTotal(day1).Equal(decimal.NewFromInt(20000)))

	assert.NoError(t, tr.Append(mustExpense(t, day1, 30000, DebitCard, Transport)))
	assert.NoError(t, tr.Append(mustExpense(t, day2, 15000, CreditCard, Food)))

	assert.True(t, tr.DailyTotal(day1).Equal(decimal.NewFromInt(50000)))
	assert.True(t, tr.DailyTotal(day2).Equal(decimal.NewFromInt(15000)))
	assert.True(t, tr.DailyTotal(NewDate(2025, time.June, 3)).IsZero())
}

// Negative budgets and inverted ranges are accepted as given; the console
// validates input, not the aggregate.
func TestTrip_PermissiveConstruction(t *testing.T) {
	tr := New(
		NewDate(2025, time.June, 10),
		NewDate(2025, time.June, 1),
		decimal.NewFromInt(-5000),
		NewDestination("Lima", "Lima", "Perú", "pen"),
		International,
	)
	assert.True(t, tr.IsOpen())
	assert.True(t, tr.DailyBudget.IsNegative())
}

func TestTraveler_IsZero(t *testing.T) {
	assert.True(t, Traveler{}.IsZero())
	assert.False(t, Traveler{FullName: "Ana María"}.IsZero())
}
