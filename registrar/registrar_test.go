package registrar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/jdcardona/tripledger/trip"
)

// fixedRateConverter multiplies by a constant rate and records what it was
// asked for.
type fixedRateConverter struct {
	rate decimal.Decimal

	calls    int
	currency string
	date     trip.Date
}

func (c *fixedRateConverter) Convert(_ context.Context, currency string, amount decimal.Decimal, date trip.Date) (decimal.Decimal, error) {
	c.calls++
	c.currency = currency
	c.date = date
	return amount.Mul(c.rate).Round(2), nil
}

type failingConverter struct {
	err   error
	calls int
}

func (c *failingConverter) Convert(context.Context, string, decimal.Decimal, trip.Date) (decimal.Decimal, error) {
	c.calls++
	return decimal.Zero, c.err
}

func domesticTrip() *trip.Trip {
	return trip.New(
		trip.NewDate(2025, time.June, 1),
		trip.NewDate(2025, time.June, 10),
		decimal.NewFromInt(100000),
		trip.NewDestination("Bogotá", "Cundinamarca", "Colombia", "cop"),
		trip.Domestic,
	)
}

func internationalTrip() *trip.Trip {
	return trip.New(
		trip.NewDate(2025, time.June, 1),
		trip.NewDate(2025, time.June, 10),
		decimal.NewFromInt(100000),
		trip.NewDestination("Miami", "Florida", "USA", "usd"),
		trip.International,
	)
}

func TestRegister_DomesticVariance(t *testing.T) {
	conv := &fixedRateConverter{rate: decimal.NewFromInt(4000)}
	reg := New(conv)
	tr := domesticTrip()
	day := trip.NewDate(2025, time.June, 1)

	res, err := reg.Register(context.Background(), tr, day, decimal.NewFromInt(20000), trip.Cash, trip.Food)
	assert.NoError(t, err)
	assert.True(t, res.Variance.Equal(decimal.NewFromInt(80000)))

	res, err = reg.Register(context.Background(), tr, day, decimal.NewFromInt(30000), trip.DebitCard, trip.Transport)
	assert.NoError(t, err)
	assert.True(t, res.Variance.Equal(decimal.NewFromInt(50000)))

	// Domestic trips never consult the converter.
	assert.Equal(t, conv.calls, 0)
	assert.Equal(t, len(tr.Expenses()), 2)
}

func TestRegister_VarianceOtherDaysUnaffected(t *testing.T) {
	reg := New(&fixedRateConverter{rate: decimal.NewFromInt(1)})
	tr := domesticTrip()

	_, err := reg.Register(context.Background(), tr, trip.NewDate(2025, time.June, 1), decimal.NewFromInt(90000), trip.Cash, trip.Lodging)
	assert.NoError(t, err)

	res, err := reg.Register(context.Background(), tr, trip.NewDate(2025, time.June, 2), decimal.NewFromInt(10000), trip.Cash, trip.Food)
	assert.NoError(t, err)
	assert.True(t, res.Variance.Equal(decimal.NewFromInt(90000)))
}

func TestRegister_VarianceCanGoNegative(t *testing.T) {
	reg := New(&fixedRateConverter{rate: decimal.NewFromInt(1)})
	tr := domesticTrip()
	day := trip.NewDate(2025, time.June, 1)

	res, err := reg.Register(context.Background(), tr, day, decimal.NewFromInt(130000), trip.CreditCard, trip.Shopping)
	assert.NoError(t, err)
	assert.True(t, res.Variance.Equal(decimal.NewFromInt(-30000)))
}

func TestRegister_InternationalConverts(t *testing.T) {
	conv := &fixedRateConverter{rate: decimal.NewFromInt(4000)}
	reg := New(conv)
	tr := internationalTrip()
	day := trip.NewDate(2025, time.June, 3)

	res, err := reg.Register(context.Background(), tr, day, decimal.NewFromInt(25), trip.CreditCard, trip.Food)
	assert.NoError(t, err)

	// Original amount is kept alongside the converted one.
	assert.True(t, res.Expense.Amount().Equal(decimal.NewFromInt(25)))
	assert.True(t, res.Expense.HomeAmount().Equal(decimal.NewFromInt(100000)))
	assert.True(t, res.Variance.IsZero())

	// The converter is asked in the destination's currency for the
	// expense's date.
	assert.Equal(t, conv.calls, 1)
	assert.Equal(t, conv.currency, "usd")
	assert.True(t, conv.date.Equal(day))
}

func TestRegister_ClosedTripRejected(t *testing.T) {
	conv := &fixedRateConverter{rate: decimal.NewFromInt(4000)}
	reg := New(conv)
	tr := internationalTrip()
	tr.Close()

	res, err := reg.Register(context.Background(), tr, trip.NewDate(2025, time.June, 1), decimal.NewFromInt(10), trip.Cash, trip.Food)
	assert.True(t, errors.Is(err, trip.ErrClosed))
	assert.Zero(t, res)

	// Rejected before any conversion happens.
	assert.Equal(t, conv.calls, 0)
	assert.Equal(t, len(tr.Expenses()), 0)
}

func TestRegister_ConversionFailurePropagates(t *testing.T) {
	wantErr := errors.New("rate service down")
	conv := &failingConverter{err: wantErr}
	reg := New(conv)
	tr := internationalTrip()

	res, err := reg.Register(context.Background(), tr, trip.NewDate(2025, time.June, 1), decimal.NewFromInt(10), trip.Cash, trip.Food)
	assert.True(t, errors.Is(err, wantErr))
	assert.Zero(t, res)
	assert.Equal(t, conv.calls, 1)
	assert.Equal(t, len(tr.Expenses()), 0)
}

func TestRegister_NegativeAmountRejected(t *testing.T) {
	reg := New(&fixedRateConverter{rate: decimal.NewFromInt(1)})
	tr := domesticTrip()

	_, err := reg.Register(context.Background(), tr, trip.NewDate(2025, time.June, 1), decimal.NewFromInt(-5), trip.Cash, trip.Food)

	var verr *trip.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, verr.Kind, trip.NegativeAmount)
	assert.Equal(t, len(tr.Expenses()), 0)
}
