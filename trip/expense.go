package trip

import (
	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how an expense was paid. The set is closed;
// reports group debit and credit cards together as "cards".
type PaymentMethod string

const (
	Cash       PaymentMethod = "CASH"
	DebitCard  PaymentMethod = "DEBIT_CARD"
	CreditCard PaymentMethod = "CREDIT_CARD"
)

// PaymentMethods returns all payment methods in declaration order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{Cash, DebitCard, CreditCard}
}

// IsCard reports whether the method counts towards the "cards" column in
// reports. Debit and credit cards are not distinguished there.
func (m PaymentMethod) IsCard() bool {
	return m == DebitCard || m == CreditCard
}

// ParsePaymentMethod converts console input to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case Cash, DebitCard, CreditCard:
		return PaymentMethod(s), nil
	}
	return "", &ValidationError{Kind: UnknownPaymentMethod, Value: s}
}

// Category classifies what an expense was spent on.
type Category string

const (
	Transport     Category = "TRANSPORT"
	Lodging       Category = "LODGING"
	Food          Category = "FOOD"
	Entertainment Category = "ENTERTAINMENT"
	Shopping      Category = "SHOPPING"
	Other         Category = "OTHER"
)

// Categories returns all expense categories in declaration order. The
// category report emits one row per entry, in this order.
func Categories() []Category {
	return []Category{Transport, Lodging, Food, Entertainment, Shopping, Other}
}

// ParseCategory converts console input to a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Transport, Lodging, Food, Entertainment, Shopping, Other:
		return Category(s), nil
	}
	return "", &ValidationError{Kind: UnknownCategory, Value: s}
}

// ParseAmount converts a console-entered amount to a decimal. Malformed
// input fails with a NonNumericAmount validation error rather than a bare
// parse error, so callers can surface it like any other domain rejection.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Kind: NonNumericAmount, Value: s}
	}
	return d, nil
}

// Expense is a single normalized spend record. It is immutable after
// construction; the trip owns the only references to it.
type Expense struct {
	date       Date
	amount     decimal.Decimal
	method     PaymentMethod
	category   Category
	homeAmount decimal.Decimal
}

// NewExpense constructs an expense from already-converted amounts. Both the
// original amount and its home-currency equivalent must be non-negative;
// conversion happened upstream, so the home amount is stored verbatim.
func NewExpense(date Date, amount decimal.Decimal, method PaymentMethod, category Category, homeAmount decimal.Decimal) (*Expense, error) {
	if amount.IsNegative() {
		return nil, &ValidationError{Kind: NegativeAmount, Value: amount.String()}
	}
	if homeAmount.IsNegative() {
		return nil, &ValidationError{Kind: NegativeAmount, Value: homeAmount.String()}
	}
	return &Expense{
		date:       date,
		amount:     amount,
		method:     method,
		category:   category,
		homeAmount: homeAmount,
	}, nil
}

// Date returns the calendar day the expense was incurred on.
func (e *Expense) Date() Date { return e.date }

// Amount returns the original amount in the currency it was paid in.
func (e *Expense) Amount() decimal.Decimal { return e.amount }

// Method returns the payment method used.
func (e *Expense) Method() PaymentMethod { return e.method }

// Category returns the expense category.
func (e *Expense) Category() Category { return e.category }

// HomeAmount returns the amount converted to the home currency. For
// domestic trips it equals Amount.
func (e *Expense) HomeAmount() decimal.Decimal { return e.homeAmount }
