package trip

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when a mutation is attempted on a closed trip.
// The attempted expense is discarded entirely; there is no partial append.
var ErrClosed = errors.New("cannot register expense on a closed trip")

// ValidationKind discriminates the ways expense input can be rejected.
type ValidationKind int

const (
	// NonNumericAmount means an amount could not be parsed as a number.
	NonNumericAmount ValidationKind = iota
	// NegativeAmount means an amount was numeric but below zero.
	NegativeAmount
	// UnknownPaymentMethod means input named no known payment method.
	UnknownPaymentMethod
	// UnknownCategory means input named no known expense category.
	UnknownCategory
)

// ValidationError is returned when expense input fails domain validation.
// It is never retried; the console surfaces it as a user-facing message.
type ValidationError struct {
	Kind  ValidationKind
	Value string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case NonNumericAmount:
		return fmt.Sprintf("amount %q is not a number", e.Value)
	case NegativeAmount:
		return fmt.Sprintf("amount %s must not be negative", e.Value)
	case UnknownPaymentMethod:
		return fmt.Sprintf("unknown payment method %q", e.Value)
	case UnknownCategory:
		return fmt.Sprintf("unknown expense category %q", e.Value)
	}
	return fmt.Sprintf("invalid expense input %q", e.Value)
}
