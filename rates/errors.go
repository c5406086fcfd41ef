package rates

import (
	"fmt"

	"github.com/jdcardona/tripledger/trip"
)

// UnavailableError is returned when no usable exchange rate could be
// obtained: either the day-stepping fallback exhausted its attempt bound,
// or a single attempt failed hard (transport error, unexpected status,
// malformed document).
//
// It wraps the underlying cause when there is one, so callers can inspect
// it with errors.As/Is, but the registration flow treats every
// UnavailableError the same: the expense is abandoned, never silently
// recorded at a default rate.
type UnavailableError struct {
	Currency string
	Date     trip.Date
	Attempts int
	// Exhausted is true when every candidate date reported "not found".
	Exhausted bool
	Cause     error
}

func (e *UnavailableError) Error() string {
	if e.Exhausted {
		return fmt.Sprintf("no %s rate found for %s or the %d preceding days",
			e.Currency, e.Date, e.Attempts-1)
	}
	return fmt.Sprintf("rate lookup for %s on %s failed after %d attempt(s): %v",
		e.Currency, e.Date, e.Attempts, e.Cause)
}

// Unwrap exposes the underlying failure, nil when the attempt bound was
// exhausted on "not found" responses alone.
func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
