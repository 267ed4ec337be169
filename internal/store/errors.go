package store

import (
	"errors"
	"fmt"
)

// ErrNoTickets is returned by reporting operations when no ticket has been
// recorded yet.
var ErrNoTickets = errors.New("no tickets found")

// ValidationError reports recoverable bad input; the boundary reprompts and
// nothing is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError aborts a whole ticket when any line requests more
// than the available stock. The ticket is fully recoverable: the caller may
// resubmit with corrected quantities.
type InsufficientStockError struct {
	ProductID int
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d (%s): requested %d, available %d",
		e.ProductID, e.Name, e.Requested, e.Available)
}
