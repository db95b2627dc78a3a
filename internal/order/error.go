package order

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrEmptySelection    = errors.New("no items selected for checkout")
	ErrNothingToCheckout = errors.New("selected items are not in the cart")
	ErrMissingProof      = errors.New("proof of payment is required")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrMissingReason     = errors.New("decline reason is required")
	ErrInvalidStatus     = errors.New("invalid order status")

	// ErrTxConflict surfaces a serialization failure or deadlock; nothing
	// was applied and the caller may retry.
	ErrTxConflict = errors.New("transaction conflict, please retry")
)

// InsufficientStockError aborts the whole checkout; no partial commit.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s: max available %d", e.ProductName, e.Available)
}
