package orders

import (
	"errors"
	"strings"
)

// ErrDuplicateOrderNumber is reported by a Store when the generated order
// number collides with an existing row; the assembler regenerates and
// retries a bounded number of times.
var ErrDuplicateOrderNumber = errors.New("orders: duplicate order number")

// EmptyCartError means checkout was submitted with nothing in the cart.
// Callers should send the user back to the cart view.
type EmptyCartError struct{}

func (*EmptyCartError) Error() string { return "cart is empty" }

// ValidationError lists every required checkout field that was blank after
// trimming, not just the first.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// OrderPersistenceError wraps a storage failure while creating the order.
// The cart is left untouched so the user can retry.
type OrderPersistenceError struct {
	Err error
}

func (e *OrderPersistenceError) Error() string {
	return "failed to persist order: " + e.Err.Error()
}

func (e *OrderPersistenceError) Unwrap() error { return e.Err }
