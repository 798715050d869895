package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Domain error types. All of them are recoverable for the caller: handlers
// map them to 4xx responses and no store state is mutated when one is
// returned. Use errors.As to detect them.

// ValidationError reports input that violates a domain rule (unknown enum
// value, negative quantity, mismatched line totals, ...).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// DuplicateItemError reports a name collision among non-archived items.
// Archived items never conflict.
type DuplicateItemError struct {
	Name string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("an active item named %q already exists", e.Name)
}

// DuplicateOrderError reports an order number collision.
type DuplicateOrderError struct {
	OrderNumber string
}

func (e *DuplicateOrderError) Error() string {
	return fmt.Sprintf("an order with number %q already exists", e.OrderNumber)
}

// InsufficientPaymentError reports cash received below the order total.
// No partial order is persisted when this is returned.
type InsufficientPaymentError struct {
	Total    decimal.Decimal
	Received decimal.Decimal
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("cash received %s is less than order total %s", e.Received, e.Total)
}

// InvalidTransitionError reports an approve/reject attempt on a stock request
// that is no longer pending.
type InvalidTransitionError struct {
	ID     string
	Status string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("stock request %s is %s and can no longer change status", e.ID, e.Status)
}
