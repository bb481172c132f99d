package types

import (
	"context"
)

// OrderHooks defines the interface for order module callbacks.
// Enables external accounting modules to observe order lifecycle events
// without the order book depending on them.
type OrderHooks interface {
	// AfterOrderDone is called when an order reaches its terminal state,
	// whether by completion, timeout, or cancellation.
	AfterOrderDone(ctx context.Context, orderID string) error

	// AfterOrderEmergency is called when an order drops into the
	// understaffed state and awaits redispatch.
	AfterOrderEmergency(ctx context.Context, orderID string) error
}

// MultiOrderHooks combines multiple order hooks into a single hook that calls all of them.
type MultiOrderHooks []OrderHooks

// NewMultiOrderHooks creates a new MultiOrderHooks from a list of hooks.
func NewMultiOrderHooks(hooks ...OrderHooks) MultiOrderHooks {
	return hooks
}

// AfterOrderDone calls AfterOrderDone on all registered hooks.
func (h MultiOrderHooks) AfterOrderDone(ctx context.Context, orderID string) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterOrderDone(ctx, orderID); err != nil {
			return err
		}
	}
	return nil
}

// AfterOrderEmergency calls AfterOrderEmergency on all registered hooks.
func (h MultiOrderHooks) AfterOrderEmergency(ctx context.Context, orderID string) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterOrderEmergency(ctx, orderID); err != nil {
			return err
		}
	}
	return nil
}
