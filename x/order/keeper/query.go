package keeper

import (
	"context"

	"github.com/geodenet/geodenet/x/order/types"
)

// Read-only query surface consumed by the CLI and external RPC glue.

// GetOrdersByState returns all orders currently in the given aggregate
// state.
func (k Keeper) GetOrdersByState(ctx context.Context, state types.OrderState) ([]types.Order, error) {
	var orders []types.Order
	err := k.IterateOrders(ctx, func(order types.Order) (bool, error) {
		if order.State == state {
			orders = append(orders, order)
		}
		return false, nil
	})
	return orders, err
}

// GetAllOrders returns every stored order.
func (k Keeper) GetAllOrders(ctx context.Context) ([]types.Order, error) {
	var orders []types.Order
	err := k.IterateOrders(ctx, func(order types.Order) (bool, error) {
		orders = append(orders, order)
		return false, nil
	})
	return orders, err
}

// CountOrdersByState tallies orders per aggregate state.
func (k Keeper) CountOrdersByState(ctx context.Context) (map[types.OrderState]int, error) {
	counts := make(map[types.OrderState]int)
	err := k.IterateOrders(ctx, func(order types.Order) (bool, error) {
		counts[order.State]++
		return false, nil
	})
	return counts, err
}

// IsOrderCanceled reports whether an order carries a pending cancel mark.
func (k Keeper) IsOrderCanceled(ctx context.Context, orderID string) bool {
	return k.getStore(ctx).Has(OrderIndexKey(CanceledOrderPrefix, orderID))
}
