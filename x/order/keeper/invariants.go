package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/order/types"
)

// RegisterInvariants registers all order module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "order-index-symmetry",
		OrderIndexSymmetryInvariant(k))
	ir.RegisterRoute(types.ModuleName, "order-aggregate",
		OrderAggregateInvariant(k))
}

// AllInvariants runs all invariants of the order module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := OrderIndexSymmetryInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return OrderAggregateInvariant(k)(ctx)
	}
}

// OrderIndexSymmetryInvariant checks that every order appears in exactly the
// secondary index matching its state, and that every index row points at an
// existing order in the matching state.
func OrderIndexSymmetryInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		indexed := map[string]types.OrderState{}
		for _, st := range []types.OrderState{types.OrderStateSubmitted, types.OrderStateProcessing, types.OrderStateEmergency} {
			prefix := orderIndexPrefix(st)
			state := st
			err := k.IterateOrderIndex(ctx, prefix, func(orderID string) (bool, error) {
				if prev, ok := indexed[orderID]; ok {
					broken = true
					msg += fmt.Sprintf("order %s indexed under both %q and %q\n", orderID, prev, state)
				}
				indexed[orderID] = state

				order, err := k.GetOrder(ctx, orderID)
				if err != nil {
					broken = true
					msg += fmt.Sprintf("index %q references missing order %s\n", state, orderID)
					return false, nil
				}
				if order.State != state {
					broken = true
					msg += fmt.Sprintf("order %s is %q but indexed under %q\n", orderID, order.State, state)
				}
				return false, nil
			})
			if err != nil {
				broken = true
				msg += fmt.Sprintf("error iterating %q index: %v\n", state, err)
			}
		}

		err := k.IterateOrders(ctx, func(order types.Order) (bool, error) {
			if prefix := orderIndexPrefix(order.State); prefix != nil {
				if _, ok := indexed[order.OrderId]; !ok {
					broken = true
					msg += fmt.Sprintf("order %s is %q but missing from its index\n", order.OrderId, order.State)
				}
			}
			return false, nil
		})
		if err != nil {
			broken = true
			msg += fmt.Sprintf("error iterating orders: %v\n", err)
		}

		return sdk.FormatInvariant(
			types.ModuleName, "order-index-symmetry",
			msg,
		), broken
	}
}

// OrderAggregateInvariant recomputes every live order's aggregate state
// from its services and checks it against the stored state. Done orders are
// exempt; the terminal transition happens outside the aggregate scan.
func OrderAggregateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		err := k.IterateOrders(ctx, func(order types.Order) (bool, error) {
			if order.State == types.OrderStateSubmitted || order.State == types.OrderStateDone {
				return false, nil
			}

			svcs, err := k.GetOrderServices(ctx, order.OrderId)
			if err != nil {
				broken = true
				msg += fmt.Sprintf("order %s has no service list\n", order.OrderId)
				return false, nil
			}

			want := types.CurrentState(order.Num, svcs.Services)
			if want != order.State {
				broken = true
				msg += fmt.Sprintf("order %s stored state %q, recomputed %q\n", order.OrderId, order.State, want)
			}
			return false, nil
		})
		if err != nil {
			broken = true
			msg += fmt.Sprintf("error iterating orders: %v\n", err)
		}

		return sdk.FormatInvariant(
			types.ModuleName, "order-aggregate",
			msg,
		), broken
	}
}
