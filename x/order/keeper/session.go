package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/order/types"
)

// IsOrderExpired reports whether the order's allotted session window has
// elapsed at the given session index. Unknown and finished orders count as
// expired so geodes referencing them get freed.
func (k Keeper) IsOrderExpired(ctx context.Context, orderID string, sessionIndex int64) bool {
	order, err := k.GetOrder(ctx, orderID)
	if err != nil {
		return true
	}
	if order.State == types.OrderStateDone {
		return true
	}
	// The order keeps its full last session; expiry starts strictly after
	// start + duration.
	return sessionIndex > order.StartSessionId+int64(order.Duration)
}

// OnNewSession finalizes orders whose session window elapsed and drains
// cancel requests recorded since the last sweep. Both enumerations are
// bounded and cursor-resumable.
func (k Keeper) OnNewSession(ctx context.Context, sessionIndex int64) {
	params, err := k.GetParams(ctx)
	if err != nil {
		k.Logger(ctx).Error("failed to load params for session sweep", "error", err)
		return
	}

	// Timeout path: processing orders past start+duration.
	k.sweepIndex(ctx, ProcessingOrderPrefix, cursorNewSession, sessionIndex, params.SweepLimit, func(orderID string) error {
		if !k.IsOrderExpired(ctx, orderID, sessionIndex) {
			return nil
		}
		return k.finishOrder(ctx, orderID, false, "duration elapsed")
	})

	// Cancel path: refund escrow when the cancel lands.
	k.sweepIndex(ctx, CanceledOrderPrefix, cursorCancel, sessionIndex, params.SweepLimit, func(orderID string) error {
		store := k.getStore(ctx)
		store.Delete(OrderIndexKey(CanceledOrderPrefix, orderID))
		return k.finishOrder(ctx, orderID, true, "canceled by requester")
	})
}

// OnOrdersDispatch assigns freshly submitted orders to geodes. An order
// leaves the submitted index as soon as its state is no longer Submitted,
// whether it got a full complement or fell straight into Emergency.
func (k Keeper) OnOrdersDispatch(ctx context.Context, sessionIndex int64) {
	params, err := k.GetParams(ctx)
	if err != nil {
		k.Logger(ctx).Error("failed to load params for dispatch", "error", err)
		return
	}

	k.sweepIndex(ctx, SubmittedOrderPrefix, cursorDispatch, sessionIndex, params.DispatchLimit, func(orderID string) error {
		if k.getStore(ctx).Has(OrderIndexKey(CanceledOrderPrefix, orderID)) {
			// Leave it for the cancel drain.
			return nil
		}
		return k.dispatchOrder(ctx, sessionIndex, orderID, true)
	})
}

// OnEmergencyOrderDispatch tops up understaffed orders before fresh
// submissions get a chance to consume the freed capacity.
func (k Keeper) OnEmergencyOrderDispatch(ctx context.Context, sessionIndex int64) {
	params, err := k.GetParams(ctx)
	if err != nil {
		k.Logger(ctx).Error("failed to load params for emergency dispatch", "error", err)
		return
	}

	k.sweepIndex(ctx, EmergencyOrderPrefix, cursorEmergency, sessionIndex, params.DispatchLimit, func(orderID string) error {
		if k.getStore(ctx).Has(OrderIndexKey(CanceledOrderPrefix, orderID)) {
			return nil
		}
		return k.dispatchOrder(ctx, sessionIndex, orderID, false)
	})
}

// dispatchOrder asks the geode registry for the order's current shortfall
// and records the returned geodes as pending services. initial marks the
// first dispatch of a submitted order, which also stamps the start session.
func (k Keeper) dispatchOrder(ctx context.Context, sessionIndex int64, orderID string, initial bool) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	order, err := k.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	svcs, err := k.GetOrderServices(ctx, orderID)
	if err != nil {
		return err
	}

	if uint32(len(svcs.Services)) < order.Num {
		shortfall := order.Num - uint32(len(svcs.Services))

		assigned := k.geodeKeeper.OnOrderDispatched(ctx, sessionIndex, orderID, shortfall, order.Domain)
		for _, geodeID := range assigned {
			svcs.Services = append(svcs.Services, types.OrderService{
				GeodeId: geodeID.String(),
				State:   types.OrderStatePending,
			})
		}
		if err := k.SetOrderServices(ctx, svcs); err != nil {
			return err
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeOrderDispatched,
				sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
				sdk.NewAttribute(types.AttributeKeySessionIndex, fmt.Sprintf("%d", sessionIndex)),
				sdk.NewAttribute(types.AttributeKeyAssigned, fmt.Sprintf("%d", len(assigned))),
			),
		)
	}

	if initial {
		order.StartSessionId = sessionIndex
	}

	// Dispatch writes the aggregate directly: Submitted -> Pending/Emergency
	// on first dispatch, Emergency -> Pending/Processing on a successful
	// top-up. The CheckNext table only guards report-driven recomputation.
	newState := types.CurrentState(order.Num, svcs.Services)
	if newState != order.State {
		if err := k.setOrderState(ctx, *order, newState); err != nil {
			return err
		}
		k.emitStateChanged(sdkCtx, orderID, order.State, newState)
		if newState == types.OrderStateEmergency {
			k.afterOrderEmergency(ctx, orderID)
		}
	} else if initial {
		if err := k.SetOrder(ctx, *order); err != nil {
			return err
		}
	}

	return nil
}

// OnOrderState is the single mutation point for a per-geode service state.
// Submitted and Pending targets are rejected; those are only set by
// dispatch. An Emergency report drops the service so redispatch can seek a
// replacement.
func (k Keeper) OnOrderState(ctx context.Context, geodeID sdk.AccAddress, orderID string, target types.OrderState) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	switch target {
	case types.OrderStateProcessing, types.OrderStateEmergency, types.OrderStateDone:
	default:
		return types.ErrInvalidState.Wrapf("target state %q cannot be reported", target)
	}

	order, err := k.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	svcs, err := k.GetOrderServices(ctx, orderID)
	if err != nil {
		return err
	}

	idx := -1
	for i, svc := range svcs.Services {
		if svc.GeodeId == geodeID.String() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.ErrInvalidService.Wrapf("order %s has no service for geode %s", orderID, geodeID)
	}

	current := svcs.Services[idx].State
	switch target {
	case types.OrderStateProcessing:
		if current != types.OrderStatePending {
			return types.ErrInvalidState.Wrapf("service %s of order %s is %q, not pending", geodeID, orderID, current)
		}
		svcs.Services[idx].State = types.OrderStateProcessing
	case types.OrderStateEmergency:
		if current != types.OrderStatePending && current != types.OrderStateProcessing {
			return types.ErrInvalidState.Wrapf("service %s of order %s is %q and cannot fail", geodeID, orderID, current)
		}
		svcs.Services = append(svcs.Services[:idx], svcs.Services[idx+1:]...)
	case types.OrderStateDone:
		if current != types.OrderStatePending && current != types.OrderStateProcessing {
			return types.ErrInvalidState.Wrapf("service %s of order %s is %q and cannot finish", geodeID, orderID, current)
		}
		svcs.Services[idx].State = types.OrderStateDone
	}

	if err := k.SetOrderServices(ctx, svcs); err != nil {
		return err
	}

	// A fully staffed order whose services all finished goes terminal right
	// away instead of waiting out its duration.
	if uint32(len(svcs.Services)) >= order.Num && types.AllServicesDone(svcs.Services) {
		return k.finishOrder(ctx, orderID, false, "all services done")
	}

	newState := types.CurrentState(order.Num, svcs.Services)
	if newState == order.State {
		return nil
	}
	if !order.State.CheckNext(newState) {
		return types.ErrInternalLogic.Wrapf("order %s aggregate %q -> %q", orderID, order.State, newState)
	}
	if err := k.setOrderState(ctx, *order, newState); err != nil {
		return err
	}

	k.emitStateChanged(sdkCtx, orderID, order.State, newState)
	if newState == types.OrderStateEmergency {
		k.afterOrderEmergency(ctx, orderID)
	}

	return nil
}

// finishOrder force-transitions every service and the order itself to Done.
// refund returns the escrowed price to the requester; it is set only on the
// cancel path.
func (k Keeper) finishOrder(ctx context.Context, orderID string, refund bool, reason string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	order, err := k.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.State == types.OrderStateDone {
		return nil
	}

	svcs, err := k.GetOrderServices(ctx, orderID)
	if err != nil {
		return err
	}
	for i := range svcs.Services {
		svcs.Services[i].State = types.OrderStateDone
	}
	if err := k.SetOrderServices(ctx, svcs); err != nil {
		return err
	}

	prev := order.State
	if err := k.setOrderState(ctx, *order, types.OrderStateDone); err != nil {
		return err
	}

	if refund {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		requester, err := sdk.AccAddressFromBech32(order.Requester)
		if err != nil {
			return fmt.Errorf("invalid requester address: %w", err)
		}
		coins := sdk.NewCoins(sdk.NewCoin(params.EscrowDenom, order.Price))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, requester, coins); err != nil {
			return types.ErrEscrowFailed.Wrapf("refund of order %s: %s", orderID, err)
		}
		k.metrics.EscrowRefunds.Inc()
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeOrderEscrowRefunded,
				sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
				sdk.NewAttribute(types.AttributeKeyAmount, order.Price.String()),
			),
		)
	}

	k.metrics.OrdersFinished.Inc()
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderDone,
			sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
			sdk.NewAttribute(types.AttributeKeyPrevState, string(prev)),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)
	k.afterOrderDone(ctx, orderID)

	return nil
}

func (k Keeper) emitStateChanged(sdkCtx sdk.Context, orderID string, prev, next types.OrderState) {
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderStateChanged,
			sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
			sdk.NewAttribute(types.AttributeKeyPrevState, string(prev)),
			sdk.NewAttribute(types.AttributeKeyState, string(next)),
		),
	)
}

// Hook dispatch is observational; a failing hook is logged, never fatal.

func (k Keeper) afterOrderDone(ctx context.Context, orderID string) {
	if k.hooks == nil {
		return
	}
	if err := k.hooks.AfterOrderDone(ctx, orderID); err != nil {
		k.Logger(ctx).Error("AfterOrderDone hook failed", "order_id", orderID, "error", err)
	}
}

func (k Keeper) afterOrderEmergency(ctx context.Context, orderID string) {
	if k.hooks == nil {
		return
	}
	if err := k.hooks.AfterOrderEmergency(ctx, orderID); err != nil {
		k.Logger(ctx).Error("AfterOrderEmergency hook failed", "order_id", orderID, "error", err)
	}
}
