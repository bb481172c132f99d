package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/order/types"
)

// CreateOrder validates and stores a new order, escrows its price, and
// indexes it for the next dispatch phase. Returns the derived order id.
func (k Keeper) CreateOrder(ctx context.Context, requester sdk.AccAddress, binary, domain, name string, price math.Int, num, duration uint32) (string, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if num < 1 {
		return "", types.ErrInvalidOrder.Wrap("num must be at least 1")
	}
	if duration < 1 {
		return "", types.ErrInvalidDuration.Wrap("duration must be at least 1 session")
	}
	if price.IsNil() || !price.IsPositive() {
		return "", types.ErrInvalidOrder.Wrap("price must be positive")
	}

	acc := k.accountKeeper.GetAccount(ctx, requester)
	if acc == nil {
		return "", types.ErrInvalidOrder.Wrapf("unknown requester account %s", requester)
	}

	orderID := types.NewOrderId(requester, acc.GetSequence())
	if k.HasOrder(ctx, orderID) {
		return "", types.ErrOrderIdDuplicated.Wrap(orderID)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return "", err
	}

	// Escrow the price to the module account; refunded on cancel, released
	// by the external accounting hooks on completion.
	coins := sdk.NewCoins(sdk.NewCoin(params.EscrowDenom, price))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, requester, types.ModuleName, coins); err != nil {
		return "", types.ErrEscrowFailed.Wrap(err.Error())
	}

	order := types.Order{
		OrderId:   orderID,
		Requester: requester.String(),
		Binary:    binary,
		Domain:    domain,
		Name:      name,
		Price:     price,
		Num:       num,
		Duration:  duration,
		State:     types.OrderStateSubmitted,
	}

	if err := k.SetOrder(ctx, order); err != nil {
		return "", err
	}
	if err := k.SetOrderServices(ctx, types.OrderServices{OrderId: orderID, Services: []types.OrderService{}}); err != nil {
		return "", err
	}

	store := k.getStore(ctx)
	store.Set(OrderIndexKey(SubmittedOrderPrefix, orderID), []byte{})

	k.metrics.OrdersCreated.Inc()
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderCreated,
			sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
			sdk.NewAttribute(types.AttributeKeyRequester, requester.String()),
			sdk.NewAttribute(types.AttributeKeyNum, fmt.Sprintf("%d", num)),
			sdk.NewAttribute(types.AttributeKeyAmount, price.String()),
		),
	)

	return orderID, nil
}

// CancelOrder marks an order for termination. The order keeps running until
// the next session sweep honors the cancel; escrow is refunded then.
func (k Keeper) CancelOrder(ctx context.Context, requester sdk.AccAddress, orderID string) error {
	order, err := k.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Requester != requester.String() {
		return types.ErrInvalidOrderOwner.Wrapf("order %s is not owned by %s", orderID, requester)
	}
	if order.State == types.OrderStateDone {
		return types.ErrOrderAlreadyDone.Wrap(orderID)
	}

	store := k.getStore(ctx)
	key := OrderIndexKey(CanceledOrderPrefix, orderID)
	if store.Has(key) {
		return types.ErrOrderNotCancelable.Wrapf("order %s already marked for cancellation", orderID)
	}
	store.Set(key, []byte{})

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderCanceled,
			sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
			sdk.NewAttribute(types.AttributeKeyRequester, requester.String()),
		),
	)

	return nil
}

// GetOrder retrieves an order by id
func (k Keeper) GetOrder(ctx context.Context, orderID string) (*types.Order, error) {
	store := k.getStore(ctx)
	bz := store.Get(OrderKey(orderID))
	if bz == nil {
		return nil, types.ErrInvalidOrder.Wrapf("order %s not found", orderID)
	}

	var order types.Order
	if err := json.Unmarshal(bz, &order); err != nil {
		return nil, fmt.Errorf("GetOrder: unmarshal: %w", err)
	}

	return &order, nil
}

// SetOrder stores an order record
func (k Keeper) SetOrder(ctx context.Context, order types.Order) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("SetOrder: marshal: %w", err)
	}

	store.Set(OrderKey(order.OrderId), bz)
	return nil
}

// HasOrder reports whether an order exists
func (k Keeper) HasOrder(ctx context.Context, orderID string) bool {
	return k.getStore(ctx).Has(OrderKey(orderID))
}

// GetOrderServices retrieves the service list of an order
func (k Keeper) GetOrderServices(ctx context.Context, orderID string) (types.OrderServices, error) {
	store := k.getStore(ctx)
	bz := store.Get(OrderServiceKey(orderID))
	if bz == nil {
		return types.OrderServices{}, types.ErrInvalidOrder.Wrapf("services for order %s not found", orderID)
	}

	var svcs types.OrderServices
	if err := json.Unmarshal(bz, &svcs); err != nil {
		return types.OrderServices{}, fmt.Errorf("GetOrderServices: unmarshal: %w", err)
	}

	return svcs, nil
}

// SetOrderServices stores the service list of an order
func (k Keeper) SetOrderServices(ctx context.Context, svcs types.OrderServices) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(svcs)
	if err != nil {
		return fmt.Errorf("SetOrderServices: marshal: %w", err)
	}

	store.Set(OrderServiceKey(svcs.OrderId), bz)
	return nil
}

// IterateOrders iterates over all orders
func (k Keeper) IterateOrders(ctx context.Context, cb func(order types.Order) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, OrderKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var order types.Order
		if err := json.Unmarshal(iterator.Value(), &order); err != nil {
			return err
		}

		stop, err := cb(order)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}

// IterateOrderIndex iterates the order ids recorded under a state index
// prefix
func (k Keeper) IterateOrderIndex(ctx context.Context, prefix []byte, cb func(orderID string) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		orderID := string(iterator.Key()[len(prefix):])
		stop, err := cb(orderID)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}

// setOrderState is the index-symmetric write path for an order's aggregate
// state: it persists the order and moves its index row from the old state's
// index to the new one. All aggregate state changes must go through here.
func (k Keeper) setOrderState(ctx context.Context, order types.Order, newState types.OrderState) error {
	store := k.getStore(ctx)

	if old := orderIndexPrefix(order.State); old != nil {
		store.Delete(OrderIndexKey(old, order.OrderId))
	}
	k.metrics.StateTransitions.WithLabelValues(string(order.State), string(newState)).Inc()

	order.State = newState
	if err := k.SetOrder(ctx, order); err != nil {
		return err
	}

	if next := orderIndexPrefix(newState); next != nil {
		store.Set(OrderIndexKey(next, order.OrderId), []byte{})
	}

	return nil
}
