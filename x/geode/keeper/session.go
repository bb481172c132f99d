package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/geode/types"
	ordertypes "github.com/geodenet/geodenet/x/order/types"
)

// OnNewSession runs during the session initialize phase. Exiting nodes are
// deregistered for good; the sweep is cursor-bounded so a large exit queue
// drains across consecutive blocks of the phase.
func (k Keeper) OnNewSession(ctx context.Context, sessionIndex int64) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	params, err := k.GetParams(ctx)
	if err != nil {
		k.Logger(ctx).Error("failed to load params for exit sweep", "error", err)
		return
	}

	k.sweepIndex(ctx, ExitingGeodePrefix, cursorExiting, sessionIndex, params.SweepLimit, func(geodeID sdk.AccAddress) error {
		geode, err := k.GetGeode(ctx, geodeID)
		if err != nil {
			return err
		}

		if err := k.deleteGeode(ctx, *geode); err != nil {
			return err
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeGeodeRemoved,
				sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			),
		)
		return nil
	})
}

// OnGeodeOffline runs during the offline phase. Offline requests against
// idle nodes are honored immediately; requests against busy nodes stay
// queued until the node frees up. Failure requests release the node back
// to idle and flag the order for an emergency re-dispatch. Both queues
// share one cursor-bounded budget per call: failure requests get whatever
// the offline drain left over.
func (k Keeper) OnGeodeOffline(ctx context.Context, sessionIndex int64) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	store := k.getStore(ctx)
	logger := k.Logger(ctx)
	params, err := k.GetParams(ctx)
	if err != nil {
		logger.Error("failed to load params for offline sweep", "error", err)
		return
	}

	var drained uint32
	k.sweepIndex(ctx, OfflineRequestPrefix, cursorOffline, sessionIndex, params.SweepLimit, func(geodeID sdk.AccAddress) error {
		drained++

		geode, err := k.GetGeode(ctx, geodeID)
		if err != nil {
			// Node is gone; the request is moot.
			store.Delete(OfflineRequestKey(geodeID))
			return nil
		}

		if geode.Working.State != types.GeodeStateIdle {
			return nil
		}

		if err := k.mutateGeode(ctx, geode, func(g *types.Geode) {
			g.Working = types.WorkingState{State: types.GeodeStateExiting}
		}); err != nil {
			return err
		}
		store.Delete(OfflineRequestKey(geodeID))

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeGeodeExiting,
				sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			),
		)
		return nil
	})

	if drained >= params.SweepLimit {
		return
	}

	k.sweepIndex(ctx, FailRequestPrefix, cursorFailed, sessionIndex, params.SweepLimit-drained, func(geodeID sdk.AccAddress) error {
		store.Delete(FailRequestKey(geodeID))

		geode, err := k.GetGeode(ctx, geodeID)
		if err != nil {
			return nil
		}

		if geode.Working.State != types.GeodeStatePending && geode.Working.State != types.GeodeStateFinalizing {
			// A later report already moved the node on.
			return nil
		}

		orderID := geode.OrderId
		if k.orderKeeper != nil && orderID != "" {
			if err := k.orderKeeper.OnOrderState(ctx, geodeID, orderID, ordertypes.OrderStateEmergency); err != nil {
				logger.Error("failed to flag order after geode failure",
					"geode_id", geodeID.String(),
					"order_id", orderID,
					"error", err,
				)
			}
		}

		if err := k.mutateGeode(ctx, geode, func(g *types.Geode) {
			g.Working = types.WorkingState{State: types.GeodeStateIdle}
			g.OrderId = ""
		}); err != nil {
			return err
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeGeodeFailed,
				sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
				sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
			),
		)
		return nil
	})
}

// OnOrderDispatched picks up to num idle nodes for an order and moves them
// to Pending. Unhealthy nodes, nodes with a queued offline or failure
// request, and nodes on the wrong domain are passed over. The scan is
// bounded so a huge idle fleet cannot stall the block; callers treat a
// short result as a shortfall and retry next cycle.
func (k Keeper) OnOrderDispatched(ctx context.Context, sessionIndex int64, orderID string, num uint32, domain string) []sdk.AccAddress {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	logger := k.Logger(ctx)
	params, err := k.GetParams(ctx)
	if err != nil {
		logger.Error("failed to load params for dispatch scan", "error", err)
		return nil
	}

	var (
		assigned []sdk.AccAddress
		scanned  uint32
	)

	store := k.getStore(ctx)
	var candidates []sdk.AccAddress
	iterator := store.Iterator(IdleGeodePrefix, storetypes.PrefixEndBytes(IdleGeodePrefix))
	for ; iterator.Valid() && scanned < params.DispatchScanLimit; iterator.Next() {
		scanned++
		key := iterator.Key()
		candidates = append(candidates, sdk.AccAddress(append([]byte{}, key[len(IdleGeodePrefix):]...)))
	}
	iterator.Close()

	for _, geodeID := range candidates {
		if uint32(len(assigned)) >= num {
			break
		}

		geode, err := k.GetGeode(ctx, geodeID)
		if err != nil {
			logger.Error("idle index points at missing geode", "geode_id", geodeID.String())
			continue
		}
		if geode.Working.State != types.GeodeStateIdle {
			continue
		}
		if geode.Healthy != types.HealthyStateHealthy {
			continue
		}
		if k.HasOfflineRequest(ctx, geodeID) || k.HasFailRequest(ctx, geodeID) {
			continue
		}
		if domain != "" && geode.Domain != domain {
			continue
		}

		if err := k.mutateGeode(ctx, geode, func(g *types.Geode) {
			g.Working = types.WorkingState{State: types.GeodeStatePending, SessionIndex: sessionIndex}
			g.OrderId = orderID
		}); err != nil {
			logger.Error("failed to dispatch geode", "geode_id", geodeID.String(), "error", err)
			continue
		}

		assigned = append(assigned, geodeID)
		k.metrics.GeodesDispatched.WithLabelValues(domain).Inc()

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeGeodeDispatched,
				sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
				sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
			),
		)
	}

	if uint32(len(assigned)) < num {
		k.metrics.DispatchShortfalls.Inc()
	}

	return assigned
}

// OnExpiredCheck runs during the expired check phase. A node stuck in
// Pending past its order's lifetime never reported ready; it is flagged
// unhealthy, its order gets an emergency re-dispatch, and the node returns
// to idle so an attestor verdict can rehabilitate it later.
func (k Keeper) OnExpiredCheck(ctx context.Context, sessionIndex int64) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	logger := k.Logger(ctx)
	params, err := k.GetParams(ctx)
	if err != nil {
		logger.Error("failed to load params for expiry sweep", "error", err)
		return
	}

	k.sweepIndex(ctx, PendingGeodePrefix, cursorExpired, sessionIndex, params.SweepLimit, func(geodeID sdk.AccAddress) error {
		geode, err := k.GetGeode(ctx, geodeID)
		if err != nil {
			return err
		}
		if geode.Working.State != types.GeodeStatePending {
			return nil
		}

		if k.orderKeeper == nil || !k.orderKeeper.IsOrderExpired(ctx, geode.OrderId, sessionIndex) {
			return nil
		}

		orderID := geode.OrderId
		if err := k.orderKeeper.OnOrderState(ctx, geodeID, orderID, ordertypes.OrderStateEmergency); err != nil {
			logger.Error("failed to flag order after lease expiry",
				"geode_id", geodeID.String(),
				"order_id", orderID,
				"error", err,
			)
		}

		if err := k.mutateGeode(ctx, geode, func(g *types.Geode) {
			g.Healthy = types.HealthyStateUnhealthy
			g.Working = types.WorkingState{State: types.GeodeStateIdle}
			g.OrderId = ""
		}); err != nil {
			return err
		}

		k.metrics.ExpiredLeases.Inc()
		k.metrics.HealthTransitions.WithLabelValues(string(types.HealthyStateUnhealthy)).Inc()

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeGeodeExpired,
				sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
				sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
			),
		)
		return nil
	})
}
