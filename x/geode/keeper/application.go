package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/geode/types"
	ordertypes "github.com/geodenet/geodenet/x/order/types"
)

// ApplicationHealthy records a healthy verdict from the attestor registry.
func (k Keeper) ApplicationHealthy(ctx context.Context, geodeID sdk.AccAddress) error {
	geode, err := k.GetGeode(ctx, geodeID)
	if err != nil {
		return err
	}
	if geode.Healthy == types.HealthyStateHealthy {
		return nil
	}

	geode.Healthy = types.HealthyStateHealthy
	if err := k.SetGeode(ctx, *geode); err != nil {
		return err
	}

	k.metrics.HealthTransitions.WithLabelValues(string(types.HealthyStateHealthy)).Inc()

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGeodeHealthy,
			sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
		),
	)

	return nil
}

// ApplicationUnhealthy records an unhealthy verdict. A node serving an
// order is pulled off it: the order goes into emergency re-dispatch and the
// node returns to idle, still marked unhealthy so it is skipped by dispatch
// until a fresh healthy verdict arrives. isAttestorDown distinguishes a
// node failure from its attestor going silent.
func (k Keeper) ApplicationUnhealthy(ctx context.Context, geodeID sdk.AccAddress, isAttestorDown bool) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	logger := k.Logger(ctx)

	// Below the attestor quorum no verdict is trustworthy; in particular
	// the last attestor leaving must not evict every node it attested.
	if k.attestorKeeper == nil || k.attestorKeeper.IsAbnormalMode(ctx) {
		return nil
	}

	geode, err := k.GetGeode(ctx, geodeID)
	if err != nil {
		return err
	}

	orderID := geode.OrderId
	if geode.HoldsOrder() && k.orderKeeper != nil && orderID != "" {
		if err := k.orderKeeper.OnOrderState(ctx, geodeID, orderID, ordertypes.OrderStateEmergency); err != nil {
			logger.Error("failed to flag order after unhealthy verdict",
				"geode_id", geodeID.String(),
				"order_id", orderID,
				"error", err,
			)
		}
	}

	if err := k.mutateGeode(ctx, geode, func(g *types.Geode) {
		g.Healthy = types.HealthyStateUnhealthy
		if g.HoldsOrder() {
			g.Working = types.WorkingState{State: types.GeodeStateIdle}
			g.OrderId = ""
		}
	}); err != nil {
		return err
	}

	k.metrics.HealthTransitions.WithLabelValues(string(types.HealthyStateUnhealthy)).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGeodeUnhealthy,
			sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			sdk.NewAttribute(types.AttributeKeyAttestorDown, boolString(isAttestorDown)),
		),
	)

	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
