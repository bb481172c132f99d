package keeper

import (
	"context"
	"encoding/hex"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/geode/types"
	ordertypes "github.com/geodenet/geodenet/x/order/types"
)

// GeodeReady acknowledges that a dispatched node finished initializing and
// started serving. Pending -> Working, mirrored into the order aggregate.
func (k Keeper) GeodeReady(ctx context.Context, geodeID sdk.AccAddress, orderID string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	geode, err := k.GetGeode(ctx, geodeID)
	if err != nil {
		return err
	}
	if geode.Working.State != types.GeodeStatePending {
		return types.ErrNotPendingState.Wrapf("geode %s is %s", geodeID, geode.Working.State)
	}
	if geode.OrderId != orderID {
		return types.ErrOrderIdNotMatch.Wrapf("geode %s holds %s, reported %s", geodeID, geode.OrderId, orderID)
	}

	if k.orderKeeper != nil {
		if err := k.orderKeeper.OnOrderState(ctx, geodeID, orderID, ordertypes.OrderStateProcessing); err != nil {
			return err
		}
	}

	if err := k.mutateGeode(ctx, geode, func(g *types.Geode) {
		g.Working.State = types.GeodeStateWorking
	}); err != nil {
		return err
	}

	k.metrics.ReportsHandled.WithLabelValues(types.ReportTypeReady).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGeodeReady,
			sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
		),
	)

	return nil
}

// GeodeFinalizing acknowledges that a node began tearing down its workload.
// Working -> Finalizing; the order aggregate is untouched until finalized.
func (k Keeper) GeodeFinalizing(ctx context.Context, geodeID sdk.AccAddress, orderID string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	geode, err := k.GetGeode(ctx, geodeID)
	if err != nil {
		return err
	}
	if geode.Working.State != types.GeodeStateWorking {
		return types.ErrNotWorkingState.Wrapf("geode %s is %s", geodeID, geode.Working.State)
	}
	if geode.OrderId != orderID {
		return types.ErrOrderIdNotMatch.Wrapf("geode %s holds %s, reported %s", geodeID, geode.OrderId, orderID)
	}

	if err := k.mutateGeode(ctx, geode, func(g *types.Geode) {
		g.Working.State = types.GeodeStateFinalizing
	}); err != nil {
		return err
	}

	k.metrics.ReportsHandled.WithLabelValues(types.ReportTypeFinalizing).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGeodeFinalizing,
			sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
		),
	)

	return nil
}

// GeodeFinalized completes teardown. Finalizing -> Idle, order released,
// and the per-service row in the order aggregate marked done.
func (k Keeper) GeodeFinalized(ctx context.Context, geodeID sdk.AccAddress, orderID string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	geode, err := k.GetGeode(ctx, geodeID)
	if err != nil {
		return err
	}
	if geode.Working.State != types.GeodeStateFinalizing {
		return types.ErrNotFinalizingState.Wrapf("geode %s is %s", geodeID, geode.Working.State)
	}
	if geode.OrderId != orderID {
		return types.ErrOrderIdNotMatch.Wrapf("geode %s holds %s, reported %s", geodeID, geode.OrderId, orderID)
	}

	if k.orderKeeper != nil {
		if err := k.orderKeeper.OnOrderState(ctx, geodeID, orderID, ordertypes.OrderStateDone); err != nil {
			return err
		}
	}

	if err := k.mutateGeode(ctx, geode, func(g *types.Geode) {
		g.Working = types.WorkingState{State: types.GeodeStateIdle}
		g.OrderId = ""
	}); err != nil {
		return err
	}

	k.metrics.ReportsHandled.WithLabelValues(types.ReportTypeFinalized).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGeodeFinalized,
			sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
		),
	)

	return nil
}

// GeodeInitializeFailed records a failed startup. The node stays in its
// current state; the offline phase reconciles the failure against the order
// so that a crashed node cannot wedge the dispatch pipeline mid-block.
func (k Keeper) GeodeInitializeFailed(ctx context.Context, geodeID sdk.AccAddress, orderID string) error {
	return k.recordFailure(ctx, geodeID, orderID, types.GeodeStatePending, types.ErrNotPendingState, types.ReportTypeInitializeFailed)
}

// GeodeFinalizeFailed records a failed teardown, reconciled like a failed
// startup during the offline phase.
func (k Keeper) GeodeFinalizeFailed(ctx context.Context, geodeID sdk.AccAddress, orderID string) error {
	return k.recordFailure(ctx, geodeID, orderID, types.GeodeStateFinalizing, types.ErrNotFinalizingState, types.ReportTypeFinalizeFailed)
}

func (k Keeper) recordFailure(ctx context.Context, geodeID sdk.AccAddress, orderID string, want types.GeodeState, wrongState *errorsmod.Error, reportType string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	geode, err := k.GetGeode(ctx, geodeID)
	if err != nil {
		return err
	}
	if geode.Working.State != want {
		return wrongState.Wrapf("geode %s is %s", geodeID, geode.Working.State)
	}
	if geode.OrderId != orderID {
		return types.ErrOrderIdNotMatch.Wrapf("geode %s holds %s, reported %s", geodeID, geode.OrderId, orderID)
	}

	store := k.getStore(ctx)
	store.Set(FailRequestKey(geodeID), []byte(orderID))

	k.metrics.ReportsHandled.WithLabelValues(reportType).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFailRequested,
			sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			sdk.NewAttribute(types.AttributeKeyOrderId, orderID),
			sdk.NewAttribute(types.AttributeKeyReportType, reportType),
		),
	)

	return nil
}

// SubmitGeodeReport verifies a signed report relayed on behalf of a node
// and dispatches it to the matching handler. The message is the node's
// ed25519 public key followed by the raw order id; the signature covers the
// whole message, so any account may carry the report without being trusted.
func (k Keeper) SubmitGeodeReport(ctx context.Context, reportType string, message, signature []byte) error {
	if len(message) != types.ReportMessageLength {
		return types.ErrInvalidMessage.Wrapf("expected %d bytes, got %d", types.ReportMessageLength, len(message))
	}

	pubkey := ed25519.PubKey{Key: message[:32]}
	if !pubkey.VerifySignature(message, signature) {
		return types.ErrInvalidSignature.Wrap("report signature does not verify")
	}

	geodeID := sdk.AccAddress(pubkey.Address())
	orderID := hex.EncodeToString(message[32:])

	switch reportType {
	case types.ReportTypeReady:
		return k.GeodeReady(ctx, geodeID, orderID)
	case types.ReportTypeFinalizing:
		return k.GeodeFinalizing(ctx, geodeID, orderID)
	case types.ReportTypeFinalized:
		return k.GeodeFinalized(ctx, geodeID, orderID)
	case types.ReportTypeInitializeFailed:
		return k.GeodeInitializeFailed(ctx, geodeID, orderID)
	case types.ReportTypeFinalizeFailed:
		return k.GeodeFinalizeFailed(ctx, geodeID, orderID)
	default:
		return types.ErrInvalidNotification.Wrapf("unknown report type %s", reportType)
	}
}
