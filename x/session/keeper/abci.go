package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/session/types"
)

// BeginBlocker drives the session cycle. Every block falls into exactly one
// phase; a zero residue rolls the session over before the phase runs. Phase
// callbacks are best-effort: a failing module logs and the block proceeds.
func (k Keeper) BeginBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	logger := k.Logger(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		logger.Error("failed to load params for session tick", "error", err)
		return nil
	}

	total := params.PhaseBlocks.Total()
	if total <= 0 {
		return nil
	}

	height := sdkCtx.BlockHeight()
	residue := height % total

	sessionIndex := k.GetSessionIndex(ctx)
	if residue == 0 {
		sessionIndex++
		k.setSessionIndex(ctx, sessionIndex)
		k.metrics.SessionIndex.Set(float64(sessionIndex))

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeNewSession,
				sdk.NewAttribute(types.AttributeKeySessionIndex, fmt.Sprintf("%d", sessionIndex)),
				sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", height)),
			),
		)
	}

	phase := params.PhaseBlocks.Locate(residue)
	k.metrics.PhaseBlocks.WithLabelValues(string(phase)).Inc()

	k.runPhase(ctx, phase, sessionIndex)
	return nil
}

// runPhase dispatches one phase's callback set in its fixed order. Offline
// processing runs before emergency backfill so freed capacity is visible to
// the re-dispatch in the same phase.
func (k Keeper) runPhase(ctx context.Context, phase types.Phase, sessionIndex int64) {
	switch phase {
	case types.PhaseSessionInitialize:
		if k.geodeKeeper != nil {
			k.geodeKeeper.OnNewSession(ctx, sessionIndex)
		}
		if k.orderKeeper != nil {
			k.orderKeeper.OnNewSession(ctx, sessionIndex)
		}
	case types.PhaseGeodeOffline:
		if k.geodeKeeper != nil {
			k.geodeKeeper.OnGeodeOffline(ctx, sessionIndex)
		}
		if k.orderKeeper != nil {
			k.orderKeeper.OnEmergencyOrderDispatch(ctx, sessionIndex)
		}
	case types.PhaseOrderDispatch:
		if k.orderKeeper != nil {
			k.orderKeeper.OnOrdersDispatch(ctx, sessionIndex)
		}
	case types.PhaseExpiredCheck:
		if k.geodeKeeper != nil {
			k.geodeKeeper.OnExpiredCheck(ctx, sessionIndex)
		}
	}
}
