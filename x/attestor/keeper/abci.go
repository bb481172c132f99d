package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/attestor/types"
)

// EndBlocker sweeps out attestors whose heartbeat lapsed. Expiry is handled
// like removal: attestations are withdrawn and geodes dropping below quorum
// are flagged unhealthy with the attestor-down cause.
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	logger := k.Logger(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		logger.Error("failed to load params for heartbeat sweep", "error", err)
		return nil
	}

	height := sdkCtx.BlockHeight()

	var expired []types.Attestor
	err = k.IterateAttestors(ctx, func(attestor types.Attestor) (bool, error) {
		if height-attestor.LastHeartbeat > params.HeartbeatBlocks {
			expired = append(expired, attestor)
		}
		return false, nil
	})
	if err != nil {
		logger.Error("heartbeat sweep failed", "error", err)
		return nil
	}

	for _, attestor := range expired {
		attestorID, err := sdk.AccAddressFromBech32(attestor.Id)
		if err != nil {
			continue
		}

		k.withdrawAttestations(ctx, attestorID, attestor.Geodes)
		k.getStore(ctx).Delete(AttestorKey(attestorID))
		k.metrics.AttestorsRegistered.Dec()
		k.metrics.HeartbeatExpiries.Inc()

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAttestorExpired,
				sdk.NewAttribute(types.AttributeKeyAttestorId, attestor.Id),
			),
		)
	}

	return nil
}
