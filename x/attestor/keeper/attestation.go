package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/attestor/types"
)

const (
	verdictHealthy   = "healthy"
	verdictUnhealthy = "unhealthy"
)

// AttestGeode records one attestor vouching for one geode. Reaching the
// quorum delivers a healthy verdict to the geode registry.
func (k Keeper) AttestGeode(ctx context.Context, attestorID, geodeID sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	attestor, err := k.GetAttestor(ctx, attestorID)
	if err != nil {
		return err
	}
	if attestor.HasGeode(geodeID.String()) {
		return types.ErrAlreadyAttested.Wrapf("attestor %s, geode %s", attestorID, geodeID)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	before := k.AttestationCount(ctx, geodeID)

	store := k.getStore(ctx)
	store.Set(AttestationKey(geodeID, attestorID), []byte{})

	attestor.Geodes = append(attestor.Geodes, geodeID.String())
	if err := k.SetAttestor(ctx, *attestor); err != nil {
		return err
	}

	k.metrics.Attestations.Inc()

	after := before + 1
	if before < params.MinAttestorNum && after >= params.MinAttestorNum {
		k.deliverHealthy(ctx, geodeID)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGeodeAttested,
			sdk.NewAttribute(types.AttributeKeyAttestorId, attestorID.String()),
			sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			sdk.NewAttribute(types.AttributeKeyCount, fmt.Sprintf("%d", after)),
		),
	)

	return nil
}

// ReportGeode records a misbehavior report. Once the quorum of attestors
// co-signs, the geode registry gets an unhealthy verdict and the reports
// are cleared so the geode can be rehabilitated later.
func (k Keeper) ReportGeode(ctx context.Context, attestorID, geodeID sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	attestor, err := k.GetAttestor(ctx, attestorID)
	if err != nil {
		return err
	}
	if !attestor.HasGeode(geodeID.String()) {
		return types.ErrNotAttested.Wrapf("attestor %s, geode %s", attestorID, geodeID)
	}

	store := k.getStore(ctx)
	if store.Has(ReportKey(geodeID, attestorID)) {
		return types.ErrAlreadyReported.Wrapf("attestor %s, geode %s", attestorID, geodeID)
	}
	store.Set(ReportKey(geodeID, attestorID), []byte{})

	k.metrics.Reports.Inc()

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	count := k.reportCount(ctx, geodeID)
	if count >= params.MinAttestorNum {
		k.clearReports(ctx, geodeID)
		k.deliverUnhealthy(ctx, geodeID, false)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGeodeReported,
			sdk.NewAttribute(types.AttributeKeyAttestorId, attestorID.String()),
			sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			sdk.NewAttribute(types.AttributeKeyCount, fmt.Sprintf("%d", count)),
		),
	)

	return nil
}

// AttestationCount tallies how many attestors vouch for a geode.
func (k Keeper) AttestationCount(ctx context.Context, geodeID sdk.AccAddress) uint32 {
	return k.countPrefix(ctx, AttestationGeodePrefix(geodeID))
}

func (k Keeper) reportCount(ctx context.Context, geodeID sdk.AccAddress) uint32 {
	return k.countPrefix(ctx, ReportGeodePrefix(geodeID))
}

func (k Keeper) countPrefix(ctx context.Context, prefix []byte) uint32 {
	store := k.getStore(ctx)
	iterator := store.Iterator(prefix, storetypes.PrefixEndBytes(prefix))
	defer iterator.Close()

	var count uint32
	for ; iterator.Valid(); iterator.Next() {
		count++
	}
	return count
}

func (k Keeper) clearReports(ctx context.Context, geodeID sdk.AccAddress) {
	store := k.getStore(ctx)
	prefix := ReportGeodePrefix(geodeID)

	var keys [][]byte
	iterator := store.Iterator(prefix, storetypes.PrefixEndBytes(prefix))
	for ; iterator.Valid(); iterator.Next() {
		keys = append(keys, append([]byte{}, iterator.Key()...))
	}
	iterator.Close()

	for _, key := range keys {
		store.Delete(key)
	}
}

// withdrawAttestations removes one attestor's rows for the given geodes.
// Geodes that drop below quorum get an unhealthy verdict with the
// attestor-down cause.
func (k Keeper) withdrawAttestations(ctx context.Context, attestorID sdk.AccAddress, geodes []string) {
	logger := k.Logger(ctx)
	store := k.getStore(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		logger.Error("failed to load params for attestation withdrawal", "error", err)
		return
	}

	for _, id := range geodes {
		geodeID, err := sdk.AccAddressFromBech32(id)
		if err != nil {
			logger.Error("attestor references invalid geode id", "geode_id", id)
			continue
		}

		before := k.AttestationCount(ctx, geodeID)
		store.Delete(AttestationKey(geodeID, attestorID))
		store.Delete(ReportKey(geodeID, attestorID))

		if before >= params.MinAttestorNum && before-1 < params.MinAttestorNum {
			k.deliverUnhealthy(ctx, geodeID, true)
		}
	}
}

// deliverHealthy hands a healthy verdict to the geode registry. Verdicts
// are best-effort: the geode may not be registered yet.
func (k Keeper) deliverHealthy(ctx context.Context, geodeID sdk.AccAddress) {
	if k.applicationKeeper == nil {
		return
	}
	k.metrics.QuorumVerdicts.WithLabelValues(verdictHealthy).Inc()
	if err := k.applicationKeeper.ApplicationHealthy(ctx, geodeID); err != nil {
		k.Logger(ctx).Info("healthy verdict not applied", "geode_id", geodeID.String(), "error", err)
	}
}

func (k Keeper) deliverUnhealthy(ctx context.Context, geodeID sdk.AccAddress, isAttestorDown bool) {
	if k.applicationKeeper == nil {
		return
	}
	k.metrics.QuorumVerdicts.WithLabelValues(verdictUnhealthy).Inc()
	if err := k.applicationKeeper.ApplicationUnhealthy(ctx, geodeID, isAttestorDown); err != nil {
		k.Logger(ctx).Info("unhealthy verdict not applied", "geode_id", geodeID.String(), "error", err)
	}
}

// IsAbnormalMode reports whether too few attestors exist for quorum
// verdicts to mean anything. New geodes register healthy in this mode.
func (k Keeper) IsAbnormalMode(ctx context.Context) bool {
	params, err := k.GetParams(ctx)
	if err != nil {
		return true
	}
	return k.CountAttestors(ctx) < params.MinAttestorNum
}

// CheckHealthy reports whether a geode currently has an attestation quorum.
func (k Keeper) CheckHealthy(ctx context.Context, geodeID sdk.AccAddress) bool {
	params, err := k.GetParams(ctx)
	if err != nil {
		return false
	}
	return k.AttestationCount(ctx, geodeID) >= params.MinAttestorNum
}
