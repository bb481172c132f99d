package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/attestor/types"
)

// GetAttestor retrieves an attestor record by address
func (k Keeper) GetAttestor(ctx context.Context, attestorID sdk.AccAddress) (*types.Attestor, error) {
	store := k.getStore(ctx)
	bz := store.Get(AttestorKey(attestorID))
	if bz == nil {
		return nil, types.ErrNonexistentAttestor.Wrap(attestorID.String())
	}

	var attestor types.Attestor
	if err := json.Unmarshal(bz, &attestor); err != nil {
		return nil, fmt.Errorf("GetAttestor: unmarshal %s: %w", attestorID, err)
	}
	return &attestor, nil
}

// SetAttestor stores an attestor record
func (k Keeper) SetAttestor(ctx context.Context, attestor types.Attestor) error {
	attestorID, err := sdk.AccAddressFromBech32(attestor.Id)
	if err != nil {
		return fmt.Errorf("SetAttestor: invalid id %s: %w", attestor.Id, err)
	}

	bz, err := json.Marshal(attestor)
	if err != nil {
		return fmt.Errorf("SetAttestor: marshal %s: %w", attestor.Id, err)
	}

	store := k.getStore(ctx)
	store.Set(AttestorKey(attestorID), bz)
	return nil
}

// HasAttestor reports whether an attestor record exists
func (k Keeper) HasAttestor(ctx context.Context, attestorID sdk.AccAddress) bool {
	return k.getStore(ctx).Has(AttestorKey(attestorID))
}

// IterateAttestors visits every attestor record
func (k Keeper) IterateAttestors(ctx context.Context, cb func(attestor types.Attestor) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := store.Iterator(AttestorKeyPrefix, storetypes.PrefixEndBytes(AttestorKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var attestor types.Attestor
		if err := json.Unmarshal(iterator.Value(), &attestor); err != nil {
			return fmt.Errorf("IterateAttestors: unmarshal: %w", err)
		}
		stop, err := cb(attestor)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}
	return nil
}

// CountAttestors tallies the registered attestors.
func (k Keeper) CountAttestors(ctx context.Context) uint32 {
	var count uint32
	_ = k.IterateAttestors(ctx, func(types.Attestor) (bool, error) {
		count++
		return false, nil
	})
	return count
}

// RegisterAttestor registers a new verifier. The account must hold at least
// the minimum stake; the stake stays liquid, registration only checks it.
func (k Keeper) RegisterAttestor(ctx context.Context, attestorID sdk.AccAddress, url string, pubkey []byte) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if k.HasAttestor(ctx, attestorID) {
		return types.ErrDuplicateAttestor.Wrap(attestorID.String())
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	balance := k.bankKeeper.SpendableCoins(ctx, attestorID).AmountOf(params.StakeDenom)
	if balance.LT(params.MinStake) {
		return types.ErrInsufficientStake.Wrapf("have %s%s, need %s%s",
			balance, params.StakeDenom, params.MinStake, params.StakeDenom)
	}

	attestor := types.Attestor{
		Id:            attestorID.String(),
		Url:           url,
		Pubkey:        pubkey,
		LastHeartbeat: sdkCtx.BlockHeight(),
		Geodes:        []string{},
	}
	if err := k.SetAttestor(ctx, attestor); err != nil {
		return err
	}

	k.metrics.AttestorsRegistered.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAttestorRegistered,
			sdk.NewAttribute(types.AttributeKeyAttestorId, attestorID.String()),
			sdk.NewAttribute(types.AttributeKeyUrl, url),
		),
	)

	return nil
}

// UpdateAttestor changes an attestor's endpoint url.
func (k Keeper) UpdateAttestor(ctx context.Context, attestorID sdk.AccAddress, url string) error {
	attestor, err := k.GetAttestor(ctx, attestorID)
	if err != nil {
		return err
	}

	attestor.Url = url
	if err := k.SetAttestor(ctx, *attestor); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAttestorUpdated,
			sdk.NewAttribute(types.AttributeKeyAttestorId, attestorID.String()),
			sdk.NewAttribute(types.AttributeKeyUrl, url),
		),
	)

	return nil
}

// RemoveAttestor deregisters a verifier and withdraws all its attestations.
// Geodes that drop below quorum are flagged unhealthy with the
// attestor-down cause.
func (k Keeper) RemoveAttestor(ctx context.Context, attestorID sdk.AccAddress) error {
	attestor, err := k.GetAttestor(ctx, attestorID)
	if err != nil {
		return err
	}

	k.withdrawAttestations(ctx, attestorID, attestor.Geodes)

	store := k.getStore(ctx)
	store.Delete(AttestorKey(attestorID))

	k.metrics.AttestorsRegistered.Dec()

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAttestorRemoved,
			sdk.NewAttribute(types.AttributeKeyAttestorId, attestorID.String()),
		),
	)

	return nil
}

// Heartbeat stamps the attestor's liveness at the current height.
func (k Keeper) Heartbeat(ctx context.Context, attestorID sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	attestor, err := k.GetAttestor(ctx, attestorID)
	if err != nil {
		return err
	}

	attestor.LastHeartbeat = sdkCtx.BlockHeight()
	if err := k.SetAttestor(ctx, *attestor); err != nil {
		return err
	}

	k.metrics.Heartbeats.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAttestorHeartbeat,
			sdk.NewAttribute(types.AttributeKeyAttestorId, attestorID.String()),
			sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", attestor.LastHeartbeat)),
		),
	)

	return nil
}
