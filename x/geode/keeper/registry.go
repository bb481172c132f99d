package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/geode/types"
)

// RegisterGeode registers a new compute node. A record may be re-created
// once an earlier incarnation fully exited; health is re-seeded from the
// attestor registry rather than carried over.
func (k Keeper) RegisterGeode(ctx context.Context, provider, geodeID sdk.AccAddress, ip, domain string, props map[string]string) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if k.HasGeode(ctx, geodeID) {
		return types.ErrDuplicateGeodeId.Wrap(geodeID.String())
	}

	geode := types.Geode{
		Id:       geodeID.String(),
		Provider: provider.String(),
		Ip:       ip,
		Domain:   domain,
		Props:    props,
		Healthy:  k.seedHealthyState(ctx, geodeID),
		Working:  types.WorkingState{State: types.GeodeStateIdle},
	}

	if err := k.SetGeode(ctx, geode); err != nil {
		return err
	}

	store := k.getStore(ctx)
	store.Set(GeodeIndexKey(IdleGeodePrefix, geodeID), []byte{})

	k.metrics.GeodesRegistered.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGeodeRegistered,
			sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyDomain, domain),
		),
	)

	return nil
}

// seedHealthyState asks the attestor registry for the node's current
// verdict. With no attestor registry wired, or with too few attestors for
// verdicts to mean anything, new nodes start healthy.
func (k Keeper) seedHealthyState(ctx context.Context, geodeID sdk.AccAddress) types.HealthyState {
	if k.attestorKeeper == nil || k.attestorKeeper.IsAbnormalMode(ctx) {
		return types.HealthyStateHealthy
	}
	if k.attestorKeeper.CheckHealthy(ctx, geodeID) {
		return types.HealthyStateHealthy
	}
	return types.HealthyStateUnhealthy
}

// RemoveGeode requests removal of a node. An idle node transitions straight
// to Exiting; a busy one gets an offline request and keeps serving its
// current order until the next offline phase honors it.
func (k Keeper) RemoveGeode(ctx context.Context, provider, geodeID sdk.AccAddress) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	geode, err := k.GetGeode(ctx, geodeID)
	if err != nil {
		return err
	}
	if geode.Provider != provider.String() {
		return types.ErrNotOwner.Wrapf("geode %s is not owned by %s", geodeID, provider)
	}

	if geode.Working.State == types.GeodeStateIdle {
		if err := k.mutateGeode(ctx, geode, func(g *types.Geode) {
			g.Working = types.WorkingState{State: types.GeodeStateExiting}
		}); err != nil {
			return err
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeGeodeExiting,
				sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			),
		)
		return nil
	}

	store := k.getStore(ctx)
	store.Set(OfflineRequestKey(geodeID), []byte{})

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOfflineRequested,
			sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			sdk.NewAttribute(types.AttributeKeyState, string(geode.Working.State)),
		),
	)

	return nil
}

// UpdateGeodeProps sets one property of a node. Owner-only.
func (k Keeper) UpdateGeodeProps(ctx context.Context, provider, geodeID sdk.AccAddress, key, value string) error {
	geode, err := k.GetGeode(ctx, geodeID)
	if err != nil {
		return err
	}
	if geode.Provider != provider.String() {
		return types.ErrNotOwner.Wrapf("geode %s is not owned by %s", geodeID, provider)
	}

	if geode.Props == nil {
		geode.Props = make(map[string]string)
	}
	geode.Props[key] = value
	if err := k.SetGeode(ctx, *geode); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGeodeUpdated,
			sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
		),
	)

	return nil
}

// UpdateGeodeDomain changes the domain a node serves. Owner-only.
func (k Keeper) UpdateGeodeDomain(ctx context.Context, provider, geodeID sdk.AccAddress, domain string) error {
	geode, err := k.GetGeode(ctx, geodeID)
	if err != nil {
		return err
	}
	if geode.Provider != provider.String() {
		return types.ErrNotOwner.Wrapf("geode %s is not owned by %s", geodeID, provider)
	}

	geode.Domain = domain
	if err := k.SetGeode(ctx, *geode); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGeodeUpdated,
			sdk.NewAttribute(types.AttributeKeyGeodeId, geodeID.String()),
			sdk.NewAttribute(types.AttributeKeyDomain, domain),
		),
	)

	return nil
}
