package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/geode/types"
)

// GetGeode retrieves a geode by id
func (k Keeper) GetGeode(ctx context.Context, geodeID sdk.AccAddress) (*types.Geode, error) {
	store := k.getStore(ctx)
	bz := store.Get(GeodeKey(geodeID))
	if bz == nil {
		return nil, types.ErrNonexistentGeode.Wrap(geodeID.String())
	}

	var geode types.Geode
	if err := json.Unmarshal(bz, &geode); err != nil {
		return nil, fmt.Errorf("GetGeode: unmarshal: %w", err)
	}

	return &geode, nil
}

// SetGeode stores a geode record
func (k Keeper) SetGeode(ctx context.Context, geode types.Geode) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(geode)
	if err != nil {
		return fmt.Errorf("SetGeode: marshal: %w", err)
	}

	geodeID, err := sdk.AccAddressFromBech32(geode.Id)
	if err != nil {
		return fmt.Errorf("SetGeode: invalid id: %w", err)
	}

	store.Set(GeodeKey(geodeID), bz)
	return nil
}

// HasGeode reports whether a geode exists
func (k Keeper) HasGeode(ctx context.Context, geodeID sdk.AccAddress) bool {
	return k.getStore(ctx).Has(GeodeKey(geodeID))
}

// IterateGeodes iterates over all geodes
func (k Keeper) IterateGeodes(ctx context.Context, cb func(geode types.Geode) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, GeodeKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var geode types.Geode
		if err := json.Unmarshal(iterator.Value(), &geode); err != nil {
			return err
		}

		stop, err := cb(geode)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}

// IterateGeodeIndex iterates the geode ids recorded under a state index
// prefix
func (k Keeper) IterateGeodeIndex(ctx context.Context, prefix []byte, cb func(geodeID sdk.AccAddress) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		geodeID := sdk.AccAddress(iterator.Key()[len(prefix):])
		stop, err := cb(geodeID)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}

	return nil
}

// mutateGeode is the index-symmetric write path for a geode: it applies the
// mutation, persists the record, and when the working-state discriminant
// changed, moves the geode's index row from the old state's index to the
// new one. All working-state changes must go through here.
func (k Keeper) mutateGeode(ctx context.Context, geode *types.Geode, mutate func(g *types.Geode)) error {
	geodeID, err := sdk.AccAddressFromBech32(geode.Id)
	if err != nil {
		return fmt.Errorf("mutateGeode: invalid id: %w", err)
	}

	oldState := geode.Working.State
	mutate(geode)

	if err := k.SetGeode(ctx, *geode); err != nil {
		return err
	}

	if geode.Working.State != oldState {
		store := k.getStore(ctx)
		if old := geodeIndexPrefix(oldState); old != nil {
			store.Delete(GeodeIndexKey(old, geodeID))
		}
		if next := geodeIndexPrefix(geode.Working.State); next != nil {
			store.Set(GeodeIndexKey(next, geodeID), []byte{})
		}
		k.metrics.StateTransitions.WithLabelValues(string(oldState), string(geode.Working.State)).Inc()
	}

	return nil
}

// deleteGeode removes a geode record together with its index row and any
// pending requests. Terminal cleanup for the Exiting state.
func (k Keeper) deleteGeode(ctx context.Context, geode types.Geode) error {
	geodeID, err := sdk.AccAddressFromBech32(geode.Id)
	if err != nil {
		return fmt.Errorf("deleteGeode: invalid id: %w", err)
	}

	store := k.getStore(ctx)
	if prefix := geodeIndexPrefix(geode.Working.State); prefix != nil {
		store.Delete(GeodeIndexKey(prefix, geodeID))
	}
	store.Delete(OfflineRequestKey(geodeID))
	store.Delete(FailRequestKey(geodeID))
	store.Delete(GeodeKey(geodeID))

	k.metrics.GeodesRegistered.Dec()
	return nil
}

// HasOfflineRequest reports whether the geode has a pending removal request
func (k Keeper) HasOfflineRequest(ctx context.Context, geodeID sdk.AccAddress) bool {
	return k.getStore(ctx).Has(OfflineRequestKey(geodeID))
}

// HasFailRequest reports whether the geode has a pending failure report
func (k Keeper) HasFailRequest(ctx context.Context, geodeID sdk.AccAddress) bool {
	return k.getStore(ctx).Has(FailRequestKey(geodeID))
}
