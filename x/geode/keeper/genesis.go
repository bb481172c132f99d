package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/geode/types"
)

// InitGenesis initializes the geode module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	store := k.getStore(ctx)
	for _, geode := range data.Geodes {
		geodeID, err := sdk.AccAddressFromBech32(geode.Id)
		if err != nil {
			return fmt.Errorf("invalid geode id %s: %w", geode.Id, err)
		}

		if err := k.SetGeode(ctx, geode); err != nil {
			return fmt.Errorf("failed to initialize geode %s: %w", geode.Id, err)
		}
		if prefix := geodeIndexPrefix(geode.Working.State); prefix != nil {
			store.Set(GeodeIndexKey(prefix, geodeID), []byte{})
		}

		k.metrics.GeodesRegistered.Inc()
	}

	return nil
}

// ExportGenesis exports the geode module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	genesis := types.GenesisState{
		Params: params,
		Geodes: []types.Geode{},
	}

	err = k.IterateGeodes(ctx, func(geode types.Geode) (bool, error) {
		genesis.Geodes = append(genesis.Geodes, geode)
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export geodes: %w", err)
	}

	return &genesis, nil
}
