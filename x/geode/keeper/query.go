package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/geode/types"
)

// GetGeodesByState returns all geodes whose working state has a secondary
// index. Working and finalizing geodes are not indexed; use GetAllGeodes
// and filter for those.
func (k Keeper) GetGeodesByState(ctx context.Context, state types.GeodeState) ([]types.Geode, error) {
	prefix := geodeIndexPrefix(state)
	if prefix == nil {
		return nil, fmt.Errorf("state %q is not indexed", state)
	}

	var geodes []types.Geode
	err := k.IterateGeodeIndex(ctx, prefix, func(geodeID sdk.AccAddress) (bool, error) {
		geode, err := k.GetGeode(ctx, geodeID)
		if err != nil {
			return false, err
		}
		geodes = append(geodes, *geode)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return geodes, nil
}

// GetAllGeodes returns every registered geode.
func (k Keeper) GetAllGeodes(ctx context.Context) ([]types.Geode, error) {
	var geodes []types.Geode
	err := k.IterateGeodes(ctx, func(geode types.Geode) (bool, error) {
		geodes = append(geodes, geode)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return geodes, nil
}

// CountGeodesByState tallies geodes per working state.
func (k Keeper) CountGeodesByState(ctx context.Context) (map[types.GeodeState]int, error) {
	counts := map[types.GeodeState]int{}
	err := k.IterateGeodes(ctx, func(geode types.Geode) (bool, error) {
		counts[geode.Working.State]++
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
