package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/attestor/types"
)

// InitGenesis initializes the attestor module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	store := k.getStore(ctx)
	for _, attestor := range data.Attestors {
		attestorID, err := sdk.AccAddressFromBech32(attestor.Id)
		if err != nil {
			return fmt.Errorf("invalid attestor id %s: %w", attestor.Id, err)
		}

		if err := k.SetAttestor(ctx, attestor); err != nil {
			return fmt.Errorf("failed to initialize attestor %s: %w", attestor.Id, err)
		}

		for _, id := range attestor.Geodes {
			geodeID, err := sdk.AccAddressFromBech32(id)
			if err != nil {
				return fmt.Errorf("attestor %s attests invalid geode id %s: %w", attestor.Id, id, err)
			}
			store.Set(AttestationKey(geodeID, attestorID), []byte{})
		}

		k.metrics.AttestorsRegistered.Inc()
	}

	return nil
}

// ExportGenesis exports the attestor module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	genesis := types.GenesisState{
		Params:    params,
		Attestors: []types.Attestor{},
	}

	err = k.IterateAttestors(ctx, func(attestor types.Attestor) (bool, error) {
		genesis.Attestors = append(genesis.Attestors, attestor)
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export attestors: %w", err)
	}

	return &genesis, nil
}
