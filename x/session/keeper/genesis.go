package keeper

import (
	"context"
	"fmt"

	"github.com/geodenet/geodenet/x/session/types"
)

// InitGenesis initializes the session module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	k.setSessionIndex(ctx, data.SessionIndex)
	k.metrics.SessionIndex.Set(float64(data.SessionIndex))

	return nil
}

// ExportGenesis exports the session module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	return &types.GenesisState{
		Params:       params,
		SessionIndex: k.GetSessionIndex(ctx),
	}, nil
}
