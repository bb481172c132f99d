package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/session/types"
	sharedkeeper "github.com/geodenet/geodenet/x/shared/keeper"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// UpdatePhaseBlocks handles phase window updates from the governance authority
func (ms msgServer) UpdatePhaseBlocks(goCtx context.Context, msg *types.MsgUpdatePhaseBlocks) (*types.MsgUpdatePhaseBlocksResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetParams(ctx, types.Params{PhaseBlocks: msg.PhaseBlocks}); err != nil {
		return nil, types.ErrInvalidPhaseBlocks.Wrap(err.Error())
	}

	return &types.MsgUpdatePhaseBlocksResponse{}, nil
}
