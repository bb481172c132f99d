package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/geode/types"
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

// RegisterGeode handles node registration
func (ms msgServer) RegisterGeode(goCtx context.Context, msg *types.MsgRegisterGeode) (*types.MsgRegisterGeodeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrNotOwner.Wrapf("invalid provider address: %v", err)
	}
	geodeID, err := sdk.AccAddressFromBech32(msg.GeodeId)
	if err != nil {
		return nil, types.ErrNonexistentGeode.Wrapf("invalid geode address: %v", err)
	}

	if err := ms.Keeper.RegisterGeode(ctx, provider, geodeID, msg.Ip, msg.Domain, msg.Props); err != nil {
		return nil, err
	}

	return &types.MsgRegisterGeodeResponse{}, nil
}

// RemoveGeode handles node removal requests
func (ms msgServer) RemoveGeode(goCtx context.Context, msg *types.MsgRemoveGeode) (*types.MsgRemoveGeodeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrNotOwner.Wrapf("invalid provider address: %v", err)
	}
	geodeID, err := sdk.AccAddressFromBech32(msg.GeodeId)
	if err != nil {
		return nil, types.ErrNonexistentGeode.Wrapf("invalid geode address: %v", err)
	}

	if err := ms.Keeper.RemoveGeode(ctx, provider, geodeID); err != nil {
		return nil, err
	}

	return &types.MsgRemoveGeodeResponse{}, nil
}

// UpdateGeodeProps handles property updates
func (ms msgServer) UpdateGeodeProps(goCtx context.Context, msg *types.MsgUpdateGeodeProps) (*types.MsgUpdateGeodePropsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrNotOwner.Wrapf("invalid provider address: %v", err)
	}
	geodeID, err := sdk.AccAddressFromBech32(msg.GeodeId)
	if err != nil {
		return nil, types.ErrNonexistentGeode.Wrapf("invalid geode address: %v", err)
	}

	if err := ms.Keeper.UpdateGeodeProps(ctx, provider, geodeID, msg.Key, msg.Value); err != nil {
		return nil, err
	}

	return &types.MsgUpdateGeodePropsResponse{}, nil
}

// UpdateGeodeDomain handles domain updates
func (ms msgServer) UpdateGeodeDomain(goCtx context.Context, msg *types.MsgUpdateGeodeDomain) (*types.MsgUpdateGeodeDomainResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrNotOwner.Wrapf("invalid provider address: %v", err)
	}
	geodeID, err := sdk.AccAddressFromBech32(msg.GeodeId)
	if err != nil {
		return nil, types.ErrNonexistentGeode.Wrapf("invalid geode address: %v", err)
	}

	if err := ms.Keeper.UpdateGeodeDomain(ctx, provider, geodeID, msg.Domain); err != nil {
		return nil, err
	}

	return &types.MsgUpdateGeodeDomainResponse{}, nil
}

// GeodeReady handles the node's ready confirmation, signed as a tx by the
// node account itself
func (ms msgServer) GeodeReady(goCtx context.Context, msg *types.MsgGeodeReady) (*types.MsgGeodeReadyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	geodeID, err := sdk.AccAddressFromBech32(msg.GeodeId)
	if err != nil {
		return nil, types.ErrNonexistentGeode.Wrapf("invalid geode address: %v", err)
	}

	if err := ms.Keeper.GeodeReady(ctx, geodeID, msg.OrderId); err != nil {
		return nil, err
	}

	return &types.MsgGeodeReadyResponse{}, nil
}

// GeodeFinalizing handles the node's teardown-started signal
func (ms msgServer) GeodeFinalizing(goCtx context.Context, msg *types.MsgGeodeFinalizing) (*types.MsgGeodeFinalizingResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	geodeID, err := sdk.AccAddressFromBech32(msg.GeodeId)
	if err != nil {
		return nil, types.ErrNonexistentGeode.Wrapf("invalid geode address: %v", err)
	}

	if err := ms.Keeper.GeodeFinalizing(ctx, geodeID, msg.OrderId); err != nil {
		return nil, err
	}

	return &types.MsgGeodeFinalizingResponse{}, nil
}

// GeodeFinalized handles the node's teardown-complete signal
func (ms msgServer) GeodeFinalized(goCtx context.Context, msg *types.MsgGeodeFinalized) (*types.MsgGeodeFinalizedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	geodeID, err := sdk.AccAddressFromBech32(msg.GeodeId)
	if err != nil {
		return nil, types.ErrNonexistentGeode.Wrapf("invalid geode address: %v", err)
	}

	if err := ms.Keeper.GeodeFinalized(ctx, geodeID, msg.OrderId); err != nil {
		return nil, err
	}

	return &types.MsgGeodeFinalizedResponse{}, nil
}

// GeodeInitializeFailed records a startup failure for the offline phase
func (ms msgServer) GeodeInitializeFailed(goCtx context.Context, msg *types.MsgGeodeInitializeFailed) (*types.MsgGeodeInitializeFailedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	geodeID, err := sdk.AccAddressFromBech32(msg.GeodeId)
	if err != nil {
		return nil, types.ErrNonexistentGeode.Wrapf("invalid geode address: %v", err)
	}

	if err := ms.Keeper.GeodeInitializeFailed(ctx, geodeID, msg.OrderId); err != nil {
		return nil, err
	}

	return &types.MsgGeodeInitializeFailedResponse{}, nil
}

// GeodeFinalizeFailed records a teardown failure for the offline phase
func (ms msgServer) GeodeFinalizeFailed(goCtx context.Context, msg *types.MsgGeodeFinalizeFailed) (*types.MsgGeodeFinalizeFailedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	geodeID, err := sdk.AccAddressFromBech32(msg.GeodeId)
	if err != nil {
		return nil, types.ErrNonexistentGeode.Wrapf("invalid geode address: %v", err)
	}

	if err := ms.Keeper.GeodeFinalizeFailed(ctx, geodeID, msg.OrderId); err != nil {
		return nil, err
	}

	return &types.MsgGeodeFinalizeFailedResponse{}, nil
}

// SubmitGeodeReport handles a relayed, node-signed report
func (ms msgServer) SubmitGeodeReport(goCtx context.Context, msg *types.MsgSubmitGeodeReport) (*types.MsgSubmitGeodeReportResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SubmitGeodeReport(ctx, msg.ReportType, msg.Message, msg.Signature); err != nil {
		return nil, err
	}

	return &types.MsgSubmitGeodeReportResponse{}, nil
}

// UpdateParams handles parameter updates from the governance authority
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := sharedkeeper.ValidateAuthority(ms.authority, msg.Authority); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
