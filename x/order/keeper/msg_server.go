package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/order/types"
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

// CreateOrder handles order submission
func (ms msgServer) CreateOrder(goCtx context.Context, msg *types.MsgCreateOrder) (*types.MsgCreateOrderResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrInvalidOrder.Wrapf("invalid requester address: %v", err)
	}

	orderID, err := ms.Keeper.CreateOrder(ctx, requester, msg.Binary, msg.Domain, msg.Name, msg.Price, msg.Num, msg.Duration)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateOrderResponse{OrderId: orderID}, nil
}

// CancelOrder handles order cancellation
func (ms msgServer) CancelOrder(goCtx context.Context, msg *types.MsgCancelOrder) (*types.MsgCancelOrderResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrInvalidOrder.Wrapf("invalid requester address: %v", err)
	}

	if err := ms.Keeper.CancelOrder(ctx, requester, msg.OrderId); err != nil {
		return nil, err
	}

	return &types.MsgCancelOrderResponse{}, nil
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
