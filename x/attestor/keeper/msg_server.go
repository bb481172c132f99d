package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/attestor/types"
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

// RegisterAttestor handles verifier registration
func (ms msgServer) RegisterAttestor(goCtx context.Context, msg *types.MsgRegisterAttestor) (*types.MsgRegisterAttestorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	attestorID, err := sdk.AccAddressFromBech32(msg.Attestor)
	if err != nil {
		return nil, types.ErrNonexistentAttestor.Wrapf("invalid attestor address: %v", err)
	}

	if err := ms.Keeper.RegisterAttestor(ctx, attestorID, msg.Url, msg.Pubkey); err != nil {
		return nil, err
	}

	return &types.MsgRegisterAttestorResponse{}, nil
}

// UpdateAttestor handles endpoint updates
func (ms msgServer) UpdateAttestor(goCtx context.Context, msg *types.MsgUpdateAttestor) (*types.MsgUpdateAttestorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	attestorID, err := sdk.AccAddressFromBech32(msg.Attestor)
	if err != nil {
		return nil, types.ErrNonexistentAttestor.Wrapf("invalid attestor address: %v", err)
	}

	if err := ms.Keeper.UpdateAttestor(ctx, attestorID, msg.Url); err != nil {
		return nil, err
	}

	return &types.MsgUpdateAttestorResponse{}, nil
}

// RemoveAttestor handles verifier deregistration
func (ms msgServer) RemoveAttestor(goCtx context.Context, msg *types.MsgRemoveAttestor) (*types.MsgRemoveAttestorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	attestorID, err := sdk.AccAddressFromBech32(msg.Attestor)
	if err != nil {
		return nil, types.ErrNonexistentAttestor.Wrapf("invalid attestor address: %v", err)
	}

	if err := ms.Keeper.RemoveAttestor(ctx, attestorID); err != nil {
		return nil, err
	}

	return &types.MsgRemoveAttestorResponse{}, nil
}

// AttestorHeartbeat handles liveness heartbeats
func (ms msgServer) AttestorHeartbeat(goCtx context.Context, msg *types.MsgAttestorHeartbeat) (*types.MsgAttestorHeartbeatResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	attestorID, err := sdk.AccAddressFromBech32(msg.Attestor)
	if err != nil {
		return nil, types.ErrNonexistentAttestor.Wrapf("invalid attestor address: %v", err)
	}

	if err := ms.Keeper.Heartbeat(ctx, attestorID); err != nil {
		return nil, err
	}

	return &types.MsgAttestorHeartbeatResponse{}, nil
}

// AttestGeode handles health attestations
func (ms msgServer) AttestGeode(goCtx context.Context, msg *types.MsgAttestGeode) (*types.MsgAttestGeodeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	attestorID, err := sdk.AccAddressFromBech32(msg.Attestor)
	if err != nil {
		return nil, types.ErrNonexistentAttestor.Wrapf("invalid attestor address: %v", err)
	}
	geodeID, err := sdk.AccAddressFromBech32(msg.GeodeId)
	if err != nil {
		return nil, types.ErrNotAttested.Wrapf("invalid geode address: %v", err)
	}

	if err := ms.Keeper.AttestGeode(ctx, attestorID, geodeID); err != nil {
		return nil, err
	}

	return &types.MsgAttestGeodeResponse{}, nil
}

// ReportGeode handles misbehavior reports
func (ms msgServer) ReportGeode(goCtx context.Context, msg *types.MsgReportGeode) (*types.MsgReportGeodeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	attestorID, err := sdk.AccAddressFromBech32(msg.Attestor)
	if err != nil {
		return nil, types.ErrNonexistentAttestor.Wrapf("invalid attestor address: %v", err)
	}
	geodeID, err := sdk.AccAddressFromBech32(msg.GeodeId)
	if err != nil {
		return nil, types.ErrNotAttested.Wrapf("invalid geode address: %v", err)
	}

	if err := ms.Keeper.ReportGeode(ctx, attestorID, geodeID); err != nil {
		return nil, err
	}

	return &types.MsgReportGeodeResponse{}, nil
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
