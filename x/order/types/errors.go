package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Order module sentinel errors

var (
	// Submission validation errors
	ErrInvalidOrder      = sdkerrors.Register(ModuleName, 2, "invalid order")
	ErrInvalidDuration   = sdkerrors.Register(ModuleName, 3, "invalid order duration")
	ErrOrderIdDuplicated = sdkerrors.Register(ModuleName, 4, "order id already exists")

	// Authorization errors
	ErrInvalidOrderOwner = sdkerrors.Register(ModuleName, 10, "caller is not the order owner")

	// State-machine errors
	ErrInvalidService     = sdkerrors.Register(ModuleName, 20, "order service not found")
	ErrInvalidState       = sdkerrors.Register(ModuleName, 21, "invalid order state transition")
	ErrInternalLogic      = sdkerrors.Register(ModuleName, 22, "order aggregate produced an illegal transition")
	ErrOrderAlreadyDone   = sdkerrors.Register(ModuleName, 23, "order already done")
	ErrOrderNotCancelable = sdkerrors.Register(ModuleName, 24, "order cannot be canceled")

	// Escrow errors
	ErrEscrowFailed = sdkerrors.Register(ModuleName, 30, "order escrow transfer failed")
)
