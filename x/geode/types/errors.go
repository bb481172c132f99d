package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Geode module sentinel errors

var (
	// Registration errors
	ErrDuplicateGeodeId = sdkerrors.Register(ModuleName, 2, "geode id already registered")
	ErrNonexistentGeode = sdkerrors.Register(ModuleName, 3, "geode not found")

	// Authorization errors
	ErrNotOwner = sdkerrors.Register(ModuleName, 10, "caller is not the geode owner")

	// State-machine errors
	ErrNotPendingState    = sdkerrors.Register(ModuleName, 20, "geode is not in pending state")
	ErrNotWorkingState    = sdkerrors.Register(ModuleName, 21, "geode is not in working state")
	ErrNotFinalizingState = sdkerrors.Register(ModuleName, 22, "geode is not in finalizing state")
	ErrOrderIdNotMatch    = sdkerrors.Register(ModuleName, 23, "reported order id does not match the assigned order")
	ErrNotIdleState       = sdkerrors.Register(ModuleName, 24, "geode is not in idle state")

	// Self-report validation errors
	ErrInvalidNotification = sdkerrors.Register(ModuleName, 30, "unknown report type")
	ErrInvalidMessage      = sdkerrors.Register(ModuleName, 31, "malformed report message")
	ErrInvalidSignature    = sdkerrors.Register(ModuleName, 32, "report signature verification failed")
)
