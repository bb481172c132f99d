package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Attestor module sentinel errors

var (
	// Registration errors
	ErrDuplicateAttestor   = sdkerrors.Register(ModuleName, 2, "attestor already registered")
	ErrNonexistentAttestor = sdkerrors.Register(ModuleName, 3, "attestor not found")
	ErrInsufficientStake   = sdkerrors.Register(ModuleName, 4, "balance below the minimum attestor stake")

	// Attestation errors
	ErrAlreadyAttested = sdkerrors.Register(ModuleName, 10, "attestor already attests this geode")
	ErrNotAttested     = sdkerrors.Register(ModuleName, 11, "attestor does not attest this geode")
	ErrAlreadyReported = sdkerrors.Register(ModuleName, 12, "attestor already reported this geode")
)
