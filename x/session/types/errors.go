package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Session module sentinel errors

var (
	ErrInvalidPhaseBlocks = sdkerrors.Register(ModuleName, 2, "invalid phase block configuration")
)
