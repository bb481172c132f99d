package types

import (
	"context"
)

// MsgServer is the server API for the session Msg service.
type MsgServer interface {
	// UpdatePhaseBlocks resizes the session cycle's phase windows.
	// Authority-gated.
	UpdatePhaseBlocks(ctx context.Context, msg *MsgUpdatePhaseBlocks) (*MsgUpdatePhaseBlocksResponse, error)
}
