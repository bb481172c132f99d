package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgUpdatePhaseBlocks = "update_phase_blocks"
)

var (
	_ sdk.Msg = &MsgUpdatePhaseBlocks{}
)

// MsgUpdatePhaseBlocks is a governance operation for resizing the session
// cycle's phase windows.
type MsgUpdatePhaseBlocks struct {
	Authority   string      `json:"authority"`
	PhaseBlocks PhaseBlocks `json:"phase_blocks"`
}

// MsgUpdatePhaseBlocksResponse is the update response.
type MsgUpdatePhaseBlocksResponse struct{}

func (msg *MsgUpdatePhaseBlocks) Reset() { *msg = MsgUpdatePhaseBlocks{} }
func (msg *MsgUpdatePhaseBlocks) String() string {
	return fmt.Sprintf("MsgUpdatePhaseBlocks{total=%d}", msg.PhaseBlocks.Total())
}
func (*MsgUpdatePhaseBlocks) ProtoMessage() {}

func (msg *MsgUpdatePhaseBlocksResponse) Reset()         { *msg = MsgUpdatePhaseBlocksResponse{} }
func (msg *MsgUpdatePhaseBlocksResponse) String() string { return "MsgUpdatePhaseBlocksResponse{}" }
func (*MsgUpdatePhaseBlocksResponse) ProtoMessage()      {}

// GetSigners returns the expected signers for MsgUpdatePhaseBlocks
func (msg *MsgUpdatePhaseBlocks) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgUpdatePhaseBlocks
func (msg *MsgUpdatePhaseBlocks) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	return Params{PhaseBlocks: msg.PhaseBlocks}.Validate()
}
