package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgRegisterAttestor  = "register_attestor"
	TypeMsgUpdateAttestor    = "update_attestor"
	TypeMsgRemoveAttestor    = "remove_attestor"
	TypeMsgAttestorHeartbeat = "attestor_heartbeat"
	TypeMsgAttestGeode       = "attest_geode"
	TypeMsgReportGeode       = "report_geode"
	TypeMsgUpdateParams      = "update_params"
)

var (
	_ sdk.Msg = &MsgRegisterAttestor{}
	_ sdk.Msg = &MsgUpdateAttestor{}
	_ sdk.Msg = &MsgRemoveAttestor{}
	_ sdk.Msg = &MsgAttestorHeartbeat{}
	_ sdk.Msg = &MsgAttestGeode{}
	_ sdk.Msg = &MsgReportGeode{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgRegisterAttestor registers a new verifier. The account must hold at
// least the minimum stake.
type MsgRegisterAttestor struct {
	Attestor string `json:"attestor"`
	Url      string `json:"url"`
	Pubkey   []byte `json:"pubkey"`
}

// MsgRegisterAttestorResponse is the register response.
type MsgRegisterAttestorResponse struct{}

// MsgUpdateAttestor changes an attestor's endpoint url.
type MsgUpdateAttestor struct {
	Attestor string `json:"attestor"`
	Url      string `json:"url"`
}

// MsgUpdateAttestorResponse is the update response.
type MsgUpdateAttestorResponse struct{}

// MsgRemoveAttestor deregisters a verifier. Its attestations are withdrawn
// and affected geodes may drop below quorum.
type MsgRemoveAttestor struct {
	Attestor string `json:"attestor"`
}

// MsgRemoveAttestorResponse is the remove response.
type MsgRemoveAttestorResponse struct{}

// MsgAttestorHeartbeat proves the attestor is alive.
type MsgAttestorHeartbeat struct {
	Attestor string `json:"attestor"`
}

// MsgAttestorHeartbeatResponse is the heartbeat response.
type MsgAttestorHeartbeatResponse struct{}

// MsgAttestGeode vouches for a geode's health.
type MsgAttestGeode struct {
	Attestor string `json:"attestor"`
	GeodeId  string `json:"geode_id"`
}

// MsgAttestGeodeResponse is the attest response.
type MsgAttestGeodeResponse struct{}

// MsgReportGeode reports a geode as misbehaving or unreachable. Enough
// co-signing reports flip the geode unhealthy.
type MsgReportGeode struct {
	Attestor string `json:"attestor"`
	GeodeId  string `json:"geode_id"`
}

// MsgReportGeodeResponse is the report response.
type MsgReportGeodeResponse struct{}

// MsgUpdateParams is a governance operation for updating the attestor
// module parameters.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateParamsResponse is the update params response.
type MsgUpdateParamsResponse struct{}

func (msg *MsgRegisterAttestor) Reset() { *msg = MsgRegisterAttestor{} }
func (msg *MsgRegisterAttestor) String() string {
	return fmt.Sprintf("MsgRegisterAttestor{%s %s}", msg.Attestor, msg.Url)
}
func (*MsgRegisterAttestor) ProtoMessage() {}

func (msg *MsgRegisterAttestorResponse) Reset()         { *msg = MsgRegisterAttestorResponse{} }
func (msg *MsgRegisterAttestorResponse) String() string { return "MsgRegisterAttestorResponse{}" }
func (*MsgRegisterAttestorResponse) ProtoMessage()      {}

func (msg *MsgUpdateAttestor) Reset() { *msg = MsgUpdateAttestor{} }
func (msg *MsgUpdateAttestor) String() string {
	return fmt.Sprintf("MsgUpdateAttestor{%s %s}", msg.Attestor, msg.Url)
}
func (*MsgUpdateAttestor) ProtoMessage() {}

func (msg *MsgUpdateAttestorResponse) Reset()         { *msg = MsgUpdateAttestorResponse{} }
func (msg *MsgUpdateAttestorResponse) String() string { return "MsgUpdateAttestorResponse{}" }
func (*MsgUpdateAttestorResponse) ProtoMessage()      {}

func (msg *MsgRemoveAttestor) Reset() { *msg = MsgRemoveAttestor{} }
func (msg *MsgRemoveAttestor) String() string {
	return fmt.Sprintf("MsgRemoveAttestor{%s}", msg.Attestor)
}
func (*MsgRemoveAttestor) ProtoMessage() {}

func (msg *MsgRemoveAttestorResponse) Reset()         { *msg = MsgRemoveAttestorResponse{} }
func (msg *MsgRemoveAttestorResponse) String() string { return "MsgRemoveAttestorResponse{}" }
func (*MsgRemoveAttestorResponse) ProtoMessage()      {}

func (msg *MsgAttestorHeartbeat) Reset() { *msg = MsgAttestorHeartbeat{} }
func (msg *MsgAttestorHeartbeat) String() string {
	return fmt.Sprintf("MsgAttestorHeartbeat{%s}", msg.Attestor)
}
func (*MsgAttestorHeartbeat) ProtoMessage() {}

func (msg *MsgAttestorHeartbeatResponse) Reset()         { *msg = MsgAttestorHeartbeatResponse{} }
func (msg *MsgAttestorHeartbeatResponse) String() string { return "MsgAttestorHeartbeatResponse{}" }
func (*MsgAttestorHeartbeatResponse) ProtoMessage()      {}

func (msg *MsgAttestGeode) Reset() { *msg = MsgAttestGeode{} }
func (msg *MsgAttestGeode) String() string {
	return fmt.Sprintf("MsgAttestGeode{%s %s}", msg.Attestor, msg.GeodeId)
}
func (*MsgAttestGeode) ProtoMessage() {}

func (msg *MsgAttestGeodeResponse) Reset()         { *msg = MsgAttestGeodeResponse{} }
func (msg *MsgAttestGeodeResponse) String() string { return "MsgAttestGeodeResponse{}" }
func (*MsgAttestGeodeResponse) ProtoMessage()      {}

func (msg *MsgReportGeode) Reset() { *msg = MsgReportGeode{} }
func (msg *MsgReportGeode) String() string {
	return fmt.Sprintf("MsgReportGeode{%s %s}", msg.Attestor, msg.GeodeId)
}
func (*MsgReportGeode) ProtoMessage() {}

func (msg *MsgReportGeodeResponse) Reset()         { *msg = MsgReportGeodeResponse{} }
func (msg *MsgReportGeodeResponse) String() string { return "MsgReportGeodeResponse{}" }
func (*MsgReportGeodeResponse) ProtoMessage()      {}

func (msg *MsgUpdateParams) Reset() { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string {
	return fmt.Sprintf("MsgUpdateParams{%s}", msg.Authority)
}
func (*MsgUpdateParams) ProtoMessage() {}

func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) String() string { return "MsgUpdateParamsResponse{}" }
func (*MsgUpdateParamsResponse) ProtoMessage()      {}

// GetSigners implementations - these assume addresses are valid (validated in ValidateBasic)

// GetSigners returns the expected signers for MsgRegisterAttestor
func (msg *MsgRegisterAttestor) GetSigners() []sdk.AccAddress {
	attestor, _ := sdk.AccAddressFromBech32(msg.Attestor)
	return []sdk.AccAddress{attestor}
}

// GetSigners returns the expected signers for MsgUpdateAttestor
func (msg *MsgUpdateAttestor) GetSigners() []sdk.AccAddress {
	attestor, _ := sdk.AccAddressFromBech32(msg.Attestor)
	return []sdk.AccAddress{attestor}
}

// GetSigners returns the expected signers for MsgRemoveAttestor
func (msg *MsgRemoveAttestor) GetSigners() []sdk.AccAddress {
	attestor, _ := sdk.AccAddressFromBech32(msg.Attestor)
	return []sdk.AccAddress{attestor}
}

// GetSigners returns the expected signers for MsgAttestorHeartbeat
func (msg *MsgAttestorHeartbeat) GetSigners() []sdk.AccAddress {
	attestor, _ := sdk.AccAddressFromBech32(msg.Attestor)
	return []sdk.AccAddress{attestor}
}

// GetSigners returns the expected signers for MsgAttestGeode
func (msg *MsgAttestGeode) GetSigners() []sdk.AccAddress {
	attestor, _ := sdk.AccAddressFromBech32(msg.Attestor)
	return []sdk.AccAddress{attestor}
}

// GetSigners returns the expected signers for MsgReportGeode
func (msg *MsgReportGeode) GetSigners() []sdk.AccAddress {
	attestor, _ := sdk.AccAddressFromBech32(msg.Attestor)
	return []sdk.AccAddress{attestor}
}

// GetSigners returns the expected signers for MsgUpdateParams
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgRegisterAttestor
func (msg *MsgRegisterAttestor) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Attestor); err != nil {
		return fmt.Errorf("invalid attestor address: %w", err)
	}
	if msg.Url == "" {
		return fmt.Errorf("url cannot be empty")
	}
	if len(msg.Pubkey) == 0 {
		return fmt.Errorf("pubkey cannot be empty")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgUpdateAttestor
func (msg *MsgUpdateAttestor) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Attestor); err != nil {
		return fmt.Errorf("invalid attestor address: %w", err)
	}
	if msg.Url == "" {
		return fmt.Errorf("url cannot be empty")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgRemoveAttestor
func (msg *MsgRemoveAttestor) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Attestor); err != nil {
		return fmt.Errorf("invalid attestor address: %w", err)
	}
	return nil
}

// ValidateBasic performs basic validation of MsgAttestorHeartbeat
func (msg *MsgAttestorHeartbeat) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Attestor); err != nil {
		return fmt.Errorf("invalid attestor address: %w", err)
	}
	return nil
}

// ValidateBasic performs basic validation of MsgAttestGeode
func (msg *MsgAttestGeode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Attestor); err != nil {
		return fmt.Errorf("invalid attestor address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.GeodeId); err != nil {
		return fmt.Errorf("invalid geode address: %w", err)
	}
	return nil
}

// ValidateBasic performs basic validation of MsgReportGeode
func (msg *MsgReportGeode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Attestor); err != nil {
		return fmt.Errorf("invalid attestor address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.GeodeId); err != nil {
		return fmt.Errorf("invalid geode address: %w", err)
	}
	return nil
}

// ValidateBasic performs basic validation of MsgUpdateParams
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	return msg.Params.Validate()
}
