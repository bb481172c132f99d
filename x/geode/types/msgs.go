package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgRegisterGeode         = "register_geode"
	TypeMsgRemoveGeode           = "remove_geode"
	TypeMsgUpdateGeodeProps      = "update_geode_props"
	TypeMsgUpdateGeodeDomain     = "update_geode_domain"
	TypeMsgGeodeReady            = "geode_ready"
	TypeMsgGeodeFinalizing       = "geode_finalizing"
	TypeMsgGeodeFinalized        = "geode_finalized"
	TypeMsgGeodeInitializeFailed = "geode_initialize_failed"
	TypeMsgGeodeFinalizeFailed   = "geode_finalize_failed"
	TypeMsgSubmitGeodeReport     = "submit_geode_report"
	TypeMsgUpdateParams          = "update_params"
)

// Report types carried by MsgSubmitGeodeReport.
const (
	ReportTypeReady            = "ready"
	ReportTypeFinalizing       = "finalizing"
	ReportTypeFinalized        = "finalized"
	ReportTypeInitializeFailed = "initialize_failed"
	ReportTypeFinalizeFailed   = "finalize_failed"
)

// ReportMessageLength is the exact length of a signed report message:
// a 32-byte ed25519 public key followed by the 32-byte raw order id.
const ReportMessageLength = 64

var (
	_ sdk.Msg = &MsgRegisterGeode{}
	_ sdk.Msg = &MsgRemoveGeode{}
	_ sdk.Msg = &MsgUpdateGeodeProps{}
	_ sdk.Msg = &MsgUpdateGeodeDomain{}
	_ sdk.Msg = &MsgGeodeReady{}
	_ sdk.Msg = &MsgGeodeFinalizing{}
	_ sdk.Msg = &MsgGeodeFinalized{}
	_ sdk.Msg = &MsgGeodeInitializeFailed{}
	_ sdk.Msg = &MsgGeodeFinalizeFailed{}
	_ sdk.Msg = &MsgSubmitGeodeReport{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgRegisterGeode registers a new compute node under a provider.
type MsgRegisterGeode struct {
	Provider string            `json:"provider"`
	GeodeId  string            `json:"geode_id"`
	Ip       string            `json:"ip"`
	Domain   string            `json:"domain"`
	Props    map[string]string `json:"props,omitempty"`
}

// MsgRegisterGeodeResponse is the register response.
type MsgRegisterGeodeResponse struct{}

// MsgRemoveGeode requests removal of a node. An idle node exits
// immediately; a busy one keeps serving until the next offline phase.
type MsgRemoveGeode struct {
	Provider string `json:"provider"`
	GeodeId  string `json:"geode_id"`
}

// MsgRemoveGeodeResponse is the remove response.
type MsgRemoveGeodeResponse struct{}

// MsgUpdateGeodeProps sets one property of a node.
type MsgUpdateGeodeProps struct {
	Provider string `json:"provider"`
	GeodeId  string `json:"geode_id"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}

// MsgUpdateGeodePropsResponse is the props update response.
type MsgUpdateGeodePropsResponse struct{}

// MsgUpdateGeodeDomain changes the domain a node serves.
type MsgUpdateGeodeDomain struct {
	Provider string `json:"provider"`
	GeodeId  string `json:"geode_id"`
	Domain   string `json:"domain"`
}

// MsgUpdateGeodeDomainResponse is the domain update response.
type MsgUpdateGeodeDomainResponse struct{}

// MsgGeodeReady is the node's confirmation that its assigned order is
// running.
type MsgGeodeReady struct {
	GeodeId string `json:"geode_id"`
	OrderId string `json:"order_id"`
}

// MsgGeodeReadyResponse is the ready response.
type MsgGeodeReadyResponse struct{}

// MsgGeodeFinalizing is the node's signal that it started wrapping up.
type MsgGeodeFinalizing struct {
	GeodeId string `json:"geode_id"`
	OrderId string `json:"order_id"`
}

// MsgGeodeFinalizingResponse is the finalizing response.
type MsgGeodeFinalizingResponse struct{}

// MsgGeodeFinalized is the node's signal that its order finished.
type MsgGeodeFinalized struct {
	GeodeId string `json:"geode_id"`
	OrderId string `json:"order_id"`
}

// MsgGeodeFinalizedResponse is the finalized response.
type MsgGeodeFinalizedResponse struct{}

// MsgGeodeInitializeFailed records an asynchronous startup failure. No
// state changes until the next offline phase honors the request.
type MsgGeodeInitializeFailed struct {
	GeodeId string `json:"geode_id"`
	OrderId string `json:"order_id"`
}

// MsgGeodeInitializeFailedResponse is the initialize-failed response.
type MsgGeodeInitializeFailedResponse struct{}

// MsgGeodeFinalizeFailed records an asynchronous teardown failure.
type MsgGeodeFinalizeFailed struct {
	GeodeId string `json:"geode_id"`
	OrderId string `json:"order_id"`
}

// MsgGeodeFinalizeFailedResponse is the finalize-failed response.
type MsgGeodeFinalizeFailedResponse struct{}

// MsgSubmitGeodeReport carries a self-report signed by the node key rather
// than by the transaction signer, for off-chain submission relays. Message
// layout: 32-byte ed25519 public key ++ 32-byte raw order id.
type MsgSubmitGeodeReport struct {
	Submitter  string `json:"submitter"`
	ReportType string `json:"report_type"`
	Message    []byte `json:"message"`
	Signature  []byte `json:"signature"`
}

// MsgSubmitGeodeReportResponse is the signed-report response.
type MsgSubmitGeodeReportResponse struct{}

// MsgUpdateParams is a governance operation for updating the geode module
// parameters.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateParamsResponse is the update params response.
type MsgUpdateParamsResponse struct{}

func (msg *MsgRegisterGeode) Reset()         { *msg = MsgRegisterGeode{} }
func (msg *MsgRegisterGeode) String() string { return fmt.Sprintf("MsgRegisterGeode{%s}", msg.GeodeId) }
func (*MsgRegisterGeode) ProtoMessage()      {}

func (msg *MsgRegisterGeodeResponse) Reset()         { *msg = MsgRegisterGeodeResponse{} }
func (msg *MsgRegisterGeodeResponse) String() string { return "MsgRegisterGeodeResponse{}" }
func (*MsgRegisterGeodeResponse) ProtoMessage()      {}

func (msg *MsgRemoveGeode) Reset()         { *msg = MsgRemoveGeode{} }
func (msg *MsgRemoveGeode) String() string { return fmt.Sprintf("MsgRemoveGeode{%s}", msg.GeodeId) }
func (*MsgRemoveGeode) ProtoMessage()      {}

func (msg *MsgRemoveGeodeResponse) Reset()         { *msg = MsgRemoveGeodeResponse{} }
func (msg *MsgRemoveGeodeResponse) String() string { return "MsgRemoveGeodeResponse{}" }
func (*MsgRemoveGeodeResponse) ProtoMessage()      {}

func (msg *MsgUpdateGeodeProps) Reset() { *msg = MsgUpdateGeodeProps{} }
func (msg *MsgUpdateGeodeProps) String() string {
	return fmt.Sprintf("MsgUpdateGeodeProps{%s %s}", msg.GeodeId, msg.Key)
}
func (*MsgUpdateGeodeProps) ProtoMessage() {}

func (msg *MsgUpdateGeodePropsResponse) Reset()         { *msg = MsgUpdateGeodePropsResponse{} }
func (msg *MsgUpdateGeodePropsResponse) String() string { return "MsgUpdateGeodePropsResponse{}" }
func (*MsgUpdateGeodePropsResponse) ProtoMessage()      {}

func (msg *MsgUpdateGeodeDomain) Reset() { *msg = MsgUpdateGeodeDomain{} }
func (msg *MsgUpdateGeodeDomain) String() string {
	return fmt.Sprintf("MsgUpdateGeodeDomain{%s %s}", msg.GeodeId, msg.Domain)
}
func (*MsgUpdateGeodeDomain) ProtoMessage() {}

func (msg *MsgUpdateGeodeDomainResponse) Reset()         { *msg = MsgUpdateGeodeDomainResponse{} }
func (msg *MsgUpdateGeodeDomainResponse) String() string { return "MsgUpdateGeodeDomainResponse{}" }
func (*MsgUpdateGeodeDomainResponse) ProtoMessage()      {}

func (msg *MsgGeodeReady) Reset()         { *msg = MsgGeodeReady{} }
func (msg *MsgGeodeReady) String() string { return fmt.Sprintf("MsgGeodeReady{%s %s}", msg.GeodeId, msg.OrderId) }
func (*MsgGeodeReady) ProtoMessage()      {}

func (msg *MsgGeodeReadyResponse) Reset()         { *msg = MsgGeodeReadyResponse{} }
func (msg *MsgGeodeReadyResponse) String() string { return "MsgGeodeReadyResponse{}" }
func (*MsgGeodeReadyResponse) ProtoMessage()      {}

func (msg *MsgGeodeFinalizing) Reset() { *msg = MsgGeodeFinalizing{} }
func (msg *MsgGeodeFinalizing) String() string {
	return fmt.Sprintf("MsgGeodeFinalizing{%s %s}", msg.GeodeId, msg.OrderId)
}
func (*MsgGeodeFinalizing) ProtoMessage() {}

func (msg *MsgGeodeFinalizingResponse) Reset()         { *msg = MsgGeodeFinalizingResponse{} }
func (msg *MsgGeodeFinalizingResponse) String() string { return "MsgGeodeFinalizingResponse{}" }
func (*MsgGeodeFinalizingResponse) ProtoMessage()      {}

func (msg *MsgGeodeFinalized) Reset() { *msg = MsgGeodeFinalized{} }
func (msg *MsgGeodeFinalized) String() string {
	return fmt.Sprintf("MsgGeodeFinalized{%s %s}", msg.GeodeId, msg.OrderId)
}
func (*MsgGeodeFinalized) ProtoMessage() {}

func (msg *MsgGeodeFinalizedResponse) Reset()         { *msg = MsgGeodeFinalizedResponse{} }
func (msg *MsgGeodeFinalizedResponse) String() string { return "MsgGeodeFinalizedResponse{}" }
func (*MsgGeodeFinalizedResponse) ProtoMessage()      {}

func (msg *MsgGeodeInitializeFailed) Reset() { *msg = MsgGeodeInitializeFailed{} }
func (msg *MsgGeodeInitializeFailed) String() string {
	return fmt.Sprintf("MsgGeodeInitializeFailed{%s %s}", msg.GeodeId, msg.OrderId)
}
func (*MsgGeodeInitializeFailed) ProtoMessage() {}

func (msg *MsgGeodeInitializeFailedResponse) Reset() { *msg = MsgGeodeInitializeFailedResponse{} }
func (msg *MsgGeodeInitializeFailedResponse) String() string {
	return "MsgGeodeInitializeFailedResponse{}"
}
func (*MsgGeodeInitializeFailedResponse) ProtoMessage() {}

func (msg *MsgGeodeFinalizeFailed) Reset() { *msg = MsgGeodeFinalizeFailed{} }
func (msg *MsgGeodeFinalizeFailed) String() string {
	return fmt.Sprintf("MsgGeodeFinalizeFailed{%s %s}", msg.GeodeId, msg.OrderId)
}
func (*MsgGeodeFinalizeFailed) ProtoMessage() {}

func (msg *MsgGeodeFinalizeFailedResponse) Reset()         { *msg = MsgGeodeFinalizeFailedResponse{} }
func (msg *MsgGeodeFinalizeFailedResponse) String() string { return "MsgGeodeFinalizeFailedResponse{}" }
func (*MsgGeodeFinalizeFailedResponse) ProtoMessage()      {}

func (msg *MsgSubmitGeodeReport) Reset() { *msg = MsgSubmitGeodeReport{} }
func (msg *MsgSubmitGeodeReport) String() string {
	return fmt.Sprintf("MsgSubmitGeodeReport{%s}", msg.ReportType)
}
func (*MsgSubmitGeodeReport) ProtoMessage() {}

func (msg *MsgSubmitGeodeReportResponse) Reset()         { *msg = MsgSubmitGeodeReportResponse{} }
func (msg *MsgSubmitGeodeReportResponse) String() string { return "MsgSubmitGeodeReportResponse{}" }
func (*MsgSubmitGeodeReportResponse) ProtoMessage()      {}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("MsgUpdateParams{%s}", msg.Authority) }
func (*MsgUpdateParams) ProtoMessage()      {}

func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) String() string { return "MsgUpdateParamsResponse{}" }
func (*MsgUpdateParamsResponse) ProtoMessage()      {}

// GetSigners implementations - these assume addresses are valid (validated in ValidateBasic)

// GetSigners returns the expected signers for MsgRegisterGeode
func (msg *MsgRegisterGeode) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// GetSigners returns the expected signers for MsgRemoveGeode
func (msg *MsgRemoveGeode) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// GetSigners returns the expected signers for MsgUpdateGeodeProps
func (msg *MsgUpdateGeodeProps) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// GetSigners returns the expected signers for MsgUpdateGeodeDomain
func (msg *MsgUpdateGeodeDomain) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// GetSigners returns the expected signers for MsgGeodeReady
func (msg *MsgGeodeReady) GetSigners() []sdk.AccAddress {
	geode, _ := sdk.AccAddressFromBech32(msg.GeodeId)
	return []sdk.AccAddress{geode}
}

// GetSigners returns the expected signers for MsgGeodeFinalizing
func (msg *MsgGeodeFinalizing) GetSigners() []sdk.AccAddress {
	geode, _ := sdk.AccAddressFromBech32(msg.GeodeId)
	return []sdk.AccAddress{geode}
}

// GetSigners returns the expected signers for MsgGeodeFinalized
func (msg *MsgGeodeFinalized) GetSigners() []sdk.AccAddress {
	geode, _ := sdk.AccAddressFromBech32(msg.GeodeId)
	return []sdk.AccAddress{geode}
}

// GetSigners returns the expected signers for MsgGeodeInitializeFailed
func (msg *MsgGeodeInitializeFailed) GetSigners() []sdk.AccAddress {
	geode, _ := sdk.AccAddressFromBech32(msg.GeodeId)
	return []sdk.AccAddress{geode}
}

// GetSigners returns the expected signers for MsgGeodeFinalizeFailed
func (msg *MsgGeodeFinalizeFailed) GetSigners() []sdk.AccAddress {
	geode, _ := sdk.AccAddressFromBech32(msg.GeodeId)
	return []sdk.AccAddress{geode}
}

// GetSigners returns the expected signers for MsgSubmitGeodeReport
func (msg *MsgSubmitGeodeReport) GetSigners() []sdk.AccAddress {
	submitter, _ := sdk.AccAddressFromBech32(msg.Submitter)
	return []sdk.AccAddress{submitter}
}

// GetSigners returns the expected signers for MsgUpdateParams
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgRegisterGeode
func (msg *MsgRegisterGeode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.GeodeId); err != nil {
		return fmt.Errorf("invalid geode id: %w", err)
	}
	if msg.Ip == "" {
		return fmt.Errorf("ip cannot be empty")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgRemoveGeode
func (msg *MsgRemoveGeode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.GeodeId); err != nil {
		return fmt.Errorf("invalid geode id: %w", err)
	}
	return nil
}

// ValidateBasic performs basic validation of MsgUpdateGeodeProps
func (msg *MsgUpdateGeodeProps) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.GeodeId); err != nil {
		return fmt.Errorf("invalid geode id: %w", err)
	}
	if msg.Key == "" {
		return fmt.Errorf("prop key cannot be empty")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgUpdateGeodeDomain
func (msg *MsgUpdateGeodeDomain) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return fmt.Errorf("invalid provider address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.GeodeId); err != nil {
		return fmt.Errorf("invalid geode id: %w", err)
	}
	if msg.Domain == "" {
		return fmt.Errorf("domain cannot be empty")
	}
	return nil
}

func validateSelfReport(geodeID, orderID string) error {
	if _, err := sdk.AccAddressFromBech32(geodeID); err != nil {
		return fmt.Errorf("invalid geode id: %w", err)
	}
	if orderID == "" {
		return fmt.Errorf("order id cannot be empty")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgGeodeReady
func (msg *MsgGeodeReady) ValidateBasic() error {
	return validateSelfReport(msg.GeodeId, msg.OrderId)
}

// ValidateBasic performs basic validation of MsgGeodeFinalizing
func (msg *MsgGeodeFinalizing) ValidateBasic() error {
	return validateSelfReport(msg.GeodeId, msg.OrderId)
}

// ValidateBasic performs basic validation of MsgGeodeFinalized
func (msg *MsgGeodeFinalized) ValidateBasic() error {
	return validateSelfReport(msg.GeodeId, msg.OrderId)
}

// ValidateBasic performs basic validation of MsgGeodeInitializeFailed
func (msg *MsgGeodeInitializeFailed) ValidateBasic() error {
	return validateSelfReport(msg.GeodeId, msg.OrderId)
}

// ValidateBasic performs basic validation of MsgGeodeFinalizeFailed
func (msg *MsgGeodeFinalizeFailed) ValidateBasic() error {
	return validateSelfReport(msg.GeodeId, msg.OrderId)
}

// ValidateBasic performs basic validation of MsgSubmitGeodeReport.
// Message layout and signature are re-verified with state access in the
// keeper; this only rejects structurally hopeless submissions.
func (msg *MsgSubmitGeodeReport) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Submitter); err != nil {
		return fmt.Errorf("invalid submitter address: %w", err)
	}
	switch msg.ReportType {
	case ReportTypeReady, ReportTypeFinalizing, ReportTypeFinalized,
		ReportTypeInitializeFailed, ReportTypeFinalizeFailed:
	default:
		return ErrInvalidNotification.Wrap(msg.ReportType)
	}
	if len(msg.Message) != ReportMessageLength {
		return ErrInvalidMessage.Wrapf("expected %d bytes, got %d", ReportMessageLength, len(msg.Message))
	}
	if len(msg.Signature) == 0 {
		return ErrInvalidSignature.Wrap("signature cannot be empty")
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
