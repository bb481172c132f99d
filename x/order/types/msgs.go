package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgCreateOrder  = "create_order"
	TypeMsgCancelOrder  = "cancel_order"
	TypeMsgUpdateParams = "update_params"
)

var (
	_ sdk.Msg = &MsgCreateOrder{}
	_ sdk.Msg = &MsgCancelOrder{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgCreateOrder submits a new order for dispatch.
type MsgCreateOrder struct {
	Requester string   `json:"requester"`
	Binary    string   `json:"binary"`
	Domain    string   `json:"domain"`
	Name      string   `json:"name"`
	Price     math.Int `json:"price"`
	Num       uint32   `json:"num"`
	Duration  uint32   `json:"duration"`
}

// MsgCreateOrderResponse returns the derived order id.
type MsgCreateOrderResponse struct {
	OrderId string `json:"order_id"`
}

// MsgCancelOrder marks an order for termination at the next session sweep.
type MsgCancelOrder struct {
	Requester string `json:"requester"`
	OrderId   string `json:"order_id"`
}

// MsgCancelOrderResponse is the cancel response.
type MsgCancelOrderResponse struct{}

// MsgUpdateParams is a governance operation for updating the order module
// parameters.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateParamsResponse is the update params response.
type MsgUpdateParamsResponse struct{}

func (msg *MsgCreateOrder) Reset()         { *msg = MsgCreateOrder{} }
func (msg *MsgCreateOrder) String() string { return fmt.Sprintf("MsgCreateOrder{%s %s num=%d}", msg.Requester, msg.Name, msg.Num) }
func (*MsgCreateOrder) ProtoMessage()      {}

func (msg *MsgCreateOrderResponse) Reset()         { *msg = MsgCreateOrderResponse{} }
func (msg *MsgCreateOrderResponse) String() string { return msg.OrderId }
func (*MsgCreateOrderResponse) ProtoMessage()      {}

func (msg *MsgCancelOrder) Reset()         { *msg = MsgCancelOrder{} }
func (msg *MsgCancelOrder) String() string { return fmt.Sprintf("MsgCancelOrder{%s %s}", msg.Requester, msg.OrderId) }
func (*MsgCancelOrder) ProtoMessage()      {}

func (msg *MsgCancelOrderResponse) Reset()         { *msg = MsgCancelOrderResponse{} }
func (msg *MsgCancelOrderResponse) String() string { return "MsgCancelOrderResponse{}" }
func (*MsgCancelOrderResponse) ProtoMessage()      {}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("MsgUpdateParams{%s}", msg.Authority) }
func (*MsgUpdateParams) ProtoMessage()      {}

func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) String() string { return "MsgUpdateParamsResponse{}" }
func (*MsgUpdateParamsResponse) ProtoMessage()      {}

// GetSigners implementations - these assume addresses are valid (validated in ValidateBasic)

// GetSigners returns the expected signers for MsgCreateOrder
func (msg *MsgCreateOrder) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

// GetSigners returns the expected signers for MsgCancelOrder
func (msg *MsgCancelOrder) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

// GetSigners returns the expected signers for MsgUpdateParams
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs basic validation of MsgCreateOrder
func (msg *MsgCreateOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrInvalidOrder.Wrapf("invalid requester address: %s", err)
	}
	if msg.Num < 1 {
		return ErrInvalidOrder.Wrap("num must be at least 1")
	}
	if msg.Duration < 1 {
		return ErrInvalidDuration.Wrap("duration must be at least 1 session")
	}
	if msg.Binary == "" {
		return ErrInvalidOrder.Wrap("binary reference cannot be empty")
	}
	if msg.Price.IsNil() || !msg.Price.IsPositive() {
		return ErrInvalidOrder.Wrap("price must be positive")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgCancelOrder
func (msg *MsgCancelOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrInvalidOrder.Wrapf("invalid requester address: %s", err)
	}
	if msg.OrderId == "" {
		return ErrInvalidOrder.Wrap("order id cannot be empty")
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
