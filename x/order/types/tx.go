package types

import (
	"context"
)

// MsgServer is the server API for the order Msg service.
type MsgServer interface {
	// CreateOrder submits a new order and escrows its price.
	CreateOrder(ctx context.Context, msg *MsgCreateOrder) (*MsgCreateOrderResponse, error)

	// CancelOrder marks an order for termination at the next session sweep.
	CancelOrder(ctx context.Context, msg *MsgCancelOrder) (*MsgCancelOrderResponse, error)

	// UpdateParams updates the module parameters. Authority-gated.
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}
