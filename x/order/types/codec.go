package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the necessary x/order interfaces and concrete types
// on the provided LegacyAmino codec. These types are used for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateOrder{}, "geodenet/order/MsgCreateOrder", nil)
	cdc.RegisterConcrete(&MsgCancelOrder{}, "geodenet/order/MsgCancelOrder", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "geodenet/order/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/order interfaces types with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateOrder{},
		&MsgCancelOrder{},
		&MsgUpdateParams{},
	)
}

var (
	amino = codec.NewLegacyAmino()
)

func init() {
	RegisterLegacyAminoCodec(amino)
}
