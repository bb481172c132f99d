package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the necessary x/geode interfaces and concrete types
// on the provided LegacyAmino codec. These types are used for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterGeode{}, "geodenet/geode/MsgRegisterGeode", nil)
	cdc.RegisterConcrete(&MsgRemoveGeode{}, "geodenet/geode/MsgRemoveGeode", nil)
	cdc.RegisterConcrete(&MsgUpdateGeodeProps{}, "geodenet/geode/MsgUpdateGeodeProps", nil)
	cdc.RegisterConcrete(&MsgUpdateGeodeDomain{}, "geodenet/geode/MsgUpdateGeodeDomain", nil)
	cdc.RegisterConcrete(&MsgGeodeReady{}, "geodenet/geode/MsgGeodeReady", nil)
	cdc.RegisterConcrete(&MsgGeodeFinalizing{}, "geodenet/geode/MsgGeodeFinalizing", nil)
	cdc.RegisterConcrete(&MsgGeodeFinalized{}, "geodenet/geode/MsgGeodeFinalized", nil)
	cdc.RegisterConcrete(&MsgGeodeInitializeFailed{}, "geodenet/geode/MsgGeodeInitializeFailed", nil)
	cdc.RegisterConcrete(&MsgGeodeFinalizeFailed{}, "geodenet/geode/MsgGeodeFinalizeFailed", nil)
	cdc.RegisterConcrete(&MsgSubmitGeodeReport{}, "geodenet/geode/MsgSubmitGeodeReport", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "geodenet/geode/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/geode interfaces types with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRegisterGeode{},
		&MsgRemoveGeode{},
		&MsgUpdateGeodeProps{},
		&MsgUpdateGeodeDomain{},
		&MsgGeodeReady{},
		&MsgGeodeFinalizing{},
		&MsgGeodeFinalized{},
		&MsgGeodeInitializeFailed{},
		&MsgGeodeFinalizeFailed{},
		&MsgSubmitGeodeReport{},
		&MsgUpdateParams{},
	)
}

var (
	amino = codec.NewLegacyAmino()
)

func init() {
	RegisterLegacyAminoCodec(amino)
}
