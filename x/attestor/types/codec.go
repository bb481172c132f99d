package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the necessary x/attestor interfaces and concrete types
// on the provided LegacyAmino codec. These types are used for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterAttestor{}, "geodenet/attestor/MsgRegisterAttestor", nil)
	cdc.RegisterConcrete(&MsgUpdateAttestor{}, "geodenet/attestor/MsgUpdateAttestor", nil)
	cdc.RegisterConcrete(&MsgRemoveAttestor{}, "geodenet/attestor/MsgRemoveAttestor", nil)
	cdc.RegisterConcrete(&MsgAttestorHeartbeat{}, "geodenet/attestor/MsgAttestorHeartbeat", nil)
	cdc.RegisterConcrete(&MsgAttestGeode{}, "geodenet/attestor/MsgAttestGeode", nil)
	cdc.RegisterConcrete(&MsgReportGeode{}, "geodenet/attestor/MsgReportGeode", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "geodenet/attestor/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/attestor interfaces types with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRegisterAttestor{},
		&MsgUpdateAttestor{},
		&MsgRemoveAttestor{},
		&MsgAttestorHeartbeat{},
		&MsgAttestGeode{},
		&MsgReportGeode{},
		&MsgUpdateParams{},
	)
}

var (
	amino = codec.NewLegacyAmino()
)

func init() {
	RegisterLegacyAminoCodec(amino)
}
