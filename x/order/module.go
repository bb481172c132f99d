package order

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	"github.com/geodenet/geodenet/x/order/client/cli"
	"github.com/geodenet/geodenet/x/order/keeper"
	ordertypes "github.com/geodenet/geodenet/x/order/types"
)

var (
	_ module.AppModule      = AppModule{}
	_ module.AppModuleBasic = AppModuleBasic{}
)

// AppModuleBasic defines the basic application module for the order module.
type AppModuleBasic struct {
	cdc codec.Codec
}

// Name returns the order module's name.
func (AppModuleBasic) Name() string {
	return ordertypes.ModuleName
}

// RegisterLegacyAminoCodec registers the order module's types on the LegacyAmino codec.
func (AppModuleBasic) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	ordertypes.RegisterLegacyAminoCodec(cdc)
}

// RegisterInterfaces registers the order module's interface types
func (AppModuleBasic) RegisterInterfaces(registry types.InterfaceRegistry) {
	ordertypes.RegisterInterfaces(registry)
}

// RegisterGRPCGatewayRoutes registers the gRPC Gateway routes for the order module.
func (AppModuleBasic) RegisterGRPCGatewayRoutes(clientCtx client.Context, mux *runtime.ServeMux) {}

// GetTxCmd returns the root tx command for the order module.
func (AppModuleBasic) GetTxCmd() *cobra.Command {
	return cli.GetTxCmd()
}

// GetQueryCmd returns the root query command for the order module.
func (AppModuleBasic) GetQueryCmd() *cobra.Command {
	return cli.GetQueryCmd()
}

// AppModule implements an application module for the order module.
//
// Messages are hand-written types without generated gRPC service
// descriptors; the embedding app dispatches them straight to the
// keeper-level MsgServer from keeper.NewMsgServerImpl, so RegisterServices
// and RegisterGRPCGatewayRoutes stay empty.
type AppModule struct {
	AppModuleBasic
	keeper *keeper.Keeper
}

// NewAppModule creates a new AppModule object
func NewAppModule(cdc codec.Codec, keeper *keeper.Keeper) AppModule {
	return AppModule{
		AppModuleBasic: AppModuleBasic{cdc: cdc},
		keeper:         keeper,
	}
}

// IsAppModule implements the appmodule.AppModule interface.
func (am AppModule) IsAppModule() {}

// IsOnePerModuleType implements the appmodule.AppModule interface.
func (am AppModule) IsOnePerModuleType() {}

// RegisterInvariants registers the order module's invariants.
func (am AppModule) RegisterInvariants(ir sdk.InvariantRegistry) {
	keeper.RegisterInvariants(ir, *am.keeper)
}

// RegisterServices registers the module's services. Message dispatch goes
// through the keeper-level MsgServer; see keeper.NewMsgServerImpl.
func (am AppModule) RegisterServices(cfg module.Configurator) {}

// ConsensusVersion implements AppModule/ConsensusVersion.
// It returns the current consensus version of the module.
func (AppModule) ConsensusVersion() uint64 { return 1 }
