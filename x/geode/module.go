package geode

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	"github.com/geodenet/geodenet/x/geode/client/cli"
	"github.com/geodenet/geodenet/x/geode/keeper"
	geodetypes "github.com/geodenet/geodenet/x/geode/types"
)

var (
	_ module.AppModule      = AppModule{}
	_ module.AppModuleBasic = AppModuleBasic{}
)

// AppModuleBasic defines the basic application module for the geode module.
type AppModuleBasic struct {
	cdc codec.Codec
}

// Name returns the geode module's name.
func (AppModuleBasic) Name() string {
	return geodetypes.ModuleName
}

// RegisterLegacyAminoCodec registers the geode module's types on the LegacyAmino codec.
func (AppModuleBasic) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	geodetypes.RegisterLegacyAminoCodec(cdc)
}

// RegisterInterfaces registers the geode module's interface types
func (AppModuleBasic) RegisterInterfaces(registry types.InterfaceRegistry) {
	geodetypes.RegisterInterfaces(registry)
}

// RegisterGRPCGatewayRoutes registers the gRPC Gateway routes for the geode module.
func (AppModuleBasic) RegisterGRPCGatewayRoutes(clientCtx client.Context, mux *runtime.ServeMux) {}

// GetTxCmd returns the root tx command for the geode module.
func (AppModuleBasic) GetTxCmd() *cobra.Command {
	return cli.GetTxCmd()
}

// GetQueryCmd returns the root query command for the geode module.
func (AppModuleBasic) GetQueryCmd() *cobra.Command {
	return cli.GetQueryCmd()
}

// AppModule implements an application module for the geode module.
//
// The module's messages are hand-written types without generated gRPC
// service descriptors, so there is nothing to hang on the configurator or
// the gateway mux: the embedding app routes messages straight to the
// keeper-level MsgServer from keeper.NewMsgServerImpl, and RegisterServices
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

// RegisterInvariants registers the geode module's invariants.
func (am AppModule) RegisterInvariants(ir sdk.InvariantRegistry) {
	keeper.RegisterInvariants(ir, *am.keeper)
}

// RegisterServices registers the module's services. Message dispatch goes
// through the keeper-level MsgServer; see keeper.NewMsgServerImpl.
func (am AppModule) RegisterServices(cfg module.Configurator) {}

// ConsensusVersion implements AppModule/ConsensusVersion.
// It returns the current consensus version of the module.
func (AppModule) ConsensusVersion() uint64 { return 1 }
