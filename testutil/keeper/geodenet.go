package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	attestorkeeper "github.com/geodenet/geodenet/x/attestor/keeper"
	attestortypes "github.com/geodenet/geodenet/x/attestor/types"
	geodekeeper "github.com/geodenet/geodenet/x/geode/keeper"
	geodetypes "github.com/geodenet/geodenet/x/geode/types"
	orderkeeper "github.com/geodenet/geodenet/x/order/keeper"
	ordertypes "github.com/geodenet/geodenet/x/order/types"
	sessionkeeper "github.com/geodenet/geodenet/x/session/keeper"
	sessiontypes "github.com/geodenet/geodenet/x/session/types"
)

// MarketplaceFixture bundles the four marketplace keepers wired the way the
// app wires them, over an in-memory multistore.
type MarketplaceFixture struct {
	Ctx sdk.Context

	Order    *orderkeeper.Keeper
	Geode    *geodekeeper.Keeper
	Session  *sessionkeeper.Keeper
	Attestor *attestorkeeper.Keeper

	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.Keeper

	Authority string
}

// NewMarketplaceFixture creates a fully wired test fixture for the
// marketplace modules with mock dependencies
func NewMarketplaceFixture(t testing.TB) *MarketplaceFixture {
	orderStoreKey := storetypes.NewKVStoreKey(ordertypes.StoreKey)
	geodeStoreKey := storetypes.NewKVStoreKey(geodetypes.StoreKey)
	sessionStoreKey := storetypes.NewKVStoreKey(sessiontypes.StoreKey)
	attestorStoreKey := storetypes.NewKVStoreKey(attestortypes.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(orderStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(geodeStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(sessionStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(attestorStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		ordertypes.ModuleName:      nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	orderKeeper := orderkeeper.NewKeeper(cdc, orderStoreKey, bankKeeper, accountKeeper, authority.String())
	geodeKeeper := geodekeeper.NewKeeper(cdc, geodeStoreKey, authority.String())
	sessionKeeper := sessionkeeper.NewKeeper(cdc, sessionStoreKey, authority.String())
	attestorKeeper := attestorkeeper.NewKeeper(cdc, attestorStoreKey, bankKeeper, authority.String())

	orderKeeper.SetGeodeKeeper(geodeKeeper)
	geodeKeeper.SetOrderKeeper(orderKeeper)
	geodeKeeper.SetAttestorKeeper(attestorKeeper)
	attestorKeeper.SetApplicationKeeper(geodeKeeper)
	sessionKeeper.SetGeodeKeeper(geodeKeeper)
	sessionKeeper.SetOrderKeeper(orderKeeper)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	return &MarketplaceFixture{
		Ctx:           ctx,
		Order:         orderKeeper,
		Geode:         geodeKeeper,
		Session:       sessionKeeper,
		Attestor:      attestorKeeper,
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		Authority:     authority.String(),
	}
}

// FundAccount mints coins and hands them to the given account
func (f *MarketplaceFixture) FundAccount(t testing.TB, addr sdk.AccAddress, amount math.Int, denom string) {
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	require.NoError(t, f.BankKeeper.MintCoins(f.Ctx, minttypes.ModuleName, coins))
	require.NoError(t, f.BankKeeper.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, coins))
}

// SeedAccount creates the account record so order ids can be derived from
// its sequence
func (f *MarketplaceFixture) SeedAccount(t testing.TB, addr sdk.AccAddress, sequence uint64) {
	acc := f.AccountKeeper.NewAccountWithAddress(f.Ctx, addr)
	require.NoError(t, acc.SetSequence(sequence))
	f.AccountKeeper.SetAccount(f.Ctx, acc)
}

// OrderKeeper creates a test keeper for the order module; geode dispatch is
// wired so dispatch phases find real capacity
func OrderKeeper(t testing.TB) (*orderkeeper.Keeper, sdk.Context) {
	f := NewMarketplaceFixture(t)
	return f.Order, f.Ctx
}

// GeodeKeeper creates a test keeper for the geode module
func GeodeKeeper(t testing.TB) (*geodekeeper.Keeper, sdk.Context) {
	f := NewMarketplaceFixture(t)
	return f.Geode, f.Ctx
}

// SessionKeeper creates a test keeper for the session module
func SessionKeeper(t testing.TB) (*sessionkeeper.Keeper, sdk.Context) {
	f := NewMarketplaceFixture(t)
	return f.Session, f.Ctx
}

// AttestorKeeper creates a test keeper for the attestor module
func AttestorKeeper(t testing.TB) (*attestorkeeper.Keeper, sdk.Context) {
	f := NewMarketplaceFixture(t)
	return f.Attestor, f.Ctx
}
