package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/order/types"
)

// Keeper of the order store
type Keeper struct {
	storeKey      storetypes.StoreKey
	cdc           codec.BinaryCodec
	bankKeeper    types.BankKeeper
	accountKeeper types.AccountKeeper
	authority     string

	// geodeKeeper is set after construction; the geode registry and the
	// order book reference each other.
	geodeKeeper types.GeodeDispatcher

	hooks types.OrderHooks

	metrics *OrderMetrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new order Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:      key,
		cdc:           cdc,
		bankKeeper:    bankKeeper,
		accountKeeper: accountKeeper,
		authority:     authority,
		metrics:       NewOrderMetrics(),
	}
}

// SetGeodeKeeper wires the geode registry after both keepers exist.
func (k *Keeper) SetGeodeKeeper(gk types.GeodeDispatcher) {
	k.geodeKeeper = gk
}

// SetHooks sets the order hooks. Panics if called more than once.
func (k *Keeper) SetHooks(h types.OrderHooks) {
	if k.hooks != nil {
		panic("cannot set order hooks twice")
	}
	k.hooks = h
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the order module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}
