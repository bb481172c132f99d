package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/session/types"
)

// Keeper of the session store
type Keeper struct {
	storeKey  storetypes.StoreKey
	cdc       codec.BinaryCodec
	authority string

	// geodeKeeper and orderKeeper are set after construction; the scheduler
	// is built before the modules it drives.
	geodeKeeper types.GeodeKeeper
	orderKeeper types.OrderKeeper

	metrics *SessionMetrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new session Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:  key,
		cdc:       cdc,
		authority: authority,
		metrics:   NewSessionMetrics(),
	}
}

// SetGeodeKeeper wires the geode registry after both keepers exist.
func (k *Keeper) SetGeodeKeeper(gk types.GeodeKeeper) {
	k.geodeKeeper = gk
}

// SetOrderKeeper wires the order book after both keepers exist.
func (k *Keeper) SetOrderKeeper(ok types.OrderKeeper) {
	k.orderKeeper = ok
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

// getStore returns the KVStore for the session module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}
