package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/geode/types"
)

// Keeper of the geode store
type Keeper struct {
	storeKey  storetypes.StoreKey
	cdc       codec.BinaryCodec
	authority string

	// orderKeeper and attestorKeeper are set after construction; the
	// registry, the order book and the attestor registry reference each
	// other.
	orderKeeper    types.OrderKeeper
	attestorKeeper types.AttestorKeeper

	metrics *GeodeMetrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new geode Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:  key,
		cdc:       cdc,
		authority: authority,
		metrics:   NewGeodeMetrics(),
	}
}

// SetOrderKeeper wires the order book after both keepers exist.
func (k *Keeper) SetOrderKeeper(ok types.OrderKeeper) {
	k.orderKeeper = ok
}

// SetAttestorKeeper wires the attestor registry after both keepers exist.
func (k *Keeper) SetAttestorKeeper(ak types.AttestorKeeper) {
	k.attestorKeeper = ak
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

// getStore returns the KVStore for the geode module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}
