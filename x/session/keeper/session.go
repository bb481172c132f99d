package keeper

import (
	"context"
	"encoding/binary"
)

// GetSessionIndex returns the current session index.
func (k Keeper) GetSessionIndex(ctx context.Context) int64 {
	store := k.getStore(ctx)
	bz := store.Get(SessionIndexKey)
	if bz == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(bz))
}

func (k Keeper) setSessionIndex(ctx context.Context, sessionIndex int64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(sessionIndex))
	store.Set(SessionIndexKey, bz)
}
