package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/geode/types"
)

// Sweep cursor names. Each bounded enumeration persists its position under
// SweepCursorPrefix + name.
const (
	cursorExiting = "exiting"
	cursorOffline = "offline"
	cursorFailed  = "failed"
	cursorExpired = "expired"
)

// getSweepCursor loads a named sweep cursor. A missing cursor is returned
// as a zero value with SessionIndex -1 so it never matches a live session.
func (k Keeper) getSweepCursor(ctx context.Context, name string) types.SweepCursor {
	store := k.getStore(ctx)
	bz := store.Get(SweepCursorKey(name))
	if bz == nil {
		return types.SweepCursor{SessionIndex: -1}
	}

	var cur types.SweepCursor
	if err := json.Unmarshal(bz, &cur); err != nil {
		return types.SweepCursor{SessionIndex: -1}
	}
	return cur
}

func (k Keeper) setSweepCursor(ctx context.Context, name string, cur types.SweepCursor) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(cur)
	if err != nil {
		return fmt.Errorf("setSweepCursor: marshal: %w", err)
	}
	store.Set(SweepCursorKey(name), bz)
	return nil
}

// sweepIndex enumerates the geode addresses under an index prefix, resuming
// from the named cursor if it belongs to the same session, visiting at most
// limit entries. A cursor from a different session is stale and the sweep
// restarts from the beginning. Visit errors are logged and the entry is
// skipped; a sweep never aborts the block.
func (k Keeper) sweepIndex(ctx context.Context, prefix []byte, cursorName string, sessionIndex int64, limit uint32, visit func(geodeID sdk.AccAddress) error) {
	store := k.getStore(ctx)
	logger := k.Logger(ctx)

	cur := k.getSweepCursor(ctx, cursorName)

	start := prefix
	if cur.SessionIndex == sessionIndex && len(cur.LastKey) > 0 {
		// Resume just past the last visited raw key.
		start = append(append([]byte{}, cur.LastKey...), 0x00)
	}

	// Collect keys first so visitors may mutate the index while we are not
	// holding an iterator over it.
	var keys [][]byte
	iterator := store.Iterator(start, storetypes.PrefixEndBytes(prefix))
	for ; iterator.Valid() && uint32(len(keys)) < limit; iterator.Next() {
		keys = append(keys, append([]byte{}, iterator.Key()...))
	}
	iterator.Close()

	var lastKey []byte
	for _, key := range keys {
		geodeID := sdk.AccAddress(key[len(prefix):])

		if err := visit(geodeID); err != nil {
			logger.Error("geode sweep entry failed",
				"cursor", cursorName,
				"geode_id", geodeID.String(),
				"error", err,
			)
		}

		lastKey = key
	}

	if lastKey != nil {
		if err := k.setSweepCursor(ctx, cursorName, types.SweepCursor{
			SessionIndex: sessionIndex,
			LastKey:      lastKey,
		}); err != nil {
			logger.Error("failed to persist sweep cursor", "cursor", cursorName, "error", err)
		}
	}
}
