package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/geode/types"
)

// RegisterInvariants registers all geode module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "geode-index-symmetry",
		GeodeIndexSymmetryInvariant(k))
	ir.RegisterRoute(types.ModuleName, "geode-order-ref",
		GeodeOrderRefInvariant(k))
}

// AllInvariants runs all invariants of the geode module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := GeodeIndexSymmetryInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return GeodeOrderRefInvariant(k)(ctx)
	}
}

// GeodeIndexSymmetryInvariant checks that every geode appears in exactly
// the secondary index matching its working state, and that every index row
// points at an existing geode in the matching state.
func GeodeIndexSymmetryInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		indexed := map[string]types.GeodeState{}
		for _, st := range []types.GeodeState{types.GeodeStateIdle, types.GeodeStatePending, types.GeodeStateExiting} {
			prefix := geodeIndexPrefix(st)
			state := st
			err := k.IterateGeodeIndex(ctx, prefix, func(geodeID sdk.AccAddress) (bool, error) {
				id := geodeID.String()
				if prev, ok := indexed[id]; ok {
					broken = true
					msg += fmt.Sprintf("geode %s indexed under both %q and %q\n", id, prev, state)
				}
				indexed[id] = state

				geode, err := k.GetGeode(ctx, geodeID)
				if err != nil {
					broken = true
					msg += fmt.Sprintf("index %q references missing geode %s\n", state, id)
					return false, nil
				}
				if geode.Working.State != state {
					broken = true
					msg += fmt.Sprintf("geode %s is %q but indexed under %q\n", id, geode.Working.State, state)
				}
				return false, nil
			})
			if err != nil {
				broken = true
				msg += fmt.Sprintf("error iterating %q index: %v\n", state, err)
			}
		}

		err := k.IterateGeodes(ctx, func(geode types.Geode) (bool, error) {
			if prefix := geodeIndexPrefix(geode.Working.State); prefix != nil {
				if _, ok := indexed[geode.Id]; !ok {
					broken = true
					msg += fmt.Sprintf("geode %s is %q but missing from its index\n", geode.Id, geode.Working.State)
				}
			}
			return false, nil
		})
		if err != nil {
			broken = true
			msg += fmt.Sprintf("error iterating geodes: %v\n", err)
		}

		return sdk.FormatInvariant(
			types.ModuleName, "geode-index-symmetry",
			msg,
		), broken
	}
}

// GeodeOrderRefInvariant checks that a geode carries an order id exactly
// when its working state says it holds one.
func GeodeOrderRefInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		err := k.IterateGeodes(ctx, func(geode types.Geode) (bool, error) {
			if geode.HoldsOrder() && geode.OrderId == "" {
				broken = true
				msg += fmt.Sprintf("geode %s is %q but has no order id\n", geode.Id, geode.Working.State)
			}
			if !geode.HoldsOrder() && geode.OrderId != "" {
				broken = true
				msg += fmt.Sprintf("geode %s is %q but still references order %s\n", geode.Id, geode.Working.State, geode.OrderId)
			}
			return false, nil
		})
		if err != nil {
			broken = true
			msg += fmt.Sprintf("error iterating geodes: %v\n", err)
		}

		return sdk.FormatInvariant(
			types.ModuleName, "geode-order-ref",
			msg,
		), broken
	}
}
