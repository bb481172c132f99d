package keeper

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/attestor/types"
)

// RegisterInvariants registers all attestor module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "attestation-symmetry",
		AttestationSymmetryInvariant(k))
}

// AttestationSymmetryInvariant checks that every geode listed on an
// attestor record has a matching attestation row, and that every
// attestation row belongs to a registered attestor listing that geode.
func AttestationSymmetryInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		listed := map[string]bool{}
		err := k.IterateAttestors(ctx, func(attestor types.Attestor) (bool, error) {
			attestorID, err := sdk.AccAddressFromBech32(attestor.Id)
			if err != nil {
				broken = true
				msg += fmt.Sprintf("attestor record with invalid id %s\n", attestor.Id)
				return false, nil
			}
			store := k.getStore(ctx)
			for _, id := range attestor.Geodes {
				geodeID, err := sdk.AccAddressFromBech32(id)
				if err != nil {
					broken = true
					msg += fmt.Sprintf("attestor %s lists invalid geode id %s\n", attestor.Id, id)
					continue
				}
				key := AttestationKey(geodeID, attestorID)
				if !store.Has(key) {
					broken = true
					msg += fmt.Sprintf("attestor %s lists geode %s without an attestation row\n", attestor.Id, id)
				}
				listed[string(key)] = true
			}
			return false, nil
		})
		if err != nil {
			broken = true
			msg += fmt.Sprintf("error iterating attestors: %v\n", err)
		}

		store := k.getStore(ctx)
		iterator := store.Iterator(AttestationPrefix, storetypes.PrefixEndBytes(AttestationPrefix))
		defer iterator.Close()
		for ; iterator.Valid(); iterator.Next() {
			if !listed[string(iterator.Key())] {
				broken = true
				msg += fmt.Sprintf("orphan attestation row %x\n", iterator.Key())
			}
		}

		return sdk.FormatInvariant(
			types.ModuleName, "attestation-symmetry",
			msg,
		), broken
	}
}
