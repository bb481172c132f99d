package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/geodenet/geodenet/x/geode/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// GeodeKeyPrefix is the prefix for geode storage
	GeodeKeyPrefix = []byte{0x02}

	// IdleGeodePrefix indexes idle geodes for dispatch scans
	IdleGeodePrefix = []byte{0x03}

	// PendingGeodePrefix indexes geodes awaiting order confirmation
	PendingGeodePrefix = []byte{0x04}

	// ExitingGeodePrefix indexes geodes whose removal lands at the next
	// session boundary
	ExitingGeodePrefix = []byte{0x05}

	// OfflineRequestPrefix records owner removal requests for busy geodes
	OfflineRequestPrefix = []byte{0x06}

	// FailRequestPrefix records asynchronous failure reports pending the
	// next offline phase
	FailRequestPrefix = []byte{0x07}

	// SweepCursorPrefix is the prefix for resumable sweep cursors
	SweepCursorPrefix = []byte{0x08}
)

// GeodeKey returns the primary store key for a geode
func GeodeKey(geodeID sdk.AccAddress) []byte {
	return append(GeodeKeyPrefix, geodeID.Bytes()...)
}

// GeodeIndexKey returns the index row key for a geode under the given state
// index prefix
func GeodeIndexKey(prefix []byte, geodeID sdk.AccAddress) []byte {
	return append(prefix, geodeID.Bytes()...)
}

// OfflineRequestKey returns the store key for a geode's pending offline
// request
func OfflineRequestKey(geodeID sdk.AccAddress) []byte {
	return append(OfflineRequestPrefix, geodeID.Bytes()...)
}

// FailRequestKey returns the store key for a geode's pending failure report
func FailRequestKey(geodeID sdk.AccAddress) []byte {
	return append(FailRequestPrefix, geodeID.Bytes()...)
}

// SweepCursorKey returns the store key for a named sweep cursor
func SweepCursorKey(name string) []byte {
	return append(SweepCursorPrefix, []byte(name)...)
}

// geodeIndexPrefix maps a working state to its secondary index prefix.
// Working and Finalizing geodes are not indexed; nil means no index row.
func geodeIndexPrefix(state types.GeodeState) []byte {
	switch state {
	case types.GeodeStateIdle:
		return IdleGeodePrefix
	case types.GeodeStatePending:
		return PendingGeodePrefix
	case types.GeodeStateExiting:
		return ExitingGeodePrefix
	}
	return nil
}
