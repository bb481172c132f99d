package keeper

import (
	"github.com/geodenet/geodenet/x/order/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// OrderKeyPrefix is the prefix for order storage
	OrderKeyPrefix = []byte{0x02}

	// OrderServiceKeyPrefix is the prefix for per-order service lists
	OrderServiceKeyPrefix = []byte{0x03}

	// SubmittedOrderPrefix indexes orders awaiting first dispatch
	SubmittedOrderPrefix = []byte{0x04}

	// ProcessingOrderPrefix indexes orders whose services are all confirmed
	ProcessingOrderPrefix = []byte{0x05}

	// EmergencyOrderPrefix indexes understaffed orders
	EmergencyOrderPrefix = []byte{0x06}

	// CanceledOrderPrefix records cancel requests to be honored at the next
	// session sweep
	CanceledOrderPrefix = []byte{0x07}

	// SweepCursorPrefix is the prefix for resumable sweep cursors
	SweepCursorPrefix = []byte{0x08}
)

// OrderKey returns the primary store key for an order
func OrderKey(orderID string) []byte {
	return append(OrderKeyPrefix, []byte(orderID)...)
}

// OrderServiceKey returns the store key for an order's service list
func OrderServiceKey(orderID string) []byte {
	return append(OrderServiceKeyPrefix, []byte(orderID)...)
}

// OrderIndexKey returns the index row key for an order under the given
// state index prefix
func OrderIndexKey(prefix []byte, orderID string) []byte {
	return append(prefix, []byte(orderID)...)
}

// SweepCursorKey returns the store key for a named sweep cursor
func SweepCursorKey(name string) []byte {
	return append(SweepCursorPrefix, []byte(name)...)
}

// orderIndexPrefix maps an aggregate order state to its secondary index
// prefix. Pending and Done orders are not indexed; nil means no index row.
func orderIndexPrefix(state types.OrderState) []byte {
	switch state {
	case types.OrderStateSubmitted:
		return SubmittedOrderPrefix
	case types.OrderStateProcessing:
		return ProcessingOrderPrefix
	case types.OrderStateEmergency:
		return EmergencyOrderPrefix
	}
	return nil
}
