package types

// Event types for the Order module
// All event types use lowercase with underscore separator (module_action format)
const (
	// Submission events
	EventTypeOrderCreated  = "order_created"
	EventTypeOrderCanceled = "order_canceled"

	// Lifecycle events
	EventTypeOrderDispatched   = "order_dispatched"
	EventTypeOrderStateChanged = "order_state_changed"
	EventTypeOrderEmergency    = "order_emergency"
	EventTypeOrderDone         = "order_done"

	// Escrow events
	EventTypeOrderEscrowLocked   = "order_escrow_locked"
	EventTypeOrderEscrowRefunded = "order_escrow_refunded"
)

// Event attribute keys for the Order module
// All attribute keys use lowercase with underscore separator
const (
	AttributeKeyOrderId      = "order_id"
	AttributeKeyRequester    = "requester"
	AttributeKeyGeodeId      = "geode_id"
	AttributeKeyNum          = "num"
	AttributeKeyAssigned     = "assigned"
	AttributeKeyState        = "state"
	AttributeKeyPrevState    = "prev_state"
	AttributeKeySessionIndex = "session_index"
	AttributeKeyAmount       = "amount"
	AttributeKeyReason       = "reason"
)
