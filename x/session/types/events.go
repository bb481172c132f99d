package types

// Session module event types
const (
	EventTypeNewSession = "session_new"
)

// Session module event attribute keys
const (
	AttributeKeySessionIndex = "session_index"
	AttributeKeyPhase        = "phase"
	AttributeKeyHeight       = "height"
)
