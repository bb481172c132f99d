package types

// Event types for the Geode module
// All event types use lowercase with underscore separator (module_action format)
const (
	// Registry events
	EventTypeGeodeRegistered = "geode_registered"
	EventTypeGeodeRemoved    = "geode_removed"
	EventTypeGeodeExiting    = "geode_exiting"
	EventTypeGeodeUpdated    = "geode_updated"

	// Lifecycle events
	EventTypeGeodeDispatched = "geode_dispatched"
	EventTypeGeodeReady      = "geode_ready"
	EventTypeGeodeFinalizing = "geode_finalizing"
	EventTypeGeodeFinalized  = "geode_finalized"
	EventTypeGeodeFailed     = "geode_failed"
	EventTypeGeodeExpired    = "geode_expired"

	// Request events
	EventTypeOfflineRequested = "geode_offline_requested"
	EventTypeFailRequested    = "geode_fail_requested"

	// Health events
	EventTypeGeodeHealthy   = "geode_healthy"
	EventTypeGeodeUnhealthy = "geode_unhealthy"
)

// Event attribute keys for the Geode module
// All attribute keys use lowercase with underscore separator
const (
	AttributeKeyGeodeId      = "geode_id"
	AttributeKeyProvider     = "provider"
	AttributeKeyOrderId      = "order_id"
	AttributeKeyDomain       = "domain"
	AttributeKeyState        = "state"
	AttributeKeyPrevState    = "prev_state"
	AttributeKeySessionIndex = "session_index"
	AttributeKeyReportType   = "report_type"
	AttributeKeyAttestorDown = "attestor_down"
)
