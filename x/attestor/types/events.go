package types

// Attestor module event types
const (
	EventTypeAttestorRegistered = "attestor_registered"
	EventTypeAttestorUpdated    = "attestor_updated"
	EventTypeAttestorRemoved    = "attestor_removed"
	EventTypeAttestorHeartbeat  = "attestor_heartbeat"
	EventTypeAttestorExpired    = "attestor_expired"
	EventTypeGeodeAttested      = "geode_attested"
	EventTypeGeodeReported      = "geode_reported"
)

// Attestor module event attribute keys
const (
	AttributeKeyAttestorId = "attestor_id"
	AttributeKeyGeodeId    = "geode_id"
	AttributeKeyUrl        = "url"
	AttributeKeyHeight     = "height"
	AttributeKeyCount      = "count"
)
