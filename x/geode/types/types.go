package types

// HealthyState is the attestor-driven health verdict for a geode. It is
// consulted only when a new order would be dispatched to an idle geode.
type HealthyState string

const (
	HealthyStateHealthy   HealthyState = "healthy"
	HealthyStateUnhealthy HealthyState = "unhealthy"
)

// GeodeState is the working-state discriminant of a geode.
type GeodeState string

const (
	// GeodeStateIdle means the geode holds no order and can be dispatched.
	GeodeStateIdle GeodeState = "idle"
	// GeodeStatePending means the geode was handed an order and has not
	// confirmed readiness yet.
	GeodeStatePending GeodeState = "pending"
	// GeodeStateWorking means the geode confirmed and is serving its order.
	GeodeStateWorking GeodeState = "working"
	// GeodeStateFinalizing means the geode is wrapping up its order.
	GeodeStateFinalizing GeodeState = "finalizing"
	// GeodeStateExiting means the owner requested removal; the record is
	// deleted at the next session boundary.
	GeodeStateExiting GeodeState = "exiting"
)

// Valid reports whether s is a known geode state.
func (s GeodeState) Valid() bool {
	switch s {
	case GeodeStateIdle, GeodeStatePending, GeodeStateWorking,
		GeodeStateFinalizing, GeodeStateExiting:
		return true
	}
	return false
}

// WorkingState pairs the state discriminant with the session the state was
// entered in. SessionIndex is meaningful for Pending, Working and
// Finalizing only.
type WorkingState struct {
	State        GeodeState `json:"state"`
	SessionIndex int64      `json:"session_index,omitempty"`
}

// Geode is one registered compute node.
//
// OrderId is non-empty iff Working.State is Pending, Working or Finalizing;
// every write that changes the discriminant must keep this paired with the
// matching secondary index row.
type Geode struct {
	Id       string            `json:"id"` // node account address
	Provider string            `json:"provider"`
	Ip       string            `json:"ip"`
	Domain   string            `json:"domain"`
	Props    map[string]string `json:"props,omitempty"`
	Healthy  HealthyState      `json:"healthy"`
	Working  WorkingState      `json:"working"`
	OrderId  string            `json:"order_id,omitempty"`
}

// HoldsOrder reports whether the geode is currently attached to an order.
func (g Geode) HoldsOrder() bool {
	switch g.Working.State {
	case GeodeStatePending, GeodeStateWorking, GeodeStateFinalizing:
		return true
	}
	return false
}

// SweepCursor marks how far a bounded enumeration got within a session.
// A cursor whose SessionIndex differs from the current session is stale and
// the sweep restarts from the beginning.
type SweepCursor struct {
	SessionIndex int64  `json:"session_index"`
	LastKey      []byte `json:"last_key,omitempty"`
}
