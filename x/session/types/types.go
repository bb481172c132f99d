package types

// Phase is one leg of the repeating session cycle. Every block falls into
// exactly one phase; the cycle order is fixed.
type Phase string

const (
	PhaseSessionInitialize Phase = "session_initialize"
	PhaseGeodeOffline      Phase = "geode_offline"
	PhaseOrderDispatch     Phase = "order_dispatch"
	PhaseExpiredCheck      Phase = "expired_check"
)

// PhaseOrder is the fixed cycle order. Offline processing runs before
// emergency backfill and before fresh dispatch so freed capacity is visible
// to re-dispatch within the same session.
var PhaseOrder = []Phase{
	PhaseSessionInitialize,
	PhaseGeodeOffline,
	PhaseOrderDispatch,
	PhaseExpiredCheck,
}

// PhaseBlocks configures how many blocks each phase spans.
type PhaseBlocks struct {
	SessionInitialize int64 `json:"session_initialize"`
	GeodeOffline      int64 `json:"geode_offline"`
	OrderDispatch     int64 `json:"order_dispatch"`
	ExpiredCheck      int64 `json:"expired_check"`
}

// Blocks returns the configured span of a phase.
func (pb PhaseBlocks) Blocks(phase Phase) int64 {
	switch phase {
	case PhaseSessionInitialize:
		return pb.SessionInitialize
	case PhaseGeodeOffline:
		return pb.GeodeOffline
	case PhaseOrderDispatch:
		return pb.OrderDispatch
	case PhaseExpiredCheck:
		return pb.ExpiredCheck
	default:
		return 0
	}
}

// Total returns the full cycle length in blocks.
func (pb PhaseBlocks) Total() int64 {
	return pb.SessionInitialize + pb.GeodeOffline + pb.OrderDispatch + pb.ExpiredCheck
}

// Locate maps a residue within the cycle to its phase by walking the phase
// windows in order. The residue must be in [0, Total()).
func (pb PhaseBlocks) Locate(residue int64) Phase {
	for _, phase := range PhaseOrder {
		span := pb.Blocks(phase)
		if residue < span {
			return phase
		}
		residue -= span
	}
	// Unreachable for a valid residue; the last phase absorbs rounding.
	return PhaseExpiredCheck
}
