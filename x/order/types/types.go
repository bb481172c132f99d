package types

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// OrderState is the lifecycle state of an order, and also the state of a
// single order service (the per-geode slice of an order). Submitted never
// appears on a service.
type OrderState string

const (
	// OrderStateSubmitted means the order has not been through dispatch yet.
	OrderStateSubmitted OrderState = "submitted"
	// OrderStatePending means geodes are assigned but not all have
	// confirmed.
	OrderStatePending OrderState = "pending"
	// OrderStateProcessing means every assigned geode is serving.
	OrderStateProcessing OrderState = "processing"
	// OrderStateEmergency means the order is short of its required geode
	// count and needs redispatch.
	OrderStateEmergency OrderState = "emergency"
	// OrderStateDone is terminal.
	OrderStateDone OrderState = "done"
)

// Valid reports whether s is a known order state.
func (s OrderState) Valid() bool {
	switch s {
	case OrderStateSubmitted, OrderStatePending, OrderStateProcessing,
		OrderStateEmergency, OrderStateDone:
		return true
	}
	return false
}

// CheckNext reports whether the transition s -> next is legal.
//
// Submitted -> Pending
// Pending   -> Processing | Emergency | Done
// Processing-> Emergency | Done
// Emergency -> Processing
// Done      -> (terminal)
func (s OrderState) CheckNext(next OrderState) bool {
	switch s {
	case OrderStateSubmitted:
		return next == OrderStatePending
	case OrderStatePending:
		return next == OrderStateProcessing || next == OrderStateEmergency || next == OrderStateDone
	case OrderStateProcessing:
		return next == OrderStateEmergency || next == OrderStateDone
	case OrderStateEmergency:
		return next == OrderStateProcessing
	case OrderStateDone:
		return false
	}
	return false
}

// Order is one user compute request. The id is content-derived so it is
// unique and unguessable; the record is retained after Done, only the
// secondary indexes are cleared.
type Order struct {
	OrderId        string     `json:"order_id"` // hex sha256
	Requester      string     `json:"requester"`
	Binary         string     `json:"binary"`
	Domain         string     `json:"domain"`
	Name           string     `json:"name"`
	Price          math.Int   `json:"price"`
	Num            uint32     `json:"num"`
	Duration       uint32     `json:"duration"` // sessions
	StartSessionId int64      `json:"start_session_id"`
	State          OrderState `json:"state"`
	RefundUnit     uint32     `json:"refund_unit,omitempty"`
}

// OrderService is the (order, geode) relationship entry. Services live in a
// list keyed by order id; a service is dropped when its geode reports
// Emergency and a replacement is sought at the next dispatch.
type OrderService struct {
	GeodeId string     `json:"geode_id"`
	State   OrderState `json:"state"`
}

// OrderServices is the stored service list of one order.
type OrderServices struct {
	OrderId  string         `json:"order_id"`
	Services []OrderService `json:"services"`
}

// SweepCursor marks how far a bounded enumeration got within a session.
// A cursor whose SessionIndex differs from the current session is stale and
// the sweep restarts from the beginning.
type SweepCursor struct {
	SessionIndex int64  `json:"session_index"`
	LastKey      []byte `json:"last_key,omitempty"`
}

// NewOrderId derives an order id from the requester address and their
// account sequence at submission time.
func NewOrderId(requester sdk.AccAddress, sequence uint64) string {
	buf := make([]byte, 0, len(requester)+8)
	buf = append(buf, requester.Bytes()...)
	buf = binary.BigEndian.AppendUint64(buf, sequence)
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// CurrentState computes the aggregate state of an order from its services.
// The output domain is {Pending, Processing, Emergency}: a shortfall below
// num dominates everything, any Pending service caps the aggregate at
// Pending, and Done is never produced here — it is reached only through the
// timeout and cancel sweeps.
func CurrentState(num uint32, services []OrderService) OrderState {
	if uint32(len(services)) < num {
		return OrderStateEmergency
	}
	for _, svc := range services {
		if svc.State == OrderStatePending {
			return OrderStatePending
		}
	}
	return OrderStateProcessing
}

// AllServicesDone reports whether every service of the order has finished.
func AllServicesDone(services []OrderService) bool {
	if len(services) == 0 {
		return false
	}
	for _, svc := range services {
		if svc.State != OrderStateDone {
			return false
		}
	}
	return true
}
