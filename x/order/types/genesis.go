package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the order module genesis state.
type GenesisState struct {
	Params   Params          `json:"params"`
	Orders   []Order         `json:"orders"`
	Services []OrderServices `json:"services"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Orders:   []Order{},
		Services: []OrderServices{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seenOrderIds := make(map[string]bool)
	for i, order := range gs.Orders {
		if order.OrderId == "" {
			return fmt.Errorf("order %d: id cannot be empty", i)
		}
		if seenOrderIds[order.OrderId] {
			return fmt.Errorf("order %d: duplicate order id %s", i, order.OrderId)
		}
		seenOrderIds[order.OrderId] = true

		if _, err := sdk.AccAddressFromBech32(order.Requester); err != nil {
			return fmt.Errorf("order %d (id=%s): invalid requester address %s: %w", i, order.OrderId, order.Requester, err)
		}
		if order.Num < 1 {
			return fmt.Errorf("order %d (id=%s): num must be at least 1", i, order.OrderId)
		}
		if order.Duration < 1 {
			return fmt.Errorf("order %d (id=%s): duration must be at least 1", i, order.OrderId)
		}
		if !order.State.Valid() {
			return fmt.Errorf("order %d (id=%s): unknown state %q", i, order.OrderId, order.State)
		}
		if order.Price.IsNil() || !order.Price.IsPositive() {
			return fmt.Errorf("order %d (id=%s): price must be positive", i, order.OrderId)
		}
	}

	for i, svcs := range gs.Services {
		if !seenOrderIds[svcs.OrderId] {
			return fmt.Errorf("services %d: unknown order id %s", i, svcs.OrderId)
		}
		seenGeodes := make(map[string]bool)
		for j, svc := range svcs.Services {
			if svc.GeodeId == "" {
				return fmt.Errorf("services %d entry %d: geode id cannot be empty", i, j)
			}
			if seenGeodes[svc.GeodeId] {
				return fmt.Errorf("services %d: duplicate geode id %s", i, svc.GeodeId)
			}
			seenGeodes[svc.GeodeId] = true
			switch svc.State {
			case OrderStatePending, OrderStateProcessing, OrderStateDone:
			default:
				return fmt.Errorf("services %d entry %d: invalid service state %q", i, j, svc.State)
			}
		}
	}

	return nil
}
