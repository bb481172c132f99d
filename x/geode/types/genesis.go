package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the geode module genesis state.
type GenesisState struct {
	Params Params  `json:"params"`
	Geodes []Geode `json:"geodes"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Geodes: []Geode{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seenIds := make(map[string]bool)
	for i, geode := range gs.Geodes {
		if _, err := sdk.AccAddressFromBech32(geode.Id); err != nil {
			return fmt.Errorf("geode %d: invalid id %s: %w", i, geode.Id, err)
		}
		if seenIds[geode.Id] {
			return fmt.Errorf("geode %d: duplicate id %s", i, geode.Id)
		}
		seenIds[geode.Id] = true

		if _, err := sdk.AccAddressFromBech32(geode.Provider); err != nil {
			return fmt.Errorf("geode %d (id=%s): invalid provider address %s: %w", i, geode.Id, geode.Provider, err)
		}
		if !geode.Working.State.Valid() {
			return fmt.Errorf("geode %d (id=%s): unknown working state %q", i, geode.Id, geode.Working.State)
		}
		if geode.Healthy != HealthyStateHealthy && geode.Healthy != HealthyStateUnhealthy {
			return fmt.Errorf("geode %d (id=%s): unknown healthy state %q", i, geode.Id, geode.Healthy)
		}

		holds := geode.HoldsOrder()
		if holds && geode.OrderId == "" {
			return fmt.Errorf("geode %d (id=%s): state %q requires an order id", i, geode.Id, geode.Working.State)
		}
		if !holds && geode.OrderId != "" {
			return fmt.Errorf("geode %d (id=%s): state %q must not carry an order id", i, geode.Id, geode.Working.State)
		}
	}

	return nil
}
