package types

import (
	"fmt"
)

// GenesisState defines the session module's genesis state.
type GenesisState struct {
	Params       Params `json:"params"`
	SessionIndex int64  `json:"session_index"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		SessionIndex: 0,
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.SessionIndex < 0 {
		return fmt.Errorf("session index cannot be negative")
	}
	return nil
}
