package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the attestor module's genesis state.
type GenesisState struct {
	Params    Params     `json:"params"`
	Attestors []Attestor `json:"attestors"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		Attestors: []Attestor{},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := map[string]bool{}
	for _, attestor := range gs.Attestors {
		if _, err := sdk.AccAddressFromBech32(attestor.Id); err != nil {
			return fmt.Errorf("invalid attestor id %s: %w", attestor.Id, err)
		}
		if seen[attestor.Id] {
			return fmt.Errorf("duplicate attestor id %s", attestor.Id)
		}
		seen[attestor.Id] = true

		if attestor.Url == "" {
			return fmt.Errorf("attestor %s has empty url", attestor.Id)
		}
		for _, geodeID := range attestor.Geodes {
			if _, err := sdk.AccAddressFromBech32(geodeID); err != nil {
				return fmt.Errorf("attestor %s attests invalid geode id %s: %w", attestor.Id, geodeID, err)
			}
		}
	}
	return nil
}
