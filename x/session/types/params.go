package types

import (
	"fmt"
)

// Params defines the session module parameters.
type Params struct {
	// PhaseBlocks is the per-phase block span of the session cycle.
	PhaseBlocks PhaseBlocks `json:"phase_blocks"`
}

// DefaultParams returns default session parameters: one block per phase.
func DefaultParams() Params {
	return Params{
		PhaseBlocks: PhaseBlocks{
			SessionInitialize: 1,
			GeodeOffline:      1,
			OrderDispatch:     1,
			ExpiredCheck:      1,
		},
	}
}

// Validate performs basic validation of session parameters.
func (p Params) Validate() error {
	for _, phase := range PhaseOrder {
		if p.PhaseBlocks.Blocks(phase) < 1 {
			return fmt.Errorf("phase %s must span at least one block", phase)
		}
	}
	return nil
}
