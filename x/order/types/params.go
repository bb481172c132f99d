package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params defines the order module parameters.
type Params struct {
	// EscrowDenom is the denom escrowed on order submission.
	EscrowDenom string `json:"escrow_denom"`
	// SweepLimit bounds how many orders one session sweep visits per block.
	SweepLimit uint32 `json:"sweep_limit"`
	// DispatchLimit bounds how many orders one dispatch phase visits per
	// block.
	DispatchLimit uint32 `json:"dispatch_limit"`
}

// DefaultParams returns default order parameters
func DefaultParams() Params {
	return Params{
		EscrowDenom:   "ugeo",
		SweepLimit:    50,
		DispatchLimit: 20,
	}
}

// Validate performs basic validation of order parameters.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.EscrowDenom); err != nil {
		return fmt.Errorf("invalid escrow denom: %w", err)
	}
	if p.SweepLimit == 0 {
		return fmt.Errorf("sweep limit must be positive")
	}
	if p.DispatchLimit == 0 {
		return fmt.Errorf("dispatch limit must be positive")
	}
	return nil
}
