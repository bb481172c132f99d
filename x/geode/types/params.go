package types

import (
	"fmt"
)

// Params defines the geode module parameters.
type Params struct {
	// SweepLimit bounds how many geodes one session sweep visits per block.
	SweepLimit uint32 `json:"sweep_limit"`
	// DispatchScanLimit bounds how many idle geodes one dispatch call
	// inspects while filling an order.
	DispatchScanLimit uint32 `json:"dispatch_scan_limit"`
}

// DefaultParams returns default geode parameters
func DefaultParams() Params {
	return Params{
		SweepLimit:        50,
		DispatchScanLimit: 100,
	}
}

// Validate performs basic validation of geode parameters.
func (p Params) Validate() error {
	if p.SweepLimit == 0 {
		return fmt.Errorf("sweep limit must be positive")
	}
	if p.DispatchScanLimit == 0 {
		return fmt.Errorf("dispatch scan limit must be positive")
	}
	return nil
}
