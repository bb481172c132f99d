package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params defines the attestor module parameters.
type Params struct {
	// MinAttestorNum is the attestation quorum: a geode needs this many
	// attestors vouching for it to count as healthy, and the registry as a
	// whole is in abnormal mode while fewer attestors than this exist.
	MinAttestorNum uint32 `json:"min_attestor_num"`
	// HeartbeatBlocks is how many blocks an attestor may go without a
	// heartbeat before it is swept out.
	HeartbeatBlocks int64 `json:"heartbeat_blocks"`
	// MinStake is the balance an account must hold to register.
	MinStake math.Int `json:"min_stake"`
	// StakeDenom is the denom MinStake is measured in.
	StakeDenom string `json:"stake_denom"`
}

// DefaultParams returns default attestor parameters
func DefaultParams() Params {
	return Params{
		MinAttestorNum:  1,
		HeartbeatBlocks: 100,
		MinStake:        math.NewInt(1_000_000),
		StakeDenom:      "ugeo",
	}
}

// Validate performs basic validation of attestor parameters.
func (p Params) Validate() error {
	if p.MinAttestorNum == 0 {
		return fmt.Errorf("min attestor num must be positive")
	}
	if p.HeartbeatBlocks < 1 {
		return fmt.Errorf("heartbeat blocks must be positive")
	}
	if p.MinStake.IsNil() || p.MinStake.IsNegative() {
		return fmt.Errorf("min stake cannot be negative")
	}
	if err := sdk.ValidateDenom(p.StakeDenom); err != nil {
		return fmt.Errorf("invalid stake denom: %w", err)
	}
	return nil
}
