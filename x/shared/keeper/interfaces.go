// Package keeper provides shared keeper interfaces for cross-module communication.
// Versioned interfaces allow stable API contracts between modules.
package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ordertypes "github.com/geodenet/geodenet/x/order/types"
)

// =============================================================================
// Geode Keeper Interfaces (Versioned)
// =============================================================================

// GeodeKeeperV1 defines the session-facing geode registry interface for
// cross-module use.
// Version 1.0 - Initial release for testnet
// Modules should depend on this interface rather than the concrete keeper.
type GeodeKeeperV1 interface {
	// OnNewSession finalizes exits recorded during the previous session.
	// Work is bounded per call and resumable within the same session.
	OnNewSession(ctx context.Context, sessionIndex int64)

	// OnGeodeOffline drains pending offline and failure requests.
	OnGeodeOffline(ctx context.Context, sessionIndex int64)

	// OnOrderDispatched assigns up to num idle healthy geodes matching the
	// domain to the order and returns the accepted geode addresses.
	// Returning fewer than num is a normal shortfall, not an error.
	OnOrderDispatched(ctx context.Context, sessionIndex int64, orderID string, num uint32, domain string) []sdk.AccAddress

	// OnExpiredCheck detects geodes stuck in Pending past their order's
	// session window.
	OnExpiredCheck(ctx context.Context, sessionIndex int64)
}

// =============================================================================
// Order Keeper Interfaces (Versioned)
// =============================================================================

// OrderKeeperV1 defines the order book interface consumed by the session
// scheduler and the geode registry.
// Version 1.0 - Initial release for testnet
type OrderKeeperV1 interface {
	// IsOrderExpired reports whether the order's allotted session window has
	// elapsed at the given session index.
	IsOrderExpired(ctx context.Context, orderID string, sessionIndex int64) bool

	// OnNewSession sweeps timed-out and canceled orders to Done.
	OnNewSession(ctx context.Context, sessionIndex int64)

	// OnOrdersDispatch assigns freshly submitted orders to geodes.
	OnOrdersDispatch(ctx context.Context, sessionIndex int64)

	// OnEmergencyOrderDispatch tops up understaffed orders.
	OnEmergencyOrderDispatch(ctx context.Context, sessionIndex int64)

	// OnOrderState is the single mutation point for a per-geode service
	// state. Submitted and Pending targets are rejected; those are set only
	// by dispatch.
	OnOrderState(ctx context.Context, geodeID sdk.AccAddress, orderID string, target ordertypes.OrderState) error
}

// =============================================================================
// Application / Attestor Keeper Interfaces (Versioned)
// =============================================================================

// ApplicationKeeperV1 receives health verdicts for registered applications.
// Implemented by the geode registry, called by the attestor registry.
// Version 1.0 - Initial release for testnet
type ApplicationKeeperV1 interface {
	// ApplicationHealthy marks the application healthy.
	ApplicationHealthy(ctx context.Context, geodeID sdk.AccAddress) error

	// ApplicationUnhealthy marks the application unhealthy and evicts it
	// from any order it is serving. isAttestorDown distinguishes attestor
	// churn from a genuine misbehavior report.
	ApplicationUnhealthy(ctx context.Context, geodeID sdk.AccAddress, isAttestorDown bool) error
}

// AttestorKeeperV1 defines the attestor registry interface consumed by the
// geode registry.
// Version 1.0 - Initial release for testnet
type AttestorKeeperV1 interface {
	// IsAbnormalMode reports whether too few attestors are registered for
	// health verdicts to be trustworthy.
	IsAbnormalMode(ctx context.Context) bool

	// CheckHealthy returns the current attestation verdict for the geode.
	CheckHealthy(ctx context.Context, geodeID sdk.AccAddress) bool
}

// =============================================================================
// Version Constants
// =============================================================================

const (
	// GeodeKeeperVersion is the current geode keeper interface version.
	GeodeKeeperVersion = "v1.0.0"

	// OrderKeeperVersion is the current order keeper interface version.
	OrderKeeperVersion = "v1.0.0"

	// AttestorKeeperVersion is the current attestor keeper interface version.
	AttestorKeeperVersion = "v1.0.0"
)

// Compatibility: a signature change means a new interface (GeodeKeeperV2
// embedding GeodeKeeperV1 where possible) rather than editing an existing
// one, so consuming modules keep compiling against the version they expect.
// Additions within a version are fine; removals are not.
