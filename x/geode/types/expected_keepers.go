package types

import (
	sharedkeeper "github.com/geodenet/geodenet/x/shared/keeper"
)

// OrderKeeper defines the order book interface used by the geode registry
// to report service transitions and query order expiry.
type OrderKeeper = sharedkeeper.OrderKeeperV1

// AttestorKeeper defines the attestor registry interface used for seeding
// and querying geode health.
type AttestorKeeper = sharedkeeper.AttestorKeeperV1
