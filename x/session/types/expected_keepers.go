package types

import (
	sharedkeeper "github.com/geodenet/geodenet/x/shared/keeper"
)

// GeodeKeeper defines the geode registry callbacks the scheduler drives.
type GeodeKeeper = sharedkeeper.GeodeKeeperV1

// OrderKeeper defines the order book callbacks the scheduler drives.
type OrderKeeper = sharedkeeper.OrderKeeperV1
