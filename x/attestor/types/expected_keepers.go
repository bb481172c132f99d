package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/geodenet/geodenet/x/shared/keeper"
)

// BankKeeper defines the expected bank keeper used for the minimum-stake
// check at registration.
type BankKeeper interface {
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// ApplicationKeeper defines the geode registry surface that receives
// attestor health verdicts.
type ApplicationKeeper = sharedkeeper.ApplicationKeeperV1
