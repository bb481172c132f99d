package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the expected account keeper used for simulations (and module)
type AccountKeeper interface {
	GetAccount(ctx context.Context, addr sdk.AccAddress) sdk.AccountI
}

// BankKeeper defines the expected bank keeper used for order escrow
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// GeodeDispatcher is the slice of the geode registry the order book needs:
// handing geodes to an order during the dispatch phases. The full interface
// lives in x/shared/keeper; this narrow copy avoids an import cycle with it.
type GeodeDispatcher interface {
	OnOrderDispatched(ctx context.Context, sessionIndex int64, orderID string, num uint32, domain string) []sdk.AccAddress
}
