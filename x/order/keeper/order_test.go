package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/geodenet/geodenet/testutil/keeper"
	"github.com/geodenet/geodenet/x/order/types"
)

const testDenom = "ugeo"

func setupRequester(t *testing.T, f *keepertest.MarketplaceFixture, name string, balance int64) sdk.AccAddress {
	t.Helper()
	addr := sdk.AccAddress([]byte(name + "____________________")[:20])
	f.SeedAccount(t, addr, 0)
	f.FundAccount(t, addr, math.NewInt(balance), testDenom)
	return addr
}

func TestCreateOrder(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "create_order", 10_000)

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "registry.example.com/app:v1", "eu", "app", math.NewInt(4_000), 2, 5)
	require.NoError(t, err)
	require.Len(t, orderID, 64)

	order, err := f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStateSubmitted, order.State)
	require.Equal(t, requester.String(), order.Requester)
	require.Equal(t, uint32(2), order.Num)
	require.Equal(t, uint32(5), order.Duration)

	svcs, err := f.Order.GetOrderServices(f.Ctx, orderID)
	require.NoError(t, err)
	require.Empty(t, svcs.Services)

	// The price is escrowed to the module account.
	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	require.Equal(t, int64(4_000), f.BankKeeper.GetBalance(f.Ctx, moduleAddr, testDenom).Amount.Int64())
	require.Equal(t, int64(6_000), f.BankKeeper.GetBalance(f.Ctx, requester, testDenom).Amount.Int64())

	submitted, err := f.Order.GetOrdersByState(f.Ctx, types.OrderStateSubmitted)
	require.NoError(t, err)
	require.Len(t, submitted, 1)
	require.Equal(t, orderID, submitted[0].OrderId)
}

func TestCreateOrderValidation(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "create_invalid", 10_000)

	_, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(100), 0, 5)
	require.ErrorIs(t, err, types.ErrInvalidOrder)

	_, err = f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(100), 1, 0)
	require.ErrorIs(t, err, types.ErrInvalidDuration)

	_, err = f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(-5), 1, 5)
	require.ErrorIs(t, err, types.ErrInvalidOrder)

	// Unknown account: no sequence to derive an id from.
	stranger := sdk.AccAddress([]byte("unknown_requester___"))
	_, err = f.Order.CreateOrder(f.Ctx, stranger, "bin", "", "", math.NewInt(100), 1, 5)
	require.ErrorIs(t, err, types.ErrInvalidOrder)
}

func TestCreateOrderInsufficientFunds(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "create_poor", 100)

	_, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(4_000), 1, 5)
	require.ErrorIs(t, err, types.ErrEscrowFailed)

	all, err := f.Order.GetAllOrders(f.Ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestCreateOrderDuplicateId(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "create_dup", 10_000)

	_, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(100), 1, 5)
	require.NoError(t, err)

	// Same account, same sequence: the derived id collides.
	_, err = f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(100), 1, 5)
	require.ErrorIs(t, err, types.ErrOrderIdDuplicated)

	// A bumped sequence yields a fresh id.
	f.SeedAccount(t, requester, 1)
	_, err = f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(100), 1, 5)
	require.NoError(t, err)
}

func TestCancelOrder(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "cancel_order", 10_000)

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 1, 5)
	require.NoError(t, err)

	require.NoError(t, f.Order.CancelOrder(f.Ctx, requester, orderID))
	require.True(t, f.Order.IsOrderCanceled(f.Ctx, orderID))

	// The cancel is recorded, not applied: the order stays in its state
	// until the next session sweep.
	order, err := f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStateSubmitted, order.State)

	// Double cancel is rejected.
	err = f.Order.CancelOrder(f.Ctx, requester, orderID)
	require.ErrorIs(t, err, types.ErrOrderNotCancelable)
}

func TestCancelOrderOwnership(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "cancel_owner", 10_000)
	other := setupRequester(t, f, "cancel_other", 10_000)

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 1, 5)
	require.NoError(t, err)

	err = f.Order.CancelOrder(f.Ctx, other, orderID)
	require.ErrorIs(t, err, types.ErrInvalidOrderOwner)

	err = f.Order.CancelOrder(f.Ctx, requester, "deadbeef")
	require.ErrorIs(t, err, types.ErrInvalidOrder)
}

func TestParamsRoundTrip(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)

	// Missing params fall back to defaults.
	params, err := f.Order.GetParams(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), params)

	params.SweepLimit = 7
	require.NoError(t, f.Order.SetParams(f.Ctx, params))

	got, err := f.Order.GetParams(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, uint32(7), got.SweepLimit)

	params.EscrowDenom = ""
	require.Error(t, f.Order.SetParams(f.Ctx, params))
}
