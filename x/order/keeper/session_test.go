package keeper_test

import (
	"fmt"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/geodenet/geodenet/testutil/keeper"
	geodetypes "github.com/geodenet/geodenet/x/geode/types"
	"github.com/geodenet/geodenet/x/order/types"
)

func registerGeodes(t *testing.T, f *keepertest.MarketplaceFixture, n int, domain string) []sdk.AccAddress {
	t.Helper()
	provider := sdk.AccAddress([]byte("geode_provider_addr_"))
	ids := make([]sdk.AccAddress, 0, n)
	for i := 0; i < n; i++ {
		id := sdk.AccAddress([]byte(fmt.Sprintf("geode_%s_%02d________________", domain, i))[:20])
		require.NoError(t, f.Geode.RegisterGeode(f.Ctx, provider, id, "10.0.0.1", domain, nil))
		ids = append(ids, id)
	}
	return ids
}

func TestDispatchFullComplement(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "dispatch_full", 10_000)
	geodes := registerGeodes(t, f, 2, "")

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 2, 5)
	require.NoError(t, err)

	f.Order.OnOrdersDispatch(f.Ctx, 1)

	order, err := f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStatePending, order.State)
	require.Equal(t, int64(1), order.StartSessionId)

	svcs, err := f.Order.GetOrderServices(f.Ctx, orderID)
	require.NoError(t, err)
	require.Len(t, svcs.Services, 2)
	for _, svc := range svcs.Services {
		require.Equal(t, types.OrderStatePending, svc.State)
	}

	for _, id := range geodes {
		g, err := f.Geode.GetGeode(f.Ctx, id)
		require.NoError(t, err)
		require.Equal(t, geodetypes.GeodeStatePending, g.Working.State)
		require.Equal(t, orderID, g.OrderId)
	}
}

func TestDispatchShortfallGoesEmergency(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "dispatch_short", 10_000)
	registerGeodes(t, f, 1, "")

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 3, 5)
	require.NoError(t, err)

	f.Order.OnOrdersDispatch(f.Ctx, 1)

	order, err := f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStateEmergency, order.State)

	// The one available geode was still assigned.
	svcs, err := f.Order.GetOrderServices(f.Ctx, orderID)
	require.NoError(t, err)
	require.Len(t, svcs.Services, 1)

	// A later backfill with fresh capacity completes the complement.
	registerGeodes(t, f, 2, "backfill")
	f.Order.OnEmergencyOrderDispatch(f.Ctx, 1)

	order, err = f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStatePending, order.State)

	svcs, err = f.Order.GetOrderServices(f.Ctx, orderID)
	require.NoError(t, err)
	require.Len(t, svcs.Services, 3)
}

func TestDispatchHonorsDomain(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "dispatch_domain", 10_000)
	registerGeodes(t, f, 2, "us-west")

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "eu-central", "", math.NewInt(1_000), 1, 5)
	require.NoError(t, err)

	f.Order.OnOrdersDispatch(f.Ctx, 1)

	// No geode in the requested domain: straight to emergency.
	order, err := f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStateEmergency, order.State)

	registerGeodes(t, f, 1, "eu-central")
	f.Order.OnEmergencyOrderDispatch(f.Ctx, 1)

	order, err = f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStatePending, order.State)
}

func TestOrderLifecycleToDone(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "lifecycle_done", 10_000)
	geodes := registerGeodes(t, f, 2, "")

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 2, 5)
	require.NoError(t, err)
	f.Order.OnOrdersDispatch(f.Ctx, 1)

	// Both geodes confirm readiness: pending -> processing.
	for _, id := range geodes {
		require.NoError(t, f.Geode.GeodeReady(f.Ctx, id, orderID))
	}
	order, err := f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStateProcessing, order.State)

	// Both geodes wind down; the order finishes when the last service does.
	for _, id := range geodes {
		require.NoError(t, f.Geode.GeodeFinalizing(f.Ctx, id, orderID))
	}
	require.NoError(t, f.Geode.GeodeFinalized(f.Ctx, geodes[0], orderID))

	order, err = f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStateProcessing, order.State)

	require.NoError(t, f.Geode.GeodeFinalized(f.Ctx, geodes[1], orderID))

	order, err = f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStateDone, order.State)

	// Released geodes are idle and unbound again.
	for _, id := range geodes {
		g, err := f.Geode.GetGeode(f.Ctx, id)
		require.NoError(t, err)
		require.Equal(t, geodetypes.GeodeStateIdle, g.Working.State)
		require.Empty(t, g.OrderId)
	}
}

func TestOnOrderStateRejectsUnknownService(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "unknown_svc", 10_000)
	registerGeodes(t, f, 1, "")

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 1, 5)
	require.NoError(t, err)
	f.Order.OnOrdersDispatch(f.Ctx, 1)

	stranger := sdk.AccAddress([]byte("stranger_geode_addr_"))
	err = f.Order.OnOrderState(f.Ctx, stranger, orderID, types.OrderStateProcessing)
	require.ErrorIs(t, err, types.ErrInvalidService)

	err = f.Order.OnOrderState(f.Ctx, stranger, orderID, types.OrderStateSubmitted)
	require.ErrorIs(t, err, types.ErrInvalidState)
}

func TestEmergencyReportDropsService(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "emergency_drop", 10_000)
	geodes := registerGeodes(t, f, 2, "")

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 2, 5)
	require.NoError(t, err)
	f.Order.OnOrdersDispatch(f.Ctx, 1)

	require.NoError(t, f.Order.OnOrderState(f.Ctx, geodes[0], orderID, types.OrderStateEmergency))

	svcs, err := f.Order.GetOrderServices(f.Ctx, orderID)
	require.NoError(t, err)
	require.Len(t, svcs.Services, 1)

	order, err := f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStateEmergency, order.State)
}

func TestCancelSweepRefundsEscrow(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "cancel_refund", 10_000)

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(4_000), 1, 5)
	require.NoError(t, err)
	require.Equal(t, int64(6_000), f.BankKeeper.GetBalance(f.Ctx, requester, testDenom).Amount.Int64())

	require.NoError(t, f.Order.CancelOrder(f.Ctx, requester, orderID))
	f.Order.OnNewSession(f.Ctx, 2)

	order, err := f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStateDone, order.State)
	require.Equal(t, int64(10_000), f.BankKeeper.GetBalance(f.Ctx, requester, testDenom).Amount.Int64())

	// A done order cannot be canceled again.
	err = f.Order.CancelOrder(f.Ctx, requester, orderID)
	require.ErrorIs(t, err, types.ErrOrderAlreadyDone)
}

func TestDurationTimeoutFinishesOrder(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "duration_out", 10_000)
	geodes := registerGeodes(t, f, 1, "")

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 1, 2)
	require.NoError(t, err)
	f.Order.OnOrdersDispatch(f.Ctx, 1)
	require.NoError(t, f.Geode.GeodeReady(f.Ctx, geodes[0], orderID))

	// Starting at session 1 with duration 2, the order owns sessions 1
	// through 3 in full and expires strictly after.
	require.False(t, f.Order.IsOrderExpired(f.Ctx, orderID, 2))
	require.False(t, f.Order.IsOrderExpired(f.Ctx, orderID, 3))
	require.True(t, f.Order.IsOrderExpired(f.Ctx, orderID, 4))

	// A sweep before the window elapses leaves the order running.
	f.Order.OnNewSession(f.Ctx, 3)
	order, err := f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStateProcessing, order.State)

	f.Order.OnNewSession(f.Ctx, 4)
	order, err = f.Order.GetOrder(f.Ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, types.OrderStateDone, order.State)

	// No refund on a ran-to-term order.
	require.Equal(t, int64(9_000), f.BankKeeper.GetBalance(f.Ctx, requester, testDenom).Amount.Int64())

	// Unknown and finished orders both count as expired.
	require.True(t, f.Order.IsOrderExpired(f.Ctx, "missing", 1))
	require.True(t, f.Order.IsOrderExpired(f.Ctx, orderID, 1))
}

func TestDispatchSkipsCanceledOrders(t *testing.T) {
	f := keepertest.NewMarketplaceFixture(t)
	requester := setupRequester(t, f, "dispatch_skip", 10_000)
	registerGeodes(t, f, 1, "")

	orderID, err := f.Order.CreateOrder(f.Ctx, requester, "bin", "", "", math.NewInt(1_000), 1, 5)
	require.NoError(t, err)
	require.NoError(t, f.Order.CancelOrder(f.Ctx, requester, orderID))

	f.Order.OnOrdersDispatch(f.Ctx, 1)

	// Canceled submissions never reach a geode.
	svcs, err := f.Order.GetOrderServices(f.Ctx, orderID)
	require.NoError(t, err)
	require.Empty(t, svcs.Services)
}
